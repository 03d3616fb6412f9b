package model

import "time"

// NotificationType is a closed set. Rendering hints for each variant
// live in the tables below so no caller compares raw strings.
type NotificationType string

const (
	NotificationAchievement NotificationType = "achievement"
	NotificationSocial      NotificationType = "social"
	NotificationSystem      NotificationType = "system"
	NotificationReminder    NotificationType = "reminder"
	NotificationComment     NotificationType = "comment"
	NotificationLike        NotificationType = "like"
)

var notificationActionText = map[NotificationType]string{
	NotificationAchievement: "View achievement",
	NotificationSocial:      "View post",
	NotificationSystem:      "View",
	NotificationReminder:    "Open habit",
	NotificationComment:     "View comment",
	NotificationLike:        "View post",
}

// Valid reports whether t is one of the known notification types.
func (t NotificationType) Valid() bool {
	_, ok := notificationActionText[t]
	return ok
}

// DefaultActionText returns the call-to-action label for the type.
func (t NotificationType) DefaultActionText() string {
	if text, ok := notificationActionText[t]; ok {
		return text
	}
	return notificationActionText[NotificationSystem]
}

type Notification struct {
	NotificationID string            `bson:"_id" json:"id"`
	UserID         string            `bson:"user_id" json:"user_id"`
	Type           NotificationType  `bson:"type" json:"type"`
	Title          string            `bson:"title" json:"title"`
	Message        string            `bson:"message" json:"message"`
	IsRead         bool              `bson:"is_read" json:"is_read"`
	ActionURL      string            `bson:"action_url,omitempty" json:"action_url,omitempty"`
	ActionText     string            `bson:"action_text,omitempty" json:"action_text,omitempty"`
	Metadata       map[string]string `bson:"metadata,omitempty" json:"metadata,omitempty"`
	CreatedAt      time.Time         `bson:"created_at" json:"created_at"`
}
