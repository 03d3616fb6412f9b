package model

import "time"

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// UserSettings holds per-user client preferences.
type UserSettings struct {
	NotificationsEnabled bool   `bson:"notifications_enabled" json:"notifications_enabled"`
	EmailNotifications   bool   `bson:"email_notifications" json:"email_notifications"`
	DarkMode             bool   `bson:"dark_mode" json:"dark_mode"`
	Language             string `bson:"language" json:"language"`
}

func DefaultSettings() UserSettings {
	return UserSettings{
		NotificationsEnabled: true,
		EmailNotifications:   true,
		Language:             "en",
	}
}

// User carries the gamification progress alongside account data.
// Invariant: 0 <= Experience < 100*Level; TotalExperience never decreases.
type User struct {
	UserID          string       `bson:"user_id" json:"user_id"`
	Username        string       `bson:"username" json:"username" binding:"required,min=3,max=20"`
	Email           string       `bson:"email" json:"email" binding:"required,email"`
	Password        string       `bson:"password" json:"-"`
	Avatar          string       `bson:"avatar,omitempty" json:"avatar,omitempty"`
	Level           int          `bson:"level" json:"level"`
	Experience      int          `bson:"experience" json:"experience"`
	TotalExperience int          `bson:"total_experience" json:"total_experience"`
	StreakCount     int          `bson:"streak_count" json:"streak_count"`
	LongestStreak   int          `bson:"longest_streak" json:"longest_streak"`
	Role            Role         `bson:"role" json:"role"`
	LastActive      time.Time    `bson:"last_active" json:"last_active"`
	Settings        UserSettings `bson:"settings" json:"settings"`
	Achievements    []string     `bson:"achievements" json:"achievements"`
	CreatedAt       time.Time    `bson:"created_at" json:"created_at"`
	UpdatedAt       time.Time    `bson:"updated_at" json:"updated_at"`
}

// HasAchievement reports whether the achievement id is already unlocked.
func (u *User) HasAchievement(id string) bool {
	for _, a := range u.Achievements {
		if a == id {
			return true
		}
	}
	return false
}

// RequiredXP is the experience needed to advance past the given level.
func RequiredXP(level int) int {
	return 100 * level
}
