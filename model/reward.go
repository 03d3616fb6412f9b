package model

import "time"

type RewardType string

const (
	RewardAvatar  RewardType = "avatar"
	RewardXPBoost RewardType = "xpBoost"
	RewardBadge   RewardType = "badge"
	RewardEmoji   RewardType = "emoji"
)

// ValidRewardType reports whether t is one of the known reward types.
func ValidRewardType(t RewardType) bool {
	switch t {
	case RewardAvatar, RewardXPBoost, RewardBadge, RewardEmoji:
		return true
	}
	return false
}

type Reward struct {
	RewardID    string     `bson:"_id" json:"id"`
	UserID      string     `bson:"user_id" json:"user_id"`
	Type        RewardType `bson:"type" json:"type"`
	Title       string     `bson:"title" json:"title"`
	Description string     `bson:"description" json:"description"`
	Icon        string     `bson:"icon" json:"icon"`
	IsUsed      bool       `bson:"is_used" json:"is_used"`
	CreatedAt   time.Time  `bson:"created_at" json:"created_at"`
}
