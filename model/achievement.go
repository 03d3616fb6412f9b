package model

import "time"

type AchievementType string

const (
	AchievementStreak     AchievementType = "streak"
	AchievementCompletion AchievementType = "completion"
	AchievementLevel      AchievementType = "level"
	AchievementCommunity  AchievementType = "community"
)

// Achievement is a row in the static catalog. The catalog is seeded at
// startup and never mutated by request handlers.
type Achievement struct {
	AchievementID string          `bson:"_id" json:"id"`
	Title         string          `bson:"title" json:"title"`
	Description   string          `bson:"description" json:"description"`
	Type          AchievementType `bson:"type" json:"type"`
	Requirement   int             `bson:"requirement" json:"requirement"`
	XPReward      int             `bson:"xp_reward" json:"xp_reward"`
	Icon          string          `bson:"icon,omitempty" json:"icon,omitempty"`
	IsHidden      bool            `bson:"is_hidden" json:"is_hidden"`
	CreatedAt     time.Time       `bson:"created_at" json:"created_at"`
}

// DefaultAchievements is the seed catalog.
func DefaultAchievements() []Achievement {
	return []Achievement{
		{AchievementID: "streak-3", Title: "Getting Started", Description: "Keep a habit streak for 3 days", Type: AchievementStreak, Requirement: 3, XPReward: 25, Icon: "🔥"},
		{AchievementID: "streak-7", Title: "One Week Wonder", Description: "Keep a habit streak for 7 days", Type: AchievementStreak, Requirement: 7, XPReward: 50, Icon: "🔥"},
		{AchievementID: "streak-14", Title: "Fortnight Fighter", Description: "Keep a habit streak for 14 days", Type: AchievementStreak, Requirement: 14, XPReward: 100, Icon: "🔥"},
		{AchievementID: "streak-30", Title: "Monthly Master", Description: "Keep a habit streak for 30 days", Type: AchievementStreak, Requirement: 30, XPReward: 200, Icon: "🏆"},
		{AchievementID: "streak-100", Title: "Centurion", Description: "Keep a habit streak for 100 days", Type: AchievementStreak, Requirement: 100, XPReward: 500, Icon: "🏆", IsHidden: true},
		{AchievementID: "level-5", Title: "Rising Star", Description: "Reach level 5", Type: AchievementLevel, Requirement: 5, XPReward: 50, Icon: "⭐"},
		{AchievementID: "level-10", Title: "Habit Hero", Description: "Reach level 10", Type: AchievementLevel, Requirement: 10, XPReward: 100, Icon: "⭐"},
		{AchievementID: "completion-50", Title: "Fifty Strong", Description: "Complete habits 50 times", Type: AchievementCompletion, Requirement: 50, XPReward: 100, Icon: "✅"},
	}
}
