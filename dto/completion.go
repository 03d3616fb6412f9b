package dto

import (
	"time"

	"main/model"
	"main/usecase"
)

type CompletionResponse struct {
	Habit           HabitResponse       `json:"habit"`
	XPGained        int                 `json:"xp_gained"`
	AchievementXP   int                 `json:"achievement_xp,omitempty"`
	CurrentXP       int                 `json:"current_xp"`
	Level           int                 `json:"level"`
	LeveledUp       bool                `json:"leveled_up"`
	NewAchievements []model.Achievement `json:"new_achievements"`
}

// Convert a completion outcome to the response shape. previousLevel is
// the user's level before the completion.
func ToCompletionResponse(result *usecase.CompletionResult, previousLevel int, now time.Time) CompletionResponse {
	achievements := result.NewAchievements
	if achievements == nil {
		achievements = []model.Achievement{}
	}
	return CompletionResponse{
		Habit:           ToHabitResponse(result.Habit, now),
		XPGained:        result.XPGained,
		AchievementXP:   result.AchievementXP,
		CurrentXP:       result.User.Experience,
		Level:           result.User.Level,
		LeveledUp:       result.User.Level > previousLevel,
		NewAchievements: achievements,
	}
}
