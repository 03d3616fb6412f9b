package dto

import (
	"time"

	"main/model"
)

type UserResponse struct {
	ID              string             `json:"id"`
	Username        string             `json:"username"`
	Email           string             `json:"email"`
	Avatar          string             `json:"avatar,omitempty"`
	Level           int                `json:"level"`
	Experience      int                `json:"experience"`
	XPToNextLevel   int                `json:"xp_to_next_level"`
	TotalExperience int                `json:"total_experience"`
	StreakCount     int                `json:"streak_count"`
	LongestStreak   int                `json:"longest_streak"`
	Achievements    []string           `json:"achievements"`
	Settings        model.UserSettings `json:"settings"`
	LastActive      time.Time          `json:"last_active"`
	CreatedAt       time.Time          `json:"created_at"`
}

// Convert model.User to UserResponse
func ToUserResponse(user *model.User) UserResponse {
	achievements := user.Achievements
	if achievements == nil {
		achievements = []string{}
	}
	return UserResponse{
		ID:              user.UserID,
		Username:        user.Username,
		Email:           user.Email,
		Avatar:          user.Avatar,
		Level:           user.Level,
		Experience:      user.Experience,
		XPToNextLevel:   model.RequiredXP(user.Level) - user.Experience,
		TotalExperience: user.TotalExperience,
		StreakCount:     user.StreakCount,
		LongestStreak:   user.LongestStreak,
		Achievements:    achievements,
		Settings:        user.Settings,
		LastActive:      user.LastActive,
		CreatedAt:       user.CreatedAt,
	}
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
