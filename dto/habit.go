package dto

import (
	"time"

	"main/model"
)

type HabitResponse struct {
	ID              string            `json:"id"`
	Title           string            `json:"title"`
	Description     string            `json:"description,omitempty"`
	Category        string            `json:"category"`
	Frequency       model.Frequency   `json:"frequency"`
	CustomDays      []string          `json:"custom_days,omitempty"`
	TimeOfDay       model.TimeOfDay   `json:"time_of_day"`
	SpecificTime    string            `json:"specific_time,omitempty"`
	ReminderEnabled bool              `json:"reminder_enabled"`
	ReminderTime    string            `json:"reminder_time,omitempty"`
	Difficulty      model.Difficulty  `json:"difficulty"`
	XPReward        int               `json:"xp_reward"`
	Streak          int               `json:"streak"`
	LongestStreak   int               `json:"longest_streak"`
	CompletedToday  bool              `json:"completed_today"`
	TotalCompleted  int               `json:"total_completed"`
	Active          bool              `json:"active"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}

// Convert model.Habit to HabitResponse. CompletedToday is computed
// against the caller's notion of now.
func ToHabitResponse(habit *model.Habit, now time.Time) HabitResponse {
	total := 0
	for _, e := range habit.CompletionHistory {
		if e.Completed {
			total++
		}
	}

	return HabitResponse{
		ID:              habit.HabitID,
		Title:           habit.Title,
		Description:     habit.Description,
		Category:        habit.Category,
		Frequency:       habit.Frequency,
		CustomDays:      habit.CustomDays,
		TimeOfDay:       habit.TimeOfDay,
		SpecificTime:    habit.SpecificTime,
		ReminderEnabled: habit.ReminderEnabled,
		ReminderTime:    habit.ReminderTime,
		Difficulty:      habit.Difficulty,
		XPReward:        habit.XPReward,
		Streak:          habit.Streak,
		LongestStreak:   habit.LongestStreak,
		CompletedToday:  habit.CompletedOn(model.Midnight(now)),
		TotalCompleted:  total,
		Active:          habit.Active,
		CreatedAt:       habit.CreatedAt,
		UpdatedAt:       habit.UpdatedAt,
	}
}

func ToHabitResponses(habits []*model.Habit, now time.Time) []HabitResponse {
	responses := make([]HabitResponse, 0, len(habits))
	for _, h := range habits {
		responses = append(responses, ToHabitResponse(h, now))
	}
	return responses
}
