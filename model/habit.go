package model

import (
	"strings"
	"time"
)

type Frequency string
type Difficulty string
type TimeOfDay string

const (
	FrequencyDaily  Frequency = "daily"
	FrequencyWeekly Frequency = "weekly"
	FrequencyCustom Frequency = "custom"

	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"

	TimeMorning   TimeOfDay = "morning"
	TimeAfternoon TimeOfDay = "afternoon"
	TimeEvening   TimeOfDay = "evening"
	TimeAnytime   TimeOfDay = "anytime"
)

// XPReward maps difficulty to the XP granted per completion.
func (d Difficulty) XPReward() int {
	switch d {
	case DifficultyEasy:
		return 5
	case DifficultyHard:
		return 15
	default:
		return 10
	}
}

// CompletionEntry is one calendar day in a habit's history. Dates are
// stored truncated to midnight; at most one entry exists per day.
type CompletionEntry struct {
	Date      time.Time `bson:"date" json:"date"`
	Completed bool      `bson:"completed" json:"completed"`
}

type Habit struct {
	HabitID           string            `bson:"_id" json:"id"`
	UserID            string            `bson:"user_id" json:"user_id"`
	Title             string            `bson:"title" json:"title" binding:"required"`
	Description       string            `bson:"description,omitempty" json:"description,omitempty"`
	Category          string            `bson:"category" json:"category"`
	Frequency         Frequency         `bson:"frequency" json:"frequency"`
	CustomDays        []string          `bson:"custom_days,omitempty" json:"custom_days,omitempty"`
	TimeOfDay         TimeOfDay         `bson:"time_of_day" json:"time_of_day"`
	SpecificTime      string            `bson:"specific_time,omitempty" json:"specific_time,omitempty"`
	ReminderEnabled   bool              `bson:"reminder_enabled" json:"reminder_enabled"`
	ReminderTime      string            `bson:"reminder_time,omitempty" json:"reminder_time,omitempty"`
	Difficulty        Difficulty        `bson:"difficulty" json:"difficulty"`
	XPReward          int               `bson:"xp_reward" json:"xp_reward"`
	Streak            int               `bson:"streak" json:"streak"`
	LongestStreak     int               `bson:"longest_streak" json:"longest_streak"`
	CompletionHistory []CompletionEntry `bson:"completion_history" json:"completion_history"`
	Active            bool              `bson:"active" json:"active"`
	CreatedAt         time.Time         `bson:"created_at" json:"created_at"`
	UpdatedAt         time.Time         `bson:"updated_at" json:"updated_at"`
}

// Midnight truncates t to the start of its calendar day.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EntryOn returns the history entry for the given day, if any.
func (h *Habit) EntryOn(day time.Time) *CompletionEntry {
	day = Midnight(day)
	for i := range h.CompletionHistory {
		if Midnight(h.CompletionHistory[i].Date).Equal(day) {
			return &h.CompletionHistory[i]
		}
	}
	return nil
}

// CompletedOn reports whether the habit was completed on the given day.
func (h *Habit) CompletedOn(day time.Time) bool {
	e := h.EntryOn(day)
	return e != nil && e.Completed
}

// DueOn reports whether the habit is scheduled for the given day.
// Daily habits are always due; custom habits are due when the weekday
// matches one of CustomDays. Weekly habits never match here.
// TODO: decide a due-day rule for weekly habits so their reminders fire.
func (h *Habit) DueOn(day time.Time) bool {
	switch h.Frequency {
	case FrequencyDaily:
		return true
	case FrequencyCustom:
		weekday := strings.ToLower(day.Weekday().String())
		for _, d := range h.CustomDays {
			if strings.ToLower(d) == weekday {
				return true
			}
		}
	}
	return false
}

// ValidFrequency reports whether f is one of the known frequencies.
func ValidFrequency(f Frequency) bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly, FrequencyCustom:
		return true
	}
	return false
}

// ValidDifficulty reports whether d is one of the known difficulties.
func ValidDifficulty(d Difficulty) bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}
