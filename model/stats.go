package model

// DailyStats summarizes today's completions across all habits.
type DailyStats struct {
	Total          int     `json:"total"`
	Completed      int     `json:"completed"`
	CompletionRate float64 `json:"completion_rate"`
}

// WeeklyStats buckets the last seven days of history by weekday.
type WeeklyStats struct {
	Labels      []string  `json:"labels"`
	Completions []int     `json:"completions"`
	Totals      []int     `json:"totals"`
	Rates       []float64 `json:"rates"`
}

type StreakStats struct {
	CurrentLongestStreak int     `json:"current_longest_streak"`
	AverageStreak        float64 `json:"average_streak"`
}

type HabitStats struct {
	Daily   DailyStats  `json:"daily"`
	Weekly  WeeklyStats `json:"weekly"`
	Streaks StreakStats `json:"streaks"`
}

// LeaderboardEntry is the public slice of a user shown on the
// leaderboard, ranked by total experience.
type LeaderboardEntry struct {
	UserID          string `bson:"user_id" json:"user_id"`
	Username        string `bson:"username" json:"username"`
	Avatar          string `bson:"avatar,omitempty" json:"avatar,omitempty"`
	Level           int    `bson:"level" json:"level"`
	TotalExperience int    `bson:"total_experience" json:"total_experience"`
}
