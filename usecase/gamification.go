package usecase

import (
	"fmt"
	"sort"
	"time"

	"main/model"
)

// CompletionResult is the outcome of a successful habit completion.
// Habit and User are updated copies; the caller persists them.
type CompletionResult struct {
	Habit           *model.Habit
	User            *model.User
	XPGained        int
	AchievementXP   int
	NewAchievements []model.Achievement
	Notifications   []model.Notification
}

// CompleteHabit applies one habit completion for the given day: it
// appends the history entry, updates streaks, grants XP, resolves
// level-ups and unlocks streak achievements. The inputs are never
// mutated; on any error nothing is changed.
//
// The streak counts consecutive completions ending today, including
// today's, so a missed day resets it to 1 on the next completion.
func CompleteHabit(habit *model.Habit, user *model.User, now time.Time, streakAchievements []model.Achievement) (*CompletionResult, error) {
	today := model.Midnight(now)

	if habit.EntryOn(today) != nil {
		return nil, model.ErrAlreadyCompleted
	}

	h := cloneHabit(habit)
	u := cloneUser(user)

	h.CompletionHistory = append(h.CompletionHistory, model.CompletionEntry{
		Date:      today,
		Completed: true,
	})

	yesterday := today.AddDate(0, 0, -1)
	if h.CompletedOn(yesterday) {
		h.Streak++
	} else {
		h.Streak = 1
	}
	if h.Streak > h.LongestStreak {
		h.LongestStreak = h.Streak
	}

	result := &CompletionResult{
		Habit:    h,
		User:     u,
		XPGained: h.XPReward,
	}

	u.Experience += h.XPReward
	u.TotalExperience += h.XPReward
	result.Notifications = append(result.Notifications, resolveLevelUps(u)...)

	// Scan ascending by requirement so stacked unlocks process in a
	// stable order.
	catalog := make([]model.Achievement, len(streakAchievements))
	copy(catalog, streakAchievements)
	sort.Slice(catalog, func(i, j int) bool {
		return catalog[i].Requirement < catalog[j].Requirement
	})

	for _, a := range catalog {
		if a.Requirement > h.Streak || u.HasAchievement(a.AchievementID) {
			continue
		}
		u.Achievements = append(u.Achievements, a.AchievementID)
		u.Experience += a.XPReward
		u.TotalExperience += a.XPReward
		result.AchievementXP += a.XPReward
		result.NewAchievements = append(result.NewAchievements, a)

		result.Notifications = append(result.Notifications, model.Notification{
			UserID:  u.UserID,
			Type:    model.NotificationAchievement,
			Title:   "New Achievement Unlocked!",
			Message: fmt.Sprintf("You've earned the %q achievement!", a.Title),
			Metadata: map[string]string{
				"habit_id":       h.HabitID,
				"achievement_id": a.AchievementID,
			},
		})
		result.Notifications = append(result.Notifications, resolveLevelUps(u)...)
	}

	return result, nil
}

// resolveLevelUps drains experience into level-ups until the invariant
// experience < RequiredXP(level) holds again. One large grant can cross
// several level boundaries; a notification is emitted per level in
// ascending order.
func resolveLevelUps(u *model.User) []model.Notification {
	var notes []model.Notification
	for u.Experience >= model.RequiredXP(u.Level) {
		u.Experience -= model.RequiredXP(u.Level)
		u.Level++
		notes = append(notes, model.Notification{
			UserID:  u.UserID,
			Type:    model.NotificationAchievement,
			Title:   "Level Up!",
			Message: fmt.Sprintf("Congratulations! You've reached level %d!", u.Level),
		})
	}
	return notes
}

func cloneHabit(h *model.Habit) *model.Habit {
	c := *h
	c.CompletionHistory = make([]model.CompletionEntry, len(h.CompletionHistory))
	copy(c.CompletionHistory, h.CompletionHistory)
	c.CustomDays = append([]string(nil), h.CustomDays...)
	return &c
}

func cloneUser(u *model.User) *model.User {
	c := *u
	c.Achievements = append([]string(nil), u.Achievements...)
	return &c
}
