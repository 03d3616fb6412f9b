package usecase

import (
	"errors"
	"testing"
	"time"

	"main/model"

	"github.com/google/uuid"
)

func newTestHabit(userID string) *model.Habit {
	return &model.Habit{
		HabitID:           uuid.New().String(),
		UserID:            userID,
		Title:             "Morning run",
		Frequency:         model.FrequencyDaily,
		Difficulty:        model.DifficultyMedium,
		XPReward:          10,
		CompletionHistory: []model.CompletionEntry{},
		Active:            true,
	}
}

func newTestUser() *model.User {
	return &model.User{
		UserID:       uuid.New().String(),
		Username:     "tester",
		Level:        1,
		Achievements: []string{},
	}
}

func TestCompleteHabitGrantsXP(t *testing.T) {
	habit := newTestHabit(uuid.New().String())
	user := newTestUser()
	now := time.Date(2026, 3, 10, 14, 30, 0, 0, time.UTC)

	result, err := CompleteHabit(habit, user, now, nil)
	if err != nil {
		t.Fatalf("CompleteHabit failed: %v", err)
	}

	if result.XPGained != 10 {
		t.Errorf("Expected 10 XP gained, got %d", result.XPGained)
	}
	if result.User.Experience != 10 {
		t.Errorf("Expected experience 10, got %d", result.User.Experience)
	}
	if result.User.TotalExperience != 10 {
		t.Errorf("Expected total experience 10, got %d", result.User.TotalExperience)
	}
	if result.Habit.Streak != 1 {
		t.Errorf("Expected streak 1, got %d", result.Habit.Streak)
	}
	if !result.Habit.CompletedOn(model.Midnight(now)) {
		t.Error("Expected today's completion in history")
	}

	// Inputs must stay untouched.
	if user.Experience != 0 || len(habit.CompletionHistory) != 0 {
		t.Error("Expected inputs to be unmodified")
	}
}

func TestCompleteHabitTwiceSameDay(t *testing.T) {
	habit := newTestHabit(uuid.New().String())
	user := newTestUser()
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	result, err := CompleteHabit(habit, user, now, nil)
	if err != nil {
		t.Fatalf("First completion failed: %v", err)
	}

	later := now.Add(8 * time.Hour)
	_, err = CompleteHabit(result.Habit, result.User, later, nil)
	if !errors.Is(err, model.ErrAlreadyCompleted) {
		t.Fatalf("Expected ErrAlreadyCompleted, got %v", err)
	}
}

func TestCompleteHabitLevelUp(t *testing.T) {
	habit := newTestHabit(uuid.New().String())
	user := newTestUser()
	user.Experience = 95
	user.TotalExperience = 95
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	result, err := CompleteHabit(habit, user, now, nil)
	if err != nil {
		t.Fatalf("CompleteHabit failed: %v", err)
	}

	if result.User.Level != 2 {
		t.Errorf("Expected level 2, got %d", result.User.Level)
	}
	if result.User.Experience != 5 {
		t.Errorf("Expected experience 5 after level-up, got %d", result.User.Experience)
	}

	levelUps := 0
	for _, n := range result.Notifications {
		if n.Title == "Level Up!" {
			levelUps++
		}
	}
	if levelUps != 1 {
		t.Errorf("Expected 1 level-up notification, got %d", levelUps)
	}
}

func TestCompleteHabitMultiLevelUp(t *testing.T) {
	// 340 banked XP plus a 10 XP completion crosses level 1 (costs 100)
	// and level 2 (costs 200), landing at level 3 with 50 left over.
	habit := newTestHabit(uuid.New().String())
	user := newTestUser()
	user.Experience = 340
	user.TotalExperience = 340
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	result, err := CompleteHabit(habit, user, now, nil)
	if err != nil {
		t.Fatalf("CompleteHabit failed: %v", err)
	}

	if result.User.Level != 3 {
		t.Errorf("Expected level 3, got %d", result.User.Level)
	}
	if result.User.Experience != 50 {
		t.Errorf("Expected experience 50, got %d", result.User.Experience)
	}

	var levels []string
	for _, n := range result.Notifications {
		if n.Title == "Level Up!" {
			levels = append(levels, n.Message)
		}
	}
	if len(levels) != 2 {
		t.Fatalf("Expected 2 level-up notifications, got %d", len(levels))
	}
	if levels[0] != "Congratulations! You've reached level 2!" ||
		levels[1] != "Congratulations! You've reached level 3!" {
		t.Errorf("Level-up notifications out of order: %v", levels)
	}
}

func TestStreakContinuesFromYesterday(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	habit := newTestHabit(uuid.New().String())
	habit.Streak = 4
	habit.LongestStreak = 4
	habit.CompletionHistory = []model.CompletionEntry{
		{Date: model.Midnight(now.AddDate(0, 0, -1)), Completed: true},
	}
	user := newTestUser()

	result, err := CompleteHabit(habit, user, now, nil)
	if err != nil {
		t.Fatalf("CompleteHabit failed: %v", err)
	}

	if result.Habit.Streak != 5 {
		t.Errorf("Expected streak 5, got %d", result.Habit.Streak)
	}
	if result.Habit.LongestStreak != 5 {
		t.Errorf("Expected longest streak 5, got %d", result.Habit.LongestStreak)
	}
}

func TestStreakResetsAfterMissedDay(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	habit := newTestHabit(uuid.New().String())
	habit.Streak = 7
	habit.LongestStreak = 7
	habit.CompletionHistory = []model.CompletionEntry{
		{Date: model.Midnight(now.AddDate(0, 0, -2)), Completed: true},
	}
	user := newTestUser()

	result, err := CompleteHabit(habit, user, now, nil)
	if err != nil {
		t.Fatalf("CompleteHabit failed: %v", err)
	}

	if result.Habit.Streak != 1 {
		t.Errorf("Expected streak reset to 1, got %d", result.Habit.Streak)
	}
	// Longest streak never shrinks.
	if result.Habit.LongestStreak != 7 {
		t.Errorf("Expected longest streak 7, got %d", result.Habit.LongestStreak)
	}
}

func TestStreakAchievementUnlock(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	habit := newTestHabit(uuid.New().String())
	habit.Streak = 2
	habit.CompletionHistory = []model.CompletionEntry{
		{Date: model.Midnight(now.AddDate(0, 0, -1)), Completed: true},
	}
	user := newTestUser()

	catalog := []model.Achievement{
		{AchievementID: "streak-3", Title: "On a Roll", Type: model.AchievementStreak, Requirement: 3, XPReward: 25},
		{AchievementID: "streak-7", Title: "Week Warrior", Type: model.AchievementStreak, Requirement: 7, XPReward: 50},
	}

	result, err := CompleteHabit(habit, user, now, catalog)
	if err != nil {
		t.Fatalf("CompleteHabit failed: %v", err)
	}

	if len(result.NewAchievements) != 1 || result.NewAchievements[0].AchievementID != "streak-3" {
		t.Fatalf("Expected streak-3 unlock, got %v", result.NewAchievements)
	}
	if result.AchievementXP != 25 {
		t.Errorf("Expected 25 achievement XP, got %d", result.AchievementXP)
	}
	if !result.User.HasAchievement("streak-3") {
		t.Error("Expected streak-3 recorded on user")
	}
	// 10 habit XP + 25 achievement XP.
	if result.User.TotalExperience != 35 {
		t.Errorf("Expected total experience 35, got %d", result.User.TotalExperience)
	}
}

func TestAchievementNotReGranted(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	habit := newTestHabit(uuid.New().String())
	habit.Streak = 3
	habit.CompletionHistory = []model.CompletionEntry{
		{Date: model.Midnight(now.AddDate(0, 0, -1)), Completed: true},
	}
	user := newTestUser()
	user.Achievements = []string{"streak-3"}

	catalog := []model.Achievement{
		{AchievementID: "streak-3", Title: "On a Roll", Type: model.AchievementStreak, Requirement: 3, XPReward: 25},
	}

	result, err := CompleteHabit(habit, user, now, catalog)
	if err != nil {
		t.Fatalf("CompleteHabit failed: %v", err)
	}

	if len(result.NewAchievements) != 0 {
		t.Errorf("Expected no new achievements, got %v", result.NewAchievements)
	}
	if result.AchievementXP != 0 {
		t.Errorf("Expected no achievement XP, got %d", result.AchievementXP)
	}
}

func TestStackedAchievementsUnlockAscending(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	habit := newTestHabit(uuid.New().String())
	habit.Streak = 6
	habit.CompletionHistory = []model.CompletionEntry{
		{Date: model.Midnight(now.AddDate(0, 0, -1)), Completed: true},
	}
	user := newTestUser()

	// Deliberately out of order; the engine must sort by requirement.
	catalog := []model.Achievement{
		{AchievementID: "streak-7", Title: "Week Warrior", Type: model.AchievementStreak, Requirement: 7, XPReward: 50},
		{AchievementID: "streak-3", Title: "On a Roll", Type: model.AchievementStreak, Requirement: 3, XPReward: 25},
	}

	result, err := CompleteHabit(habit, user, now, catalog)
	if err != nil {
		t.Fatalf("CompleteHabit failed: %v", err)
	}

	if len(result.NewAchievements) != 2 {
		t.Fatalf("Expected 2 unlocks, got %d", len(result.NewAchievements))
	}
	if result.NewAchievements[0].AchievementID != "streak-3" ||
		result.NewAchievements[1].AchievementID != "streak-7" {
		t.Errorf("Expected ascending unlock order, got %v", result.NewAchievements)
	}
}

func TestAchievementXPTriggersLevelUp(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	habit := newTestHabit(uuid.New().String())
	habit.Streak = 2
	habit.CompletionHistory = []model.CompletionEntry{
		{Date: model.Midnight(now.AddDate(0, 0, -1)), Completed: true},
	}
	user := newTestUser()
	user.Experience = 80
	user.TotalExperience = 80

	catalog := []model.Achievement{
		{AchievementID: "streak-3", Title: "On a Roll", Type: model.AchievementStreak, Requirement: 3, XPReward: 25},
	}

	// 80 + 10 habit XP = 90, no level-up yet; + 25 achievement XP = 115
	// crosses the level 1 boundary.
	result, err := CompleteHabit(habit, user, now, catalog)
	if err != nil {
		t.Fatalf("CompleteHabit failed: %v", err)
	}

	if result.User.Level != 2 {
		t.Errorf("Expected level 2, got %d", result.User.Level)
	}
	if result.User.Experience != 15 {
		t.Errorf("Expected experience 15, got %d", result.User.Experience)
	}
}
