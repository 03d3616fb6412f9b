package usecase

import (
	"context"
	"time"

	"main/model"
	"main/utils"
)

// HabitStore is the persistence surface the habits service needs.
type HabitStore interface {
	Create(ctx context.Context, habit *model.Habit) error
	FindByID(ctx context.Context, habitID string) (*model.Habit, error)
	ListByUser(ctx context.Context, userID string) ([]*model.Habit, error)
	ListReminderEnabled(ctx context.Context) ([]*model.Habit, error)
	Update(ctx context.Context, habit *model.Habit) error
	// ApplyCompletion persists the streak fields and pushes the day's
	// history entry in one guarded update. It must fail with
	// model.ErrAlreadyCompleted when an entry for the day already
	// exists, so racing requests cannot double-apply.
	ApplyCompletion(ctx context.Context, habit *model.Habit, day time.Time) error
	Delete(ctx context.Context, habitID string) error
}

// UserProgressStore reads and writes the gamification fields of a user.
type UserProgressStore interface {
	FindByID(ctx context.Context, userID string) (*model.User, error)
	SaveProgress(ctx context.Context, user *model.User) error
}

// AchievementCatalog lists the static achievement catalog.
type AchievementCatalog interface {
	ListByType(ctx context.Context, t model.AchievementType) ([]model.Achievement, error)
}

// Notifier persists a notification draft.
type Notifier interface {
	Dispatch(ctx context.Context, draft model.Notification) (*model.Notification, error)
}

type HabitsService struct {
	habits       HabitStore
	users        UserProgressStore
	achievements AchievementCatalog
	notifier     Notifier
}

func NewHabitsService(habits HabitStore, users UserProgressStore, achievements AchievementCatalog, notifier Notifier) *HabitsService {
	return &HabitsService{
		habits:       habits,
		users:        users,
		achievements: achievements,
		notifier:     notifier,
	}
}

// CreateHabit validates the habit, derives its XP reward from the
// difficulty and persists it.
func (svc *HabitsService) CreateHabit(ctx context.Context, habit *model.Habit) error {
	if habit.UserID == "" || habit.Title == "" {
		return model.ErrValidation
	}
	if habit.Frequency == "" {
		habit.Frequency = model.FrequencyDaily
	}
	if !model.ValidFrequency(habit.Frequency) {
		return model.ErrValidation
	}
	if habit.Difficulty == "" {
		habit.Difficulty = model.DifficultyMedium
	}
	if !model.ValidDifficulty(habit.Difficulty) {
		return model.ErrValidation
	}
	if habit.ReminderEnabled && !utils.ValidateClockTime(habit.ReminderTime) {
		return model.ErrValidation
	}
	if habit.Category == "" {
		habit.Category = "general"
	}
	if habit.TimeOfDay == "" {
		habit.TimeOfDay = model.TimeAnytime
	}

	habit.XPReward = habit.Difficulty.XPReward()
	habit.Active = true
	habit.CompletionHistory = []model.CompletionEntry{}

	now := time.Now()
	habit.HabitID = utils.NewID()
	habit.CreatedAt = now
	habit.UpdatedAt = now

	return svc.habits.Create(ctx, habit)
}

func (svc *HabitsService) GetUserHabits(ctx context.Context, userID string) ([]*model.Habit, error) {
	return svc.habits.ListByUser(ctx, userID)
}

// GetHabit returns the habit after verifying ownership.
func (svc *HabitsService) GetHabit(ctx context.Context, habitID, userID string) (*model.Habit, error) {
	habit, err := svc.habits.FindByID(ctx, habitID)
	if err != nil {
		return nil, err
	}
	if habit == nil {
		return nil, model.ErrNotFound
	}
	if habit.UserID != userID {
		return nil, model.ErrNotOwner
	}
	return habit, nil
}

// UpdateHabit applies the editable fields of updates onto the owned
// habit. Streaks and history are never writable through this path.
func (svc *HabitsService) UpdateHabit(ctx context.Context, habitID, userID string, updates *model.Habit) (*model.Habit, error) {
	existing, err := svc.GetHabit(ctx, habitID, userID)
	if err != nil {
		return nil, err
	}

	if updates.Title != "" {
		existing.Title = updates.Title
	}
	if updates.Description != "" {
		existing.Description = updates.Description
	}
	if updates.Category != "" {
		existing.Category = updates.Category
	}
	if updates.Frequency != "" {
		if !model.ValidFrequency(updates.Frequency) {
			return nil, model.ErrValidation
		}
		existing.Frequency = updates.Frequency
	}
	if updates.CustomDays != nil {
		existing.CustomDays = updates.CustomDays
	}
	if updates.TimeOfDay != "" {
		existing.TimeOfDay = updates.TimeOfDay
	}
	if updates.SpecificTime != "" {
		existing.SpecificTime = updates.SpecificTime
	}
	if updates.Difficulty != "" {
		if !model.ValidDifficulty(updates.Difficulty) {
			return nil, model.ErrValidation
		}
		existing.Difficulty = updates.Difficulty
		existing.XPReward = updates.Difficulty.XPReward()
	}
	if updates.ReminderTime != "" {
		if !utils.ValidateClockTime(updates.ReminderTime) {
			return nil, model.ErrValidation
		}
		existing.ReminderTime = updates.ReminderTime
	}
	existing.ReminderEnabled = updates.ReminderEnabled
	if existing.ReminderEnabled && !utils.ValidateClockTime(existing.ReminderTime) {
		return nil, model.ErrValidation
	}
	existing.UpdatedAt = time.Now()

	if err := svc.habits.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (svc *HabitsService) DeleteHabit(ctx context.Context, habitID, userID string) error {
	if _, err := svc.GetHabit(ctx, habitID, userID); err != nil {
		return err
	}
	return svc.habits.Delete(ctx, habitID)
}

// CompleteHabit runs the gamification engine for one completion and
// persists the result. The habit write is guarded against a concurrent
// completion for the same day; when the guard trips nothing else is
// written.
func (svc *HabitsService) CompleteHabit(ctx context.Context, habitID, userID string, now time.Time) (*CompletionResult, error) {
	habit, err := svc.GetHabit(ctx, habitID, userID)
	if err != nil {
		return nil, err
	}

	user, err := svc.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, model.ErrNotFound
	}

	catalog, err := svc.achievements.ListByType(ctx, model.AchievementStreak)
	if err != nil {
		return nil, err
	}

	result, err := CompleteHabit(habit, user, now, catalog)
	if err != nil {
		return nil, err
	}

	if err := svc.habits.ApplyCompletion(ctx, result.Habit, model.Midnight(now)); err != nil {
		return nil, err
	}

	if err := svc.users.SaveProgress(ctx, result.User); err != nil {
		return nil, err
	}

	for _, draft := range result.Notifications {
		if _, err := svc.notifier.Dispatch(ctx, draft); err != nil {
			utils.TrackError("notification", "dispatch_failed")
		}
	}

	utils.HabitCompletionsTotal.Inc()
	utils.XPGrantedTotal.WithLabelValues("habit").Add(float64(result.XPGained))
	if result.AchievementXP > 0 {
		utils.XPGrantedTotal.WithLabelValues("achievement").Add(float64(result.AchievementXP))
	}
	utils.LevelUpsTotal.Add(float64(result.User.Level - user.Level))
	utils.AchievementUnlocksTotal.Add(float64(len(result.NewAchievements)))

	return result, nil
}

// GetHabitStats aggregates the read-side completion statistics.
func (svc *HabitsService) GetHabitStats(ctx context.Context, userID string, now time.Time) (*model.HabitStats, error) {
	habits, err := svc.habits.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return ComputeHabitStats(habits, now), nil
}

// ComputeHabitStats builds daily, weekly and streak aggregates from the
// habits' completion histories.
func ComputeHabitStats(habits []*model.Habit, now time.Time) *model.HabitStats {
	today := model.Midnight(now)

	stats := &model.HabitStats{}
	stats.Daily.Total = len(habits)
	for _, h := range habits {
		if h.CompletedOn(today) {
			stats.Daily.Completed++
		}
	}
	if stats.Daily.Total > 0 {
		stats.Daily.CompletionRate = float64(stats.Daily.Completed) / float64(stats.Daily.Total) * 100
	}

	// Last seven days, oldest first, only days with history entries.
	oneWeekAgo := today.AddDate(0, 0, -7)
	for day := oneWeekAgo; !day.After(today); day = day.AddDate(0, 0, 1) {
		total, completed := 0, 0
		for _, h := range habits {
			if e := h.EntryOn(day); e != nil {
				total++
				if e.Completed {
					completed++
				}
			}
		}
		if total == 0 {
			continue
		}
		stats.Weekly.Labels = append(stats.Weekly.Labels, day.Weekday().String()[:3])
		stats.Weekly.Totals = append(stats.Weekly.Totals, total)
		stats.Weekly.Completions = append(stats.Weekly.Completions, completed)
		stats.Weekly.Rates = append(stats.Weekly.Rates, float64(completed)/float64(total)*100)
	}

	streakSum := 0
	for _, h := range habits {
		if h.LongestStreak > stats.Streaks.CurrentLongestStreak {
			stats.Streaks.CurrentLongestStreak = h.LongestStreak
		}
		streakSum += h.Streak
	}
	if len(habits) > 0 {
		stats.Streaks.AverageStreak = float64(streakSum) / float64(len(habits))
	}

	return stats
}
