package services

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"main/model"
	"main/utils"
)

// ReminderHabitSource lists the habits that want reminders.
type ReminderHabitSource interface {
	ListReminderEnabled(ctx context.Context) ([]*model.Habit, error)
}

// ReminderNotifier delivers the reminder as a notification.
type ReminderNotifier interface {
	Dispatch(ctx context.Context, draft model.Notification) (*model.Notification, error)
}

// ReminderScheduler owns one pending timer per habit. RescheduleAll
// rebuilds the timer set from the database; it runs at startup and
// again every hour so habits created or edited between runs pick up
// their slot within the hour.
type ReminderScheduler struct {
	habits   ReminderHabitSource
	notifier ReminderNotifier

	mu     sync.Mutex
	timers map[string]*time.Timer
}

func NewReminderScheduler(habits ReminderHabitSource, notifier ReminderNotifier) *ReminderScheduler {
	return &ReminderScheduler{
		habits:   habits,
		notifier: notifier,
		timers:   make(map[string]*time.Timer),
	}
}

// RescheduleAll drops every pending timer and schedules a fresh one for
// each habit whose reminder is still ahead of now today.
func (s *ReminderScheduler) RescheduleAll(ctx context.Context) error {
	habits, err := s.habits.ListReminderEnabled(ctx)
	if err != nil {
		return fmt.Errorf("failed to load reminder habits: %v", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for id, timer := range s.timers {
		timer.Stop()
		delete(s.timers, id)
	}

	now := time.Now()
	for _, habit := range habits {
		fireAt, ok := nextReminder(habit, now)
		if !ok {
			continue
		}
		s.scheduleLocked(habit, fireAt.Sub(now))
	}

	utils.RemindersScheduled.Set(float64(len(s.timers)))
	return nil
}

// Schedule replaces the pending timer for a single habit, for use right
// after a habit is created or edited.
func (s *ReminderScheduler) Schedule(habit *model.Habit) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cancelLocked(habit.HabitID)

	if !habit.ReminderEnabled || !habit.Active {
		utils.RemindersScheduled.Set(float64(len(s.timers)))
		return
	}

	now := time.Now()
	if fireAt, ok := nextReminder(habit, now); ok {
		s.scheduleLocked(habit, fireAt.Sub(now))
	}
	utils.RemindersScheduled.Set(float64(len(s.timers)))
}

// Cancel drops the pending timer for a habit, if any.
func (s *ReminderScheduler) Cancel(habitID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cancelLocked(habitID)
	utils.RemindersScheduled.Set(float64(len(s.timers)))
}

// Stop cancels every pending timer.
func (s *ReminderScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, timer := range s.timers {
		timer.Stop()
		delete(s.timers, id)
	}
	utils.RemindersScheduled.Set(0)
}

func (s *ReminderScheduler) cancelLocked(habitID string) {
	if timer, ok := s.timers[habitID]; ok {
		timer.Stop()
		delete(s.timers, habitID)
	}
}

func (s *ReminderScheduler) scheduleLocked(habit *model.Habit, delay time.Duration) {
	h := *habit
	s.timers[h.HabitID] = time.AfterFunc(delay, func() {
		s.fire(&h)
	})
}

func (s *ReminderScheduler) fire(habit *model.Habit) {
	s.mu.Lock()
	delete(s.timers, habit.HabitID)
	utils.RemindersScheduled.Set(float64(len(s.timers)))
	s.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := s.notifier.Dispatch(ctx, model.Notification{
		UserID:    habit.UserID,
		Type:      model.NotificationReminder,
		Title:     "Habit Reminder",
		Message:   fmt.Sprintf("Time to complete your habit: %s", habit.Title),
		ActionURL: fmt.Sprintf("/habits/%s", habit.HabitID),
		Metadata:  map[string]string{"habit_id": habit.HabitID},
	})
	if err != nil {
		log.Printf("reminder dispatch failed for habit %s: %v", habit.HabitID, err)
		utils.TrackError("notification", "reminder_dispatch_failed")
	}
}

// nextReminder returns today's reminder instant for the habit, or false
// when the habit is not due today, is already completed today, or the
// slot already passed.
func nextReminder(habit *model.Habit, now time.Time) (time.Time, bool) {
	if habit.ReminderTime == "" {
		return time.Time{}, false
	}
	if !habit.DueOn(now) {
		return time.Time{}, false
	}
	if habit.CompletedOn(model.Midnight(now)) {
		return time.Time{}, false
	}

	parsed, err := time.Parse("15:04", habit.ReminderTime)
	if err != nil {
		return time.Time{}, false
	}

	fireAt := time.Date(now.Year(), now.Month(), now.Day(),
		parsed.Hour(), parsed.Minute(), 0, 0, now.Location())
	if !fireAt.After(now) {
		return time.Time{}, false
	}
	return fireAt, true
}
