package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"main/model"

	"github.com/google/uuid"
)

type stubHabitSource struct {
	habits []*model.Habit
}

func (s *stubHabitSource) ListReminderEnabled(ctx context.Context) ([]*model.Habit, error) {
	return s.habits, nil
}

type recordingNotifier struct {
	mu         sync.Mutex
	dispatched []model.Notification
	done       chan struct{}
}

func newRecordingNotifier() *recordingNotifier {
	return &recordingNotifier{done: make(chan struct{}, 8)}
}

func (n *recordingNotifier) Dispatch(ctx context.Context, draft model.Notification) (*model.Notification, error) {
	n.mu.Lock()
	n.dispatched = append(n.dispatched, draft)
	n.mu.Unlock()
	n.done <- struct{}{}
	return &draft, nil
}

func reminderHabit(reminderTime string) *model.Habit {
	return &model.Habit{
		HabitID:         uuid.New().String(),
		UserID:          uuid.New().String(),
		Title:           "Evening walk",
		Frequency:       model.FrequencyDaily,
		ReminderEnabled: true,
		ReminderTime:    reminderTime,
		Active:          true,
	}
}

// clockAhead returns a reminder slot d ahead of now. Slots that would
// land on the next calendar day cannot fire today, so skip the test.
func clockAhead(t *testing.T, d time.Duration) string {
	t.Helper()
	at := time.Now().Add(d)
	if at.Day() != time.Now().Day() {
		t.Skip("reminder slot would cross midnight")
	}
	return at.Format("15:04")
}

func TestNextReminder(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC) // a Tuesday

	tests := []struct {
		name     string
		habit    *model.Habit
		expected bool
	}{
		{
			name: "daily habit with future slot",
			habit: &model.Habit{
				Frequency: model.FrequencyDaily, ReminderTime: "18:30",
			},
			expected: true,
		},
		{
			name: "slot already passed",
			habit: &model.Habit{
				Frequency: model.FrequencyDaily, ReminderTime: "08:00",
			},
			expected: false,
		},
		{
			name: "custom habit due today",
			habit: &model.Habit{
				Frequency: model.FrequencyCustom, CustomDays: []string{"tuesday"},
				ReminderTime: "18:30",
			},
			expected: true,
		},
		{
			name: "custom habit not due today",
			habit: &model.Habit{
				Frequency: model.FrequencyCustom, CustomDays: []string{"friday"},
				ReminderTime: "18:30",
			},
			expected: false,
		},
		{
			name: "already completed today",
			habit: &model.Habit{
				Frequency: model.FrequencyDaily, ReminderTime: "18:30",
				CompletionHistory: []model.CompletionEntry{
					{Date: model.Midnight(now), Completed: true},
				},
			},
			expected: false,
		},
		{
			name: "no reminder time",
			habit: &model.Habit{
				Frequency: model.FrequencyDaily,
			},
			expected: false,
		},
		{
			name: "unparseable reminder time",
			habit: &model.Habit{
				Frequency: model.FrequencyDaily, ReminderTime: "6pm",
			},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fireAt, ok := nextReminder(tt.habit, now)
			if ok != tt.expected {
				t.Fatalf("Expected ok=%v, got %v", tt.expected, ok)
			}
			if ok && !fireAt.After(now) {
				t.Errorf("Fire time %v must be after now", fireAt)
			}
		})
	}
}

func TestNextReminderSameDay(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	habit := &model.Habit{Frequency: model.FrequencyDaily, ReminderTime: "18:30"}

	fireAt, ok := nextReminder(habit, now)
	if !ok {
		t.Fatal("Expected a reminder slot")
	}
	if fireAt.Day() != now.Day() || fireAt.Hour() != 18 || fireAt.Minute() != 30 {
		t.Errorf("Expected 18:30 today, got %v", fireAt)
	}
}

func TestRescheduleAllBuildsTimers(t *testing.T) {
	source := &stubHabitSource{habits: []*model.Habit{
		reminderHabit(clockAhead(t, 2*time.Hour)),
		reminderHabit(clockAhead(t, 3*time.Hour)),
	}}
	scheduler := NewReminderScheduler(source, newRecordingNotifier())
	defer scheduler.Stop()

	if err := scheduler.RescheduleAll(context.Background()); err != nil {
		t.Fatalf("RescheduleAll failed: %v", err)
	}

	scheduler.mu.Lock()
	count := len(scheduler.timers)
	scheduler.mu.Unlock()
	if count != 2 {
		t.Errorf("Expected 2 timers, got %d", count)
	}

	// A second run replaces, not accumulates.
	if err := scheduler.RescheduleAll(context.Background()); err != nil {
		t.Fatalf("Second RescheduleAll failed: %v", err)
	}
	scheduler.mu.Lock()
	count = len(scheduler.timers)
	scheduler.mu.Unlock()
	if count != 2 {
		t.Errorf("Expected 2 timers after rebuild, got %d", count)
	}
}

func TestScheduleReplacesAndCancelRemoves(t *testing.T) {
	scheduler := NewReminderScheduler(&stubHabitSource{}, newRecordingNotifier())
	defer scheduler.Stop()

	habit := reminderHabit(clockAhead(t, 2*time.Hour))
	scheduler.Schedule(habit)
	scheduler.Schedule(habit) // same habit again replaces the timer

	scheduler.mu.Lock()
	count := len(scheduler.timers)
	scheduler.mu.Unlock()
	if count != 1 {
		t.Fatalf("Expected 1 timer, got %d", count)
	}

	scheduler.Cancel(habit.HabitID)
	scheduler.mu.Lock()
	count = len(scheduler.timers)
	scheduler.mu.Unlock()
	if count != 0 {
		t.Errorf("Expected no timers after cancel, got %d", count)
	}
}

func TestRescheduleAllSkipsCompletedHabit(t *testing.T) {
	done := reminderHabit(clockAhead(t, 2*time.Hour))
	done.CompletionHistory = []model.CompletionEntry{
		{Date: model.Midnight(time.Now()), Completed: true},
	}
	source := &stubHabitSource{habits: []*model.Habit{
		done,
		reminderHabit(clockAhead(t, 3*time.Hour)),
	}}
	scheduler := NewReminderScheduler(source, newRecordingNotifier())
	defer scheduler.Stop()

	if err := scheduler.RescheduleAll(context.Background()); err != nil {
		t.Fatalf("RescheduleAll failed: %v", err)
	}

	scheduler.mu.Lock()
	defer scheduler.mu.Unlock()
	if len(scheduler.timers) != 1 {
		t.Errorf("Expected 1 timer, got %d", len(scheduler.timers))
	}
	if _, pending := scheduler.timers[done.HabitID]; pending {
		t.Error("Completed habit must not keep a reminder timer")
	}
}

func TestScheduleSkipsDisabledHabit(t *testing.T) {
	scheduler := NewReminderScheduler(&stubHabitSource{}, newRecordingNotifier())
	defer scheduler.Stop()

	habit := reminderHabit(clockAhead(t, 2*time.Hour))
	habit.ReminderEnabled = false
	scheduler.Schedule(habit)

	scheduler.mu.Lock()
	count := len(scheduler.timers)
	scheduler.mu.Unlock()
	if count != 0 {
		t.Errorf("Expected no timer for disabled reminder, got %d", count)
	}
}

func TestFireDispatchesReminder(t *testing.T) {
	notifier := newRecordingNotifier()
	scheduler := NewReminderScheduler(&stubHabitSource{}, notifier)
	defer scheduler.Stop()

	habit := reminderHabit("12:00")
	scheduler.fire(habit)

	select {
	case <-notifier.done:
	case <-time.After(time.Second):
		t.Fatal("Timed out waiting for reminder dispatch")
	}

	notifier.mu.Lock()
	defer notifier.mu.Unlock()
	if len(notifier.dispatched) != 1 {
		t.Fatalf("Expected 1 dispatch, got %d", len(notifier.dispatched))
	}
	n := notifier.dispatched[0]
	if n.Type != model.NotificationReminder {
		t.Errorf("Expected reminder type, got %s", n.Type)
	}
	if n.UserID != habit.UserID {
		t.Errorf("Expected notification for habit owner")
	}
	if n.Metadata["habit_id"] != habit.HabitID {
		t.Errorf("Expected habit id metadata, got %v", n.Metadata)
	}
}
