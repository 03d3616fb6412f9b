package usecase

import (
	"context"
	"errors"
	"testing"

	"main/model"

	"github.com/google/uuid"
)

type fakeAccountStore struct {
	users       map[string]*model.User
	leaderboard []model.LeaderboardEntry
	rankQueries int
}

func newFakeAccountStore() *fakeAccountStore {
	return &fakeAccountStore{users: make(map[string]*model.User)}
}

func (s *fakeAccountStore) Add(ctx context.Context, user *model.User) error {
	copied := *user
	s.users[user.UserID] = &copied
	return nil
}

func (s *fakeAccountStore) FindByID(ctx context.Context, userID string) (*model.User, error) {
	u, ok := s.users[userID]
	if !ok {
		return nil, nil
	}
	copied := *u
	return &copied, nil
}

func (s *fakeAccountStore) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	for _, u := range s.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

func (s *fakeAccountStore) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	for _, u := range s.users {
		if u.Username == username {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

func (s *fakeAccountStore) UpdatePassword(ctx context.Context, userID, hashedPassword string) error {
	u, ok := s.users[userID]
	if !ok {
		return model.ErrNotFound
	}
	u.Password = hashedPassword
	return nil
}

func (s *fakeAccountStore) UpdateSettings(ctx context.Context, userID string, settings model.UserSettings) error {
	u, ok := s.users[userID]
	if !ok {
		return model.ErrNotFound
	}
	u.Settings = settings
	return nil
}

func (s *fakeAccountStore) Touch(ctx context.Context, userID string) error {
	return nil
}

func (s *fakeAccountStore) Leaderboard(ctx context.Context, limit int) ([]model.LeaderboardEntry, error) {
	s.rankQueries++
	if len(s.leaderboard) > limit {
		return s.leaderboard[:limit], nil
	}
	return s.leaderboard, nil
}

type fakeLeaderboardCache struct {
	entries []model.LeaderboardEntry
}

func (c *fakeLeaderboardCache) Get(ctx context.Context) ([]model.LeaderboardEntry, error) {
	return c.entries, nil
}

func (c *fakeLeaderboardCache) Set(ctx context.Context, entries []model.LeaderboardEntry) error {
	c.entries = entries
	return nil
}

func (c *fakeLeaderboardCache) Invalidate(ctx context.Context) error {
	c.entries = nil
	return nil
}

func TestRegisterNewUser(t *testing.T) {
	store := newFakeAccountStore()
	service := NewUsersService(store, nil)

	user, err := service.Register(context.Background(), &model.RegisterRequest{
		Username: "alex",
		Email:    "alex@example.com",
		Password: "sunny1!day",
	})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	if user.Level != 1 {
		t.Errorf("Expected level 1, got %d", user.Level)
	}
	if user.Password == "sunny1!day" {
		t.Error("Expected password to be hashed")
	}
	if !user.Settings.NotificationsEnabled {
		t.Error("Expected default settings applied")
	}
	if user.Role != model.RoleUser {
		t.Errorf("Expected user role, got %s", user.Role)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	store := newFakeAccountStore()
	service := NewUsersService(store, nil)

	req := &model.RegisterRequest{
		Username: "alex",
		Email:    "alex@example.com",
		Password: "sunny1!day",
	}
	if _, err := service.Register(context.Background(), req); err != nil {
		t.Fatalf("First register failed: %v", err)
	}

	req.Username = "different"
	_, err := service.Register(context.Background(), req)
	if !errors.Is(err, model.ErrDuplicate) {
		t.Fatalf("Expected ErrDuplicate, got %v", err)
	}
}

func TestAuthenticate(t *testing.T) {
	store := newFakeAccountStore()
	service := NewUsersService(store, nil)

	if _, err := service.Register(context.Background(), &model.RegisterRequest{
		Username: "alex",
		Email:    "alex@example.com",
		Password: "sunny1!day",
	}); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	user, err := service.Authenticate(context.Background(), "alex@example.com", "sunny1!day")
	if err != nil {
		t.Fatalf("Authenticate failed: %v", err)
	}
	if user.Username != "alex" {
		t.Errorf("Wrong user returned: %s", user.Username)
	}

	if _, err := service.Authenticate(context.Background(), "alex@example.com", "wrong2!pw"); err == nil {
		t.Error("Expected wrong password to fail")
	}
	if _, err := service.Authenticate(context.Background(), "nobody@example.com", "sunny1!day"); !errors.Is(err, model.ErrNotFound) {
		t.Errorf("Expected ErrNotFound for unknown email, got %v", err)
	}
}

func TestUpdateSettingsMergesFields(t *testing.T) {
	store := newFakeAccountStore()
	service := NewUsersService(store, nil)

	user, err := service.Register(context.Background(), &model.RegisterRequest{
		Username: "alex",
		Email:    "alex@example.com",
		Password: "sunny1!day",
	})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	darkMode := true
	settings, err := service.UpdateSettings(context.Background(), user.UserID,
		&model.UpdateSettingsRequest{DarkMode: &darkMode})
	if err != nil {
		t.Fatalf("UpdateSettings failed: %v", err)
	}

	if !settings.DarkMode {
		t.Error("Expected dark mode on")
	}
	// Untouched fields keep their previous values.
	if !settings.NotificationsEnabled || settings.Language != "en" {
		t.Errorf("Expected untouched fields preserved, got %+v", settings)
	}
}

func TestLeaderboardUsesCache(t *testing.T) {
	store := newFakeAccountStore()
	store.leaderboard = []model.LeaderboardEntry{
		{UserID: uuid.New().String(), Username: "top", TotalExperience: 900},
	}
	cache := &fakeLeaderboardCache{}
	service := NewUsersService(store, cache)

	first, err := service.Leaderboard(context.Background())
	if err != nil {
		t.Fatalf("Leaderboard failed: %v", err)
	}
	if len(first) != 1 || store.rankQueries != 1 {
		t.Fatalf("Expected one ranking query, got %d", store.rankQueries)
	}

	// Second call must be served from the cache.
	if _, err := service.Leaderboard(context.Background()); err != nil {
		t.Fatalf("Cached leaderboard failed: %v", err)
	}
	if store.rankQueries != 1 {
		t.Errorf("Expected cache hit, ranking ran %d times", store.rankQueries)
	}

	service.InvalidateLeaderboard(context.Background())
	if _, err := service.Leaderboard(context.Background()); err != nil {
		t.Fatalf("Leaderboard after invalidation failed: %v", err)
	}
	if store.rankQueries != 2 {
		t.Errorf("Expected ranking re-run after invalidation, got %d", store.rankQueries)
	}
}
