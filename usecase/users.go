package usecase

import (
	"context"
	"time"

	"main/model"
	"main/services"
	"main/utils"
)

// UserStore is the persistence surface for user accounts.
type UserStore interface {
	Add(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, userID string) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	UpdatePassword(ctx context.Context, userID, hashedPassword string) error
	UpdateSettings(ctx context.Context, userID string, settings model.UserSettings) error
	Touch(ctx context.Context, userID string) error
	Leaderboard(ctx context.Context, limit int) ([]model.LeaderboardEntry, error)
}

// LeaderboardCache caches the computed leaderboard page. A nil result
// with nil error means a cache miss.
type LeaderboardCache interface {
	Get(ctx context.Context) ([]model.LeaderboardEntry, error)
	Set(ctx context.Context, entries []model.LeaderboardEntry) error
	Invalidate(ctx context.Context) error
}

const LeaderboardSize = 50

type UsersService struct {
	store UserStore
	cache LeaderboardCache
}

func NewUsersService(store UserStore, cache LeaderboardCache) *UsersService {
	return &UsersService{store: store, cache: cache}
}

// Register creates a new account with hashed credentials and fresh
// gamification state.
func (svc *UsersService) Register(ctx context.Context, req *model.RegisterRequest) (*model.User, error) {
	if existing, err := svc.store.FindByEmail(ctx, req.Email); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, model.ErrDuplicate
	}
	if existing, err := svc.store.FindByUsername(ctx, req.Username); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, model.ErrDuplicate
	}

	hashed, err := services.HashPassword(req.Password)
	if err != nil {
		return nil, model.ErrValidation
	}

	now := time.Now()
	user := &model.User{
		UserID:       utils.NewID(),
		Username:     req.Username,
		Email:        req.Email,
		Password:     hashed,
		Level:        1,
		Role:         model.RoleUser,
		LastActive:   now,
		Settings:     model.DefaultSettings(),
		Achievements: []string{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := svc.store.Add(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Authenticate verifies email and password and returns the user.
func (svc *UsersService) Authenticate(ctx context.Context, email, password string) (*model.User, error) {
	user, err := svc.store.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, model.ErrNotFound
	}
	if !services.ComparePasswords(user.Password, password) {
		return nil, model.ErrNotOwner
	}
	if err := svc.store.Touch(ctx, user.UserID); err != nil {
		utils.TrackError("database", "last_active_update_failed")
	}
	return user, nil
}

func (svc *UsersService) Profile(ctx context.Context, userID string) (*model.User, error) {
	user, err := svc.store.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, model.ErrNotFound
	}
	return user, nil
}

// UpdatePassword verifies the current password before setting the new
// one.
func (svc *UsersService) UpdatePassword(ctx context.Context, userID string, req *model.UpdatePasswordRequest) error {
	user, err := svc.Profile(ctx, userID)
	if err != nil {
		return err
	}
	if !services.ComparePasswords(user.Password, req.CurrentPassword) {
		return model.ErrValidation
	}
	hashed, err := services.HashPassword(req.NewPassword)
	if err != nil {
		return model.ErrValidation
	}
	return svc.store.UpdatePassword(ctx, userID, hashed)
}

// UpdateSettings merges the provided fields into the stored settings.
func (svc *UsersService) UpdateSettings(ctx context.Context, userID string, req *model.UpdateSettingsRequest) (*model.UserSettings, error) {
	user, err := svc.Profile(ctx, userID)
	if err != nil {
		return nil, err
	}

	settings := user.Settings
	if req.NotificationsEnabled != nil {
		settings.NotificationsEnabled = *req.NotificationsEnabled
	}
	if req.EmailNotifications != nil {
		settings.EmailNotifications = *req.EmailNotifications
	}
	if req.DarkMode != nil {
		settings.DarkMode = *req.DarkMode
	}
	if req.Language != nil && *req.Language != "" {
		settings.Language = *req.Language
	}

	if err := svc.store.UpdateSettings(ctx, userID, settings); err != nil {
		return nil, err
	}
	return &settings, nil
}

// Leaderboard returns the top users by total experience, served from
// the cache when warm.
func (svc *UsersService) Leaderboard(ctx context.Context) ([]model.LeaderboardEntry, error) {
	if svc.cache != nil {
		if entries, err := svc.cache.Get(ctx); err == nil && entries != nil {
			return entries, nil
		}
	}

	entries, err := svc.store.Leaderboard(ctx, LeaderboardSize)
	if err != nil {
		return nil, err
	}

	if svc.cache != nil {
		if err := svc.cache.Set(ctx, entries); err != nil {
			utils.TrackError("cache", "leaderboard_set_failed")
		}
	}
	return entries, nil
}

// InvalidateLeaderboard drops the cached page after an XP write.
func (svc *UsersService) InvalidateLeaderboard(ctx context.Context) {
	if svc.cache == nil {
		return
	}
	if err := svc.cache.Invalidate(ctx); err != nil {
		utils.TrackError("cache", "leaderboard_invalidate_failed")
	}
}
