package usecase

import (
	"context"

	"main/model"
)

// AchievementLister lists the full catalog.
type AchievementLister interface {
	List(ctx context.Context) ([]model.Achievement, error)
}

type AchievementsService struct {
	store AchievementLister
}

func NewAchievementsService(store AchievementLister) *AchievementsService {
	return &AchievementsService{store: store}
}

// ListCatalog returns the visible achievement catalog. Hidden entries
// stay hidden until unlocked.
func (svc *AchievementsService) ListCatalog(ctx context.Context, unlocked []string) ([]model.Achievement, error) {
	catalog, err := svc.store.List(ctx)
	if err != nil {
		return nil, err
	}

	held := make(map[string]bool, len(unlocked))
	for _, id := range unlocked {
		held[id] = true
	}

	visible := catalog[:0:0]
	for _, a := range catalog {
		if a.IsHidden && !held[a.AchievementID] {
			continue
		}
		visible = append(visible, a)
	}
	return visible, nil
}
