package usecase

import (
	"context"
	"time"

	"main/model"
	"main/utils"
)

// RewardStore is the persistence surface for collected rewards.
type RewardStore interface {
	Insert(ctx context.Context, reward *model.Reward) error
	ListByUser(ctx context.Context, userID string) ([]*model.Reward, error)
}

type RewardsService struct {
	store RewardStore
}

func NewRewardsService(store RewardStore) *RewardsService {
	return &RewardsService{store: store}
}

func (svc *RewardsService) ListRewards(ctx context.Context, userID string) ([]*model.Reward, error) {
	return svc.store.ListByUser(ctx, userID)
}

// CollectReward records a reward the user earned client-side.
func (svc *RewardsService) CollectReward(ctx context.Context, reward *model.Reward) error {
	if reward.UserID == "" || reward.Title == "" || reward.Description == "" {
		return model.ErrValidation
	}
	if !model.ValidRewardType(reward.Type) {
		return model.ErrValidation
	}
	if reward.Icon == "" {
		reward.Icon = "🎁"
	}
	reward.RewardID = utils.NewID()
	reward.CreatedAt = time.Now()
	return svc.store.Insert(ctx, reward)
}
