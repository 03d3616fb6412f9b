package repository

import (
	"context"
	"os"

	"main/model"
	"main/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type RewardsRepo struct {
	MongoCollection *mongo.Collection
}

func GetRewardsRepo(client *mongo.Client) *RewardsRepo {
	dbName := os.Getenv("MONGO_DB")
	collectionName := os.Getenv("REWARDS_COLLECTION")
	return &RewardsRepo{
		MongoCollection: client.Database(dbName).Collection(collectionName),
	}
}

func (r *RewardsRepo) Insert(ctx context.Context, reward *model.Reward) error {
	timer := utils.TrackDBOperation("insert", "rewards")
	defer timer.ObserveDuration()

	_, err := r.MongoCollection.InsertOne(ctx, reward)
	if err != nil {
		utils.TrackError("database", "reward_creation_failed")
	}
	return err
}

func (r *RewardsRepo) ListByUser(ctx context.Context, userID string) ([]*model.Reward, error) {
	timer := utils.TrackDBOperation("find", "rewards")
	defer timer.ObserveDuration()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.MongoCollection.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rewards []*model.Reward
	if err := cursor.All(ctx, &rewards); err != nil {
		return nil, err
	}
	return rewards, nil
}
