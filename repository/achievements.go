package repository

import (
	"context"
	"os"
	"time"

	"main/model"
	"main/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type AchievementsRepo struct {
	MongoCollection *mongo.Collection
}

func GetAchievementsRepo(client *mongo.Client) *AchievementsRepo {
	dbName := os.Getenv("MONGO_DB")
	collectionName := os.Getenv("ACHIEVEMENTS_COLLECTION")
	return &AchievementsRepo{
		MongoCollection: client.Database(dbName).Collection(collectionName),
	}
}

// EnsureSeed upserts the default catalog. Safe to run on every startup;
// existing rows are left untouched except for catalog field changes.
func (r *AchievementsRepo) EnsureSeed(ctx context.Context) error {
	timer := utils.TrackDBOperation("upsert", "achievements")
	defer timer.ObserveDuration()

	for _, a := range model.DefaultAchievements() {
		a.CreatedAt = time.Now()
		filter := bson.M{"_id": a.AchievementID}
		update := bson.M{
			"$set": bson.M{
				"title":       a.Title,
				"description": a.Description,
				"type":        a.Type,
				"requirement": a.Requirement,
				"xp_reward":   a.XPReward,
				"icon":        a.Icon,
				"is_hidden":   a.IsHidden,
			},
			"$setOnInsert": bson.M{"created_at": a.CreatedAt},
		}
		opts := options.Update().SetUpsert(true)
		if _, err := r.MongoCollection.UpdateOne(ctx, filter, update, opts); err != nil {
			utils.TrackError("database", "achievement_seed_failed")
			return err
		}
	}
	return nil
}

func (r *AchievementsRepo) List(ctx context.Context) ([]model.Achievement, error) {
	timer := utils.TrackDBOperation("find", "achievements")
	defer timer.ObserveDuration()

	return r.list(ctx, bson.M{})
}

func (r *AchievementsRepo) ListByType(ctx context.Context, t model.AchievementType) ([]model.Achievement, error) {
	timer := utils.TrackDBOperation("find", "achievements")
	defer timer.ObserveDuration()

	return r.list(ctx, bson.M{"type": t})
}

func (r *AchievementsRepo) list(ctx context.Context, filter bson.M) ([]model.Achievement, error) {
	opts := options.Find().SetSort(bson.D{{Key: "requirement", Value: 1}})
	cursor, err := r.MongoCollection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var achievements []model.Achievement
	if err := cursor.All(ctx, &achievements); err != nil {
		return nil, err
	}
	return achievements, nil
}
