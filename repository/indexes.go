package repository

import (
	"context"
	"os"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SetupIndexes creates the indexes the query paths rely on. Creation is
// idempotent so it runs on every startup.
func SetupIndexes(ctx context.Context, client *mongo.Client) error {
	db := client.Database(os.Getenv("MONGO_DB"))

	users := db.Collection(os.Getenv("USERS_COLLECTION"))
	_, err := users.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "user_id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "username", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "total_experience", Value: -1}}},
	})
	if err != nil {
		return err
	}

	habits := db.Collection(os.Getenv("HABITS_COLLECTION"))
	_, err = habits.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "reminder_enabled", Value: 1}, {Key: "active", Value: 1}}},
	})
	if err != nil {
		return err
	}

	notifications := db.Collection(os.Getenv("NOTIFICATIONS_COLLECTION"))
	_, err = notifications.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "is_read", Value: 1}}},
	})
	if err != nil {
		return err
	}

	posts := db.Collection(os.Getenv("POSTS_COLLECTION"))
	_, err = posts.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "visibility", Value: 1}, {Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "user_id", Value: 1}}},
	})
	if err != nil {
		return err
	}

	rewards := db.Collection(os.Getenv("REWARDS_COLLECTION"))
	_, err = rewards.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}},
	})
	return err
}
