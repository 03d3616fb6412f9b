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

type UsersRepo struct {
	MongoCollection *mongo.Collection
}

func GetUsersRepo(client *mongo.Client) *UsersRepo {
	dbName := os.Getenv("MONGO_DB")
	collectionName := os.Getenv("USERS_COLLECTION")
	return &UsersRepo{
		MongoCollection: client.Database(dbName).Collection(collectionName),
	}
}

func (r *UsersRepo) Add(ctx context.Context, user *model.User) error {
	timer := utils.TrackDBOperation("insert", "users")
	defer timer.ObserveDuration()

	if user.Username == "" || user.Password == "" {
		utils.TrackError("database", "invalid_user_data")
		return model.ErrValidation
	}

	if _, err := r.MongoCollection.InsertOne(ctx, user); err != nil {
		utils.TrackError("database", "user_creation_failed")
		return err
	}
	return nil
}

func (r *UsersRepo) FindByID(ctx context.Context, userID string) (*model.User, error) {
	timer := utils.TrackDBOperation("find", "users")
	defer timer.ObserveDuration()

	return r.findOne(ctx, bson.M{"user_id": userID})
}

func (r *UsersRepo) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	timer := utils.TrackDBOperation("find", "users")
	defer timer.ObserveDuration()

	return r.findOne(ctx, bson.M{"email": email})
}

func (r *UsersRepo) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	timer := utils.TrackDBOperation("find", "users")
	defer timer.ObserveDuration()

	return r.findOne(ctx, bson.M{"username": username})
}

func (r *UsersRepo) findOne(ctx context.Context, filter bson.M) (*model.User, error) {
	var user model.User
	err := r.MongoCollection.FindOne(ctx, filter).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		utils.TrackError("database", "user_lookup_error")
		return nil, err
	}
	return &user, nil
}

// SaveProgress writes the gamification fields updated by a completion.
func (r *UsersRepo) SaveProgress(ctx context.Context, user *model.User) error {
	timer := utils.TrackDBOperation("update", "users")
	defer timer.ObserveDuration()

	filter := bson.M{"user_id": user.UserID}
	update := bson.M{
		"$set": bson.M{
			"level":            user.Level,
			"experience":       user.Experience,
			"total_experience": user.TotalExperience,
			"streak_count":     user.StreakCount,
			"longest_streak":   user.LongestStreak,
			"achievements":     user.Achievements,
			"updated_at":       time.Now(),
		},
	}

	result, err := r.MongoCollection.UpdateOne(ctx, filter, update)
	if err != nil {
		utils.TrackError("database", "progress_update_failed")
		return err
	}
	if result.MatchedCount == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *UsersRepo) UpdatePassword(ctx context.Context, userID, hashedPassword string) error {
	timer := utils.TrackDBOperation("update", "users")
	defer timer.ObserveDuration()

	if hashedPassword == "" {
		utils.TrackError("database", "invalid_password_hash")
		return model.ErrValidation
	}

	filter := bson.M{"user_id": userID}
	update := bson.M{
		"$set": bson.M{
			"password":   hashedPassword,
			"updated_at": time.Now(),
		},
	}

	result, err := r.MongoCollection.UpdateOne(ctx, filter, update)
	if err != nil {
		utils.TrackError("database", "password_update_failed")
		return err
	}
	if result.MatchedCount == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *UsersRepo) UpdateSettings(ctx context.Context, userID string, settings model.UserSettings) error {
	timer := utils.TrackDBOperation("update", "users")
	defer timer.ObserveDuration()

	filter := bson.M{"user_id": userID}
	update := bson.M{
		"$set": bson.M{
			"settings":   settings,
			"updated_at": time.Now(),
		},
	}

	result, err := r.MongoCollection.UpdateOne(ctx, filter, update)
	if err != nil {
		utils.TrackError("database", "settings_update_failed")
		return err
	}
	if result.MatchedCount == 0 {
		return model.ErrNotFound
	}
	return nil
}

// Touch updates the last-active timestamp.
func (r *UsersRepo) Touch(ctx context.Context, userID string) error {
	timer := utils.TrackDBOperation("update", "users")
	defer timer.ObserveDuration()

	_, err := r.MongoCollection.UpdateOne(ctx,
		bson.M{"user_id": userID},
		bson.M{"$set": bson.M{"last_active": time.Now()}})
	return err
}

// Leaderboard returns the top users by total experience, descending.
func (r *UsersRepo) Leaderboard(ctx context.Context, limit int) ([]model.LeaderboardEntry, error) {
	timer := utils.TrackDBOperation("find", "users")
	defer timer.ObserveDuration()

	opts := options.Find().
		SetSort(bson.D{{Key: "total_experience", Value: -1}}).
		SetLimit(int64(limit)).
		SetProjection(bson.M{
			"user_id":          1,
			"username":         1,
			"avatar":           1,
			"level":            1,
			"total_experience": 1,
		})

	cursor, err := r.MongoCollection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var entries []model.LeaderboardEntry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}
