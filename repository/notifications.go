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

type NotificationsRepo struct {
	MongoCollection *mongo.Collection
}

func GetNotificationsRepo(client *mongo.Client) *NotificationsRepo {
	dbName := os.Getenv("MONGO_DB")
	collectionName := os.Getenv("NOTIFICATIONS_COLLECTION")
	return &NotificationsRepo{
		MongoCollection: client.Database(dbName).Collection(collectionName),
	}
}

func (r *NotificationsRepo) Insert(ctx context.Context, n *model.Notification) error {
	timer := utils.TrackDBOperation("insert", "notifications")
	defer timer.ObserveDuration()

	_, err := r.MongoCollection.InsertOne(ctx, n)
	if err != nil {
		utils.TrackError("database", "notification_creation_failed")
	}
	return err
}

// ListByUser returns the user's notifications, newest first.
func (r *NotificationsRepo) ListByUser(ctx context.Context, userID string) ([]*model.Notification, error) {
	timer := utils.TrackDBOperation("find", "notifications")
	defer timer.ObserveDuration()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.MongoCollection.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var notifications []*model.Notification
	if err := cursor.All(ctx, &notifications); err != nil {
		return nil, err
	}
	return notifications, nil
}

func (r *NotificationsRepo) FindByID(ctx context.Context, id string) (*model.Notification, error) {
	timer := utils.TrackDBOperation("find", "notifications")
	defer timer.ObserveDuration()

	var n model.Notification
	err := r.MongoCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&n)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		utils.TrackError("database", "notification_lookup_error")
		return nil, err
	}
	return &n, nil
}

func (r *NotificationsRepo) SetRead(ctx context.Context, id string) error {
	timer := utils.TrackDBOperation("update", "notifications")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"is_read": true}})
	if err != nil {
		utils.TrackError("database", "notification_update_failed")
		return err
	}
	if result.MatchedCount == 0 {
		return model.ErrNotFound
	}
	return nil
}

// SetAllRead marks every unread notification for the user as read and
// returns how many were modified.
func (r *NotificationsRepo) SetAllRead(ctx context.Context, userID string) (int64, error) {
	timer := utils.TrackDBOperation("update", "notifications")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.UpdateMany(ctx,
		bson.M{"user_id": userID, "is_read": false},
		bson.M{"$set": bson.M{"is_read": true}})
	if err != nil {
		utils.TrackError("database", "notification_update_failed")
		return 0, err
	}
	return result.ModifiedCount, nil
}

func (r *NotificationsRepo) Delete(ctx context.Context, id string) error {
	timer := utils.TrackDBOperation("delete", "notifications")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		utils.TrackError("database", "notification_deletion_failed")
		return err
	}
	if result.DeletedCount == 0 {
		return model.ErrNotFound
	}
	return nil
}

// DeleteRead removes every read notification for the user.
func (r *NotificationsRepo) DeleteRead(ctx context.Context, userID string) (int64, error) {
	timer := utils.TrackDBOperation("delete", "notifications")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.DeleteMany(ctx,
		bson.M{"user_id": userID, "is_read": true})
	if err != nil {
		utils.TrackError("database", "notification_deletion_failed")
		return 0, err
	}
	return result.DeletedCount, nil
}
