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

type HabitsRepo struct {
	MongoCollection *mongo.Collection
}

func GetHabitsRepo(client *mongo.Client) *HabitsRepo {
	dbName := os.Getenv("MONGO_DB")
	collectionName := os.Getenv("HABITS_COLLECTION")
	return &HabitsRepo{
		MongoCollection: client.Database(dbName).Collection(collectionName),
	}
}

func (r *HabitsRepo) Create(ctx context.Context, habit *model.Habit) error {
	timer := utils.TrackDBOperation("insert", "habits")
	defer timer.ObserveDuration()

	if habit.UserID == "" {
		utils.TrackError("database", "invalid_habit_data")
		return model.ErrValidation
	}

	_, err := r.MongoCollection.InsertOne(ctx, habit)
	if err != nil {
		utils.TrackError("database", "habit_creation_failed")
	}
	return err
}

func (r *HabitsRepo) FindByID(ctx context.Context, habitID string) (*model.Habit, error) {
	timer := utils.TrackDBOperation("find", "habits")
	defer timer.ObserveDuration()

	var habit model.Habit
	err := r.MongoCollection.FindOne(ctx, bson.M{"_id": habitID}).Decode(&habit)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		utils.TrackError("database", "habit_lookup_error")
		return nil, err
	}
	return &habit, nil
}

func (r *HabitsRepo) ListByUser(ctx context.Context, userID string) ([]*model.Habit, error) {
	timer := utils.TrackDBOperation("find", "habits")
	defer timer.ObserveDuration()

	return r.list(ctx, bson.M{"user_id": userID})
}

// ListReminderEnabled returns every active habit with reminders on,
// across all users, for the reminder scheduler.
func (r *HabitsRepo) ListReminderEnabled(ctx context.Context) ([]*model.Habit, error) {
	timer := utils.TrackDBOperation("find", "habits")
	defer timer.ObserveDuration()

	return r.list(ctx, bson.M{"reminder_enabled": true, "active": true})
}

func (r *HabitsRepo) list(ctx context.Context, filter bson.M) ([]*model.Habit, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.MongoCollection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var habits []*model.Habit
	if err := cursor.All(ctx, &habits); err != nil {
		return nil, err
	}
	return habits, nil
}

// Update rewrites the editable habit fields.
func (r *HabitsRepo) Update(ctx context.Context, habit *model.Habit) error {
	timer := utils.TrackDBOperation("update", "habits")
	defer timer.ObserveDuration()

	filter := bson.M{"_id": habit.HabitID, "user_id": habit.UserID}
	update := bson.M{
		"$set": bson.M{
			"title":            habit.Title,
			"description":      habit.Description,
			"category":         habit.Category,
			"frequency":        habit.Frequency,
			"custom_days":      habit.CustomDays,
			"time_of_day":      habit.TimeOfDay,
			"specific_time":    habit.SpecificTime,
			"reminder_enabled": habit.ReminderEnabled,
			"reminder_time":    habit.ReminderTime,
			"difficulty":       habit.Difficulty,
			"xp_reward":        habit.XPReward,
			"active":           habit.Active,
			"updated_at":       time.Now(),
		},
	}

	result, err := r.MongoCollection.UpdateOne(ctx, filter, update)
	if err != nil {
		utils.TrackError("database", "habit_update_failed")
		return err
	}
	if result.MatchedCount == 0 {
		return model.ErrNotFound
	}
	return nil
}

// ApplyCompletion persists one day's completion in a single guarded
// update: the filter rejects documents that already hold an entry for
// the day, which makes the check-then-append atomic under concurrent
// requests for the same habit.
func (r *HabitsRepo) ApplyCompletion(ctx context.Context, habit *model.Habit, day time.Time) error {
	timer := utils.TrackDBOperation("update", "habits")
	defer timer.ObserveDuration()

	filter := bson.M{
		"_id":                     habit.HabitID,
		"user_id":                 habit.UserID,
		"completion_history.date": bson.M{"$ne": day},
	}
	update := bson.M{
		"$push": bson.M{
			"completion_history": model.CompletionEntry{Date: day, Completed: true},
		},
		"$set": bson.M{
			"streak":         habit.Streak,
			"longest_streak": habit.LongestStreak,
			"updated_at":     time.Now(),
		},
	}

	result, err := r.MongoCollection.UpdateOne(ctx, filter, update)
	if err != nil {
		utils.TrackError("database", "completion_apply_failed")
		return err
	}
	if result.MatchedCount == 0 {
		// The habit exists (the caller just loaded it), so the guard
		// tripped: another request completed today first.
		return model.ErrAlreadyCompleted
	}
	return nil
}

func (r *HabitsRepo) Delete(ctx context.Context, habitID string) error {
	timer := utils.TrackDBOperation("delete", "habits")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.DeleteOne(ctx, bson.M{"_id": habitID})
	if err != nil {
		utils.TrackError("database", "habit_deletion_failed")
		return err
	}
	if result.DeletedCount == 0 {
		return model.ErrNotFound
	}
	return nil
}
