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

type PostsRepo struct {
	MongoCollection *mongo.Collection
}

func GetPostsRepo(client *mongo.Client) *PostsRepo {
	dbName := os.Getenv("MONGO_DB")
	collectionName := os.Getenv("POSTS_COLLECTION")
	return &PostsRepo{
		MongoCollection: client.Database(dbName).Collection(collectionName),
	}
}

func (r *PostsRepo) Insert(ctx context.Context, post *model.Post) error {
	timer := utils.TrackDBOperation("insert", "posts")
	defer timer.ObserveDuration()

	_, err := r.MongoCollection.InsertOne(ctx, post)
	if err != nil {
		utils.TrackError("database", "post_creation_failed")
	}
	return err
}

// feedLimit caps how many posts one feed request returns.
const feedLimit = 100

// List returns public posts, newest first.
func (r *PostsRepo) List(ctx context.Context) ([]*model.Post, error) {
	timer := utils.TrackDBOperation("find", "posts")
	defer timer.ObserveDuration()

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(feedLimit)
	cursor, err := r.MongoCollection.Find(ctx,
		bson.M{"visibility": model.VisibilityPublic}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var posts []*model.Post
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *PostsRepo) FindByID(ctx context.Context, postID string) (*model.Post, error) {
	timer := utils.TrackDBOperation("find", "posts")
	defer timer.ObserveDuration()

	var post model.Post
	err := r.MongoCollection.FindOne(ctx, bson.M{"_id": postID}).Decode(&post)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		utils.TrackError("database", "post_lookup_error")
		return nil, err
	}
	return &post, nil
}

func (r *PostsRepo) SetLikes(ctx context.Context, postID string, likes []string) error {
	timer := utils.TrackDBOperation("update", "posts")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.UpdateOne(ctx,
		bson.M{"_id": postID},
		bson.M{"$set": bson.M{"likes": likes, "updated_at": time.Now()}})
	if err != nil {
		utils.TrackError("database", "post_update_failed")
		return err
	}
	if result.MatchedCount == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *PostsRepo) AddComment(ctx context.Context, postID string, comment model.Comment) error {
	timer := utils.TrackDBOperation("update", "posts")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.UpdateOne(ctx,
		bson.M{"_id": postID},
		bson.M{
			"$push": bson.M{"comments": comment},
			"$set":  bson.M{"updated_at": time.Now()},
		})
	if err != nil {
		utils.TrackError("database", "post_update_failed")
		return err
	}
	if result.MatchedCount == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *PostsRepo) Delete(ctx context.Context, postID string) error {
	timer := utils.TrackDBOperation("delete", "posts")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.DeleteOne(ctx, bson.M{"_id": postID})
	if err != nil {
		utils.TrackError("database", "post_deletion_failed")
		return err
	}
	if result.DeletedCount == 0 {
		return model.ErrNotFound
	}
	return nil
}
