package usecase

import (
	"context"
	"fmt"
	"time"

	"main/model"
	"main/utils"
)

// PostStore is the persistence surface for community posts.
type PostStore interface {
	Insert(ctx context.Context, post *model.Post) error
	List(ctx context.Context) ([]*model.Post, error)
	FindByID(ctx context.Context, id string) (*model.Post, error)
	SetLikes(ctx context.Context, id string, likes []string) error
	AddComment(ctx context.Context, id string, comment model.Comment) error
	Delete(ctx context.Context, id string) error
}

type PostsService struct {
	store    PostStore
	notifier Notifier
}

func NewPostsService(store PostStore, notifier Notifier) *PostsService {
	return &PostsService{store: store, notifier: notifier}
}

func (svc *PostsService) CreatePost(ctx context.Context, post *model.Post) error {
	if post.UserID == "" || post.Content == "" {
		return model.ErrValidation
	}
	if post.Visibility == "" {
		post.Visibility = model.VisibilityPublic
	}
	post.PostID = utils.NewID()
	post.Likes = []string{}
	post.Comments = []model.Comment{}
	now := time.Now()
	post.CreatedAt = now
	post.UpdatedAt = now
	return svc.store.Insert(ctx, post)
}

func (svc *PostsService) ListPosts(ctx context.Context) ([]*model.Post, error) {
	return svc.store.List(ctx)
}

func (svc *PostsService) GetPost(ctx context.Context, id string) (*model.Post, error) {
	post, err := svc.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, model.ErrNotFound
	}
	return post, nil
}

func (svc *PostsService) DeletePost(ctx context.Context, id, userID string) error {
	post, err := svc.GetPost(ctx, id)
	if err != nil {
		return err
	}
	if post.UserID != userID {
		return model.ErrNotOwner
	}
	return svc.store.Delete(ctx, id)
}

// ToggleLike adds the user's like, or removes it when already present.
// Liking someone else's post notifies the author.
func (svc *PostsService) ToggleLike(ctx context.Context, id, userID string) (*model.Post, error) {
	post, err := svc.GetPost(ctx, id)
	if err != nil {
		return nil, err
	}

	if post.LikedBy(userID) {
		likes := post.Likes[:0:0]
		for _, l := range post.Likes {
			if l != userID {
				likes = append(likes, l)
			}
		}
		post.Likes = likes
	} else {
		post.Likes = append(post.Likes, userID)
		if post.UserID != userID {
			svc.notify(ctx, model.Notification{
				UserID:    post.UserID,
				Type:      model.NotificationLike,
				Title:     "Someone liked your post",
				Message:   "Your post received a new like.",
				ActionURL: fmt.Sprintf("/community/posts/%s", post.PostID),
			})
		}
	}

	if err := svc.store.SetLikes(ctx, id, post.Likes); err != nil {
		return nil, err
	}
	return post, nil
}

// AddComment prepends a comment and notifies the post author.
func (svc *PostsService) AddComment(ctx context.Context, id, userID, text string) (*model.Comment, error) {
	if text == "" {
		return nil, model.ErrValidation
	}
	post, err := svc.GetPost(ctx, id)
	if err != nil {
		return nil, err
	}

	comment := model.Comment{
		UserID:    userID,
		Text:      text,
		CreatedAt: time.Now(),
	}
	if err := svc.store.AddComment(ctx, id, comment); err != nil {
		return nil, err
	}

	if post.UserID != userID {
		svc.notify(ctx, model.Notification{
			UserID:    post.UserID,
			Type:      model.NotificationComment,
			Title:     "New comment on your post",
			Message:   "Someone commented on your post.",
			ActionURL: fmt.Sprintf("/community/posts/%s", post.PostID),
		})
	}
	return &comment, nil
}

func (svc *PostsService) notify(ctx context.Context, draft model.Notification) {
	if svc.notifier == nil {
		return
	}
	if _, err := svc.notifier.Dispatch(ctx, draft); err != nil {
		utils.TrackError("notification", "dispatch_failed")
	}
}
