package model

import "time"

type Visibility string

const (
	VisibilityPublic  Visibility = "public"
	VisibilityFriends Visibility = "friends"
	VisibilityPrivate Visibility = "private"
)

type Comment struct {
	UserID    string    `bson:"user_id" json:"user_id"`
	Text      string    `bson:"text" json:"text"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

// Post is a community feed entry. Likes hold user ids; liking twice
// removes the like.
type Post struct {
	PostID     string     `bson:"_id" json:"id"`
	UserID     string     `bson:"user_id" json:"user_id"`
	Content    string     `bson:"content" json:"content" binding:"required"`
	Image      string     `bson:"image,omitempty" json:"image,omitempty"`
	Likes      []string   `bson:"likes" json:"likes"`
	Comments   []Comment  `bson:"comments" json:"comments"`
	Visibility Visibility `bson:"visibility" json:"visibility"`
	CreatedAt  time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt  time.Time  `bson:"updated_at" json:"updated_at"`
}

// LikedBy reports whether the user has liked the post.
func (p *Post) LikedBy(userID string) bool {
	for _, id := range p.Likes {
		if id == userID {
			return true
		}
	}
	return false
}
