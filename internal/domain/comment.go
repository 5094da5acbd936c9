package domain

import (
	"context"
	"time"
)

// Comment is a reader remark attached to a post. AuthorName is joined in
// from the users table on read.
type Comment struct {
	ID         int64
	PostID     int64
	AuthorID   int64
	AuthorName string
	Text       string
	CreatedAt  time.Time
}

// CommentRepository defines persistence operations for comments.
type CommentRepository interface {
	Create(ctx context.Context, comment *Comment) error
	ListByPost(ctx context.Context, postID int64) ([]Comment, error)
	CountByPost(ctx context.Context, postID int64) (int64, error)
}
