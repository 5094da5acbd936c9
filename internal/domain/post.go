package domain

import (
	"context"
	"time"
)

// Post is a blog article. Date is the human-readable publication date
// stamped when the post is created; it never changes on edit.
type Post struct {
	ID         int64
	AuthorID   int64
	AuthorName string
	Title      string
	Subtitle   string
	Date       string
	Body       string
	ImgURL     string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// PostRepository defines persistence operations for posts.
type PostRepository interface {
	Create(ctx context.Context, post *Post) error
	GetByID(ctx context.Context, id int64) (*Post, error)
	List(ctx context.Context) ([]Post, error)
	Update(ctx context.Context, post *Post) error
	// Delete removes the post and, through the schema's cascade,
	// every comment attached to it.
	Delete(ctx context.Context, id int64) error
}
