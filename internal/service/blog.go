package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/calderb/inkblot/internal/domain"
)

// PostInput carries the author-supplied fields for creating or editing a
// post. The publication date and author are stamped by the service.
type PostInput struct {
	Title    string `validate:"required"`
	Subtitle string `validate:"required"`
	ImgURL   string `validate:"required,url"`
	Body     string `validate:"required"`
}

// BlogService owns posts and comments. Mutating a post requires the caller
// to hold the admin role; the check happens here, at the top of each
// operation, with the caller passed in explicitly.
type BlogService struct {
	posts    domain.PostRepository
	comments domain.CommentRepository
}

// NewBlogService creates a new BlogService.
func NewBlogService(posts domain.PostRepository, comments domain.CommentRepository) *BlogService {
	return &BlogService{posts: posts, comments: comments}
}

// ListPosts returns every post in creation order.
func (s *BlogService) ListPosts(ctx context.Context) ([]domain.Post, error) {
	return s.posts.List(ctx)
}

// GetPost returns a post and its comments.
func (s *BlogService) GetPost(ctx context.Context, id int64) (*domain.Post, []domain.Comment, error) {
	post, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	comments, err := s.comments.ListByPost(ctx, id)
	if err != nil {
		return nil, nil, fmt.Errorf("load comments: %w", err)
	}

	return post, comments, nil
}

// CreatePost publishes a new post authored by the caller. The display date
// is stamped from the server clock and never changes afterward.
func (s *BlogService) CreatePost(ctx context.Context, caller *domain.User, in PostInput) (*domain.Post, error) {
	if err := requireAdmin(caller); err != nil {
		return nil, err
	}
	if err := checkInput(in); err != nil {
		return nil, err
	}

	post := &domain.Post{
		AuthorID: caller.ID,
		Title:    in.Title,
		Subtitle: in.Subtitle,
		Date:     time.Now().Format("January 02, 2006"),
		Body:     in.Body,
		ImgURL:   in.ImgURL,
	}

	if err := s.posts.Create(ctx, post); err != nil {
		return nil, err
	}
	post.AuthorName = caller.Name
	return post, nil
}

// UpdatePost overwrites the editable fields of an existing post.
func (s *BlogService) UpdatePost(ctx context.Context, caller *domain.User, id int64, in PostInput) (*domain.Post, error) {
	if err := requireAdmin(caller); err != nil {
		return nil, err
	}
	if err := checkInput(in); err != nil {
		return nil, err
	}

	post, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	post.Title = in.Title
	post.Subtitle = in.Subtitle
	post.ImgURL = in.ImgURL
	post.Body = in.Body

	if err := s.posts.Update(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// DeletePost removes a post. Its comments go with it; the schema cascades
// the delete so no orphaned comment rows remain.
func (s *BlogService) DeletePost(ctx context.Context, caller *domain.User, id int64) error {
	if err := requireAdmin(caller); err != nil {
		return err
	}
	return s.posts.Delete(ctx, id)
}

// AddComment attaches a comment by the caller to the given post.
func (s *BlogService) AddComment(ctx context.Context, caller *domain.User, postID int64, text string) (*domain.Comment, error) {
	if caller == nil {
		return nil, domain.ErrUnauthenticated
	}
	if text == "" {
		return nil, fmt.Errorf("%w: comment text is required", domain.ErrInvalidInput)
	}

	if _, err := s.posts.GetByID(ctx, postID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get post: %w", err)
	}

	comment := &domain.Comment{
		PostID:   postID,
		AuthorID: caller.ID,
		Text:     text,
	}

	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, err
	}
	comment.AuthorName = caller.Name
	return comment, nil
}

// requireAdmin rejects nil callers and non-admin callers identically, so an
// unauthenticated request learns nothing more than a member's would.
func requireAdmin(caller *domain.User) error {
	if !caller.IsAdmin() {
		return domain.ErrForbidden
	}
	return nil
}
