package sqlite_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/calderb/inkblot/internal/domain"
	"github.com/calderb/inkblot/internal/repository/sqlite"
)

func seedUser(t *testing.T, db *sqlite.DB, email string, role domain.Role) *domain.User {
	t.Helper()
	user := &domain.User{Email: email, Name: "Seed User", PasswordHash: "h", Role: role}
	if err := db.Users().Create(context.Background(), user); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

func seedPost(t *testing.T, db *sqlite.DB, authorID int64, title string) *domain.Post {
	t.Helper()
	post := &domain.Post{
		AuthorID: authorID,
		Title:    title,
		Subtitle: "A subtitle",
		Date:     "March 03, 2025",
		Body:     "<p>Body text</p>",
		ImgURL:   "https://example.com/cover.png",
	}
	if err := db.Posts().Create(context.Background(), post); err != nil {
		t.Fatalf("seed post: %v", err)
	}
	return post
}

func TestPostRepository_CreateAndGet(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	admin := seedUser(t, db, "admin@example.com", domain.RoleAdmin)

	post := seedPost(t, db, admin.ID, "Hello World")

	got, err := db.Posts().GetByID(ctx, post.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Title != "Hello World" {
		t.Fatalf("expected title Hello World, got %s", got.Title)
	}
	if got.AuthorID != admin.ID {
		t.Fatalf("expected author %d, got %d", admin.ID, got.AuthorID)
	}
	if got.AuthorName != "Seed User" {
		t.Fatalf("expected joined author name, got %q", got.AuthorName)
	}
	if got.Date != "March 03, 2025" {
		t.Fatalf("expected stamped date to round-trip, got %q", got.Date)
	}
}

func TestPostRepository_DuplicateTitle(t *testing.T) {
	db := newTestDB(t)
	admin := seedUser(t, db, "admin@example.com", domain.RoleAdmin)

	seedPost(t, db, admin.ID, "Unique Title")

	dup := &domain.Post{
		AuthorID: admin.ID,
		Title:    "Unique Title",
		Subtitle: "s",
		Date:     "March 03, 2025",
		Body:     "b",
		ImgURL:   "https://example.com/x.png",
	}
	err := db.Posts().Create(context.Background(), dup)
	if !errors.Is(err, domain.ErrDuplicateTitle) {
		t.Fatalf("expected ErrDuplicateTitle, got %v", err)
	}
}

func TestPostRepository_ListCreationOrder(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	admin := seedUser(t, db, "admin@example.com", domain.RoleAdmin)

	for i := 1; i <= 3; i++ {
		seedPost(t, db, admin.ID, fmt.Sprintf("Post %d", i))
	}

	posts, err := db.Posts().List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(posts) != 3 {
		t.Fatalf("expected 3 posts, got %d", len(posts))
	}
	for i, p := range posts {
		want := fmt.Sprintf("Post %d", i+1)
		if p.Title != want {
			t.Fatalf("expected %s at index %d, got %s", want, i, p.Title)
		}
	}
}

func TestPostRepository_ListEmpty(t *testing.T) {
	db := newTestDB(t)

	posts, err := db.Posts().List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(posts) != 0 {
		t.Fatalf("expected empty list, got %d posts", len(posts))
	}
}

func TestPostRepository_UpdatePreservesDate(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	admin := seedUser(t, db, "admin@example.com", domain.RoleAdmin)
	post := seedPost(t, db, admin.ID, "Original")

	post.Title = "Edited"
	post.Subtitle = "Edited subtitle"
	post.Body = "<p>Edited</p>"
	post.ImgURL = "https://example.com/new.png"
	if err := db.Posts().Update(ctx, post); err != nil {
		t.Fatalf("Update: %v", err)
	}

	got, err := db.Posts().GetByID(ctx, post.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Title != "Edited" {
		t.Fatalf("expected edited title, got %s", got.Title)
	}
	if got.Date != "March 03, 2025" {
		t.Fatalf("expected date unchanged by edit, got %q", got.Date)
	}
	if got.AuthorID != admin.ID {
		t.Fatalf("expected author unchanged by edit, got %d", got.AuthorID)
	}
}

func TestPostRepository_UpdateMissing(t *testing.T) {
	db := newTestDB(t)
	seedUser(t, db, "admin@example.com", domain.RoleAdmin)

	err := db.Posts().Update(context.Background(), &domain.Post{ID: 999, Title: "x"})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPostRepository_DeleteCascadesComments(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	admin := seedUser(t, db, "admin@example.com", domain.RoleAdmin)
	reader := seedUser(t, db, "reader@example.com", domain.RoleMember)
	post := seedPost(t, db, admin.ID, "Commented Post")

	comment := &domain.Comment{PostID: post.ID, AuthorID: reader.ID, Text: "Nice post"}
	if err := db.Comments().Create(ctx, comment); err != nil {
		t.Fatalf("create comment: %v", err)
	}

	if err := db.Posts().Delete(ctx, post.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	if _, err := db.Posts().GetByID(ctx, post.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected post gone, got %v", err)
	}

	count, err := db.Comments().CountByPost(ctx, post.ID)
	if err != nil {
		t.Fatalf("CountByPost: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected comments cascaded away, got %d", count)
	}
}

func TestPostRepository_DeleteMissing(t *testing.T) {
	db := newTestDB(t)

	err := db.Posts().Delete(context.Background(), 999)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
