package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/calderb/inkblot/internal/domain"
	"github.com/calderb/inkblot/internal/service"
)

// BlogHandler handles the public pages and the admin post CRUD pages.
type BlogHandler struct {
	blog     *service.BlogService
	renderer *Renderer
}

// NewBlogHandler creates a new BlogHandler.
func NewBlogHandler(blog *service.BlogService, renderer *Renderer) *BlogHandler {
	return &BlogHandler{blog: blog, renderer: renderer}
}

// HandleHome renders the post list.
// GET /
func (h *BlogHandler) HandleHome(w http.ResponseWriter, r *http.Request) {
	posts, err := h.blog.ListPosts(r.Context())
	if err != nil {
		slog.Error("list posts", "error", err)
		h.renderer.RenderError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	h.renderer.Render(w, http.StatusOK, "home", pageData{
		Title: "Home",
		User:  UserFromContext(r.Context()),
		Flash: popFlash(w, r),
		Posts: posts,
	})
}

// HandleShowPost renders a single post with its comments.
// GET /post/{id}
func (h *BlogHandler) HandleShowPost(w http.ResponseWriter, r *http.Request) {
	id, ok := h.postID(w, r)
	if !ok {
		return
	}

	post, comments, err := h.blog.GetPost(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			h.renderer.RenderError(w, http.StatusNotFound, "That post does not exist.")
			return
		}
		slog.Error("get post", "id", id, "error", err)
		h.renderer.RenderError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	h.renderer.Render(w, http.StatusOK, "post", pageData{
		Title:    post.Title,
		User:     UserFromContext(r.Context()),
		Flash:    popFlash(w, r),
		Post:     post,
		Comments: comments,
	})
}

// HandleAddComment processes the comment form under a post. Anonymous
// visitors are bounced to the login page with a flash.
// POST /post/{id}
func (h *BlogHandler) HandleAddComment(w http.ResponseWriter, r *http.Request) {
	id, ok := h.postID(w, r)
	if !ok {
		return
	}

	user := UserFromContext(r.Context())
	if user == nil {
		setFlash(w, "You need to login or register to comment.")
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	if err := r.ParseForm(); err != nil {
		h.renderer.RenderError(w, http.StatusBadRequest, "Could not read the form.")
		return
	}

	postURL := "/post/" + strconv.FormatInt(id, 10)
	_, err := h.blog.AddComment(r.Context(), user, id, r.FormValue("comment"))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			h.renderer.RenderError(w, http.StatusNotFound, "That post does not exist.")
		case errors.Is(err, domain.ErrInvalidInput):
			setFlash(w, "Comments cannot be empty.")
			http.Redirect(w, r, postURL, http.StatusSeeOther)
		default:
			slog.Error("add comment", "post", id, "error", err)
			h.renderer.RenderError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		}
		return
	}

	http.Redirect(w, r, postURL, http.StatusSeeOther)
}

// HandleNewPostPage renders the post creation form for admins.
// GET /new-post
func (h *BlogHandler) HandleNewPostPage(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	if !user.IsAdmin() {
		h.renderForbidden(w)
		return
	}

	h.renderer.Render(w, http.StatusOK, "make_post", pageData{
		Title: "New Post",
		User:  user,
		Flash: popFlash(w, r),
		Form:  map[string]string{},
	})
}

// HandleCreatePost processes the post creation form.
// POST /new-post
func (h *BlogHandler) HandleCreatePost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderer.RenderError(w, http.StatusBadRequest, "Could not read the form.")
		return
	}

	user := UserFromContext(r.Context())
	_, err := h.blog.CreatePost(r.Context(), user, postInputFromForm(r))
	if err != nil {
		h.handleMutationError(w, r, err, "/new-post")
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// HandleEditPostPage renders the edit form pre-filled with the post.
// GET /edit-post/{id}
func (h *BlogHandler) HandleEditPostPage(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	if !user.IsAdmin() {
		h.renderForbidden(w)
		return
	}

	id, ok := h.postID(w, r)
	if !ok {
		return
	}

	post, _, err := h.blog.GetPost(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			h.renderer.RenderError(w, http.StatusNotFound, "That post does not exist.")
			return
		}
		slog.Error("get post for edit", "id", id, "error", err)
		h.renderer.RenderError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	h.renderer.Render(w, http.StatusOK, "make_post", pageData{
		Title:  "Edit Post",
		User:   user,
		Flash:  popFlash(w, r),
		Post:   post,
		IsEdit: true,
		Form: map[string]string{
			"title":    post.Title,
			"subtitle": post.Subtitle,
			"img_url":  post.ImgURL,
			"body":     post.Body,
		},
	})
}

// HandleUpdatePost processes the edit form.
// POST /edit-post/{id}
func (h *BlogHandler) HandleUpdatePost(w http.ResponseWriter, r *http.Request) {
	id, ok := h.postID(w, r)
	if !ok {
		return
	}

	if err := r.ParseForm(); err != nil {
		h.renderer.RenderError(w, http.StatusBadRequest, "Could not read the form.")
		return
	}

	postURL := "/post/" + strconv.FormatInt(id, 10)
	user := UserFromContext(r.Context())
	_, err := h.blog.UpdatePost(r.Context(), user, id, postInputFromForm(r))
	if err != nil {
		h.handleMutationError(w, r, err, "/edit-post/"+strconv.FormatInt(id, 10))
		return
	}

	http.Redirect(w, r, postURL, http.StatusSeeOther)
}

// HandleDeletePost removes a post and its comments.
// GET /delete/{id}
func (h *BlogHandler) HandleDeletePost(w http.ResponseWriter, r *http.Request) {
	id, ok := h.postID(w, r)
	if !ok {
		return
	}

	user := UserFromContext(r.Context())
	if err := h.blog.DeletePost(r.Context(), user, id); err != nil {
		h.handleMutationError(w, r, err, "/")
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// handleMutationError maps service errors from admin operations onto the
// right page: 403 for the gate, 404 for missing posts, flash-and-retry for
// bad input.
func (h *BlogHandler) handleMutationError(w http.ResponseWriter, r *http.Request, err error, retryURL string) {
	switch {
	case errors.Is(err, domain.ErrForbidden):
		h.renderForbidden(w)
	case errors.Is(err, domain.ErrNotFound):
		h.renderer.RenderError(w, http.StatusNotFound, "That post does not exist.")
	case errors.Is(err, domain.ErrDuplicateTitle):
		setFlash(w, "A post with that title already exists.")
		http.Redirect(w, r, retryURL, http.StatusSeeOther)
	case errors.Is(err, domain.ErrInvalidInput):
		setFlash(w, "Every field is required, and the image URL must be a valid URL.")
		http.Redirect(w, r, retryURL, http.StatusSeeOther)
	default:
		slog.Error("post mutation", "error", err)
		h.renderer.RenderError(w, http.StatusInternalServerError, "An unexpected error occurred.")
	}
}

func (h *BlogHandler) renderForbidden(w http.ResponseWriter) {
	h.renderer.RenderError(w, http.StatusForbidden, "You don't have permission to do that.")
}

// postID parses the {id} path segment, rendering a 404 for garbage.
func (h *BlogHandler) postID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		h.renderer.RenderError(w, http.StatusNotFound, "That post does not exist.")
		return 0, false
	}
	return id, true
}

func postInputFromForm(r *http.Request) service.PostInput {
	return service.PostInput{
		Title:    r.FormValue("title"),
		Subtitle: r.FormValue("subtitle"),
		ImgURL:   r.FormValue("img_url"),
		Body:     r.FormValue("body"),
	}
}
