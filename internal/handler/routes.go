package handler

import (
	"net/http"

	"github.com/calderb/inkblot/internal/service"
)

// RegisterRoutes sets up all HTTP routes on the given mux. Every route runs
// behind OptionalAuth so the current user, when there is one, is available
// in the request context.
func RegisterRoutes(mux *http.ServeMux, auth *service.AuthService, blog *service.BlogService, renderer *Renderer, cookieSecure bool) {
	authHandler := NewAuthHandler(auth, renderer, cookieSecure)
	blogHandler := NewBlogHandler(blog, renderer)

	withUser := func(h http.HandlerFunc) http.Handler {
		return OptionalAuth(auth, h)
	}

	mux.Handle("GET /{$}", withUser(blogHandler.HandleHome))
	mux.Handle("GET /about", withUser(blogHandler.HandleAbout))
	mux.Handle("GET /contact", withUser(blogHandler.HandleContact))

	mux.Handle("GET /register", withUser(authHandler.HandleRegisterPage))
	mux.Handle("POST /register", withUser(authHandler.HandleRegister))
	mux.Handle("GET /login", withUser(authHandler.HandleLoginPage))
	mux.Handle("POST /login", withUser(authHandler.HandleLogin))
	mux.Handle("GET /logout", withUser(authHandler.HandleLogout))

	mux.Handle("GET /post/{id}", withUser(blogHandler.HandleShowPost))
	mux.Handle("POST /post/{id}", withUser(blogHandler.HandleAddComment))

	mux.Handle("GET /new-post", withUser(blogHandler.HandleNewPostPage))
	mux.Handle("POST /new-post", withUser(blogHandler.HandleCreatePost))
	mux.Handle("GET /edit-post/{id}", withUser(blogHandler.HandleEditPostPage))
	mux.Handle("POST /edit-post/{id}", withUser(blogHandler.HandleUpdatePost))
	mux.Handle("GET /delete/{id}", withUser(blogHandler.HandleDeletePost))

	mux.HandleFunc("GET /healthz", HandleHealthz)
}
