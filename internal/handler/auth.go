package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/calderb/inkblot/internal/domain"
	"github.com/calderb/inkblot/internal/service"
)

// AuthHandler handles the registration, login, and logout pages.
type AuthHandler struct {
	auth         *service.AuthService
	renderer     *Renderer
	cookieSecure bool
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(auth *service.AuthService, renderer *Renderer, cookieSecure bool) *AuthHandler {
	return &AuthHandler{auth: auth, renderer: renderer, cookieSecure: cookieSecure}
}

// HandleRegisterPage renders the registration form.
// GET /register
func (h *AuthHandler) HandleRegisterPage(w http.ResponseWriter, r *http.Request) {
	h.renderer.Render(w, http.StatusOK, "register", pageData{
		Title: "Register",
		User:  UserFromContext(r.Context()),
		Flash: popFlash(w, r),
		Form:  map[string]string{},
	})
}

// HandleRegister processes the registration form. A new account is signed
// in immediately and sent to the home page.
// POST /register
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderer.RenderError(w, http.StatusBadRequest, "Could not read the form.")
		return
	}
	email := r.FormValue("email")
	name := r.FormValue("name")
	password := r.FormValue("password")

	user, err := h.auth.Register(r.Context(), email, name, password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrDuplicateEmail):
			setFlash(w, "You've already signed up with that email, log in instead!")
			http.Redirect(w, r, "/login", http.StatusSeeOther)
		case errors.Is(err, domain.ErrInvalidInput):
			setFlash(w, "Please fill in every field; passwords need at least 8 characters.")
			http.Redirect(w, r, "/register", http.StatusSeeOther)
		default:
			slog.Error("register user", "error", err)
			h.renderer.RenderError(w, http.StatusInternalServerError, "An unexpected error occurred. Please try again.")
		}
		return
	}

	token, err := h.auth.IssueToken(user)
	if err != nil {
		slog.Error("issue session token after register", "error", err)
		h.renderer.RenderError(w, http.StatusInternalServerError, "An unexpected error occurred. Please try again.")
		return
	}

	h.setSessionCookie(w, token)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// HandleLoginPage renders the login form.
// GET /login
func (h *AuthHandler) HandleLoginPage(w http.ResponseWriter, r *http.Request) {
	h.renderer.Render(w, http.StatusOK, "login", pageData{
		Title: "Log In",
		User:  UserFromContext(r.Context()),
		Flash: popFlash(w, r),
		Form:  map[string]string{},
	})
}

// HandleLogin processes the login form.
// POST /login
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderer.RenderError(w, http.StatusBadRequest, "Could not read the form.")
		return
	}

	token, err := h.auth.Login(r.Context(), r.FormValue("email"), r.FormValue("password"))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUnknownEmail):
			setFlash(w, "That email does not exist, please try again.")
			http.Redirect(w, r, "/login", http.StatusSeeOther)
		case errors.Is(err, domain.ErrWrongPassword):
			setFlash(w, "Password incorrect, please try again.")
			http.Redirect(w, r, "/login", http.StatusSeeOther)
		default:
			slog.Error("login user", "error", err)
			h.renderer.RenderError(w, http.StatusInternalServerError, "An unexpected error occurred. Please try again.")
		}
		return
	}

	h.setSessionCookie(w, token)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// HandleLogout clears the session cookie and returns to the home page.
// GET /logout
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *AuthHandler) setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   86400, // matches the token's 24 hour expiry
	})
}
