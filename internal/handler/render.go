package handler

import (
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/calderb/inkblot/internal/domain"
)

//go:embed templates/*.html
var templateFS embed.FS

// pages that pair with the shared layout.
var pageNames = []string{
	"home", "post", "register", "login", "make_post", "about", "contact", "error",
}

// pageData is the view model shared by every template. Post bodies and
// comment text pass through html/template's contextual escaping, so stored
// markup is displayed inert.
type pageData struct {
	Title    string
	User     *domain.User
	Flash    string
	Posts    []domain.Post
	Post     *domain.Post
	Comments []domain.Comment
	Form     map[string]string
	IsEdit   bool
	Status   int
	Message  string
}

// Renderer holds the parsed page templates.
type Renderer struct {
	pages map[string]*template.Template
}

// NewRenderer parses the embedded templates, one template set per page,
// each sharing the layout.
func NewRenderer() (*Renderer, error) {
	pages := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		tmpl, err := template.ParseFS(templateFS, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		pages[name] = tmpl
	}
	return &Renderer{pages: pages}, nil
}

// Render writes the named page with the given status code.
func (rn *Renderer) Render(w http.ResponseWriter, status int, page string, data pageData) {
	tmpl, ok := rn.pages[page]
	if !ok {
		slog.Error("unknown template page", "page", page)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := tmpl.ExecuteTemplate(w, "layout", data); err != nil {
		slog.Error("render template", "page", page, "error", err)
	}
}

// RenderError writes the shared error page.
func (rn *Renderer) RenderError(w http.ResponseWriter, status int, message string) {
	rn.Render(w, status, "error", pageData{
		Title:   http.StatusText(status),
		Status:  status,
		Message: message,
	})
}
