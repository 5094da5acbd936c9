package handler

import (
	"encoding/json"
	"net/http"
)

// HandleAbout renders the static about page.
func (h *BlogHandler) HandleAbout(w http.ResponseWriter, r *http.Request) {
	h.renderer.Render(w, http.StatusOK, "about", pageData{
		Title: "About",
		User:  UserFromContext(r.Context()),
		Flash: popFlash(w, r),
	})
}

// HandleContact renders the static contact page.
func (h *BlogHandler) HandleContact(w http.ResponseWriter, r *http.Request) {
	h.renderer.Render(w, http.StatusOK, "contact", pageData{
		Title: "Contact",
		User:  UserFromContext(r.Context()),
		Flash: popFlash(w, r),
	})
}

// HandleHealthz responds with a 200 OK and a JSON body indicating the
// server is healthy.
func HandleHealthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
