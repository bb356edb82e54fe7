package web

import (
	"net/http"

	log "github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"

	"github.com/umputun/loglens/app/theme"
)

// handleIndex renders the main page with the visitor's theme already applied.
// ?bare=1 renders the page variant without the toggle control.
func (h *Handler) handleIndex(w http.ResponseWriter, r *http.Request) {
	visitor := h.visitor(w, r)
	p := h.loadPage(r.Context(), visitor, r.URL.Query().Get("bare") == "")

	w.Header().Set("Cache-Control", "no-store")
	if err := h.tmpl.ExecuteTemplate(w, "base.html", h.data(p)); err != nil {
		log.Printf("[ERROR] failed to execute template: %v", err)
	}
}

// handleThemeState returns the applied theme and its icon as json.
func (h *Handler) handleThemeState(w http.ResponseWriter, r *http.Request) {
	visitor := h.visitor(w, r)
	p := h.loadPage(r.Context(), visitor, true)
	applied := p.ctrl.Applied()
	icon := theme.IconFor(applied)
	rest.RenderJSON(w, rest.JSON{"theme": applied.String(), "icon": icon.Glyph, "rotation": icon.Rotation})
}

// handleThemeToggle clicks the toggle control of the visitor's page, flipping and saving the theme.
func (h *Handler) handleThemeToggle(w http.ResponseWriter, r *http.Request) {
	visitor := h.visitor(w, r)
	p := h.loadPage(r.Context(), visitor, true)
	if err := p.toggle.Click(r.Context()); err != nil {
		log.Printf("[ERROR] failed to toggle theme: %v", err)
		http.Error(w, "failed to save theme", http.StatusInternalServerError)
		return
	}
	log.Printf("[DEBUG] visitor %s switched theme to %s", visitor, p.ctrl.Applied())

	if r.Header.Get("HX-Request") == "true" {
		// re-render with the new theme applied on the root before paint
		w.Header().Set("HX-Refresh", "true")
		w.WriteHeader(http.StatusOK)
		return
	}
	http.Redirect(w, r, h.url("/"), http.StatusSeeOther)
}
