// Package web provides HTTP handlers for the web UI.
package web

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"

	"github.com/go-pkgz/routegroup"
	"github.com/google/uuid"

	"github.com/umputun/loglens/app/theme"
)

//go:generate moq -out mocks/prefstore.go -pkg mocks -skip-ensure -fmt goimports . PrefStore

// visitorCookie identifies the browser the stored preferences belong to.
const visitorCookie = "loglens-visitor"

const cookieMaxAge = 365 * 24 * 60 * 60 // 1 year

//go:embed static
var staticFS embed.FS

//go:embed templates
var templatesFS embed.FS

// StaticFS returns the embedded static filesystem for external use.
func StaticFS() (fs.FS, error) {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		return nil, fmt.Errorf("failed to get static sub-filesystem: %w", err)
	}
	return sub, nil
}

// PrefStore defines the interface for visitor preference storage.
type PrefStore interface {
	Get(ctx context.Context, visitor, key string) (string, error)
	Set(ctx context.Context, visitor, key, value string) error
}

// Config holds web handler configuration.
type Config struct {
	BaseURL string
	Title   string
}

// Handler handles web UI requests.
type Handler struct {
	store   PrefStore
	tmpl    *template.Template
	baseURL string
	title   string
}

// New creates a new web handler.
func New(st PrefStore, cfg Config) (*Handler, error) {
	tmpl, err := parseTemplates()
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	title := cfg.Title
	if title == "" {
		title = "LogLens"
	}
	return &Handler{store: st, tmpl: tmpl, baseURL: cfg.BaseURL, title: title}, nil
}

// Register registers web UI routes on the given router.
func (h *Handler) Register(r *routegroup.Bundle) {
	r.HandleFunc("GET /{$}", h.handleIndex)
	r.HandleFunc("GET /web/theme", h.handleThemeState)
	r.HandleFunc("POST /web/theme", h.handleThemeToggle)
}

// parseTemplates parses the page and its partials from embedded filesystem.
func parseTemplates() (*template.Template, error) {
	tmpl, err := template.New("").ParseFS(templatesFS, "templates/*.html", "templates/partials/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return tmpl, nil
}

// templateData holds data passed to templates.
type templateData struct {
	Title     string
	BaseURL   string
	Dark      bool         // root carries data-theme="dark"
	Toggle    bool         // page has the toggle control
	IconGlyph string       // rendered icon content, empty until the ui is initialized
	IconStyle template.CSS // inline style of the icon
}

// page is a single page view: the document, its controller and the control, if any.
type page struct {
	doc    *theme.Document
	ctrl   *theme.Controller
	toggle *theme.Element
}

// loadPage builds the page for the visitor and runs the theme startup sequence on it:
// the stored preference is applied first, then the toggle ui is initialized.
func (h *Handler) loadPage(ctx context.Context, visitor string, withToggle bool) page {
	doc := theme.NewDocument()
	if withToggle {
		doc.Add(theme.NewToggle())
	}
	ctrl := theme.New(&visitorPrefs{store: h.store, visitor: visitor}, doc)
	ctrl.ApplyStoredPreference(ctx)
	p := page{doc: doc, ctrl: ctrl}
	if ctrl.InitUI() {
		p.toggle, _ = doc.Element(theme.ToggleID)
	}
	return p
}

// data converts the page document into template data.
func (h *Handler) data(p page) templateData {
	td := templateData{Title: h.title, BaseURL: h.baseURL, Dark: p.ctrl.Applied().IsDark()}
	if p.toggle == nil {
		return td
	}
	td.Toggle = true
	if icon, ok := p.toggle.Find(theme.IconClass); ok {
		td.IconGlyph = icon.Content
		td.IconStyle = template.CSS("transform: " + icon.Style["transform"]) //nolint:gosec // value is built by theme.Icon
	}
	return td
}

// visitor returns the visitor id from the cookie, issuing a new one if missing or malformed.
func (h *Handler) visitor(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(visitorCookie); err == nil {
		if _, perr := uuid.Parse(c.Value); perr == nil {
			return c.Value
		}
	}
	id := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     visitorCookie,
		Value:    id,
		Path:     h.cookiePath(),
		MaxAge:   cookieMaxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}

// url returns a URL path with the base URL prefix.
func (h *Handler) url(path string) string {
	return h.baseURL + path
}

// cookiePath returns the path for cookies (base URL with trailing slash or "/").
func (h *Handler) cookiePath() string {
	if h.baseURL == "" {
		return "/"
	}
	return h.baseURL + "/"
}

// visitorPrefs scopes the preference store to a single visitor.
type visitorPrefs struct {
	store   PrefStore
	visitor string
}

func (v *visitorPrefs) Get(ctx context.Context, key string) (string, error) {
	val, err := v.store.Get(ctx, v.visitor, key)
	if err != nil {
		return "", fmt.Errorf("get %s for %s: %w", key, v.visitor, err)
	}
	return val, nil
}

func (v *visitorPrefs) Set(ctx context.Context, key, value string) error {
	if err := v.store.Set(ctx, v.visitor, key, value); err != nil {
		return fmt.Errorf("set %s for %s: %w", key, v.visitor, err)
	}
	return nil
}
