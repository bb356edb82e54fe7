// Package theme drives the light/dark page theme. It applies the stored preference before
// the page is rendered, keeps the toggle icon in sync with the applied theme and flips
// both the page and the stored preference on every click of the toggle control.
package theme

import (
	"context"
	"fmt"

	log "github.com/go-pkgz/lgr"

	"github.com/umputun/loglens/app/enum"
)

//go:generate moq -out mocks/preference_store.go -pkg mocks -skip-ensure -fmt goimports . PreferenceStore

// names shared with the page template and stylesheet
const (
	StorageKey = "loglens-theme"
	RootAttr   = "data-theme"
	ToggleID   = "theme-toggle"
	IconClass  = "theme-icon"
)

// icon glyphs, the sun offers switching to light and the moon offers switching to dark
const (
	GlyphSun  = "☀️"
	GlyphMoon = "🌙"
)

// PreferenceStore is a durable string key-value store for the visitor's preference.
type PreferenceStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}

// Sink is the page the theme is applied to and rendered on.
type Sink interface {
	RootAttr(name string) (string, bool)
	SetRootAttr(name, value string)
	RemoveRootAttr(name string)
	Element(id string) (*Element, bool)
}

// Icon is the toggle indicator derived from the applied theme.
type Icon struct {
	Glyph    string `json:"icon"`
	Rotation int    `json:"rotation"` // degrees
}

// Transform returns the inline css transform for the icon.
func (i Icon) Transform() string {
	return fmt.Sprintf("rotate(%ddeg)", i.Rotation)
}

// IconFor returns the icon matching the theme.
func IconFor(t enum.Theme) Icon {
	if t.IsDark() {
		return Icon{Glyph: GlyphSun, Rotation: 360}
	}
	return Icon{Glyph: GlyphMoon, Rotation: 0}
}

// Controller owns the theme flag of a single page view.
type Controller struct {
	store  PreferenceStore
	page   Sink
	toggle *Element
}

// New makes a controller for the page backed by the preference store.
func New(store PreferenceStore, page Sink) *Controller {
	return &Controller{store: store, page: page}
}

// ApplyStoredPreference reads the stored preference and marks the page dark if it was saved as dark.
// Must be called once, before the page is rendered. Any storage failure leaves the page light.
func (c *Controller) ApplyStoredPreference(ctx context.Context) enum.Theme {
	stored, err := c.store.Get(ctx, StorageKey)
	if err != nil {
		log.Printf("[DEBUG] no stored theme, using light: %v", err)
		return enum.ThemeLight
	}
	th := enum.ThemeFromStored(stored)
	if th.IsDark() {
		c.page.SetRootAttr(RootAttr, enum.ThemeDark.String())
	}
	return th
}

// InitUI finds the toggle control, renders its icon and binds the click handler.
// Returns false if the page has no toggle control. Repeated calls never bind a second handler.
func (c *Controller) InitUI() bool {
	if c.toggle != nil {
		c.UpdateIcon()
		return true
	}
	toggle, ok := c.page.Element(ToggleID)
	if !ok || toggle == nil {
		return false
	}
	c.toggle = toggle
	c.UpdateIcon()
	toggle.OnClick(c.onToggleClick)
	return true
}

// Applied returns the theme currently applied to the page.
func (c *Controller) Applied() enum.Theme {
	v, ok := c.page.RootAttr(RootAttr)
	if ok && v == enum.ThemeDark.String() {
		return enum.ThemeDark
	}
	return enum.ThemeLight
}

// UpdateIcon renders the toggle icon for the applied theme. No-op without a bound toggle or icon.
func (c *Controller) UpdateIcon() {
	if c.toggle == nil {
		return
	}
	el, ok := c.toggle.Find(IconClass)
	if !ok {
		return
	}
	icon := IconFor(c.Applied())
	el.Content = icon.Glyph
	el.SetStyle("transform", icon.Transform())
}

// onToggleClick flips the applied theme, persists it and re-renders the icon.
// The page state flips even when persisting fails, the error is returned to the dispatcher.
func (c *Controller) onToggleClick(ctx context.Context) error {
	next := c.Applied().Toggle()
	if next.IsDark() {
		c.page.SetRootAttr(RootAttr, enum.ThemeDark.String())
	} else {
		c.page.RemoveRootAttr(RootAttr)
	}
	c.UpdateIcon()

	if err := c.store.Set(ctx, StorageKey, next.String()); err != nil {
		return fmt.Errorf("save theme %s: %w", next, err)
	}
	log.Printf("[DEBUG] theme switched to %s", next)
	return nil
}
