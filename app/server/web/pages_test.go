package web

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/loglens/app/server/web/mocks"
	"github.com/umputun/loglens/app/store"
	"github.com/umputun/loglens/app/theme"
)

func TestHandler_HandleIndex(t *testing.T) {
	st := newMemStore()
	h := newTestHandler(t, st)

	t.Run("light by default", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
		req.AddCookie(&http.Cookie{Name: visitorCookie, Value: testVisitor})
		rec := httptest.NewRecorder()
		h.handleIndex(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, body, "LogLens")
		assert.NotContains(t, body, `data-theme="dark"`)
		assert.Contains(t, body, `id="theme-toggle"`)
		assert.Contains(t, body, `class="theme-icon"`)
		assert.Contains(t, body, theme.GlyphMoon)
		assert.Contains(t, body, "rotate(0deg)")
		assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
	})

	t.Run("stored dark applied on root", func(t *testing.T) {
		require.NoError(t, st.Set(context.Background(), testVisitor, theme.StorageKey, "dark"))
		req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
		req.AddCookie(&http.Cookie{Name: visitorCookie, Value: testVisitor})
		rec := httptest.NewRecorder()
		h.handleIndex(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, body, `<html lang="en" data-theme="dark">`)
		assert.Contains(t, body, theme.GlyphSun)
		assert.Contains(t, body, "rotate(360deg)")
	})

	t.Run("bare page has no toggle and writes nothing", func(t *testing.T) {
		sets := len(st.SetCalls())
		req := httptest.NewRequest(http.MethodGet, "/?bare=1", http.NoBody)
		req.AddCookie(&http.Cookie{Name: visitorCookie, Value: testVisitor})
		rec := httptest.NewRecorder()
		h.handleIndex(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, body, `data-theme="dark"`)
		assert.NotContains(t, body, `id="theme-toggle"`)
		assert.Len(t, st.SetCalls(), sets)
	})
}

func TestHandler_HandleIndex_StoreError(t *testing.T) {
	st := &mocks.PrefStoreMock{
		GetFunc: func(context.Context, string, string) (string, error) { return "", errors.New("db is locked") },
	}
	h := newTestHandler(t, st)

	req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
	rec := httptest.NewRecorder()
	h.handleIndex(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code, "storage failure falls back to light")
	assert.NotContains(t, rec.Body.String(), `data-theme="dark"`)
	assert.Contains(t, rec.Body.String(), theme.GlyphMoon)
}

func TestHandler_HandleThemeToggle(t *testing.T) {
	st := newMemStore()
	h := newTestHandler(t, st)

	tests := []struct {
		name     string
		expected string
	}{
		{"light to dark", "dark"},
		{"dark to light", "light"},
		{"light to dark again", "dark"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/web/theme", http.NoBody)
			req.AddCookie(&http.Cookie{Name: visitorCookie, Value: testVisitor})
			rec := httptest.NewRecorder()
			h.handleThemeToggle(rec, req)

			assert.Equal(t, http.StatusSeeOther, rec.Code)
			assert.Equal(t, "/", rec.Header().Get("Location"))
			val, err := st.Get(context.Background(), testVisitor, theme.StorageKey)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, val)
		})
	}
}

func TestHandler_HandleThemeToggle_HTMX(t *testing.T) {
	st := newMemStore()
	h := newTestHandler(t, st)

	req := httptest.NewRequest(http.MethodPost, "/web/theme", http.NoBody)
	req.AddCookie(&http.Cookie{Name: visitorCookie, Value: testVisitor})
	req.Header.Set("HX-Request", "true")
	rec := httptest.NewRecorder()
	h.handleThemeToggle(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "true", rec.Header().Get("HX-Refresh"))
	val, err := st.Get(context.Background(), testVisitor, theme.StorageKey)
	require.NoError(t, err)
	assert.Equal(t, "dark", val)
}

func TestHandler_HandleThemeToggle_SaveError(t *testing.T) {
	st := &mocks.PrefStoreMock{
		GetFunc: func(context.Context, string, string) (string, error) { return "", store.ErrNotFound },
		SetFunc: func(context.Context, string, string, string) error { return errors.New("disk full") },
	}
	h := newTestHandler(t, st)

	req := httptest.NewRequest(http.MethodPost, "/web/theme", http.NoBody)
	rec := httptest.NewRecorder()
	h.handleThemeToggle(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Len(t, st.SetCalls(), 1)
	assert.Equal(t, "dark", st.SetCalls()[0].Value)
}

func TestHandler_HandleThemeState(t *testing.T) {
	st := newMemStore()
	h := newTestHandler(t, st)

	get := func() map[string]any {
		req := httptest.NewRequest(http.MethodGet, "/web/theme", http.NoBody)
		req.AddCookie(&http.Cookie{Name: visitorCookie, Value: testVisitor})
		rec := httptest.NewRecorder()
		h.handleThemeState(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)
		var resp map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		return resp
	}

	resp := get()
	assert.Equal(t, "light", resp["theme"])
	assert.Equal(t, theme.GlyphMoon, resp["icon"])
	assert.InDelta(t, 0, resp["rotation"], 0)

	require.NoError(t, st.Set(context.Background(), testVisitor, theme.StorageKey, "dark"))
	resp = get()
	assert.Equal(t, "dark", resp["theme"])
	assert.Equal(t, theme.GlyphSun, resp["icon"])
	assert.InDelta(t, 360, resp["rotation"], 0)
	assert.Empty(t, st.SetCalls()[1:], "reading state must not write")
}
