package main

import (
	"context"
	"io"
	"net/http"
	"net/http/cookiejar"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/loglens/app/store"
)

func TestIntegration(t *testing.T) {
	tmpDir := t.TempDir()
	opts.DB = filepath.Join(tmpDir, "test.db")
	opts.Server.Address = "127.0.0.1:18491" // use non-standard port to avoid conflicts
	opts.Server.ReadTimeout = 5 * time.Second
	opts.Server.BaseURL = ""
	opts.Server.Title = "LogLens"
	opts.Cache.MaxKeys = 100

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		errCh <- run(ctx)
	}()

	waitForServer(t, "http://127.0.0.1:18491/ping")

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	client := &http.Client{Timeout: 5 * time.Second, Jar: jar}

	getBody := func(t *testing.T, resp *http.Response) string {
		t.Helper()
		defer resp.Body.Close()
		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		return string(body)
	}

	t.Run("first visit renders light with moon", func(t *testing.T) {
		resp, err := client.Get("http://127.0.0.1:18491/")
		require.NoError(t, err)
		body := getBody(t, resp)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.NotContains(t, body, `data-theme="dark"`)
		assert.Contains(t, body, "🌙")
	})

	t.Run("click switches to dark and reload keeps it", func(t *testing.T) {
		resp, err := client.Post("http://127.0.0.1:18491/web/theme", "application/x-www-form-urlencoded", http.NoBody)
		require.NoError(t, err)
		body := getBody(t, resp) // redirect followed to the page
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, body, `data-theme="dark"`)
		assert.Contains(t, body, "☀️")

		resp, err = client.Get("http://127.0.0.1:18491/?bare=1")
		require.NoError(t, err)
		body = getBody(t, resp)
		assert.Contains(t, body, `data-theme="dark"`)
		assert.NotContains(t, body, `id="theme-toggle"`)
	})

	t.Run("second click switches back", func(t *testing.T) {
		resp, err := client.Post("http://127.0.0.1:18491/web/theme", "application/x-www-form-urlencoded", http.NoBody)
		require.NoError(t, err)
		body := getBody(t, resp)
		assert.NotContains(t, body, `data-theme="dark"`)
		assert.Contains(t, body, "🌙")
	})

	t.Run("another browser stays light", func(t *testing.T) {
		resp, err := (&http.Client{Timeout: 5 * time.Second}).Get("http://127.0.0.1:18491/web/theme")
		require.NoError(t, err)
		body := getBody(t, resp)
		assert.Contains(t, body, `"theme":"light"`)
	})

	cancel()
	select {
	case err := <-errCh:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down in time")
	}
}

func TestRun_StoreError(t *testing.T) {
	opts.DB = "/nonexistent/dir/test.db"
	err := run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to initialize store")
}

func TestOpenStore(t *testing.T) {
	t.Run("cached", func(t *testing.T) {
		st, err := openStore(filepath.Join(t.TempDir(), "test.db"), 10)
		require.NoError(t, err)
		defer st.Close()
		_, ok := st.(*store.Cached)
		assert.True(t, ok)
	})

	t.Run("plain", func(t *testing.T) {
		st, err := openStore(filepath.Join(t.TempDir(), "test.db"), 0)
		require.NoError(t, err)
		defer st.Close()
		_, ok := st.(*store.Store)
		assert.True(t, ok)
	})
}

func waitForServer(t *testing.T, url string) {
	t.Helper()
	client := &http.Client{Timeout: 100 * time.Millisecond}
	require.Eventually(t, func() bool {
		resp, err := client.Get(url)
		if err != nil {
			return false
		}
		_ = resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 50*time.Millisecond, "server did not start")
}

func TestSetupLogs(t *testing.T) {
	assert.NotPanics(t, func() { setupLogs(false) })
	assert.NotPanics(t, func() { setupLogs(true) })
	setupLogs(false) // restore defaults for other tests
}
