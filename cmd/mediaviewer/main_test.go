package main

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Totarae/MediaViewer/internal/config"
	"github.com/Totarae/MediaViewer/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewRouter_Embedded(t *testing.T) {
	cfg := &config.Config{ServerAddress: ":0", LogLevel: "info", AllowedOrigins: []string{"*"}}

	r, err := newRouter(cfg, service.NewViewerService(nil), zap.NewNop())
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/?media_url=https://example.com/clip.mp4", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `data-media-type="video"`)
}

func TestNewRouter_DiskOverrides(t *testing.T) {
	templatesDir := t.TempDir()
	staticDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(templatesDir, "media_viewer.html"),
		[]byte(`{{.MediaType}}|{{.MediaURL}}`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(staticDir, "app.css"), []byte("body{}"), 0o644))

	cfg := &config.Config{
		ServerAddress:  ":0",
		LogLevel:       "info",
		TemplatesDir:   templatesDir,
		StaticDir:      staticDir,
		AllowedOrigins: []string{"*"},
	}

	r, err := newRouter(cfg, service.NewViewerService(nil), zap.NewNop())
	require.NoError(t, err)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/?media_url=pic.png", nil))
	assert.Equal(t, "image|pic.png", w.Body.String())

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/static/app.css", nil))
	resp := w.Result()
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "body{}", string(body))
}

func TestNewRouter_BadTemplatesDir(t *testing.T) {
	cfg := &config.Config{ServerAddress: ":0", LogLevel: "info", TemplatesDir: t.TempDir()}

	_, err := newRouter(cfg, service.NewViewerService(nil), zap.NewNop())
	assert.Error(t, err)
}

func TestServe_CancelledBeforeStart(t *testing.T) {
	cfg := &config.Config{ServerAddress: "127.0.0.1:0", GRPCAddress: "127.0.0.1:0", LogLevel: "info"}
	svc := service.NewViewerService(nil)

	for i := 0; i < 20; i++ {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := serve(ctx, cfg, http.NotFoundHandler(), svc, zap.NewNop())
		require.NoError(t, err)
	}
}

func TestServe_Shutdown(t *testing.T) {
	cfg := &config.Config{ServerAddress: "127.0.0.1:0", GRPCAddress: "127.0.0.1:0", LogLevel: "info"}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- serve(ctx, cfg, http.NotFoundHandler(), service.NewViewerService(nil), zap.NewNop())
	}()

	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(shutdownTimeout + time.Second):
		t.Fatal("serve did not stop after cancel")
	}
}
