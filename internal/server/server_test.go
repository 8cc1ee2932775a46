package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ncobase/habits/config"
	"github.com/ncobase/habits/consts"
	"github.com/ncobase/habits/hateoas"
	"github.com/ncobase/habits/logging/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	path := t.TempDir() + "/config.yaml"
	require.NoError(t, writeConfig(path, "run_mode: test\nhateoas:\n  base_url: https://api.example.com\n"))
	cfg, err := config.LoadConfig(path)
	require.NoError(t, err)

	l := logger.NewLogger()
	l.SetOutput(io.Discard)
	return New(cfg, l)
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)
	w := httptest.NewRecorder()
	s.Engine().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"healthy"}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get(consts.TraceKey))
}

func TestTraceIDPropagates(t *testing.T) {
	s := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/habits", nil)
	req.Header.Set(consts.TraceKey, "trace-123")
	w := httptest.NewRecorder()
	s.Engine().ServeHTTP(w, req)

	assert.Equal(t, "trace-123", w.Header().Get(consts.TraceKey))
}

func TestConfiguredBaseURL(t *testing.T) {
	s := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/tags", nil)
	req.Header.Set("Accept", hateoas.MediaType)
	w := httptest.NewRecorder()
	s.Engine().ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data  []any          `json:"data"`
		Links []hateoas.Link `json:"links"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.NotEmpty(t, body.Links)
	assert.Equal(t, "https://api.example.com/tags?page=1&page_size=10", body.Links[0].Href)
	assert.Equal(t, "0", w.Header().Get(consts.TotalKey))
}

func TestRunStopsOnCancel(t *testing.T) {
	s := newTestServer(t)
	s.config.Host, s.config.Port = "127.0.0.1", 0

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()
	cancel()
	assert.NoError(t, <-done)
}
