// Copyright (c) 2026 The World. All rights reserved.
// Author: aman-SINGH7999

package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aman-SINGH7999/the-world/internal/api"
	"github.com/aman-SINGH7999/the-world/internal/core/dashboard"
	"github.com/aman-SINGH7999/the-world/internal/core/media"
	"github.com/aman-SINGH7999/the-world/internal/core/topic"
	"github.com/aman-SINGH7999/the-world/internal/platform/bolt"
	"github.com/aman-SINGH7999/the-world/internal/platform/config"
	"github.com/aman-SINGH7999/the-world/internal/platform/sec"
)

type editorVerifier struct{}

func (editorVerifier) VerifyToken(token string) (*sec.AuthClaims, error) {
	if token != "editor" {
		return nil, errors.New("rejected")
	}
	return &sec.AuthClaims{UserID: "editor-7", Role: string(sec.RoleEditor)}, nil
}

func newTestServer(t *testing.T, health api.HealthDependencies) http.Handler {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	buckets := append(topic.Buckets(), media.Buckets()...)
	db, err := bolt.Open(filepath.Join(t.TempDir(), "api.db"), logger, buckets...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	topics := topic.NewService(topic.NewBoltRepository(db), logger)
	library := media.NewService(media.NewBoltRepository(db), logger)

	liveness, readiness := api.NewHealthHandlers(health, logger)
	cfg := &config.Config{ServerPort: "0", Environment: "development"}

	server := api.NewServer(ctx, cfg, logger, editorVerifier{}, api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Topic:     topic.NewHandler(topics),
		Media:     media.NewHandler(library),
		Dashboard: dashboard.NewHandler(dashboard.NewService(topics, library)),
	})
	return server.Handler()
}

func do(router http.Handler, method, path, token, body string) *httptest.ResponseRecorder {
	request := httptest.NewRequest(method, path, strings.NewReader(body))
	request.RemoteAddr = "203.0.113.9:4000"
	if token != "" {
		request.Header.Set("Authorization", "Bearer "+token)
	}
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)
	return recorder
}

/*
TestServer_Routes checks that every mount answers through the full middleware chain.
*/
func TestServer_Routes(t *testing.T) {
	router := newTestServer(t, api.HealthDependencies{
		DatabaseName:  "bolt",
		CheckDatabase: func(context.Context) error { return nil },
	})

	recorder := do(router, http.MethodPost, "/api/v1/admin/topics", "editor", `{"title":"Ancient Rome","summary":"S","status":"published"}`)
	require.Equal(t, http.StatusCreated, recorder.Code)
	assert.NotEmpty(t, recorder.Header().Get("X-Request-ID"))

	recorder = do(router, http.MethodGet, "/api/v1/topics/ancient-rome", "", "")
	assert.Equal(t, http.StatusOK, recorder.Code)

	recorder = do(router, http.MethodPost, "/api/v1/admin/media", "editor", `{"type":"image","url":"https://cdn.test/a.jpg"}`)
	require.Equal(t, http.StatusCreated, recorder.Code)

	recorder = do(router, http.MethodGet, "/api/v1/admin/dashboard", "editor", "")
	require.Equal(t, http.StatusOK, recorder.Code)

	var summary struct {
		Data dashboard.Summary `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &summary))
	assert.Equal(t, dashboard.Summary{AllTopics: 1, PublishedTopics: 1, AllMedia: 1}, summary.Data)

	recorder = do(router, http.MethodGet, "/api/v1/admin/dashboard", "", "")
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)

	recorder = do(router, http.MethodGet, "/api/v1/admin/topics", "stolen", "")
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

/*
TestHealth covers liveness and the degraded readiness path.
*/
func TestHealth(t *testing.T) {
	router := newTestServer(t, api.HealthDependencies{
		DatabaseName:  "bolt",
		CheckDatabase: func(context.Context) error { return nil },
		CheckCache:    func(context.Context) error { return errors.New("redis: connection refused") },
	})

	recorder := do(router, http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"status":"ok"`)

	recorder = do(router, http.MethodGet, "/ready", "", "")
	assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)

	var body struct {
		Data struct {
			Status string `json:"status"`
			Checks []struct {
				Name string `json:"name"`
				OK   bool   `json:"ok"`
			} `json:"checks"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, "degraded", body.Data.Status)
	require.Len(t, body.Data.Checks, 2)
	assert.Equal(t, "bolt", body.Data.Checks[0].Name)
	assert.True(t, body.Data.Checks[0].OK)
	assert.False(t, body.Data.Checks[1].OK)
}
