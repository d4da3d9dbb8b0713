// Copyright (c) 2026 The World. All rights reserved.
// Author: aman-SINGH7999

package topic_test

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	bbolt "go.etcd.io/bbolt"

	"github.com/aman-SINGH7999/the-world/internal/core/topic"
	"github.com/aman-SINGH7999/the-world/internal/platform/bolt"
)

var editor = topic.Actor{UserID: "editor-7", Role: "editor"}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// openStore opens a fresh embedded store that is closed when the test ends.
func openStore(t *testing.T) *bbolt.DB {
	t.Helper()

	db, err := bolt.Open(filepath.Join(t.TempDir(), "topics.db"), discardLogger(), topic.Buckets()...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return db
}

func newService(t *testing.T) (*topic.Service, topic.Repository) {
	t.Helper()

	repo := topic.NewBoltRepository(openStore(t))
	return topic.NewService(repo, discardLogger()), repo
}

// mustInput parses a payload, failing the test on error.
func mustInput(t *testing.T, payload map[string]any) topic.Input {
	t.Helper()

	in, err := topic.ParseInput(payload)
	require.NoError(t, err)
	return in
}

// mustCreate creates a topic from a payload and returns its projection.
func mustCreate(t *testing.T, service *topic.Service, payload map[string]any) *topic.Projection {
	t.Helper()

	projection, err := service.Create(context.Background(), editor, mustInput(t, payload))
	require.NoError(t, err)
	return projection
}
