// Copyright (c) 2026 The World. All rights reserved.
// Author: aman-SINGH7999

// Package bolt opens the embedded single-file store used when the API runs
// without PostgreSQL (local authoring, tests, small installs).
//
// # Layout
//
// Each domain owns its buckets. A bucket maps primary ID to a JSON record and
// companion index buckets hold secondary keys (slug claims, sort order). All
// index maintenance happens inside the same write transaction as the record.
package bolt

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	bbolt "go.etcd.io/bbolt"
)

const openTimeout = 1 * time.Second

// Open opens (or creates) the database file and ensures the given buckets exist.
func Open(path string, logger *slog.Logger, buckets ...[]byte) (*bbolt.DB, error) {
	if path == "" {
		return nil, errors.New("bolt: missing path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("bolt: create directory: %w", err)
	}

	db, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: openTimeout})
	if err != nil {
		return nil, fmt.Errorf("bolt: open %s: %w", path, err)
	}

	if err := EnsureBuckets(db, buckets...); err != nil {
		_ = db.Close()
		return nil, err
	}

	logger.Info("bolt_store_opened", slog.String("path", path), slog.Int("buckets", len(buckets)))
	return db, nil
}

// EnsureBuckets creates any missing top-level buckets.
func EnsureBuckets(db *bbolt.DB, buckets ...[]byte) error {
	return db.Update(func(tx *bbolt.Tx) error {
		for _, name := range buckets {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return fmt.Errorf("bolt: create bucket %s: %w", name, err)
			}
		}
		return nil
	})
}

// Ping runs an empty read transaction; it fails once the DB is closed.
func Ping(ctx context.Context, db *bbolt.DB) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return db.View(func(*bbolt.Tx) error { return nil })
}

// OrderKey encodes (time, seq) so that byte order equals chronological order,
// with seq breaking ties between records stamped in the same nanosecond.
func OrderKey(at time.Time, seq uint64) []byte {
	key := make([]byte, 16)
	binary.BigEndian.PutUint64(key[:8], uint64(at.UnixNano()))
	binary.BigEndian.PutUint64(key[8:], seq)
	return key
}
