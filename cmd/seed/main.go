// Copyright (c) 2026 The World. All rights reserved.
// Author: aman-SINGH7999

// Command seed imports topics from a YAML fixture through the regular write
// pipeline, so seeded documents are normalized and slugged like authored ones.
//
// # Usage
//
//	STORE_DRIVER=bolt seed -file data/fixtures/topics.yaml -actor seed-bot
//
// Topics whose slug already exists are skipped. Any other failure exits 1.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/aman-SINGH7999/the-world/internal/core/media"
	"github.com/aman-SINGH7999/the-world/internal/core/topic"
	"github.com/aman-SINGH7999/the-world/internal/platform/apperr"
	"github.com/aman-SINGH7999/the-world/internal/platform/bolt"
	"github.com/aman-SINGH7999/the-world/internal/platform/config"
	"github.com/aman-SINGH7999/the-world/internal/platform/constants"
	"github.com/aman-SINGH7999/the-world/internal/platform/migration"
	pgstore "github.com/aman-SINGH7999/the-world/internal/platform/postgres"
)

// storeConfig is the subset of the API configuration the importer needs.
type storeConfig struct {
	StoreDriver   string `env:"STORE_DRIVER"   envDefault:"postgres"`
	DatabaseURL   string `env:"DATABASE_URL"`
	MigrationPath string `env:"MIGRATION_PATH" envDefault:"./data/migrations"`
	BoltPath      string `env:"BOLT_PATH"      envDefault:"./data/worlddoc.db"`
}

// summary counts the outcome of one import run.
type summary struct {
	Created int
	Skipped int
}

func main() {
	file := flag.String("file", "data/fixtures/topics.yaml", "YAML file holding a list of topics")
	actor := flag.String("actor", "seed", "user id stamped as createdBy/updatedBy")
	flag.Parse()

	log := slog.New(slog.NewJSONHandler(os.Stdout, nil)).With(slog.String(constants.FieldApp, "worlddoc-seed"))

	if err := run(context.Background(), log, *file, topic.Actor{UserID: *actor, Role: "admin"}); err != nil {
		log.Error("seed_failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(ctx context.Context, log *slog.Logger, file string, actor topic.Actor) error {
	var cfg storeConfig
	if err := env.Parse(&cfg); err != nil {
		return fmt.Errorf("parse environment: %w", err)
	}

	payloads, err := readFixtures(file)
	if err != nil {
		return err
	}

	repo, closeStore, err := openStore(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeStore()

	result, err := importTopics(ctx, topic.NewService(repo, log), log, actor, payloads)
	if err != nil {
		return err
	}

	log.Info("seed_finished",
		slog.String("file", file),
		slog.Int("created", result.Created),
		slog.Int("skipped", result.Skipped),
	)
	return nil
}

// readFixtures decodes a YAML list of topic payloads.
func readFixtures(path string) ([]map[string]any, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixtures: %w", err)
	}

	var payloads []map[string]any
	if err := yaml.Unmarshal(raw, &payloads); err != nil {
		return nil, fmt.Errorf("decode fixtures %s: %w", path, err)
	}
	return payloads, nil
}

// importTopics creates every payload in order. Slug conflicts are skipped.
func importTopics(ctx context.Context, service *topic.Service, log *slog.Logger, actor topic.Actor, payloads []map[string]any) (summary, error) {
	var result summary

	for i, payload := range payloads {
		in, err := topic.ParseInput(payload)
		if err != nil {
			return result, fmt.Errorf("fixture %d: %w", i, err)
		}

		projection, err := service.Create(ctx, actor, in)
		switch {
		case apperr.HasCode(err, apperr.CodeConflict):
			result.Skipped++
			log.Warn("seed_topic_skipped", slog.Int("index", i), slog.String("reason", err.Error()))
			continue
		case err != nil:
			return result, fmt.Errorf("fixture %d: %w", i, err)
		}

		result.Created++
		log.Info("seed_topic_created", slog.String("slug", projection.Slug), slog.String("id", projection.ID))
	}

	return result, nil
}

func openStore(ctx context.Context, cfg storeConfig, log *slog.Logger) (topic.Repository, func(), error) {
	switch cfg.StoreDriver {
	case config.DriverPostgres:
		if cfg.DatabaseURL == "" {
			return nil, nil, errors.New("DATABASE_URL is required when STORE_DRIVER=postgres")
		}
		pool, err := pgstore.NewPool(ctx, cfg.DatabaseURL, log)
		if err != nil {
			return nil, nil, err
		}
		if err := migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log); err != nil {
			pool.Close()
			return nil, nil, err
		}
		return topic.NewPostgresRepository(pool), pool.Close, nil

	case config.DriverBolt:
		db, err := bolt.Open(cfg.BoltPath, log, append(topic.Buckets(), media.Buckets()...)...)
		if err != nil {
			return nil, nil, err
		}
		return topic.NewBoltRepository(db), func() { _ = db.Close() }, nil
	}

	return nil, nil, fmt.Errorf("unknown STORE_DRIVER %q", cfg.StoreDriver)
}
