// Copyright (c) 2026 The World. All rights reserved.
// Author: aman-SINGH7999

package media

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	bbolt "go.etcd.io/bbolt"
	"golang.org/x/text/cases"

	"github.com/aman-SINGH7999/the-world/internal/platform/apperr"
	"github.com/aman-SINGH7999/the-world/internal/platform/bolt"
)

var (
	bucketMedia = []byte("media")       // id -> boltRecord JSON
	bucketOrder = []byte("media_order") // OrderKey(uploadedAt, seq) -> id
)

// Buckets lists every bucket the media store needs, for [bolt.Open].
func Buckets() [][]byte {
	return [][]byte{bucketMedia, bucketOrder}
}

type boltRecord struct {
	Seq uint64 `json:"_seq"`
	Media
}

type boltRepository struct {
	db *bbolt.DB
}

// NewBoltRepository constructs a media store on an opened bbolt database.
func NewBoltRepository(db *bbolt.DB) Repository {
	return &boltRepository{db: db}
}

func (repository *boltRepository) Create(ctx context.Context, media *Media) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return repository.db.Update(func(tx *bbolt.Tx) error {
		records := tx.Bucket(bucketMedia)
		if records.Get([]byte(media.ID)) != nil {
			return apperr.Conflict("Media already exists")
		}

		seq, err := records.NextSequence()
		if err != nil {
			return fmt.Errorf("media: next sequence: %w", err)
		}

		raw, err := json.Marshal(boltRecord{Seq: seq, Media: *media})
		if err != nil {
			return fmt.Errorf("media: encode record %s: %w", media.ID, err)
		}
		if err := records.Put([]byte(media.ID), raw); err != nil {
			return err
		}
		return tx.Bucket(bucketOrder).Put(bolt.OrderKey(media.UploadedAt, seq), []byte(media.ID))
	})
}

func (repository *boltRepository) FindByID(ctx context.Context, id string) (*Media, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var found *Media
	err := repository.db.View(func(tx *bbolt.Tx) error {
		record, err := getRecord(tx.Bucket(bucketMedia), id)
		if err != nil {
			return err
		}
		found = &record.Media
		return nil
	})
	return found, err
}

func (repository *boltRepository) List(ctx context.Context, filter Filter) ([]*Media, int, error) {
	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}

	fold := cases.Fold()
	needle := fold.String(filter.Search)
	contains := func(haystack string) bool {
		return haystack != "" && strings.Contains(fold.String(haystack), needle)
	}

	skip := filter.Offset()
	items := make([]*Media, 0, filter.Limit)
	total := 0

	err := repository.db.View(func(tx *bbolt.Tx) error {
		records := tx.Bucket(bucketMedia)
		cursor := tx.Bucket(bucketOrder).Cursor()

		for key, id := cursor.Last(); key != nil; key, id = cursor.Prev() {
			record, err := getRecord(records, string(id))
			if err != nil {
				return err
			}

			media := &record.Media
			switch {
			case filter.Type != "" && media.Type != filter.Type,
				filter.Provider != "" && media.Provider != filter.Provider,
				needle != "" && !contains(media.Caption) && !contains(media.AltText):
				continue
			}

			total++
			if total > skip && len(items) < filter.Limit {
				items = append(items, media)
			}
		}
		return nil
	})
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (repository *boltRepository) Count(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	count := 0
	err := repository.db.View(func(tx *bbolt.Tx) error {
		count = tx.Bucket(bucketMedia).Stats().KeyN
		return nil
	})
	return count, err
}

func (repository *boltRepository) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return repository.db.Update(func(tx *bbolt.Tx) error {
		records := tx.Bucket(bucketMedia)

		record, err := getRecord(records, id)
		if err != nil {
			return err
		}
		if err := tx.Bucket(bucketOrder).Delete(bolt.OrderKey(record.UploadedAt, record.Seq)); err != nil {
			return err
		}
		return records.Delete([]byte(id))
	})
}

func getRecord(bucket *bbolt.Bucket, id string) (*boltRecord, error) {
	raw := bucket.Get([]byte(id))
	if raw == nil {
		return nil, apperr.NotFound(resourceName)
	}

	record := &boltRecord{}
	if err := json.Unmarshal(raw, record); err != nil {
		return nil, fmt.Errorf("media: decode record %s: %w", id, err)
	}
	return record, nil
}
