// Copyright (c) 2026 The World. All rights reserved.
// Author: aman-SINGH7999

package topic

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	bbolt "go.etcd.io/bbolt"
	"golang.org/x/text/cases"

	"github.com/aman-SINGH7999/the-world/internal/platform/apperr"
	"github.com/aman-SINGH7999/the-world/internal/platform/bolt"
)

// Bucket layout of the embedded store.
var (
	bucketTopics = []byte("topics")      // id -> boltRecord JSON
	bucketSlugs  = []byte("topic_slugs") // slug -> id
	bucketOrder  = []byte("topic_order") // OrderKey(createdAt, seq) -> id
)

// Buckets lists every bucket the topic store needs, for [bolt.Open].
func Buckets() [][]byte {
	return [][]byte{bucketTopics, bucketSlugs, bucketOrder}
}

// boltRecord is the stored form: the document plus its insertion sequence.
type boltRecord struct {
	Seq uint64 `json:"_seq"`
	Topic
}

// # Embedded Repository

type boltRepository struct {
	db *bbolt.DB
}

// NewBoltRepository constructs a topic store on an opened bbolt database.
// The buckets from [Buckets] must already exist.
func NewBoltRepository(db *bbolt.DB) Repository {
	return &boltRepository{db: db}
}

/*
Create writes the record, its slug claim and its order key in one write
transaction. The slug check inside the transaction is the atomic claim.
*/
func (repository *boltRepository) Create(ctx context.Context, topic *Topic) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return repository.db.Update(func(tx *bbolt.Tx) error {
		topics, slugs, order := tx.Bucket(bucketTopics), tx.Bucket(bucketSlugs), tx.Bucket(bucketOrder)

		if topics.Get([]byte(topic.ID)) != nil {
			return apperr.Conflict("Topic already exists")
		}
		if slugs.Get([]byte(topic.Slug)) != nil {
			return slugTaken()
		}

		seq, err := topics.NextSequence()
		if err != nil {
			return fmt.Errorf("topic: next sequence: %w", err)
		}

		record := boltRecord{Seq: seq, Topic: *topic}
		if err := putRecord(topics, &record); err != nil {
			return err
		}
		if err := slugs.Put([]byte(topic.Slug), []byte(topic.ID)); err != nil {
			return err
		}
		return order.Put(bolt.OrderKey(topic.CreatedAt, seq), []byte(topic.ID))
	})
}

// FindByID returns the topic with the given ID.
func (repository *boltRepository) FindByID(ctx context.Context, id string) (*Topic, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var found *Topic
	err := repository.db.View(func(tx *bbolt.Tx) error {
		record, err := getRecord(tx.Bucket(bucketTopics), id)
		if err != nil {
			return err
		}
		found = &record.Topic
		return nil
	})
	return found, err
}

// FindBySlug resolves the slug claim, then loads the record.
func (repository *boltRepository) FindBySlug(ctx context.Context, slug string) (*Topic, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var found *Topic
	err := repository.db.View(func(tx *bbolt.Tx) error {
		id := tx.Bucket(bucketSlugs).Get([]byte(slug))
		if id == nil {
			return apperr.NotFound(resourceName)
		}

		record, err := getRecord(tx.Bucket(bucketTopics), string(id))
		if err != nil {
			return err
		}
		found = &record.Topic
		return nil
	})
	return found, err
}

/*
Update loads, applies and rewrites the record in one write transaction.
bbolt serializes writers, so the read-modify-write is atomic.
*/
func (repository *boltRepository) Update(ctx context.Context, id string, changes *Changes) (*Topic, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var updated *Topic
	err := repository.db.Update(func(tx *bbolt.Tx) error {
		topics, slugs := tx.Bucket(bucketTopics), tx.Bucket(bucketSlugs)

		record, err := getRecord(topics, id)
		if err != nil {
			return err
		}

		if changes.Slug != nil && *changes.Slug != record.Slug {
			if owner := slugs.Get([]byte(*changes.Slug)); owner != nil && string(owner) != id {
				return slugTaken()
			}
			if err := slugs.Delete([]byte(record.Slug)); err != nil {
				return err
			}
			if err := slugs.Put([]byte(*changes.Slug), []byte(id)); err != nil {
				return err
			}
		}

		changes.Apply(&record.Topic)
		if err := putRecord(topics, record); err != nil {
			return err
		}

		updated = &record.Topic
		return nil
	})
	return updated, err
}

/*
List walks the order index newest first, filtering in memory.

Each record is decoded so the matcher can see its chapters and sources.
Every match is counted for the total; only matches inside the requested page
are kept in the result.
*/
func (repository *boltRepository) List(ctx context.Context, filter Filter) ([]*Topic, int, error) {
	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}

	matcher := newMatcher(filter)
	skip := filter.Offset()
	topics := make([]*Topic, 0, filter.Limit)
	total := 0

	err := repository.db.View(func(tx *bbolt.Tx) error {
		records := tx.Bucket(bucketTopics)
		cursor := tx.Bucket(bucketOrder).Cursor()

		for key, id := cursor.Last(); key != nil; key, id = cursor.Prev() {
			record, err := getRecord(records, string(id))
			if err != nil {
				return err
			}
			if !matcher.match(&record.Topic) {
				continue
			}

			total++
			if total > skip && len(topics) < filter.Limit {
				topics = append(topics, &record.Topic)
			}
		}
		return nil
	})
	if err != nil {
		return nil, 0, err
	}

	return topics, total, nil
}

// Count returns the number of topics with the status, or all topics.
func (repository *boltRepository) Count(ctx context.Context, status Status) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	count := 0
	err := repository.db.View(func(tx *bbolt.Tx) error {
		records := tx.Bucket(bucketTopics)
		if status == "" {
			count = records.Stats().KeyN
			return nil
		}

		return records.ForEach(func(_, value []byte) error {
			var probe struct {
				Status Status `json:"status"`
			}
			if err := json.Unmarshal(value, &probe); err != nil {
				return fmt.Errorf("topic: decode record: %w", err)
			}
			if probe.Status == status {
				count++
			}
			return nil
		})
	})
	return count, err
}

// Delete removes the record with its slug claim and order key.
func (repository *boltRepository) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return repository.db.Update(func(tx *bbolt.Tx) error {
		topics := tx.Bucket(bucketTopics)

		record, err := getRecord(topics, id)
		if err != nil {
			return err
		}

		if err := tx.Bucket(bucketSlugs).Delete([]byte(record.Slug)); err != nil {
			return err
		}
		if err := tx.Bucket(bucketOrder).Delete(bolt.OrderKey(record.CreatedAt, record.Seq)); err != nil {
			return err
		}
		return topics.Delete([]byte(id))
	})
}

// # Record Codec

func getRecord(bucket *bbolt.Bucket, id string) (*boltRecord, error) {
	raw := bucket.Get([]byte(id))
	if raw == nil {
		return nil, apperr.NotFound(resourceName)
	}

	record := &boltRecord{}
	if err := json.Unmarshal(raw, record); err != nil {
		return nil, fmt.Errorf("topic: decode record %s: %w", id, err)
	}
	return record, nil
}

func putRecord(bucket *bbolt.Bucket, record *boltRecord) error {
	raw, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("topic: encode record %s: %w", record.ID, err)
	}
	return bucket.Put([]byte(record.ID), raw)
}

// # In-memory Matching

// matcher evaluates a Filter against decoded topics, mirroring the SQL
// predicate of the PostgreSQL store.
type matcher struct {
	filter Filter
	needle string
	fold   cases.Caser
}

func newMatcher(filter Filter) *matcher {
	fold := cases.Fold()
	return &matcher{
		filter: filter,
		needle: fold.String(filter.Query),
		fold:   fold,
	}
}

func (m *matcher) match(topic *Topic) bool {
	filter := m.filter

	if filter.Status != "" && topic.Status != filter.Status {
		return false
	}
	if len(filter.Categories) > 0 && !slices.ContainsFunc(filter.Categories, func(c string) bool {
		return slices.Contains(topic.Category, c)
	}) {
		return false
	}
	if filter.Timeline != "" && topic.Timeline != filter.Timeline {
		return false
	}
	if filter.Era != "" && topic.Era != filter.Era {
		return false
	}
	if filter.Location != "" && topic.Location != filter.Location {
		return false
	}

	return m.needle == "" || m.search(topic)
}

// search looks for the needle in title, summary, block text and source titles.
func (m *matcher) search(topic *Topic) bool {
	if m.contains(topic.Title) || m.contains(topic.Summary) {
		return true
	}
	for _, chapter := range topic.Chapters {
		for _, block := range chapter.Blocks {
			if m.contains(block.Text) {
				return true
			}
		}
	}
	for _, source := range topic.Sources {
		if m.contains(source.Title) {
			return true
		}
	}
	return false
}

func (m *matcher) contains(haystack string) bool {
	return haystack != "" && strings.Contains(m.fold.String(haystack), m.needle)
}
