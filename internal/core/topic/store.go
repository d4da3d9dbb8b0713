// Copyright (c) 2026 The World. All rights reserved.
// Author: aman-SINGH7999

package topic

import (
	"context"
	"time"
)

// # Topic Data Access

// Repository is the persistence contract for topics.
//
// Implementations store each topic as one aggregate and must claim slugs
// atomically: a Create or Update that would give two topics the same slug
// fails with an [apperr.CodeConflict] error, whatever the service pre-checked.
type Repository interface {

	// Create persists a new topic. The topic's ID and timestamps are already set.
	Create(ctx context.Context, topic *Topic) error

	// FindByID returns the topic, or a NotFound error.
	FindByID(ctx context.Context, id string) (*Topic, error)

	// FindBySlug returns the topic owning slug, or a NotFound error.
	FindBySlug(ctx context.Context, slug string) (*Topic, error)

	// Update applies staged changes atomically and returns the new document.
	// A missing topic is a NotFound error and nothing is written.
	Update(ctx context.Context, id string, changes *Changes) (*Topic, error)

	// List returns one page of matches, newest first, and the total match count.
	List(ctx context.Context, filter Filter) ([]*Topic, int, error)

	// Count returns how many topics have the status; empty counts all.
	Count(ctx context.Context, status Status) (int, error)

	// Delete removes the topic permanently.
	Delete(ctx context.Context, id string) error
}

// # Staged Updates

// Changes is the staged field set of a partial update. Nil fields are left
// untouched. Every applied Changes bumps the revision by exactly one.
type Changes struct {
	Title           *string
	Slug            *string
	Subtitle        *string
	Summary         *string
	Overview        *string
	Timeline        *string
	Era             *string
	Location        *string
	MetaTitle       *string
	MetaDescription *string
	HeroMediaURL    *string
	Category        *[]string
	KeyPoints       *[]string

	// Chapters and Sources replace the stored arrays wholesale.
	Chapters *[]Chapter
	Sources  *[]Source

	// ExtraInfo is a patch merged key by key onto the stored map.
	ExtraInfo ExtraInfo

	Status *Status

	// PublishedAt is a candidate stamp; stores keep an existing value.
	PublishedAt *time.Time

	UpdatedBy string
	UpdatedAt time.Time
}

// Apply mutates topic in place. Stores without native partial updates call
// it inside their write transaction.
func (c *Changes) Apply(topic *Topic) {
	assign := func(target *string, value *string) {
		if value != nil {
			*target = *value
		}
	}

	assign(&topic.Title, c.Title)
	assign(&topic.Slug, c.Slug)
	assign(&topic.Subtitle, c.Subtitle)
	assign(&topic.Summary, c.Summary)
	assign(&topic.Overview, c.Overview)
	assign(&topic.Timeline, c.Timeline)
	assign(&topic.Era, c.Era)
	assign(&topic.Location, c.Location)
	assign(&topic.MetaTitle, c.MetaTitle)
	assign(&topic.MetaDescription, c.MetaDescription)
	assign(&topic.HeroMediaURL, c.HeroMediaURL)

	if c.Category != nil {
		topic.Category = *c.Category
	}
	if c.KeyPoints != nil {
		topic.KeyPoints = *c.KeyPoints
	}
	if c.Chapters != nil {
		topic.Chapters = *c.Chapters
	}
	if c.Sources != nil {
		topic.Sources = *c.Sources
	}
	if c.ExtraInfo != nil {
		topic.ExtraInfo = topic.ExtraInfo.Merge(c.ExtraInfo)
	}
	if c.Status != nil {
		topic.Status = *c.Status
	}
	if c.PublishedAt != nil && topic.PublishedAt == nil {
		stamp := *c.PublishedAt
		topic.PublishedAt = &stamp
	}

	topic.UpdatedBy = c.UpdatedBy
	topic.UpdatedAt = c.UpdatedAt
	topic.RevisionNumber++
}
