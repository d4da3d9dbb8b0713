// Copyright (c) 2026 The World. All rights reserved.
// Author: aman-SINGH7999

/*
Package topic defines the WorldDoc content model and its write/query pipeline.

A Topic is a documentary article stored as one aggregate: ordered chapters,
each holding a heterogeneous sequence of content blocks, plus sources and
free-form extra info. Chapters and blocks have no storage of their own.

Core Responsibility:

  - Model: Topic, Chapter, ContentBlock, Source and their enums.
  - Normalization: coercing loose client payloads into well-formed chapters.
  - Write Pipeline: create, partial update, archive and publish with revision tracking.
  - Query: filtered, searchable, deterministic pagination.
*/
package topic

import (
	"maps"
	"time"
)

// # Domain Enums

// Status is the lifecycle state of a topic.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusPublished Status = "published"
	StatusArchived  Status = "archived"
)

// Statuses lists every recognized status in display order.
var Statuses = []Status{StatusDraft, StatusPublished, StatusArchived}

// IsValid reports whether s is a recognised [Status] value.
func (s Status) IsValid() bool {
	switch s {
	case StatusDraft, StatusPublished, StatusArchived:
		return true
	}
	return false
}

// BlockType discriminates the kind of content a block carries.
type BlockType string

const (
	BlockParagraph BlockType = "paragraph"
	BlockHeading   BlockType = "heading"
	BlockImage     BlockType = "image"
	BlockVideo     BlockType = "video"
	BlockEmbed     BlockType = "embed"
	BlockQuote     BlockType = "quote"
	BlockList      BlockType = "list"
)

// IsValid reports whether t is a recognised [BlockType].
func (t BlockType) IsValid() bool {
	switch t {
	case BlockParagraph, BlockHeading, BlockImage, BlockVideo, BlockEmbed, BlockQuote, BlockList:
		return true
	}
	return false
}

// HasURL reports whether the block type renders a url.
func (t BlockType) HasURL() bool {
	return t == BlockImage || t == BlockVideo || t == BlockEmbed
}

// MediaID references an entry of the media library. It is opaque to topics.
type MediaID string

// # Content Structure

// ContentBlock is one unit of chapter content.
//
// Text is used by paragraph, heading and quote; Items only by list; URL only
// by image, video and embed. Other fields are carried but not interpreted.
type ContentBlock struct {
	ID      string         `json:"id"`
	Type    BlockType      `json:"type"`
	Text    string         `json:"text"`
	Items   []string       `json:"items"`
	URL     string         `json:"url,omitempty"`
	Caption string         `json:"caption,omitempty"`
	AltText string         `json:"altText,omitempty"`
	MediaID MediaID        `json:"mediaId,omitempty"`
	Meta    map[string]any `json:"meta"`
}

// Chapter is an ordered section of a topic.
type Chapter struct {
	Title    string         `json:"title"`
	Subtitle string         `json:"subtitle,omitempty"`
	Order    int            `json:"order"`
	Blocks   []ContentBlock `json:"blocks"`
	Media    []MediaID      `json:"media"`
}

// Source is a bibliographic reference.
type Source struct {
	Title string `json:"title"`
	URL   string `json:"url,omitempty"`
}

// ExtraInfo is the free-form extension map of a topic.
//
// It is merged key by key on update: incoming keys replace same-named keys,
// untouched keys survive. Nested values are replaced, never merged.
type ExtraInfo map[string]any

// HeroMediaKey is the ExtraInfo key holding the hero media reference.
const HeroMediaKey = "heroMediaId"

// Merge returns a new map holding e overlaid with patch. Neither input is modified.
func (e ExtraInfo) Merge(patch ExtraInfo) ExtraInfo {
	merged := make(ExtraInfo, len(e)+len(patch))
	maps.Copy(merged, e)
	maps.Copy(merged, patch)
	return merged
}

// # Aggregate Root

// Topic is the persisted document.
type Topic struct {
	ID              string     `json:"id"`
	Title           string     `json:"title"`
	Slug            string     `json:"slug"`
	Subtitle        string     `json:"subtitle"`
	Category        []string   `json:"category"`
	Era             string     `json:"era"`
	Location        string     `json:"location"`
	Timeline        string     `json:"timeline"`
	Summary         string     `json:"summary"`
	Overview        string     `json:"overview"`
	Chapters        []Chapter  `json:"chapters"`
	Sources         []Source   `json:"sources"`
	KeyPoints       []string   `json:"keyPoints"`
	HeroMediaURL    string     `json:"heroMediaUrl"`
	ExtraInfo       ExtraInfo  `json:"extraInfo"`
	Status          Status     `json:"status"`
	CreatedBy       string     `json:"createdBy"`
	UpdatedBy       string     `json:"updatedBy"`
	PublishedAt     *time.Time `json:"publishedAt"`
	RevisionNumber  int        `json:"revisionNumber"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
	MetaTitle       string     `json:"metaTitle"`
	MetaDescription string     `json:"metaDescription"`
}

// Projection is the minimal view returned by create.
type Projection struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Status      Status     `json:"status"`
	PublishedAt *time.Time `json:"publishedAt"`
}

// Project returns the minimal projection of t.
func (t *Topic) Project() Projection {
	return Projection{
		ID:          t.ID,
		Title:       t.Title,
		Slug:        t.Slug,
		Status:      t.Status,
		PublishedAt: t.PublishedAt,
	}
}

// Actor is the identity supplied by the auth service and stamped on writes.
// The pipeline trusts it verbatim.
type Actor struct {
	UserID string
	Role   string
}

// # Field Names

// Payload keys, used for parsing and for validation messages.
const (
	FieldTitle           = "title"
	FieldSlug            = "slug"
	FieldSubtitle        = "subtitle"
	FieldCategory        = "category"
	FieldEra             = "era"
	FieldLocation        = "location"
	FieldTimeline        = "timeline"
	FieldSummary         = "summary"
	FieldOverview        = "overview"
	FieldChapters        = "chapters"
	FieldSources         = "sources"
	FieldKeyPoints       = "keyPoints"
	FieldHeroMediaURL    = "heroMediaUrl"
	FieldHeroMediaID     = "heroMediaId"
	FieldExtraInfo       = "extraInfo"
	FieldStatus          = "status"
	FieldMetaTitle       = "metaTitle"
	FieldMetaDescription = "metaDescription"
)
