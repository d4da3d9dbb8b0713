// Copyright (c) 2026 The World. All rights reserved.
// Author: aman-SINGH7999

package topic_test

import (
	"encoding/json"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aman-SINGH7999/the-world/internal/core/topic"
)

const mediaID = "01920000-0000-7000-8000-000000000001"

var blockIDPattern = regexp.MustCompile(`^\d+-[0-9a-z]{6}$`)

/*
TestNormalizeBlocks_Coercion checks defaults for loose block input.
*/
func TestNormalizeBlocks_Coercion(t *testing.T) {
	blocks := topic.NormalizeBlocks([]any{
		"not an object",
		42,
		map[string]any{},
		map[string]any{
			"id":      "keep-me",
			"type":    "list",
			"text":    17,
			"items":   []any{"one", 2, "three"},
			"url":     "https://cdn.example.com/x.png",
			"caption": "c",
			"altText": "a",
			"meta":    map[string]any{"align": "left"},
			"mediaId": mediaID,
		},
		map[string]any{"type": "hologram", "items": "nope", "meta": []any{1}, "_id": 99.0},
	})

	require.Len(t, blocks, 3)

	empty := blocks[0]
	assert.Regexp(t, blockIDPattern, empty.ID)
	assert.Equal(t, topic.BlockParagraph, empty.Type)
	assert.Equal(t, "", empty.Text)
	assert.Equal(t, []string{}, empty.Items)
	assert.Equal(t, map[string]any{}, empty.Meta)

	full := blocks[1]
	assert.Equal(t, "keep-me", full.ID)
	assert.Equal(t, topic.BlockList, full.Type)
	assert.Equal(t, "", full.Text, "non-string text becomes empty")
	assert.Equal(t, []string{"one", "2", "three"}, full.Items)
	assert.Equal(t, "https://cdn.example.com/x.png", full.URL)
	assert.Equal(t, map[string]any{"align": "left"}, full.Meta)
	assert.Equal(t, topic.MediaID(mediaID), full.MediaID)

	odd := blocks[2]
	assert.Equal(t, "99", odd.ID, "legacy numeric ids are coerced to strings")
	assert.Equal(t, topic.BlockParagraph, odd.Type)
	assert.Equal(t, []string{}, odd.Items)
	assert.Equal(t, map[string]any{}, odd.Meta)
}

/*
TestNormalizeBlocks_ListItems checks that scalar list entries survive as strings.
*/
func TestNormalizeBlocks_ListItems(t *testing.T) {
	tests := []struct {
		name  string
		items any
		want  []string
	}{
		{"mixed_scalars", []any{1.0, "a", true}, []string{"1", "a", "true"}},
		{"fractions_and_false", []any{2.5, false, int64(7)}, []string{"2.5", "false", "7"}},
		{"containers_dropped", []any{"x", map[string]any{"k": "v"}, []any{"y"}, nil, "z"}, []string{"x", "z"}},
		{"not_a_list", map[string]any{"0": "a"}, []string{}},
		{"missing", nil, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			blocks := topic.NormalizeBlocks([]any{map[string]any{"type": "list", "items": tt.items}})
			require.Len(t, blocks, 1)
			assert.Equal(t, tt.want, blocks[0].Items)
		})
	}
}

/*
TestNormalizeBlocks_UniqueIDs checks that generated ids do not collide within a request.
*/
func TestNormalizeBlocks_UniqueIDs(t *testing.T) {
	raw := make([]any, 500)
	for i := range raw {
		raw[i] = map[string]any{"text": "x"}
	}

	seen := map[string]bool{}
	for _, block := range topic.NormalizeBlocks(raw) {
		assert.NotEmpty(t, block.ID)
		assert.False(t, seen[block.ID], "duplicate id %s", block.ID)
		seen[block.ID] = true
	}
}

/*
TestNormalizeChapters_DefaultTitles checks "Chapter N" titling by position.
*/
func TestNormalizeChapters_DefaultTitles(t *testing.T) {
	chapters := topic.NormalizeChapters([]any{map[string]any{}, map[string]any{}})

	require.Len(t, chapters, 2)
	assert.Equal(t, "Chapter 1", chapters[0].Title)
	assert.Equal(t, "Chapter 2", chapters[1].Title)
	assert.Equal(t, 0, chapters[0].Order)
	assert.Equal(t, 1, chapters[1].Order)
	assert.Equal(t, []topic.ContentBlock{}, chapters[0].Blocks)
	assert.Equal(t, []topic.MediaID{}, chapters[0].Media)
}

/*
TestNormalizeChapters_Fields covers order, titles, blocks and media filtering.
*/
func TestNormalizeChapters_Fields(t *testing.T) {
	chapters := topic.NormalizeChapters([]any{
		"skip",
		map[string]any{
			"title":    "  Rise  ",
			"subtitle": "753 BC",
			"order":    7.0,
			"blocks":   []any{map[string]any{"type": "heading", "text": "Founding"}},
			"media":    []any{mediaID, "not-a-uuid", 12, map[string]any{"id": mediaID}},
		},
		map[string]any{"title": "   ", "order": "3", "blocks": "nope"},
	})

	require.Len(t, chapters, 2)

	assert.Equal(t, "Rise", chapters[0].Title)
	assert.Equal(t, "753 BC", chapters[0].Subtitle)
	assert.Equal(t, 7, chapters[0].Order)
	require.Len(t, chapters[0].Blocks, 1)
	assert.Equal(t, topic.BlockHeading, chapters[0].Blocks[0].Type)
	assert.Equal(t, []topic.MediaID{mediaID, mediaID}, chapters[0].Media)

	// Position in the submitted array drives defaults, skipped entries included.
	assert.Equal(t, "Chapter 3", chapters[1].Title)
	assert.Equal(t, 2, chapters[1].Order, "non-numeric order falls back to position")
	assert.Equal(t, []topic.ContentBlock{}, chapters[1].Blocks)
}

/*
TestNormalizeChapters_Idempotent re-normalizes the JSON form of a normalized list.
*/
func TestNormalizeChapters_Idempotent(t *testing.T) {
	first := topic.NormalizeChapters([]any{
		map[string]any{
			"blocks": []any{
				map[string]any{"type": "video", "url": "u"},
				map[string]any{"type": "list", "items": []any{"a"}},
			},
			"media": []any{mediaID},
		},
		map[string]any{"title": "Fall", "order": 4.0},
	})

	encoded, err := json.Marshal(first)
	require.NoError(t, err)

	var raw []any
	require.NoError(t, json.Unmarshal(encoded, &raw))

	assert.Equal(t, first, topic.NormalizeChapters(raw))
}

/*
TestNormalizeSources drops untitled entries and trims the rest.
*/
func TestNormalizeSources(t *testing.T) {
	sources := topic.NormalizeSources([]any{
		map[string]any{"title": "  Livy, Ab Urbe Condita ", "url": " https://example.org/livy "},
		map[string]any{"title": "   ", "url": "https://example.org/orphan"},
		map[string]any{"url": "https://example.org/none"},
		"plain string",
		map[string]any{"title": "Plutarch"},
	})

	assert.Equal(t, []topic.Source{
		{Title: "Livy, Ab Urbe Condita", URL: "https://example.org/livy"},
		{Title: "Plutarch"},
	}, sources)
}

/*
TestExtraInfo_Merge checks per-key last-write-wins without mutating inputs.
*/
func TestExtraInfo_Merge(t *testing.T) {
	base := topic.ExtraInfo{"a": 1, "b": map[string]any{"x": 1}}
	patch := topic.ExtraInfo{"b": map[string]any{"y": 2}, "c": 3}

	merged := base.Merge(patch)

	assert.Equal(t, topic.ExtraInfo{"a": 1, "b": map[string]any{"y": 2}, "c": 3}, merged)
	assert.Equal(t, topic.ExtraInfo{"a": 1, "b": map[string]any{"x": 1}}, base)
	assert.Equal(t, topic.ExtraInfo{"x": 1}, topic.ExtraInfo(nil).Merge(topic.ExtraInfo{"x": 1}))
}
