// Copyright (c) 2026 The World. All rights reserved.
// Author: aman-SINGH7999

package topic

import (
	"math/rand/v2"
	"strconv"
	"strings"
	"time"

	"github.com/aman-SINGH7999/the-world/pkg/convert"
	"github.com/aman-SINGH7999/the-world/pkg/slice"
	"github.com/aman-SINGH7999/the-world/pkg/uuid"
)

const (
	blockIDSuffixLen = 6
	base36           = "0123456789abcdefghijklmnopqrstuvwxyz"
)

// NewBlockID returns "<unix millis>-<6 random base36 chars>".
func NewBlockID() string {
	var suffix [blockIDSuffixLen]byte
	for i := range suffix {
		suffix[i] = base36[rand.N(len(base36))]
	}
	return strconv.FormatInt(time.Now().UnixMilli(), 10) + "-" + string(suffix[:])
}

// NormalizeBlocks coerces loosely-typed block payloads into content blocks.
//
// Entries that are not objects are dropped. Nothing else is rejected: every
// field falls back to a safe default, so one bad block never loses a topic.
// Supplied ids are kept, which makes the function idempotent.
func NormalizeBlocks(raw []any) []ContentBlock {
	return slice.FilterMap(raw, func(entry any) (ContentBlock, bool) {
		fields, ok := entry.(map[string]any)
		if !ok {
			return ContentBlock{}, false
		}
		return normalizeBlock(fields), true
	})
}

func normalizeBlock(fields map[string]any) ContentBlock {
	block := ContentBlock{
		ID:      blockID(fields),
		Type:    BlockType(convert.String(fields["type"])),
		Text:    convert.String(fields["text"]),
		Items:   stringItems(fields["items"]),
		URL:     convert.String(fields["url"]),
		Caption: convert.String(fields["caption"]),
		AltText: convert.String(fields["altText"]),
		Meta:    map[string]any{},
	}

	if !block.Type.IsValid() {
		block.Type = BlockParagraph
	}

	if id, ok := mediaRef(fields["mediaId"]); ok {
		block.MediaID = id
	}

	if meta, ok := fields["meta"].(map[string]any); ok {
		block.Meta = meta
	}

	return block
}

// blockID reads "id" (or the legacy "_id") as a string, generating one when blank.
func blockID(fields map[string]any) string {
	for _, key := range []string{"id", "_id"} {
		if id := strings.TrimSpace(scalarString(fields[key])); id != "" {
			return id
		}
	}
	return NewBlockID()
}

// scalarString coerces strings and numbers to their string form.
func scalarString(v any) string {
	switch value := v.(type) {
	case string:
		return value
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	case int:
		return strconv.Itoa(value)
	case int64:
		return strconv.FormatInt(value, 10)
	}
	return ""
}

// stringItems coerces the scalar entries of a list to strings. Objects, arrays
// and nulls are dropped; a non-list yields an empty list.
func stringItems(v any) []string {
	entries, ok := v.([]any)
	if !ok {
		return []string{}
	}
	return slice.FilterMap(entries, func(entry any) (string, bool) {
		switch value := entry.(type) {
		case string, float64, int, int64:
			return scalarString(value), true
		case bool:
			return strconv.FormatBool(value), true
		}
		return "", false
	})
}

// mediaRef accepts a media UUID, or an already-typed reference object {"id": ...}.
func mediaRef(v any) (MediaID, bool) {
	switch ref := v.(type) {
	case MediaID:
		return canonicalMediaID(string(ref))
	case string:
		return canonicalMediaID(ref)
	case map[string]any:
		if id, ok := ref["id"].(string); ok {
			return canonicalMediaID(id)
		}
	}
	return "", false
}

func canonicalMediaID(s string) (MediaID, bool) {
	id, ok := uuid.Canonical(strings.TrimSpace(s))
	return MediaID(id), ok
}
