// Copyright (c) 2026 The World. All rights reserved.
// Author: aman-SINGH7999

package topic

import (
	"strconv"
	"strings"

	"github.com/aman-SINGH7999/the-world/pkg/convert"
	"github.com/aman-SINGH7999/the-world/pkg/slice"
)

// NormalizeChapters coerces loosely-typed chapter payloads into chapters.
//
// Array position is authoritative: chapters are never reordered, and Order
// defaults to the position unless the payload states a number. A blank title
// becomes "Chapter N" (1-based position in the submitted array).
func NormalizeChapters(raw []any) []Chapter {
	chapters := make([]Chapter, 0, len(raw))

	for position, entry := range raw {
		fields, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		chapters = append(chapters, normalizeChapter(fields, position))
	}

	return chapters
}

func normalizeChapter(fields map[string]any, position int) Chapter {
	chapter := Chapter{
		Title:    strings.TrimSpace(convert.String(fields["title"])),
		Subtitle: convert.String(fields["subtitle"]),
		Order:    position,
		Media:    chapterMedia(fields["media"]),
	}

	if chapter.Title == "" {
		chapter.Title = "Chapter " + strconv.Itoa(position+1)
	}

	if order, ok := convert.Int(fields["order"]); ok {
		chapter.Order = order
	}

	blocks, _ := fields["blocks"].([]any)
	chapter.Blocks = NormalizeBlocks(blocks)

	return chapter
}

// chapterMedia keeps valid media references and drops the rest.
func chapterMedia(v any) []MediaID {
	entries, _ := v.([]any)
	return slice.FilterMap(entries, mediaRef)
}
