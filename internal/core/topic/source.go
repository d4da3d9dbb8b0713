// Copyright (c) 2026 The World. All rights reserved.
// Author: aman-SINGH7999

package topic

import (
	"strings"

	"github.com/aman-SINGH7999/the-world/pkg/convert"
	"github.com/aman-SINGH7999/the-world/pkg/slice"
)

// NormalizeSources trims title and url and drops entries without a title.
func NormalizeSources(raw []any) []Source {
	return slice.FilterMap(raw, func(entry any) (Source, bool) {
		fields, ok := entry.(map[string]any)
		if !ok {
			return Source{}, false
		}

		source := Source{
			Title: strings.TrimSpace(convert.String(fields["title"])),
			URL:   strings.TrimSpace(convert.String(fields["url"])),
		}
		return source, source.Title != ""
	})
}
