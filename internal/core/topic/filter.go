// Copyright (c) 2026 The World. All rights reserved.
// Author: aman-SINGH7999

package topic

import (
	"net/url"
	"strings"

	"github.com/aman-SINGH7999/the-world/pkg/pagination"
	"github.com/aman-SINGH7999/the-world/pkg/query"
)

// Filter holds the list criteria. Empty fields do not filter.
type Filter struct {
	// Status matches exactly. Unrecognized values match nothing.
	Status Status
	// Categories matches topics carrying any of the given categories.
	Categories []string
	Timeline   string
	Era        string
	Location   string
	// Query matches case-insensitively inside title, summary, chapter block
	// text and source titles.
	Query string

	pagination.Params
}

// ParseFilter reads the flat query-string shape:
// status, q, category (repeated or comma-joined), timeline, era, location, page, limit.
//
// It never fails. Bad page/limit values fall back to defaults or are clamped.
func ParseFilter(values url.Values) Filter {
	return Filter{
		Status:     Status(strings.TrimSpace(values.Get("status"))),
		Categories: query.Values(values, "category"),
		Timeline:   strings.TrimSpace(values.Get("timeline")),
		Era:        strings.TrimSpace(values.Get("era")),
		Location:   strings.TrimSpace(values.Get("location")),
		Query:      strings.TrimSpace(values.Get("q")),
		Params:     pagination.FromValues(values, pagination.DefaultLimit),
	}
}

// ListResult is one page of topics.
type ListResult struct {
	Items      []*Topic `json:"items"`
	Total      int      `json:"total"`
	TotalPages int      `json:"totalPages"`
	Page       int      `json:"page"`
	Limit      int      `json:"limit"`
}

// Meta converts the result into response pagination metadata.
func (r *ListResult) Meta() pagination.Meta {
	return pagination.NewMeta(r.Page, r.Limit, r.Total)
}
