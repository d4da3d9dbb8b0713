// Copyright (c) 2026 The World. All rights reserved.
// Author: aman-SINGH7999

// Package pagination provides shared types and helpers for API list endpoints.
//
// # Overview
//
// It standardizes how page-based navigation is requested via query parameters,
// how the resulting metadata is delivered in the API response envelope, and how
// a compact page-range (1 … 4 5 6 … 20) is derived for list views.
package pagination

import (
	"net/http"
	"net/url"

	"github.com/aman-SINGH7999/the-world/pkg/convert"
)

const (
	// DefaultLimit is the number of items per page if not specified.
	DefaultLimit = 20
	// MaxLimit is the upper bound for items per page to prevent unbounded result sets.
	MaxLimit = 100
	// DefaultPage is the starting page (1-indexed).
	DefaultPage = 1
	// RangeDelta is the number of pages shown on each side of the current page.
	RangeDelta = 2
)

// Params holds the parsed page and limit from a request's query string.
type Params struct {
	Page  int
	Limit int
}

// Offset returns the number of items to skip, derived from [Page] and [Limit].
func (p Params) Offset() int {
	if p.Page <= 1 {
		return 0
	}
	return (p.Page - 1) * p.Limit
}

// Meta is the pagination metadata included in API list responses.
type Meta struct {
	Page       int         `json:"page"`
	Limit      int         `json:"limit"`
	Total      int         `json:"total"`
	TotalPages int         `json:"total_pages"`
	Pages      []RangeItem `json:"pages"`
}

// NewMeta constructs pagination metadata for a response.
//
// TotalPages is never below 1, so an empty result still reports one (empty) page.
func NewMeta(page, limit, total int) Meta {
	totalPages := TotalPages(total, limit)

	return Meta{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
		Pages:      Range(page, totalPages),
	}
}

// TotalPages returns ceil(total/limit), with a minimum of 1.
func TotalPages(total, limit int) int {
	if limit <= 0 || total <= 0 {
		return 1
	}
	return (total + limit - 1) / limit
}

// FromRequest parses "page" and "limit" query parameters from an HTTP request
// using [DefaultLimit] as the fallback page size.
func FromRequest(r *http.Request) Params {
	return FromValues(r.URL.Query(), DefaultLimit)
}

// FromValues parses "page" and "limit" from a flat key-value map.
//
// # Clamping
//
// Non-numeric input falls back to the defaults. Pages below 1 become 1 and
// limits are clamped into [1, MaxLimit]; no input ever produces an error.
func FromValues(values url.Values, defaultLimit int) Params {
	return Clamp(
		convert.ToIntD(values.Get("page"), DefaultPage),
		convert.ToIntD(values.Get("limit"), defaultLimit),
	)
}

// Normalize is [Clamp] for programmatic callers: a zero limit means "unset"
// and takes defaultLimit, any other value is clamped as usual.
func Normalize(page, limit, defaultLimit int) Params {
	if limit == 0 {
		limit = defaultLimit
	}
	return Clamp(page, limit)
}

// Clamp normalizes an arbitrary page/limit pair into a valid [Params].
func Clamp(page, limit int) Params {
	if page < 1 {
		page = DefaultPage
	}

	switch {
	case limit < 1:
		limit = 1
	case limit > MaxLimit:
		limit = MaxLimit
	}

	return Params{Page: page, Limit: limit}
}
