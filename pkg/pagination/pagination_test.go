// Copyright (c) 2026 The World. All rights reserved.
// Author: aman-SINGH7999

package pagination_test

import (
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aman-SINGH7999/the-world/pkg/pagination"
)

/*
TestFromValues verifies defaulting and clamping of user-supplied page/limit input.
*/
func TestFromValues(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		wantPage  int
		wantLimit int
	}{
		{"defaults", "", 1, 20},
		{"explicit", "page=3&limit=10", 3, 10},
		{"limit_clamped_high", "limit=500", 1, 100},
		{"limit_clamped_low", "limit=-4", 1, 1},
		{"page_zero", "page=0", 1, 20},
		{"page_negative", "page=-7", 1, 20},
		{"non_numeric", "page=abc&limit=xyz", 1, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, err := url.ParseQuery(tt.query)
			assert.NoError(t, err)

			params := pagination.FromValues(values, pagination.DefaultLimit)
			assert.Equal(t, tt.wantPage, params.Page)
			assert.Equal(t, tt.wantLimit, params.Limit)
		})
	}
}

/*
TestNormalize checks that a zero limit is treated as unset while other values are clamped.
*/
func TestNormalize(t *testing.T) {
	tests := []struct {
		name                     string
		page, limit, defaultSize int
		want                     pagination.Params
	}{
		{"zero_values", 0, 0, 20, pagination.Params{Page: 1, Limit: 20}},
		{"custom_default", 0, 0, 12, pagination.Params{Page: 1, Limit: 12}},
		{"explicit_kept", 3, 7, 20, pagination.Params{Page: 3, Limit: 7}},
		{"negative_clamped", -2, -5, 20, pagination.Params{Page: 1, Limit: 1}},
		{"above_max", 1, 250, 20, pagination.Params{Page: 1, Limit: pagination.MaxLimit}},
		{"default_above_max", 1, 0, 500, pagination.Params{Page: 1, Limit: pagination.MaxLimit}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, pagination.Normalize(tt.page, tt.limit, tt.defaultSize))
		})
	}
}

/*
TestFromRequest checks that the request helper reads the query string.
*/
func TestFromRequest(t *testing.T) {
	request := httptest.NewRequest("GET", "/topics?page=2&limit=5", nil)

	params := pagination.FromRequest(request)

	assert.Equal(t, 2, params.Page)
	assert.Equal(t, 5, params.Limit)
	assert.Equal(t, 5, params.Offset())
}

/*
TestParams_Offset checks the skip computation.
*/
func TestParams_Offset(t *testing.T) {
	assert.Equal(t, 0, pagination.Params{Page: 1, Limit: 20}.Offset())
	assert.Equal(t, 40, pagination.Params{Page: 3, Limit: 20}.Offset())
	assert.Equal(t, 0, pagination.Params{Page: 0, Limit: 20}.Offset())
}

/*
TestTotalPages verifies ceil(total/limit) with a floor of one page.
*/
func TestTotalPages(t *testing.T) {
	assert.Equal(t, 1, pagination.TotalPages(0, 20))
	assert.Equal(t, 1, pagination.TotalPages(20, 20))
	assert.Equal(t, 2, pagination.TotalPages(21, 20))
	assert.Equal(t, 5, pagination.TotalPages(100, 20))
	assert.Equal(t, 1, pagination.TotalPages(7, 0))
}

/*
TestNewMeta verifies the response envelope metadata.
*/
func TestNewMeta(t *testing.T) {
	meta := pagination.NewMeta(1, 20, 0)

	assert.Equal(t, 1, meta.TotalPages)
	assert.Equal(t, 0, meta.Total)
	assert.Equal(t, []pagination.RangeItem{{Page: 1}}, meta.Pages)
}

// pages is a compact notation helper: 0 stands for an ellipsis.
func pages(items []pagination.RangeItem) []int {
	out := make([]int, 0, len(items))
	for _, item := range items {
		if item.Ellipsis {
			out = append(out, 0)
			continue
		}
		out = append(out, item.Page)
	}
	return out
}

/*
TestRange covers the compact page-range rendering.
*/
func TestRange(t *testing.T) {
	tests := []struct {
		name    string
		current int
		total   int
		want    []int
	}{
		{"single_page", 1, 1, []int{1}},
		{"two_pages", 1, 2, []int{1, 2}},
		{"no_gaps", 4, 7, []int{1, 2, 3, 4, 5, 6, 7}},
		{"start", 1, 10, []int{1, 2, 3, 0, 10}},
		{"middle", 10, 20, []int{1, 0, 8, 9, 10, 11, 12, 0, 20}},
		{"end", 20, 20, []int{1, 0, 18, 19, 20}},
		{"adjacent_to_first", 4, 20, []int{1, 2, 3, 4, 5, 6, 0, 20}},
		{"current_beyond_total", 50, 3, []int{1, 0, 3}},
		{"zero_total", 1, 0, []int{1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, pages(pagination.Range(tt.current, tt.total)))
		})
	}
}

/*
TestRange_NoConsecutiveEllipses sweeps many inputs for the single-gap-marker rule.
*/
func TestRange_NoConsecutiveEllipses(t *testing.T) {
	for total := 1; total <= 30; total++ {
		for current := 1; current <= total; current++ {
			items := pagination.Range(current, total)

			assert.Equal(t, 1, items[0].Page)
			assert.Equal(t, total, items[len(items)-1].Page)

			for i := 1; i < len(items); i++ {
				assert.False(t, items[i].Ellipsis && items[i-1].Ellipsis, "current=%d total=%d", current, total)
			}
		}
	}
}
