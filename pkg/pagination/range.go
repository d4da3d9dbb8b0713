// Copyright (c) 2026 The World. All rights reserved.
// Author: aman-SINGH7999

package pagination

// RangeItem is one entry of a compact page range: either a page number or a gap marker.
type RangeItem struct {
	Page     int  `json:"page,omitempty"`
	Ellipsis bool `json:"ellipsis,omitempty"`
}

// Range renders the compact page list for a pager.
//
// It always includes the first and last page plus a window of [RangeDelta]
// pages around current. Every gap collapses into a single ellipsis item, so two
// ellipses are never adjacent.
//
// Example (current=10, total=20):
//
//	1 … 8 9 10 11 12 … 20
func Range(current, total int) []RangeItem {
	if total < 1 {
		total = 1
	}

	// Window bounds, kept inside [2, total-1]; the ends are added separately.
	low := max(current-RangeDelta, 2)
	high := min(current+RangeDelta, total-1)

	items := make([]RangeItem, 0, 2*RangeDelta+5)
	last := 0

	push := func(page int) {
		if last+1 != page {
			items = append(items, RangeItem{Ellipsis: true})
		}
		items = append(items, RangeItem{Page: page})
		last = page
	}

	push(1)
	for page := low; page <= high; page++ {
		push(page)
	}
	if total > 1 {
		push(total)
	}

	return items
}
