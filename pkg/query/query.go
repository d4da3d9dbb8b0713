// Copyright (c) 2026 The World. All rights reserved.
// Author: aman-SINGH7999

// Package query parses multi-value filter parameters from URL query strings.
package query

import (
	"net/url"
	"strings"
)

// StringSlice parses a single comma-separated query string
// into a trimmed slice of strings.
func StringSlice(val string) []string {
	if val == "" {
		return nil
	}
	var res []string
	for _, v := range strings.Split(val, ",") {
		clean := strings.TrimSpace(v)
		if clean != "" {
			res = append(res, clean)
		}
	}
	return res
}

// Values collects every value of key, accepting both repeated keys
// (?category=a&category=b) and comma-joined lists (?category=a,b).
func Values(values url.Values, key string) []string {
	var res []string
	for _, raw := range values[key] {
		res = append(res, StringSlice(raw)...)
	}
	return res
}
