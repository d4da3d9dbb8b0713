// Copyright (c) 2026 The World. All rights reserved.
// Author: aman-SINGH7999

/*
Package convert provides fault-tolerant conversions for loosely-typed input.

Query strings and decoded JSON documents carry values whose types the caller does
not control. These helpers return a safe fallback instead of an error, which is
the behaviour list endpoints and payload normalizers want.

Do not use this package if distinguishing between malformed data and zero values
is important in your domain logic; use explicit standard libraries instead.
*/
package convert

import (
	"math"
	"strconv"
)

// ToIntD converts a string to an int, returning the provided default if parsing fails or string is empty.
func ToIntD(str string, def int) int {

	// If the string is empty, return the default value
	if str == "" {
		return def
	}

	// Try to parse the string as an integer
	if v, err := strconv.Atoi(str); err == nil {
		return v
	}

	// If parsing fails, return the default value
	return def
}

// Int reports whether v is a JSON-style number and returns it truncated to an int.
//
// encoding/json and yaml.v3 decode numbers as float64 and int respectively; both
// are accepted. NaN and infinities are rejected.
func Int(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return 0, false
		}
		return int(n), true
	}
	return 0, false
}

// String returns v when it is a string, otherwise "".
func String(v any) string {
	s, _ := v.(string)
	return s
}
