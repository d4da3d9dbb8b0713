// Copyright (c) 2026 The World. All rights reserved.
// Author: aman-SINGH7999

/*
Package slice compliments the standard [slices] package by providing functional
programming utilities (Map, Filter) leveraging generics.
*/
package slice

// Map maps a slice of type T to a slice of type U using the provided transformation function.
func Map[T any, U any](input []T, transform func(T) U) []U {
	if input == nil {
		return nil
	}

	result := make([]U, len(input))
	for i, v := range input {
		result[i] = transform(v)
	}

	return result
}

// FilterMap transforms each element and keeps only those for which transform reports ok.
//
// The result is never nil, so normalized collections always encode as "[]".
func FilterMap[T any, U any](input []T, transform func(T) (U, bool)) []U {
	result := make([]U, 0, len(input))
	for _, v := range input {
		if mapped, ok := transform(v); ok {
			result = append(result, mapped)
		}
	}

	return result
}
