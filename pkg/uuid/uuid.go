// Copyright (c) 2026 The World. All rights reserved.
// Author: aman-SINGH7999

/*
Package uuid provides time-ordered unique identifiers for the platform.

It wraps the google/uuid library to generate Version 7 values for topic and
media primary keys, and to validate identifiers arriving from clients.

Advantages:

  - Sortable: Naturally ordered by creation time (millisecond precision).
  - Friendly: Prevents index fragmentation in PostgreSQL (B-tree optimal).
  - Compact: 128-bit storage, compatible with standard 'uuid' types.
*/
package uuid

import "github.com/google/uuid"

// # Generators

// New generates a new UUIDv7 string.
func New() string {

	// Create a new version 7 UUID (time-sortable)
	id, err := uuid.NewV7()

	// entropy failure is an unrecoverable system-level error
	if err != nil {
		panic("uuidv7: failed to generate UUID: " + err.Error())
	}

	// Convert the UUID to a string
	return id.String()
}

// # Validation

// Valid reports whether s is a well-formed UUID in canonical 36-character form.
func Valid(s string) bool {
	if len(s) != 36 {
		return false
	}
	_, err := uuid.Parse(s)
	return err == nil
}

// Canonical parses s and returns its lowercase canonical form.
func Canonical(s string) (string, bool) {
	if !Valid(s) {
		return "", false
	}
	return uuid.MustParse(s).String(), true
}
