// Copyright (c) 2026 The World. All rights reserved.
// Author: aman-SINGH7999

// Package ctxutil provides typed accessors for the per-request values the
// middleware chain stores in [context.Context].
package ctxutil

import (
	"context"
	"log/slog"

	"github.com/aman-SINGH7999/the-world/internal/platform/ctxkey"
	"github.com/aman-SINGH7999/the-world/internal/platform/sec"
)

// value fetches a typed value, returning the zero value when absent or mistyped.
func value[T any](ctx context.Context, k any) T {
	v, _ := ctx.Value(k).(T)
	return v
}

// # Request Tracing

// WithRequestID returns a new context with the provided request ID attached.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxkey.KeyRequestID, id)
}

// GetRequestID retrieves the request ID, or "" outside a request.
func GetRequestID(ctx context.Context) string {
	return value[string](ctx, ctxkey.KeyRequestID)
}

// # Structured Logging

// WithLogger returns a new context with the provided logger attached.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxkey.KeyLogger, logger)
}

// GetLogger retrieves the request logger, falling back to [slog.Default].
func GetLogger(ctx context.Context) *slog.Logger {
	if logger := value[*slog.Logger](ctx, ctxkey.KeyLogger); logger != nil {
		return logger
	}
	return slog.Default()
}

// # Identity

// WithAuthUser returns a new context carrying verified auth claims.
func WithAuthUser(ctx context.Context, user *sec.AuthClaims) context.Context {
	return context.WithValue(ctx, ctxkey.KeyUser, user)
}

// GetAuthUser retrieves the verified claims, or nil for anonymous requests.
func GetAuthUser(ctx context.Context) *sec.AuthClaims {
	return value[*sec.AuthClaims](ctx, ctxkey.KeyUser)
}
