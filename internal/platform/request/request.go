// Copyright (c) 2026 The World. All rights reserved.
// Author: aman-SINGH7999

/*
Package requestutil provides utilities for extracting data from HTTP requests.

It abstracts away the underlying router's parameter extraction and common
body decoding patterns, ensuring consistent error handling and type safety.
*/
package requestutil

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/aman-SINGH7999/the-world/internal/platform/apperr"
	"github.com/aman-SINGH7999/the-world/internal/platform/constants"
	"github.com/aman-SINGH7999/the-world/internal/platform/ctxutil"
	"github.com/aman-SINGH7999/the-world/internal/platform/sec"
	"github.com/aman-SINGH7999/the-world/internal/platform/validate"
)

/*
DecodeJSON reads the request body and decodes it into the target structure.

Returns validate.ErrInvalidJSON if decoding fails.
*/
func DecodeJSON(writer http.ResponseWriter, request *http.Request, target any) error {
	body := http.MaxBytesReader(writer, request.Body, constants.MaxBodyBytes)
	if err := json.NewDecoder(body).Decode(target); err != nil {
		return validate.ErrInvalidJSON
	}
	return nil
}

/*
DecodeObject decodes a body that must be a single JSON object.

The result keeps the payload's loose shape; domain packages parse it into
their strict input types.
*/
func DecodeObject(writer http.ResponseWriter, request *http.Request) (map[string]any, error) {
	var payload map[string]any
	if err := DecodeJSON(writer, request, &payload); err != nil {
		return nil, err
	}
	if payload == nil {
		return nil, apperr.ValidationError("Request body must be a JSON object")
	}
	return payload, nil
}

/*
Param retrieves a named URL parameter from the request.
*/
func Param(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}

/*
RequiredClaims ensures the request is authenticated and returns the user claims.
*/
func RequiredClaims(request *http.Request) (*sec.AuthClaims, error) {
	claims := ctxutil.GetAuthUser(request.Context())
	if claims == nil || claims.UserID == "" {
		return nil, apperr.Unauthorized("Authentication required")
	}
	return claims, nil
}
