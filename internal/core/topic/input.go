// Copyright (c) 2026 The World. All rights reserved.
// Author: aman-SINGH7999

package topic

import (
	"fmt"
	"strings"

	"github.com/aman-SINGH7999/the-world/internal/platform/apperr"
	"github.com/aman-SINGH7999/the-world/pkg/query"
	"github.com/aman-SINGH7999/the-world/pkg/slice"
)

// Input is a parsed write payload. A nil field was absent from the payload;
// a non-nil field was present, even when it points at a zero value.
//
// Chapters and Sources are already normalized. ExtraInfo is nil when absent.
type Input struct {
	Title           *string
	Slug            *string
	Subtitle        *string
	Summary         *string
	Overview        *string
	Timeline        *string
	Era             *string
	Location        *string
	MetaTitle       *string
	MetaDescription *string
	HeroMediaURL    *string
	HeroMediaID     *string
	Status          *string

	Category  *[]string
	KeyPoints *[]string
	Chapters  *[]Chapter
	Sources   *[]Source
	ExtraInfo ExtraInfo
}

// ParseInput turns a decoded JSON (or YAML) object into an [Input].
//
// Scalar text fields must be strings; null clears them. Structured fields
// are coerced, never rejected: a non-array chapters value becomes an empty
// chapter list, matching the normalizers.
func ParseInput(payload map[string]any) (Input, error) {
	var (
		in    Input
		fails []apperr.FieldError
	)

	text := func(field string, target **string) {
		raw, present := payload[field]
		if !present {
			return
		}
		switch value := raw.(type) {
		case nil:
			*target = new(string)
		case string:
			*target = &value
		default:
			fails = append(fails, apperr.FieldError{Field: field, Message: fmt.Sprintf("%s must be a string", field)})
		}
	}

	text(FieldTitle, &in.Title)
	text(FieldSlug, &in.Slug)
	text(FieldSubtitle, &in.Subtitle)
	text(FieldSummary, &in.Summary)
	text(FieldOverview, &in.Overview)
	text(FieldTimeline, &in.Timeline)
	text(FieldEra, &in.Era)
	text(FieldLocation, &in.Location)
	text(FieldMetaTitle, &in.MetaTitle)
	text(FieldMetaDescription, &in.MetaDescription)
	text(FieldHeroMediaURL, &in.HeroMediaURL)
	text(FieldHeroMediaID, &in.HeroMediaID)
	text(FieldStatus, &in.Status)

	if raw, present := payload[FieldCategory]; present {
		in.Category = stringList(raw)
	}
	if raw, present := payload[FieldKeyPoints]; present {
		in.KeyPoints = stringList(raw)
	}

	if raw, present := payload[FieldChapters]; present {
		entries, _ := raw.([]any)
		chapters := NormalizeChapters(entries)
		in.Chapters = &chapters
	}
	if raw, present := payload[FieldSources]; present {
		entries, _ := raw.([]any)
		sources := NormalizeSources(entries)
		in.Sources = &sources
	}

	if raw, present := payload[FieldExtraInfo]; present {
		switch value := raw.(type) {
		case nil:
			in.ExtraInfo = ExtraInfo{}
		case map[string]any:
			in.ExtraInfo = ExtraInfo(value)
		default:
			fails = append(fails, apperr.FieldError{Field: FieldExtraInfo, Message: "extraInfo must be an object"})
		}
	}

	if len(fails) > 0 {
		messages := slice.Map(fails, func(fe apperr.FieldError) string { return fe.Message })
		return Input{}, apperr.ValidationError(strings.Join(messages, "; "), fails...)
	}

	return in, nil
}

// stringList accepts a list of strings (non-strings dropped) or a comma-joined string.
func stringList(raw any) *[]string {
	var list []string

	switch value := raw.(type) {
	case string:
		list = query.StringSlice(value)
	case []any:
		list = slice.FilterMap(value, func(entry any) (string, bool) {
			s, ok := entry.(string)
			return s, ok && s != ""
		})
	}

	if list == nil {
		list = []string{}
	}
	return &list
}
