// Copyright (c) 2026 The World. All rights reserved.
// Author: aman-SINGH7999

/*
Package media is the registry of externally hosted media referenced by topics.

Bytes live with the external host (Cloudinary, YouTube, ...). This package
only records where an asset lives and how to describe it, so editors can pick
it from a library instead of pasting URLs.
*/
package media

import (
	"net/url"
	"strings"
	"time"

	"github.com/aman-SINGH7999/the-world/pkg/pagination"
)

// DefaultLimit is the media library page size.
const DefaultLimit = 12

// Type is the kind of asset.
type Type string

const (
	TypeImage Type = "image"
	TypeVideo Type = "video"
	TypeAudio Type = "audio"
	TypeEmbed Type = "embed"
)

// Types lists every recognised [Type].
var Types = []Type{TypeImage, TypeVideo, TypeAudio, TypeEmbed}

// Provider is the external host of an asset.
type Provider string

const (
	ProviderCloudinary Provider = "cloudinary"
	ProviderYouTube    Provider = "youtube"
	ProviderVimeo      Provider = "vimeo"
	ProviderOther      Provider = "other"
)

// Providers lists every recognised [Provider].
var Providers = []Provider{ProviderCloudinary, ProviderYouTube, ProviderVimeo, ProviderOther}

// Processing is the host-side processing state of an asset.
type Processing string

const (
	ProcessingPending   Processing = "pending"
	ProcessingCompleted Processing = "completed"
	ProcessingFailed    Processing = "failed"
)

// Processings lists every recognised [Processing] state.
var Processings = []Processing{ProcessingPending, ProcessingCompleted, ProcessingFailed}

// Media is one library entry.
type Media struct {
	ID              string     `json:"id"`
	Type            Type       `json:"type"`
	URL             string     `json:"url"`
	Provider        Provider   `json:"provider"`
	ThumbnailURL    string     `json:"thumbnailUrl"`
	Caption         string     `json:"caption"`
	AltText         string     `json:"altText"`
	UploadedBy      string     `json:"uploadedBy"`
	UploadedAt      time.Time  `json:"uploadedAt"`
	Processing      Processing `json:"processingStatus"`
	ProcessingError string     `json:"processingError,omitempty"`
}

// RegisterInput is the payload of a registration.
type RegisterInput struct {
	Type            string `json:"type"`
	URL             string `json:"url"`
	Provider        string `json:"provider"`
	ThumbnailURL    string `json:"thumbnailUrl"`
	Caption         string `json:"caption"`
	AltText         string `json:"altText"`
	Processing      string `json:"processingStatus"`
	ProcessingError string `json:"processingError"`
}

// Filter holds the library list criteria. Empty fields do not filter.
type Filter struct {
	Type     Type
	Provider Provider
	// Search matches case-insensitively inside caption and alt text.
	Search string

	pagination.Params
}

// ParseFilter reads type, provider, search, page and limit from a query string.
func ParseFilter(values url.Values) Filter {
	return Filter{
		Type:     Type(strings.TrimSpace(values.Get("type"))),
		Provider: Provider(strings.TrimSpace(values.Get("provider"))),
		Search:   strings.TrimSpace(values.Get("search")),
		Params:   pagination.FromValues(values, DefaultLimit),
	}
}

// ListResult is one page of the library.
type ListResult struct {
	Items []*Media
	Total int
	Page  int
	Limit int
}

// Meta converts the result into response pagination metadata.
func (r *ListResult) Meta() pagination.Meta {
	return pagination.NewMeta(r.Page, r.Limit, r.Total)
}
