package schema

// CoreMediaTable represents the 'core.media' table
type CoreMediaTable struct {
	Table           string
	ID              string
	Seq             string
	Type            string
	URL             string
	Provider        string
	ThumbnailURL    string
	Caption         string
	AltText         string
	UploadedBy      string
	UploadedAt      string
	ProcessingState string
	ProcessingError string
}

// CoreMedia is the schema definition for core.media
var CoreMedia = CoreMediaTable{
	Table:           "core.media",
	ID:              "id",
	Seq:             "seq",
	Type:            "type",
	URL:             "url",
	Provider:        "provider",
	ThumbnailURL:    "thumbnailurl",
	Caption:         "caption",
	AltText:         "alttext",
	UploadedBy:      "uploadedby",
	UploadedAt:      "uploadedat",
	ProcessingState: "processingstatus",
	ProcessingError: "processingerror",
}

func (t CoreMediaTable) Columns() []string {
	return []string{
		t.ID, t.Type, t.URL, t.Provider, t.ThumbnailURL, t.Caption, t.AltText,
		t.UploadedBy, t.UploadedAt, t.ProcessingState, t.ProcessingError,
	}
}
