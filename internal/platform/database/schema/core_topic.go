package schema

// CoreTopicTable represents the 'core.topic' table
type CoreTopicTable struct {
	Table           string
	ID              string
	Seq             string
	Title           string
	Slug            string
	Subtitle        string
	Category        string
	Era             string
	Location        string
	Timeline        string
	Summary         string
	Overview        string
	Chapters        string
	Sources         string
	KeyPoints       string
	HeroMediaURL    string
	ExtraInfo       string
	Status          string
	CreatedBy       string
	UpdatedBy       string
	PublishedAt     string
	RevisionNumber  string
	CreatedAt       string
	UpdatedAt       string
	MetaTitle       string
	MetaDescription string

	// SlugKey is the unique constraint that claims a slug.
	SlugKey string
}

// CoreTopic is the schema definition for core.topic
var CoreTopic = CoreTopicTable{
	Table:           "core.topic",
	ID:              "id",
	Seq:             "seq",
	Title:           "title",
	Slug:            "slug",
	Subtitle:        "subtitle",
	Category:        "category",
	Era:             "era",
	Location:        "location",
	Timeline:        "timeline",
	Summary:         "summary",
	Overview:        "overview",
	Chapters:        "chapters",
	Sources:         "sources",
	KeyPoints:       "keypoints",
	HeroMediaURL:    "heromediaurl",
	ExtraInfo:       "extrainfo",
	Status:          "status",
	CreatedBy:       "createdby",
	UpdatedBy:       "updatedby",
	PublishedAt:     "publishedat",
	RevisionNumber:  "revisionnumber",
	CreatedAt:       "createdat",
	UpdatedAt:       "updatedat",
	MetaTitle:       "metatitle",
	MetaDescription: "metadescription",
	SlugKey:         "topic_slug_key",
}

// Columns lists the document columns in scan order. Seq is storage-only and excluded.
func (t CoreTopicTable) Columns() []string {
	return []string{
		t.ID, t.Title, t.Slug, t.Subtitle, t.Category, t.Era, t.Location, t.Timeline,
		t.Summary, t.Overview, t.Chapters, t.Sources, t.KeyPoints, t.HeroMediaURL,
		t.ExtraInfo, t.Status, t.CreatedBy, t.UpdatedBy, t.PublishedAt, t.RevisionNumber,
		t.CreatedAt, t.UpdatedAt, t.MetaTitle, t.MetaDescription,
	}
}
