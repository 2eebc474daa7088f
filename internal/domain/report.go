package domain

import "time"

// Report is an immutable published record derived 1:1 from a submission.
// Epoch fields are whole seconds, persisted as int32 to match the store's
// existing schema.
type Report struct {
	ReportNumber     int32 `bson:"report_number" json:"report_number"`
	IsIncidentReport bool  `bson:"is_incident_report" json:"is_incident_report"`

	Title string `bson:"title" json:"title"`

	DateDownloaded time.Time `bson:"date_downloaded" json:"date_downloaded"`
	DateModified   time.Time `bson:"date_modified" json:"date_modified"`
	DatePublished  time.Time `bson:"date_published" json:"date_published"`
	DateSubmitted  time.Time `bson:"date_submitted" json:"date_submitted"`

	EpochDateDownloaded int32 `bson:"epoch_date_downloaded" json:"epoch_date_downloaded"`
	EpochDateModified   int32 `bson:"epoch_date_modified" json:"epoch_date_modified"`
	EpochDatePublished  int32 `bson:"epoch_date_published" json:"epoch_date_published"`
	EpochDateSubmitted  int32 `bson:"epoch_date_submitted" json:"epoch_date_submitted"`

	ImageURL     string   `bson:"image_url,omitempty" json:"image_url,omitempty"`
	CloudinaryID string   `bson:"cloudinary_id,omitempty" json:"cloudinary_id,omitempty"`
	Authors      []string `bson:"authors" json:"authors"`
	Submitters   []string `bson:"submitters" json:"submitters"`
	Text         string   `bson:"text,omitempty" json:"text,omitempty"`
	PlainText    string   `bson:"plain_text,omitempty" json:"plain_text,omitempty"`
	URL          string   `bson:"url,omitempty" json:"url,omitempty"`
	SourceDomain string   `bson:"source_domain,omitempty" json:"source_domain,omitempty"`
	Language     string   `bson:"language,omitempty" json:"language,omitempty"`
	Tags         []string `bson:"tags,omitempty" json:"tags,omitempty"`

	Embedding *Embedding `bson:"embedding,omitempty" json:"embedding,omitempty"`
	User      string     `bson:"user,omitempty" json:"user,omitempty"`
}

// ReportHistory is an append-only audit copy of a report written right
// after the report itself.
type ReportHistory struct {
	Report     `bson:",inline"`
	ModifiedBy string `bson:"modifiedBy,omitempty" json:"modifiedBy,omitempty"`
}
