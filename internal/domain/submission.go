package domain

// DefaultEditorID is the well-known fallback editor account assigned to
// incidents whose submission names no editors.
const DefaultEditorID = "65031f49ec066d7c64380f5c"

// Submission is a provisional incident/report record pending review. It is
// created by the intake path and consumed (deleted) exactly once by the
// promotion workflow. The storage identifier is stripped at load time.
type Submission struct {
	Title         string `bson:"title" json:"title"`
	IncidentTitle string `bson:"incident_title,omitempty" json:"incident_title,omitempty"`
	Description   string `bson:"description,omitempty" json:"description,omitempty"`
	IncidentDate  string `bson:"incident_date,omitempty" json:"incident_date,omitempty"`

	IncidentIDs     []int32  `bson:"incident_ids,omitempty" json:"incident_ids,omitempty"`
	IncidentEditors []string `bson:"incident_editors,omitempty" json:"incident_editors,omitempty"`

	DateDownloaded string `bson:"date_downloaded" json:"date_downloaded"`
	DateModified   string `bson:"date_modified" json:"date_modified"`
	DatePublished  string `bson:"date_published" json:"date_published"`
	DateSubmitted  string `bson:"date_submitted" json:"date_submitted"`

	EpochDateDownloaded int32 `bson:"epoch_date_downloaded,omitempty" json:"epoch_date_downloaded,omitempty"`
	EpochDateModified   int32 `bson:"epoch_date_modified" json:"epoch_date_modified"`
	EpochDatePublished  int32 `bson:"epoch_date_published,omitempty" json:"epoch_date_published,omitempty"`
	EpochDateSubmitted  int32 `bson:"epoch_date_submitted,omitempty" json:"epoch_date_submitted,omitempty"`

	ImageURL     string   `bson:"image_url,omitempty" json:"image_url,omitempty"`
	CloudinaryID string   `bson:"cloudinary_id,omitempty" json:"cloudinary_id,omitempty"`
	Authors      []string `bson:"authors,omitempty" json:"authors,omitempty"`
	Submitters   []string `bson:"submitters,omitempty" json:"submitters,omitempty"`
	Text         string   `bson:"text,omitempty" json:"text,omitempty"`
	PlainText    string   `bson:"plain_text,omitempty" json:"plain_text,omitempty"`
	URL          string   `bson:"url,omitempty" json:"url,omitempty"`
	SourceDomain string   `bson:"source_domain,omitempty" json:"source_domain,omitempty"`
	Language     string   `bson:"language,omitempty" json:"language,omitempty"`
	Tags         []string `bson:"tags,omitempty" json:"tags,omitempty"`

	Deployers     []string `bson:"deployers,omitempty" json:"deployers,omitempty"`
	Developers    []string `bson:"developers,omitempty" json:"developers,omitempty"`
	HarmedParties []string `bson:"harmed_parties,omitempty" json:"harmed_parties,omitempty"`

	NlpSimilarIncidents       []NlpSimilarIncident `bson:"nlp_similar_incidents,omitempty" json:"nlp_similar_incidents,omitempty"`
	EditorSimilarIncidents    []int32              `bson:"editor_similar_incidents,omitempty" json:"editor_similar_incidents,omitempty"`
	EditorDissimilarIncidents []int32              `bson:"editor_dissimilar_incidents,omitempty" json:"editor_dissimilar_incidents,omitempty"`

	Embedding *Embedding `bson:"embedding,omitempty" json:"embedding,omitempty"`
	User      string     `bson:"user,omitempty" json:"user,omitempty"`
}
