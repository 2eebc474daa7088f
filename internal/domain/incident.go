package domain

// Incident is a published aggregate of one or more reports about the same
// event. The alleged-party field names carry the spaces the store schema
// uses; they must not be renamed.
type Incident struct {
	IncidentID  int32  `bson:"incident_id" json:"incident_id"`
	Title       string `bson:"title" json:"title"`
	Description string `bson:"description,omitempty" json:"description,omitempty"`
	Date        string `bson:"date" json:"date"`

	Reports []int32  `bson:"reports" json:"reports"`
	Editors []string `bson:"editors" json:"editors"`

	EpochDateModified int32 `bson:"epoch_date_modified,omitempty" json:"epoch_date_modified,omitempty"`

	AllegedDeployers     []string `bson:"Alleged deployer of AI system" json:"Alleged deployer of AI system"`
	AllegedDevelopers    []string `bson:"Alleged developer of AI system" json:"Alleged developer of AI system"`
	AllegedHarmedParties []string `bson:"Alleged harmed or nearly harmed parties" json:"Alleged harmed or nearly harmed parties"`

	NlpSimilarIncidents       []NlpSimilarIncident `bson:"nlp_similar_incidents" json:"nlp_similar_incidents"`
	EditorSimilarIncidents    []int32              `bson:"editor_similar_incidents" json:"editor_similar_incidents"`
	EditorDissimilarIncidents []int32              `bson:"editor_dissimilar_incidents" json:"editor_dissimilar_incidents"`

	Embedding *Embedding `bson:"embedding,omitempty" json:"embedding,omitempty"`
}

// IncidentHistory is an append-only audit copy of an incident as it stood
// immediately after a write. The incident's storage identifier is never
// copied into the snapshot.
type IncidentHistory struct {
	Incident   `bson:",inline"`
	ModifiedBy string `bson:"modifiedBy,omitempty" json:"modifiedBy,omitempty"`
}
