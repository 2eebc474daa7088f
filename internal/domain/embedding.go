package domain

// Embedding is a numeric vector representation of report content together
// with the report numbers that contributed to it.
type Embedding struct {
	Vector      []float64 `bson:"vector" json:"vector"`
	FromReports []int32   `bson:"from_reports,omitempty" json:"from_reports,omitempty"`
}

// NlpSimilarIncident pairs an incident id with a textual similarity score.
type NlpSimilarIncident struct {
	IncidentID int32   `bson:"incident_id" json:"incident_id"`
	Similarity float64 `bson:"similarity" json:"similarity"`
}
