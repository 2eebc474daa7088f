package domain

const (
	NotificationTypeSubmissionPromoted = "submission-promoted"
	NotificationTypeNewIncidents       = "new-incidents"
	NotificationTypeIncidentUpdated    = "incident-updated"
)

// Notification is a queued user-facing event. The promotion workflow only
// enqueues; a consumer drains unprocessed notifications asynchronously.
type Notification struct {
	ID         string `bson:"-" json:"id,omitempty"`
	Type       string `bson:"type" json:"type"`
	IncidentID int32  `bson:"incident_id" json:"incident_id"`
	UserID     string `bson:"userId,omitempty" json:"userId,omitempty"`
	Processed  bool   `bson:"processed" json:"processed"`
}

// Subscription registers a user's interest in a notification type,
// optionally scoped to a single incident.
type Subscription struct {
	Type       string `bson:"type" json:"type"`
	UserID     string `bson:"userId" json:"userId"`
	IncidentID int32  `bson:"incident_id,omitempty" json:"incident_id,omitempty"`
}
