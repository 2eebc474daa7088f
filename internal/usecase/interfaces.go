package usecase

import (
	"context"

	"github.com/technohippy/aiid/internal/domain"
)

type SubmissionRepository interface {
	// FindByID returns the submission without its storage identifier, or
	// domain.ErrNotFound.
	FindByID(ctx context.Context, id string) (*domain.Submission, error)
	Delete(ctx context.Context, id string) error
}

type IncidentRepository interface {
	FindByIDs(ctx context.Context, ids []int32) ([]domain.Incident, error)
	LastIncidentID(ctx context.Context) (int32, error)
	Insert(ctx context.Context, incident domain.Incident) error
	// Update replaces the stored document's fields with the given incident
	// ($set semantics keyed by incident_id).
	Update(ctx context.Context, incident domain.Incident) error
	// AppendReports adds report numbers to the incident's reports list,
	// skipping numbers already present.
	AppendReports(ctx context.Context, incidentID int32, reportNumbers []int32) error
}

type ReportRepository interface {
	// FindByNumbers returns reports in the order the numbers are given,
	// silently skipping numbers with no matching report.
	FindByNumbers(ctx context.Context, numbers []int32) ([]domain.Report, error)
	LastReportNumber(ctx context.Context) (int32, error)
	Insert(ctx context.Context, report domain.Report) error
}

type IncidentHistoryRepository interface {
	Insert(ctx context.Context, snapshot domain.IncidentHistory) error
}

type ReportHistoryRepository interface {
	Insert(ctx context.Context, snapshot domain.ReportHistory) error
}

type NotificationRepository interface {
	Insert(ctx context.Context, notification domain.Notification) error
	FindPending(ctx context.Context) ([]domain.Notification, error)
	MarkProcessed(ctx context.Context, id string) error
}

type SubscriptionRepository interface {
	// FindByType lists subscriptions of the given type; incidentID narrows
	// the match when non-zero.
	FindByType(ctx context.Context, subscriptionType string, incidentID int32) ([]domain.Subscription, error)
}

// ReportLinker is the external linking collaborator: it owns appending
// report numbers into each incident's reports list. The promotion workflow
// never does that itself outside the history snapshots it writes.
type ReportLinker interface {
	LinkReportsToIncidents(ctx context.Context, incidentIDs []int32, reportNumbers []int32) error
}

// SequenceAllocator hands out the next report_number / incident_id.
type SequenceAllocator interface {
	NextIncidentID(ctx context.Context) (int32, error)
	NextReportNumber(ctx context.Context) (int32, error)
}

// Notifier delivers a notification to its recipients.
type Notifier interface {
	Notify(ctx context.Context, notification domain.Notification, userIDs []string) error
}
