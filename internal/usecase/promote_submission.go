package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/technohippy/aiid/internal/domain"
)

type PromoteSubmissionRequest struct {
	SubmissionID     string
	IsIncidentReport bool
	IncidentIDs      []int32
}

type PromoteSubmissionResponse struct {
	IncidentIDs  []int32
	ReportNumber int32
}

// PromoteSubmission converts a pending submission into a published report
// and a new or updated incident. It is a run-to-completion procedure: no
// step retries and no write is compensated, so a failure after the first
// write leaves whatever subset already committed.
type PromoteSubmission struct {
	Submissions      SubmissionRepository
	Incidents        IncidentRepository
	Reports          ReportRepository
	IncidentsHistory IncidentHistoryRepository
	ReportsHistory   ReportHistoryRepository
	Notifications    NotificationRepository
	Sequences        SequenceAllocator
	Linker           ReportLinker

	// DefaultEditorID overrides domain.DefaultEditorID when set.
	DefaultEditorID string
}

func (uc *PromoteSubmission) Execute(ctx context.Context, req PromoteSubmissionRequest) (*PromoteSubmissionResponse, error) {
	submission, err := uc.Submissions.FindByID(ctx, req.SubmissionID)
	if err != nil {
		return nil, err
	}

	parents, err := uc.Incidents.FindByIDs(ctx, req.IncidentIDs)
	if err != nil {
		return nil, err
	}

	reportNumber, err := uc.Sequences.NextReportNumber(ctx)
	if err != nil {
		return nil, err
	}

	if req.IsIncidentReport {
		if len(parents) == 0 {
			incident, err := uc.mintIncident(ctx, submission, reportNumber)
			if err != nil {
				return nil, err
			}
			parents = append(parents, *incident)
		} else if submission.Embedding != nil {
			if err := uc.mergeEmbeddings(ctx, submission, parents, reportNumber); err != nil {
				return nil, err
			}
		}
	}

	report, err := buildReport(submission, reportNumber, req.IsIncidentReport)
	if err != nil {
		return nil, err
	}
	if err := uc.Reports.Insert(ctx, *report); err != nil {
		return nil, err
	}

	incidentIDs := make([]int32, 0, len(parents))
	for _, parent := range parents {
		incidentIDs = append(incidentIDs, parent.IncidentID)
	}

	if err := uc.Linker.LinkReportsToIncidents(ctx, incidentIDs, []int32{reportNumber}); err != nil {
		return nil, err
	}

	reportSnapshot := domain.ReportHistory{Report: *report}
	if submission.User != "" {
		reportSnapshot.ModifiedBy = submission.User
	}
	if err := uc.ReportsHistory.Insert(ctx, reportSnapshot); err != nil {
		return nil, err
	}

	if err := uc.Submissions.Delete(ctx, req.SubmissionID); err != nil {
		return nil, err
	}

	return &PromoteSubmissionResponse{
		IncidentIDs:  incidentIDs,
		ReportNumber: reportNumber,
	}, nil
}

// mintIncident creates a brand-new incident for a submission with no
// resolved parents. The incident is inserted with an empty reports list;
// the linking collaborator fills it in afterwards, while the history
// snapshot already carries the new report number.
func (uc *PromoteSubmission) mintIncident(ctx context.Context, submission *domain.Submission, reportNumber int32) (*domain.Incident, error) {
	incidentID, err := uc.Sequences.NextIncidentID(ctx)
	if err != nil {
		return nil, err
	}

	editors := submission.IncidentEditors
	if len(editors) == 0 {
		editors = []string{uc.defaultEditorID()}
	}

	title := submission.IncidentTitle
	if title == "" {
		title = submission.Title
	}

	incident := domain.Incident{
		IncidentID:                incidentID,
		Title:                     title,
		Description:               submission.Description,
		Date:                      submission.IncidentDate,
		Reports:                   []int32{},
		Editors:                   editors,
		EpochDateModified:         submission.EpochDateModified,
		AllegedDeployers:          orEmpty(submission.Deployers),
		AllegedDevelopers:         orEmpty(submission.Developers),
		AllegedHarmedParties:      orEmpty(submission.HarmedParties),
		NlpSimilarIncidents:       submission.NlpSimilarIncidents,
		EditorSimilarIncidents:    orEmptyInt32(submission.EditorSimilarIncidents),
		EditorDissimilarIncidents: orEmptyInt32(submission.EditorDissimilarIncidents),
	}
	if incident.NlpSimilarIncidents == nil {
		incident.NlpSimilarIncidents = []domain.NlpSimilarIncident{}
	}
	if submission.Embedding != nil {
		incident.Embedding = &domain.Embedding{
			Vector:      submission.Embedding.Vector,
			FromReports: []int32{reportNumber},
		}
	}

	if err := uc.Incidents.Insert(ctx, incident); err != nil {
		return nil, err
	}

	if submission.User != "" {
		notification := domain.Notification{
			Type:       domain.NotificationTypeSubmissionPromoted,
			IncidentID: incidentID,
			UserID:     submission.User,
			Processed:  false,
		}
		if err := uc.Notifications.Insert(ctx, notification); err != nil {
			return nil, err
		}
	}

	snapshot := domain.IncidentHistory{Incident: incident}
	snapshot.Reports = []int32{reportNumber}
	if submission.User != "" {
		snapshot.ModifiedBy = submission.User
	}
	if err := uc.IncidentsHistory.Insert(ctx, snapshot); err != nil {
		return nil, err
	}

	return &incident, nil
}

// mergeEmbeddings recomputes each parent incident's embedding as the
// element-wise mean of every linked report's embedding plus the
// submission's, and snapshots the pre-update incident with the new report
// number appended.
func (uc *PromoteSubmission) mergeEmbeddings(ctx context.Context, submission *domain.Submission, parents []domain.Incident, reportNumber int32) error {
	for _, parent := range parents {
		linked, err := uc.Reports.FindByNumbers(ctx, parent.Reports)
		if err != nil {
			return err
		}

		vectors := make([][]float64, 0, len(linked)+1)
		fromReports := make([]int32, 0, len(linked)+1)
		for _, report := range linked {
			fromReports = append(fromReports, report.ReportNumber)
			if report.Embedding != nil {
				vectors = append(vectors, report.Embedding.Vector)
			}
		}
		vectors = append(vectors, submission.Embedding.Vector)

		mean, err := meanVector(vectors)
		if err != nil {
			return err
		}
		embedding := &domain.Embedding{
			Vector:      mean,
			FromReports: append(fromReports, reportNumber),
		}

		updated := parent
		updated.Embedding = embedding
		if err := uc.Incidents.Update(ctx, updated); err != nil {
			return err
		}

		snapshot := domain.IncidentHistory{Incident: parent}
		snapshot.Reports = append(append([]int32{}, parent.Reports...), reportNumber)
		snapshot.Embedding = embedding
		if submission.User != "" {
			snapshot.ModifiedBy = submission.User
		}
		if err := uc.IncidentsHistory.Insert(ctx, snapshot); err != nil {
			return err
		}
	}
	return nil
}

func (uc *PromoteSubmission) defaultEditorID() string {
	if uc.DefaultEditorID != "" {
		return uc.DefaultEditorID
	}
	return domain.DefaultEditorID
}

func buildReport(submission *domain.Submission, reportNumber int32, isIncidentReport bool) (*domain.Report, error) {
	dateDownloaded, err := parseDate(submission.DateDownloaded)
	if err != nil {
		return nil, fmt.Errorf("date_downloaded: %w", err)
	}
	dateModified, err := parseDate(submission.DateModified)
	if err != nil {
		return nil, fmt.Errorf("date_modified: %w", err)
	}
	datePublished, err := parseDate(submission.DatePublished)
	if err != nil {
		return nil, fmt.Errorf("date_published: %w", err)
	}
	dateSubmitted, err := parseDate(submission.DateSubmitted)
	if err != nil {
		return nil, fmt.Errorf("date_submitted: %w", err)
	}

	report := domain.Report{
		ReportNumber:     reportNumber,
		IsIncidentReport: isIncidentReport,
		Title:            submission.Title,
		DateDownloaded:   dateDownloaded,
		DateModified:     dateModified,
		DatePublished:    datePublished,
		DateSubmitted:    dateSubmitted,

		EpochDateDownloaded: epochSeconds(dateDownloaded),
		// epoch_date_modified is copied verbatim: the submission already
		// carries the authoritative modification timestamp.
		EpochDateModified:  submission.EpochDateModified,
		EpochDatePublished: epochSeconds(datePublished),
		EpochDateSubmitted: epochSeconds(dateSubmitted),

		ImageURL:     submission.ImageURL,
		CloudinaryID: submission.CloudinaryID,
		Authors:      submission.Authors,
		Submitters:   submission.Submitters,
		Text:         submission.Text,
		PlainText:    submission.PlainText,
		URL:          submission.URL,
		SourceDomain: submission.SourceDomain,
		Language:     submission.Language,
		Tags:         submission.Tags,
	}
	if submission.Embedding != nil {
		report.Embedding = submission.Embedding
	}
	if submission.User != "" {
		report.User = submission.User
	}
	return &report, nil
}

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05.000Z",
}

func parseDate(value string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, value, time.UTC); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable date %q", value)
}

// epochSeconds truncates to whole seconds.
func epochSeconds(t time.Time) int32 {
	return int32(t.Unix())
}

// meanVector averages equal-length vectors component-wise; a length
// mismatch aborts rather than corrupting the mean.
func meanVector(vectors [][]float64) ([]float64, error) {
	if len(vectors) == 0 {
		return nil, nil
	}
	dim := len(vectors[0])
	sum := make([]float64, dim)
	for _, vector := range vectors {
		if len(vector) != dim {
			return nil, domain.ErrEmbeddingMismatch
		}
		for i, component := range vector {
			sum[i] += component
		}
	}
	for i := range sum {
		sum[i] /= float64(len(vectors))
	}
	return sum, nil
}

func orEmpty(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}

func orEmptyInt32(values []int32) []int32 {
	if values == nil {
		return []int32{}
	}
	return values
}
