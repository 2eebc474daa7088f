package usecase

import "context"

type LinkReportsRequest struct {
	IncidentIDs   []int32
	ReportNumbers []int32
}

// LinkReportsToIncidents appends report numbers into each incident's
// reports list. The append is idempotent: numbers already present are left
// alone, so re-running a link after a partial promotion is safe.
type LinkReportsToIncidents struct {
	Incidents IncidentRepository
}

func (uc *LinkReportsToIncidents) Execute(ctx context.Context, req LinkReportsRequest) error {
	incidents, err := uc.Incidents.FindByIDs(ctx, req.IncidentIDs)
	if err != nil {
		return err
	}
	for _, incident := range incidents {
		existing := make(map[int32]bool, len(incident.Reports))
		for _, number := range incident.Reports {
			existing[number] = true
		}
		missing := make([]int32, 0, len(req.ReportNumbers))
		for _, number := range req.ReportNumbers {
			if !existing[number] {
				missing = append(missing, number)
			}
		}
		if len(missing) == 0 {
			continue
		}
		if err := uc.Incidents.AppendReports(ctx, incident.IncidentID, missing); err != nil {
			return err
		}
	}
	return nil
}

// LinkReportsToIncidents lets the usecase satisfy the ReportLinker
// interface the promotion workflow depends on.
func (uc *LinkReportsToIncidents) LinkReportsToIncidents(ctx context.Context, incidentIDs []int32, reportNumbers []int32) error {
	return uc.Execute(ctx, LinkReportsRequest{IncidentIDs: incidentIDs, ReportNumbers: reportNumbers})
}
