package usecase

import "context"

// MaxScanAllocator assigns identifiers as max(existing) + 1, starting at 1
// on empty collections. Two concurrent allocations can observe the same
// max; the store keeps no counter discipline, so callers that need
// stronger guarantees must swap in a different SequenceAllocator.
type MaxScanAllocator struct {
	Incidents IncidentRepository
	Reports   ReportRepository
}

func (a *MaxScanAllocator) NextIncidentID(ctx context.Context) (int32, error) {
	last, err := a.Incidents.LastIncidentID(ctx)
	if err != nil {
		return 0, err
	}
	return last + 1, nil
}

func (a *MaxScanAllocator) NextReportNumber(ctx context.Context) (int32, error) {
	last, err := a.Reports.LastReportNumber(ctx)
	if err != nil {
		return 0, err
	}
	return last + 1, nil
}
