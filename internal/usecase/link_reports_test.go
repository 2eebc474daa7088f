package usecase

import (
	"context"
	"testing"

	"github.com/technohippy/aiid/internal/domain"
)

func TestLinkReportsAppendsMissingNumbers(t *testing.T) {
	incidents := &memIncidents{items: []domain.Incident{
		{IncidentID: 1, Reports: []int32{10, 11}},
		{IncidentID: 2, Reports: []int32{12}},
	}}
	uc := &LinkReportsToIncidents{Incidents: incidents}

	err := uc.Execute(context.Background(), LinkReportsRequest{
		IncidentIDs:   []int32{1, 2},
		ReportNumbers: []int32{11, 13},
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if got := incidents.appended[1]; len(got) != 1 || got[0] != 13 {
		t.Fatalf("incident 1 appended %v, want [13]", got)
	}
	if got := incidents.appended[2]; len(got) != 2 || got[0] != 11 || got[1] != 13 {
		t.Fatalf("incident 2 appended %v, want [11 13]", got)
	}
}

func TestLinkReportsIsIdempotent(t *testing.T) {
	incidents := &memIncidents{items: []domain.Incident{
		{IncidentID: 1, Reports: []int32{10}},
	}}
	uc := &LinkReportsToIncidents{Incidents: incidents}

	for i := 0; i < 2; i++ {
		if err := uc.LinkReportsToIncidents(context.Background(), []int32{1}, []int32{11}); err != nil {
			t.Fatalf("link %d: %v", i, err)
		}
	}

	if got := incidents.items[0].Reports; len(got) != 2 {
		t.Fatalf("reports = %v, want [10 11]", got)
	}
}

func TestLinkReportsSkipsUnknownIncidents(t *testing.T) {
	incidents := &memIncidents{}
	uc := &LinkReportsToIncidents{Incidents: incidents}

	if err := uc.Execute(context.Background(), LinkReportsRequest{
		IncidentIDs:   []int32{99},
		ReportNumbers: []int32{1},
	}); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if len(incidents.appended) != 0 {
		t.Fatalf("appended %v, want nothing", incidents.appended)
	}
}
