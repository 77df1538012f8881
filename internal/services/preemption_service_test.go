package services

import (
	"strings"
	"testing"

	"aeroclub/flightdesk/internal/constants"
	"aeroclub/flightdesk/internal/models"
)

func TestPreemptionService_SportHoldEmitsAdvisory(t *testing.T) {
	svc := NewPreemptionService()
	vctx := testContext()
	day := date(2024, 6, 1)

	// Sport flight holds G1 from 10:00; the new local booking is at 14:00
	vctx.Entries = []models.BookingEntry{
		entry("entry-q", "pilot-q", "cat-basic", "purp-sport", strPtr("ac-g1"), day, slot("10:00")),
	}

	draft := models.BookingDraft{
		Date:        timePtr(day),
		SlotMinutes: intPtr(slot("14:00")),
		PilotID:     "pilot-p",
		CategoryID:  "cat-basic",
		PurposeID:   "purp-local",
		AircraftID:  strPtr("ac-g1"),
	}

	issue := svc.Check(draft, vctx)
	if issue == nil {
		t.Fatal("Expected preemption advisory")
	}
	if issue.Code != constants.IssuePreemption {
		t.Errorf("Expected %s, got %s", constants.IssuePreemption, issue.Code)
	}
	for _, frag := range []string{"Quinn Adler", "10:00"} {
		if !strings.Contains(issue.Message, frag) {
			t.Errorf("Expected message to mention %q, got %q", frag, issue.Message)
		}
	}
}

func TestPreemptionService_SportProposalNotAdvised(t *testing.T) {
	svc := NewPreemptionService()
	vctx := testContext()
	day := date(2024, 6, 1)

	vctx.Entries = []models.BookingEntry{
		entry("entry-q", "pilot-q", "cat-basic", "purp-sport", strPtr("ac-g1"), day, slot("10:00")),
	}

	draft := models.BookingDraft{
		Date:        timePtr(day),
		SlotMinutes: intPtr(slot("14:00")),
		PilotID:     "pilot-p",
		CategoryID:  "cat-basic",
		PurposeID:   "purp-sport",
		AircraftID:  strPtr("ac-g1"),
	}

	if issue := svc.Check(draft, vctx); issue != nil {
		t.Errorf("Expected no advisory for a sport proposal, got %s", issue.Code)
	}
}

func TestPreemptionService_OtherAircraftUnaffected(t *testing.T) {
	svc := NewPreemptionService()
	vctx := testContext()
	day := date(2024, 6, 1)

	vctx.Entries = []models.BookingEntry{
		entry("entry-q", "pilot-q", "cat-basic", "purp-sport", strPtr("ac-g1"), day, slot("10:00")),
	}

	draft := models.BookingDraft{
		Date:        timePtr(day),
		SlotMinutes: intPtr(slot("14:00")),
		PilotID:     "pilot-p",
		CategoryID:  "cat-basic",
		PurposeID:   "purp-local",
		AircraftID:  strPtr("ac-t1"),
	}

	if issue := svc.Check(draft, vctx); issue != nil {
		t.Errorf("Expected no advisory on a different aircraft, got %s", issue.Code)
	}
}

func TestPreemptionService_EditedSportEntryExcluded(t *testing.T) {
	svc := NewPreemptionService()
	vctx := testContext()
	day := date(2024, 6, 1)

	vctx.Entries = []models.BookingEntry{
		entry("entry-1", "pilot-p", "cat-basic", "purp-sport", strPtr("ac-g1"), day, slot("10:00")),
	}

	// Editing the sport entry itself into a local flight must not trip over
	// its own stored row.
	draft := models.BookingDraft{
		EntryID:     strPtr("entry-1"),
		Date:        timePtr(day),
		SlotMinutes: intPtr(slot("10:00")),
		PilotID:     "pilot-p",
		CategoryID:  "cat-basic",
		PurposeID:   "purp-local",
		AircraftID:  strPtr("ac-g1"),
	}

	if issue := svc.Check(draft, vctx); issue != nil {
		t.Errorf("Expected the edited entry to be excluded, got %s", issue.Code)
	}
}
