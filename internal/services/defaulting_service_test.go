package services

import (
	"reflect"
	"testing"

	"aeroclub/flightdesk/internal/models"
)

func TestDefaultingService_InstructorForcesInstructionGiven(t *testing.T) {
	svc := NewDefaultingService()
	vctx := testContext()

	draft := models.BookingDraft{
		PilotID:    "pilot-p",
		CategoryID: "cat-engine-inst",
		PurposeID:  "purp-local",
	}

	got := svc.Recompute(draft, vctx)
	if got.PurposeID != "purp-inst" {
		t.Errorf("Expected forced instruction purpose, got %s", got.PurposeID)
	}
}

func TestDefaultingService_TowPilotForcesTowage(t *testing.T) {
	svc := NewDefaultingService()
	vctx := testContext()

	draft := models.BookingDraft{
		PilotID:      "pilot-p",
		CategoryID:   "cat-tow",
		TowAvailable: true,
	}

	got := svc.Recompute(draft, vctx)
	if got.PurposeID != "purp-tow" {
		t.Errorf("Expected forced towage purpose, got %s", got.PurposeID)
	}
	if !got.TowAvailable {
		t.Error("Expected tow flag to survive under the tow pilot role")
	}
	if !svc.ShowTowToggle(got, vctx) {
		t.Error("Expected tow toggle surfaced for tow pilot")
	}
}

func TestDefaultingService_GenericRoleClearsForcedPurpose(t *testing.T) {
	svc := NewDefaultingService()
	vctx := testContext()

	draft := models.BookingDraft{
		PilotID:    "pilot-p",
		CategoryID: "cat-basic",
		PurposeID:  "purp-tow", // left over from a previous tow pilot selection
	}

	got := svc.Recompute(draft, vctx)
	if got.PurposeID != "" {
		t.Errorf("Expected forced purpose cleared, got %s", got.PurposeID)
	}
}

func TestDefaultingService_GenericRoleKeepsFreelyChosenPurpose(t *testing.T) {
	svc := NewDefaultingService()
	vctx := testContext()

	draft := models.BookingDraft{
		PilotID:    "pilot-p",
		CategoryID: "cat-basic",
		PurposeID:  "purp-local",
	}

	got := svc.Recompute(draft, vctx)
	if got.PurposeID != "purp-local" {
		t.Errorf("Expected local purpose untouched, got %s", got.PurposeID)
	}
}

func TestDefaultingService_RoleChangeAwayFromSpecialClears(t *testing.T) {
	// The stored role was Tow Pilot and the edit changes it to a generic
	// category: the forced purpose must not be preserved.
	svc := NewDefaultingService()
	vctx := testContext()

	draft := models.BookingDraft{
		EntryID:    strPtr("entry-1"),
		PilotID:    "pilot-p",
		CategoryID: "cat-basic",
		PurposeID:  "purp-tow",
	}

	got := svc.Recompute(draft, vctx)
	if got.PurposeID != "" {
		t.Errorf("Expected forced purpose cleared on role change, got %s", got.PurposeID)
	}
}

func TestDefaultingService_UntouchedSpecialRoleEditKeepsPurpose(t *testing.T) {
	// Editing an entry without touching the tow pilot role must not disturb
	// its forced purpose.
	svc := NewDefaultingService()
	vctx := testContext()

	draft := models.BookingDraft{
		EntryID:      strPtr("entry-1"),
		PilotID:      "pilot-p",
		CategoryID:   "cat-tow",
		PurposeID:    "purp-tow",
		TowAvailable: true,
	}

	got := svc.Recompute(draft, vctx)
	if got.PurposeID != "purp-tow" {
		t.Errorf("Expected towage purpose kept on an untouched edit, got %s", got.PurposeID)
	}
	if !got.TowAvailable {
		t.Error("Expected tow flag kept on an untouched edit")
	}
}

func TestDefaultingService_PilotChangeClearsUnheldCategory(t *testing.T) {
	svc := NewDefaultingService()
	vctx := testContext()

	// pilot-r holds only the generic category
	draft := models.BookingDraft{
		PilotID:    "pilot-r",
		CategoryID: "cat-tow",
		PurposeID:  "purp-tow",
	}

	got := svc.Recompute(draft, vctx)
	if got.CategoryID != "" {
		t.Errorf("Expected category cleared for pilot who does not hold it, got %s", got.CategoryID)
	}
	if got.PurposeID != "" {
		t.Errorf("Expected forced purpose cleared with the category, got %s", got.PurposeID)
	}
}

func TestDefaultingService_TowFlagResetAwayFromTowPilot(t *testing.T) {
	svc := NewDefaultingService()
	vctx := testContext()

	draft := models.BookingDraft{
		PilotID:      "pilot-p",
		CategoryID:   "cat-engine-inst",
		TowAvailable: true,
	}

	got := svc.Recompute(draft, vctx)
	if got.TowAvailable {
		t.Error("Expected tow flag forced false away from the tow pilot role")
	}
}

func TestDefaultingService_RecomputeIsFixedPoint(t *testing.T) {
	svc := NewDefaultingService()
	vctx := testContext()

	drafts := []models.BookingDraft{
		{PilotID: "pilot-p", CategoryID: "cat-tow", TowAvailable: true},
		{PilotID: "pilot-p", CategoryID: "cat-engine-inst", PurposeID: "purp-local"},
		{PilotID: "pilot-r", CategoryID: "cat-tow", PurposeID: "purp-tow"},
		{PilotID: "pilot-p", CategoryID: "cat-basic", PurposeID: "purp-local"},
	}

	for _, draft := range drafts {
		once := svc.Recompute(draft, vctx)
		twice := svc.Recompute(once, vctx)
		if !reflect.DeepEqual(once, twice) {
			t.Errorf("Recompute not idempotent: %+v != %+v", once, twice)
		}
	}
}

func TestDefaultingService_DoesNotMutateInput(t *testing.T) {
	svc := NewDefaultingService()
	vctx := testContext()

	draft := models.BookingDraft{
		PilotID:    "pilot-p",
		CategoryID: "cat-tow",
		PurposeID:  "purp-local",
	}
	before := draft

	svc.Recompute(draft, vctx)
	if !reflect.DeepEqual(draft, before) {
		t.Error("Recompute mutated its input draft")
	}
}
