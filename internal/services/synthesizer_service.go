package services

import (
	"github.com/google/uuid"

	"aeroclub/flightdesk/internal/constants"
	"aeroclub/flightdesk/internal/models"
	"aeroclub/flightdesk/internal/models/dtos"
)

// SynthesizerService expands one availability declaration into concrete
// booking entries. A pilot holding several special roles may check each of
// them for the same slot; every checked role becomes its own entry. When no
// special role is checked, the conventional role/purpose/aircraft fields
// produce exactly one entry instead; the two modes are mutually exclusive.
type SynthesizerService struct{}

func NewSynthesizerService() *SynthesizerService {
	return &SynthesizerService{}
}

// Synthesize builds the entry set for a validated draft. actingAccountID
// becomes the owning account of every synthesized entry. The returned issue
// is the incomplete-submission rejection; it is nil on success.
func (s *SynthesizerService) Synthesize(draft models.BookingDraft, vctx *models.ValidationContext, actingAccountID string) ([]models.BookingEntry, *dtos.Issue) {
	if draft.Date == nil || draft.SlotMinutes == nil || draft.PilotID == "" {
		return nil, &dtos.Issue{
			Code:    constants.IssueIncompleteBooking,
			Message: "date, time slot and pilot are required",
		}
	}

	pilot := vctx.Pilots[draft.PilotID]

	var entries []models.BookingEntry
	for _, categoryID := range s.checkedRoles(draft, pilot, vctx) {
		tag := vctx.RoleTagOf(categoryID)

		purposeKey := constants.PurposeInstructionGiven
		if tag == constants.RoleTowPilot {
			purposeKey = constants.PurposeTowage
		}
		purposeID, ok := vctx.PurposeIDByKey(purposeKey)
		if !ok {
			return nil, &dtos.Issue{
				Code:    constants.IssueIncompleteBooking,
				Message: "flight purpose catalog is missing the " + purposeKey + " purpose",
			}
		}

		entries = append(entries, models.BookingEntry{
			ID:             uuid.NewString(),
			Date:           *draft.Date,
			SlotMinutes:    *draft.SlotMinutes,
			PilotID:        draft.PilotID,
			CategoryID:     categoryID,
			PurposeID:      purposeID,
			AircraftID:     nil,
			TowAvailable:   tag == constants.RoleTowPilot,
			ConflictExempt: tag.IsInstructor(),
			AccountID:      actingAccountID,
		})
	}

	if len(entries) > 0 {
		return entries, nil
	}

	// Conventional fallback: all three fields are mandatory.
	if draft.CategoryID == "" || draft.PurposeID == "" || draft.AircraftID == nil || *draft.AircraftID == "" {
		return nil, &dtos.Issue{
			Code:    constants.IssueIncompleteBooking,
			Message: "check at least one role, or fill in role, flight purpose and aircraft",
		}
	}

	id := uuid.NewString()
	if draft.EntryID != nil {
		id = *draft.EntryID
	}
	side := BookingSide{
		RoleTag:    vctx.RoleTagOf(draft.CategoryID),
		PurposeKey: vctx.PurposeKeyOf(draft.PurposeID),
	}
	tow := draft.TowAvailable && side.RoleTag == constants.RoleTowPilot

	return []models.BookingEntry{{
		ID:             id,
		Date:           *draft.Date,
		SlotMinutes:    *draft.SlotMinutes,
		PilotID:        draft.PilotID,
		CategoryID:     draft.CategoryID,
		PurposeID:      draft.PurposeID,
		AircraftID:     draft.AircraftID,
		TowAvailable:   tow,
		ConflictExempt: side.IsInstructionGiven(),
		AccountID:      actingAccountID,
	}}, nil
}

// checkedRoles filters the declaration's checkboxes down to special roles
// the pilot actually holds, in catalog order for deterministic output.
func (s *SynthesizerService) checkedRoles(draft models.BookingDraft, pilot *models.Pilot, vctx *models.ValidationContext) []string {
	if pilot == nil || len(draft.RoleChecks) == 0 {
		return nil
	}

	var roles []string
	for _, categoryID := range pilot.CategoryIDs {
		if !draft.RoleChecks[categoryID] {
			continue
		}
		if !vctx.RoleTagOf(categoryID).IsSpecial() {
			continue
		}
		roles = append(roles, categoryID)
	}
	return roles
}
