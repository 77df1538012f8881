package services

import (
	"aeroclub/flightdesk/internal/constants"
	"aeroclub/flightdesk/internal/models"
)

// DefaultingService derives the flight-purpose and tow-flag consequences of
// the selected role category. It is a pure recomputation: the same draft and
// context always produce the same result, and an already-consistent draft is
// a fixed point.
type DefaultingService struct{}

func NewDefaultingService() *DefaultingService {
	return &DefaultingService{}
}

// Recompute returns a new draft with role-driven defaults applied. The input
// draft is never mutated.
//
// Rules, in order:
//   - a role category the pilot does not hold is cleared;
//   - an instructor role forces the instruction-given purpose, the tow-pilot
//     role forces the towage purpose;
//   - a generic (or cleared) role drops a previously forced purpose, so a
//     stale towage or instruction purpose never outlives the role that
//     forced it;
//   - the tow-availability flag survives only under the tow-pilot role.
func (s *DefaultingService) Recompute(draft models.BookingDraft, vctx *models.ValidationContext) models.BookingDraft {
	d := draft.Clone()

	// Pilot change: a role the pilot no longer covers is cleared.
	if d.CategoryID != "" {
		if pilot, ok := vctx.Pilots[d.PilotID]; !ok || !pilot.HoldsCategory(d.CategoryID) {
			d.CategoryID = ""
		}
	}

	tag := vctx.RoleTagOf(d.CategoryID)
	if d.CategoryID == "" {
		tag = constants.RoleGeneric
	}

	switch {
	case tag.IsInstructor():
		if id, ok := vctx.PurposeIDByKey(constants.PurposeInstructionGiven); ok {
			d.PurposeID = id
		}
	case tag == constants.RoleTowPilot:
		if id, ok := vctx.PurposeIDByKey(constants.PurposeTowage); ok {
			d.PurposeID = id
		}
	default:
		if s.isForcedPurpose(d.PurposeID, vctx) {
			d.PurposeID = ""
		}
	}

	if tag != constants.RoleTowPilot {
		d.TowAvailable = false
	}

	return d
}

// ShowTowToggle reports whether the form should surface the tow-availability
// toggle for the draft's current role.
func (s *DefaultingService) ShowTowToggle(draft models.BookingDraft, vctx *models.ValidationContext) bool {
	return draft.CategoryID != "" && vctx.RoleTagOf(draft.CategoryID) == constants.RoleTowPilot
}

func (s *DefaultingService) isForcedPurpose(purposeID string, vctx *models.ValidationContext) bool {
	key := vctx.PurposeKeyOf(purposeID)
	return key == constants.PurposeTowage || key == constants.PurposeInstructionGiven
}
