package services

import (
	"fmt"

	"aeroclub/flightdesk/internal/common"
	"aeroclub/flightdesk/internal/constants"
	"aeroclub/flightdesk/internal/models"
	"aeroclub/flightdesk/internal/models/dtos"
)

// PreemptionService emits non-blocking notices when an aircraft is already
// committed to a sport flight on the proposed date. Sport bookings hold the
// airframe for the day; anything else on the same aircraft is conditional on
// that flight ending or being cancelled.
type PreemptionService struct{}

func NewPreemptionService() *PreemptionService {
	return &PreemptionService{}
}

// Check returns an advisory when the draft puts a non-sport booking on an
// aircraft that already carries a sport entry for the same date. Never
// blocking.
func (s *PreemptionService) Check(draft models.BookingDraft, vctx *models.ValidationContext) *dtos.Issue {
	if draft.AircraftID == nil || draft.Date == nil {
		return nil
	}
	if vctx.PurposeKeyOf(draft.PurposeID) == constants.PurposeSport {
		return nil
	}

	for i := range vctx.Entries {
		e := &vctx.Entries[i]
		if draft.EntryID != nil && e.ID == *draft.EntryID {
			continue
		}
		if e.AircraftID == nil || *e.AircraftID != *draft.AircraftID {
			continue
		}
		if !common.SameDate(e.Date, *draft.Date) {
			continue
		}
		if vctx.PurposeKeyOf(e.PurposeID) != constants.PurposeSport {
			continue
		}

		pilotName := e.PilotID
		if p, ok := vctx.Pilots[e.PilotID]; ok {
			pilotName = p.DisplayName
		}
		return &dtos.Issue{
			Code: constants.IssuePreemption,
			Message: fmt.Sprintf(
				"%s holds this aircraft for a sport flight from %s; this booking stands only if that flight ends or is cancelled",
				pilotName, constants.FormatSlot(e.SlotMinutes)),
			FieldRef: "aircraft_id",
		}
	}
	return nil
}
