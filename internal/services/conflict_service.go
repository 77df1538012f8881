package services

import (
	"fmt"

	"aeroclub/flightdesk/internal/common"
	"aeroclub/flightdesk/internal/constants"
	"aeroclub/flightdesk/internal/models"
	"aeroclub/flightdesk/internal/models/dtos"
)

// ConflictService finds and judges aircraft/time collisions between a
// proposed booking and the existing board.
type ConflictService struct{}

func NewConflictService() *ConflictService {
	return &ConflictService{}
}

// BookingSide is one side of a potential collision: the role tag and purpose
// key a booking is made under.
type BookingSide struct {
	RoleTag    constants.RoleTag
	PurposeKey string
}

// sideOf resolves the role/purpose side of an existing entry.
func sideOf(e *models.BookingEntry, vctx *models.ValidationContext) BookingSide {
	return BookingSide{
		RoleTag:    vctx.RoleTagOf(e.CategoryID),
		PurposeKey: vctx.PurposeKeyOf(e.PurposeID),
	}
}

// IsInstructionGiven reports whether the side is an instructor giving
// instruction, which exempts a shared aircraft slot from conflicting.
func (s BookingSide) IsInstructionGiven() bool {
	return s.RoleTag.IsInstructor() && s.PurposeKey == constants.PurposeInstructionGiven
}

// Check looks for an existing entry holding the same (date, slot, aircraft)
// as the draft. The entry being edited, if any, is excluded. A collision is
// exempt when either side is an instructor giving instruction; otherwise it
// is a hard block naming the aircraft, the slot, and the other pilot.
func (s *ConflictService) Check(draft models.BookingDraft, vctx *models.ValidationContext) *dtos.Issue {
	if draft.AircraftID == nil || draft.Date == nil || draft.SlotMinutes == nil {
		return nil
	}

	existing := s.findCollision(draft, vctx)
	if existing == nil {
		return nil
	}

	proposed := BookingSide{
		RoleTag:    vctx.RoleTagOf(draft.CategoryID),
		PurposeKey: vctx.PurposeKeyOf(draft.PurposeID),
	}
	if s.Exempt(proposed, sideOf(existing, vctx)) {
		return nil
	}

	aircraftName := *draft.AircraftID
	if ac, ok := vctx.Aircraft[*draft.AircraftID]; ok {
		aircraftName = ac.Name
	}
	pilotName := existing.PilotID
	if p, ok := vctx.Pilots[existing.PilotID]; ok {
		pilotName = p.DisplayName
	}

	return &dtos.Issue{
		Code: constants.IssueAircraftConflict,
		Message: fmt.Sprintf("%s is already booked at %s by %s",
			aircraftName, constants.FormatSlot(existing.SlotMinutes), pilotName),
		FieldRef: "aircraft_id",
	}
}

// Exempt judges a collision between two sides. It is symmetric: either side
// giving instruction exempts both.
func (s *ConflictService) Exempt(a, b BookingSide) bool {
	return a.IsInstructionGiven() || b.IsInstructionGiven()
}

func (s *ConflictService) findCollision(draft models.BookingDraft, vctx *models.ValidationContext) *models.BookingEntry {
	for i := range vctx.Entries {
		e := &vctx.Entries[i]
		if draft.EntryID != nil && e.ID == *draft.EntryID {
			continue
		}
		if e.AircraftID == nil || *e.AircraftID != *draft.AircraftID {
			continue
		}
		if e.SlotMinutes != *draft.SlotMinutes || !common.SameDate(e.Date, *draft.Date) {
			continue
		}
		return e
	}
	return nil
}
