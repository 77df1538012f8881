package api

import (
	"time"

	"aeroclub/flightdesk/internal/constants"
	"aeroclub/flightdesk/internal/models"
	"aeroclub/flightdesk/internal/models/dtos"
	"aeroclub/flightdesk/internal/services"
)

// draftFromRequest converts the wire draft into the engine's form. Malformed
// date and slot values become field-level blocking issues instead of a bare
// 400, so the form can render them next to the field.
func draftFromRequest(req dtos.BookingDraftRequest) (models.BookingDraft, []dtos.Issue) {
	var issues []dtos.Issue

	draft := models.BookingDraft{
		PilotID:      req.PilotID,
		CategoryID:   req.CategoryID,
		PurposeID:    req.PurposeID,
		TowAvailable: req.TowAvailable,
		RoleChecks:   req.RoleChecks,
	}

	if req.EntryID != "" {
		id := req.EntryID
		draft.EntryID = &id
	}
	if req.AircraftID != "" {
		id := req.AircraftID
		draft.AircraftID = &id
	}

	if req.Date != "" {
		d, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			issues = append(issues, dtos.Issue{
				Code:     constants.IssueFieldInvalid,
				Message:  "date must be YYYY-MM-DD",
				FieldRef: "date",
			})
		} else {
			draft.Date = &d
		}
	}

	if req.Slot != "" {
		m, err := constants.ParseSlot(req.Slot)
		if err != nil {
			issues = append(issues, dtos.Issue{
				Code:     constants.IssueFieldInvalid,
				Message:  err.Error(),
				FieldRef: "slot",
			})
		} else {
			draft.SlotMinutes = &m
		}
	}

	return draft, issues
}

func draftToView(d models.BookingDraft, showTow bool) dtos.BookingDraftView {
	view := dtos.BookingDraftView{
		PilotID:      d.PilotID,
		CategoryID:   d.CategoryID,
		PurposeID:    d.PurposeID,
		TowAvailable: d.TowAvailable,
		ShowTowFlag:  showTow,
		RoleChecks:   d.RoleChecks,
	}
	if d.EntryID != nil {
		view.EntryID = *d.EntryID
	}
	if d.Date != nil {
		view.Date = d.Date.Format("2006-01-02")
	}
	if d.SlotMinutes != nil {
		view.Slot = constants.FormatSlot(*d.SlotMinutes)
	}
	if d.AircraftID != nil {
		view.AircraftID = *d.AircraftID
	}
	return view
}

func fleetToDTO(options []services.AircraftOption) []dtos.AircraftOptionDTO {
	out := make([]dtos.AircraftOptionDTO, len(options))
	for i, opt := range options {
		out[i] = dtos.AircraftOptionDTO{
			ID:          opt.Aircraft.ID,
			Name:        opt.Aircraft.Name,
			Type:        string(opt.Aircraft.Type),
			Unavailable: opt.Unavailable,
			Reason:      opt.Reason,
		}
	}
	return out
}

func entryToDTO(e models.BookingEntry, vctx *models.ValidationContext) dtos.ScheduleEntryDTO {
	dto := dtos.ScheduleEntryDTO{
		ID:           e.ID,
		Date:         e.Date.Format("2006-01-02"),
		Slot:         constants.FormatSlot(e.SlotMinutes),
		PilotID:      e.PilotID,
		CategoryID:   e.CategoryID,
		PurposeID:    e.PurposeID,
		TowAvailable: e.TowAvailable,
		AccountID:    e.AccountID,
	}
	if e.AircraftID != nil {
		dto.AircraftID = *e.AircraftID
	}
	if vctx != nil {
		if p, ok := vctx.Pilots[e.PilotID]; ok {
			dto.PilotName = p.DisplayName
		}
	}
	return dto
}
