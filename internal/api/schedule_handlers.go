package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"gorm.io/gorm"

	"aeroclub/flightdesk/internal/auth"
	"aeroclub/flightdesk/internal/common"
	"aeroclub/flightdesk/internal/logging"
	"aeroclub/flightdesk/internal/models"
	"aeroclub/flightdesk/internal/models/dtos"
)

// ValidateBookingHandler runs the validation pipeline on a draft without
// persisting anything. The form calls it on every field change.
func (h *Handlers) ValidateBookingHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.BookingDraftRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, nil, "Invalid request body", http.StatusBadRequest)
			return
		}

		draft, fieldIssues := draftFromRequest(req)

		vctx, err := h.loadContext(r, draft.Date)
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to load schedule snapshot")
			return
		}

		revalidated, options, result := h.deps.Services.Booking.Revalidate(draft, vctx)
		for _, issue := range fieldIssues {
			result.AddBlocking(issue.Code, issue.Message, issue.FieldRef)
		}

		showTow := h.deps.Services.Booking.ShowTowToggle(revalidated, vctx)
		common.RespondSuccess(w, initTime, "validated", dtos.ValidateResponse{
			Result: result,
			Draft:  draftToView(revalidated, showTow),
			Fleet:  fleetToDTO(options),
		})
	}
}

// SubmitBookingHandler validates and persists a new booking or availability
// declaration. The owning account always comes from the caller's claims.
func (h *Handlers) SubmitBookingHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		claims := auth.GetAccountClaims(r.Context())
		if claims == nil {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		var req dtos.BookingDraftRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, nil, "Invalid request body", http.StatusBadRequest)
			return
		}
		req.EntryID = "" // creates never carry an entry id

		h.submit(w, r, req, initTime, "")
	}
}

// UpdateBookingHandler re-runs the same validation path for an existing
// entry, excluding it from collision checks, and updates it in place.
func (h *Handlers) UpdateBookingHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		claims := auth.GetAccountClaims(r.Context())
		if claims == nil {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		entryID := chi.URLParam(r, "entry_id")
		stored, err := h.deps.Repo.Store.FindById(r.Context(), entryID)
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				common.RespondError(w, initTime, nil, "Entry not found", http.StatusNotFound)
				return
			}
			common.RespondError(w, initTime, err, "Failed to fetch entry")
			return
		}

		if !claims.Owns(stored.AccountID) && !claims.IsAdministrator() {
			http.Error(w, "Unauthorized. Not the entry owner", http.StatusForbidden)
			return
		}

		var req dtos.BookingDraftRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, nil, "Invalid request body", http.StatusBadRequest)
			return
		}
		req.EntryID = entryID
		req.RoleChecks = nil // edits are conventional bookings only

		h.submit(w, r, req, initTime, stored.AccountID)
	}
}

// submit is the shared create/update tail. owner is the stored entry's
// account on updates, empty on creates.
func (h *Handlers) submit(w http.ResponseWriter, r *http.Request, req dtos.BookingDraftRequest, initTime time.Time, owner string) {
	claims := auth.GetAccountClaims(r.Context())

	draft, fieldIssues := draftFromRequest(req)

	if len(fieldIssues) > 0 {
		result := dtos.ValidationResult{}
		for _, issue := range fieldIssues {
			result.AddBlocking(issue.Code, issue.Message, issue.FieldRef)
		}
		common.RespondSuccess(w, initTime, "rejected", dtos.SubmitResponse{Result: result}, http.StatusUnprocessableEntity)
		return
	}

	vctx, err := h.loadContext(r, draft.Date)
	if err != nil {
		common.RespondError(w, initTime, err, "Failed to load schedule snapshot")
		return
	}

	// The owning account of updated entries is preserved; new entries belong
	// to the acting account.
	actingAccount := claims.AccountID()
	if owner != "" {
		actingAccount = owner
	}

	ids, result, err := h.deps.Services.Booking.Submit(r.Context(), draft, vctx, actingAccount)
	if err != nil {
		logging.Error("Schedule submission failed",
			"request_id", auth.GetRequestID(r.Context()),
			"error", err.Error(),
		)
		common.RespondError(w, initTime, err, "Failed to persist booking")
		return
	}

	if !result.OK {
		common.RespondSuccess(w, initTime, "rejected", dtos.SubmitResponse{Result: result}, http.StatusUnprocessableEntity)
		return
	}

	common.RespondSuccess(w, initTime, "booked", dtos.SubmitResponse{
		Result:   result,
		EntryIDs: ids,
	}, http.StatusCreated)
}

// DeleteBookingHandler removes an entry. Owner or administrator only.
func (h *Handlers) DeleteBookingHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		claims := auth.GetAccountClaims(r.Context())
		if claims == nil {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		entryID := chi.URLParam(r, "entry_id")
		stored, err := h.deps.Repo.Store.FindById(r.Context(), entryID)
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				common.RespondError(w, initTime, nil, "Entry not found", http.StatusNotFound)
				return
			}
			common.RespondError(w, initTime, err, "Failed to fetch entry")
			return
		}

		if !claims.Owns(stored.AccountID) && !claims.IsAdministrator() {
			http.Error(w, "Unauthorized. Not the entry owner", http.StatusForbidden)
			return
		}

		if err := h.deps.Repo.Store.Delete(r.Context(), entryID); err != nil {
			common.RespondError(w, initTime, err, "Failed to delete entry")
			return
		}

		common.RespondSuccess(w, initTime, "deleted", nil)
	}
}

// ListScheduleHandler returns the board entries in a date range.
func (h *Handlers) ListScheduleHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		from, err := time.Parse("2006-01-02", r.URL.Query().Get("from"))
		if err != nil {
			common.RespondError(w, initTime, nil, "Invalid 'from' date", http.StatusBadRequest)
			return
		}
		to, err := time.Parse("2006-01-02", r.URL.Query().Get("to"))
		if err != nil {
			common.RespondError(w, initTime, nil, "Invalid 'to' date", http.StatusBadRequest)
			return
		}

		entries, err := h.deps.Repo.Store.ListByDateRange(r.Context(), from, to)
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to list schedule entries")
			return
		}

		pilots, err := h.deps.Services.Catalog.Pilots(r.Context())
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to load roster")
			return
		}

		out := make([]dtos.ScheduleEntryDTO, len(entries))
		for i, e := range entries {
			dto := entryToDTO(e, nil)
			if p, ok := pilots[e.PilotID]; ok {
				dto.PilotName = p.DisplayName
			}
			out[i] = dto
		}
		common.RespondSuccess(w, initTime, "", out)
	}
}

// loadContext assembles the validation snapshot for the draft's date. Drafts
// with no usable date yet validate against an empty board for today.
func (h *Handlers) loadContext(r *http.Request, date *time.Time) (*models.ValidationContext, error) {
	now := time.Now()
	day := now
	if date != nil {
		day = *date
	}
	return h.deps.Services.Catalog.LoadValidationContext(r.Context(), day, now)
}
