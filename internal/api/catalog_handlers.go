package api

import (
	"net/http"
	"sort"
	"time"

	"aeroclub/flightdesk/internal/common"
	"aeroclub/flightdesk/internal/constants"
	"aeroclub/flightdesk/internal/models"
	"aeroclub/flightdesk/internal/models/dtos"
	"aeroclub/flightdesk/internal/services"
)

// PilotsHandler returns the roster with held categories.
func (h *Handlers) PilotsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		pilots, err := h.deps.Services.Catalog.Pilots(r.Context())
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to load roster")
			return
		}

		out := make([]dtos.PilotDTO, 0, len(pilots))
		for _, p := range pilots {
			dto := dtos.PilotDTO{
				ID:          p.ID,
				DisplayName: p.DisplayName,
				CategoryIDs: p.CategoryIDs,
			}
			if p.CertificateExpiry != nil {
				dto.CertificateExpiry = p.CertificateExpiry.Format("2006-01-02")
			}
			out = append(out, dto)
		}
		sort.Slice(out, func(i, j int) bool { return out[i].DisplayName < out[j].DisplayName })

		common.RespondSuccess(w, initTime, "", out)
	}
}

// CategoriesHandler returns the category catalog with resolved role tags.
func (h *Handlers) CategoriesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		cats, err := h.deps.Services.Catalog.Categories(r.Context())
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to load categories")
			return
		}

		out := make([]dtos.CategoryDTO, 0, len(cats))
		for _, c := range cats {
			out = append(out, dtos.CategoryDTO{ID: c.ID, Name: c.Name, Tag: c.Tag.String()})
		}
		sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })

		common.RespondSuccess(w, initTime, "", out)
	}
}

// AircraftHandler returns the fleet with availability flags for today. The
// flags come from the same rules the booking form sees, so an airframe with
// lapsed insurance shows up unavailable here too.
func (h *Handlers) AircraftHandler() http.HandlerFunc {
	eligibility := services.NewEligibilityService()
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		fleet, err := h.deps.Services.Catalog.Aircraft(r.Context())
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to load fleet")
			return
		}

		vctx := &models.ValidationContext{Aircraft: fleet, Today: time.Now()}
		options := eligibility.Options(vctx, constants.RoleGeneric, "")

		common.RespondSuccess(w, initTime, "", fleetToDTO(options))
	}
}

// RefreshCatalogHandler reloads every catalog cache from the database.
// Administrators call it after editing the roster or fleet so the booking
// form picks the change up without waiting out the cache TTL.
func (h *Handlers) RefreshCatalogHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		if err := h.deps.Services.Catalog.WarmCache(r.Context()); err != nil {
			common.RespondError(w, initTime, err, "Failed to refresh catalogs")
			return
		}

		common.RespondSuccess(w, initTime, "refreshed", nil)
	}
}

// PurposesHandler returns the flight purpose catalog.
func (h *Handlers) PurposesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		purps, err := h.deps.Services.Catalog.Purposes(r.Context())
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to load flight purposes")
			return
		}

		out := make([]dtos.PurposeDTO, 0, len(purps))
		for _, p := range purps {
			out = append(out, dtos.PurposeDTO{ID: p.ID, Key: p.Key, Name: p.Name})
		}
		sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })

		common.RespondSuccess(w, initTime, "", out)
	}
}
