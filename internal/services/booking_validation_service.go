package services

import (
	"context"
	"time"

	"aeroclub/flightdesk/internal/constants"
	"aeroclub/flightdesk/internal/metrics"
	"aeroclub/flightdesk/internal/models"
	"aeroclub/flightdesk/internal/models/dtos"
)

// ScheduleEntryStore is the external store validated entries are handed to.
// The batch from an availability declaration is all-or-nothing.
type ScheduleEntryStore interface {
	CreateBatch(ctx context.Context, entries []models.BookingEntry) error
	Update(ctx context.Context, entry models.BookingEntry) error
}

// UniqueViolationFunc reports whether a store error is the uniqueness guard
// rejecting a (date, slot, aircraft) race.
type UniqueViolationFunc func(error) bool

// BookingValidationService runs the whole validation pipeline over a booking
// draft: role-driven defaulting, aircraft eligibility, certificate windows,
// collision detection and sport-flight preemption, then entry synthesis and
// the atomic handoff to the store. The engine itself is pure; all I/O stays
// in the store and the snapshot loader.
type BookingValidationService struct {
	certs       *CertificationService
	eligibility *EligibilityService
	defaulting  *DefaultingService
	conflicts   *ConflictService
	preemption  *PreemptionService
	synthesizer *SynthesizerService
	store       ScheduleEntryStore
	isUnique    UniqueViolationFunc
	metricsReg  *metrics.MetricsRegistry
}

func NewBookingValidationService(store ScheduleEntryStore, isUnique UniqueViolationFunc, metricsReg *metrics.MetricsRegistry) *BookingValidationService {
	return &BookingValidationService{
		certs:       NewCertificationService(),
		eligibility: NewEligibilityService(),
		defaulting:  NewDefaultingService(),
		conflicts:   NewConflictService(),
		preemption:  NewPreemptionService(),
		synthesizer: NewSynthesizerService(),
		store:       store,
		isUnique:    isUnique,
		metricsReg:  metricsReg,
	}
}

// Revalidate recomputes derived draft state and runs every check against the
// snapshot. It is invoked on every form change and again on submission; the
// input draft is never mutated. Re-running it on its own output returns the
// same draft.
func (s *BookingValidationService) Revalidate(draft models.BookingDraft, vctx *models.ValidationContext) (models.BookingDraft, []AircraftOption, dtos.ValidationResult) {
	result := dtos.ValidationResult{OK: true}

	d := s.defaulting.Recompute(draft, vctx)

	roleTag := vctx.RoleTagOf(d.CategoryID)
	if d.CategoryID == "" {
		roleTag = constants.RoleGeneric
	}
	purposeKey := vctx.PurposeKeyOf(d.PurposeID)

	// Aircraft eligibility, with the clearing side effect expressed as a new
	// draft value.
	options := s.eligibility.Options(vctx, roleTag, purposeKey)
	if d.AircraftID != nil && *d.AircraftID != "" {
		selectable, listed := s.eligibility.Selectable(options, *d.AircraftID)
		switch {
		case !listed:
			d.AircraftID = nil
		case !selectable:
			reason := ""
			for _, opt := range options {
				if opt.Aircraft.ID == *d.AircraftID {
					reason = opt.Reason
				}
			}
			result.AddBlocking(constants.IssueAircraftUnusable, "selected aircraft is unavailable: "+reason, "aircraft_id")
		}
	}

	s.checkRequiredFields(&d, vctx, &result)

	if pilot, ok := vctx.Pilots[d.PilotID]; ok && d.Date != nil {
		check := s.certs.Classify(pilot.CertificateExpiry, *d.Date, vctx.Today)
		if issue := s.certs.Issue(check, pilot.DisplayName); issue != nil {
			if issue.Code == constants.IssueExpiredForFlight {
				result.AddBlocking(issue.Code, issue.Message, issue.FieldRef)
			} else {
				result.AddAdvisory(issue.Code, issue.Message, issue.FieldRef)
			}
		}
	}

	if issue := s.conflicts.Check(d, vctx); issue != nil {
		result.AddBlocking(issue.Code, issue.Message, issue.FieldRef)
	}
	if issue := s.preemption.Check(d, vctx); issue != nil {
		result.AddAdvisory(issue.Code, issue.Message, issue.FieldRef)
	}

	result.OK = len(result.Blocking) == 0
	s.observe(result)
	return d, options, result
}

// ShowTowToggle reports whether the form should surface the tow-availability
// toggle for the draft's current role.
func (s *BookingValidationService) ShowTowToggle(draft models.BookingDraft, vctx *models.ValidationContext) bool {
	return s.defaulting.ShowTowToggle(draft, vctx)
}

// Submit validates the draft, synthesizes the entry set and persists it as
// one batch. A uniqueness rejection from the store flows back through the
// same blocking channel the conflict check uses.
func (s *BookingValidationService) Submit(ctx context.Context, draft models.BookingDraft, vctx *models.ValidationContext, actingAccountID string) ([]string, dtos.ValidationResult, error) {
	d, _, result := s.Revalidate(draft, vctx)
	if !result.OK {
		return nil, result, nil
	}

	entries, issue := s.synthesizer.Synthesize(d, vctx, actingAccountID)
	if issue != nil {
		result.AddBlocking(issue.Code, issue.Message, issue.FieldRef)
		return nil, result, nil
	}

	start := time.Now()
	var err error
	if d.EntryID != nil {
		err = s.store.Update(ctx, entries[0])
	} else {
		err = s.store.CreateBatch(ctx, entries)
	}
	if s.metricsReg != nil {
		s.metricsReg.BatchCommitDuration.Observe(time.Since(start).Seconds())
	}

	if err != nil {
		if s.isUnique != nil && s.isUnique(err) {
			result.AddBlocking(constants.IssueAircraftConflict,
				"the aircraft was booked for this slot by a concurrent submission", "aircraft_id")
			return nil, result, nil
		}
		return nil, result, err
	}

	if s.metricsReg != nil {
		s.metricsReg.EntriesSynthesizedTotal.Add(float64(len(entries)))
	}

	ids := make([]string, len(entries))
	for i, e := range entries {
		ids[i] = e.ID
	}
	result.OK = true
	return ids, result, nil
}

func (s *BookingValidationService) checkRequiredFields(d *models.BookingDraft, vctx *models.ValidationContext, result *dtos.ValidationResult) {
	if d.Date == nil {
		result.AddBlocking(constants.IssueFieldRequired, "date is required", "date")
	}
	switch {
	case d.SlotMinutes == nil:
		result.AddBlocking(constants.IssueFieldRequired, "time slot is required", "slot")
	case !constants.ValidSlot(*d.SlotMinutes):
		result.AddBlocking(constants.IssueFieldInvalid, "time slot is outside the booking board grid", "slot")
	}
	switch {
	case d.PilotID == "":
		result.AddBlocking(constants.IssueFieldRequired, "pilot is required", "pilot_id")
	default:
		if _, ok := vctx.Pilots[d.PilotID]; !ok {
			result.AddBlocking(constants.IssueFieldInvalid, "unknown pilot", "pilot_id")
		}
	}
}

func (s *BookingValidationService) observe(result dtos.ValidationResult) {
	if s.metricsReg == nil {
		return
	}
	outcome := "ok"
	if !result.OK {
		outcome = "blocked"
	}
	s.metricsReg.ValidationsTotal.WithLabelValues(outcome).Inc()
	for _, issue := range result.Blocking {
		s.metricsReg.BlockingIssuesTotal.WithLabelValues(string(issue.Code)).Inc()
	}
	for _, issue := range result.Advisory {
		s.metricsReg.AdvisoryIssuesTotal.WithLabelValues(string(issue.Code)).Inc()
	}
}
