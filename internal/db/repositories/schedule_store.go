package repositories

import (
	"context"
	"time"

	"aeroclub/flightdesk/internal/models"
	gormModels "aeroclub/flightdesk/internal/models/gorm"
)

// ScheduleStore exposes the schedule repository in terms of the engine's
// domain model, keeping gorm types out of the services package.
type ScheduleStore struct {
	repo *ScheduleRepository
}

func NewScheduleStore(repo *ScheduleRepository) *ScheduleStore {
	return &ScheduleStore{repo: repo}
}

func toRecord(e models.BookingEntry) gormModels.ScheduleEntry {
	return gormModels.ScheduleEntry{
		ID:             e.ID,
		EntryDate:      e.Date,
		SlotMinutes:    e.SlotMinutes,
		PilotID:        e.PilotID,
		CategoryID:     e.CategoryID,
		PurposeID:      e.PurposeID,
		AircraftID:     e.AircraftID,
		TowAvailable:   e.TowAvailable,
		ConflictExempt: e.ConflictExempt,
		AccountID:      e.AccountID,
	}
}

func toBooking(rec gormModels.ScheduleEntry) models.BookingEntry {
	return models.BookingEntry{
		ID:             rec.ID,
		Date:           rec.EntryDate,
		SlotMinutes:    rec.SlotMinutes,
		PilotID:        rec.PilotID,
		CategoryID:     rec.CategoryID,
		PurposeID:      rec.PurposeID,
		AircraftID:     rec.AircraftID,
		TowAvailable:   rec.TowAvailable,
		ConflictExempt: rec.ConflictExempt,
		AccountID:      rec.AccountID,
	}
}

// CreateBatch persists the synthesized entry set atomically.
func (s *ScheduleStore) CreateBatch(ctx context.Context, entries []models.BookingEntry) error {
	records := make([]gormModels.ScheduleEntry, len(entries))
	for i, e := range entries {
		records[i] = toRecord(e)
	}
	return s.repo.CreateBatch(ctx, records)
}

func (s *ScheduleStore) Update(ctx context.Context, entry models.BookingEntry) error {
	rec := toRecord(entry)
	return s.repo.Update(ctx, &rec)
}

func (s *ScheduleStore) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *ScheduleStore) FindById(ctx context.Context, id string) (*models.BookingEntry, error) {
	rec, err := s.repo.FindById(ctx, id)
	if err != nil {
		return nil, err
	}
	entry := toBooking(*rec)
	return &entry, nil
}

func (s *ScheduleStore) ListByDateRange(ctx context.Context, start, end time.Time) ([]models.BookingEntry, error) {
	records, err := s.repo.ListByDateRange(ctx, start, end)
	if err != nil {
		return nil, err
	}
	entries := make([]models.BookingEntry, len(records))
	for i, rec := range records {
		entries[i] = toBooking(rec)
	}
	return entries, nil
}
