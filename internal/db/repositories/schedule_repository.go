package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	gormModels "aeroclub/flightdesk/internal/models/gorm"
)

// ScheduleRepository is the schedule entry store. Validation runs on a
// snapshot fetched just before it, so two submissions can race past the
// conflict check; the partial unique index on (entry_date, slot_minutes,
// aircraft_id) over non-exempt rows is the last-resort guard and its
// violation is translated for the caller via IsUniqueViolation.
type ScheduleRepository struct {
	db *gorm.DB
}

func NewScheduleRepository(db *gorm.DB) *ScheduleRepository {
	return &ScheduleRepository{db: db}
}

func (r *ScheduleRepository) Create(ctx context.Context, entry *gormModels.ScheduleEntry) error {
	if err := r.db.WithContext(ctx).Create(entry).Error; err != nil {
		return fmt.Errorf("failed to create schedule entry: %w", err)
	}
	return nil
}

// CreateBatch persists a synthesized entry set in one transaction. Either
// every entry lands or none does.
func (r *ScheduleRepository) CreateBatch(ctx context.Context, entries []gormModels.ScheduleEntry) error {
	if len(entries) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range entries {
			if err := tx.Create(&entries[i]).Error; err != nil {
				return fmt.Errorf("failed to create schedule entry %s: %w", entries[i].ID, err)
			}
		}
		return nil
	})
}

func (r *ScheduleRepository) Update(ctx context.Context, entry *gormModels.ScheduleEntry) error {
	res := r.db.WithContext(ctx).Model(&gormModels.ScheduleEntry{}).
		Where("id = ?", entry.ID).
		Select("entry_date", "slot_minutes", "pilot_id", "category_id", "purpose_id", "aircraft_id", "tow_available", "conflict_exempt").
		Updates(entry)
	if res.Error != nil {
		return fmt.Errorf("failed to update schedule entry: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *ScheduleRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&gormModels.ScheduleEntry{})
	if res.Error != nil {
		return fmt.Errorf("failed to delete schedule entry: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *ScheduleRepository) FindById(ctx context.Context, id string) (*gormModels.ScheduleEntry, error) {
	var entry gormModels.ScheduleEntry
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&entry).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// ListByDateRange returns every entry with entry_date in [start, end],
// ordered the way the booking board renders them.
func (r *ScheduleRepository) ListByDateRange(ctx context.Context, start, end time.Time) ([]gormModels.ScheduleEntry, error) {
	var entries []gormModels.ScheduleEntry
	err := r.db.WithContext(ctx).
		Where("entry_date >= ? AND entry_date <= ?", start, end).
		Order("entry_date, slot_minutes, pilot_id").
		Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list schedule entries: %w", err)
	}
	return entries, nil
}

// IsUniqueViolation reports whether err is the store rejecting a
// (date, slot, aircraft) collision that slipped past validation.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key value") ||
		strings.Contains(msg, "UNIQUE constraint failed")
}
