package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	gormModels "aeroclub/flightdesk/internal/models/gorm"
)

// Setup test database
func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	// Auto migrate
	if err := db.AutoMigrate(&gormModels.ScheduleEntry{}); err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}

	return db
}

func testEntry(id string, day time.Time, slotMinutes int, aircraftID *string) gormModels.ScheduleEntry {
	return gormModels.ScheduleEntry{
		ID:          id,
		EntryDate:   day,
		SlotMinutes: slotMinutes,
		PilotID:     "pilot-" + id,
		CategoryID:  "cat-1",
		PurposeID:   "purp-1",
		AircraftID:  aircraftID,
		AccountID:   "acct-" + id,
	}
}

func ptr(s string) *string { return &s }

func TestScheduleRepository_CreateAndFind(t *testing.T) {
	repo := NewScheduleRepository(setupTestDB(t))
	ctx := context.Background()
	day := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	entry := testEntry("e1", day, 540, ptr("ac-1"))
	if err := repo.Create(ctx, &entry); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	found, err := repo.FindById(ctx, "e1")
	if err != nil {
		t.Fatalf("FindById failed: %v", err)
	}
	if found.PilotID != "pilot-e1" || found.SlotMinutes != 540 {
		t.Errorf("Unexpected entry: %+v", found)
	}
}

func TestScheduleRepository_CreateBatchIsAtomic(t *testing.T) {
	repo := NewScheduleRepository(setupTestDB(t))
	ctx := context.Background()
	day := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	// Occupy the slot first, then batch a clean entry together with one that
	// collides on (date, slot, aircraft). The whole batch must roll back.
	if err := repo.Create(ctx, &gormModels.ScheduleEntry{
		ID: "taken", EntryDate: day, SlotMinutes: 540,
		PilotID: "pilot-x", CategoryID: "cat-1", PurposeID: "purp-1",
		AircraftID: ptr("ac-1"), AccountID: "acct-x",
	}); err != nil {
		t.Fatalf("Seed failed: %v", err)
	}

	batch := []gormModels.ScheduleEntry{
		testEntry("clean", day, 600, ptr("ac-2")),
		testEntry("dup", day, 540, ptr("ac-1")),
	}
	err := repo.CreateBatch(ctx, batch)
	if err == nil {
		t.Fatal("Expected batch to fail on the duplicate row")
	}
	if !IsUniqueViolation(err) {
		t.Errorf("Expected a unique violation, got %v", err)
	}

	if _, err := repo.FindById(ctx, "clean"); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("Expected the clean row rolled back, got err=%v", err)
	}
}

func TestScheduleRepository_ExemptRowsShareSlotAndAircraft(t *testing.T) {
	repo := NewScheduleRepository(setupTestDB(t))
	ctx := context.Background()
	day := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	// Two instructors giving instruction may hold the same glider and slot.
	first := testEntry("inst-1", day, 540, ptr("ac-1"))
	first.ConflictExempt = true
	second := testEntry("inst-2", day, 540, ptr("ac-1"))
	second.ConflictExempt = true

	if err := repo.Create(ctx, &first); err != nil {
		t.Fatalf("First exempt row failed: %v", err)
	}
	if err := repo.Create(ctx, &second); err != nil {
		t.Fatalf("Second exempt row must land beside the first: %v", err)
	}

	// A regular booking also lands beside them; only a second regular booking
	// trips the guard.
	regular := testEntry("reg-1", day, 540, ptr("ac-1"))
	if err := repo.Create(ctx, &regular); err != nil {
		t.Fatalf("Regular row beside exempt rows failed: %v", err)
	}
	dup := testEntry("reg-2", day, 540, ptr("ac-1"))
	if err := repo.Create(ctx, &dup); err == nil || !IsUniqueViolation(err) {
		t.Errorf("Expected a unique violation for the second regular row, got %v", err)
	}
}

func TestScheduleRepository_CreateBatchEmpty(t *testing.T) {
	repo := NewScheduleRepository(setupTestDB(t))
	if err := repo.CreateBatch(context.Background(), nil); err != nil {
		t.Errorf("Empty batch should be a no-op, got %v", err)
	}
}

func TestScheduleRepository_Update(t *testing.T) {
	repo := NewScheduleRepository(setupTestDB(t))
	ctx := context.Background()
	day := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	entry := testEntry("e1", day, 540, ptr("ac-1"))
	if err := repo.Create(ctx, &entry); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	entry.SlotMinutes = 630
	entry.AircraftID = ptr("ac-2")
	if err := repo.Update(ctx, &entry); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	found, err := repo.FindById(ctx, "e1")
	if err != nil {
		t.Fatalf("FindById failed: %v", err)
	}
	if found.SlotMinutes != 630 || found.AircraftID == nil || *found.AircraftID != "ac-2" {
		t.Errorf("Update not applied: %+v", found)
	}
}

func TestScheduleRepository_UpdateMissing(t *testing.T) {
	repo := NewScheduleRepository(setupTestDB(t))
	day := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	entry := testEntry("ghost", day, 540, nil)
	err := repo.Update(context.Background(), &entry)
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("Expected ErrRecordNotFound, got %v", err)
	}
}

func TestScheduleRepository_Delete(t *testing.T) {
	repo := NewScheduleRepository(setupTestDB(t))
	ctx := context.Background()
	day := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	entry := testEntry("e1", day, 540, nil)
	if err := repo.Create(ctx, &entry); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if err := repo.Delete(ctx, "e1"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if err := repo.Delete(ctx, "e1"); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("Expected ErrRecordNotFound on second delete, got %v", err)
	}
}

func TestScheduleRepository_ListByDateRange(t *testing.T) {
	repo := NewScheduleRepository(setupTestDB(t))
	ctx := context.Background()

	day1 := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	day2 := time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC)
	day3 := time.Date(2024, 6, 9, 0, 0, 0, 0, time.UTC)

	seed := []gormModels.ScheduleEntry{
		testEntry("b", day2, 540, ptr("ac-1")),
		testEntry("a", day1, 600, ptr("ac-2")),
		testEntry("c", day1, 540, ptr("ac-3")),
		testEntry("out", day3, 540, ptr("ac-4")),
	}
	if err := repo.CreateBatch(ctx, seed); err != nil {
		t.Fatalf("Seed failed: %v", err)
	}

	entries, err := repo.ListByDateRange(ctx, day1, day2)
	if err != nil {
		t.Fatalf("ListByDateRange failed: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("Expected 3 entries, got %d", len(entries))
	}

	// Ordered by date then slot.
	got := []string{entries[0].ID, entries[1].ID, entries[2].ID}
	want := []string{"c", "a", "b"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Expected order %v, got %v", want, got)
			break
		}
	}
}

func TestIsUniqueViolation(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"gorm sentinel", gorm.ErrDuplicatedKey, true},
		{"postgres message", errors.New(`duplicate key value violates unique constraint "idx_entry_slot_aircraft"`), true},
		{"sqlite message", errors.New("UNIQUE constraint failed: schedule_entries.entry_date"), true},
		{"unrelated", errors.New("connection refused"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsUniqueViolation(tt.err); got != tt.want {
				t.Errorf("IsUniqueViolation(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}
