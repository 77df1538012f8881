package services

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"aeroclub/flightdesk/internal/common"
	"aeroclub/flightdesk/internal/constants"
	"aeroclub/flightdesk/internal/models"
	"aeroclub/flightdesk/internal/models/entities"
)

// Canonical normalized names of the three rule-bearing role categories.
// Matching happens once, when the catalog is loaded; validation only ever
// sees the resolved tag.
var wellKnownRoles = map[string]constants.RoleTag{
	"tow pilot":         constants.RoleTowPilot,
	"glider instructor": constants.RoleGliderInstructor,
	"engine instructor": constants.RoleEngineInstructor,
}

const catalogCacheTTL = 60 * time.Second

// PilotLister and friends are the read-only snapshot sources the catalog
// service pulls from.
type PilotLister interface {
	ListPilots(ctx context.Context) ([]entities.Pilot, error)
	ListCategoryLinks(ctx context.Context) ([]entities.PilotCategoryLink, error)
}

type CategoryLister interface {
	ListCategories(ctx context.Context) ([]entities.Category, error)
}

type AircraftLister interface {
	ListAircraft(ctx context.Context) ([]entities.Aircraft, error)
}

type PurposeLister interface {
	ListPurposes(ctx context.Context) ([]entities.FlightPurpose, error)
}

type EntryLister interface {
	ListByDateRange(ctx context.Context, start, end time.Time) ([]models.BookingEntry, error)
}

// CatalogService assembles the validation context: catalogs with resolved
// role tags, plus the day's existing entries. Catalogs are cached briefly;
// entries are always fetched fresh so validation runs on a current snapshot.
type CatalogService struct {
	pilots     PilotLister
	categories CategoryLister
	aircraft   AircraftLister
	purposes   PurposeLister
	entries    EntryLister
	cache      common.CacheInterface
}

func NewCatalogService(
	pilots PilotLister,
	categories CategoryLister,
	aircraft AircraftLister,
	purposes PurposeLister,
	entries EntryLister,
	cache common.CacheInterface,
) *CatalogService {
	return &CatalogService{
		pilots:     pilots,
		categories: categories,
		aircraft:   aircraft,
		purposes:   purposes,
		entries:    entries,
		cache:      cache,
	}
}

// ResolveRoleTag matches a category display name against the well-known
// roles after normalization. Everything else is generic.
func ResolveRoleTag(name string) constants.RoleTag {
	if tag, ok := wellKnownRoles[common.NormalizeCategoryName(name)]; ok {
		return tag
	}
	return constants.RoleGeneric
}

// LoadValidationContext fetches all catalogs and the date's entries
// concurrently and returns the snapshot the engine validates against.
func (s *CatalogService) LoadValidationContext(ctx context.Context, date time.Time, today time.Time) (*models.ValidationContext, error) {
	var (
		pilots  map[string]*models.Pilot
		cats    map[string]*models.Category
		fleet   map[string]*models.Aircraft
		purps   map[string]*models.Purpose
		entries []models.BookingEntry
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		pilots, err = s.Pilots(gctx)
		return
	})
	g.Go(func() (err error) {
		cats, err = s.Categories(gctx)
		return
	})
	g.Go(func() (err error) {
		fleet, err = s.Aircraft(gctx)
		return
	})
	g.Go(func() (err error) {
		purps, err = s.Purposes(gctx)
		return
	})
	g.Go(func() (err error) {
		day := common.DateOnly(date)
		entries, err = s.entries.ListByDateRange(gctx, day, day)
		return
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to load validation context: %w", err)
	}

	return &models.ValidationContext{
		Pilots:     pilots,
		Categories: cats,
		Aircraft:   fleet,
		Purposes:   purps,
		Entries:    entries,
		Today:      today,
	}, nil
}

// Pilots returns the roster with held-category sets, cached briefly.
func (s *CatalogService) Pilots(ctx context.Context) (map[string]*models.Pilot, error) {
	var pilots map[string]*models.Pilot
	if s.cache.GetInto(common.CacheKeyPilots, &pilots) {
		return pilots, nil
	}

	pilots, err := s.loadPilots(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.Set(common.CacheKeyPilots, pilots, catalogCacheTTL)
	return pilots, nil
}

func (s *CatalogService) loadPilots(ctx context.Context) (map[string]*models.Pilot, error) {
	rows, err := s.pilots.ListPilots(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list pilots: %w", err)
	}
	links, err := s.pilots.ListCategoryLinks(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list pilot categories: %w", err)
	}

	held := make(map[string][]string, len(rows))
	for _, l := range links {
		held[l.PilotID] = append(held[l.PilotID], l.CategoryID)
	}

	pilots := make(map[string]*models.Pilot, len(rows))
	for _, row := range rows {
		pilots[row.ID] = &models.Pilot{
			ID:                row.ID,
			DisplayName:       row.DisplayName,
			CategoryIDs:       held[row.ID],
			CertificateExpiry: row.CertificateExpiry,
			AccountID:         row.AccountID,
		}
	}
	return pilots, nil
}

// Categories returns the category catalog with role tags resolved.
func (s *CatalogService) Categories(ctx context.Context) (map[string]*models.Category, error) {
	var cats map[string]*models.Category
	if s.cache.GetInto(common.CacheKeyCategories, &cats) {
		return cats, nil
	}

	cats, err := s.loadCategories(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.Set(common.CacheKeyCategories, cats, catalogCacheTTL)
	return cats, nil
}

func (s *CatalogService) loadCategories(ctx context.Context) (map[string]*models.Category, error) {
	rows, err := s.categories.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	cats := make(map[string]*models.Category, len(rows))
	for _, row := range rows {
		cats[row.ID] = &models.Category{
			ID:   row.ID,
			Name: row.Name,
			Tag:  ResolveRoleTag(row.Name),
		}
	}
	return cats, nil
}

// Aircraft returns the fleet catalog.
func (s *CatalogService) Aircraft(ctx context.Context) (map[string]*models.Aircraft, error) {
	var fleet map[string]*models.Aircraft
	if s.cache.GetInto(common.CacheKeyAircraft, &fleet) {
		return fleet, nil
	}

	fleet, err := s.loadAircraft(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.Set(common.CacheKeyAircraft, fleet, catalogCacheTTL)
	return fleet, nil
}

func (s *CatalogService) loadAircraft(ctx context.Context) (map[string]*models.Aircraft, error) {
	rows, err := s.aircraft.ListAircraft(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list aircraft: %w", err)
	}
	fleet := make(map[string]*models.Aircraft, len(rows))
	for _, row := range rows {
		reason := ""
		if row.OutOfServiceReason != nil {
			reason = *row.OutOfServiceReason
		}
		fleet[row.ID] = &models.Aircraft{
			ID:                 row.ID,
			Name:               row.Name,
			Type:               row.Type,
			InService:          row.InService,
			OutOfServiceReason: reason,
			InsuranceExpiry:    row.InsuranceExpiry,
		}
	}
	return fleet, nil
}

// Purposes returns the flight purpose catalog.
func (s *CatalogService) Purposes(ctx context.Context) (map[string]*models.Purpose, error) {
	var purps map[string]*models.Purpose
	if s.cache.GetInto(common.CacheKeyPurposes, &purps) {
		return purps, nil
	}

	purps, err := s.loadPurposes(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.Set(common.CacheKeyPurposes, purps, catalogCacheTTL)
	return purps, nil
}

func (s *CatalogService) loadPurposes(ctx context.Context) (map[string]*models.Purpose, error) {
	rows, err := s.purposes.ListPurposes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list flight purposes: %w", err)
	}
	purps := make(map[string]*models.Purpose, len(rows))
	for _, row := range rows {
		purps[row.ID] = &models.Purpose{
			ID:   row.ID,
			Key:  row.Key,
			Name: row.Name,
		}
	}
	return purps, nil
}

// WarmCache reloads every catalog and primes the cache. The background
// worker calls this on its refresh interval.
func (s *CatalogService) WarmCache(ctx context.Context) error {
	pilots, err := s.loadPilots(ctx)
	if err != nil {
		return err
	}
	cats, err := s.loadCategories(ctx)
	if err != nil {
		return err
	}
	fleet, err := s.loadAircraft(ctx)
	if err != nil {
		return err
	}
	purps, err := s.loadPurposes(ctx)
	if err != nil {
		return err
	}

	s.cache.Set(common.CacheKeyPilots, pilots, catalogCacheTTL)
	s.cache.Set(common.CacheKeyCategories, cats, catalogCacheTTL)
	s.cache.Set(common.CacheKeyAircraft, fleet, catalogCacheTTL)
	s.cache.Set(common.CacheKeyPurposes, purps, catalogCacheTTL)
	return nil
}
