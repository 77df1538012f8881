package api

import (
	"os"

	"aeroclub/flightdesk/internal/common"
	"aeroclub/flightdesk/internal/db"
	"aeroclub/flightdesk/internal/db/repositories"
	"aeroclub/flightdesk/internal/metrics"
	"aeroclub/flightdesk/internal/services"
)

type Repositories struct {
	Pilots     *repositories.PilotRepository
	Categories *repositories.CategoryRepository
	Aircraft   *repositories.AircraftRepository
	Purposes   *repositories.PurposeRepository
	Schedule   *repositories.ScheduleRepository
	Store      *repositories.ScheduleStore
}

type Services struct {
	Cache   common.CacheInterface
	Catalog *services.CatalogService
	Booking *services.BookingValidationService
}

type Dependencies struct {
	Repo     *Repositories
	Services *Services
	Metrics  *metrics.MetricsRegistry
}

func InitDependencies(metricsReg *metrics.MetricsRegistry) (*Dependencies, error) {

	scheduleRepo := repositories.NewScheduleRepository(db.PgDB)

	repos := &Repositories{
		Pilots:     repositories.NewPilotRepository(db.DB),
		Categories: repositories.NewCategoryRepository(db.DB),
		Aircraft:   repositories.NewAircraftRepository(db.DB),
		Purposes:   repositories.NewPurposeRepository(db.DB),
		Schedule:   scheduleRepo,
		Store:      repositories.NewScheduleStore(scheduleRepo),
	}

	// Redis-backed cache when configured, in-memory otherwise.
	var cacheSvc common.CacheInterface
	if os.Getenv("REDIS_HOST") != "" {
		cacheSvc = common.NewRedisCacheService(common.NewRedisClient())
	} else {
		cacheSvc = common.NewCacheService(60, 600)
	}

	catalogSvc := services.NewCatalogService(
		repos.Pilots,
		repos.Categories,
		repos.Aircraft,
		repos.Purposes,
		repos.Store,
		cacheSvc,
	)

	bookingSvc := services.NewBookingValidationService(
		repos.Store,
		repositories.IsUniqueViolation,
		metricsReg,
	)

	return &Dependencies{
		Repo: repos,
		Services: &Services{
			Cache:   cacheSvc,
			Catalog: catalogSvc,
			Booking: bookingSvc,
		},
		Metrics: metricsReg,
	}, nil

}
