package workers

import (
	"context"
	"time"

	"aeroclub/flightdesk/internal/logging"
	"aeroclub/flightdesk/internal/services"
)

type WorkersContainer struct {
	CatalogWarmer *CatalogCacheWorker
}

// CatalogCacheWorker keeps the catalog cache warm so the booking form never
// waits on a cold load, and picks up roster/fleet edits within one interval.
type CatalogCacheWorker struct {
	catalog  *services.CatalogService
	interval time.Duration
}

func NewCatalogCacheWorker(catalog *services.CatalogService, interval time.Duration) *CatalogCacheWorker {
	return &CatalogCacheWorker{catalog: catalog, interval: interval}
}

func (w *CatalogCacheWorker) Start(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.refresh(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.refresh(ctx)
		}
	}
}

func (w *CatalogCacheWorker) refresh(ctx context.Context) {
	if err := w.catalog.WarmCache(ctx); err != nil {
		logging.Warn("Catalog cache refresh failed", "error", err.Error())
	}
}

func InitWorkers(catalog *services.CatalogService) *WorkersContainer {
	warmer := NewCatalogCacheWorker(catalog, 45*time.Second)

	go warmer.Start(context.Background())

	return &WorkersContainer{
		CatalogWarmer: warmer,
	}
}
