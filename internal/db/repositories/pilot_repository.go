package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"

	"aeroclub/flightdesk/internal/constants"
	"aeroclub/flightdesk/internal/models/entities"
)

type PilotRepository struct {
	db *sqlx.DB
}

func NewPilotRepository(db *sqlx.DB) *PilotRepository {
	return &PilotRepository{db}
}

func (r *PilotRepository) ListPilots(ctx context.Context) ([]entities.Pilot, error) {
	var pilots []entities.Pilot
	if err := r.db.SelectContext(ctx, &pilots, constants.GetAllPilots); err != nil {
		return nil, err
	}
	return pilots, nil
}

// ListCategoryLinks returns every pilot/category pairing in one pass so the
// catalog loader can assemble held-category sets without N+1 queries.
func (r *PilotRepository) ListCategoryLinks(ctx context.Context) ([]entities.PilotCategoryLink, error) {
	var links []entities.PilotCategoryLink
	if err := r.db.SelectContext(ctx, &links, constants.GetAllPilotCategoryLinks); err != nil {
		return nil, err
	}
	return links, nil
}
