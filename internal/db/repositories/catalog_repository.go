package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"

	"aeroclub/flightdesk/internal/constants"
	"aeroclub/flightdesk/internal/models/entities"
)

type CategoryRepository struct {
	db *sqlx.DB
}

func NewCategoryRepository(db *sqlx.DB) *CategoryRepository {
	return &CategoryRepository{db}
}

func (r *CategoryRepository) ListCategories(ctx context.Context) ([]entities.Category, error) {
	var categories []entities.Category
	if err := r.db.SelectContext(ctx, &categories, constants.GetAllCategories); err != nil {
		return nil, err
	}
	return categories, nil
}

type AircraftRepository struct {
	db *sqlx.DB
}

func NewAircraftRepository(db *sqlx.DB) *AircraftRepository {
	return &AircraftRepository{db}
}

func (r *AircraftRepository) ListAircraft(ctx context.Context) ([]entities.Aircraft, error) {
	var aircraft []entities.Aircraft
	if err := r.db.SelectContext(ctx, &aircraft, constants.GetAllAircraft); err != nil {
		return nil, err
	}
	return aircraft, nil
}

type PurposeRepository struct {
	db *sqlx.DB
}

func NewPurposeRepository(db *sqlx.DB) *PurposeRepository {
	return &PurposeRepository{db}
}

func (r *PurposeRepository) ListPurposes(ctx context.Context) ([]entities.FlightPurpose, error) {
	var purposes []entities.FlightPurpose
	if err := r.db.SelectContext(ctx, &purposes, constants.GetAllPurposes); err != nil {
		return nil, err
	}
	return purposes, nil
}
