package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/railfleet/fleet_mgmt_app/internal/apperrors"
	"github.com/railfleet/fleet_mgmt_app/internal/core/domain"
	portsrepo "github.com/railfleet/fleet_mgmt_app/internal/core/ports/repositories"
)

type PgxCarRepository struct {
	BaseRepository
}

func newPgxCarRepository(pool *pgxpool.Pool) portsrepo.CarRepository {
	return &PgxCarRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.CarRepository = (*PgxCarRepository)(nil)

// FindCarByMark retrieves a car by its reporting mark.
func (r *PgxCarRepository) FindCarByMark(ctx context.Context, mark string) (*domain.FleetCar, error) {
	query := `
        SELECT car_id, mark, car_type, is_active
        FROM fleet_cars
        WHERE mark = $1 AND is_active = TRUE;
    `
	var car domain.FleetCar
	err := r.Pool.QueryRow(ctx, query, mark).Scan(
		&car.CarID,
		&car.Mark,
		&car.CarType,
		&car.IsActive,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find car by mark %s: %w", mark, err)
	}
	return &car, nil
}

// FindRemarkedMark resolves an old reporting mark to its replacement. When a
// car was remarked more than once the chain is followed to the newest mark.
func (r *PgxCarRepository) FindRemarkedMark(ctx context.Context, oldMark string) (string, error) {
	query := `
        SELECT new_mark
        FROM car_remarks
        WHERE old_mark = $1;
    `
	current := oldMark
	// A remark chain longer than a handful of hops means bad data; stop
	// rather than loop.
	for range [8]struct{}{} {
		var newMark string
		err := r.Pool.QueryRow(ctx, query, current).Scan(&newMark)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				if current != oldMark {
					return current, nil
				}
				return "", apperrors.ErrNotFound
			}
			return "", fmt.Errorf("failed to resolve remark for %s: %w", oldMark, err)
		}
		current = newMark
	}
	return current, nil
}
