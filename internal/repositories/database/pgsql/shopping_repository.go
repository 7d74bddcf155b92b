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

type PgxShoppingRepository struct {
	BaseRepository
}

func newPgxShoppingRepository(pool *pgxpool.Pool) portsrepo.ShoppingRepository {
	return &PgxShoppingRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.ShoppingRepository = (*PgxShoppingRepository)(nil)

// FindShoppingEventByID retrieves a shopping event by its identifier.
func (r *PgxShoppingRepository) FindShoppingEventByID(ctx context.Context, shoppingEventID string) (*domain.ShoppingEvent, error) {
	query := `
        SELECT shopping_event_id, car_mark, shop_code, state
        FROM shopping_events
        WHERE shopping_event_id = $1;
    `
	var event domain.ShoppingEvent
	err := r.Pool.QueryRow(ctx, query, shoppingEventID).Scan(
		&event.ShoppingEventID,
		&event.CarMark,
		&event.ShopCode,
		&event.State,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find shopping event %s: %w", shoppingEventID, err)
	}
	return &event, nil
}
