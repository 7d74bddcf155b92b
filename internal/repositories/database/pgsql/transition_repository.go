package pgsql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/railfleet/fleet_mgmt_app/internal/apperrors"
	"github.com/railfleet/fleet_mgmt_app/internal/core/domain"
	portsrepo "github.com/railfleet/fleet_mgmt_app/internal/core/ports/repositories"
	"github.com/railfleet/fleet_mgmt_app/internal/utils/pagination"
)

type PgxTransitionRepository struct {
	BaseRepository
}

func newPgxTransitionRepository(pool *pgxpool.Pool) portsrepo.TransitionRepositoryWithTx {
	return &PgxTransitionRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.TransitionRepositoryWithTx = (*PgxTransitionRepository)(nil)

// pgxQuerier is satisfied by both *pgxpool.Pool and pgx.Tx, so the same
// statement helpers can run standalone or inside a transaction.
type pgxQuerier interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const transitionColumns = `
	transition_id, process_type, entity_id, entity_number, from_state, to_state,
	is_reversible, side_effects, actor_id, notes,
	reversed_at, reversed_by, reversed_by_transition_id, created_at`

func scanTransition(row pgx.Row) (*domain.TransitionRecord, error) {
	var record domain.TransitionRecord
	var sideEffectsJSON []byte
	err := row.Scan(
		&record.TransitionID,
		&record.ProcessType,
		&record.EntityID,
		&record.EntityNumber,
		&record.FromState,
		&record.ToState,
		&record.IsReversible,
		&sideEffectsJSON,
		&record.ActorID,
		&record.Notes,
		&record.ReversedAt,
		&record.ReversedBy,
		&record.ReversedByTransitionID,
		&record.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if len(sideEffectsJSON) > 0 {
		if err := json.Unmarshal(sideEffectsJSON, &record.SideEffects); err != nil {
			return nil, fmt.Errorf("failed to decode side effects for transition %s: %w", record.TransitionID, err)
		}
	}
	return &record, nil
}

// insertTransition appends one row to the ledger through the given executor.
func insertTransition(ctx context.Context, db pgxQuerier, record domain.TransitionRecord) error {
	sideEffectsJSON, err := json.Marshal(record.SideEffects)
	if err != nil {
		return fmt.Errorf("failed to encode side effects: %w", err)
	}

	query := `
        INSERT INTO state_transitions (
            transition_id, process_type, entity_id, entity_number, from_state, to_state,
            is_reversible, side_effects, actor_id, notes, created_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
    `
	_, err = db.Exec(ctx, query,
		record.TransitionID,
		record.ProcessType,
		record.EntityID,
		record.EntityNumber,
		record.FromState,
		record.ToState,
		record.IsReversible,
		sideEffectsJSON,
		record.ActorID,
		record.Notes,
		record.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save transition: %w", err)
	}
	return nil
}

// applyReversalStamp writes the one-time reversal stamp through the given
// executor. The reversed_at IS NULL guard makes the stamp first-writer-wins:
// a second attempt affects zero rows and is reported as a conflict.
func applyReversalStamp(ctx context.Context, db pgxQuerier, transitionID string, reversedBy string, reversalTransitionID string, reversedAt time.Time) error {
	query := `
        UPDATE state_transitions
        SET reversed_at = $1, reversed_by = $2, reversed_by_transition_id = $3
        WHERE transition_id = $4 AND reversed_at IS NULL;
    `
	cmdTag, err := db.Exec(ctx, query, reversedAt, reversedBy, reversalTransitionID, transitionID)
	if err != nil {
		return fmt.Errorf("failed to stamp transition %s as reversed: %w", transitionID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		var exists bool
		if err := db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM state_transitions WHERE transition_id = $1)`, transitionID).Scan(&exists); err != nil {
			return fmt.Errorf("failed to check transition %s: %w", transitionID, err)
		}
		if !exists {
			return fmt.Errorf("transition %s not found: %w", transitionID, apperrors.ErrNotFound)
		}
		return fmt.Errorf("transition %s already reversed: %w", transitionID, apperrors.ErrConflict)
	}
	return nil
}

// SaveTransition appends one row to the ledger.
func (r *PgxTransitionRepository) SaveTransition(ctx context.Context, record domain.TransitionRecord) error {
	return insertTransition(ctx, r.Pool, record)
}

// StampTransitionReversed applies the one-time reversal stamp.
func (r *PgxTransitionRepository) StampTransitionReversed(ctx context.Context, transitionID string, reversedBy string, reversalTransitionID string, reversedAt time.Time) error {
	return applyReversalStamp(ctx, r.Pool, transitionID, reversedBy, reversalTransitionID, reversedAt)
}

// SaveReversal appends the reversal record and stamps the original transition
// within a single database transaction, so a reversal record can never exist
// without its stamp or vice versa.
func (r *PgxTransitionRepository) SaveReversal(ctx context.Context, reversal domain.TransitionRecord, originalTransitionID string, reversedBy string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	// Ignored if the transaction commits.
	defer r.Rollback(ctx, tx)

	if err := insertTransition(ctx, tx, reversal); err != nil {
		return fmt.Errorf("failed to save reversal of transition %s: %w", originalTransitionID, err)
	}
	if err := applyReversalStamp(ctx, tx, originalTransitionID, reversedBy, reversal.TransitionID, reversal.CreatedAt); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// FindLastTransition retrieves the most recently created transition for the
// (processType, entityID) key.
func (r *PgxTransitionRepository) FindLastTransition(ctx context.Context, processType domain.ProcessType, entityID string) (*domain.TransitionRecord, error) {
	query := `
        SELECT ` + transitionColumns + `
        FROM state_transitions
        WHERE process_type = $1 AND entity_id = $2
        ORDER BY created_at DESC, transition_id DESC
        LIMIT 1;
    `
	record, err := scanTransition(r.Pool.QueryRow(ctx, query, processType, entityID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find last transition for %s %s: %w", processType, entityID, err)
	}
	return record, nil
}

// FindTransitionByID retrieves a single transition by its identifier.
func (r *PgxTransitionRepository) FindTransitionByID(ctx context.Context, transitionID string) (*domain.TransitionRecord, error) {
	query := `
        SELECT ` + transitionColumns + `
        FROM state_transitions
        WHERE transition_id = $1;
    `
	record, err := scanTransition(r.Pool.QueryRow(ctx, query, transitionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transition %s: %w", transitionID, err)
	}
	return record, nil
}

// ListTransitions retrieves a token-paginated page of an entity's history,
// oldest first, using keyset pagination on (created_at, transition_id).
func (r *PgxTransitionRepository) ListTransitions(ctx context.Context, processType domain.ProcessType, entityID string, limit int, nextToken *string) ([]domain.TransitionRecord, *string, error) {
	if limit <= 0 {
		limit = 50
	}

	args := []any{processType, entityID}
	query := `
        SELECT ` + transitionColumns + `
        FROM state_transitions
        WHERE process_type = $1 AND entity_id = $2`

	if nextToken != nil && *nextToken != "" {
		lastCreatedAt, lastID, err := pagination.DecodeCursorToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: invalid nextToken: %s", apperrors.ErrValidation, err)
		}
		query += ` AND (created_at, transition_id) > ($3, $4)`
		args = append(args, lastCreatedAt, lastID)
	}

	// Fetch one extra row to learn whether another page exists.
	query += fmt.Sprintf(`
        ORDER BY created_at ASC, transition_id ASC
        LIMIT $%d;`, len(args)+1)
	args = append(args, limit+1)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query transitions for %s %s: %w", processType, entityID, err)
	}
	defer rows.Close()

	records := []domain.TransitionRecord{}
	for rows.Next() {
		record, err := scanTransition(rows)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan transition row: %w", err)
		}
		records = append(records, *record)
	}
	if rows.Err() != nil {
		return nil, nil, fmt.Errorf("error iterating transition rows: %w", rows.Err())
	}

	var nextTokenVal *string
	if len(records) > limit {
		records = records[:limit]
		last := records[len(records)-1]
		token := pagination.EncodeCursorToken(last.CreatedAt, last.TransitionID)
		nextTokenVal = &token
	}
	return records, nextTokenVal, nil
}
