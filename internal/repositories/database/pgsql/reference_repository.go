package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/railfleet/fleet_mgmt_app/internal/core/domain"
	portsrepo "github.com/railfleet/fleet_mgmt_app/internal/core/ports/repositories"
)

// PgxEstimateRepository reads repair estimate totals.
type PgxEstimateRepository struct {
	BaseRepository
}

func newPgxEstimateRepository(pool *pgxpool.Pool) portsrepo.EstimateRepository {
	return &PgxEstimateRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.EstimateRepository = (*PgxEstimateRepository)(nil)

// FindEstimateTotalByCaseID returns the linked estimate total for a case, or
// (nil, nil) when no estimate is linked.
func (r *PgxEstimateRepository) FindEstimateTotalByCaseID(ctx context.Context, caseID string) (*decimal.Decimal, error) {
	query := `
        SELECT estimate_total
        FROM repair_estimates
        WHERE case_id = $1;
    `
	var total decimal.Decimal
	err := r.Pool.QueryRow(ctx, query, caseID).Scan(&total)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find estimate for case %s: %w", caseID, err)
	}
	return &total, nil
}

// PgxCutoffRepository reads the billing cutoff table.
type PgxCutoffRepository struct {
	BaseRepository
}

func newPgxCutoffRepository(pool *pgxpool.Pool) portsrepo.CutoffRepository {
	return &PgxCutoffRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.CutoffRepository = (*PgxCutoffRepository)(nil)

// FindCutoffForDate returns the cutoff row whose billing period contains the
// invoice date, or (nil, nil) when none is configured for that period.
func (r *PgxCutoffRepository) FindCutoffForDate(ctx context.Context, invoiceDate time.Time) (*domain.BillingCutoff, error) {
	query := `
        SELECT period_start, period_end, entry_cutoff_at, approval_cutoff_at
        FROM billing_cutoffs
        WHERE period_start <= $1 AND period_end >= $1;
    `
	var cutoff domain.BillingCutoff
	err := r.Pool.QueryRow(ctx, query, invoiceDate).Scan(
		&cutoff.PeriodStart,
		&cutoff.PeriodEnd,
		&cutoff.EntryCutoffAt,
		&cutoff.ApprovalCutoffAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find cutoff for %s: %w", invoiceDate.Format("2006-01-02"), err)
	}
	return &cutoff, nil
}

// PgxSpecialLesseeRepository reads the special-lessee reference set.
type PgxSpecialLesseeRepository struct {
	BaseRepository
}

func newPgxSpecialLesseeRepository(pool *pgxpool.Pool) portsrepo.SpecialLesseeRepository {
	return &PgxSpecialLesseeRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.SpecialLesseeRepository = (*PgxSpecialLesseeRepository)(nil)

// ListSpecialLessees returns the active special-lessee names.
func (r *PgxSpecialLesseeRepository) ListSpecialLessees(ctx context.Context) ([]string, error) {
	query := `
        SELECT lessee_name
        FROM special_lessees
        WHERE is_active = TRUE;
    `
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query special lessees: %w", err)
	}
	defer rows.Close()

	names := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan special lessee row: %w", err)
		}
		names = append(names, name)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating special lessee rows: %w", rows.Err())
	}
	return names, nil
}

// PgxTransitionRuleRepository reads the configured allowed-transition table.
type PgxTransitionRuleRepository struct {
	BaseRepository
}

func newPgxTransitionRuleRepository(pool *pgxpool.Pool) portsrepo.TransitionRuleRepository {
	return &PgxTransitionRuleRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.TransitionRuleRepository = (*PgxTransitionRuleRepository)(nil)

// IsTransitionAllowed reports whether a (processType, fromState, toState) row
// exists in the transition rule table.
func (r *PgxTransitionRuleRepository) IsTransitionAllowed(ctx context.Context, processType domain.ProcessType, fromState, toState string) (bool, error) {
	query := `
        SELECT EXISTS(
            SELECT 1 FROM workflow_transition_rules
            WHERE process_type = $1 AND from_state = $2 AND to_state = $3
        );
    `
	var allowed bool
	if err := r.Pool.QueryRow(ctx, query, processType, fromState, toState).Scan(&allowed); err != nil {
		return false, fmt.Errorf("failed to check transition rule %s %s->%s: %w", processType, fromState, toState, err)
	}
	return allowed, nil
}
