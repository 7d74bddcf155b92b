package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/railfleet/fleet_mgmt_app/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every pgx-backed repository against the shared
// connection pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		TransitionRepo:    newPgxTransitionRepository(dbPool),
		CaseRepo:          newPgxInvoiceCaseRepository(dbPool),
		CarRepo:           newPgxCarRepository(dbPool),
		ShoppingRepo:      newPgxShoppingRepository(dbPool),
		EstimateRepo:      newPgxEstimateRepository(dbPool),
		CutoffRepo:        newPgxCutoffRepository(dbPool),
		SpecialLesseeRepo: newPgxSpecialLesseeRepository(dbPool),
		TransitionRules:   newPgxTransitionRuleRepository(dbPool),
		UserRepo:          newPgxUserRepository(dbPool),
	}
}
