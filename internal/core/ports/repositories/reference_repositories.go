package repositories

import (
	"context"
	"time"

	"github.com/railfleet/fleet_mgmt_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CarRepository defines read operations against the fleet and remark tables.
type CarRepository interface {
	// FindCarByMark retrieves a car by its reporting mark. Returns
	// apperrors.ErrNotFound when no car carries the mark.
	FindCarByMark(ctx context.Context, mark string) (*domain.FleetCar, error)

	// FindRemarkedMark resolves an old reporting mark to the mark that
	// replaced it. Returns apperrors.ErrNotFound when no remark exists.
	FindRemarkedMark(ctx context.Context, oldMark string) (string, error)
}

// ShoppingRepository defines read operations for shopping events.
type ShoppingRepository interface {
	// FindShoppingEventByID retrieves a shopping event by its identifier.
	FindShoppingEventByID(ctx context.Context, shoppingEventID string) (*domain.ShoppingEvent, error)
}

// EstimateRepository defines read access to repair estimate totals.
type EstimateRepository interface {
	// FindEstimateTotalByCaseID returns the linked estimate total for a case,
	// or (nil, nil) when the case has no estimate.
	FindEstimateTotalByCaseID(ctx context.Context, caseID string) (*decimal.Decimal, error)
}

// CutoffRepository defines read access to the billing cutoff table.
type CutoffRepository interface {
	// FindCutoffForDate returns the cutoff row whose billing period contains
	// the given invoice date, or (nil, nil) when no cutoff is configured.
	FindCutoffForDate(ctx context.Context, invoiceDate time.Time) (*domain.BillingCutoff, error)
}

// SpecialLesseeRepository defines read access to the special-lessee set.
type SpecialLesseeRepository interface {
	// ListSpecialLessees returns the active special-lessee names.
	ListSpecialLessees(ctx context.Context) ([]string, error)
}

// TransitionRuleRepository defines read access to the configured
// allowed-transition table consulted by the state-machine legality rule.
type TransitionRuleRepository interface {
	// IsTransitionAllowed reports whether a (processType, fromState, toState)
	// row exists in the transition rule table.
	IsTransitionAllowed(ctx context.Context, processType domain.ProcessType, fromState, toState string) (bool, error)
}
