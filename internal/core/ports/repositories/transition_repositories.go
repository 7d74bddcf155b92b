package repositories

import (
	"context"
	"time"

	"github.com/railfleet/fleet_mgmt_app/internal/core/domain"
)

// TransitionReader defines read operations over the transition ledger.
type TransitionReader interface {
	// FindLastTransition retrieves the most recently created transition for
	// the (processType, entityID) key, regardless of reversal status.
	// Returns apperrors.ErrNotFound when the entity has no history.
	FindLastTransition(ctx context.Context, processType domain.ProcessType, entityID string) (*domain.TransitionRecord, error)

	// ListTransitions retrieves a token-paginated page of an entity's history,
	// oldest first by created_at. Returns the records, a token for the next
	// page (nil on the last page), and an error.
	ListTransitions(ctx context.Context, processType domain.ProcessType, entityID string, limit int, nextToken *string) ([]domain.TransitionRecord, *string, error)

	// FindTransitionByID retrieves a single transition by its identifier.
	FindTransitionByID(ctx context.Context, transitionID string) (*domain.TransitionRecord, error)
}

// TransitionWriter defines the append and reversal-stamp operations. The
// ledger is append-only: rows are never updated except for the one-time
// reversal stamp and never deleted.
type TransitionWriter interface {
	// SaveTransition appends one row to the ledger.
	SaveTransition(ctx context.Context, record domain.TransitionRecord) error

	// StampTransitionReversed applies the one-time reversal stamp. Returns
	// apperrors.ErrNotFound if the row does not exist and
	// apperrors.ErrConflict if it is already stamped.
	StampTransitionReversed(ctx context.Context, transitionID string, reversedBy string, reversalTransitionID string, reversedAt time.Time) error

	// SaveReversal appends the reversal record and applies the reversal stamp
	// to the original transition in one atomic write, so the ledger can never
	// hold a reversal record whose original is unstamped. Returns
	// apperrors.ErrNotFound if the original row does not exist and
	// apperrors.ErrConflict if it is already stamped.
	SaveReversal(ctx context.Context, reversal domain.TransitionRecord, originalTransitionID string, reversedBy string) error
}

// TransitionRepositoryFacade combines all transition-ledger repository
// interfaces for clients that need full access.
type TransitionRepositoryFacade interface {
	TransitionReader
	TransitionWriter
}

// TransitionRepositoryWithTx extends TransitionRepositoryFacade with transaction capabilities
type TransitionRepositoryWithTx interface {
	TransitionRepositoryFacade
	TransactionManager
}
