package services

import (
	"context"

	"github.com/railfleet/fleet_mgmt_app/internal/core/domain"
)

// EntityStateReader is the narrow per-process-type hook the generic ledger
// needs: given an entity ID it reports the entity's current observed state.
// Each domain workflow registers one for its process type; the ledger and
// revert checker depend only on this interface, never on concrete tables.
type EntityStateReader interface {
	// CurrentState returns the entity's current observed state.
	CurrentState(ctx context.Context, entityID string) (string, error)

	// InitialState returns the state entities of this process type are
	// created in. Used to detect side effects that have advanced.
	InitialState() string
}

// TransitionLedgerSvcFacade exposes the transition ledger operations.
type TransitionLedgerSvcFacade interface {
	// LogTransition appends one record to the ledger and returns the
	// persisted record including generated ID and timestamp. It performs no
	// legality checks on the states.
	LogTransition(ctx context.Context, input domain.TransitionInput) (*domain.TransitionRecord, error)

	// GetLastTransition returns the most recently recorded transition for the
	// key, regardless of reversal status, or apperrors.ErrNotFound.
	GetLastTransition(ctx context.Context, processType domain.ProcessType, entityID string) (*domain.TransitionRecord, error)

	// GetTransitionHistory returns a token-paginated page of the entity's
	// history, oldest first.
	GetTransitionHistory(ctx context.Context, processType domain.ProcessType, entityID string, limit int, nextToken *string) ([]domain.TransitionRecord, *string, error)

	// CanRevert evaluates whether the entity's last transition can be safely
	// undone. The check never mutates state; any doubt denies the revert.
	CanRevert(ctx context.Context, processType domain.ProcessType, entityID string) (*domain.RevertCheck, error)

	// LogReversal appends the compensating forward record and applies the
	// one-time reversal stamp to the transition it reverses in one atomic
	// write. The reversal record itself is never reversible. It trusts that
	// the caller ran CanRevert and performed the compensating mutation first.
	LogReversal(ctx context.Context, input domain.TransitionInput, originalTransitionID string, userID string) (*domain.TransitionRecord, error)

	// MarkReverted applies the one-time reversal stamp linking the original
	// transition to the forward record that reversed it, without appending a
	// record. Used when the compensating record was already written.
	MarkReverted(ctx context.Context, transitionID string, userID string, reversalTransitionID string) error

	// RegisterStateReader installs the current-state hook for a process type.
	RegisterStateReader(processType domain.ProcessType, reader EntityStateReader)
}
