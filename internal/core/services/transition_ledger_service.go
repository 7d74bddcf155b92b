package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/railfleet/fleet_mgmt_app/internal/apperrors"
	"github.com/railfleet/fleet_mgmt_app/internal/core/domain"
	portsrepo "github.com/railfleet/fleet_mgmt_app/internal/core/ports/repositories"
	portssvc "github.com/railfleet/fleet_mgmt_app/internal/core/ports/services"
	"github.com/railfleet/fleet_mgmt_app/internal/middleware"
)

var (
	ErrProcessTypeMissing = errors.New("transition process type is required")
	ErrEntityIDMissing    = errors.New("transition entity ID is required")
	ErrToStateMissing     = errors.New("transition target state is required")
)

// transitionLedgerService implements the append-only transition ledger and
// the revert-eligibility checker on top of it.
type transitionLedgerService struct {
	transitionRepo portsrepo.TransitionRepositoryFacade

	mu           sync.RWMutex
	stateReaders map[domain.ProcessType]portssvc.EntityStateReader
}

// NewTransitionLedgerService creates a new transition ledger service.
func NewTransitionLedgerService(transitionRepo portsrepo.TransitionRepositoryFacade) portssvc.TransitionLedgerSvcFacade {
	return &transitionLedgerService{
		transitionRepo: transitionRepo,
		stateReaders:   make(map[domain.ProcessType]portssvc.EntityStateReader),
	}
}

var _ portssvc.TransitionLedgerSvcFacade = (*transitionLedgerService)(nil)

// RegisterStateReader installs the current-state hook for a process type.
// Registration happens at wiring time, before the service handles requests.
func (s *transitionLedgerService) RegisterStateReader(processType domain.ProcessType, reader portssvc.EntityStateReader) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stateReaders[processType] = reader
}

func (s *transitionLedgerService) stateReader(processType domain.ProcessType) (portssvc.EntityStateReader, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	reader, ok := s.stateReaders[processType]
	return reader, ok
}

// newRecord validates the caller-supplied fields and builds the ledger row,
// assigning the generated identifier and timestamp.
func (s *transitionLedgerService) newRecord(input domain.TransitionInput) (domain.TransitionRecord, error) {
	if input.ProcessType == "" {
		return domain.TransitionRecord{}, fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrProcessTypeMissing)
	}
	if input.EntityID == "" {
		return domain.TransitionRecord{}, fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrEntityIDMissing)
	}
	if input.ToState == "" {
		return domain.TransitionRecord{}, fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrToStateMissing)
	}

	return domain.TransitionRecord{
		TransitionID: uuid.NewString(),
		ProcessType:  input.ProcessType,
		EntityID:     input.EntityID,
		EntityNumber: input.EntityNumber,
		FromState:    input.FromState,
		ToState:      input.ToState,
		IsReversible: input.IsReversible,
		SideEffects:  input.SideEffects,
		ActorID:      input.ActorID,
		Notes:        input.Notes,
		CreatedAt:    time.Now().UTC(),
	}, nil
}

// LogTransition appends one record to the ledger. It performs no legality
// checks on the states; that is the validation engine's job, run by the
// domain workflow before it mutated anything.
func (s *transitionLedgerService) LogTransition(ctx context.Context, input domain.TransitionInput) (*domain.TransitionRecord, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	record, err := s.newRecord(input)
	if err != nil {
		return nil, err
	}

	if err := s.transitionRepo.SaveTransition(ctx, record); err != nil {
		logger.Error("Failed to save transition", slog.String("error", err.Error()), slog.String("process_type", string(input.ProcessType)), slog.String("entity_id", input.EntityID))
		return nil, fmt.Errorf("failed to save transition: %w", err)
	}

	logger.Info("Transition recorded",
		slog.String("transition_id", record.TransitionID),
		slog.String("process_type", string(record.ProcessType)),
		slog.String("entity_id", record.EntityID),
		slog.String("to_state", record.ToState),
	)
	return &record, nil
}

// GetLastTransition returns the most recently recorded transition for the
// key, regardless of reversal status. Callers needing the last *active*
// transition must inspect ReversedAt themselves; CanRevert does exactly that.
func (s *transitionLedgerService) GetLastTransition(ctx context.Context, processType domain.ProcessType, entityID string) (*domain.TransitionRecord, error) {
	record, err := s.transitionRepo.FindLastTransition(ctx, processType, entityID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			middleware.GetLoggerFromCtx(ctx).Error("Failed to find last transition", slog.String("error", err.Error()), slog.String("entity_id", entityID))
		}
		return nil, err
	}
	return record, nil
}

// GetTransitionHistory returns a token-paginated page of an entity's history,
// oldest first by created_at.
func (s *transitionLedgerService) GetTransitionHistory(ctx context.Context, processType domain.ProcessType, entityID string, limit int, nextToken *string) ([]domain.TransitionRecord, *string, error) {
	if limit <= 0 {
		limit = 50
	}

	records, token, err := s.transitionRepo.ListTransitions(ctx, processType, entityID, limit, nextToken)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to list transitions", slog.String("error", err.Error()), slog.String("entity_id", entityID))
		return nil, nil, fmt.Errorf("failed to retrieve transition history: %w", err)
	}
	return records, token, nil
}

// CanRevert evaluates whether the entity's last transition can be safely
// undone. Reversal is conservative: any doubt denies it. The check never
// mutates state, and it re-reads current state on every call rather than
// caching, so concurrent drift between reads resolves to a denial.
func (s *transitionLedgerService) CanRevert(ctx context.Context, processType domain.ProcessType, entityID string) (*domain.RevertCheck, error) {
	check := &domain.RevertCheck{Blockers: []string{}}

	last, err := s.transitionRepo.FindLastTransition(ctx, processType, entityID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			check.Blockers = append(check.Blockers, "No transition history found.")
			return check, nil
		}
		return nil, fmt.Errorf("failed to fetch last transition: %w", err)
	}

	check.TransitionID = last.TransitionID

	if last.IsReversed() {
		check.Blockers = append(check.Blockers, "This transition has already been reversed.")
	}
	if !last.IsReversible {
		check.Blockers = append(check.Blockers, "This transition is marked as irreversible.")
	}

	reader, ok := s.stateReader(processType)
	if !ok {
		check.Blockers = append(check.Blockers, fmt.Sprintf("No state reader registered for process type %q; cannot verify current state.", processType))
	} else {
		currentState, err := reader.CurrentState(ctx, entityID)
		if err != nil {
			return nil, fmt.Errorf("failed to read current state of %s %s: %w", processType, entityID, err)
		}
		if currentState != last.ToState {
			check.Blockers = append(check.Blockers, fmt.Sprintf("Entity has moved to %s since this transition was recorded.", currentState))
		}
	}

	for _, se := range last.SideEffects {
		// Only spawned records carry an originating-state assumption to
		// verify; modified and deactivated effects do not.
		if se.Type != domain.SideEffectCreated {
			continue
		}
		seReader, ok := s.stateReader(se.EntityType)
		if !ok {
			check.Blockers = append(check.Blockers, fmt.Sprintf("Cannot verify side effect %s %s: no state reader registered.", se.EntityType, se.EntityID))
			continue
		}
		seState, err := seReader.CurrentState(ctx, se.EntityID)
		if err != nil {
			return nil, fmt.Errorf("failed to read current state of side effect %s %s: %w", se.EntityType, se.EntityID, err)
		}
		if seState != seReader.InitialState() {
			check.Blockers = append(check.Blockers, fmt.Sprintf("Side effect %s %s has advanced to %s.", se.EntityType, se.EntityID, seState))
		}
	}

	if len(check.Blockers) == 0 {
		check.Allowed = true
		check.PreviousState = last.FromState
	}
	return check, nil
}

// LogReversal appends the compensating forward record and stamps the original
// transition in one atomic repository write, so the ledger can never hold a
// reversal record whose original is unstamped. A reversal is never itself
// reversible, whatever the input says.
func (s *transitionLedgerService) LogReversal(ctx context.Context, input domain.TransitionInput, originalTransitionID string, userID string) (*domain.TransitionRecord, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if originalTransitionID == "" {
		return nil, fmt.Errorf("%w: original transition ID is required", apperrors.ErrValidation)
	}
	record, err := s.newRecord(input)
	if err != nil {
		return nil, err
	}
	record.IsReversible = false

	if err := s.transitionRepo.SaveReversal(ctx, record, originalTransitionID, userID); err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			logger.Warn("Transition already stamped as reversed", slog.String("transition_id", originalTransitionID))
		} else if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to save reversal", slog.String("error", err.Error()), slog.String("transition_id", originalTransitionID))
		}
		return nil, err
	}

	logger.Info("Transition reversed",
		slog.String("transition_id", originalTransitionID),
		slog.String("reversal_transition_id", record.TransitionID),
		slog.String("restored_state", record.ToState),
	)
	return &record, nil
}

// MarkReverted applies the one-time reversal stamp to the named transition,
// linking it to the forward record that reversed it. It does not re-run
// CanRevert; callers are expected to have run that check and performed the
// compensating mutation already.
func (s *transitionLedgerService) MarkReverted(ctx context.Context, transitionID string, userID string, reversalTransitionID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	err := s.transitionRepo.StampTransitionReversed(ctx, transitionID, userID, reversalTransitionID, time.Now().UTC())
	if err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			logger.Warn("Transition already stamped as reversed", slog.String("transition_id", transitionID))
		} else if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to stamp transition as reversed", slog.String("error", err.Error()), slog.String("transition_id", transitionID))
		}
		return err
	}

	logger.Info("Transition marked reverted",
		slog.String("transition_id", transitionID),
		slog.String("reversal_transition_id", reversalTransitionID),
	)
	return nil
}
