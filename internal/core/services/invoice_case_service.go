package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/railfleet/fleet_mgmt_app/internal/apperrors"
	"github.com/railfleet/fleet_mgmt_app/internal/core/domain"
	portsrepo "github.com/railfleet/fleet_mgmt_app/internal/core/ports/repositories"
	portssvc "github.com/railfleet/fleet_mgmt_app/internal/core/ports/services"
	"github.com/railfleet/fleet_mgmt_app/internal/middleware"
)

// invoiceCaseService drives the invoice case workflow: validate, mutate,
// record in the ledger.
type invoiceCaseService struct {
	caseRepo   portsrepo.InvoiceCaseRepositoryFacade
	validation portssvc.ValidationSvcFacade
	ledger     portssvc.TransitionLedgerSvcFacade
}

// NewInvoiceCaseService creates a new invoice case service.
func NewInvoiceCaseService(
	caseRepo portsrepo.InvoiceCaseRepositoryFacade,
	validation portssvc.ValidationSvcFacade,
	ledger portssvc.TransitionLedgerSvcFacade,
) portssvc.InvoiceCaseSvcFacade {
	return &invoiceCaseService{
		caseRepo:   caseRepo,
		validation: validation,
		ledger:     ledger,
	}
}

var _ portssvc.InvoiceCaseSvcFacade = (*invoiceCaseService)(nil)

// GetCaseByID retrieves a case with its attachments and car marks.
func (s *invoiceCaseService) GetCaseByID(ctx context.Context, caseID string) (*domain.InvoiceCase, []domain.CaseAttachment, []string, error) {
	invoiceCase, err := s.caseRepo.FindCaseByID(ctx, caseID)
	if err != nil {
		return nil, nil, nil, err
	}
	attachments, err := s.caseRepo.FindAttachmentsByCaseID(ctx, caseID)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to fetch attachments for case %s: %w", caseID, err)
	}
	carMarks, err := s.caseRepo.FindCarMarksByCaseID(ctx, caseID)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to fetch car marks for case %s: %w", caseID, err)
	}
	return invoiceCase, attachments, carMarks, nil
}

// ListCases retrieves a token-paginated list of cases.
func (s *invoiceCaseService) ListCases(ctx context.Context, limit int, nextToken *string) ([]domain.InvoiceCase, *string, error) {
	if limit <= 0 {
		limit = 50
	}
	return s.caseRepo.ListCases(ctx, limit, nextToken)
}

// TransitionCase runs the rule battery for the proposed move and, when no
// rule blocks it, updates the case and records the transition. The ledger
// write is best effort: the workflow mutation is the source of truth and a
// failed audit append must not roll it back.
func (s *invoiceCaseService) TransitionCase(ctx context.Context, caseID string, targetState domain.CaseWorkflowState, userID string) (*domain.ValidationDecision, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	invoiceCase, err := s.caseRepo.FindCaseByID(ctx, caseID)
	if err != nil {
		return nil, err
	}

	decision, err := s.validation.ValidateInvoiceCase(ctx, caseID, targetState)
	if err != nil {
		return nil, fmt.Errorf("failed to validate case %s: %w", caseID, err)
	}
	if !decision.CanTransition {
		logger.Info("Case transition blocked",
			slog.String("case_id", caseID),
			slog.String("target_state", string(targetState)),
			slog.Int("blockers", len(decision.BlockingErrors)),
		)
		return decision, nil
	}

	now := time.Now().UTC()
	if err := s.caseRepo.UpdateCaseWorkflowState(ctx, caseID, targetState, userID, now); err != nil {
		return nil, fmt.Errorf("failed to update case %s state: %w", caseID, err)
	}

	fromState := string(invoiceCase.WorkflowState)
	// A release is final; everything earlier stays reversible.
	reversible := targetState != domain.CaseStateReleased
	_, err = s.ledger.LogTransition(ctx, domain.TransitionInput{
		ProcessType:  domain.ProcessInvoiceCase,
		EntityID:     caseID,
		EntityNumber: invoiceCase.CaseNumber,
		FromState:    &fromState,
		ToState:      string(targetState),
		IsReversible: reversible,
		ActorID:      &userID,
	})
	if err != nil {
		// The state change already happened; surface the gap loudly but do
		// not fail the request.
		logger.Error("Case transitioned but ledger write failed",
			slog.String("error", err.Error()),
			slog.String("case_id", caseID),
			slog.String("from_state", fromState),
			slog.String("to_state", string(targetState)),
		)
	}

	logger.Info("Case transitioned",
		slog.String("case_id", caseID),
		slog.String("from_state", fromState),
		slog.String("to_state", string(targetState)),
	)
	return decision, nil
}

// RevertLastTransition undoes the case's most recent recorded transition when
// the revert checker allows it. The compensating move is itself recorded as
// an irreversible forward transition, and the original row receives the
// one-time reversal stamp linking the two.
func (s *invoiceCaseService) RevertLastTransition(ctx context.Context, caseID string, userID string) (*domain.RevertCheck, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	last, err := s.ledger.GetLastTransition(ctx, domain.ProcessInvoiceCase, caseID)
	if err != nil {
		return nil, err
	}

	check, err := s.ledger.CanRevert(ctx, domain.ProcessInvoiceCase, caseID)
	if err != nil {
		return nil, fmt.Errorf("failed to check revert eligibility for case %s: %w", caseID, err)
	}
	if !check.Allowed {
		return check, nil
	}
	if check.TransitionID != last.TransitionID {
		// CanRevert re-reads the ledger; a transition landing between the two
		// reads would have us stamp one row while restoring another's prior
		// state.
		return nil, fmt.Errorf("%w: case %s transitioned while the revert was being evaluated", apperrors.ErrConflict, caseID)
	}
	if check.PreviousState == nil {
		// An allowed revert with no recorded prior state should not happen;
		// refuse rather than guess.
		return nil, fmt.Errorf("%w: transition %s has no recorded prior state", apperrors.ErrConflict, last.TransitionID)
	}

	now := time.Now().UTC()
	previousState := domain.CaseWorkflowState(*check.PreviousState)
	if err := s.caseRepo.UpdateCaseWorkflowState(ctx, caseID, previousState, userID, now); err != nil {
		return nil, fmt.Errorf("failed to restore case %s to %s: %w", caseID, previousState, err)
	}

	reversalFrom := last.ToState
	notes := fmt.Sprintf("Reversal of transition %s", last.TransitionID)
	// The reversal record and the stamp on the original land in one atomic
	// write; the write itself stays best effort because the case mutation is
	// the source of truth.
	_, err = s.ledger.LogReversal(ctx, domain.TransitionInput{
		ProcessType:  domain.ProcessInvoiceCase,
		EntityID:     caseID,
		EntityNumber: last.EntityNumber,
		FromState:    &reversalFrom,
		ToState:      *check.PreviousState,
		ActorID:      &userID,
		Notes:        &notes,
	}, last.TransitionID, userID)
	if err != nil {
		logger.Error("Case reverted but reversal ledger write failed",
			slog.String("error", err.Error()),
			slog.String("case_id", caseID),
			slog.String("restored_state", *check.PreviousState),
		)
		return check, nil
	}

	logger.Info("Case transition reverted",
		slog.String("case_id", caseID),
		slog.String("reverted_transition_id", last.TransitionID),
		slog.String("restored_state", *check.PreviousState),
	)
	return check, nil
}
