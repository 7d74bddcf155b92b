package services

import (
	"context"

	"github.com/railfleet/fleet_mgmt_app/internal/core/domain"
)

// InvoiceCaseSvcFacade exposes the invoice case workflow.
type InvoiceCaseSvcFacade interface {
	// GetCaseByID retrieves a case with its attachments and car marks.
	GetCaseByID(ctx context.Context, caseID string) (*domain.InvoiceCase, []domain.CaseAttachment, []string, error)

	// ListCases retrieves a token-paginated list of cases.
	ListCases(ctx context.Context, limit int, nextToken *string) ([]domain.InvoiceCase, *string, error)

	// TransitionCase validates the proposed move and, when no rule blocks it,
	// updates the case state and records the transition in the ledger. The
	// returned decision always reflects the full rule evaluation.
	TransitionCase(ctx context.Context, caseID string, targetState domain.CaseWorkflowState, userID string) (*domain.ValidationDecision, error)

	// RevertLastTransition undoes the case's most recent recorded transition
	// when the revert checker allows it.
	RevertLastTransition(ctx context.Context, caseID string, userID string) (*domain.RevertCheck, error)
}
