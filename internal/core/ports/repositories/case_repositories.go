package repositories

import (
	"context"
	"time"

	"github.com/railfleet/fleet_mgmt_app/internal/core/domain"
)

// InvoiceCaseReader defines read operations for invoice case data.
type InvoiceCaseReader interface {
	// FindCaseByID retrieves a specific invoice case by its identifier.
	FindCaseByID(ctx context.Context, caseID string) (*domain.InvoiceCase, error)

	// FindAttachmentsByCaseID retrieves all attachments for a case, oldest first.
	FindAttachmentsByCaseID(ctx context.Context, caseID string) ([]domain.CaseAttachment, error)

	// FindCarMarksByCaseID retrieves the reporting marks named on a case, in
	// the order they were entered.
	FindCarMarksByCaseID(ctx context.Context, caseID string) ([]string, error)

	// ListCases retrieves a token-paginated list of cases, newest first.
	ListCases(ctx context.Context, limit int, nextToken *string) ([]domain.InvoiceCase, *string, error)
}

// InvoiceCaseWriter defines write operations for invoice case data.
type InvoiceCaseWriter interface {
	// UpdateCaseWorkflowState moves a case to a new workflow state.
	UpdateCaseWorkflowState(ctx context.Context, caseID string, state domain.CaseWorkflowState, updatedBy string, updatedAt time.Time) error
}

// InvoiceCaseRepositoryFacade combines all invoice-case repository interfaces.
type InvoiceCaseRepositoryFacade interface {
	InvoiceCaseReader
	InvoiceCaseWriter
}
