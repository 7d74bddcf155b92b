package services

import (
	"context"

	"github.com/railfleet/fleet_mgmt_app/internal/core/domain"
)

// SpecialLesseeProvider answers whether a lessee is on the special-approval
// list. Implemented by a read-through cache over the reference table.
type SpecialLesseeProvider interface {
	IsSpecialLessee(ctx context.Context, lesseeName string) (bool, error)
}

// ValidationSvcFacade exposes the rule-based transition gate.
type ValidationSvcFacade interface {
	// ValidateInvoiceCase evaluates the full rule battery for moving the case
	// to targetState. Apart from the upfront case-existence check no rule
	// short-circuits another, so the decision carries the complete set of
	// problems in one call.
	ValidateInvoiceCase(ctx context.Context, caseID string, targetState domain.CaseWorkflowState) (*domain.ValidationDecision, error)
}
