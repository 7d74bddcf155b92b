package services

import (
	"context"

	"github.com/railfleet/fleet_mgmt_app/internal/core/domain"
	portsrepo "github.com/railfleet/fleet_mgmt_app/internal/core/ports/repositories"
	portssvc "github.com/railfleet/fleet_mgmt_app/internal/core/ports/services"
)

// invoiceCaseStateReader adapts the case repository to the ledger's
// current-state hook.
type invoiceCaseStateReader struct {
	caseRepo portsrepo.InvoiceCaseReader
}

// NewInvoiceCaseStateReader creates the state reader for invoice cases.
func NewInvoiceCaseStateReader(caseRepo portsrepo.InvoiceCaseReader) portssvc.EntityStateReader {
	return &invoiceCaseStateReader{caseRepo: caseRepo}
}

func (r *invoiceCaseStateReader) CurrentState(ctx context.Context, entityID string) (string, error) {
	c, err := r.caseRepo.FindCaseByID(ctx, entityID)
	if err != nil {
		return "", err
	}
	return string(c.WorkflowState), nil
}

func (r *invoiceCaseStateReader) InitialState() string {
	return string(domain.CaseInitialState)
}

// shoppingEventStateReader adapts the shopping repository to the ledger's
// current-state hook.
type shoppingEventStateReader struct {
	shoppingRepo portsrepo.ShoppingRepository
}

// NewShoppingEventStateReader creates the state reader for shopping events.
func NewShoppingEventStateReader(shoppingRepo portsrepo.ShoppingRepository) portssvc.EntityStateReader {
	return &shoppingEventStateReader{shoppingRepo: shoppingRepo}
}

func (r *shoppingEventStateReader) CurrentState(ctx context.Context, entityID string) (string, error) {
	event, err := r.shoppingRepo.FindShoppingEventByID(ctx, entityID)
	if err != nil {
		return "", err
	}
	return string(event.State), nil
}

func (r *shoppingEventStateReader) InitialState() string {
	return string(domain.ShoppingInitialState)
}
