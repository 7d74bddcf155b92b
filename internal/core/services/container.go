package services

import (
	"time"

	"github.com/railfleet/fleet_mgmt_app/internal/core/domain"
	portsrepo "github.com/railfleet/fleet_mgmt_app/internal/core/ports/repositories"
	portssvc "github.com/railfleet/fleet_mgmt_app/internal/core/ports/services"
)

// NewServiceContainer wires every service against the repository provider and
// registers the per-process-type state readers the ledger needs.
func NewServiceContainer(repos *portsrepo.RepositoryProvider, specialLesseeTTL time.Duration) *portssvc.ServiceContainer {
	ledger := NewTransitionLedgerService(repos.TransitionRepo)
	ledger.RegisterStateReader(domain.ProcessInvoiceCase, NewInvoiceCaseStateReader(repos.CaseRepo))
	ledger.RegisterStateReader(domain.ProcessShoppingEvent, NewShoppingEventStateReader(repos.ShoppingRepo))

	specialLessees := NewSpecialLesseeCache(repos.SpecialLesseeRepo, specialLesseeTTL)
	validation := NewValidationService(
		repos.CaseRepo,
		repos.CarRepo,
		repos.ShoppingRepo,
		repos.EstimateRepo,
		repos.CutoffRepo,
		repos.TransitionRules,
		specialLessees,
	)

	return &portssvc.ServiceContainer{
		User:        NewUserService(repos.UserRepo),
		Ledger:      ledger,
		Validation:  validation,
		InvoiceCase: NewInvoiceCaseService(repos.CaseRepo, validation, ledger),
	}
}
