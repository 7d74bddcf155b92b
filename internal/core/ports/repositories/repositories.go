package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	TransitionRepo    TransitionRepositoryWithTx
	CaseRepo          InvoiceCaseRepositoryFacade
	CarRepo           CarRepository
	ShoppingRepo      ShoppingRepository
	EstimateRepo      EstimateRepository
	CutoffRepo        CutoffRepository
	SpecialLesseeRepo SpecialLesseeRepository
	TransitionRules   TransitionRuleRepository
	UserRepo          UserRepository
}
