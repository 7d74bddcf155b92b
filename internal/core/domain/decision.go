package domain

// RuleDecision is the severity class of a single validation finding.
type RuleDecision string

const (
	DecisionBlock RuleDecision = "BLOCK"
	DecisionWarn  RuleDecision = "WARN"
)

// OwningRole names the actor class responsible for resolving a finding.
type OwningRole string

const (
	RoleAdmin       OwningRole = "admin"
	RoleMaintenance OwningRole = "maintenance"
	RoleSystem      OwningRole = "system"
)

// RuleResult is one blocking error or warning produced by a validation rule.
type RuleResult struct {
	Code       string       `json:"code"`
	Decision   RuleDecision `json:"decision"`
	Message    string       `json:"message"`
	OwningRole OwningRole   `json:"owningRole"`
}

// ValidationDecision is the structured outcome of evaluating the full rule
// battery for a proposed transition. It is ephemeral; callers persist nothing
// from it except their own downstream decisions.
type ValidationDecision struct {
	CanTransition  bool           `json:"canTransition"`
	BlockingErrors []RuleResult   `json:"blockingErrors"`
	Warnings       []RuleResult   `json:"warnings"`
	PassedChecks   []string       `json:"passedChecks"`
	Context        map[string]any `json:"context"`
}

// NewValidationDecision returns an empty decision that permits the transition
// until a blocker is recorded.
func NewValidationDecision() *ValidationDecision {
	return &ValidationDecision{
		CanTransition:  true,
		BlockingErrors: []RuleResult{},
		Warnings:       []RuleResult{},
		PassedChecks:   []string{},
		Context:        map[string]any{},
	}
}

// Block records a blocking error and flips CanTransition to false.
func (d *ValidationDecision) Block(code, message string, role OwningRole) {
	d.BlockingErrors = append(d.BlockingErrors, RuleResult{
		Code:       code,
		Decision:   DecisionBlock,
		Message:    message,
		OwningRole: role,
	})
	d.CanTransition = false
}

// Warn records a non-blocking warning. Warnings never affect CanTransition.
func (d *ValidationDecision) Warn(code, message string, role OwningRole) {
	d.Warnings = append(d.Warnings, RuleResult{
		Code:       code,
		Decision:   DecisionWarn,
		Message:    message,
		OwningRole: role,
	})
}

// Pass records a check that evaluated cleanly. Used by tests and UIs to show
// affirmative state, not just failures.
func (d *ValidationDecision) Pass(code string) {
	d.PassedChecks = append(d.PassedChecks, code)
}

// SetContext stores a contextual fact gathered during evaluation for the
// caller's downstream decisions.
func (d *ValidationDecision) SetContext(key string, value any) {
	d.Context[key] = value
}
