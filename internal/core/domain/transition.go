package domain

import "time"

// ProcessType identifies which domain state machine a ledger entry belongs to.
// Entities are never typed at the schema level; ProcessType plus EntityID form
// the logical key of a transition history.
type ProcessType string

const (
	ProcessInvoiceCase      ProcessType = "invoice_case"
	ProcessShoppingEvent    ProcessType = "shopping_event"
	ProcessCarLeaseTransfer ProcessType = "car_lease_transition"
	ProcessAllocation       ProcessType = "allocation"
)

// SideEffectType classifies what a transition did to a downstream record.
type SideEffectType string

const (
	SideEffectCreated     SideEffectType = "created"
	SideEffectModified    SideEffectType = "modified"
	SideEffectDeactivated SideEffectType = "deactivated"
)

// SideEffect describes another record created, modified or deactivated as a
// consequence of a transition. Side effects are only consulted by the revert
// safety check; they are never replayed automatically.
type SideEffect struct {
	Type       SideEffectType `json:"type"`
	EntityType ProcessType    `json:"entityType"`
	EntityID   string         `json:"entityId"`
}

// TransitionRecord is one row in the append-only transition ledger. A record
// is immutable except for the one-time reversal stamp (ReversedAt/ReversedBy/
// ReversedByTransitionID); the ledger never deletes rows.
type TransitionRecord struct {
	TransitionID           string       `json:"transitionID"`
	ProcessType            ProcessType  `json:"processType"`
	EntityID               string       `json:"entityID"`
	EntityNumber           string       `json:"entityNumber,omitempty"` // human-readable label, optional
	FromState              *string      `json:"fromState"`              // nil for an entity's first recorded transition
	ToState                string       `json:"toState"`
	IsReversible           bool         `json:"isReversible"` // set by the writer, immutable afterward
	SideEffects            []SideEffect `json:"sideEffects,omitempty"`
	ActorID                *string      `json:"actorID"` // nil for system-initiated transitions
	Notes                  *string      `json:"notes,omitempty"`
	ReversedAt             *time.Time   `json:"reversedAt,omitempty"`
	ReversedBy             *string      `json:"reversedBy,omitempty"`
	ReversedByTransitionID *string      `json:"reversedByTransitionID,omitempty"`
	CreatedAt              time.Time    `json:"createdAt"`
}

// IsReversed reports whether the reversal stamp has been applied. A stamped
// record is terminal for revert purposes.
func (t *TransitionRecord) IsReversed() bool {
	return t.ReversedAt != nil
}

// TransitionInput carries the caller-supplied fields for logging a new
// transition. Legality of FromState/ToState is the validation engine's job,
// run by the domain workflow before it mutates anything; the ledger records
// what it is told.
type TransitionInput struct {
	ProcessType  ProcessType
	EntityID     string
	EntityNumber string
	FromState    *string
	ToState      string
	IsReversible bool
	ActorID      *string
	SideEffects  []SideEffect
	Notes        *string
}

// RevertCheck is the outcome of a revert-eligibility evaluation. Allowed=false
// with populated Blockers is the expected, successful outcome for an
// un-revertable transition, not an error.
type RevertCheck struct {
	Allowed  bool     `json:"allowed"`
	Blockers []string `json:"blockers"`
	// TransitionID identifies the transition the check evaluated. Callers
	// acting on the check must act on this exact record; empty when the
	// entity has no history.
	TransitionID  string  `json:"transitionID,omitempty"`
	PreviousState *string `json:"previousState,omitempty"`
}
