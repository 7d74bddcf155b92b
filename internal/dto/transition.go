package dto

import (
	"time"

	"github.com/railfleet/fleet_mgmt_app/internal/core/domain"
)

// SideEffectRequest describes one downstream record touched by a transition.
type SideEffectRequest struct {
	Type       string `json:"type" binding:"required,oneof=created modified deactivated"`
	EntityType string `json:"entityType" binding:"required"`
	EntityID   string `json:"entityId" binding:"required"`
}

// LogTransitionRequest defines the payload for recording a transition in the
// ledger on behalf of a domain workflow.
type LogTransitionRequest struct {
	ProcessType  string              `json:"processType" binding:"required"`
	EntityID     string              `json:"entityID" binding:"required"`
	EntityNumber string              `json:"entityNumber"`
	FromState    *string             `json:"fromState"`
	ToState      string              `json:"toState" binding:"required"`
	IsReversible bool                `json:"isReversible"`
	SideEffects  []SideEffectRequest `json:"sideEffects"`
	Notes        *string             `json:"notes"`
}

// ToTransitionInput converts the request to the domain input, attaching the
// acting user.
func (r LogTransitionRequest) ToTransitionInput(actorID string) domain.TransitionInput {
	sideEffects := make([]domain.SideEffect, len(r.SideEffects))
	for i, se := range r.SideEffects {
		sideEffects[i] = domain.SideEffect{
			Type:       domain.SideEffectType(se.Type),
			EntityType: domain.ProcessType(se.EntityType),
			EntityID:   se.EntityID,
		}
	}
	return domain.TransitionInput{
		ProcessType:  domain.ProcessType(r.ProcessType),
		EntityID:     r.EntityID,
		EntityNumber: r.EntityNumber,
		FromState:    r.FromState,
		ToState:      r.ToState,
		IsReversible: r.IsReversible,
		ActorID:      &actorID,
		SideEffects:  sideEffects,
		Notes:        r.Notes,
	}
}

// TransitionResponse defines the data returned for one ledger record.
type TransitionResponse struct {
	TransitionID           string              `json:"transitionID"`
	ProcessType            string              `json:"processType"`
	EntityID               string              `json:"entityID"`
	EntityNumber           string              `json:"entityNumber,omitempty"`
	FromState              *string             `json:"fromState"`
	ToState                string              `json:"toState"`
	IsReversible           bool                `json:"isReversible"`
	SideEffects            []domain.SideEffect `json:"sideEffects,omitempty"`
	ActorID                *string             `json:"actorID,omitempty"`
	Notes                  *string             `json:"notes,omitempty"`
	ReversedAt             *time.Time          `json:"reversedAt,omitempty"`
	ReversedBy             *string             `json:"reversedBy,omitempty"`
	ReversedByTransitionID *string             `json:"reversedByTransitionID,omitempty"`
	CreatedAt              time.Time           `json:"createdAt"`
}

// ToTransitionResponse converts a domain.TransitionRecord to its DTO.
func ToTransitionResponse(t *domain.TransitionRecord) TransitionResponse {
	return TransitionResponse{
		TransitionID:           t.TransitionID,
		ProcessType:            string(t.ProcessType),
		EntityID:               t.EntityID,
		EntityNumber:           t.EntityNumber,
		FromState:              t.FromState,
		ToState:                t.ToState,
		IsReversible:           t.IsReversible,
		SideEffects:            t.SideEffects,
		ActorID:                t.ActorID,
		Notes:                  t.Notes,
		ReversedAt:             t.ReversedAt,
		ReversedBy:             t.ReversedBy,
		ReversedByTransitionID: t.ReversedByTransitionID,
		CreatedAt:              t.CreatedAt,
	}
}

// ToTransitionResponses converts a slice of records to DTOs.
func ToTransitionResponses(records []domain.TransitionRecord) []TransitionResponse {
	responses := make([]TransitionResponse, len(records))
	for i := range records {
		responses[i] = ToTransitionResponse(&records[i])
	}
	return responses
}

// ListTransitionsResponse is the paginated history payload.
type ListTransitionsResponse struct {
	Transitions []TransitionResponse `json:"transitions"`
	NextToken   *string              `json:"nextToken,omitempty"`
}

// RevertCheckResponse mirrors domain.RevertCheck for API consumers.
type RevertCheckResponse struct {
	Allowed       bool     `json:"allowed"`
	Blockers      []string `json:"blockers"`
	TransitionID  string   `json:"transitionID,omitempty"`
	PreviousState *string  `json:"previousState,omitempty"`
}

// ToRevertCheckResponse converts a domain.RevertCheck to its DTO.
func ToRevertCheckResponse(c *domain.RevertCheck) RevertCheckResponse {
	return RevertCheckResponse{
		Allowed:       c.Allowed,
		Blockers:      c.Blockers,
		TransitionID:  c.TransitionID,
		PreviousState: c.PreviousState,
	}
}
