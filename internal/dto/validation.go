package dto

import "github.com/railfleet/fleet_mgmt_app/internal/core/domain"

// ValidateCaseRequest defines the payload for a dry-run validation call.
type ValidateCaseRequest struct {
	TargetState string `json:"targetState" binding:"required"`
}

// RuleResultResponse is one blocking error or warning in a decision payload.
type RuleResultResponse struct {
	Code       string `json:"code"`
	Decision   string `json:"decision"`
	Message    string `json:"message"`
	OwningRole string `json:"owningRole"`
}

// ValidationDecisionResponse mirrors domain.ValidationDecision for API consumers.
type ValidationDecisionResponse struct {
	CanTransition  bool                 `json:"canTransition"`
	BlockingErrors []RuleResultResponse `json:"blockingErrors"`
	Warnings       []RuleResultResponse `json:"warnings"`
	PassedChecks   []string             `json:"passedChecks"`
	Context        map[string]any       `json:"context"`
}

func toRuleResultResponses(results []domain.RuleResult) []RuleResultResponse {
	responses := make([]RuleResultResponse, len(results))
	for i, r := range results {
		responses[i] = RuleResultResponse{
			Code:       r.Code,
			Decision:   string(r.Decision),
			Message:    r.Message,
			OwningRole: string(r.OwningRole),
		}
	}
	return responses
}

// ToValidationDecisionResponse converts a domain.ValidationDecision to its DTO.
func ToValidationDecisionResponse(d *domain.ValidationDecision) ValidationDecisionResponse {
	return ValidationDecisionResponse{
		CanTransition:  d.CanTransition,
		BlockingErrors: toRuleResultResponses(d.BlockingErrors),
		Warnings:       toRuleResultResponses(d.Warnings),
		PassedChecks:   d.PassedChecks,
		Context:        d.Context,
	}
}
