package dto

import (
	"time"

	"github.com/railfleet/fleet_mgmt_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AttachmentResponse defines the data returned for one case attachment.
type AttachmentResponse struct {
	AttachmentID string `json:"attachmentID"`
	Kind         string `json:"kind"`
	FileName     string `json:"fileName"`
}

// CaseResponse defines the data returned for an invoice case.
type CaseResponse struct {
	CaseID          string               `json:"caseID"`
	CaseNumber      string               `json:"caseNumber"`
	CaseType        string               `json:"caseType"`
	WorkflowState   string               `json:"workflowState"`
	LesseeName      string               `json:"lesseeName"`
	InvoiceDate     time.Time            `json:"invoiceDate"`
	InvoiceTotal    decimal.Decimal      `json:"invoiceTotal"`
	ShoppingEventID *string              `json:"shoppingEventID,omitempty"`
	Attachments     []AttachmentResponse `json:"attachments,omitempty"`
	CarMarks        []string             `json:"carMarks,omitempty"`
	CreatedAt       time.Time            `json:"createdAt"`
	CreatedBy       string               `json:"createdBy"`
}

// ToCaseResponse converts a domain.InvoiceCase plus its related rows to the
// combined response DTO.
func ToCaseResponse(c *domain.InvoiceCase, attachments []domain.CaseAttachment, carMarks []string) CaseResponse {
	attResponses := make([]AttachmentResponse, len(attachments))
	for i, a := range attachments {
		attResponses[i] = AttachmentResponse{
			AttachmentID: a.AttachmentID,
			Kind:         string(a.Kind),
			FileName:     a.FileName,
		}
	}
	return CaseResponse{
		CaseID:          c.CaseID,
		CaseNumber:      c.CaseNumber,
		CaseType:        string(c.CaseType),
		WorkflowState:   string(c.WorkflowState),
		LesseeName:      c.LesseeName,
		InvoiceDate:     c.InvoiceDate,
		InvoiceTotal:    c.InvoiceTotal,
		ShoppingEventID: c.ShoppingEventID,
		Attachments:     attResponses,
		CarMarks:        carMarks,
		CreatedAt:       c.CreatedAt,
		CreatedBy:       c.CreatedBy,
	}
}

// ListCasesResponse is the paginated case list payload.
type ListCasesResponse struct {
	Cases     []CaseResponse `json:"cases"`
	NextToken *string        `json:"nextToken,omitempty"`
}

// TransitionCaseRequest defines the payload for moving a case to a new
// workflow state.
type TransitionCaseRequest struct {
	TargetState string `json:"targetState" binding:"required"`
}
