package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CaseType distinguishes the two invoice-case processing flavours.
type CaseType string

const (
	// CaseTypeShopRepair covers invoices for work performed at a repair shop,
	// linked to a shopping event.
	CaseTypeShopRepair CaseType = "SHOP"
	// CaseTypeRoutineRepair (MRU) covers routine maintenance invoices, which
	// may span multiple cars and auto-approve below a dollar threshold.
	CaseTypeRoutineRepair CaseType = "MRU"
)

// CaseWorkflowState is the invoice case's position in its workflow.
type CaseWorkflowState string

const (
	CaseStateReceived        CaseWorkflowState = "RECEIVED"
	CaseStateEntered         CaseWorkflowState = "ENTERED"
	CaseStatePendingApproval CaseWorkflowState = "PENDING_APPROVAL"
	CaseStateApproved        CaseWorkflowState = "APPROVED"
	CaseStateQAComplete      CaseWorkflowState = "QA_COMPLETE"
	CaseStateReleased        CaseWorkflowState = "RELEASED"
	CaseStateRejected        CaseWorkflowState = "REJECTED"
)

// CaseInitialState is the workflow state every invoice case starts in.
const CaseInitialState = CaseStateReceived

// InvoiceCase is one invoice processing case.
type InvoiceCase struct {
	CaseID                 string            `json:"caseID"`
	CaseNumber             string            `json:"caseNumber"`
	CaseType               CaseType          `json:"caseType"`
	WorkflowState          CaseWorkflowState `json:"workflowState"`
	LesseeName             string            `json:"lesseeName"`
	SpecialLesseeConfirmed bool              `json:"specialLesseeConfirmed"`
	InvoiceDate            time.Time         `json:"invoiceDate"`
	InvoiceTotal           decimal.Decimal   `json:"invoiceTotal"`
	ShoppingEventID        *string           `json:"shoppingEventID,omitempty"` // linked shop record, if any
	AuditFields
}

// AttachmentKind is the document kind of a case attachment.
type AttachmentKind string

const (
	AttachmentPDF AttachmentKind = "PDF"
	AttachmentTXT AttachmentKind = "TXT"
	AttachmentJPG AttachmentKind = "JPG"
	AttachmentCSV AttachmentKind = "CSV"
)

// CaseAttachment is one document attached to an invoice case.
type CaseAttachment struct {
	AttachmentID string         `json:"attachmentID"`
	CaseID       string         `json:"caseID"`
	Kind         AttachmentKind `json:"kind"`
	FileName     string         `json:"fileName"`
	AuditFields
}
