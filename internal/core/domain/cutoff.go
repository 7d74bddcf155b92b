package domain

import "time"

// BillingCutoff holds the month-end cutoff timestamps for one billing period.
// After EntryCutoffAt no new invoices may be entered against the period; after
// ApprovalCutoffAt no invoices may be approved against it.
type BillingCutoff struct {
	PeriodStart      time.Time `json:"periodStart"`
	PeriodEnd        time.Time `json:"periodEnd"`
	EntryCutoffAt    time.Time `json:"entryCutoffAt"`
	ApprovalCutoffAt time.Time `json:"approvalCutoffAt"`
}
