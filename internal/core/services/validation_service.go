package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/railfleet/fleet_mgmt_app/internal/apperrors"
	"github.com/railfleet/fleet_mgmt_app/internal/core/domain"
	portsrepo "github.com/railfleet/fleet_mgmt_app/internal/core/ports/repositories"
	portssvc "github.com/railfleet/fleet_mgmt_app/internal/core/ports/services"
	"github.com/railfleet/fleet_mgmt_app/internal/middleware"
)

// Check codes emitted by the validation engine. The code set, the decision
// class behind each code and its owning role are a first-class contract;
// dashboards and the approval queue key off them.
const (
	CheckCaseNotFound = "CASE_NOT_FOUND"

	CheckMissingPDF = "MISSING_PDF"
	CheckMissingTXT = "MISSING_TXT"
	CheckPDFPresent = "PDF_PRESENT"
	CheckTXTPresent = "TXT_PRESENT"

	CheckSpecialLesseeApprovalRequired = "SPECIAL_LESSEE_APPROVAL_REQUIRED"
	CheckSpecialLesseeApproved         = "SPECIAL_LESSEE_APPROVED"
	CheckNotSpecialLessee              = "NOT_SPECIAL_LESSEE"
	CheckSpecialLesseeFailed           = "SPECIAL_LESSEE_CHECK_FAILED"

	CheckShoppingNotFound     = "SHOPPING_NOT_FOUND"
	CheckFinalDocsNotApproved = "FINAL_DOCS_NOT_APPROVED"
	CheckFinalDocsApproved    = "FINAL_DOCS_APPROVED"
	CheckShoppingFailed       = "SHOPPING_CHECK_FAILED"

	CheckEstimateVarianceOKUnder     = "ESTIMATE_VARIANCE_OK_UNDER"
	CheckEstimateVarianceOKTolerance = "ESTIMATE_VARIANCE_OK_WITHIN_TOLERANCE"
	CheckEstimateVarianceMinor       = "ESTIMATE_VARIANCE_MINOR"
	CheckEstimateVarianceExceeded    = "ESTIMATE_VARIANCE_EXCEEDED"
	CheckEstimateFailed              = "ESTIMATE_CHECK_FAILED"

	CheckMRUMultiCarAllowed     = "MRU_MULTI_CAR_ALLOWED"
	CheckMRUAutoApproveEligible = "MRU_AUTO_APPROVE_ELIGIBLE"
	CheckMRUMaintenanceReview   = "MRU_MAINTENANCE_REVIEW_REQUIRED"
	CheckMRUHasFMSShopping      = "MRU_HAS_FMS_SHOPPING"

	CheckPastEntryCutoff    = "PAST_ENTRY_CUTOFF"
	CheckPastApprovalCutoff = "PAST_APPROVAL_CUTOFF"
	CheckWithinEntryCutoff  = "WITHIN_ENTRY_CUTOFF"
	CheckCutoffFailed       = "CUTOFF_CHECK_FAILED"

	CheckCarValidPrefix = "CAR_VALID_"
	CheckCarRemarked    = "CAR_REMARKED"
	CheckCarNotFound    = "CAR_NOT_FOUND"
	CheckCarFailed      = "CAR_LOOKUP_FAILED"

	CheckInvalidTransition    = "INVALID_TRANSITION"
	CheckStateTransitionValid = "STATE_TRANSITION_VALID"
	CheckTransitionRuleFailed = "TRANSITION_RULE_CHECK_FAILED"
)

// Context keys populated during evaluation.
const (
	ContextCarCount            = "carCount"
	ContextAutoApproveEligible = "autoApproveEligible"
	ContextTreatAsShop         = "treatAsShop"
)

var (
	// estimateTolerance is the dollar overage a shop invoice may run over its
	// estimate before maintenance has to sign off.
	estimateTolerance = decimal.NewFromInt(100)
	// mruAutoApproveLimit is the routine-repair total at or under which a
	// case is eligible for auto approval.
	mruAutoApproveLimit = decimal.NewFromInt(1500)
)

// requiredAttachmentKinds are the document kinds a case must carry before it
// can advance. ignorableAttachmentKinds are acknowledged but never required.
var (
	requiredAttachmentKinds = []struct {
		kind        domain.AttachmentKind
		missingCode string
		presentCode string
	}{
		{domain.AttachmentPDF, CheckMissingPDF, CheckPDFPresent},
		{domain.AttachmentTXT, CheckMissingTXT, CheckTXTPresent},
	}

	ignorableAttachmentKinds = map[domain.AttachmentKind]bool{
		domain.AttachmentJPG: true,
		domain.AttachmentCSV: true,
	}
)

// entry/approval stage classification for the month-end cutoff rule.
var (
	entryStageTargets = map[domain.CaseWorkflowState]bool{
		domain.CaseStateEntered: true,
	}
	approvalStageTargets = map[domain.CaseWorkflowState]bool{
		domain.CaseStatePendingApproval: true,
		domain.CaseStateApproved:        true,
	}
)

// validationService evaluates the rule battery for invoice case transitions.
// It is stateless across calls and never writes; callers mutate their own
// tables and write to the transition ledger after a transition succeeds.
type validationService struct {
	caseRepo        portsrepo.InvoiceCaseReader
	carRepo         portsrepo.CarRepository
	shoppingRepo    portsrepo.ShoppingRepository
	estimateRepo    portsrepo.EstimateRepository
	cutoffRepo      portsrepo.CutoffRepository
	transitionRules portsrepo.TransitionRuleRepository
	specialLessees  portssvc.SpecialLesseeProvider

	now func() time.Time // injectable clock for cutoff checks
}

// NewValidationService creates a new validation engine.
func NewValidationService(
	caseRepo portsrepo.InvoiceCaseReader,
	carRepo portsrepo.CarRepository,
	shoppingRepo portsrepo.ShoppingRepository,
	estimateRepo portsrepo.EstimateRepository,
	cutoffRepo portsrepo.CutoffRepository,
	transitionRules portsrepo.TransitionRuleRepository,
	specialLessees portssvc.SpecialLesseeProvider,
) portssvc.ValidationSvcFacade {
	return &validationService{
		caseRepo:        caseRepo,
		carRepo:         carRepo,
		shoppingRepo:    shoppingRepo,
		estimateRepo:    estimateRepo,
		cutoffRepo:      cutoffRepo,
		transitionRules: transitionRules,
		specialLessees:  specialLessees,
		now:             time.Now,
	}
}

var _ portssvc.ValidationSvcFacade = (*validationService)(nil)

// ValidateInvoiceCase evaluates the full rule battery for moving the case to
// targetState. Only the upfront case-existence check short-circuits; every
// remaining rule runs even when an earlier one already blocks, so the caller
// sees the complete set of problems in one call.
//
// The evaluation order is fixed: attachments, special lessee, routine-repair
// handling, shop linkage (SHOP cases and MRU cases flagged treatAsShop),
// estimate variance, month-end cutoff, car identity, state-machine legality.
// Context keys are written before any rule that reads them.
func (s *validationService) ValidateInvoiceCase(ctx context.Context, caseID string, targetState domain.CaseWorkflowState) (*domain.ValidationDecision, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	decision := domain.NewValidationDecision()

	invoiceCase, err := s.caseRepo.FindCaseByID(ctx, caseID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			decision.Block(CheckCaseNotFound, fmt.Sprintf("Invoice case %s was not found.", caseID), domain.RoleSystem)
			return decision, nil
		}
		logger.Error("Failed to fetch case for validation", slog.String("error", err.Error()), slog.String("case_id", caseID))
		return nil, fmt.Errorf("failed to fetch case %s: %w", caseID, err)
	}

	attachments, err := s.caseRepo.FindAttachmentsByCaseID(ctx, caseID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch attachments for case %s: %w", caseID, err)
	}
	carMarks, err := s.caseRepo.FindCarMarksByCaseID(ctx, caseID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch car marks for case %s: %w", caseID, err)
	}

	s.checkAttachments(decision, attachments)
	s.checkSpecialLessee(ctx, decision, invoiceCase)

	treatAsShop := false
	if invoiceCase.CaseType == domain.CaseTypeRoutineRepair {
		treatAsShop = s.checkRoutineRepair(decision, invoiceCase, carMarks)
	}
	if invoiceCase.CaseType == domain.CaseTypeShopRepair || treatAsShop {
		s.checkShopLinkage(ctx, decision, invoiceCase)
		s.checkEstimateVariance(ctx, decision, invoiceCase)
	}

	s.checkCutoff(ctx, decision, invoiceCase, targetState)
	s.checkCars(ctx, decision, carMarks)
	s.checkStateTransition(ctx, decision, invoiceCase, targetState)

	logger.Debug("Case validation evaluated",
		slog.String("case_id", caseID),
		slog.String("target_state", string(targetState)),
		slog.Bool("can_transition", decision.CanTransition),
		slog.Int("blockers", len(decision.BlockingErrors)),
		slog.Int("warnings", len(decision.Warnings)),
	)
	return decision, nil
}

// checkAttachments enforces required document kinds and acknowledges
// ignorable ones.
func (s *validationService) checkAttachments(decision *domain.ValidationDecision, attachments []domain.CaseAttachment) {
	present := make(map[domain.AttachmentKind]bool, len(attachments))
	for _, a := range attachments {
		present[a.Kind] = true
	}

	for _, required := range requiredAttachmentKinds {
		if present[required.kind] {
			decision.Pass(required.presentCode)
		} else {
			decision.Block(required.missingCode, fmt.Sprintf("Required %s attachment is missing.", required.kind), domain.RoleAdmin)
		}
	}

	for kind := range ignorableAttachmentKinds {
		if present[kind] {
			decision.Pass(fmt.Sprintf("%s_IGNORED", kind))
		}
	}
}

// checkSpecialLessee gates cases whose lessee is on the special-approval
// list. A cache failure degrades to a conservative block, never a silent pass.
func (s *validationService) checkSpecialLessee(ctx context.Context, decision *domain.ValidationDecision, c *domain.InvoiceCase) {
	isSpecial, err := s.specialLessees.IsSpecialLessee(ctx, c.LesseeName)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Special lessee lookup failed", slog.String("error", err.Error()), slog.String("lessee", c.LesseeName))
		decision.Block(CheckSpecialLesseeFailed, "Special lessee list is unavailable; cannot verify lessee approval.", domain.RoleSystem)
		return
	}

	if !isSpecial {
		decision.Pass(CheckNotSpecialLessee)
		return
	}
	if c.SpecialLesseeConfirmed {
		decision.Pass(CheckSpecialLesseeApproved)
		return
	}
	decision.Block(CheckSpecialLesseeApprovalRequired, fmt.Sprintf("Lessee %s requires special approval before the case can advance.", c.LesseeName), domain.RoleMaintenance)
}

// checkRoutineRepair handles MRU cases. Returns whether the case also carries
// a linked shop record and must additionally pass the shop-invoice checks.
func (s *validationService) checkRoutineRepair(decision *domain.ValidationDecision, c *domain.InvoiceCase, carMarks []string) bool {
	decision.Pass(CheckMRUMultiCarAllowed)
	decision.SetContext(ContextCarCount, len(carMarks))

	if c.InvoiceTotal.LessThanOrEqual(mruAutoApproveLimit) {
		decision.Pass(CheckMRUAutoApproveEligible)
		decision.SetContext(ContextAutoApproveEligible, true)
	} else {
		decision.Warn(CheckMRUMaintenanceReview, fmt.Sprintf("Routine repair total %s exceeds the %s auto-approve limit; maintenance review required.", c.InvoiceTotal.StringFixed(2), mruAutoApproveLimit.StringFixed(2)), domain.RoleMaintenance)
		decision.SetContext(ContextAutoApproveEligible, false)
	}

	if c.ShoppingEventID != nil {
		decision.Warn(CheckMRUHasFMSShopping, "Routine repair case carries a linked shopping event; shop-invoice checks apply.", domain.RoleMaintenance)
		decision.SetContext(ContextTreatAsShop, true)
		return true
	}
	return false
}

// checkShopLinkage requires a linked shopping event in its terminal
// released state before a shop invoice can advance.
func (s *validationService) checkShopLinkage(ctx context.Context, decision *domain.ValidationDecision, c *domain.InvoiceCase) {
	if c.ShoppingEventID == nil {
		decision.Block(CheckShoppingNotFound, "No shopping event is linked to this shop repair case.", domain.RoleMaintenance)
		return
	}

	event, err := s.shoppingRepo.FindShoppingEventByID(ctx, *c.ShoppingEventID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			decision.Block(CheckShoppingNotFound, fmt.Sprintf("Linked shopping event %s was not found.", *c.ShoppingEventID), domain.RoleMaintenance)
			return
		}
		middleware.GetLoggerFromCtx(ctx).Error("Shopping event lookup failed", slog.String("error", err.Error()), slog.String("shopping_event_id", *c.ShoppingEventID))
		decision.Block(CheckShoppingFailed, "Shopping event data is unavailable; cannot verify final docs.", domain.RoleSystem)
		return
	}

	if event.State != domain.ShoppingStateReleased {
		decision.Block(CheckFinalDocsNotApproved, fmt.Sprintf("Shopping event %s is in state %s; final docs are not approved.", event.ShoppingEventID, event.State), domain.RoleMaintenance)
		return
	}
	decision.Pass(CheckFinalDocsApproved)
}

// checkEstimateVariance compares the invoice total to the linked estimate.
// No linked estimate means the rule does not apply.
func (s *validationService) checkEstimateVariance(ctx context.Context, decision *domain.ValidationDecision, c *domain.InvoiceCase) {
	estimate, err := s.estimateRepo.FindEstimateTotalByCaseID(ctx, c.CaseID)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Estimate lookup failed", slog.String("error", err.Error()), slog.String("case_id", c.CaseID))
		decision.Block(CheckEstimateFailed, "Estimate data is unavailable; cannot verify variance.", domain.RoleSystem)
		return
	}
	if estimate == nil {
		return
	}

	diff := c.InvoiceTotal.Sub(*estimate)
	switch {
	case diff.LessThanOrEqual(decimal.Zero):
		decision.Pass(CheckEstimateVarianceOKUnder)
	case diff.LessThanOrEqual(estimateTolerance):
		decision.Pass(CheckEstimateVarianceOKTolerance)
		decision.Warn(CheckEstimateVarianceMinor, fmt.Sprintf("Invoice exceeds estimate by %s, within the %s tolerance.", diff.StringFixed(2), estimateTolerance.StringFixed(2)), domain.RoleMaintenance)
	default:
		decision.Block(CheckEstimateVarianceExceeded, fmt.Sprintf("Invoice exceeds estimate by %s, over the %s tolerance.", diff.StringFixed(2), estimateTolerance.StringFixed(2)), domain.RoleMaintenance)
	}
}

// checkCutoff enforces the month-end entry/approval cutoffs for the billing
// period containing the invoice date. A period with no configured cutoff row
// has no restriction.
func (s *validationService) checkCutoff(ctx context.Context, decision *domain.ValidationDecision, c *domain.InvoiceCase, targetState domain.CaseWorkflowState) {
	if !entryStageTargets[targetState] && !approvalStageTargets[targetState] {
		return
	}

	cutoff, err := s.cutoffRepo.FindCutoffForDate(ctx, c.InvoiceDate)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Cutoff lookup failed", slog.String("error", err.Error()), slog.String("case_id", c.CaseID))
		decision.Block(CheckCutoffFailed, "Billing cutoff data is unavailable; cannot verify the billing period.", domain.RoleSystem)
		return
	}
	if cutoff == nil {
		decision.Pass(CheckWithinEntryCutoff)
		return
	}

	now := s.now()
	if entryStageTargets[targetState] && now.After(cutoff.EntryCutoffAt) {
		decision.Block(CheckPastEntryCutoff, fmt.Sprintf("Entry cutoff for the billing period passed at %s.", cutoff.EntryCutoffAt.Format(time.RFC3339)), domain.RoleAdmin)
		return
	}
	if approvalStageTargets[targetState] && now.After(cutoff.ApprovalCutoffAt) {
		decision.Block(CheckPastApprovalCutoff, fmt.Sprintf("Approval cutoff for the billing period passed at %s.", cutoff.ApprovalCutoffAt.Format(time.RFC3339)), domain.RoleAdmin)
		return
	}
	decision.Pass(CheckWithinEntryCutoff)
}

// checkCars verifies every reporting mark on the case against the fleet
// table, falling back to the remark lookup for retired marks.
func (s *validationService) checkCars(ctx context.Context, decision *domain.ValidationDecision, carMarks []string) {
	for _, mark := range carMarks {
		_, err := s.carRepo.FindCarByMark(ctx, mark)
		if err == nil {
			decision.Pass(CheckCarValidPrefix + mark)
			continue
		}
		if !errors.Is(err, apperrors.ErrNotFound) {
			middleware.GetLoggerFromCtx(ctx).Error("Car lookup failed", slog.String("error", err.Error()), slog.String("mark", mark))
			decision.Block(CheckCarFailed, fmt.Sprintf("Fleet data is unavailable; cannot verify car %s.", mark), domain.RoleSystem)
			continue
		}

		newMark, err := s.carRepo.FindRemarkedMark(ctx, mark)
		if err == nil {
			decision.Warn(CheckCarRemarked, fmt.Sprintf("Car %s has been remarked to %s.", mark, newMark), domain.RoleAdmin)
			continue
		}
		if errors.Is(err, apperrors.ErrNotFound) {
			decision.Block(CheckCarNotFound, fmt.Sprintf("Car %s was not found in the fleet or remark tables.", mark), domain.RoleAdmin)
			continue
		}
		middleware.GetLoggerFromCtx(ctx).Error("Remark lookup failed", slog.String("error", err.Error()), slog.String("mark", mark))
		decision.Block(CheckCarFailed, fmt.Sprintf("Remark data is unavailable; cannot verify car %s.", mark), domain.RoleSystem)
	}
}

// checkStateTransition verifies the move against the configured
// allowed-transition table.
func (s *validationService) checkStateTransition(ctx context.Context, decision *domain.ValidationDecision, c *domain.InvoiceCase, targetState domain.CaseWorkflowState) {
	allowed, err := s.transitionRules.IsTransitionAllowed(ctx, domain.ProcessInvoiceCase, string(c.WorkflowState), string(targetState))
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Transition rule lookup failed", slog.String("error", err.Error()), slog.String("case_id", c.CaseID))
		decision.Block(CheckTransitionRuleFailed, "Transition rule table is unavailable; cannot verify the move.", domain.RoleSystem)
		return
	}
	if !allowed {
		decision.Block(CheckInvalidTransition, fmt.Sprintf("Transition from %s to %s is not permitted.", c.WorkflowState, targetState), domain.RoleSystem)
		return
	}
	decision.Pass(CheckStateTransitionValid)
}
