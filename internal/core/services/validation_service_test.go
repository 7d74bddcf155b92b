package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/railfleet/fleet_mgmt_app/internal/apperrors"
	"github.com/railfleet/fleet_mgmt_app/internal/core/domain"
	portssvc "github.com/railfleet/fleet_mgmt_app/internal/core/ports/services"
	"github.com/railfleet/fleet_mgmt_app/internal/core/services"
)

type ValidationServiceTestSuite struct {
	suite.Suite
	mockCaseRepo     *MockInvoiceCaseRepository
	mockCarRepo      *MockCarRepository
	mockShoppingRepo *MockShoppingRepository
	mockEstimateRepo *MockEstimateRepository
	mockCutoffRepo   *MockCutoffRepository
	mockRules        *MockTransitionRuleRepository
	mockLessees      *MockSpecialLesseeProvider
	service          portssvc.ValidationSvcFacade

	ctx context.Context
}

func (suite *ValidationServiceTestSuite) SetupTest() {
	suite.mockCaseRepo = new(MockInvoiceCaseRepository)
	suite.mockCarRepo = new(MockCarRepository)
	suite.mockShoppingRepo = new(MockShoppingRepository)
	suite.mockEstimateRepo = new(MockEstimateRepository)
	suite.mockCutoffRepo = new(MockCutoffRepository)
	suite.mockRules = new(MockTransitionRuleRepository)
	suite.mockLessees = new(MockSpecialLesseeProvider)
	suite.service = services.NewValidationService(
		suite.mockCaseRepo,
		suite.mockCarRepo,
		suite.mockShoppingRepo,
		suite.mockEstimateRepo,
		suite.mockCutoffRepo,
		suite.mockRules,
		suite.mockLessees,
	)
	suite.ctx = context.Background()
}

// shopCase returns a shop repair case with sensible defaults; tests override
// fields as needed.
func (suite *ValidationServiceTestSuite) shopCase() *domain.InvoiceCase {
	shoppingEventID := "shop-1"
	return &domain.InvoiceCase{
		CaseID:          "case-1",
		CaseNumber:      "INV-1001",
		CaseType:        domain.CaseTypeShopRepair,
		WorkflowState:   domain.CaseStateReceived,
		LesseeName:      "Acme Leasing",
		InvoiceDate:     time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
		InvoiceTotal:    decimal.NewFromInt(900),
		ShoppingEventID: &shoppingEventID,
	}
}

func (suite *ValidationServiceTestSuite) mruCase(total decimal.Decimal) *domain.InvoiceCase {
	c := suite.shopCase()
	c.CaseType = domain.CaseTypeRoutineRepair
	c.ShoppingEventID = nil
	c.InvoiceTotal = total
	return c
}

func (suite *ValidationServiceTestSuite) bothAttachments() []domain.CaseAttachment {
	return []domain.CaseAttachment{
		{AttachmentID: "a-1", CaseID: "case-1", Kind: domain.AttachmentPDF, FileName: "invoice.pdf"},
		{AttachmentID: "a-2", CaseID: "case-1", Kind: domain.AttachmentTXT, FileName: "detail.txt"},
	}
}

// expectHappyPathDefaults wires every collaborator for a clean evaluation so
// individual tests only override the rule under test.
func (suite *ValidationServiceTestSuite) expectHappyPathDefaults(c *domain.InvoiceCase, target domain.CaseWorkflowState) {
	suite.mockCaseRepo.On("FindCaseByID", suite.ctx, c.CaseID).Return(c, nil)
	suite.mockCaseRepo.On("FindAttachmentsByCaseID", suite.ctx, c.CaseID).Return(suite.bothAttachments(), nil)
	suite.mockCaseRepo.On("FindCarMarksByCaseID", suite.ctx, c.CaseID).Return([]string{"RAIL100001"}, nil)
	suite.mockLessees.On("IsSpecialLessee", suite.ctx, c.LesseeName).Return(false, nil)
	if c.ShoppingEventID != nil {
		suite.mockShoppingRepo.On("FindShoppingEventByID", suite.ctx, *c.ShoppingEventID).
			Return(&domain.ShoppingEvent{ShoppingEventID: *c.ShoppingEventID, CarMark: "RAIL100001", ShopCode: "SHP01", State: domain.ShoppingStateReleased}, nil)
		suite.mockEstimateRepo.On("FindEstimateTotalByCaseID", suite.ctx, c.CaseID).Return(nil, nil)
	}
	suite.mockCutoffRepo.On("FindCutoffForDate", suite.ctx, c.InvoiceDate).Return(nil, nil)
	suite.mockCarRepo.On("FindCarByMark", suite.ctx, "RAIL100001").
		Return(&domain.FleetCar{CarID: "car-1", Mark: "RAIL100001", CarType: "boxcar", IsActive: true}, nil)
	suite.mockRules.On("IsTransitionAllowed", suite.ctx, domain.ProcessInvoiceCase, string(c.WorkflowState), string(target)).Return(true, nil)
}

func (suite *ValidationServiceTestSuite) TestValidate_CaseNotFound() {
	suite.mockCaseRepo.On("FindCaseByID", suite.ctx, "missing").Return(nil, apperrors.ErrNotFound).Once()

	decision, err := suite.service.ValidateInvoiceCase(suite.ctx, "missing", domain.CaseStateEntered)

	suite.Require().NoError(err)
	suite.False(decision.CanTransition)
	suite.Require().Len(decision.BlockingErrors, 1)
	suite.Equal(services.CheckCaseNotFound, decision.BlockingErrors[0].Code)
	suite.Equal(domain.RoleSystem, decision.BlockingErrors[0].OwningRole)
	suite.mockCaseRepo.AssertNotCalled(suite.T(), "FindAttachmentsByCaseID")
}

func (suite *ValidationServiceTestSuite) TestValidate_ShopCaseHappyPath() {
	c := suite.shopCase()
	suite.expectHappyPathDefaults(c, domain.CaseStateEntered)

	decision, err := suite.service.ValidateInvoiceCase(suite.ctx, c.CaseID, domain.CaseStateEntered)

	suite.Require().NoError(err)
	suite.True(decision.CanTransition)
	suite.Empty(decision.BlockingErrors)
	suite.Empty(decision.Warnings)
	suite.Contains(decision.PassedChecks, services.CheckPDFPresent)
	suite.Contains(decision.PassedChecks, services.CheckTXTPresent)
	suite.Contains(decision.PassedChecks, services.CheckNotSpecialLessee)
	suite.Contains(decision.PassedChecks, services.CheckFinalDocsApproved)
	suite.Contains(decision.PassedChecks, services.CheckWithinEntryCutoff)
	suite.Contains(decision.PassedChecks, services.CheckCarValidPrefix+"RAIL100001")
	suite.Contains(decision.PassedChecks, services.CheckStateTransitionValid)
}

func (suite *ValidationServiceTestSuite) TestValidate_MissingAttachmentsBlock() {
	c := suite.shopCase()
	suite.expectHappyPathDefaults(c, domain.CaseStateEntered)
	// Override: only an ignorable JPG is attached.
	suite.mockCaseRepo.ExpectedCalls = nil
	suite.mockCaseRepo.On("FindCaseByID", suite.ctx, c.CaseID).Return(c, nil)
	suite.mockCaseRepo.On("FindAttachmentsByCaseID", suite.ctx, c.CaseID).Return([]domain.CaseAttachment{
		{AttachmentID: "a-3", CaseID: c.CaseID, Kind: domain.AttachmentJPG, FileName: "photo.jpg"},
	}, nil)
	suite.mockCaseRepo.On("FindCarMarksByCaseID", suite.ctx, c.CaseID).Return([]string{"RAIL100001"}, nil)

	decision, err := suite.service.ValidateInvoiceCase(suite.ctx, c.CaseID, domain.CaseStateEntered)

	suite.Require().NoError(err)
	suite.False(decision.CanTransition)

	codes := blockingCodes(decision)
	suite.Contains(codes, services.CheckMissingPDF)
	suite.Contains(codes, services.CheckMissingTXT)
	suite.Contains(decision.PassedChecks, "JPG_IGNORED")
	// Later rules still ran despite the blocks.
	suite.Contains(decision.PassedChecks, services.CheckStateTransitionValid)
}

func (suite *ValidationServiceTestSuite) TestValidate_SpecialLesseeUnconfirmed() {
	c := suite.shopCase()
	c.LesseeName = "Flagged Lessee Co"
	suite.expectHappyPathDefaults(c, domain.CaseStateEntered)
	suite.mockLessees.ExpectedCalls = nil
	suite.mockLessees.On("IsSpecialLessee", suite.ctx, c.LesseeName).Return(true, nil)

	decision, err := suite.service.ValidateInvoiceCase(suite.ctx, c.CaseID, domain.CaseStateEntered)

	suite.Require().NoError(err)
	suite.False(decision.CanTransition)
	suite.Require().Len(decision.BlockingErrors, 1)
	suite.Equal(services.CheckSpecialLesseeApprovalRequired, decision.BlockingErrors[0].Code)
	suite.Equal(domain.RoleMaintenance, decision.BlockingErrors[0].OwningRole)
}

func (suite *ValidationServiceTestSuite) TestValidate_SpecialLesseeConfirmedPasses() {
	c := suite.shopCase()
	c.LesseeName = "Flagged Lessee Co"
	c.SpecialLesseeConfirmed = true
	suite.expectHappyPathDefaults(c, domain.CaseStateEntered)
	suite.mockLessees.ExpectedCalls = nil
	suite.mockLessees.On("IsSpecialLessee", suite.ctx, c.LesseeName).Return(true, nil)

	decision, err := suite.service.ValidateInvoiceCase(suite.ctx, c.CaseID, domain.CaseStateEntered)

	suite.Require().NoError(err)
	suite.True(decision.CanTransition)
	suite.Contains(decision.PassedChecks, services.CheckSpecialLesseeApproved)
}

func (suite *ValidationServiceTestSuite) TestValidate_SpecialLesseeLookupFailure() {
	c := suite.shopCase()
	suite.expectHappyPathDefaults(c, domain.CaseStateEntered)
	suite.mockLessees.ExpectedCalls = nil
	suite.mockLessees.On("IsSpecialLessee", suite.ctx, c.LesseeName).Return(false, errors.New("cache load failed"))

	decision, err := suite.service.ValidateInvoiceCase(suite.ctx, c.CaseID, domain.CaseStateEntered)

	suite.Require().NoError(err)
	suite.False(decision.CanTransition)
	suite.Contains(blockingCodes(decision), services.CheckSpecialLesseeFailed)
}

func (suite *ValidationServiceTestSuite) TestValidate_EstimateVarianceExactlyAtTolerance() {
	c := suite.shopCase()
	c.InvoiceTotal = decimal.RequireFromString("1100.00")
	suite.expectHappyPathDefaults(c, domain.CaseStateEntered)
	estimate := decimal.NewFromInt(1000)
	suite.mockEstimateRepo.ExpectedCalls = nil
	suite.mockEstimateRepo.On("FindEstimateTotalByCaseID", suite.ctx, c.CaseID).Return(&estimate, nil)

	decision, err := suite.service.ValidateInvoiceCase(suite.ctx, c.CaseID, domain.CaseStateEntered)

	suite.Require().NoError(err)
	// $100 over is still inside the tolerance: pass with a minor-variance warning.
	suite.True(decision.CanTransition)
	suite.Contains(decision.PassedChecks, services.CheckEstimateVarianceOKTolerance)
	suite.Require().Len(decision.Warnings, 1)
	suite.Equal(services.CheckEstimateVarianceMinor, decision.Warnings[0].Code)
}

func (suite *ValidationServiceTestSuite) TestValidate_EstimateVarianceJustOverTolerance() {
	c := suite.shopCase()
	c.InvoiceTotal = decimal.RequireFromString("1100.01")
	suite.expectHappyPathDefaults(c, domain.CaseStateEntered)
	estimate := decimal.NewFromInt(1000)
	suite.mockEstimateRepo.ExpectedCalls = nil
	suite.mockEstimateRepo.On("FindEstimateTotalByCaseID", suite.ctx, c.CaseID).Return(&estimate, nil)

	decision, err := suite.service.ValidateInvoiceCase(suite.ctx, c.CaseID, domain.CaseStateEntered)

	suite.Require().NoError(err)
	suite.False(decision.CanTransition)
	suite.Require().Len(decision.BlockingErrors, 1)
	suite.Equal(services.CheckEstimateVarianceExceeded, decision.BlockingErrors[0].Code)
	suite.Equal(domain.RoleMaintenance, decision.BlockingErrors[0].OwningRole)
}

func (suite *ValidationServiceTestSuite) TestValidate_EstimateUnderRunsClean() {
	c := suite.shopCase()
	c.InvoiceTotal = decimal.NewFromInt(900)
	suite.expectHappyPathDefaults(c, domain.CaseStateEntered)
	estimate := decimal.NewFromInt(1000)
	suite.mockEstimateRepo.ExpectedCalls = nil
	suite.mockEstimateRepo.On("FindEstimateTotalByCaseID", suite.ctx, c.CaseID).Return(&estimate, nil)

	decision, err := suite.service.ValidateInvoiceCase(suite.ctx, c.CaseID, domain.CaseStateEntered)

	suite.Require().NoError(err)
	suite.True(decision.CanTransition)
	suite.Contains(decision.PassedChecks, services.CheckEstimateVarianceOKUnder)
	suite.Empty(decision.Warnings)
}

func (suite *ValidationServiceTestSuite) TestValidate_MRUAtAutoApproveLimit() {
	c := suite.mruCase(decimal.RequireFromString("1500.00"))
	suite.expectHappyPathDefaults(c, domain.CaseStateEntered)

	decision, err := suite.service.ValidateInvoiceCase(suite.ctx, c.CaseID, domain.CaseStateEntered)

	suite.Require().NoError(err)
	suite.True(decision.CanTransition)
	suite.Contains(decision.PassedChecks, services.CheckMRUAutoApproveEligible)
	suite.Contains(decision.PassedChecks, services.CheckMRUMultiCarAllowed)
	suite.Equal(true, decision.Context[services.ContextAutoApproveEligible])
	suite.Equal(1, decision.Context[services.ContextCarCount])
}

func (suite *ValidationServiceTestSuite) TestValidate_MRUJustOverAutoApproveLimit() {
	c := suite.mruCase(decimal.RequireFromString("1500.01"))
	suite.expectHappyPathDefaults(c, domain.CaseStateEntered)

	decision, err := suite.service.ValidateInvoiceCase(suite.ctx, c.CaseID, domain.CaseStateEntered)

	suite.Require().NoError(err)
	// Over the limit is a warning for maintenance review, never a block.
	suite.True(decision.CanTransition)
	suite.Require().Len(decision.Warnings, 1)
	suite.Equal(services.CheckMRUMaintenanceReview, decision.Warnings[0].Code)
	suite.Equal(domain.RoleMaintenance, decision.Warnings[0].OwningRole)
	suite.Equal(false, decision.Context[services.ContextAutoApproveEligible])
}

func (suite *ValidationServiceTestSuite) TestValidate_MRUWithLinkedShoppingTreatedAsShop() {
	c := suite.mruCase(decimal.NewFromInt(2000))
	shoppingEventID := "shop-9"
	c.ShoppingEventID = &shoppingEventID
	suite.expectHappyPathDefaults(c, domain.CaseStateEntered)

	decision, err := suite.service.ValidateInvoiceCase(suite.ctx, c.CaseID, domain.CaseStateEntered)

	suite.Require().NoError(err)
	suite.True(decision.CanTransition)
	suite.Equal(true, decision.Context[services.ContextTreatAsShop])

	warnCodes := []string{}
	for _, w := range decision.Warnings {
		warnCodes = append(warnCodes, w.Code)
	}
	suite.Contains(warnCodes, services.CheckMRUHasFMSShopping)
	suite.Contains(warnCodes, services.CheckMRUMaintenanceReview)
	// The linked shop record was verified like a shop invoice's.
	suite.Contains(decision.PassedChecks, services.CheckFinalDocsApproved)
}

func (suite *ValidationServiceTestSuite) TestValidate_ShopCaseFinalDocsPending() {
	c := suite.shopCase()
	suite.expectHappyPathDefaults(c, domain.CaseStateEntered)
	suite.mockShoppingRepo.ExpectedCalls = nil
	suite.mockShoppingRepo.On("FindShoppingEventByID", suite.ctx, *c.ShoppingEventID).
		Return(&domain.ShoppingEvent{ShoppingEventID: *c.ShoppingEventID, State: domain.ShoppingStateFinalDocsPending}, nil)

	decision, err := suite.service.ValidateInvoiceCase(suite.ctx, c.CaseID, domain.CaseStateEntered)

	suite.Require().NoError(err)
	suite.False(decision.CanTransition)
	suite.Contains(blockingCodes(decision), services.CheckFinalDocsNotApproved)
}

func (suite *ValidationServiceTestSuite) TestValidate_PastEntryCutoff() {
	c := suite.shopCase()
	suite.expectHappyPathDefaults(c, domain.CaseStateEntered)
	suite.mockCutoffRepo.ExpectedCalls = nil
	suite.mockCutoffRepo.On("FindCutoffForDate", suite.ctx, c.InvoiceDate).Return(&domain.BillingCutoff{
		PeriodStart:      time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		PeriodEnd:        time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC),
		EntryCutoffAt:    time.Now().Add(-48 * time.Hour),
		ApprovalCutoffAt: time.Now().Add(-24 * time.Hour),
	}, nil)

	decision, err := suite.service.ValidateInvoiceCase(suite.ctx, c.CaseID, domain.CaseStateEntered)

	suite.Require().NoError(err)
	suite.False(decision.CanTransition)
	suite.Contains(blockingCodes(decision), services.CheckPastEntryCutoff)
}

func (suite *ValidationServiceTestSuite) TestValidate_FutureCutoffPasses() {
	c := suite.shopCase()
	suite.expectHappyPathDefaults(c, domain.CaseStatePendingApproval)
	c.WorkflowState = domain.CaseStateEntered
	suite.mockRules.ExpectedCalls = nil
	suite.mockRules.On("IsTransitionAllowed", suite.ctx, domain.ProcessInvoiceCase, "ENTERED", "PENDING_APPROVAL").Return(true, nil)
	suite.mockCutoffRepo.ExpectedCalls = nil
	suite.mockCutoffRepo.On("FindCutoffForDate", suite.ctx, c.InvoiceDate).Return(&domain.BillingCutoff{
		PeriodStart:      time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		PeriodEnd:        time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC),
		EntryCutoffAt:    time.Now().Add(24 * time.Hour),
		ApprovalCutoffAt: time.Now().Add(48 * time.Hour),
	}, nil)

	decision, err := suite.service.ValidateInvoiceCase(suite.ctx, c.CaseID, domain.CaseStatePendingApproval)

	suite.Require().NoError(err)
	suite.True(decision.CanTransition)
	suite.Contains(decision.PassedChecks, services.CheckWithinEntryCutoff)
}

func (suite *ValidationServiceTestSuite) TestValidate_CutoffSkippedForReleaseTarget() {
	c := suite.shopCase()
	c.WorkflowState = domain.CaseStateApproved
	suite.expectHappyPathDefaults(c, domain.CaseStateReleased)
	// A release is neither an entry-stage nor an approval-stage move; the
	// cutoff rule must not run at all, not even to record a pass.
	suite.mockCutoffRepo.ExpectedCalls = nil

	decision, err := suite.service.ValidateInvoiceCase(suite.ctx, c.CaseID, domain.CaseStateReleased)

	suite.Require().NoError(err)
	suite.True(decision.CanTransition)
	suite.NotContains(decision.PassedChecks, services.CheckWithinEntryCutoff)
	suite.mockCutoffRepo.AssertNotCalled(suite.T(), "FindCutoffForDate")
}

func (suite *ValidationServiceTestSuite) TestValidate_RemarkedCarWarns() {
	c := suite.shopCase()
	suite.expectHappyPathDefaults(c, domain.CaseStateEntered)
	suite.mockCarRepo.ExpectedCalls = nil
	suite.mockCarRepo.On("FindCarByMark", suite.ctx, "RAIL100001").Return(nil, apperrors.ErrNotFound)
	suite.mockCarRepo.On("FindRemarkedMark", suite.ctx, "RAIL100001").Return("RAIL200001", nil)

	decision, err := suite.service.ValidateInvoiceCase(suite.ctx, c.CaseID, domain.CaseStateEntered)

	suite.Require().NoError(err)
	suite.True(decision.CanTransition)
	suite.Require().Len(decision.Warnings, 1)
	suite.Equal(services.CheckCarRemarked, decision.Warnings[0].Code)
}

func (suite *ValidationServiceTestSuite) TestValidate_UnknownCarBlocks() {
	c := suite.shopCase()
	suite.expectHappyPathDefaults(c, domain.CaseStateEntered)
	suite.mockCarRepo.ExpectedCalls = nil
	suite.mockCarRepo.On("FindCarByMark", suite.ctx, "RAIL100001").Return(nil, apperrors.ErrNotFound)
	suite.mockCarRepo.On("FindRemarkedMark", suite.ctx, "RAIL100001").Return("", apperrors.ErrNotFound)

	decision, err := suite.service.ValidateInvoiceCase(suite.ctx, c.CaseID, domain.CaseStateEntered)

	suite.Require().NoError(err)
	suite.False(decision.CanTransition)
	suite.Require().Len(decision.BlockingErrors, 1)
	suite.Equal(services.CheckCarNotFound, decision.BlockingErrors[0].Code)
	suite.Equal(domain.RoleAdmin, decision.BlockingErrors[0].OwningRole)
}

func (suite *ValidationServiceTestSuite) TestValidate_IllegalStateTransition() {
	c := suite.shopCase()
	// RECEIVED straight to APPROVED skips the workflow.
	suite.expectHappyPathDefaults(c, domain.CaseStateApproved)
	suite.mockRules.ExpectedCalls = nil
	suite.mockRules.On("IsTransitionAllowed", suite.ctx, domain.ProcessInvoiceCase, "RECEIVED", "APPROVED").Return(false, nil)

	decision, err := suite.service.ValidateInvoiceCase(suite.ctx, c.CaseID, domain.CaseStateApproved)

	suite.Require().NoError(err)
	suite.False(decision.CanTransition)
	suite.Require().Len(decision.BlockingErrors, 1)
	suite.Equal(services.CheckInvalidTransition, decision.BlockingErrors[0].Code)
	suite.Equal(domain.RoleSystem, decision.BlockingErrors[0].OwningRole)
}

func (suite *ValidationServiceTestSuite) TestValidate_MultipleBlockersAccumulate() {
	c := suite.shopCase()
	c.LesseeName = "Flagged Lessee Co"
	suite.expectHappyPathDefaults(c, domain.CaseStateApproved)

	// Three independent failures: no attachments, unconfirmed special lessee,
	// illegal transition.
	suite.mockCaseRepo.ExpectedCalls = nil
	suite.mockCaseRepo.On("FindCaseByID", suite.ctx, c.CaseID).Return(c, nil)
	suite.mockCaseRepo.On("FindAttachmentsByCaseID", suite.ctx, c.CaseID).Return([]domain.CaseAttachment{}, nil)
	suite.mockCaseRepo.On("FindCarMarksByCaseID", suite.ctx, c.CaseID).Return([]string{"RAIL100001"}, nil)
	suite.mockLessees.ExpectedCalls = nil
	suite.mockLessees.On("IsSpecialLessee", suite.ctx, c.LesseeName).Return(true, nil)
	suite.mockRules.ExpectedCalls = nil
	suite.mockRules.On("IsTransitionAllowed", suite.ctx, domain.ProcessInvoiceCase, "RECEIVED", "APPROVED").Return(false, nil)

	decision, err := suite.service.ValidateInvoiceCase(suite.ctx, c.CaseID, domain.CaseStateApproved)

	suite.Require().NoError(err)
	suite.False(decision.CanTransition)

	codes := blockingCodes(decision)
	suite.Contains(codes, services.CheckMissingPDF)
	suite.Contains(codes, services.CheckMissingTXT)
	suite.Contains(codes, services.CheckSpecialLesseeApprovalRequired)
	suite.Contains(codes, services.CheckInvalidTransition)
	suite.GreaterOrEqual(len(codes), 4)
}

func blockingCodes(d *domain.ValidationDecision) []string {
	codes := make([]string, len(d.BlockingErrors))
	for i, b := range d.BlockingErrors {
		codes[i] = b.Code
	}
	return codes
}

func TestValidationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ValidationServiceTestSuite))
}
