package services_test

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/railfleet/fleet_mgmt_app/internal/core/domain"
	portssvc "github.com/railfleet/fleet_mgmt_app/internal/core/ports/services"
)

// --- Mock TransitionRepositoryFacade ---

type MockTransitionRepository struct {
	mock.Mock
}

func (m *MockTransitionRepository) SaveTransition(ctx context.Context, record domain.TransitionRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockTransitionRepository) StampTransitionReversed(ctx context.Context, transitionID string, reversedBy string, reversalTransitionID string, reversedAt time.Time) error {
	args := m.Called(ctx, transitionID, reversedBy, reversalTransitionID, reversedAt)
	return args.Error(0)
}

func (m *MockTransitionRepository) SaveReversal(ctx context.Context, reversal domain.TransitionRecord, originalTransitionID string, reversedBy string) error {
	args := m.Called(ctx, reversal, originalTransitionID, reversedBy)
	return args.Error(0)
}

func (m *MockTransitionRepository) FindLastTransition(ctx context.Context, processType domain.ProcessType, entityID string) (*domain.TransitionRecord, error) {
	args := m.Called(ctx, processType, entityID)
	var record *domain.TransitionRecord
	if args.Get(0) != nil {
		record = args.Get(0).(*domain.TransitionRecord)
	}
	return record, args.Error(1)
}

func (m *MockTransitionRepository) FindTransitionByID(ctx context.Context, transitionID string) (*domain.TransitionRecord, error) {
	args := m.Called(ctx, transitionID)
	var record *domain.TransitionRecord
	if args.Get(0) != nil {
		record = args.Get(0).(*domain.TransitionRecord)
	}
	return record, args.Error(1)
}

func (m *MockTransitionRepository) ListTransitions(ctx context.Context, processType domain.ProcessType, entityID string, limit int, nextToken *string) ([]domain.TransitionRecord, *string, error) {
	args := m.Called(ctx, processType, entityID, limit, nextToken)
	var records []domain.TransitionRecord
	if args.Get(0) != nil {
		records = args.Get(0).([]domain.TransitionRecord)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return records, token, args.Error(2)
}

// --- Mock InvoiceCaseRepositoryFacade ---

type MockInvoiceCaseRepository struct {
	mock.Mock
}

func (m *MockInvoiceCaseRepository) FindCaseByID(ctx context.Context, caseID string) (*domain.InvoiceCase, error) {
	args := m.Called(ctx, caseID)
	var c *domain.InvoiceCase
	if args.Get(0) != nil {
		c = args.Get(0).(*domain.InvoiceCase)
	}
	return c, args.Error(1)
}

func (m *MockInvoiceCaseRepository) FindAttachmentsByCaseID(ctx context.Context, caseID string) ([]domain.CaseAttachment, error) {
	args := m.Called(ctx, caseID)
	var attachments []domain.CaseAttachment
	if args.Get(0) != nil {
		attachments = args.Get(0).([]domain.CaseAttachment)
	}
	return attachments, args.Error(1)
}

func (m *MockInvoiceCaseRepository) FindCarMarksByCaseID(ctx context.Context, caseID string) ([]string, error) {
	args := m.Called(ctx, caseID)
	var marks []string
	if args.Get(0) != nil {
		marks = args.Get(0).([]string)
	}
	return marks, args.Error(1)
}

func (m *MockInvoiceCaseRepository) ListCases(ctx context.Context, limit int, nextToken *string) ([]domain.InvoiceCase, *string, error) {
	args := m.Called(ctx, limit, nextToken)
	var cases []domain.InvoiceCase
	if args.Get(0) != nil {
		cases = args.Get(0).([]domain.InvoiceCase)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return cases, token, args.Error(2)
}

func (m *MockInvoiceCaseRepository) UpdateCaseWorkflowState(ctx context.Context, caseID string, state domain.CaseWorkflowState, updatedBy string, updatedAt time.Time) error {
	args := m.Called(ctx, caseID, state, updatedBy, updatedAt)
	return args.Error(0)
}

// --- Mock reference repositories ---

type MockCarRepository struct {
	mock.Mock
}

func (m *MockCarRepository) FindCarByMark(ctx context.Context, mark string) (*domain.FleetCar, error) {
	args := m.Called(ctx, mark)
	var car *domain.FleetCar
	if args.Get(0) != nil {
		car = args.Get(0).(*domain.FleetCar)
	}
	return car, args.Error(1)
}

func (m *MockCarRepository) FindRemarkedMark(ctx context.Context, oldMark string) (string, error) {
	args := m.Called(ctx, oldMark)
	return args.String(0), args.Error(1)
}

type MockShoppingRepository struct {
	mock.Mock
}

func (m *MockShoppingRepository) FindShoppingEventByID(ctx context.Context, shoppingEventID string) (*domain.ShoppingEvent, error) {
	args := m.Called(ctx, shoppingEventID)
	var event *domain.ShoppingEvent
	if args.Get(0) != nil {
		event = args.Get(0).(*domain.ShoppingEvent)
	}
	return event, args.Error(1)
}

type MockEstimateRepository struct {
	mock.Mock
}

func (m *MockEstimateRepository) FindEstimateTotalByCaseID(ctx context.Context, caseID string) (*decimal.Decimal, error) {
	args := m.Called(ctx, caseID)
	var total *decimal.Decimal
	if args.Get(0) != nil {
		total = args.Get(0).(*decimal.Decimal)
	}
	return total, args.Error(1)
}

type MockCutoffRepository struct {
	mock.Mock
}

func (m *MockCutoffRepository) FindCutoffForDate(ctx context.Context, invoiceDate time.Time) (*domain.BillingCutoff, error) {
	args := m.Called(ctx, invoiceDate)
	var cutoff *domain.BillingCutoff
	if args.Get(0) != nil {
		cutoff = args.Get(0).(*domain.BillingCutoff)
	}
	return cutoff, args.Error(1)
}

type MockSpecialLesseeRepository struct {
	mock.Mock
}

func (m *MockSpecialLesseeRepository) ListSpecialLessees(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	var names []string
	if args.Get(0) != nil {
		names = args.Get(0).([]string)
	}
	return names, args.Error(1)
}

type MockTransitionRuleRepository struct {
	mock.Mock
}

func (m *MockTransitionRuleRepository) IsTransitionAllowed(ctx context.Context, processType domain.ProcessType, fromState, toState string) (bool, error) {
	args := m.Called(ctx, processType, fromState, toState)
	return args.Bool(0), args.Error(1)
}

// --- Mock service-level collaborators ---

type MockSpecialLesseeProvider struct {
	mock.Mock
}

func (m *MockSpecialLesseeProvider) IsSpecialLessee(ctx context.Context, lesseeName string) (bool, error) {
	args := m.Called(ctx, lesseeName)
	return args.Bool(0), args.Error(1)
}

type MockStateReader struct {
	mock.Mock
}

func (m *MockStateReader) CurrentState(ctx context.Context, entityID string) (string, error) {
	args := m.Called(ctx, entityID)
	return args.String(0), args.Error(1)
}

func (m *MockStateReader) InitialState() string {
	args := m.Called()
	return args.String(0)
}

type MockLedgerService struct {
	mock.Mock
}

func (m *MockLedgerService) LogTransition(ctx context.Context, input domain.TransitionInput) (*domain.TransitionRecord, error) {
	args := m.Called(ctx, input)
	var record *domain.TransitionRecord
	if args.Get(0) != nil {
		record = args.Get(0).(*domain.TransitionRecord)
	}
	return record, args.Error(1)
}

func (m *MockLedgerService) GetLastTransition(ctx context.Context, processType domain.ProcessType, entityID string) (*domain.TransitionRecord, error) {
	args := m.Called(ctx, processType, entityID)
	var record *domain.TransitionRecord
	if args.Get(0) != nil {
		record = args.Get(0).(*domain.TransitionRecord)
	}
	return record, args.Error(1)
}

func (m *MockLedgerService) GetTransitionHistory(ctx context.Context, processType domain.ProcessType, entityID string, limit int, nextToken *string) ([]domain.TransitionRecord, *string, error) {
	args := m.Called(ctx, processType, entityID, limit, nextToken)
	var records []domain.TransitionRecord
	if args.Get(0) != nil {
		records = args.Get(0).([]domain.TransitionRecord)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return records, token, args.Error(2)
}

func (m *MockLedgerService) CanRevert(ctx context.Context, processType domain.ProcessType, entityID string) (*domain.RevertCheck, error) {
	args := m.Called(ctx, processType, entityID)
	var check *domain.RevertCheck
	if args.Get(0) != nil {
		check = args.Get(0).(*domain.RevertCheck)
	}
	return check, args.Error(1)
}

func (m *MockLedgerService) LogReversal(ctx context.Context, input domain.TransitionInput, originalTransitionID string, userID string) (*domain.TransitionRecord, error) {
	args := m.Called(ctx, input, originalTransitionID, userID)
	var record *domain.TransitionRecord
	if args.Get(0) != nil {
		record = args.Get(0).(*domain.TransitionRecord)
	}
	return record, args.Error(1)
}

func (m *MockLedgerService) MarkReverted(ctx context.Context, transitionID string, userID string, reversalTransitionID string) error {
	args := m.Called(ctx, transitionID, userID, reversalTransitionID)
	return args.Error(0)
}

func (m *MockLedgerService) RegisterStateReader(processType domain.ProcessType, reader portssvc.EntityStateReader) {
	m.Called(processType, reader)
}

type MockValidationService struct {
	mock.Mock
}

func (m *MockValidationService) ValidateInvoiceCase(ctx context.Context, caseID string, targetState domain.CaseWorkflowState) (*domain.ValidationDecision, error) {
	args := m.Called(ctx, caseID, targetState)
	var decision *domain.ValidationDecision
	if args.Get(0) != nil {
		decision = args.Get(0).(*domain.ValidationDecision)
	}
	return decision, args.Error(1)
}
