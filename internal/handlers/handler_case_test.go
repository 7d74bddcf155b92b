package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/railfleet/fleet_mgmt_app/internal/apperrors"
	"github.com/railfleet/fleet_mgmt_app/internal/core/domain"
	portssvc "github.com/railfleet/fleet_mgmt_app/internal/core/ports/services"
	"github.com/railfleet/fleet_mgmt_app/internal/dto"
	"github.com/railfleet/fleet_mgmt_app/internal/handlers"
	"github.com/railfleet/fleet_mgmt_app/internal/middleware"
)

// --- Mock InvoiceCaseService ---
type MockInvoiceCaseService struct {
	mock.Mock
}

func (m *MockInvoiceCaseService) GetCaseByID(ctx context.Context, caseID string) (*domain.InvoiceCase, []domain.CaseAttachment, []string, error) {
	args := m.Called(ctx, caseID)
	if args.Get(0) == nil {
		return nil, nil, nil, args.Error(3)
	}
	return args.Get(0).(*domain.InvoiceCase), args.Get(1).([]domain.CaseAttachment), args.Get(2).([]string), args.Error(3)
}
func (m *MockInvoiceCaseService) ListCases(ctx context.Context, limit int, nextToken *string) ([]domain.InvoiceCase, *string, error) {
	args := m.Called(ctx, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).([]domain.InvoiceCase), args.Get(1).(*string), args.Error(2)
}
func (m *MockInvoiceCaseService) TransitionCase(ctx context.Context, caseID string, targetState domain.CaseWorkflowState, userID string) (*domain.ValidationDecision, error) {
	args := m.Called(ctx, caseID, targetState, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ValidationDecision), args.Error(1)
}
func (m *MockInvoiceCaseService) RevertLastTransition(ctx context.Context, caseID string, userID string) (*domain.RevertCheck, error) {
	args := m.Called(ctx, caseID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RevertCheck), args.Error(1)
}

var _ portssvc.InvoiceCaseSvcFacade = (*MockInvoiceCaseService)(nil)

// --- Mock ValidationService ---
type MockCaseValidationService struct {
	mock.Mock
}

func (m *MockCaseValidationService) ValidateInvoiceCase(ctx context.Context, caseID string, targetState domain.CaseWorkflowState) (*domain.ValidationDecision, error) {
	args := m.Called(ctx, caseID, targetState)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ValidationDecision), args.Error(1)
}

var _ portssvc.ValidationSvcFacade = (*MockCaseValidationService)(nil)

// --- Test Suite ---
type CaseHandlerTestSuite struct {
	suite.Suite
	router          *gin.Engine
	mockCaseService *MockInvoiceCaseService
	mockValidation  *MockCaseValidationService
	jwtSecret       string
}

// generateTestToken creates a dummy JWT for testing.
func (suite *CaseHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "fleet-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *CaseHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	suite.mockCaseService = new(MockInvoiceCaseService)
	suite.mockValidation = new(MockCaseValidationService)

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterCaseRoutes(v1, suite.mockCaseService, suite.mockValidation)
}

func (suite *CaseHandlerTestSuite) doJSON(method, url, userID string, payload any) *httptest.ResponseRecorder {
	var body *bytes.Buffer
	if payload != nil {
		raw, err := json.Marshal(payload)
		suite.Require().NoError(err)
		body = bytes.NewBuffer(raw)
	} else {
		body = bytes.NewBuffer(nil)
	}

	req, _ := http.NewRequest(method, url, body)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *CaseHandlerTestSuite) TestTransitionCase_Success() {
	caseID := uuid.NewString()
	userID := uuid.NewString()

	decision := domain.NewValidationDecision()
	decision.Pass("PDF_PRESENT")
	decision.Pass("STATE_TRANSITION_VALID")

	suite.mockCaseService.On("TransitionCase",
		mock.Anything,
		caseID,
		domain.CaseStateEntered,
		userID,
	).Return(decision, nil).Once()

	url := fmt.Sprintf("/api/v1/cases/%s/transition", caseID)
	w := suite.doJSON(http.MethodPost, url, userID, dto.TransitionCaseRequest{TargetState: "ENTERED"})

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.ValidationDecisionResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.CanTransition)
	suite.Contains(resp.PassedChecks, "PDF_PRESENT")

	suite.mockCaseService.AssertExpectations(suite.T())
}

func (suite *CaseHandlerTestSuite) TestTransitionCase_BlockedReturns422() {
	caseID := uuid.NewString()
	userID := uuid.NewString()

	decision := domain.NewValidationDecision()
	decision.Block("MISSING_PDF", "Required PDF attachment is missing.", domain.RoleAdmin)

	suite.mockCaseService.On("TransitionCase",
		mock.Anything, caseID, domain.CaseStateEntered, userID,
	).Return(decision, nil).Once()

	url := fmt.Sprintf("/api/v1/cases/%s/transition", caseID)
	w := suite.doJSON(http.MethodPost, url, userID, dto.TransitionCaseRequest{TargetState: "ENTERED"})

	suite.Equal(http.StatusUnprocessableEntity, w.Code)

	var resp dto.ValidationDecisionResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.False(resp.CanTransition)
	suite.Require().Len(resp.BlockingErrors, 1)
	suite.Equal("MISSING_PDF", resp.BlockingErrors[0].Code)

	suite.mockCaseService.AssertExpectations(suite.T())
}

func (suite *CaseHandlerTestSuite) TestTransitionCase_MissingTargetStateReturns400() {
	caseID := uuid.NewString()
	userID := uuid.NewString()

	url := fmt.Sprintf("/api/v1/cases/%s/transition", caseID)
	w := suite.doJSON(http.MethodPost, url, userID, map[string]string{})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockCaseService.AssertNotCalled(suite.T(), "TransitionCase")
}

func (suite *CaseHandlerTestSuite) TestTransitionCase_UnauthenticatedReturns401() {
	caseID := uuid.NewString()

	raw, _ := json.Marshal(dto.TransitionCaseRequest{TargetState: "ENTERED"})
	req, _ := http.NewRequest(http.MethodPost, fmt.Sprintf("/api/v1/cases/%s/transition", caseID), bytes.NewBuffer(raw))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockCaseService.AssertNotCalled(suite.T(), "TransitionCase")
}

func (suite *CaseHandlerTestSuite) TestValidateCase_DryRunSuccess() {
	caseID := uuid.NewString()
	userID := uuid.NewString()

	decision := domain.NewValidationDecision()
	decision.Warn("CAR_REMARKED", "Car RAIL100001 has been remarked to RAIL200001.", domain.RoleAdmin)
	decision.Pass("TXT_PRESENT")

	suite.mockValidation.On("ValidateInvoiceCase",
		mock.Anything, caseID, domain.CaseStatePendingApproval,
	).Return(decision, nil).Once()

	url := fmt.Sprintf("/api/v1/cases/%s/validate", caseID)
	w := suite.doJSON(http.MethodPost, url, userID, dto.ValidateCaseRequest{TargetState: "PENDING_APPROVAL"})

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.ValidationDecisionResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.CanTransition)
	suite.Len(resp.Warnings, 1)

	suite.mockValidation.AssertExpectations(suite.T())
	suite.mockCaseService.AssertNotCalled(suite.T(), "TransitionCase")
}

func (suite *CaseHandlerTestSuite) TestGetCase_NotFoundReturns404() {
	caseID := uuid.NewString()
	userID := uuid.NewString()

	suite.mockCaseService.On("GetCaseByID", mock.Anything, caseID).
		Return(nil, nil, nil, fmt.Errorf("case %s: %w", caseID, apperrors.ErrNotFound)).Once()

	url := fmt.Sprintf("/api/v1/cases/%s", caseID)
	w := suite.doJSON(http.MethodGet, url, userID, nil)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockCaseService.AssertExpectations(suite.T())
}

func (suite *CaseHandlerTestSuite) TestRevertCase_DeniedReturns422() {
	caseID := uuid.NewString()
	userID := uuid.NewString()

	check := &domain.RevertCheck{
		Allowed:  false,
		Blockers: []string{"This transition has already been reversed."},
	}

	suite.mockCaseService.On("RevertLastTransition", mock.Anything, caseID, userID).
		Return(check, nil).Once()

	url := fmt.Sprintf("/api/v1/cases/%s/revert", caseID)
	w := suite.doJSON(http.MethodPost, url, userID, nil)

	suite.Equal(http.StatusUnprocessableEntity, w.Code)

	var resp dto.RevertCheckResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.False(resp.Allowed)
	suite.Require().Len(resp.Blockers, 1)

	suite.mockCaseService.AssertExpectations(suite.T())
}

func (suite *CaseHandlerTestSuite) TestRevertCase_AllowedReturns200() {
	caseID := uuid.NewString()
	userID := uuid.NewString()
	prev := "ENTERED"

	check := &domain.RevertCheck{
		Allowed:       true,
		Blockers:      []string{},
		PreviousState: &prev,
	}

	suite.mockCaseService.On("RevertLastTransition", mock.Anything, caseID, userID).
		Return(check, nil).Once()

	url := fmt.Sprintf("/api/v1/cases/%s/revert", caseID)
	w := suite.doJSON(http.MethodPost, url, userID, nil)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.RevertCheckResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.Allowed)
	suite.Equal("ENTERED", *resp.PreviousState)

	suite.mockCaseService.AssertExpectations(suite.T())
}

// --- Run Test Suite ---
func TestCaseHandler(t *testing.T) {
	suite.Run(t, new(CaseHandlerTestSuite))
}
