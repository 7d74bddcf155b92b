package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/railfleet/fleet_mgmt_app/internal/apperrors"
	"github.com/railfleet/fleet_mgmt_app/internal/core/domain"
	portssvc "github.com/railfleet/fleet_mgmt_app/internal/core/ports/services"
	"github.com/railfleet/fleet_mgmt_app/internal/dto"
	"github.com/railfleet/fleet_mgmt_app/internal/middleware"
)

// CaseHandler handles invoice case requests.
type CaseHandler struct {
	caseService       portssvc.InvoiceCaseSvcFacade
	validationService portssvc.ValidationSvcFacade
}

// NewCaseHandler creates a new CaseHandler.
func NewCaseHandler(cs portssvc.InvoiceCaseSvcFacade, vs portssvc.ValidationSvcFacade) *CaseHandler {
	return &CaseHandler{caseService: cs, validationService: vs}
}

// RegisterCaseRoutes sets up the routes for invoice cases. Exported so handler
// tests can mount the routes against mock services.
func RegisterCaseRoutes(rg *gin.RouterGroup, cs portssvc.InvoiceCaseSvcFacade, vs portssvc.ValidationSvcFacade) {
	h := NewCaseHandler(cs, vs)

	cases := rg.Group("/cases")
	{
		cases.GET("", h.ListCases)
		cases.GET("/:caseID", h.GetCase)
		cases.POST("/:caseID/validate", h.ValidateCase)
		cases.POST("/:caseID/transition", h.TransitionCase)
		cases.POST("/:caseID/revert", h.RevertCase)
	}
}

// ListCases returns a paginated case list.
func (h *CaseHandler) ListCases(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	var nextToken *string
	if token := c.Query("nextToken"); token != "" {
		nextToken = &token
	}

	cases, newToken, err := h.caseService.ListCases(c.Request.Context(), limit, nextToken)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid nextToken"})
			return
		}
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to list cases", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list cases"})
		return
	}

	responses := make([]dto.CaseResponse, len(cases))
	for i := range cases {
		responses[i] = dto.ToCaseResponse(&cases[i], nil, nil)
	}
	c.JSON(http.StatusOK, dto.ListCasesResponse{Cases: responses, NextToken: newToken})
}

// GetCase returns one case with its attachments and car marks.
func (h *CaseHandler) GetCase(c *gin.Context) {
	caseID := c.Param("caseID")

	invoiceCase, attachments, carMarks, err := h.caseService.GetCaseByID(c.Request.Context(), caseID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Case not found"})
			return
		}
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to get case", slog.String("error", err.Error()), slog.String("case_id", caseID))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve case"})
		return
	}

	c.JSON(http.StatusOK, dto.ToCaseResponse(invoiceCase, attachments, carMarks))
}

// ValidateCase runs the rule battery as a dry run without mutating anything.
func (h *CaseHandler) ValidateCase(c *gin.Context) {
	caseID := c.Param("caseID")

	var req dto.ValidateCaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	decision, err := h.validationService.ValidateInvoiceCase(c.Request.Context(), caseID, domain.CaseWorkflowState(req.TargetState))
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to validate case", slog.String("error", err.Error()), slog.String("case_id", caseID))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to validate case"})
		return
	}

	c.JSON(http.StatusOK, dto.ToValidationDecisionResponse(decision))
}

// TransitionCase validates and applies a workflow state change. A blocked
// decision comes back as 422 with the full decision payload.
func (h *CaseHandler) TransitionCase(c *gin.Context) {
	caseID := c.Param("caseID")

	userID, found := middleware.GetUserIDFromContext(c)
	if !found {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "User ID not found in context"})
		return
	}

	var req dto.TransitionCaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	decision, err := h.caseService.TransitionCase(c.Request.Context(), caseID, domain.CaseWorkflowState(req.TargetState), userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Case not found"})
			return
		}
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to transition case", slog.String("error", err.Error()), slog.String("case_id", caseID))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to transition case"})
		return
	}

	if !decision.CanTransition {
		c.JSON(http.StatusUnprocessableEntity, dto.ToValidationDecisionResponse(decision))
		return
	}
	c.JSON(http.StatusOK, dto.ToValidationDecisionResponse(decision))
}

// RevertCase undoes the case's most recent recorded transition. A denied
// revert comes back as 422 with the blocker list.
func (h *CaseHandler) RevertCase(c *gin.Context) {
	caseID := c.Param("caseID")

	userID, found := middleware.GetUserIDFromContext(c)
	if !found {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "User ID not found in context"})
		return
	}

	check, err := h.caseService.RevertLastTransition(c.Request.Context(), caseID, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "No transition history for case"})
			return
		}
		if errors.Is(err, apperrors.ErrConflict) {
			c.JSON(http.StatusConflict, ErrorResponse{Error: "Transition cannot be reverted"})
			return
		}
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to revert case transition", slog.String("error", err.Error()), slog.String("case_id", caseID))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to revert transition"})
		return
	}

	if !check.Allowed {
		c.JSON(http.StatusUnprocessableEntity, dto.ToRevertCheckResponse(check))
		return
	}
	c.JSON(http.StatusOK, dto.ToRevertCheckResponse(check))
}
