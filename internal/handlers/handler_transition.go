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

// TransitionHandler exposes the transition ledger directly: recording
// transitions on behalf of domain workflows and reading histories.
type TransitionHandler struct {
	ledgerService portssvc.TransitionLedgerSvcFacade
}

// NewTransitionHandler creates a new TransitionHandler.
func NewTransitionHandler(ls portssvc.TransitionLedgerSvcFacade) *TransitionHandler {
	return &TransitionHandler{ledgerService: ls}
}

// registerTransitionRoutes sets up the routes for the transition ledger.
func registerTransitionRoutes(rg *gin.RouterGroup, ls portssvc.TransitionLedgerSvcFacade) {
	h := NewTransitionHandler(ls)

	transitions := rg.Group("/transitions")
	{
		transitions.POST("", h.LogTransition)
		transitions.GET("/:processType/:entityID", h.GetHistory)
		transitions.GET("/:processType/:entityID/last", h.GetLastTransition)
		transitions.GET("/:processType/:entityID/can-revert", h.CanRevert)
	}
}

// LogTransition appends one record to the ledger.
func (h *TransitionHandler) LogTransition(c *gin.Context) {
	userID, found := middleware.GetUserIDFromContext(c)
	if !found {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "User ID not found in context"})
		return
	}

	var req dto.LogTransitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	record, err := h.ledgerService.LogTransition(c.Request.Context(), req.ToTransitionInput(userID))
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to log transition", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to log transition"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToTransitionResponse(record))
}

// GetHistory returns a token-paginated page of an entity's transition
// history, oldest first.
func (h *TransitionHandler) GetHistory(c *gin.Context) {
	processType := domain.ProcessType(c.Param("processType"))
	entityID := c.Param("entityID")

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	var nextToken *string
	if token := c.Query("nextToken"); token != "" {
		nextToken = &token
	}

	records, newToken, err := h.ledgerService.GetTransitionHistory(c.Request.Context(), processType, entityID, limit, nextToken)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid nextToken"})
			return
		}
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to get transition history", slog.String("error", err.Error()), slog.String("entity_id", entityID))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve transition history"})
		return
	}

	c.JSON(http.StatusOK, dto.ListTransitionsResponse{
		Transitions: dto.ToTransitionResponses(records),
		NextToken:   newToken,
	})
}

// GetLastTransition returns an entity's most recently recorded transition.
func (h *TransitionHandler) GetLastTransition(c *gin.Context) {
	processType := domain.ProcessType(c.Param("processType"))
	entityID := c.Param("entityID")

	record, err := h.ledgerService.GetLastTransition(c.Request.Context(), processType, entityID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "No transitions recorded for entity"})
			return
		}
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to get last transition", slog.String("error", err.Error()), slog.String("entity_id", entityID))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve last transition"})
		return
	}

	c.JSON(http.StatusOK, dto.ToTransitionResponse(record))
}

// CanRevert reports whether the entity's last transition could be safely
// undone, without changing anything.
func (h *TransitionHandler) CanRevert(c *gin.Context) {
	processType := domain.ProcessType(c.Param("processType"))
	entityID := c.Param("entityID")

	check, err := h.ledgerService.CanRevert(c.Request.Context(), processType, entityID)
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to evaluate revert eligibility", slog.String("error", err.Error()), slog.String("entity_id", entityID))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to evaluate revert eligibility"})
		return
	}

	c.JSON(http.StatusOK, dto.ToRevertCheckResponse(check))
}
