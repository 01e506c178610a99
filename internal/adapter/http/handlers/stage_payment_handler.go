package handlers

import (
	"errors"
	"net/http"

	request "freight_settlement/internal/adapter/http/dto/request"
	response "freight_settlement/internal/adapter/http/dto/response"
	"freight_settlement/internal/usecase"
	"freight_settlement/pkg"

	"github.com/gin-gonic/gin"
)

// StagePaymentHandler serves the stage payment board and its change-sets.
type StagePaymentHandler struct {
	usecase usecase.IStagePaymentUseCase
}

func NewStagePaymentHandler(uc usecase.IStagePaymentUseCase) *StagePaymentHandler {
	return &StagePaymentHandler{usecase: uc}
}

// ListTrips returns every trip with the edits of ?changeset_id overlaid.
func (h *StagePaymentHandler) ListTrips(c *gin.Context) {
	board, err := h.usecase.ListTrips(c.Request.Context(), c.Query("changeset_id"))
	if err != nil {
		abortWith(c, mapStageError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromTripBoard(board))
}

func (h *StagePaymentHandler) TripSummary(c *gin.Context) {
	summary, err := h.usecase.TripSummary(c.Request.Context(), c.Param("trip_id"))
	if err != nil {
		abortWith(c, mapStageError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromTripSummary(summary))
}

func (h *StagePaymentHandler) OpenChangeSet(c *gin.Context) {
	cs, err := h.usecase.OpenChangeSet(c.Request.Context())
	if err != nil {
		abortWith(c, mapStageError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromChangeSet(cs))
}

func (h *StagePaymentHandler) RecordEdit(c *gin.Context) {
	var payload request.StageEditRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	cs, err := h.usecase.RecordEdit(c.Request.Context(), c.Param("changeset_id"), c.Param("stage_id"), payload.ToEdit())
	if err != nil {
		abortWith(c, mapStageError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromChangeSet(cs))
}

func (h *StagePaymentHandler) RevertEdit(c *gin.Context) {
	cs, err := h.usecase.RevertEdit(c.Request.Context(), c.Param("changeset_id"), c.Param("stage_id"))
	if err != nil {
		abortWith(c, mapStageError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromChangeSet(cs))
}

func (h *StagePaymentHandler) PendingEdits(c *gin.Context) {
	report, err := h.usecase.PendingEdits(c.Request.Context(), c.Param("changeset_id"))
	if err != nil {
		abortWith(c, mapStageError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPendingReport(report))
}

// SaveBulk answers 422 with every failing stage when validation refuses the
// save; nothing reaches the back office in that case.
func (h *StagePaymentHandler) SaveBulk(c *gin.Context) {
	result, err := h.usecase.SaveBulk(c.Request.Context(), c.Param("changeset_id"))
	if err != nil {
		abortWith(c, mapStageError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromBulkSave(result))
}

func mapStageError(err error) *pkg.AppError {
	if appErr, ok := mapRemoteError(err); ok {
		return appErr
	}

	var validationErr *usecase.StageValidationError
	switch {
	case errors.As(err, &validationErr):
		return pkg.NewDomainErrorSimple("VALIDATION_FAILED", "Some stages have invalid values", http.StatusUnprocessableEntity).
			WithDetails(response.FromPendingItems(validationErr.Failures))
	case errors.Is(err, usecase.ErrInvalidChangeSetID), errors.Is(err, usecase.ErrInvalidStageID), errors.Is(err, usecase.ErrInvalidTripID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEmptyEdit):
		return pkg.NewDomainErrorSimple("EMPTY_EDIT", "The edit changes no field", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUnknownPaymentMethod):
		return pkg.NewDomainErrorSimple("UNKNOWN_PAYMENT_METHOD", "Payment method must be RTS, CHEQUE, TRIUM PAY or DEPOSITO", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrChangeSetNotFound):
		return pkg.NewDomainErrorSimple("CHANGESET_NOT_FOUND", "Change-set not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrTripNotFound):
		return pkg.NewDomainErrorSimple("TRIP_NOT_FOUND", "Trip not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrNothingToSave):
		return pkg.NewDomainErrorSimple("NOTHING_TO_SAVE", "No pending stage edits", http.StatusUnprocessableEntity)
	default:
		return pkg.NewDomainError(errInternal.Code, errInternal.Message, err, errInternal.HTTPStatus)
	}
}
