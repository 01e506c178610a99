package handlers

import (
	"errors"
	"net/http"
	"strconv"

	request "freight_settlement/internal/adapter/http/dto/request"
	response "freight_settlement/internal/adapter/http/dto/response"
	"freight_settlement/internal/adapter/http/middleware"
	"freight_settlement/internal/domain/entities"
	"freight_settlement/internal/usecase"
	"freight_settlement/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidSlot = pkg.NewDomainErrorSimple("INVALID_ADVANCE", "Advance slot must be 2 or 3", http.StatusBadRequest)

// PaymentTicketHandler serves the driver payment ticket of a trip.
type PaymentTicketHandler struct {
	usecase usecase.IPaymentTicketUseCase
}

func NewPaymentTicketHandler(uc usecase.IPaymentTicketUseCase) *PaymentTicketHandler {
	return &PaymentTicketHandler{usecase: uc}
}

func (h *PaymentTicketHandler) GetTicket(c *gin.Context) {
	view, err := h.usecase.GetTicket(c.Request.Context(), c.Param("trip_id"))
	if err != nil {
		abortWith(c, mapTicketError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromTicketView(view))
}

func (h *PaymentTicketHandler) UpdateTicket(c *gin.Context) {
	var payload request.TicketPatchRequest
	if err := c.ShouldBindJSON(&payload); err != nil || payload.Empty() {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}
	patch, err := payload.ToPatch()
	if err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.WithDetails(err.Error()).ToHTTPError())
		return
	}

	view, err := h.usecase.UpdateTicket(c.Request.Context(), c.Param("trip_id"), patch)
	if err != nil {
		abortWith(c, mapTicketError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromTicketView(view))
}

func (h *PaymentTicketHandler) AddAdvance(c *gin.Context) {
	view, err := h.usecase.AddAdvance(c.Request.Context(), c.Param("trip_id"))
	if err != nil {
		abortWith(c, mapTicketError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromTicketView(view))
}

func (h *PaymentTicketHandler) RemoveAdvance(c *gin.Context) {
	slot, err := strconv.Atoi(c.Param("slot"))
	if err != nil {
		c.JSON(errInvalidSlot.HTTPStatus, errInvalidSlot.ToHTTPError())
		return
	}

	view, err := h.usecase.RemoveAdvance(c.Request.Context(), c.Param("trip_id"), slot)
	if err != nil {
		abortWith(c, mapTicketError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromTicketView(view))
}

func (h *PaymentTicketHandler) DiscardTicket(c *gin.Context) {
	if err := h.usecase.DiscardTicket(c.Request.Context(), c.Param("trip_id")); err != nil {
		abortWith(c, mapTicketError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// Authorize sends the ticket for payment on behalf of the session user.
func (h *PaymentTicketHandler) Authorize(c *gin.Context) {
	a, err := h.usecase.Authorize(c.Request.Context(), c.Param("trip_id"), middleware.Operator(c))
	if err != nil {
		abortWith(c, mapTicketError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromAuthorization(a))
}

func (h *PaymentTicketHandler) ListAuthorizations(c *gin.Context) {
	list, err := h.usecase.ListAuthorizations(c.Request.Context(), c.Param("trip_id"))
	if err != nil {
		abortWith(c, mapTicketError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromAuthorizations(list))
}

func mapTicketError(err error) *pkg.AppError {
	if appErr, ok := mapRemoteError(err); ok {
		return appErr
	}

	switch {
	case errors.Is(err, usecase.ErrInvalidTripID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidOperator):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "The session has no operator", http.StatusForbidden)
	case errors.Is(err, usecase.ErrTicketNotPayable):
		return pkg.NewDomainErrorSimple("TICKET_NOT_PAYABLE", "The amount to pay is not a number", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrInvalidAdjustment):
		return pkg.NewDomainErrorSimple("INVALID_ADJUSTMENT", "A mileage adjustment is not a number", http.StatusUnprocessableEntity)
	case errors.Is(err, entities.ErrUnknownStage):
		return pkg.NewDomainErrorSimple("UNKNOWN_STAGE", "The ticket has no such stage", http.StatusUnprocessableEntity)
	case errors.Is(err, entities.ErrAdvanceLimit):
		return pkg.NewDomainErrorSimple("ADVANCE_LIMIT", "At most 3 advances", http.StatusConflict)
	case errors.Is(err, entities.ErrAdvanceSlotHidden):
		return pkg.NewDomainErrorSimple("ADVANCE_NOT_VISIBLE", "Advance slot is not visible", http.StatusUnprocessableEntity)
	case errors.Is(err, entities.ErrInvalidAdvance):
		return errInvalidSlot
	default:
		return pkg.NewDomainError(errInternal.Code, errInternal.Message, err, errInternal.HTTPStatus)
	}
}
