package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"freight_settlement/internal/adapter/http/handlers/mocks"
	"freight_settlement/internal/adapter/http/middleware"
	"freight_settlement/internal/domain/entities"
	"freight_settlement/internal/domain/valueobject"
	"freight_settlement/internal/usecase"
	"freight_settlement/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

type staticPermissions entities.Permissions

func (s staticPermissions) Permissions(context.Context, string) (entities.Permissions, error) {
	return entities.Permissions(s), nil
}

func ticketRouter(h *PaymentTicketHandler, perms entities.Permissions) *gin.Engine {
	r := gin.New()
	g := r.Group("/v1/tickets")
	g.GET("/:trip_id", h.GetTicket)
	g.PATCH("/:trip_id", h.UpdateTicket)
	g.DELETE("/:trip_id", h.DiscardTicket)
	g.POST("/:trip_id/advances", h.AddAdvance)
	g.DELETE("/:trip_id/advances/:slot", h.RemoveAdvance)
	g.GET("/:trip_id/authorizations", h.ListAuthorizations)
	g.POST("/:trip_id/authorize",
		middleware.RequireSession(staticPermissions(perms)),
		middleware.RequirePermission(entities.PermissionAuthorizePayments),
		h.Authorize,
	)
	return r
}

func sampleView() usecase.TicketView {
	tk := entities.PaymentTicket{
		TripID:      "10",
		DriverID:    "d-1",
		Stages:      []entities.TicketStage{{StageNumber: 1, MillasPcMiller: 500}},
		RatePerMile: valueobject.NewEditableDecimal("2"),
		Advances:    entities.Advances{A1: valueobject.NewEditableDecimal("100"), Visible: 1},
	}
	return usecase.TicketView{Ticket: tk, Totals: tk.Calculate()}
}

func TestPaymentTicketHandler_GetTicket(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentTicketUseCase(ctrl)
		uc.EXPECT().GetTicket(gomock.Any(), "10").Return(sampleView(), nil)

		w := serve(ticketRouter(NewPaymentTicketHandler(uc), entities.Permissions{}), http.MethodGet, "/v1/tickets/10", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			Totals struct {
				TotalPagar string `json:"total_pagar"`
			} `json:"totals"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil || body.Totals.TotalPagar != "900.00" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("remote rejection", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentTicketUseCase(ctrl)
		uc.EXPECT().GetTicket(gomock.Any(), "10").Return(usecase.TicketView{}, &interfaces.RemoteError{Op: "get_payment_ticket", Message: "Viaje sin stages"})

		w := serve(ticketRouter(NewPaymentTicketHandler(uc), entities.Permissions{}), http.MethodGet, "/v1/tickets/10", "")
		if w.Code != http.StatusUnprocessableEntity || decodeError(t, w).Message != "Viaje sin stages" {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})
}

func TestPaymentTicketHandler_UpdateTicket(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("empty patch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentTicketUseCase(ctrl)

		w := serve(ticketRouter(NewPaymentTicketHandler(uc), entities.Permissions{}), http.MethodPatch, "/v1/tickets/10", `{}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("bad stage key", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentTicketUseCase(ctrl)

		w := serve(ticketRouter(NewPaymentTicketHandler(uc), entities.Permissions{}), http.MethodPatch, "/v1/tickets/10", `{"ajustes":{"first":"10"}}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown stage", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentTicketUseCase(ctrl)
		uc.EXPECT().UpdateTicket(gomock.Any(), "10", gomock.Any()).Return(usecase.TicketView{}, entities.ErrUnknownStage)

		w := serve(ticketRouter(NewPaymentTicketHandler(uc), entities.Permissions{}), http.MethodPatch, "/v1/tickets/10", `{"ajustes":{"9":"10"}}`)
		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentTicketUseCase(ctrl)
		uc.EXPECT().UpdateTicket(gomock.Any(), "10", gomock.AssignableToTypeOf(entities.TicketPatch{})).DoAndReturn(
			func(_ context.Context, _ string, p entities.TicketPatch) (usecase.TicketView, error) {
				if p.RatePerMile == nil || p.RatePerMile.Raw() != "2.5" || p.Advances[2].Raw() != "40" {
					t.Fatalf("unexpected patch: %+v", p)
				}
				return sampleView(), nil
			},
		)

		w := serve(ticketRouter(NewPaymentTicketHandler(uc), entities.Permissions{}), http.MethodPatch, "/v1/tickets/10", `{"rate_per_mile":2.5,"advances":{"2":"40"}}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})
}

func TestPaymentTicketHandler_Advances(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIPaymentTicketUseCase(ctrl)
	r := ticketRouter(NewPaymentTicketHandler(uc), entities.Permissions{})

	uc.EXPECT().AddAdvance(gomock.Any(), "10").Return(usecase.TicketView{}, entities.ErrAdvanceLimit)
	if w := serve(r, http.MethodPost, "/v1/tickets/10/advances", ""); w.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", w.Code)
	}

	if w := serve(r, http.MethodDelete, "/v1/tickets/10/advances/two", ""); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}

	uc.EXPECT().RemoveAdvance(gomock.Any(), "10", 2).Return(sampleView(), nil)
	if w := serve(r, http.MethodDelete, "/v1/tickets/10/advances/2", ""); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	uc.EXPECT().DiscardTicket(gomock.Any(), "10").Return(nil)
	if w := serve(r, http.MethodDelete, "/v1/tickets/10", ""); w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
}

func authorizeRequest(r *gin.Engine) int {
	req, _ := http.NewRequest(http.MethodPost, "/v1/tickets/10/authorize", nil)
	req.Header.Set(middleware.SessionHeader, "tok")
	w := newRecorder()
	r.ServeHTTP(w, req)
	return w.Code
}

func TestPaymentTicketHandler_Authorize(t *testing.T) {
	gin.SetMode(gin.TestMode)
	granted := entities.Permissions{User: "ana", Grants: []string{entities.PermissionAuthorizePayments}}

	t.Run("without grant", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentTicketUseCase(ctrl)

		r := ticketRouter(NewPaymentTicketHandler(uc), entities.Permissions{User: "ana"})
		if code := authorizeRequest(r); code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", code)
		}
	})

	t.Run("not payable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentTicketUseCase(ctrl)
		uc.EXPECT().Authorize(gomock.Any(), "10", "ana").Return(entities.TicketAuthorization{}, usecase.ErrTicketNotPayable)

		if code := authorizeRequest(ticketRouter(NewPaymentTicketHandler(uc), granted)); code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", code)
		}
	})

	t.Run("remote unavailable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentTicketUseCase(ctrl)
		uc.EXPECT().Authorize(gomock.Any(), "10", "ana").Return(entities.TicketAuthorization{}, interfaces.ErrRemoteUnavailable)

		if code := authorizeRequest(ticketRouter(NewPaymentTicketHandler(uc), granted)); code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentTicketUseCase(ctrl)
		uc.EXPECT().Authorize(gomock.Any(), "10", "ana").Return(entities.TicketAuthorization{ID: "a-1", TripID: "10", Amount: 900, Operator: "ana", Date: time.Now().UTC()}, nil)

		if code := authorizeRequest(ticketRouter(NewPaymentTicketHandler(uc), granted)); code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", code)
		}
	})
}

func TestPaymentTicketHandler_ListAuthorizations(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIPaymentTicketUseCase(ctrl)
	uc.EXPECT().ListAuthorizations(gomock.Any(), "10").Return([]entities.TicketAuthorization{{ID: "a-1", Amount: 12.5}}, nil)

	w := serve(ticketRouter(NewPaymentTicketHandler(uc), entities.Permissions{}), http.MethodGet, "/v1/tickets/10/authorizations", "")
	if w.Code != http.StatusOK || !bytes.Contains(w.Body.Bytes(), []byte(`"amount":"12.50"`)) {
		t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
	}
}
