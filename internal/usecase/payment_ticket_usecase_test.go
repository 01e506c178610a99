package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"freight_settlement/internal/domain/entities"
	"freight_settlement/internal/domain/valueobject"
	"freight_settlement/internal/usecase/interfaces"
	mock_interfaces "freight_settlement/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func dec(s string) valueobject.EditableDecimal { return valueobject.NewEditableDecimal(s) }

func draftTicket() entities.PaymentTicket {
	return entities.PaymentTicket{
		TripID:   "10",
		DriverID: "d-1",
		Stages: []entities.TicketStage{
			{StageNumber: 1, Origin: "Laredo", Destination: "Dallas", MillasPcMiller: 500},
			{StageNumber: 2, Origin: "Dallas", Destination: "Houston", MillasPcMiller: 300},
		},
		Ajustes:     map[int]valueobject.EditableDecimal{1: dec("50")},
		RatePerMile: dec("2"),
		Advances:    entities.Advances{A1: dec("100"), Visible: 1},
		Gastos:      dec("25"),
	}
}

type ticketMocks struct {
	api    *mock_interfaces.MockILegacyAPI
	drafts *mock_interfaces.MockITicketDraftRepository
	audit  *mock_interfaces.MockITicketAuthorizationRepository
	uc     *PaymentTicketUseCase
}

func newTicketMocks(ctrl *gomock.Controller) ticketMocks {
	m := ticketMocks{
		api:    mock_interfaces.NewMockILegacyAPI(ctrl),
		drafts: mock_interfaces.NewMockITicketDraftRepository(ctrl),
		audit:  mock_interfaces.NewMockITicketAuthorizationRepository(ctrl),
	}
	m.uc = NewPaymentTicketUseCase(m.api, m.drafts, m.audit)
	return m
}

func TestPaymentTicketUseCase_GetTicket(t *testing.T) {
	t.Run("invalid trip id", func(t *testing.T) {
		uc := NewPaymentTicketUseCase(nil, nil, nil)
		if _, err := uc.GetTicket(context.Background(), "  "); !errors.Is(err, ErrInvalidTripID) {
			t.Fatalf("expected ErrInvalidTripID, got %v", err)
		}
	})

	t.Run("existing draft", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newTicketMocks(ctrl)

		m.drafts.EXPECT().GetByTripID(gomock.Any(), "10").Return(draftTicket(), nil)

		view, err := m.uc.GetTicket(context.Background(), "10")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if view.Totals.TotalPagarDisplay() != "1375.00" {
			t.Fatalf("expected 1375.00, got %s", view.Totals.TotalPagarDisplay())
		}
	})

	t.Run("builds draft with saved data", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newTicketMocks(ctrl)

		src := draftTicket()
		src.Ajustes = map[int]valueobject.EditableDecimal{}
		src.Advances = entities.Advances{Visible: 1}
		src.Gastos = dec("")

		m.drafts.EXPECT().GetByTripID(gomock.Any(), "10").Return(entities.PaymentTicket{}, nil)
		m.api.EXPECT().GetPaymentTicket(gomock.Any(), "10").Return(entities.PaymentTicketSource{
			Ticket: src,
			Saved:  &entities.SavedTicketData{Anticipo1: dec("100"), Anticipo2: dec("200"), GastosAplicados: dec("60")},
		}, nil)
		m.drafts.EXPECT().Save(gomock.Any(), gomock.AssignableToTypeOf(entities.PaymentTicket{})).Return(nil)

		view, err := m.uc.GetTicket(context.Background(), "10")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if view.Ticket.Advances.Visible != 2 || view.Ticket.Gastos.Raw() != "60" {
			t.Fatalf("unexpected prefill: %+v", view.Ticket)
		}
		// 800 * 2 - 300 - 60
		if view.Totals.TotalPagar != 1240 {
			t.Fatalf("expected 1240, got %v", view.Totals.TotalPagar)
		}
	})

	t.Run("gastos from expenses", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newTicketMocks(ctrl)

		src := draftTicket()
		src.Gastos = dec("")

		m.drafts.EXPECT().GetByTripID(gomock.Any(), "10").Return(entities.PaymentTicket{}, nil)
		m.api.EXPECT().GetPaymentTicket(gomock.Any(), "10").Return(entities.PaymentTicketSource{Ticket: src}, nil)
		m.api.EXPECT().ListTripExpenses(gomock.Any(), "10").Return([]entities.TripExpense{{Amount: 20.004}, {Amount: 15}}, nil)
		m.drafts.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

		view, err := m.uc.GetTicket(context.Background(), "10")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if view.Ticket.Gastos.Raw() != "35" {
			t.Fatalf("expected gastos 35, got %q", view.Ticket.Gastos.Raw())
		}
	})

	t.Run("expenses failure leaves gastos blank", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newTicketMocks(ctrl)

		src := draftTicket()
		src.Gastos = dec("")

		m.drafts.EXPECT().GetByTripID(gomock.Any(), "10").Return(entities.PaymentTicket{}, nil)
		m.api.EXPECT().GetPaymentTicket(gomock.Any(), "10").Return(entities.PaymentTicketSource{Ticket: src}, nil)
		m.api.EXPECT().ListTripExpenses(gomock.Any(), "10").Return(nil, interfaces.ErrRemoteUnavailable)
		m.drafts.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

		view, err := m.uc.GetTicket(context.Background(), "10")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !view.Ticket.Gastos.IsBlank() {
			t.Fatalf("expected blank gastos")
		}
	})

	t.Run("remote failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newTicketMocks(ctrl)

		m.drafts.EXPECT().GetByTripID(gomock.Any(), "10").Return(entities.PaymentTicket{}, nil)
		m.api.EXPECT().GetPaymentTicket(gomock.Any(), "10").Return(entities.PaymentTicketSource{}, &interfaces.RemoteError{Op: "get_payment_ticket", Message: "Viaje no encontrado"})

		_, err := m.uc.GetTicket(context.Background(), "10")
		var remoteErr *interfaces.RemoteError
		if !errors.As(err, &remoteErr) {
			t.Fatalf("expected RemoteError, got %v", err)
		}
	})
}

func TestPaymentTicketUseCase_Edits(t *testing.T) {
	t.Run("update persists draft", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newTicketMocks(ctrl)

		m.drafts.EXPECT().GetByTripID(gomock.Any(), "10").Return(draftTicket(), nil)
		m.drafts.EXPECT().Save(gomock.Any(), gomock.AssignableToTypeOf(entities.PaymentTicket{})).DoAndReturn(
			func(_ context.Context, tk entities.PaymentTicket) error {
				if tk.RatePerMile.Raw() != "3" || tk.UpdatedAt.IsZero() {
					t.Fatalf("unexpected draft: %+v", tk)
				}
				return nil
			},
		)

		rate := dec("3")
		view, err := m.uc.UpdateTicket(context.Background(), "10", entities.TicketPatch{RatePerMile: &rate})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if view.Totals.Subtotal != 2250 {
			t.Fatalf("expected 2250, got %v", view.Totals.Subtotal)
		}
	})

	t.Run("unknown stage is not saved", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newTicketMocks(ctrl)

		m.drafts.EXPECT().GetByTripID(gomock.Any(), "10").Return(draftTicket(), nil)

		_, err := m.uc.UpdateTicket(context.Background(), "10", entities.TicketPatch{Ajustes: map[int]valueobject.EditableDecimal{7: dec("1")}})
		if !errors.Is(err, entities.ErrUnknownStage) {
			t.Fatalf("expected ErrUnknownStage, got %v", err)
		}
	})

	t.Run("add advance up to the limit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newTicketMocks(ctrl)

		full := draftTicket()
		full.Advances.Visible = 3
		m.drafts.EXPECT().GetByTripID(gomock.Any(), "10").Return(full, nil)

		if _, err := m.uc.AddAdvance(context.Background(), "10"); !errors.Is(err, entities.ErrAdvanceLimit) {
			t.Fatalf("expected ErrAdvanceLimit, got %v", err)
		}
	})

	t.Run("remove advance", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newTicketMocks(ctrl)

		tk := draftTicket()
		tk.Advances = entities.Advances{A1: dec("100"), A2: dec("50"), Visible: 2}
		m.drafts.EXPECT().GetByTripID(gomock.Any(), "10").Return(tk, nil)
		m.drafts.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

		view, err := m.uc.RemoveAdvance(context.Background(), "10", 2)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if view.Ticket.Advances.Visible != 1 || view.Totals.TotalAvances != 100 {
			t.Fatalf("unexpected advances: %+v", view.Ticket.Advances)
		}
	})
}

func TestPaymentTicketUseCase_Authorize(t *testing.T) {
	t.Run("requires operator", func(t *testing.T) {
		uc := NewPaymentTicketUseCase(nil, nil, nil)
		if _, err := uc.Authorize(context.Background(), "10", ""); !errors.Is(err, ErrInvalidOperator) {
			t.Fatalf("expected ErrInvalidOperator, got %v", err)
		}
	})

	t.Run("non finite amount is never sent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newTicketMocks(ctrl)

		tk := draftTicket()
		tk.RatePerMile = dec("abc")
		m.drafts.EXPECT().GetByTripID(gomock.Any(), "10").Return(tk, nil)

		if _, err := m.uc.Authorize(context.Background(), "10", "ana"); !errors.Is(err, ErrTicketNotPayable) {
			t.Fatalf("expected ErrTicketNotPayable, got %v", err)
		}
	})

	t.Run("remote failure keeps draft", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newTicketMocks(ctrl)

		m.drafts.EXPECT().GetByTripID(gomock.Any(), "10").Return(draftTicket(), nil)
		m.api.EXPECT().AuthorizePaymentTicket(gomock.Any(), gomock.Any()).Return("", nil, interfaces.ErrRemoteUnavailable)

		if _, err := m.uc.Authorize(context.Background(), "10", "ana"); !errors.Is(err, interfaces.ErrRemoteUnavailable) {
			t.Fatalf("expected ErrRemoteUnavailable, got %v", err)
		}
	})

	t.Run("success records audit and drops draft", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newTicketMocks(ctrl)

		m.drafts.EXPECT().GetByTripID(gomock.Any(), "10").Return(draftTicket(), nil)
		m.api.EXPECT().AuthorizePaymentTicket(gomock.Any(), gomock.AssignableToTypeOf(entities.TicketAuthorization{})).DoAndReturn(
			func(_ context.Context, a entities.TicketAuthorization) (string, json.RawMessage, error) {
				if a.Amount != 1375 || a.RatePerMile != 2 || a.Anticipo1 != 100 || a.Gastos != 25 || a.Ajustes[1] != 50 || a.DriverID != "d-1" {
					t.Fatalf("unexpected authorization: %+v", a)
				}
				return "991", json.RawMessage(`{"status":"success","id":991}`), nil
			},
		)
		m.audit.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.TicketAuthorization{})).DoAndReturn(
			func(_ context.Context, a entities.TicketAuthorization) (entities.TicketAuthorization, error) {
				if a.ID == "" || a.RemoteID != "991" || a.Operator != "ana" || a.Date.IsZero() || a.Status != entities.AuthorizationStatusAutorizado {
					t.Fatalf("unexpected audit record: %+v", a)
				}
				return a, nil
			},
		)
		m.drafts.EXPECT().Delete(gomock.Any(), "10").Return(nil)

		a, err := m.uc.Authorize(context.Background(), "10", " ana ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if a.RemoteID != "991" {
			t.Fatalf("unexpected result: %+v", a)
		}
	})
}

func TestPaymentTicketUseCase_AuthorizeSendsUnroundedAmount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	m := newTicketMocks(ctrl)

	tk := draftTicket()
	tk.Gastos = dec("25.004")
	gastos := 25.004
	want := 1400 - gastos

	m.drafts.EXPECT().GetByTripID(gomock.Any(), "10").Return(tk, nil)
	m.api.EXPECT().AuthorizePaymentTicket(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, a entities.TicketAuthorization) (string, json.RawMessage, error) {
			if a.Amount != want {
				t.Fatalf("expected amount %v, got %v", want, a.Amount)
			}
			if a.Amount == valueobject.Round2(a.Amount) {
				t.Fatalf("expected amount to keep its third decimal, got %v", a.Amount)
			}
			return "992", json.RawMessage(`{"status":"success","id":992}`), nil
		},
	)
	m.audit.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, a entities.TicketAuthorization) (entities.TicketAuthorization, error) {
			return a, nil
		},
	)
	m.drafts.EXPECT().Delete(gomock.Any(), "10").Return(nil)

	if _, err := m.uc.Authorize(context.Background(), "10", "ana"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestPaymentTicketUseCase_DiscardAndList(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	m := newTicketMocks(ctrl)

	m.drafts.EXPECT().Delete(gomock.Any(), "10").Return(errors.New("db"))
	if err := m.uc.DiscardTicket(context.Background(), "10"); err == nil || err.Error() != "db" {
		t.Fatalf("expected db error, got %v", err)
	}

	m.audit.EXPECT().ListByTripID(gomock.Any(), "10").Return([]entities.TicketAuthorization{{ID: "a-1"}}, nil)
	list, err := m.uc.ListAuthorizations(context.Background(), "10")
	if err != nil || len(list) != 1 {
		t.Fatalf("unexpected list: %+v err=%v", list, err)
	}
}
