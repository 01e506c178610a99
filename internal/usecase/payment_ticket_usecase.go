package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"freight_settlement/internal/domain/entities"
	"freight_settlement/internal/domain/valueobject"
	"freight_settlement/internal/infrastructure/metrics"
	"freight_settlement/internal/usecase/interfaces"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

var (
	ErrTicketNotPayable  = errors.New("ticket amount is not a number")
	ErrInvalidAdjustment = errors.New("invalid mileage adjustment")
	ErrInvalidOperator   = errors.New("invalid operator")
)

// TicketView is a ticket with its totals computed.
type TicketView struct {
	Ticket entities.PaymentTicket
	Totals entities.TicketTotals
}

func newTicketView(t entities.PaymentTicket) TicketView {
	return TicketView{Ticket: t, Totals: t.Calculate()}
}

// IPaymentTicketUseCase drives the driver payment ticket: a draft is built
// from the remote ticket on first access, edited locally and finally sent
// for authorization.
type IPaymentTicketUseCase interface {
	GetTicket(ctx context.Context, tripID string) (TicketView, error)
	UpdateTicket(ctx context.Context, tripID string, patch entities.TicketPatch) (TicketView, error)
	AddAdvance(ctx context.Context, tripID string) (TicketView, error)
	RemoveAdvance(ctx context.Context, tripID string, slot int) (TicketView, error)
	DiscardTicket(ctx context.Context, tripID string) error
	Authorize(ctx context.Context, tripID, operator string) (entities.TicketAuthorization, error)
	ListAuthorizations(ctx context.Context, tripID string) ([]entities.TicketAuthorization, error)
}

type PaymentTicketUseCase struct {
	api            interfaces.ILegacyAPI
	drafts         interfaces.ITicketDraftRepository
	authorizations interfaces.ITicketAuthorizationRepository
}

var _ IPaymentTicketUseCase = (*PaymentTicketUseCase)(nil)

func NewPaymentTicketUseCase(api interfaces.ILegacyAPI, drafts interfaces.ITicketDraftRepository, authorizations interfaces.ITicketAuthorizationRepository) *PaymentTicketUseCase {
	return &PaymentTicketUseCase{api: api, drafts: drafts, authorizations: authorizations}
}

func (u *PaymentTicketUseCase) GetTicket(ctx context.Context, tripID string) (TicketView, error) {
	t, err := u.load(ctx, tripID)
	if err != nil {
		return TicketView{}, err
	}
	return newTicketView(t), nil
}

func (u *PaymentTicketUseCase) UpdateTicket(ctx context.Context, tripID string, patch entities.TicketPatch) (TicketView, error) {
	return u.mutate(ctx, tripID, func(t *entities.PaymentTicket, now time.Time) error {
		return t.Apply(patch, now)
	})
}

func (u *PaymentTicketUseCase) AddAdvance(ctx context.Context, tripID string) (TicketView, error) {
	return u.mutate(ctx, tripID, func(t *entities.PaymentTicket, now time.Time) error {
		if err := t.Advances.AddSlot(); err != nil {
			return err
		}
		t.UpdatedAt = now
		return nil
	})
}

func (u *PaymentTicketUseCase) RemoveAdvance(ctx context.Context, tripID string, slot int) (TicketView, error) {
	return u.mutate(ctx, tripID, func(t *entities.PaymentTicket, now time.Time) error {
		if err := t.Advances.RemoveSlot(slot); err != nil {
			return err
		}
		t.UpdatedAt = now
		return nil
	})
}

func (u *PaymentTicketUseCase) DiscardTicket(ctx context.Context, tripID string) error {
	tripID = strings.TrimSpace(tripID)
	if tripID == "" {
		return ErrInvalidTripID
	}
	if err := u.drafts.Delete(ctx, tripID); err != nil {
		log.WithError(err).WithField("trip_id", tripID).Error("[ticket][usecase] draft delete failed")
		return err
	}
	return nil
}

// Authorize sends the amount due to the remote system. The draft is dropped
// only once the remote accepted it; a non-finite amount is never sent.
func (u *PaymentTicketUseCase) Authorize(ctx context.Context, tripID, operator string) (entities.TicketAuthorization, error) {
	operator = strings.TrimSpace(operator)
	if operator == "" {
		return entities.TicketAuthorization{}, ErrInvalidOperator
	}
	t, err := u.load(ctx, tripID)
	if err != nil {
		return entities.TicketAuthorization{}, err
	}
	entry := log.WithFields(log.Fields{"trip_id": t.TripID, "operator": operator})

	totals := t.Calculate()
	if !totals.Payable() {
		metrics.TicketAuthorizations.WithLabelValues(metrics.OutcomeInvalid).Inc()
		entry.Info("[ticket][usecase] authorization refused, amount is not a number")
		return entities.TicketAuthorization{}, ErrTicketNotPayable
	}
	ajustes, ok := t.AjustesMap()
	if !ok {
		metrics.TicketAuthorizations.WithLabelValues(metrics.OutcomeInvalid).Inc()
		return entities.TicketAuthorization{}, ErrInvalidAdjustment
	}

	a := entities.TicketAuthorization{
		ID:          uuid.NewString(),
		TripID:      t.TripID,
		DriverID:    t.DriverID,
		Amount:      totals.TotalPagar,
		RatePerMile: t.RatePerMile.Float(),
		Anticipo1:   t.Advances.A1.Float(),
		Anticipo2:   t.Advances.A2.Float(),
		Anticipo3:   t.Advances.A3.Float(),
		Gastos:      t.Gastos.Float(),
		Ajustes:     ajustes,
		Status:      entities.AuthorizationStatusAutorizado,
		Operator:    operator,
	}

	entry.WithField("amount", valueobject.Money2(a.Amount)).Info("[ticket][usecase] sending authorization")
	remoteID, raw, err := u.api.AuthorizePaymentTicket(ctx, a)
	if err != nil {
		outcome := metrics.OutcomeError
		var remoteErr *interfaces.RemoteError
		if errors.As(err, &remoteErr) {
			outcome = metrics.OutcomeRejected
		}
		metrics.TicketAuthorizations.WithLabelValues(outcome).Inc()
		entry.WithError(err).Warn("[ticket][usecase] authorization failed, draft kept")
		return entities.TicketAuthorization{}, err
	}
	metrics.TicketAuthorizations.WithLabelValues(metrics.OutcomeSuccess).Inc()

	a.RemoteID = remoteID
	a.RemoteResponseRaw = raw
	a.Date = time.Now().UTC()

	created, err := u.authorizations.Create(ctx, a)
	if err != nil {
		entry.WithError(err).Error("[ticket][usecase] authorization audit write failed")
		created = a
	}
	if err := u.drafts.Delete(ctx, t.TripID); err != nil {
		entry.WithError(err).Warn("[ticket][usecase] draft delete failed after authorization")
	}
	entry.WithField("remote_id", remoteID).Info("[ticket][usecase] ticket authorized")
	return created, nil
}

func (u *PaymentTicketUseCase) ListAuthorizations(ctx context.Context, tripID string) ([]entities.TicketAuthorization, error) {
	tripID = strings.TrimSpace(tripID)
	if tripID == "" {
		return nil, ErrInvalidTripID
	}
	return u.authorizations.ListByTripID(ctx, tripID)
}

func (u *PaymentTicketUseCase) mutate(ctx context.Context, tripID string, fn func(t *entities.PaymentTicket, now time.Time) error) (TicketView, error) {
	t, err := u.load(ctx, tripID)
	if err != nil {
		return TicketView{}, err
	}
	if err := fn(&t, time.Now().UTC()); err != nil {
		return TicketView{}, err
	}
	if err := u.drafts.Save(ctx, t); err != nil {
		log.WithError(err).WithField("trip_id", t.TripID).Error("[ticket][usecase] draft save failed")
		return TicketView{}, err
	}
	return newTicketView(t), nil
}

// load returns the stored draft, or builds and stores one from the remote
// ticket.
func (u *PaymentTicketUseCase) load(ctx context.Context, tripID string) (entities.PaymentTicket, error) {
	tripID = strings.TrimSpace(tripID)
	if tripID == "" {
		return entities.PaymentTicket{}, ErrInvalidTripID
	}

	draft, err := u.drafts.GetByTripID(ctx, tripID)
	if err != nil {
		return entities.PaymentTicket{}, err
	}
	if draft.TripID != "" {
		return draft, nil
	}

	src, err := u.api.GetPaymentTicket(ctx, tripID)
	if err != nil {
		log.WithError(err).WithField("trip_id", tripID).Warn("[ticket][usecase] remote ticket fetch failed")
		return entities.PaymentTicket{}, err
	}
	t := src.Ticket
	t.TripID = tripID

	var expensesTotal *float64
	if src.Saved == nil || src.Saved.GastosAplicados.IsBlank() {
		expenses, err := u.api.ListTripExpenses(ctx, tripID)
		if err != nil {
			log.WithError(err).WithField("trip_id", tripID).Warn("[ticket][usecase] expenses lookup failed, gastos left blank")
		} else {
			total := entities.TotalExpenses(expenses)
			expensesTotal = &total
		}
	}
	t.Prefill(src.Saved, expensesTotal)
	t.UpdatedAt = time.Now().UTC()

	if err := u.drafts.Save(ctx, t); err != nil {
		return entities.PaymentTicket{}, err
	}
	log.WithFields(log.Fields{"trip_id": tripID, "stages": len(t.Stages)}).Info("[ticket][usecase] draft created from remote ticket")
	return t, nil
}
