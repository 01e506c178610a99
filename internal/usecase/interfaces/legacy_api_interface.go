package interfaces

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"freight_settlement/internal/domain/entities"
)

// ErrRemoteUnavailable is returned when the remote API could not be reached
// or answered with something that is not a valid envelope.
var ErrRemoteUnavailable = errors.New("remote api unavailable")

// RemoteError is a business failure reported by the remote API
// (status != "success"). Message is shown to the operator verbatim.
type RemoteError struct {
	Op      string
	Message string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("remote %s failed: %s", e.Op, e.Message)
}

// ILegacyAPI is the remote PHP back office that owns trips, stages, tickets
// and expenses.
type ILegacyAPI interface {
	ListTrips(ctx context.Context) ([]entities.Trip, error)
	BulkUpdateStagePayments(ctx context.Context, items []entities.StagePaymentPayload) error
	GetPaymentTicket(ctx context.Context, tripID string) (entities.PaymentTicketSource, error)
	AuthorizePaymentTicket(ctx context.Context, a entities.TicketAuthorization) (remoteID string, remoteResponse json.RawMessage, err error)
	ListTripExpenses(ctx context.Context, tripID string) ([]entities.TripExpense, error)
}

// IPermissionSource resolves what an operator session is allowed to do.
type IPermissionSource interface {
	GetPermissions(ctx context.Context, token string) (entities.Permissions, error)
}
