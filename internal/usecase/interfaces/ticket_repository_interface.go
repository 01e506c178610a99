package interfaces

import (
	"context"

	"freight_settlement/internal/domain/entities"
)

// ITicketDraftRepository keeps the ticket an operator is still adjusting,
// one per trip. GetByTripID returns a zero ticket when there is no draft.
type ITicketDraftRepository interface {
	GetByTripID(ctx context.Context, tripID string) (entities.PaymentTicket, error)
	Save(ctx context.Context, t entities.PaymentTicket) error
	Delete(ctx context.Context, tripID string) error
}

// ITicketAuthorizationRepository is the audit trail of authorized tickets.
type ITicketAuthorizationRepository interface {
	Create(ctx context.Context, a entities.TicketAuthorization) (entities.TicketAuthorization, error)
	ListByTripID(ctx context.Context, tripID string) ([]entities.TicketAuthorization, error)
}
