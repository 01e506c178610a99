package interfaces

import (
	"context"

	"freight_settlement/internal/domain/entities"
)

// IChangeSetRepository persists pending stage edits between requests.
//
// GetByID returns a zero ChangeSet (empty ID) when nothing is stored.
type IChangeSetRepository interface {
	Create(ctx context.Context, cs entities.ChangeSet) (entities.ChangeSet, error)
	GetByID(ctx context.Context, id string) (entities.ChangeSet, error)
	Save(ctx context.Context, cs entities.ChangeSet) error
	Delete(ctx context.Context, id string) error
}
