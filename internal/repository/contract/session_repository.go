package contract

import (
	"context"

	"github.com/google/uuid"

	"ai-tutor-be/internal/entity"
	"ai-tutor-be/internal/repository/specification"
)

type SessionRepository interface {
	Create(ctx context.Context, session *entity.Session) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Session, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Session, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) error
	// SetCollection mutates only the collection_id column; sessions are
	// otherwise immutable after creation.
	SetCollection(ctx context.Context, sessionId uuid.UUID, collectionId *uuid.UUID) error
	// DetachByCollectionId nulls collection_id for every session in the
	// collection. Used when the owning collection is deleted.
	DetachByCollectionId(ctx context.Context, collectionId uuid.UUID) error
}
