package memory

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"

	"ai-tutor-be/internal/entity"
	"ai-tutor-be/internal/repository/specification"
)

type SessionRepository struct {
	cache *cache.Cache
}

func NewSessionRepository() *SessionRepository {
	return &SessionRepository{cache: cache.New(cache.NoExpiration, 10*time.Minute)}
}

func (r *SessionRepository) Create(ctx context.Context, session *entity.Session) error {
	r.cache.Set(session.Id.String(), session, cache.NoExpiration)
	return nil
}

func (r *SessionRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Session, error) {
	sessions := r.filter(specs)
	if len(sessions) == 0 {
		return nil, nil
	}
	return sessions[0], nil
}

func (r *SessionRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Session, error) {
	return r.filter(specs), nil
}

func (r *SessionRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	for _, item := range r.cache.Items() {
		if matchSession(item.Object.(*entity.Session), specs) {
			count++
		}
	}
	return count, nil
}

func (r *SessionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.cache.Delete(id.String())
	return nil
}

func (r *SessionRepository) SetCollection(ctx context.Context, sessionId uuid.UUID, collectionId *uuid.UUID) error {
	raw, found := r.cache.Get(sessionId.String())
	if !found {
		return nil
	}
	session := raw.(*entity.Session)
	session.CollectionId = collectionId
	r.cache.Set(sessionId.String(), session, cache.NoExpiration)
	return nil
}

func (r *SessionRepository) DetachByCollectionId(ctx context.Context, collectionId uuid.UUID) error {
	for _, item := range r.cache.Items() {
		session := item.Object.(*entity.Session)
		if session.CollectionId != nil && *session.CollectionId == collectionId {
			session.CollectionId = nil
			r.cache.Set(session.Id.String(), session, cache.NoExpiration)
		}
	}
	return nil
}

// filter applies matching, ordering and pagination specs, in that order, the
// same way the SQL implementation composes them.
func (r *SessionRepository) filter(specs []specification.Specification) []*entity.Session {
	var sessions []*entity.Session
	for _, item := range r.cache.Items() {
		session := item.Object.(*entity.Session)
		if matchSession(session, specs) {
			sessions = append(sessions, session)
		}
	}

	for _, spec := range specs {
		if order, ok := spec.(specification.OrderBy); ok && order.Field == "created_at" {
			sort.Slice(sessions, func(i, j int) bool {
				if order.Desc {
					return sessions[i].CreatedAt.After(sessions[j].CreatedAt)
				}
				return sessions[i].CreatedAt.Before(sessions[j].CreatedAt)
			})
		}
	}

	for _, spec := range specs {
		if page, ok := spec.(specification.Pagination); ok {
			if page.Offset >= len(sessions) {
				return nil
			}
			sessions = sessions[page.Offset:]
			if page.Limit > 0 && page.Limit < len(sessions) {
				sessions = sessions[:page.Limit]
			}
		}
	}
	return sessions
}

func matchSession(session *entity.Session, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			if session.Id != s.ID {
				return false
			}
		case specification.UserOwnedBy:
			if session.UserId != s.UserID {
				return false
			}
		case specification.ByCollectionID:
			if session.CollectionId == nil || *session.CollectionId != s.CollectionID {
				return false
			}
		case specification.ByCollectionIDs:
			if session.CollectionId == nil {
				return false
			}
			found := false
			for _, id := range s.CollectionIDs {
				if *session.CollectionId == id {
					found = true
					break
				}
			}
			if !found {
				return false
			}
		}
	}
	return true
}
