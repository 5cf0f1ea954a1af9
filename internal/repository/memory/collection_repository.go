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

type CollectionRepository struct {
	cache *cache.Cache
}

func NewCollectionRepository() *CollectionRepository {
	return &CollectionRepository{cache: cache.New(cache.NoExpiration, 10*time.Minute)}
}

func (r *CollectionRepository) Create(ctx context.Context, collection *entity.Collection) error {
	r.cache.Set(collection.Id.String(), collection, cache.NoExpiration)
	return nil
}

func (r *CollectionRepository) Update(ctx context.Context, collection *entity.Collection) error {
	r.cache.Set(collection.Id.String(), collection, cache.NoExpiration)
	return nil
}

func (r *CollectionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.cache.Delete(id.String())
	return nil
}

func (r *CollectionRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Collection, error) {
	collections := r.filter(specs)
	if len(collections) == 0 {
		return nil, nil
	}
	return collections[0], nil
}

func (r *CollectionRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Collection, error) {
	return r.filter(specs), nil
}

func (r *CollectionRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.filter(specs))), nil
}

func (r *CollectionRepository) filter(specs []specification.Specification) []*entity.Collection {
	var collections []*entity.Collection
	for _, item := range r.cache.Items() {
		collection := item.Object.(*entity.Collection)
		if matchCollection(collection, specs) {
			collections = append(collections, collection)
		}
	}

	for _, spec := range specs {
		if order, ok := spec.(specification.OrderBy); ok && order.Field == "updated_at" {
			sort.Slice(collections, func(i, j int) bool {
				if order.Desc {
					return collections[i].UpdatedAt.After(collections[j].UpdatedAt)
				}
				return collections[i].UpdatedAt.Before(collections[j].UpdatedAt)
			})
		}
	}
	return collections
}

func matchCollection(collection *entity.Collection, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			if collection.Id != s.ID {
				return false
			}
		case specification.ByIDs:
			found := false
			for _, id := range s.IDs {
				if collection.Id == id {
					found = true
					break
				}
			}
			if !found {
				return false
			}
		case specification.UserOwnedBy:
			if collection.UserId != s.UserID {
				return false
			}
		}
	}
	return true
}
