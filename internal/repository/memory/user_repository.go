// Package memory provides go-cache backed repositories that satisfy the
// repository contracts without a database. They interpret the same
// specifications the GORM implementations translate to SQL, and back the
// controller and service tests.
package memory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"

	"ai-tutor-be/internal/entity"
	"ai-tutor-be/internal/repository/specification"
)

type UserRepository struct {
	cache *cache.Cache
}

func NewUserRepository() *UserRepository {
	return &UserRepository{cache: cache.New(cache.NoExpiration, 10*time.Minute)}
}

func (r *UserRepository) Create(ctx context.Context, user *entity.User) error {
	r.cache.Set(user.Id.String(), user, cache.NoExpiration)
	return nil
}

func (r *UserRepository) Update(ctx context.Context, user *entity.User) error {
	r.cache.Set(user.Id.String(), user, cache.NoExpiration)
	return nil
}

func (r *UserRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
	for _, item := range r.cache.Items() {
		user := item.Object.(*entity.User)
		if matchUser(user, specs) {
			return user, nil
		}
	}
	return nil, nil
}

func (r *UserRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	for _, item := range r.cache.Items() {
		if matchUser(item.Object.(*entity.User), specs) {
			count++
		}
	}
	return count, nil
}

func (r *UserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.cache.Delete(id.String())
	return nil
}

func matchUser(user *entity.User, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			if user.Id != s.ID {
				return false
			}
		case specification.ByEmail:
			if user.Email != s.Email {
				return false
			}
		}
	}
	return true
}
