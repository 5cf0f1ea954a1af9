package memory

import (
	"context"

	"ai-tutor-be/internal/repository/contract"
	"ai-tutor-be/internal/repository/unitofwork"
)

// UnitOfWork wires the memory repositories behind the unitofwork contracts.
// Begin, Commit and Rollback are no-ops: there is no transaction to manage.
type UnitOfWork struct {
	users       *UserRepository
	sessions    *SessionRepository
	collections *CollectionRepository
}

func NewUnitOfWork() *UnitOfWork {
	return &UnitOfWork{
		users:       NewUserRepository(),
		sessions:    NewSessionRepository(),
		collections: NewCollectionRepository(),
	}
}

func (u *UnitOfWork) Begin(ctx context.Context) error { return nil }
func (u *UnitOfWork) Commit() error                   { return nil }
func (u *UnitOfWork) Rollback() error                 { return nil }

func (u *UnitOfWork) UserRepository() contract.UserRepository             { return u.users }
func (u *UnitOfWork) SessionRepository() contract.SessionRepository       { return u.sessions }
func (u *UnitOfWork) CollectionRepository() contract.CollectionRepository { return u.collections }

// Factory hands out the same unit of work on every call so state persists
// across requests within a test.
type Factory struct {
	uow *UnitOfWork
}

func NewFactory() *Factory {
	return &Factory{uow: NewUnitOfWork()}
}

func (f *Factory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return f.uow
}
