package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ai-tutor-be/internal/pkg/apperror"
	"ai-tutor-be/internal/repository/memory"
)

func TestListSessionsPagination(t *testing.T) {
	factory := memory.NewFactory()
	svc := NewSessionService(factory, newTestLogger())
	userId := uuid.New()

	base := time.Now()
	for i := 0; i < 5; i++ {
		seedSession(t, factory, userId, nil, base.Add(time.Duration(i)*time.Minute))
	}

	page, err := svc.ListSessions(context.Background(), userId, &ListSessionsQuery{Limit: 2, Offset: 0})
	require.NoError(t, err)
	assert.Equal(t, int64(5), page.Pagination.Total)
	require.Len(t, page.Sessions, 2)
	assert.True(t, page.Pagination.HasMore)
	// Newest first.
	assert.True(t, page.Sessions[0].CreatedAt.After(page.Sessions[1].CreatedAt))

	last, err := svc.ListSessions(context.Background(), userId, &ListSessionsQuery{Limit: 2, Offset: 4})
	require.NoError(t, err)
	require.Len(t, last.Sessions, 1)
	assert.False(t, last.Pagination.HasMore)
}

func TestListSessionsFiltersByCollection(t *testing.T) {
	factory := memory.NewFactory()
	svc := NewSessionService(factory, newTestLogger())
	userId := uuid.New()
	collectionId := uuid.New()

	seedSession(t, factory, userId, &collectionId, time.Now())
	seedSession(t, factory, userId, nil, time.Now())

	page, err := svc.ListSessions(context.Background(), userId, &ListSessionsQuery{CollectionId: &collectionId})
	require.NoError(t, err)
	assert.Equal(t, int64(1), page.Pagination.Total)
	require.Len(t, page.Sessions, 1)
}

func TestListSessionsScopedToOwner(t *testing.T) {
	factory := memory.NewFactory()
	svc := NewSessionService(factory, newTestLogger())
	owner := uuid.New()
	other := uuid.New()

	seedSession(t, factory, owner, nil, time.Now())
	seedSession(t, factory, other, nil, time.Now())

	page, err := svc.ListSessions(context.Background(), owner, &ListSessionsQuery{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), page.Pagination.Total)
}

func TestGetForeignSessionIsNotFound(t *testing.T) {
	factory := memory.NewFactory()
	svc := NewSessionService(factory, newTestLogger())
	owner := uuid.New()
	stranger := uuid.New()

	sessionId := seedSession(t, factory, owner, nil, time.Now())

	_, err := svc.GetSession(context.Background(), stranger, sessionId)
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))

	got, err := svc.GetSession(context.Background(), owner, sessionId)
	require.NoError(t, err)
	assert.Equal(t, sessionId, got.Id)
}

func TestDeleteSession(t *testing.T) {
	factory := memory.NewFactory()
	svc := NewSessionService(factory, newTestLogger())
	userId := uuid.New()

	sessionId := seedSession(t, factory, userId, nil, time.Now())
	require.NoError(t, svc.DeleteSession(context.Background(), userId, sessionId))

	_, err := svc.GetSession(context.Background(), userId, sessionId)
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))

	// Deleting again reports not found.
	err = svc.DeleteSession(context.Background(), userId, sessionId)
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
}
