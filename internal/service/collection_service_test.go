package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ai-tutor-be/internal/dto"
	"ai-tutor-be/internal/entity"
	"ai-tutor-be/internal/pkg/apperror"
	"ai-tutor-be/internal/repository/memory"
	"ai-tutor-be/internal/repository/specification"
)

func seedSession(t *testing.T, factory *memory.Factory, userId uuid.UUID, collectionId *uuid.UUID, createdAt time.Time) uuid.UUID {
	t.Helper()
	summary := "summary"
	session := &entity.Session{
		Id:            uuid.New(),
		UserId:        userId,
		CollectionId:  collectionId,
		InputText:     "input",
		SessionType:   entity.SessionTypeSummary,
		OutputSummary: &summary,
		CreatedAt:     createdAt,
	}
	err := factory.NewUnitOfWork(context.Background()).SessionRepository().Create(context.Background(), session)
	require.NoError(t, err)
	return session.Id
}

func TestCreateCollectionRejectsBlankName(t *testing.T) {
	svc := NewCollectionService(memory.NewFactory(), newTestLogger())

	_, err := svc.CreateCollection(context.Background(), uuid.New(), &dto.CreateCollectionRequest{Name: "   "})
	require.Error(t, err)
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))
}

func TestCollectionLifecycle(t *testing.T) {
	factory := memory.NewFactory()
	svc := NewCollectionService(factory, newTestLogger())
	userId := uuid.New()

	created, err := svc.CreateCollection(context.Background(), userId, &dto.CreateCollectionRequest{Name: "Biology"})
	require.NoError(t, err)
	assert.Equal(t, "Biology", created.Name)

	desc := "cell structure notes"
	updated, err := svc.UpdateCollection(context.Background(), userId, &dto.UpdateCollectionRequest{
		Id: created.Id, Name: "Biology 101", Description: &desc,
	})
	require.NoError(t, err)
	assert.Equal(t, "Biology 101", updated.Name)
	require.NotNil(t, updated.Description)

	detail, err := svc.GetCollection(context.Background(), userId, created.Id)
	require.NoError(t, err)
	assert.Equal(t, "Biology 101", detail.Name)
	assert.Empty(t, detail.Sessions)
}

func TestCollectionOwnershipReadsAsNotFound(t *testing.T) {
	factory := memory.NewFactory()
	svc := NewCollectionService(factory, newTestLogger())
	owner := uuid.New()
	stranger := uuid.New()

	created, err := svc.CreateCollection(context.Background(), owner, &dto.CreateCollectionRequest{Name: "Private"})
	require.NoError(t, err)

	_, err = svc.GetCollection(context.Background(), stranger, created.Id)
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))

	err = svc.DeleteCollection(context.Background(), stranger, created.Id)
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))

	// The owner still sees it.
	_, err = svc.GetCollection(context.Background(), owner, created.Id)
	require.NoError(t, err)
}

func TestDeleteCollectionDetachesSessions(t *testing.T) {
	factory := memory.NewFactory()
	svc := NewCollectionService(factory, newTestLogger())
	userId := uuid.New()

	created, err := svc.CreateCollection(context.Background(), userId, &dto.CreateCollectionRequest{Name: "History"})
	require.NoError(t, err)
	sessionId := seedSession(t, factory, userId, &created.Id, time.Now())

	require.NoError(t, svc.DeleteCollection(context.Background(), userId, created.Id))

	// The session survives with its collection reference cleared.
	session, err := factory.NewUnitOfWork(context.Background()).SessionRepository().FindOne(
		context.Background(), specification.ByID{ID: sessionId})
	require.NoError(t, err)
	require.NotNil(t, session)
	assert.Nil(t, session.CollectionId)

	_, err = svc.GetCollection(context.Background(), userId, created.Id)
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
}

func TestAddAndRemoveSession(t *testing.T) {
	factory := memory.NewFactory()
	svc := NewCollectionService(factory, newTestLogger())
	userId := uuid.New()

	created, err := svc.CreateCollection(context.Background(), userId, &dto.CreateCollectionRequest{Name: "Math"})
	require.NoError(t, err)
	sessionId := seedSession(t, factory, userId, nil, time.Now())

	require.NoError(t, svc.AddSession(context.Background(), userId, created.Id, sessionId))

	session, err := factory.NewUnitOfWork(context.Background()).SessionRepository().FindOne(
		context.Background(), specification.ByID{ID: sessionId})
	require.NoError(t, err)
	require.NotNil(t, session.CollectionId)
	assert.Equal(t, created.Id, *session.CollectionId)

	require.NoError(t, svc.RemoveSession(context.Background(), userId, created.Id, sessionId))
	session, err = factory.NewUnitOfWork(context.Background()).SessionRepository().FindOne(
		context.Background(), specification.ByID{ID: sessionId})
	require.NoError(t, err)
	assert.Nil(t, session.CollectionId)
}

func TestAddForeignSessionIsNotFound(t *testing.T) {
	factory := memory.NewFactory()
	svc := NewCollectionService(factory, newTestLogger())
	owner := uuid.New()
	stranger := uuid.New()

	created, err := svc.CreateCollection(context.Background(), owner, &dto.CreateCollectionRequest{Name: "Mine"})
	require.NoError(t, err)
	foreignSession := seedSession(t, factory, stranger, nil, time.Now())

	err = svc.AddSession(context.Background(), owner, created.Id, foreignSession)
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
}

func TestListCollectionsIncludesRecentSessions(t *testing.T) {
	factory := memory.NewFactory()
	svc := NewCollectionService(factory, newTestLogger())
	userId := uuid.New()

	created, err := svc.CreateCollection(context.Background(), userId, &dto.CreateCollectionRequest{Name: "Physics"})
	require.NoError(t, err)

	base := time.Now()
	for i := 0; i < 5; i++ {
		seedSession(t, factory, userId, &created.Id, base.Add(time.Duration(i)*time.Minute))
	}

	items, err := svc.ListCollections(context.Background(), userId)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].SessionCount)
	require.Len(t, items[0].RecentSessions, 3)
	// Newest first.
	assert.True(t, items[0].RecentSessions[0].CreatedAt.After(items[0].RecentSessions[2].CreatedAt))
}
