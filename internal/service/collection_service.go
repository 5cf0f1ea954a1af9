package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"ai-tutor-be/internal/dto"
	"ai-tutor-be/internal/entity"
	"ai-tutor-be/internal/pkg/apperror"
	"ai-tutor-be/internal/pkg/logger"
	"ai-tutor-be/internal/repository/specification"
	"ai-tutor-be/internal/repository/unitofwork"
)

const recentSessionsPerCollection = 3

type ICollectionService interface {
	CreateCollection(ctx context.Context, userId uuid.UUID, req *dto.CreateCollectionRequest) (*dto.CollectionDTO, error)
	ListCollections(ctx context.Context, userId uuid.UUID) ([]dto.CollectionListItemDTO, error)
	GetCollection(ctx context.Context, userId uuid.UUID, collectionId uuid.UUID) (*dto.CollectionDetailDTO, error)
	UpdateCollection(ctx context.Context, userId uuid.UUID, req *dto.UpdateCollectionRequest) (*dto.CollectionDTO, error)
	DeleteCollection(ctx context.Context, userId uuid.UUID, collectionId uuid.UUID) error
	AddSession(ctx context.Context, userId uuid.UUID, collectionId uuid.UUID, sessionId uuid.UUID) error
	RemoveSession(ctx context.Context, userId uuid.UUID, collectionId uuid.UUID, sessionId uuid.UUID) error
}

type collectionService struct {
	uowFactory unitofwork.RepositoryFactory
	log        logger.ILogger
}

func NewCollectionService(uowFactory unitofwork.RepositoryFactory, log logger.ILogger) ICollectionService {
	return &collectionService{uowFactory: uowFactory, log: log}
}

func (s *collectionService) CreateCollection(ctx context.Context, userId uuid.UUID, req *dto.CreateCollectionRequest) (*dto.CollectionDTO, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperror.Validation("name is required")
	}

	now := time.Now()
	collection := &entity.Collection{
		Id:          uuid.New(),
		UserId:      userId,
		Name:        name,
		Description: req.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.CollectionRepository().Create(ctx, collection); err != nil {
		return nil, err
	}

	res := toCollectionDTO(collection)
	return &res, nil
}

func (s *collectionService) ListCollections(ctx context.Context, userId uuid.UUID) ([]dto.CollectionListItemDTO, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	collections, err := uow.CollectionRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "updated_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	items := make([]dto.CollectionListItemDTO, 0, len(collections))
	for _, collection := range collections {
		count, err := uow.SessionRepository().Count(ctx,
			specification.ByCollectionID{CollectionID: collection.Id},
		)
		if err != nil {
			return nil, err
		}

		recent, err := uow.SessionRepository().FindAll(ctx,
			specification.ByCollectionID{CollectionID: collection.Id},
			specification.OrderBy{Field: "created_at", Desc: true},
			specification.Pagination{Limit: recentSessionsPerCollection, Offset: 0},
		)
		if err != nil {
			return nil, err
		}

		summaries := make([]dto.SessionSummaryDTO, len(recent))
		for i, session := range recent {
			summaries[i] = dto.SessionSummaryDTO{
				Id:          session.Id,
				SessionType: string(session.SessionType),
				CreatedAt:   session.CreatedAt,
			}
		}

		items = append(items, dto.CollectionListItemDTO{
			CollectionDTO:  toCollectionDTO(collection),
			SessionCount:   int(count),
			RecentSessions: summaries,
		})
	}
	return items, nil
}

func (s *collectionService) GetCollection(ctx context.Context, userId uuid.UUID, collectionId uuid.UUID) (*dto.CollectionDetailDTO, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	collection, err := s.findOwned(ctx, uow, userId, collectionId)
	if err != nil {
		return nil, err
	}

	sessions, err := uow.SessionRepository().FindAll(ctx,
		specification.ByCollectionID{CollectionID: collectionId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	names := map[uuid.UUID]string{collectionId: collection.Name}
	items := make([]dto.SessionDTO, len(sessions))
	for i, session := range sessions {
		items[i] = toSessionDTO(session, names)
	}

	return &dto.CollectionDetailDTO{
		CollectionDTO: toCollectionDTO(collection),
		Sessions:      items,
	}, nil
}

func (s *collectionService) UpdateCollection(ctx context.Context, userId uuid.UUID, req *dto.UpdateCollectionRequest) (*dto.CollectionDTO, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperror.Validation("name is required")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	collection, err := s.findOwned(ctx, uow, userId, req.Id)
	if err != nil {
		return nil, err
	}

	collection.Name = name
	collection.Description = req.Description
	collection.UpdatedAt = time.Now()

	if err := uow.CollectionRepository().Update(ctx, collection); err != nil {
		return nil, err
	}

	res := toCollectionDTO(collection)
	return &res, nil
}

// DeleteCollection removes the collection and detaches its sessions in one
// transaction. Sessions survive the delete with collection_id cleared.
func (s *collectionService) DeleteCollection(ctx context.Context, userId uuid.UUID, collectionId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if _, err := s.findOwned(ctx, uow, userId, collectionId); err != nil {
		return err
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	if err := uow.SessionRepository().DetachByCollectionId(ctx, collectionId); err != nil {
		_ = uow.Rollback()
		return err
	}
	if err := uow.CollectionRepository().Delete(ctx, collectionId); err != nil {
		_ = uow.Rollback()
		return err
	}
	if err := uow.Commit(); err != nil {
		s.log.Error("collection", "failed to commit collection delete", map[string]interface{}{
			"collection_id": collectionId.String(),
			"error":         err.Error(),
		})
		return err
	}
	return nil
}

func (s *collectionService) AddSession(ctx context.Context, userId uuid.UUID, collectionId uuid.UUID, sessionId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if _, err := s.findOwned(ctx, uow, userId, collectionId); err != nil {
		return err
	}

	session, err := uow.SessionRepository().FindOne(ctx,
		specification.ByID{ID: sessionId},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return err
	}
	if session == nil {
		return apperror.NotFound("session not found")
	}

	return uow.SessionRepository().SetCollection(ctx, sessionId, &collectionId)
}

func (s *collectionService) RemoveSession(ctx context.Context, userId uuid.UUID, collectionId uuid.UUID, sessionId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if _, err := s.findOwned(ctx, uow, userId, collectionId); err != nil {
		return err
	}

	session, err := uow.SessionRepository().FindOne(ctx,
		specification.ByID{ID: sessionId},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return err
	}
	if session == nil {
		return apperror.NotFound("session not found")
	}
	if session.CollectionId == nil || *session.CollectionId != collectionId {
		return apperror.NotFound("session is not in this collection")
	}

	return uow.SessionRepository().SetCollection(ctx, sessionId, nil)
}

func (s *collectionService) findOwned(ctx context.Context, uow unitofwork.UnitOfWork, userId uuid.UUID, collectionId uuid.UUID) (*entity.Collection, error) {
	collection, err := uow.CollectionRepository().FindOne(ctx,
		specification.ByID{ID: collectionId},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if collection == nil {
		return nil, apperror.NotFound("collection not found")
	}
	return collection, nil
}

func toCollectionDTO(collection *entity.Collection) dto.CollectionDTO {
	return dto.CollectionDTO{
		Id:          collection.Id,
		Name:        collection.Name,
		Description: collection.Description,
		CreatedAt:   collection.CreatedAt,
		UpdatedAt:   collection.UpdatedAt,
	}
}
