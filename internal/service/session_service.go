package service

import (
	"context"

	"github.com/google/uuid"

	"ai-tutor-be/internal/dto"
	"ai-tutor-be/internal/entity"
	"ai-tutor-be/internal/pkg/apperror"
	"ai-tutor-be/internal/pkg/logger"
	"ai-tutor-be/internal/repository/specification"
	"ai-tutor-be/internal/repository/unitofwork"
)

const (
	defaultSessionLimit = 20
	maxSessionLimit     = 100
)

// ListSessionsQuery carries paging and the optional collection filter.
type ListSessionsQuery struct {
	Limit        int
	Offset       int
	CollectionId *uuid.UUID
}

type ISessionService interface {
	ListSessions(ctx context.Context, userId uuid.UUID, query *ListSessionsQuery) (*dto.ListSessionsResponse, error)
	GetSession(ctx context.Context, userId uuid.UUID, sessionId uuid.UUID) (*dto.SessionDTO, error)
	DeleteSession(ctx context.Context, userId uuid.UUID, sessionId uuid.UUID) error
}

type sessionService struct {
	uowFactory unitofwork.RepositoryFactory
	log        logger.ILogger
}

func NewSessionService(uowFactory unitofwork.RepositoryFactory, log logger.ILogger) ISessionService {
	return &sessionService{uowFactory: uowFactory, log: log}
}

func (s *sessionService) ListSessions(ctx context.Context, userId uuid.UUID, query *ListSessionsQuery) (*dto.ListSessionsResponse, error) {
	limit := query.Limit
	if limit <= 0 {
		limit = defaultSessionLimit
	}
	if limit > maxSessionLimit {
		limit = maxSessionLimit
	}
	offset := query.Offset
	if offset < 0 {
		offset = 0
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	countSpecs := []specification.Specification{specification.UserOwnedBy{UserID: userId}}
	if query.CollectionId != nil {
		countSpecs = append(countSpecs, specification.ByCollectionID{CollectionID: *query.CollectionId})
	}

	total, err := uow.SessionRepository().Count(ctx, countSpecs...)
	if err != nil {
		return nil, err
	}

	listSpecs := append(countSpecs,
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: limit, Offset: offset},
	)
	sessions, err := uow.SessionRepository().FindAll(ctx, listSpecs...)
	if err != nil {
		return nil, err
	}

	collections, err := s.collectionNames(ctx, uow, sessions)
	if err != nil {
		return nil, err
	}

	items := make([]dto.SessionDTO, len(sessions))
	for i, session := range sessions {
		items[i] = toSessionDTO(session, collections)
	}

	return &dto.ListSessionsResponse{
		Sessions: items,
		Pagination: dto.PaginationDTO{
			Total:   total,
			Limit:   limit,
			Offset:  offset,
			HasMore: int64(offset+len(items)) < total,
		},
	}, nil
}

func (s *sessionService) GetSession(ctx context.Context, userId uuid.UUID, sessionId uuid.UUID) (*dto.SessionDTO, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	session, err := uow.SessionRepository().FindOne(ctx,
		specification.ByID{ID: sessionId},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, apperror.NotFound("session not found")
	}

	collections, err := s.collectionNames(ctx, uow, []*entity.Session{session})
	if err != nil {
		return nil, err
	}

	res := toSessionDTO(session, collections)
	return &res, nil
}

func (s *sessionService) DeleteSession(ctx context.Context, userId uuid.UUID, sessionId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

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

	if err := uow.SessionRepository().Delete(ctx, session.Id); err != nil {
		s.log.Error("session", "failed to delete session", map[string]interface{}{
			"session_id": sessionId.String(),
			"error":      err.Error(),
		})
		return err
	}
	return nil
}

// collectionNames resolves the collections referenced by the given sessions in
// a single query, keyed by collection id.
func (s *sessionService) collectionNames(ctx context.Context, uow unitofwork.UnitOfWork, sessions []*entity.Session) (map[uuid.UUID]string, error) {
	seen := make(map[uuid.UUID]struct{})
	var ids []uuid.UUID
	for _, session := range sessions {
		if session.CollectionId == nil {
			continue
		}
		if _, ok := seen[*session.CollectionId]; ok {
			continue
		}
		seen[*session.CollectionId] = struct{}{}
		ids = append(ids, *session.CollectionId)
	}
	if len(ids) == 0 {
		return nil, nil
	}

	collections, err := uow.CollectionRepository().FindAll(ctx, specification.ByIDs{IDs: ids})
	if err != nil {
		return nil, err
	}

	names := make(map[uuid.UUID]string, len(collections))
	for _, collection := range collections {
		names[collection.Id] = collection.Name
	}
	return names, nil
}

func toSessionDTO(session *entity.Session, collectionNames map[uuid.UUID]string) dto.SessionDTO {
	res := dto.SessionDTO{
		Id:            session.Id,
		InputText:     session.InputText,
		SessionType:   string(session.SessionType),
		OutputSummary: session.OutputSummary,
		CreatedAt:     session.CreatedAt,
	}
	if session.OutputExplanation != nil {
		res.OutputExplanation = &dto.ExplanationDTO{
			English: session.OutputExplanation.English,
			Arabic:  session.OutputExplanation.Arabic,
		}
	}
	if len(session.OutputExercises) > 0 {
		res.OutputExercises = make([]dto.ExerciseDTO, len(session.OutputExercises))
		for i, ex := range session.OutputExercises {
			res.OutputExercises[i] = dto.ExerciseDTO{
				Question:   ex.Question,
				Answer:     ex.Answer,
				Type:       ex.Type,
				Difficulty: ex.Difficulty,
			}
		}
	}
	if session.CollectionId != nil {
		ref := &dto.SessionCollectionRef{Id: *session.CollectionId}
		if name, ok := collectionNames[*session.CollectionId]; ok {
			ref.Name = name
		}
		res.Collection = ref
	}
	return res
}
