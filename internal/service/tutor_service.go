package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"ai-tutor-be/internal/dto"
	"ai-tutor-be/internal/entity"
	"ai-tutor-be/internal/pkg/apperror"
	"ai-tutor-be/internal/pkg/logger"
	"ai-tutor-be/internal/repository/specification"
	"ai-tutor-be/internal/repository/unitofwork"
	"ai-tutor-be/pkg/llm"
	"ai-tutor-be/pkg/tutor"
)

// ITutorService orchestrates the AI Gateway and Session persistence. userId
// is nil for anonymous calls, which generate output but persist nothing. A
// Session row is only ever written after the Gateway call has succeeded.
type ITutorService interface {
	Summarize(ctx context.Context, userId *uuid.UUID, req *dto.GenerateRequest) (*dto.SummarizeResponse, error)
	Explain(ctx context.Context, userId *uuid.UUID, req *dto.GenerateRequest) (*dto.ExplainResponse, error)
	GenerateExercises(ctx context.Context, userId *uuid.UUID, req *dto.GenerateRequest) (*dto.ExercisesResponse, error)
}

type tutorService struct {
	uowFactory unitofwork.RepositoryFactory
	gateway    tutor.Gateway
	timeout    time.Duration
	log        logger.ILogger
}

func NewTutorService(uowFactory unitofwork.RepositoryFactory, gateway tutor.Gateway, timeout time.Duration, log logger.ILogger) ITutorService {
	return &tutorService{
		uowFactory: uowFactory,
		gateway:    gateway,
		timeout:    timeout,
		log:        log,
	}
}

func (s *tutorService) Summarize(ctx context.Context, userId *uuid.UUID, req *dto.GenerateRequest) (*dto.SummarizeResponse, error) {
	lang, err := s.resolveLanguage(ctx, userId, req.LanguagePreference)
	if err != nil {
		return nil, err
	}

	genCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	summary, err := s.gateway.Summarize(genCtx, req.Text, lang)
	if err != nil {
		return nil, mapGatewayError(err)
	}

	res := &dto.SummarizeResponse{Summary: summary}
	if userId != nil {
		session := &entity.Session{
			Id:            uuid.New(),
			UserId:        *userId,
			InputText:     req.Text,
			SessionType:   entity.SessionTypeSummary,
			OutputSummary: &summary,
			CreatedAt:     time.Now(),
		}
		if err := s.persistSession(ctx, session); err != nil {
			return nil, err
		}
		res.SessionId = &session.Id
	}
	return res, nil
}

func (s *tutorService) Explain(ctx context.Context, userId *uuid.UUID, req *dto.GenerateRequest) (*dto.ExplainResponse, error) {
	lang, err := s.resolveLanguage(ctx, userId, req.LanguagePreference)
	if err != nil {
		return nil, err
	}

	genCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	explanation, err := s.gateway.Explain(genCtx, req.Text, lang)
	if err != nil {
		return nil, mapGatewayError(err)
	}

	res := &dto.ExplainResponse{
		EnglishExplanation: explanation.English,
		ArabicExplanation:  explanation.Arabic,
	}
	if userId != nil {
		session := &entity.Session{
			Id:          uuid.New(),
			UserId:      *userId,
			InputText:   req.Text,
			SessionType: entity.SessionTypeExplanation,
			OutputExplanation: &entity.Explanation{
				English: explanation.English,
				Arabic:  explanation.Arabic,
			},
			CreatedAt: time.Now(),
		}
		if err := s.persistSession(ctx, session); err != nil {
			return nil, err
		}
		res.SessionId = &session.Id
	}
	return res, nil
}

func (s *tutorService) GenerateExercises(ctx context.Context, userId *uuid.UUID, req *dto.GenerateRequest) (*dto.ExercisesResponse, error) {
	lang, err := s.resolveLanguage(ctx, userId, req.LanguagePreference)
	if err != nil {
		return nil, err
	}

	genCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	exercises, err := s.gateway.GenerateExercises(genCtx, req.Text, lang)
	if err != nil {
		return nil, mapGatewayError(err)
	}

	res := &dto.ExercisesResponse{Exercises: toExerciseDTOs(exercises)}
	if userId != nil {
		session := &entity.Session{
			Id:              uuid.New(),
			UserId:          *userId,
			InputText:       req.Text,
			SessionType:     entity.SessionTypeExercises,
			OutputExercises: toExerciseEntities(exercises),
			CreatedAt:       time.Now(),
		}
		if err := s.persistSession(ctx, session); err != nil {
			return nil, err
		}
		res.SessionId = &session.Id
	}
	return res, nil
}

// resolveLanguage picks the request's preference, falling back to the user's
// stored preference and finally to english.
func (s *tutorService) resolveLanguage(ctx context.Context, userId *uuid.UUID, requested string) (tutor.Language, error) {
	if requested != "" {
		lang := tutor.Language(requested)
		if !lang.Valid() {
			return "", apperror.Validation("language_preference must be one of: english arabic both")
		}
		return lang, nil
	}

	if userId != nil {
		uow := s.uowFactory.NewUnitOfWork(ctx)
		user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: *userId})
		if err != nil {
			return "", err
		}
		if user != nil {
			return tutor.Language(user.LanguagePref), nil
		}
	}
	return tutor.LanguageEnglish, nil
}

func (s *tutorService) persistSession(ctx context.Context, session *entity.Session) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.SessionRepository().Create(ctx, session); err != nil {
		s.log.Error("tutor", "failed to persist session", map[string]interface{}{
			"user_id": session.UserId.String(),
			"type":    string(session.SessionType),
			"error":   err.Error(),
		})
		return err
	}
	return nil
}

func mapGatewayError(err error) error {
	if errors.Is(err, tutor.ErrEmptyText) {
		return apperror.Validation("text is required")
	}
	var ue *llm.UpstreamError
	if errors.As(err, &ue) {
		return apperror.Upstream("AI service is currently unavailable, please try again later", ue.Retryable, err)
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return apperror.Upstream("AI service timed out, please try again with shorter content", true, err)
	}
	return err
}

func toExerciseDTOs(exercises []tutor.Exercise) []dto.ExerciseDTO {
	out := make([]dto.ExerciseDTO, len(exercises))
	for i, ex := range exercises {
		out[i] = dto.ExerciseDTO{
			Question:   ex.Question,
			Answer:     ex.Answer,
			Type:       ex.Type,
			Difficulty: ex.Difficulty,
		}
	}
	return out
}

func toExerciseEntities(exercises []tutor.Exercise) []entity.Exercise {
	out := make([]entity.Exercise, len(exercises))
	for i, ex := range exercises {
		out[i] = entity.Exercise{
			Question:   ex.Question,
			Answer:     ex.Answer,
			Type:       ex.Type,
			Difficulty: ex.Difficulty,
		}
	}
	return out
}
