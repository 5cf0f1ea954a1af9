package mapper

import (
	"encoding/json"

	"gorm.io/datatypes"

	"ai-tutor-be/internal/entity"
	"ai-tutor-be/internal/model"
)

type SessionMapper struct{}

func NewSessionMapper() *SessionMapper {
	return &SessionMapper{}
}

func (m *SessionMapper) ToEntity(s *model.Session) *entity.Session {
	if s == nil {
		return nil
	}

	e := &entity.Session{
		Id:            s.Id,
		UserId:        s.UserId,
		CollectionId:  s.CollectionId,
		InputText:     s.InputText,
		SessionType:   entity.SessionType(s.SessionType),
		OutputSummary: s.OutputSummary,
		CreatedAt:     s.CreatedAt,
	}

	if len(s.OutputExplanation) > 0 {
		var explanation entity.Explanation
		if err := json.Unmarshal(s.OutputExplanation, &explanation); err == nil {
			e.OutputExplanation = &explanation
		}
	}
	if len(s.OutputExercises) > 0 {
		var exercises []entity.Exercise
		if err := json.Unmarshal(s.OutputExercises, &exercises); err == nil {
			e.OutputExercises = exercises
		}
	}

	return e
}

func (m *SessionMapper) ToModel(s *entity.Session) *model.Session {
	if s == nil {
		return nil
	}

	mdl := &model.Session{
		Id:            s.Id,
		UserId:        s.UserId,
		CollectionId:  s.CollectionId,
		InputText:     s.InputText,
		SessionType:   string(s.SessionType),
		OutputSummary: s.OutputSummary,
		CreatedAt:     s.CreatedAt,
	}

	if s.OutputExplanation != nil {
		if raw, err := json.Marshal(s.OutputExplanation); err == nil {
			mdl.OutputExplanation = datatypes.JSON(raw)
		}
	}
	if s.OutputExercises != nil {
		if raw, err := json.Marshal(s.OutputExercises); err == nil {
			mdl.OutputExercises = datatypes.JSON(raw)
		}
	}

	return mdl
}

func (m *SessionMapper) ToEntities(sessions []*model.Session) []*entity.Session {
	entities := make([]*entity.Session, len(sessions))
	for i, s := range sessions {
		entities[i] = m.ToEntity(s)
	}
	return entities
}
