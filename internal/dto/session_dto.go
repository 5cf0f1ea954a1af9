package dto

import (
	"time"

	"github.com/google/uuid"
)

type SessionCollectionRef struct {
	Id   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type SessionDTO struct {
	Id                uuid.UUID             `json:"id"`
	InputText         string                `json:"inputText"`
	SessionType       string                `json:"sessionType"`
	OutputSummary     *string               `json:"outputSummary,omitempty"`
	OutputExplanation *ExplanationDTO       `json:"outputExplanation,omitempty"`
	OutputExercises   []ExerciseDTO         `json:"outputExercises,omitempty"`
	Collection        *SessionCollectionRef `json:"collection"`
	CreatedAt         time.Time             `json:"createdAt"`
}

type ExplanationDTO struct {
	English *string `json:"english,omitempty"`
	Arabic  *string `json:"arabic,omitempty"`
}

type PaginationDTO struct {
	Total   int64 `json:"total"`
	Limit   int   `json:"limit"`
	Offset  int   `json:"offset"`
	HasMore bool  `json:"hasMore"`
}

type ListSessionsResponse struct {
	Sessions   []SessionDTO  `json:"sessions"`
	Pagination PaginationDTO `json:"pagination"`
}
