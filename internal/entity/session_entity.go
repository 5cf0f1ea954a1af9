package entity

import (
	"time"

	"github.com/google/uuid"
)

type SessionType string

const (
	SessionTypeSummary     SessionType = "summary"
	SessionTypeExplanation SessionType = "explanation"
	SessionTypeExercises   SessionType = "exercises"
)

// Exercise is one generated question/answer pair. Order matters: exercises are
// returned to the client exactly as the model produced them.
type Exercise struct {
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Type       string `json:"type"`
	Difficulty string `json:"difficulty"`
}

// Explanation holds one or both language renditions, depending on the
// requested language preference.
type Explanation struct {
	English *string `json:"english,omitempty"`
	Arabic  *string `json:"arabic,omitempty"`
}

// Session records one completed AI interaction. Exactly one of the three
// output fields is populated, matching SessionType. UserId never changes after
// creation; CollectionId is the only mutable field.
type Session struct {
	Id                uuid.UUID
	UserId            uuid.UUID
	CollectionId      *uuid.UUID
	InputText         string
	SessionType       SessionType
	OutputSummary     *string
	OutputExplanation *Explanation
	OutputExercises   []Exercise
	CreatedAt         time.Time
}
