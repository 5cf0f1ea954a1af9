package dto

import "github.com/google/uuid"

// The three AI endpoints return flat, per-variant shapes rather than the
// generic envelope: clients branch on which keys are present. session_id is
// emitted only when the call was authenticated and a Session row was written.

type GenerateRequest struct {
	Text               string `json:"text" validate:"required"`
	LanguagePreference string `json:"language_preference" validate:"omitempty,oneof=english arabic both"`
}

type SummarizeResponse struct {
	Summary   string     `json:"summary"`
	SessionId *uuid.UUID `json:"session_id,omitempty"`
}

type ExplainResponse struct {
	EnglishExplanation *string    `json:"english_explanation,omitempty"`
	ArabicExplanation  *string    `json:"arabic_explanation,omitempty"`
	SessionId          *uuid.UUID `json:"session_id,omitempty"`
}

type ExerciseDTO struct {
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Type       string `json:"type"`
	Difficulty string `json:"difficulty"`
}

type ExercisesResponse struct {
	Exercises []ExerciseDTO `json:"exercises"`
	SessionId *uuid.UUID    `json:"session_id,omitempty"`
}
