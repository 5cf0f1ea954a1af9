package tutor

import (
	"context"
	"errors"
	"strings"

	"ai-tutor-be/pkg/llm"
)

type Task string

const (
	TaskSummarize Task = "summarize"
	TaskExplain   Task = "explain"
	TaskExercises Task = "exercises"
)

type Language string

const (
	LanguageEnglish Language = "english"
	LanguageArabic  Language = "arabic"
	LanguageBoth    Language = "both"
)

func (l Language) Valid() bool {
	return l == LanguageEnglish || l == LanguageArabic || l == LanguageBoth
}

// ErrEmptyText is returned when the input is empty after trimming.
var ErrEmptyText = errors.New("input text cannot be empty")

// Exercise is one generated question/answer pair, in model output order.
type Exercise struct {
	Question   string
	Answer     string
	Type       string
	Difficulty string
}

// Explanation carries one rendition per requested language. For LanguageBoth
// both fields are set; otherwise exactly one.
type Explanation struct {
	English *string
	Arabic  *string
}

// Gateway is the boundary over the text-generation capability. It performs no
// persistence and no retries; callers own both.
type Gateway interface {
	Summarize(ctx context.Context, text string, lang Language) (string, error)
	Explain(ctx context.Context, text string, lang Language) (*Explanation, error)
	GenerateExercises(ctx context.Context, text string, lang Language) ([]Exercise, error)
}

type gateway struct {
	provider llm.Provider
}

func NewGateway(provider llm.Provider) Gateway {
	return &gateway{provider: provider}
}

func (g *gateway) Summarize(ctx context.Context, text string, lang Language) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", ErrEmptyText
	}

	summary, err := g.provider.Generate(ctx, summaryPrompt(text, lang))
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(summary), nil
}

func (g *gateway) Explain(ctx context.Context, text string, lang Language) (*Explanation, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyText
	}

	result := &Explanation{}
	if lang == LanguageEnglish || lang == LanguageBoth {
		english, err := g.provider.Generate(ctx, explainPromptEnglish(text))
		if err != nil {
			return nil, err
		}
		english = strings.TrimSpace(english)
		result.English = &english
	}
	if lang == LanguageArabic || lang == LanguageBoth {
		arabic, err := g.provider.Generate(ctx, explainPromptArabic(text))
		if err != nil {
			return nil, err
		}
		arabic = strings.TrimSpace(arabic)
		result.Arabic = &arabic
	}
	return result, nil
}

func (g *gateway) GenerateExercises(ctx context.Context, text string, lang Language) ([]Exercise, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyText
	}

	raw, err := g.provider.Generate(ctx, exercisesPrompt(text, lang))
	if err != nil {
		return nil, err
	}

	exercises := ParseExercises(raw)
	if len(exercises) == 0 {
		return nil, llm.NewParseError(errors.New("no exercises found in model output"))
	}
	return exercises, nil
}
