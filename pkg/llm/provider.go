package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

// Message represents a chat message in a provider-agnostic format
type Message struct {
	Role    string // "user", "assistant", "system"
	Content string
}

// Option allows for optional parameters like Temperature, MaxTokens, etc.
type Option func(*Options)

type Options struct {
	Temperature float64
	MaxTokens   int
	Model       string // Override default model
}

func WithTemperature(temp float64) Option {
	return func(o *Options) {
		o.Temperature = temp
	}
}

func WithMaxTokens(n int) Option {
	return func(o *Options) {
		o.MaxTokens = n
	}
}

func WithModel(model string) Option {
	return func(o *Options) {
		o.Model = model
	}
}

// Provider defines the contract for any LLM backend
type Provider interface {
	// Chat sends a chat history to the model and returns the response
	Chat(ctx context.Context, history []Message, options ...Option) (string, error)

	// Generate sends a single prompt to the model (convenience method)
	Generate(ctx context.Context, prompt string, options ...Option) (string, error)
}

// UpstreamError reports a failed provider call. Retryable is true for
// timeouts and 5xx responses; 4xx responses and unparseable payloads are not
// retryable. The provider itself never retries.
type UpstreamError struct {
	StatusCode int // 0 when the request never completed
	Retryable  bool
	Detail     string
}

func (e *UpstreamError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("upstream status %d: %s", e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("upstream failure: %s", e.Detail)
}

// NewStatusError classifies an HTTP status from the provider.
func NewStatusError(status int, detail string) *UpstreamError {
	return &UpstreamError{
		StatusCode: status,
		Retryable:  status >= http.StatusInternalServerError,
		Detail:     detail,
	}
}

// NewTransportError covers timeouts and connection failures.
func NewTransportError(err error) *UpstreamError {
	return &UpstreamError{Retryable: true, Detail: err.Error()}
}

// NewParseError covers malformed provider responses.
func NewParseError(err error) *UpstreamError {
	return &UpstreamError{Retryable: false, Detail: err.Error()}
}

// IsRetryable reports whether err is an upstream failure worth retrying.
func IsRetryable(err error) bool {
	var ue *UpstreamError
	if errors.As(err, &ue) {
		return ue.Retryable
	}
	return false
}
