package apperror

import (
	"errors"
	"fmt"
	"testing"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{name: "validation", err: Validation("bad input"), want: KindValidation},
		{name: "auth", err: Auth("nope"), want: KindAuth},
		{name: "not found", err: NotFound("gone"), want: KindNotFound},
		{name: "conflict", err: Conflict("dup"), want: KindConflict},
		{name: "upstream", err: Upstream("down", true, nil), want: KindUpstream},
		{name: "wrapped", err: fmt.Errorf("context: %w", NotFound("gone")), want: KindNotFound},
		{name: "plain error", err: errors.New("boom"), want: KindUnknown},
		{name: "nil", err: nil, want: KindUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KindOf(tt.err); got != tt.want {
				t.Errorf("KindOf() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMessageOf(t *testing.T) {
	if got := MessageOf(Validation("text is required")); got != "text is required" {
		t.Errorf("MessageOf(app error) = %q", got)
	}
	// Internal errors must not leak their detail to clients.
	if got := MessageOf(errors.New("pq: connection refused")); got != "An unexpected error occurred" {
		t.Errorf("MessageOf(plain error) = %q", got)
	}
}

func TestUpstreamCauseIsUnwrappable(t *testing.T) {
	cause := errors.New("status 503")
	err := Upstream("AI service unavailable", true, cause)
	if !errors.Is(err, cause) {
		t.Error("Upstream() should wrap its cause")
	}
}
