package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"ai-tutor-be/pkg/llm"
)

func newTestProvider(serverURL string) *GeminiProvider {
	return &GeminiProvider{
		APIKey:    "test-key",
		ModelName: "gemini-1.5-flash",
		BaseURL:   serverURL,
		Client:    &http.Client{Timeout: 5 * time.Second},
	}
}

func TestGenerateSuccess(t *testing.T) {
	var gotPath, gotAPIKey string
	var gotReq geminiRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAPIKey = r.Header.Get("x-goog-api-key")
		_ = json.NewDecoder(r.Body).Decode(&gotReq)

		_ = json.NewEncoder(w).Encode(geminiResponse{
			Candidates: []geminiCandidate{{
				Content: &geminiContent{Parts: []geminiPart{{Text: "generated text"}}},
			}},
		})
	}))
	defer server.Close()

	provider := newTestProvider(server.URL)
	out, err := provider.Generate(context.Background(), "hello")
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	if out != "generated text" {
		t.Errorf("Generate() = %q", out)
	}
	if gotPath != "/models/gemini-1.5-flash:generateContent" {
		t.Errorf("request path = %q", gotPath)
	}
	if gotAPIKey != "test-key" {
		t.Errorf("api key header = %q", gotAPIKey)
	}
	if len(gotReq.Contents) != 1 || gotReq.Contents[0].Parts[0].Text != "hello" {
		t.Errorf("unexpected request payload: %+v", gotReq)
	}
}

func TestChatMapsAssistantRole(t *testing.T) {
	var gotReq geminiRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&gotReq)
		_ = json.NewEncoder(w).Encode(geminiResponse{
			Candidates: []geminiCandidate{{
				Content: &geminiContent{Parts: []geminiPart{{Text: "ok"}}},
			}},
		})
	}))
	defer server.Close()

	provider := newTestProvider(server.URL)
	_, err := provider.Chat(context.Background(), []llm.Message{
		{Role: "user", Content: "hi"},
		{Role: "assistant", Content: "hello"},
	})
	if err != nil {
		t.Fatalf("Chat() error: %v", err)
	}
	if gotReq.Contents[1].Role != "model" {
		t.Errorf("assistant role mapped to %q, want model", gotReq.Contents[1].Role)
	}
}

func TestErrorClassification(t *testing.T) {
	tests := []struct {
		name          string
		status        int
		wantRetryable bool
	}{
		{name: "server error is retryable", status: http.StatusServiceUnavailable, wantRetryable: true},
		{name: "rate limit is not retryable", status: http.StatusTooManyRequests, wantRetryable: false},
		{name: "bad request is not retryable", status: http.StatusBadRequest, wantRetryable: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "upstream says no", tt.status)
			}))
			defer server.Close()

			provider := newTestProvider(server.URL)
			_, err := provider.Generate(context.Background(), "prompt")

			var ue *llm.UpstreamError
			if !errors.As(err, &ue) {
				t.Fatalf("expected UpstreamError, got %v", err)
			}
			if ue.StatusCode != tt.status {
				t.Errorf("StatusCode = %d, want %d", ue.StatusCode, tt.status)
			}
			if ue.Retryable != tt.wantRetryable {
				t.Errorf("Retryable = %v, want %v", ue.Retryable, tt.wantRetryable)
			}
		})
	}
}

func TestEmptyCandidatesIsParseError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(geminiResponse{})
	}))
	defer server.Close()

	provider := newTestProvider(server.URL)
	_, err := provider.Generate(context.Background(), "prompt")

	var ue *llm.UpstreamError
	if !errors.As(err, &ue) {
		t.Fatalf("expected UpstreamError, got %v", err)
	}
	if ue.Retryable {
		t.Errorf("empty candidates should not be retryable")
	}
}

func TestTimeoutIsRetryableTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	provider := newTestProvider(server.URL)
	provider.Client.Timeout = 20 * time.Millisecond

	_, err := provider.Generate(context.Background(), "prompt")
	if !llm.IsRetryable(err) {
		t.Fatalf("timeout should be a retryable transport error, got %v", err)
	}
}
