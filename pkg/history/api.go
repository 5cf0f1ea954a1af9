package history

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// ErrServerManaged is returned by APIStore operations that only the backend
// can perform. Server sessions are created by the generation endpoints, not
// by the history client.
var ErrServerManaged = errors.New("server sessions are created by the generation endpoints")

// APIStore reads the authenticated user's server-side history over HTTP. It
// presents each server session as a single-entry thread.
type APIStore struct {
	baseURL string
	token   string
	client  *http.Client
}

func NewAPIStore(baseURL, token string, timeout time.Duration) *APIStore {
	return &APIStore{
		baseURL: baseURL,
		token:   token,
		client:  &http.Client{Timeout: timeout},
	}
}

type sessionEnvelope struct {
	Success bool   `json:"success"`
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    struct {
		Sessions []apiSession `json:"sessions"`
	} `json:"data"`
}

type singleSessionEnvelope struct {
	Success bool       `json:"success"`
	Data    apiSession `json:"data"`
}

type apiSession struct {
	Id            string    `json:"id"`
	InputText     string    `json:"inputText"`
	SessionType   string    `json:"sessionType"`
	OutputSummary *string   `json:"outputSummary"`
	CreatedAt     time.Time `json:"createdAt"`
}

func (s *APIStore) CreateThread(ctx context.Context, title string) (*Thread, error) {
	return nil, ErrServerManaged
}

func (s *APIStore) AppendEntry(ctx context.Context, threadId string, entry Entry) error {
	return ErrServerManaged
}

func (s *APIStore) GetThread(ctx context.Context, id string) (*Thread, error) {
	var envelope singleSessionEnvelope
	if err := s.get(ctx, "/api/sessions/"+id, &envelope); err != nil {
		return nil, err
	}
	thread := toThread(envelope.Data)
	return &thread, nil
}

func (s *APIStore) ListThreads(ctx context.Context) ([]*Thread, error) {
	var envelope sessionEnvelope
	if err := s.get(ctx, "/api/sessions", &envelope); err != nil {
		return nil, err
	}
	threads := make([]*Thread, len(envelope.Data.Sessions))
	for i, session := range envelope.Data.Sessions {
		thread := toThread(session)
		threads[i] = &thread
	}
	return threads, nil
}

func (s *APIStore) DeleteThread(ctx context.Context, id string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, s.baseURL+"/api/sessions/"+id, nil)
	if err != nil {
		return err
	}
	return s.do(req, nil)
}

func (s *APIStore) get(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+path, nil)
	if err != nil {
		return err
	}
	return s.do(req, out)
}

func (s *APIStore) do(req *http.Request, out interface{}) error {
	req.Header.Set("Authorization", "Bearer "+s.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode == http.StatusNotFound {
		return ErrThreadNotFound
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("history api: %s returned %d: %s", req.URL.Path, resp.StatusCode, bytes.TrimSpace(body))
	}
	if out == nil {
		return nil
	}
	return json.Unmarshal(body, out)
}

func toThread(session apiSession) Thread {
	entry := Entry{
		Kind:      session.SessionType,
		InputText: session.InputText,
		CreatedAt: session.CreatedAt,
	}
	if session.OutputSummary != nil {
		entry.Output = *session.OutputSummary
	}
	title := session.InputText
	if len(title) > 60 {
		title = title[:60]
	}
	return Thread{
		Id:        session.Id,
		Title:     title,
		Entries:   []Entry{entry},
		CreatedAt: session.CreatedAt,
		UpdatedAt: session.CreatedAt,
	}
}
