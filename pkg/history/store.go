// Package history keeps per-user tutoring threads. Two stores share one
// interface: LocalStore for anonymous continuity on the client machine and
// APIStore for server-side persistence. The two are independent; nothing
// reconciles a local thread with a server session.
package history

import (
	"context"
	"errors"
	"time"
)

// ErrThreadNotFound is returned when a thread id has no entry in the store.
var ErrThreadNotFound = errors.New("thread not found")

// Entry is one exchange inside a thread.
type Entry struct {
	Kind      string    `json:"kind"` // summary, explanation or exercises
	InputText string    `json:"inputText"`
	Output    string    `json:"output"`
	CreatedAt time.Time `json:"createdAt"`
}

// Thread is a locally-identified conversation. The id is generated by the
// store, never by the server.
type Thread struct {
	Id        string    `json:"id"`
	Title     string    `json:"title"`
	Entries   []Entry   `json:"entries"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type HistoryStore interface {
	CreateThread(ctx context.Context, title string) (*Thread, error)
	GetThread(ctx context.Context, id string) (*Thread, error)
	ListThreads(ctx context.Context) ([]*Thread, error)
	AppendEntry(ctx context.Context, threadId string, entry Entry) error
	DeleteThread(ctx context.Context, id string) error
}
