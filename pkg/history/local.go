package history

import (
	"context"
	"encoding/json"
	"os"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

// LocalStore keeps threads in process memory with optional save/load to a
// JSON file. It stands in for browser local storage when the client runs
// without an account.
type LocalStore struct {
	mu      sync.Mutex
	threads *cache.Cache
	path    string
}

// NewLocalStore creates a store. path may be empty, in which case Save and
// Load are no-ops. Threads never expire on their own.
func NewLocalStore(path string) *LocalStore {
	return &LocalStore{
		threads: cache.New(cache.NoExpiration, cache.NoExpiration),
		path:    path,
	}
}

func (s *LocalStore) CreateThread(ctx context.Context, title string) (*Thread, error) {
	now := time.Now()
	thread := &Thread{
		Id:        uuid.NewString(),
		Title:     title,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.threads.Set(thread.Id, thread, cache.NoExpiration)
	return thread, nil
}

func (s *LocalStore) GetThread(ctx context.Context, id string) (*Thread, error) {
	raw, found := s.threads.Get(id)
	if !found {
		return nil, ErrThreadNotFound
	}
	return raw.(*Thread), nil
}

func (s *LocalStore) ListThreads(ctx context.Context) ([]*Thread, error) {
	items := s.threads.Items()
	threads := make([]*Thread, 0, len(items))
	for _, item := range items {
		threads = append(threads, item.Object.(*Thread))
	}
	sort.Slice(threads, func(i, j int) bool {
		return threads[i].UpdatedAt.After(threads[j].UpdatedAt)
	})
	return threads, nil
}

func (s *LocalStore) AppendEntry(ctx context.Context, threadId string, entry Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, found := s.threads.Get(threadId)
	if !found {
		return ErrThreadNotFound
	}
	thread := raw.(*Thread)
	thread.Entries = append(thread.Entries, entry)
	thread.UpdatedAt = time.Now()
	s.threads.Set(threadId, thread, cache.NoExpiration)
	return nil
}

func (s *LocalStore) DeleteThread(ctx context.Context, id string) error {
	if _, found := s.threads.Get(id); !found {
		return ErrThreadNotFound
	}
	s.threads.Delete(id)
	return nil
}

// Save writes all threads to the configured file.
func (s *LocalStore) Save() error {
	if s.path == "" {
		return nil
	}
	threads, _ := s.ListThreads(context.Background())
	data, err := json.MarshalIndent(threads, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o600)
}

// Load replaces the in-memory contents with the configured file's. A missing
// file is not an error.
func (s *LocalStore) Load() error {
	if s.path == "" {
		return nil
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	var threads []*Thread
	if err := json.Unmarshal(data, &threads); err != nil {
		return err
	}
	s.threads.Flush()
	for _, thread := range threads {
		s.threads.Set(thread.Id, thread, cache.NoExpiration)
	}
	return nil
}
