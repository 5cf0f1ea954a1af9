package history

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestAPIStoreListThreads(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		if r.URL.Path != "/api/sessions" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"data": map[string]interface{}{
				"sessions": []map[string]interface{}{
					{
						"id":            "7c9e6679-7425-40de-944b-e07fc1f90ae7",
						"inputText":     "the water cycle",
						"sessionType":   "summary",
						"outputSummary": "evaporation and condensation",
						"createdAt":     time.Now().Format(time.RFC3339Nano),
					},
				},
			},
		})
	}))
	defer server.Close()

	store := NewAPIStore(server.URL, "token-abc", 5*time.Second)
	threads, err := store.ListThreads(context.Background())
	if err != nil {
		t.Fatalf("ListThreads() error: %v", err)
	}
	if gotAuth != "Bearer token-abc" {
		t.Errorf("Authorization header = %q", gotAuth)
	}
	if len(threads) != 1 {
		t.Fatalf("got %d threads", len(threads))
	}
	if threads[0].Entries[0].Output != "evaporation and condensation" {
		t.Errorf("entry output = %q", threads[0].Entries[0].Output)
	}
}

func TestAPIStoreNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	store := NewAPIStore(server.URL, "token", 5*time.Second)
	if _, err := store.GetThread(context.Background(), "missing"); !errors.Is(err, ErrThreadNotFound) {
		t.Errorf("GetThread error = %v, want ErrThreadNotFound", err)
	}
	if err := store.DeleteThread(context.Background(), "missing"); !errors.Is(err, ErrThreadNotFound) {
		t.Errorf("DeleteThread error = %v, want ErrThreadNotFound", err)
	}
}

func TestAPIStoreWritesAreServerManaged(t *testing.T) {
	store := NewAPIStore("http://localhost:0", "token", time.Second)

	if _, err := store.CreateThread(context.Background(), "title"); !errors.Is(err, ErrServerManaged) {
		t.Errorf("CreateThread error = %v, want ErrServerManaged", err)
	}
	if err := store.AppendEntry(context.Background(), "id", Entry{}); !errors.Is(err, ErrServerManaged) {
		t.Errorf("AppendEntry error = %v, want ErrServerManaged", err)
	}
}
