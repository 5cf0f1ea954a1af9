package history

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"
)

func TestLocalStoreThreadLifecycle(t *testing.T) {
	store := NewLocalStore("")
	ctx := context.Background()

	thread, err := store.CreateThread(ctx, "Biology review")
	if err != nil {
		t.Fatalf("CreateThread() error: %v", err)
	}
	if thread.Id == "" {
		t.Fatal("thread id not assigned")
	}

	entry := Entry{Kind: "summary", InputText: "cells", Output: "a summary", CreatedAt: time.Now()}
	if err := store.AppendEntry(ctx, thread.Id, entry); err != nil {
		t.Fatalf("AppendEntry() error: %v", err)
	}

	got, err := store.GetThread(ctx, thread.Id)
	if err != nil {
		t.Fatalf("GetThread() error: %v", err)
	}
	if len(got.Entries) != 1 || got.Entries[0].Output != "a summary" {
		t.Errorf("thread entries = %+v", got.Entries)
	}

	if err := store.DeleteThread(ctx, thread.Id); err != nil {
		t.Fatalf("DeleteThread() error: %v", err)
	}
	if _, err := store.GetThread(ctx, thread.Id); !errors.Is(err, ErrThreadNotFound) {
		t.Errorf("GetThread(deleted) error = %v, want ErrThreadNotFound", err)
	}
}

func TestLocalStoreUnknownThread(t *testing.T) {
	store := NewLocalStore("")
	ctx := context.Background()

	if _, err := store.GetThread(ctx, "missing"); !errors.Is(err, ErrThreadNotFound) {
		t.Errorf("GetThread error = %v, want ErrThreadNotFound", err)
	}
	if err := store.AppendEntry(ctx, "missing", Entry{}); !errors.Is(err, ErrThreadNotFound) {
		t.Errorf("AppendEntry error = %v, want ErrThreadNotFound", err)
	}
	if err := store.DeleteThread(ctx, "missing"); !errors.Is(err, ErrThreadNotFound) {
		t.Errorf("DeleteThread error = %v, want ErrThreadNotFound", err)
	}
}

func TestLocalStoreListOrdersByRecency(t *testing.T) {
	store := NewLocalStore("")
	ctx := context.Background()

	first, _ := store.CreateThread(ctx, "first")
	second, _ := store.CreateThread(ctx, "second")

	// Touch the first thread so it becomes the most recent.
	time.Sleep(5 * time.Millisecond)
	if err := store.AppendEntry(ctx, first.Id, Entry{Kind: "summary"}); err != nil {
		t.Fatal(err)
	}

	threads, err := store.ListThreads(ctx)
	if err != nil {
		t.Fatalf("ListThreads() error: %v", err)
	}
	if len(threads) != 2 {
		t.Fatalf("got %d threads, want 2", len(threads))
	}
	if threads[0].Id != first.Id || threads[1].Id != second.Id {
		t.Errorf("threads not ordered by recency: %s, %s", threads[0].Title, threads[1].Title)
	}
}

func TestLocalStoreSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.json")
	ctx := context.Background()

	store := NewLocalStore(path)
	thread, _ := store.CreateThread(ctx, "persisted")
	if err := store.AppendEntry(ctx, thread.Id, Entry{Kind: "summary", Output: "kept"}); err != nil {
		t.Fatal(err)
	}
	if err := store.Save(); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	reloaded := NewLocalStore(path)
	if err := reloaded.Load(); err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	got, err := reloaded.GetThread(ctx, thread.Id)
	if err != nil {
		t.Fatalf("GetThread() after reload: %v", err)
	}
	if len(got.Entries) != 1 || got.Entries[0].Output != "kept" {
		t.Errorf("reloaded thread = %+v", got)
	}
}

func TestLocalStoreLoadMissingFile(t *testing.T) {
	store := NewLocalStore(filepath.Join(t.TempDir(), "does-not-exist.json"))
	if err := store.Load(); err != nil {
		t.Fatalf("Load() of missing file should be a no-op, got %v", err)
	}
}
