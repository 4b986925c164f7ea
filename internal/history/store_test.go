package history

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/mazohq/beam-parser/internal/common"
	"github.com/mazohq/beam-parser/internal/entity"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("NewStore error: %v", err)
	}
	t.Cleanup(func() {
		_ = store.Close()
	})
	return store
}

func testSnapshot(title string) entity.Snapshot {
	return entity.Snapshot{
		JobDescriptions: []entity.ParsedDocument{
			{Title: title, Skills: []string{"Go"}, Experience: "3"},
		},
		Candidates: []entity.Candidate{
			{Name: "Jane Doe", FileName: "jane.pdf", Skills: []string{"Go"}, MatchPercentage: 100},
		},
	}
}

func TestInsertAndGet(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	ctx := context.Background()

	rec, err := store.Insert(ctx, "user-1", testSnapshot("Backend Engineer"))
	if err != nil {
		t.Fatalf("Insert error: %v", err)
	}
	if rec.ID == uuid.Nil {
		t.Fatal("expected a generated record ID")
	}
	if rec.DocumentType != DocumentTypeResume {
		t.Errorf("document type = %q, want %q", rec.DocumentType, DocumentTypeResume)
	}

	got, err := store.Get(ctx, rec.ID)
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if got.UserID != "user-1" {
		t.Errorf("user id = %q, want user-1", got.UserID)
	}

	snap, err := got.Snapshot()
	if err != nil {
		t.Fatalf("Snapshot decode error: %v", err)
	}
	if len(snap.JobDescriptions) != 1 || snap.JobDescriptions[0].Title != "Backend Engineer" {
		t.Errorf("decoded JDs = %+v", snap.JobDescriptions)
	}
	if len(snap.Candidates) != 1 || snap.Candidates[0].Name != "Jane Doe" {
		t.Errorf("decoded candidates = %+v", snap.Candidates)
	}
}

func TestListNewestFirst(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	ctx := context.Background()

	if _, err := store.Insert(ctx, "u", testSnapshot("First")); err != nil {
		t.Fatalf("Insert error: %v", err)
	}
	time.Sleep(10 * time.Millisecond)
	second, err := store.Insert(ctx, "u", testSnapshot("Second"))
	if err != nil {
		t.Fatalf("Insert error: %v", err)
	}

	recs, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("records = %d, want 2", len(recs))
	}
	if recs[0].ID != second.ID {
		t.Errorf("expected newest record first, got %s", recs[0].ID)
	}
}

func TestGetMissing(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	_, err := store.Get(context.Background(), uuid.New())
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDelete(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	ctx := context.Background()

	rec, err := store.Insert(ctx, "u", testSnapshot("Gone"))
	if err != nil {
		t.Fatalf("Insert error: %v", err)
	}
	if err := store.Delete(ctx, rec.ID); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if _, err := store.Get(ctx, rec.ID); !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	if err := store.Delete(ctx, rec.ID); !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("expected ErrNotFound deleting twice, got %v", err)
	}
}
