package history_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/google/uuid"

	"github.com/JaimeStill/blueprint/internal/history"
	"github.com/JaimeStill/blueprint/internal/resolver"
)

func TestRecordRejectsInvalid(t *testing.T) {
	sys := history.NewMemory(nil, discard(), 5)
	ctx := context.Background()

	empty := command("a shop with a database")
	empty.Result.Components = nil

	tests := []struct {
		name string
		cmd  history.RecordCommand
	}{
		{"blank text", command("   ")},
		{"no components", empty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := sys.Record(ctx, tt.cmd); !errors.Is(err, history.ErrInvalidEntry) {
				t.Errorf("err: got %v, want ErrInvalidEntry", err)
			}
		})
	}
}

func TestRecordPopulatesEntry(t *testing.T) {
	sys := history.NewMemory(nil, discard(), 5)

	cmd := command("a shop with a database")
	cmd.Source = ""

	e, err := sys.Record(context.Background(), cmd)
	if err != nil {
		t.Fatalf("Record: %v", err)
	}

	if e.ID == uuid.Nil {
		t.Error("id not assigned")
	}
	if e.ComponentCount != 1 {
		t.Errorf("component_count: got %d, want 1", e.ComponentCount)
	}
	if e.Connections == nil {
		t.Error("connections should be an empty slice")
	}
	if e.Source != resolver.SourceFallback {
		t.Errorf("source: got %s, want fallback", e.Source)
	}
	if e.StorageKey != "" {
		t.Errorf("storage_key without a store: got %q", e.StorageKey)
	}
	if e.CreatedAt.IsZero() {
		t.Error("created_at not set")
	}
}

func TestRecordReplacesIdenticalText(t *testing.T) {
	sys := history.NewMemory(nil, discard(), 5)
	ctx := context.Background()

	first, _ := sys.Record(ctx, command("same description here"))
	sys.Record(ctx, command("another description"))
	second, _ := sys.Record(ctx, command("same description here"))

	entries, _ := sys.List(ctx)
	if len(entries) != 2 {
		t.Fatalf("entries: got %d, want 2", len(entries))
	}
	if entries[0].ID != second.ID {
		t.Errorf("newest: got %s, want %s", entries[0].ID, second.ID)
	}
	if _, err := sys.Find(ctx, first.ID); !errors.Is(err, history.ErrNotFound) {
		t.Errorf("replaced entry: got %v, want ErrNotFound", err)
	}
}

func TestRecordEnforcesRetention(t *testing.T) {
	store := newMemStore()
	sys := history.NewMemory(store, discard(), 3)
	ctx := context.Background()

	var ids []uuid.UUID
	for i := range 5 {
		e, err := sys.Record(ctx, command(fmt.Sprintf("description number %d", i)))
		if err != nil {
			t.Fatalf("Record %d: %v", i, err)
		}
		ids = append(ids, e.ID)
	}

	entries, _ := sys.List(ctx)
	if len(entries) != 3 {
		t.Fatalf("entries: got %d, want 3", len(entries))
	}
	for i, want := range []uuid.UUID{ids[4], ids[3], ids[2]} {
		if entries[i].ID != want {
			t.Errorf("entries[%d]: got %s, want %s", i, entries[i].ID, want)
		}
	}

	if keys := store.keys(); len(keys) != 3 {
		t.Errorf("exported blobs: got %v, want 3", keys)
	}
}

func TestRecordExportsDiagram(t *testing.T) {
	store := newMemStore()
	sys := history.NewMemory(store, discard(), 5)
	ctx := context.Background()

	e, err := sys.Record(ctx, command("an api with a database"))
	if err != nil {
		t.Fatalf("Record: %v", err)
	}

	want := fmt.Sprintf("diagrams/%s.mmd", e.ID)
	if e.StorageKey != want {
		t.Errorf("storage_key: got %q, want %q", e.StorageKey, want)
	}

	blob, err := sys.Export(ctx, e.ID)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	defer blob.Body.Close()

	data, _ := io.ReadAll(blob.Body)
	if string(data) != "graph TB\n" {
		t.Errorf("body: got %q", data)
	}
	if blob.ContentType != history.DiagramContentType {
		t.Errorf("content type: got %q", blob.ContentType)
	}
}

func TestRecordUploadFailure(t *testing.T) {
	store := newMemStore()
	store.uploadErr = errors.New("unreachable")
	sys := history.NewMemory(store, discard(), 5)
	ctx := context.Background()

	if _, err := sys.Record(ctx, command("an api with a database")); err == nil {
		t.Fatal("expected error")
	}
	if entries, _ := sys.List(ctx); len(entries) != 0 {
		t.Errorf("entries after failed export: got %d", len(entries))
	}
}

func TestExportWithoutStore(t *testing.T) {
	sys := history.NewMemory(nil, discard(), 5)
	ctx := context.Background()

	e, _ := sys.Record(ctx, command("an api with a database"))

	if _, err := sys.Export(ctx, e.ID); !errors.Is(err, history.ErrNoExport) {
		t.Errorf("err: got %v, want ErrNoExport", err)
	}
}

func TestDeleteRemovesBlob(t *testing.T) {
	store := newMemStore()
	sys := history.NewMemory(store, discard(), 5)
	ctx := context.Background()

	e, _ := sys.Record(ctx, command("an api with a database"))

	if err := sys.Delete(ctx, e.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if keys := store.keys(); len(keys) != 0 {
		t.Errorf("blobs after delete: %v", keys)
	}
	if err := sys.Delete(ctx, e.ID); !errors.Is(err, history.ErrNotFound) {
		t.Errorf("second delete: got %v, want ErrNotFound", err)
	}
}

func TestClear(t *testing.T) {
	store := newMemStore()
	sys := history.NewMemory(store, discard(), 5)
	ctx := context.Background()

	sys.Record(ctx, command("first description"))
	sys.Record(ctx, command("second description"))

	n, err := sys.Clear(ctx)
	if err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if n != 2 {
		t.Errorf("cleared: got %d, want 2", n)
	}
	if entries, _ := sys.List(ctx); len(entries) != 0 {
		t.Errorf("entries after clear: %d", len(entries))
	}
	if keys := store.keys(); len(keys) != 0 {
		t.Errorf("blobs after clear: %v", keys)
	}
}

func TestMapHTTPStatus(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{history.ErrNotFound, 404},
		{history.ErrNoExport, 404},
		{history.ErrDuplicate, 409},
		{history.ErrInvalidEntry, 400},
		{history.ErrInvalidID, 400},
		{fmt.Errorf("wrapped: %w", history.ErrNotFound), 404},
		{errors.New("boom"), 500},
	}

	for _, tt := range tests {
		if got := history.MapHTTPStatus(tt.err); got != tt.want {
			t.Errorf("MapHTTPStatus(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}
