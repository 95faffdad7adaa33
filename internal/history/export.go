package history

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/JaimeStill/blueprint/pkg/storage"
)

// DiagramContentType is the content type of exported diagram blobs.
const DiagramContentType = "text/vnd.mermaid"

// exporter writes diagram markup to blob storage. A nil store disables export.
type exporter struct {
	store  storage.System
	logger *slog.Logger
}

func storageKey(id uuid.UUID) string {
	return fmt.Sprintf("diagrams/%s.mmd", id)
}

func (e exporter) upload(ctx context.Context, id uuid.UUID, diagram string) (string, error) {
	if e.store == nil || diagram == "" {
		return "", nil
	}

	key := storageKey(id)
	if err := e.store.Upload(ctx, key, strings.NewReader(diagram), DiagramContentType); err != nil {
		return "", fmt.Errorf("export diagram: %w", err)
	}
	return key, nil
}

// remove deletes blobs, logging failures. Missing blobs are ignored.
func (e exporter) remove(ctx context.Context, keys ...string) {
	if e.store == nil {
		return
	}
	for _, key := range keys {
		if key == "" {
			continue
		}
		if err := e.store.Delete(ctx, key); err != nil && !errors.Is(err, storage.ErrNotFound) {
			e.logger.Warn("diagram blob delete failed", "key", key, "error", err)
		}
	}
}

func (e exporter) download(ctx context.Context, entry *Entry) (*storage.BlobResult, error) {
	if e.store == nil || entry.StorageKey == "" {
		return nil, ErrNoExport
	}

	blob, err := e.store.Download(ctx, entry.StorageKey)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrNoExport
		}
		return nil, err
	}
	return blob, nil
}
