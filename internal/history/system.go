package history

import (
	"context"

	"github.com/google/uuid"

	"github.com/JaimeStill/blueprint/pkg/storage"
)

// System defines the public contract for history operations.
type System interface {
	Handler() *Handler

	// List returns entries newest first.
	List(ctx context.Context) ([]Entry, error)
	Find(ctx context.Context, id uuid.UUID) (*Entry, error)
	// Record stores a resolution, replacing any entry with identical text
	// and evicting entries beyond the retention limit.
	Record(ctx context.Context, cmd RecordCommand) (*Entry, error)
	Delete(ctx context.Context, id uuid.UUID) error
	// Clear removes every entry and returns how many were removed.
	Clear(ctx context.Context) (int, error)
	// Export returns the exported diagram blob for an entry. The caller
	// must close the body.
	Export(ctx context.Context, id uuid.UUID) (*storage.BlobResult, error)
}
