package history

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/JaimeStill/blueprint/pkg/storage"
)

type memory struct {
	mu        sync.Mutex
	entries   []Entry
	export    exporter
	logger    *slog.Logger
	retention int
	now       func() time.Time
}

// NewMemory creates a process-local history with the same replacement and
// retention rules as the PostgreSQL backend. Entries do not survive a restart.
func NewMemory(store storage.System, logger *slog.Logger, retention int) System {
	logger = logger.With("system", "history", "backend", "memory")
	if retention < 1 {
		retention = DefaultRetention
	}

	return &memory{
		export:    exporter{store: store, logger: logger},
		logger:    logger,
		retention: retention,
		now:       time.Now,
	}
}

func (m *memory) Handler() *Handler {
	return NewHandler(m, m.logger)
}

func (m *memory) List(ctx context.Context) ([]Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]Entry, len(m.entries))
	copy(out, m.entries)
	return out, nil
}

func (m *memory) Find(ctx context.Context, id uuid.UUID) (*Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, e := range m.entries {
		if e.ID == id {
			return &e, nil
		}
	}
	return nil, ErrNotFound
}

func (m *memory) Record(ctx context.Context, cmd RecordCommand) (*Entry, error) {
	if err := cmd.validate(); err != nil {
		return nil, err
	}

	entry := newEntry(uuid.New(), cmd)

	key, err := m.export.upload(ctx, entry.ID, entry.Diagram)
	if err != nil {
		return nil, err
	}
	entry.StorageKey = key

	m.mu.Lock()
	entry.CreatedAt = m.now().UTC()

	var stale []string
	kept := make([]Entry, 0, m.retention)
	kept = append(kept, entry)
	for _, e := range m.entries {
		if e.Text == entry.Text || len(kept) >= m.retention {
			stale = append(stale, e.StorageKey)
			continue
		}
		kept = append(kept, e)
	}
	m.entries = kept
	m.mu.Unlock()

	m.export.remove(ctx, stale...)

	m.logger.Info(
		"history recorded",
		"id", entry.ID,
		"source", entry.Source,
		"components", entry.ComponentCount,
		"evicted", len(stale),
	)
	return &entry, nil
}

func (m *memory) Delete(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	idx := -1
	for i, e := range m.entries {
		if e.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		m.mu.Unlock()
		return ErrNotFound
	}
	key := m.entries[idx].StorageKey
	m.entries = append(m.entries[:idx:idx], m.entries[idx+1:]...)
	m.mu.Unlock()

	m.export.remove(ctx, key)

	m.logger.Info("history entry deleted", "id", id)
	return nil
}

func (m *memory) Clear(ctx context.Context) (int, error) {
	m.mu.Lock()
	removed := m.entries
	m.entries = nil
	m.mu.Unlock()

	keys := make([]string, len(removed))
	for i, e := range removed {
		keys[i] = e.StorageKey
	}
	m.export.remove(ctx, keys...)

	m.logger.Info("history cleared", "count", len(removed))
	return len(removed), nil
}

func (m *memory) Export(ctx context.Context, id uuid.UUID) (*storage.BlobResult, error) {
	entry, err := m.Find(ctx, id)
	if err != nil {
		return nil, err
	}
	return m.export.download(ctx, entry)
}
