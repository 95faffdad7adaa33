package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/JaimeStill/blueprint/pkg/repository"
	"github.com/JaimeStill/blueprint/pkg/storage"
)

type repo struct {
	db        *sql.DB
	export    exporter
	logger    *slog.Logger
	retention int
}

// New creates a PostgreSQL-backed history implementing the System interface.
// store may be nil, in which case diagrams are not exported.
func New(db *sql.DB, store storage.System, logger *slog.Logger, retention int) System {
	logger = logger.With("system", "history", "backend", "postgres")
	if retention < 1 {
		retention = DefaultRetention
	}

	return &repo{
		db:        db,
		export:    exporter{store: store, logger: logger},
		logger:    logger,
		retention: retention,
	}
}

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.logger)
}

func (r *repo) List(ctx context.Context) ([]Entry, error) {
	q := `SELECT ` + columns + ` FROM history ORDER BY created_at DESC, id LIMIT $1`

	entries, err := repository.QueryMany(ctx, r.db, q, []any{r.retention}, scanEntry)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	return entries, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*Entry, error) {
	q := `SELECT ` + columns + ` FROM history WHERE id = $1`

	e, err := repository.QueryOne(ctx, r.db, q, []any{id}, scanEntry)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &e, nil
}

type recorded struct {
	entry Entry
	stale []string
}

func (r *repo) Record(ctx context.Context, cmd RecordCommand) (*Entry, error) {
	if err := cmd.validate(); err != nil {
		return nil, err
	}

	entry := newEntry(uuid.New(), cmd)

	components, err := json.Marshal(entry.Components)
	if err != nil {
		return nil, fmt.Errorf("encode components: %w", err)
	}
	connections, err := json.Marshal(entry.Connections)
	if err != nil {
		return nil, fmt.Errorf("encode connections: %w", err)
	}

	key, err := r.export.upload(ctx, entry.ID, entry.Diagram)
	if err != nil {
		return nil, err
	}

	insert := `
		INSERT INTO history(id, input_text, components, connections, diagram, component_count, source, storage_key)
		VALUES ($1, $2, $3::jsonb, $4::jsonb, $5, $6, $7, $8)
		RETURNING ` + columns

	insertArgs := []any{
		entry.ID,
		entry.Text,
		string(components),
		string(connections),
		entry.Diagram,
		entry.ComponentCount,
		entry.Source,
		key,
	}

	evict := `
		DELETE FROM history
		WHERE id IN (SELECT id FROM history ORDER BY created_at DESC, id OFFSET $1)
		RETURNING storage_key`

	res, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (recorded, error) {
		replaced, err := repository.QueryMany(
			ctx, tx,
			`DELETE FROM history WHERE input_text = $1 RETURNING storage_key`,
			[]any{entry.Text},
			repository.ScanValue[string],
		)
		if err != nil {
			return recorded{}, err
		}

		e, err := repository.QueryOne(ctx, tx, insert, insertArgs, scanEntry)
		if err != nil {
			return recorded{}, err
		}

		evicted, err := repository.QueryMany(ctx, tx, evict, []any{r.retention}, repository.ScanValue[string])
		if err != nil {
			return recorded{}, err
		}

		return recorded{entry: e, stale: append(replaced, evicted...)}, nil
	})

	if err != nil {
		r.export.remove(ctx, key)
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.export.remove(ctx, res.stale...)

	r.logger.Info(
		"history recorded",
		"id", res.entry.ID,
		"source", res.entry.Source,
		"components", res.entry.ComponentCount,
		"evicted", len(res.stale),
	)
	return &res.entry, nil
}

func (r *repo) Delete(ctx context.Context, id uuid.UUID) error {
	key, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (string, error) {
		return repository.QueryOne(
			ctx, tx,
			`DELETE FROM history WHERE id = $1 RETURNING storage_key`,
			[]any{id},
			repository.ScanValue[string],
		)
	})
	if err != nil {
		return repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.export.remove(ctx, key)

	r.logger.Info("history entry deleted", "id", id)
	return nil
}

func (r *repo) Clear(ctx context.Context) (int, error) {
	keys, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) ([]string, error) {
		return repository.QueryMany(ctx, tx, `DELETE FROM history RETURNING storage_key`, nil, repository.ScanValue[string])
	})
	if err != nil {
		return 0, fmt.Errorf("clear history: %w", err)
	}

	r.export.remove(ctx, keys...)

	r.logger.Info("history cleared", "count", len(keys))
	return len(keys), nil
}

func (r *repo) Export(ctx context.Context, id uuid.UUID) (*storage.BlobResult, error) {
	entry, err := r.Find(ctx, id)
	if err != nil {
		return nil, err
	}
	return r.export.download(ctx, entry)
}
