package history

import (
	"encoding/json"
	"fmt"

	"github.com/JaimeStill/blueprint/pkg/repository"
)

const columns = `id, input_text, components, connections, diagram, component_count, source, storage_key, created_at`

func scanEntry(s repository.Scanner) (Entry, error) {
	var (
		e           Entry
		components  []byte
		connections []byte
	)

	err := s.Scan(
		&e.ID,
		&e.Text,
		&components,
		&connections,
		&e.Diagram,
		&e.ComponentCount,
		&e.Source,
		&e.StorageKey,
		&e.CreatedAt,
	)
	if err != nil {
		return e, err
	}

	if err := json.Unmarshal(components, &e.Components); err != nil {
		return e, fmt.Errorf("decode components: %w", err)
	}
	if err := json.Unmarshal(connections, &e.Connections); err != nil {
		return e, fmt.Errorf("decode connections: %w", err)
	}

	return e, nil
}
