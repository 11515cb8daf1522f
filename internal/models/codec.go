package models

import (
	"encoding/json"
	"fmt"

	"github.com/gigspace/core/internal/store"
)

// ToRecord converts an entity to its stored document via its json tags.
func ToRecord(v any) (store.Record, error) {
	content, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode record: %w", err)
	}
	var rec store.Record
	if err := json.Unmarshal(content, &rec); err != nil {
		return nil, fmt.Errorf("decode record: %w", err)
	}
	return rec, nil
}

// FromRecord decodes a stored document into the given entity pointer.
// Unknown keys are ignored; missing keys leave zero values.
func FromRecord(rec store.Record, out any) error {
	content, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode record: %w", err)
	}
	if err := json.Unmarshal(content, out); err != nil {
		return fmt.Errorf("decode record: %w", err)
	}
	return nil
}
