package repository

import (
	"encoding/json"
	"fmt"
)

// marshalList encodes a string slice as a JSON array for a TEXT column.
// A nil slice stores as "[]" so reads never produce null.
func marshalList(items []string) (string, error) {
	if items == nil {
		items = []string{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return "", fmt.Errorf("encoding list column: %w", err)
	}
	return string(data), nil
}

func unmarshalList(raw string) ([]string, error) {
	if raw == "" {
		return []string{}, nil
	}
	var items []string
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, fmt.Errorf("decoding list column: %w", err)
	}
	if items == nil {
		items = []string{}
	}
	return items, nil
}

func marshalScores(scores map[string]float64) (string, error) {
	if scores == nil {
		scores = map[string]float64{}
	}
	data, err := json.Marshal(scores)
	if err != nil {
		return "", fmt.Errorf("encoding score column: %w", err)
	}
	return string(data), nil
}

func unmarshalScores(raw string) (map[string]float64, error) {
	if raw == "" {
		return map[string]float64{}, nil
	}
	var scores map[string]float64
	if err := json.Unmarshal([]byte(raw), &scores); err != nil {
		return nil, fmt.Errorf("decoding score column: %w", err)
	}
	if scores == nil {
		scores = map[string]float64{}
	}
	return scores, nil
}

// nullableFloatToValue converts a *float64 to a SQLite-storable value,
// mapping nil to SQL NULL.
func nullableFloatToValue(v *float64) interface{} {
	if v == nil {
		return nil
	}
	return *v
}
