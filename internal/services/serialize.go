package services

import (
	"encoding/json"
	"fmt"
)

// String lists (visa type requirements, application document references)
// are persisted as JSON text columns.

func encodeStringList(items []string) (*string, error) {
	if len(items) == 0 {
		return nil, nil
	}
	data, err := json.Marshal(items)
	if err != nil {
		return nil, fmt.Errorf("failed to encode list: %w", err)
	}
	s := string(data)
	return &s, nil
}

func decodeStringList(raw *string) ([]string, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	var items []string
	if err := json.Unmarshal([]byte(*raw), &items); err != nil {
		return nil, fmt.Errorf("failed to decode list: %w", err)
	}
	return items, nil
}
