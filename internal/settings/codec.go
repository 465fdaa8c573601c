package settings

import (
	"encoding/json"
	"fmt"
)

// Decode converts a decoded-JSON setting value into a typed structure such
// as domain.PathFragmentList by round-tripping it through JSON.
func Decode(value any, out any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encoding setting value: %w", err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decoding setting value: %w", err)
	}
	return nil
}

// Encode converts a typed value into the decoded-JSON form the registry
// validates, so callers can build values from domain structures instead of
// raw maps.
func Encode(value any) (any, error) {
	raw, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("encoding setting value: %w", err)
	}
	var out any
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decoding setting value: %w", err)
	}
	return out, nil
}
