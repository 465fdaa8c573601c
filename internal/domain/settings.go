package domain

import (
	"context"
	"encoding/json"
)

// PathFragment is one filename, extension or directory-name component of a
// tracked list. Its flags control how the fragment is validated and how the
// surrounding server matches it against paths.
type PathFragment struct {
	Data                   string `json:"data"`
	CaseSensitive          bool   `json:"caseSensitive"`
	InterchangeableSlashes bool   `json:"interchangeableSlashes"`
}

// PathFragmentList is the value shape of the tracked extension, filename and
// directory settings. Whitelist true means the fragments name what to track,
// false means they name what to skip.
type PathFragmentList struct {
	Whitelist     bool           `json:"whitelist"`
	PathFragments []PathFragment `json:"pathFragments"`
}

// SettingRepository is the persistent string-keyed store behind a settings
// instance. Values are stored as the JSON text that was written; absent keys
// surface as ErrValueNotFound. The store never enumerates or deletes keys.
type SettingRepository interface {
	Read(ctx context.Context, key string) (json.RawMessage, error)
	Write(ctx context.Context, key string, value json.RawMessage) error
	Close() error
}
