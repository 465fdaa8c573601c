package settings

import (
	"fmt"

	"github.com/amaumene/trackarr/internal/domain"
)

// Registry setting keys.
const (
	KeyTrackedExtensions    = "trackedExtensions"
	KeyTrackedFilenames     = "trackedFilenames"
	KeyTrackedDirectories   = "trackedDirectories"
	KeyEnableThumbnailCache = "enableThumbnailCache"
)

const (
	envTrackedExtensions    = "TRACKED_EXTENSIONS"
	envTrackedFilenames     = "TRACKED_FILENAMES"
	envTrackedDirectories   = "TRACKED_DIRECTORIES"
	envEnableThumbnailCache = "ENABLE_THUMBNAIL_CACHE"
)

// Registry is the ordered, immutable table mapping setting keys to their
// definitions. It is built once at startup and shared read-only.
type Registry struct {
	windowsCompat bool
	keys          []string
	table         map[string]Setting
}

type entry struct {
	key     string
	setting Setting
}

func newRegistry(windowsCompat bool, entries []entry) *Registry {
	registry := &Registry{
		windowsCompat: windowsCompat,
		keys:          make([]string, 0, len(entries)),
		table:         make(map[string]Setting, len(entries)),
	}
	for _, e := range entries {
		registry.keys = append(registry.keys, e.key)
		registry.table[e.key] = e.setting
	}
	return registry
}

// NewRegistry builds the fixed setting table for the file tracking server.
// windowsCompat selects the stricter Windows filename rules for all path
// fragment validation.
func NewRegistry(windowsCompat bool) *Registry {
	return newRegistry(windowsCompat, []entry{
		// The empty extension fragment denotes files without an extension.
		{KeyTrackedExtensions, NewPathFragmentList(envTrackedExtensions, false, true, windowsCompat)},
		{KeyTrackedFilenames, NewPathFragmentList(envTrackedFilenames, false, false, windowsCompat)},
		{KeyTrackedDirectories, NewPathFragmentList(envTrackedDirectories, true, false, windowsCompat)},
		{KeyEnableThumbnailCache, NewBool(envEnableThumbnailCache)},
	})
}

// Has reports whether key names a registered setting.
func (r *Registry) Has(key string) bool {
	_, ok := r.table[key]
	return ok
}

// Get returns the setting registered under key, or an error wrapping
// domain.ErrUnknownSettingKey. Unknown keys are always a hard error, never
// silently ignored.
func (r *Registry) Get(key string) (Setting, error) {
	setting, ok := r.table[key]
	if !ok {
		return Setting{}, fmt.Errorf("%q: %w", key, domain.ErrUnknownSettingKey)
	}
	return setting, nil
}

// Keys returns the setting keys in registration order.
func (r *Registry) Keys() []string {
	keys := make([]string, len(r.keys))
	copy(keys, r.keys)
	return keys
}

// WindowsCompat reports whether the registry validates path fragments under
// the stricter Windows filename rules.
func (r *Registry) WindowsCompat() bool {
	return r.windowsCompat
}
