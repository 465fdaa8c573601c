package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/adrg/xdg"
	log "github.com/sirupsen/logrus"
	"github.com/timshannon/bolthold"

	"github.com/amaumene/trackarr/internal/domain"
	"github.com/amaumene/trackarr/internal/fsname"
	"github.com/amaumene/trackarr/internal/settings"
	"github.com/amaumene/trackarr/internal/storage"
)

const (
	appName           = "trackarr"
	dbFilePermissions = 0666

	sourceStore       = "store"
	sourceEnvironment = "environment"
)

// Config is the settings facade for one instance name. Construct through
// Instantiate; direct construction would bypass the one-store-per-instance
// guarantee.
type Config struct {
	name     string
	registry *settings.Registry
	repo     domain.SettingRepository
}

var (
	instancesMu sync.Mutex
	instances   = make(map[string]*Config)
)

// Instantiate returns the Config for instanceName, constructing it on first
// use. Later calls with the same name return the identical instance, so no
// two live instances ever share a store; the registry argument only matters
// on the constructing call.
//
// The instance name must itself be a legal filename because it becomes part
// of the store path, which is derived from the application name and the
// instance name under the user data directory.
func Instantiate(instanceName string, registry *settings.Registry) (*Config, error) {
	instancesMu.Lock()
	defer instancesMu.Unlock()

	if svc, ok := instances[instanceName]; ok {
		return svc, nil
	}

	if !fsname.IsValid(instanceName, fsname.DefaultRules(registry.WindowsCompat())) {
		return nil, fmt.Errorf("%q: %w", instanceName, domain.ErrInvalidInstanceName)
	}

	path, err := xdg.DataFile(filepath.Join(appName, instanceName+".db"))
	if err != nil {
		return nil, fmt.Errorf("deriving store path for %q: %w", instanceName, err)
	}

	store, err := bolthold.Open(path, dbFilePermissions, nil)
	if err != nil {
		return nil, fmt.Errorf("opening settings store: %w", err)
	}

	svc := &Config{
		name:     instanceName,
		registry: registry,
		repo:     storage.NewSettingRepository(store),
	}
	instances[instanceName] = svc

	log.WithFields(log.Fields{
		"instance": instanceName,
		"store":    path,
	}).Info("settings instance constructed")

	return svc, nil
}

// Get resolves the current value of key: the persisted value when one
// exists, otherwise the setting's environment variable parsed as JSON. The
// result always passes the setting's cast; a value that fails validation
// surfaces as an error, never masked by a default.
func (c *Config) Get(ctx context.Context, key string) (any, error) {
	setting, err := c.registry.Get(key)
	if err != nil {
		return nil, err
	}

	value, source, err := c.resolve(ctx, key, setting)
	if err != nil {
		return nil, err
	}

	cast, err := setting.Cast(value)
	if err != nil {
		log.WithFields(log.Fields{
			"instance": c.name,
			"setting":  key,
			"source":   source,
			"error":    err,
		}).Error("setting value failed validation")
		return nil, err
	}

	log.WithFields(log.Fields{
		"instance": c.name,
		"setting":  key,
		"source":   source,
		"value":    cast,
	}).Debug("setting read")

	return cast, nil
}

func (c *Config) resolve(ctx context.Context, key string, setting settings.Setting) (any, string, error) {
	raw, err := c.repo.Read(ctx, key)
	if errors.Is(err, domain.ErrValueNotFound) {
		return envDefault(setting.EnvVar), sourceEnvironment, nil
	}
	if err != nil {
		return nil, "", err
	}

	var value any
	if err := json.Unmarshal(raw, &value); err != nil {
		return nil, "", fmt.Errorf("decoding persisted value for %q: %w", key, err)
	}
	return value, sourceStore, nil
}

// envDefault parses the variable as JSON. Unset or unparsable text counts
// as JSON null.
func envDefault(envVar string) any {
	text, ok := os.LookupEnv(envVar)
	if !ok {
		return nil
	}

	var value any
	if err := json.Unmarshal([]byte(text), &value); err != nil {
		log.WithFields(log.Fields{
			"envVar": envVar,
			"error":  err,
		}).Warn("environment default is not valid json, treating as null")
		return nil
	}
	return value
}

// Set validates value against key's setting and persists it verbatim.
// Nothing is written when validation fails.
func (c *Config) Set(ctx context.Context, key string, value any) error {
	setting, err := c.registry.Get(key)
	if err != nil {
		return err
	}

	if _, err := setting.Cast(value); err != nil {
		log.WithFields(log.Fields{
			"instance": c.name,
			"setting":  key,
			"error":    err,
		}).Error("rejected setting write")
		return err
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encoding value for %q: %w", key, err)
	}

	if err := c.repo.Write(ctx, key, raw); err != nil {
		return err
	}

	log.WithFields(log.Fields{
		"instance": c.name,
		"setting":  key,
		"value":    value,
	}).Debug("setting written")

	return nil
}

// Name returns the instance name the facade was constructed for.
func (c *Config) Name() string {
	return c.name
}

// Keys returns the registry's setting keys in registration order.
func (c *Config) Keys() []string {
	return c.registry.Keys()
}

// Has reports whether key names a registered setting.
func (c *Config) Has(key string) bool {
	return c.registry.Has(key)
}

// Close releases the instance's store handle. Only process teardown calls
// this; instances have no destroyed state observable by other callers.
func (c *Config) Close() error {
	return c.repo.Close()
}
