package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/timshannon/bolthold"

	"github.com/amaumene/trackarr/internal/domain"
)

// SettingRecord is the bolthold document for one persisted setting value.
// JSON holds the value exactly as it was written.
type SettingRecord struct {
	Key  string `boltholdKey:"Key"`
	JSON []byte
}

type settingRepository struct {
	store *bolthold.Store
}

// NewSettingRepository wraps a bolthold store as a setting repository. The
// repository takes ownership of the store handle; Close releases it.
func NewSettingRepository(store *bolthold.Store) domain.SettingRepository {
	return &settingRepository{store: store}
}

func (r *settingRepository) Read(ctx context.Context, key string) (json.RawMessage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var record SettingRecord
	err := r.store.Get(key, &record)
	if err == bolthold.ErrNotFound {
		return nil, domain.ErrValueNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("reading setting %q: %w", key, err)
	}
	return record.JSON, nil
}

func (r *settingRepository) Write(ctx context.Context, key string, value json.RawMessage) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	record := SettingRecord{Key: key, JSON: value}
	if err := r.store.Upsert(key, &record); err != nil {
		return fmt.Errorf("writing setting %q: %w", key, err)
	}
	return nil
}

func (r *settingRepository) Close() error {
	return r.store.Close()
}
