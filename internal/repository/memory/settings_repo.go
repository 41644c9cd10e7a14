// Package memory is a process-local settings store for tests and single-node runs.
package memory

import (
	"context"
	"sync"

	"requisitionprint/internal/domain"
)

type settingsRepository struct {
	mu     sync.RWMutex
	values map[string][]byte
}

// NewSettingsRepository returns an empty in-memory domain.SettingsStore.
func NewSettingsRepository() domain.SettingsStore {
	return &settingsRepository{values: make(map[string][]byte)}
}

func (r *settingsRepository) Load(_ context.Context, key string) ([]byte, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.values[key]
	if !ok {
		return nil, domain.ErrSettingsNotFound
	}
	return append([]byte(nil), v...), nil
}

func (r *settingsRepository) Save(_ context.Context, key string, value []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.values[key] = append([]byte(nil), value...)
	return nil
}
