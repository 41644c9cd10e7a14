package domain

import (
	"context"
	"errors"
)

// SettingsKey is the fixed key under which pagination settings are persisted.
const SettingsKey = "requisitionPaginationSettings"

// AnonymousOwner namespaces settings when no authenticated user is present.
const AnonymousOwner = "anonymous"

// ErrSettingsNotFound is returned by a SettingsStore when no value exists for a key.
var ErrSettingsNotFound = errors.New("settings not found")

// PaginationSettings controls how requisition line items are split across pages.
// ItemsPerPage is only meaningful when AutoSize is false.
// swagger:model PaginationSettings
type PaginationSettings struct {
	ItemsPerPage int  `json:"itemsPerPage"`
	AutoSize     bool `json:"autoSize"`
}

// SettingsKeyFor returns the store key for the given owner's pagination settings.
func SettingsKeyFor(owner string) string {
	if owner == "" {
		owner = AnonymousOwner
	}
	return owner + ":" + SettingsKey
}

// SettingsStore is a durable key-value store for JSON-encoded settings.
// Load returns ErrSettingsNotFound when the key is absent.
type SettingsStore interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, value []byte) error
}

// SettingsService loads and saves an owner's pagination settings.
// Load falls back to defaults when nothing usable is stored. Save always
// returns the clamped in-memory settings; persisted reports whether the
// durable write succeeded.
type SettingsService interface {
	Load(ctx context.Context, owner string, totalItems int) PaginationSettings
	Save(ctx context.Context, owner string, totalItems int, s PaginationSettings) (saved PaginationSettings, persisted bool)
}
