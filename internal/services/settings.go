package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"requisitionprint/internal/domain"
	"requisitionprint/internal/pagination"
)

type settingsService struct {
	store  domain.SettingsStore
	logger *slog.Logger
}

// NewSettingsService returns a SettingsService persisting through store.
// Store failures never fail a call: loads fall back to defaults and saves keep
// the in-memory value.
func NewSettingsService(store domain.SettingsStore, logger *slog.Logger) domain.SettingsService {
	return &settingsService{store: store, logger: logger}
}

func (s *settingsService) Load(ctx context.Context, owner string, totalItems int) domain.PaginationSettings {
	key := domain.SettingsKeyFor(owner)
	raw, err := s.store.Load(ctx, key)
	if err != nil {
		if !errors.Is(err, domain.ErrSettingsNotFound) {
			s.logger.WarnContext(ctx, "settings load failed, using defaults", "key", key, "err", err)
		}
		return pagination.DefaultSettings(totalItems)
	}
	var stored domain.PaginationSettings
	if err := json.Unmarshal(raw, &stored); err != nil {
		s.logger.WarnContext(ctx, "stored settings unreadable, using defaults", "key", key, "err", err)
		return pagination.DefaultSettings(totalItems)
	}
	return pagination.Normalize(&stored, totalItems)
}

func (s *settingsService) Save(ctx context.Context, owner string, totalItems int, in domain.PaginationSettings) (domain.PaginationSettings, bool) {
	saved := pagination.Normalize(&in, totalItems)
	key := domain.SettingsKeyFor(owner)
	if err := s.persist(ctx, key, saved); err != nil {
		s.logger.WarnContext(ctx, "settings not persisted", "key", key, "err", err)
		return saved, false
	}
	return saved, true
}

func (s *settingsService) persist(ctx context.Context, key string, v domain.PaginationSettings) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	if err := s.store.Save(ctx, key, raw); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}
