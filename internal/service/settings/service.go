// Package settings owns the user-adjustable runtime configuration: loaded
// once at startup, read by every generation call, replaced only through an
// explicit validated save.
package settings

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/lexidrill/lexidrill-backend/internal/domain"
)

type store interface {
	Load() (*domain.Settings, error)
	Save(domain.Settings) error
}

// Service holds the current settings in memory and persists updates.
type Service struct {
	log   *slog.Logger
	store store

	mu      sync.RWMutex
	current domain.Settings
}

// NewService loads the persisted settings, falling back to defaults when
// no file exists yet. A corrupt or unreadable file is an error; we never
// silently discard a user's saved settings.
func NewService(logger *slog.Logger, st store, defaults domain.Settings) (*Service, error) {
	s := &Service{
		log:   logger.With("service", "settings"),
		store: st,
	}

	loaded, err := st.Load()
	if err != nil {
		return nil, fmt.Errorf("settings: load: %w", err)
	}
	if loaded == nil {
		s.current = defaults
		s.log.Info("no settings file, using defaults")
		return s, nil
	}

	s.current = *loaded
	s.log.Info("settings loaded", slog.String("provider", string(loaded.Provider)))
	return s, nil
}

// Current returns a copy of the active settings.
func (s *Service) Current() domain.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Update validates, persists, and swaps in the new settings. The in-memory
// copy changes only after the save succeeded.
func (s *Service) Update(set domain.Settings) (domain.Settings, error) {
	if err := set.Validate(); err != nil {
		return domain.Settings{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Save(set); err != nil {
		return domain.Settings{}, fmt.Errorf("settings: save: %w", err)
	}
	s.current = set

	s.log.Info("settings updated", slog.String("provider", string(set.Provider)))
	return set, nil
}
