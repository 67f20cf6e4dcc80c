// Package settingsfile persists the settings blob as a JSON file on disk.
package settingsfile

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/lexidrill/lexidrill-backend/internal/domain"
)

// Store reads and writes one settings document at a fixed path.
type Store struct {
	path string
	log  *slog.Logger
}

// NewStore creates a Store for the given file path.
func NewStore(path string, logger *slog.Logger) *Store {
	return &Store{
		path: path,
		log:  logger.With("adapter", "settingsfile"),
	}
}

// Load reads the settings file. Returns nil, nil when no file exists yet.
func (s *Store) Load() (*domain.Settings, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("settingsfile: read %s: %w", s.path, err)
	}

	var set domain.Settings
	if err := json.Unmarshal(data, &set); err != nil {
		return nil, fmt.Errorf("settingsfile: decode %s: %w", s.path, err)
	}
	return &set, nil
}

// Save writes the settings document, creating parent directories as
// needed. The write goes through a temp file and rename so a crash cannot
// leave a half-written blob.
func (s *Store) Save(set domain.Settings) error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("settingsfile: mkdir %s: %w", dir, err)
		}
	}

	data, err := json.MarshalIndent(set, "", "  ")
	if err != nil {
		return fmt.Errorf("settingsfile: encode: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("settingsfile: write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("settingsfile: rename: %w", err)
	}

	s.log.Debug("settings saved", slog.String("path", s.path))
	return nil
}
