// Package practice generates exercises (word pairs, cloze questions,
// grammar bundles, mistake explanations) by prompting the configured
// model and decoding its replies.
package practice

import (
	"context"
	"log/slog"
	"strings"

	"github.com/lexidrill/lexidrill-backend/internal/domain"
	"github.com/lexidrill/lexidrill-backend/internal/provider"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type generator interface {
	Generate(ctx context.Context, opts provider.CallOptions, prompt string, schema *provider.Schema) (string, error)
}

type settingsSource interface {
	Current() domain.Settings
}

// Service generates practice content through the dispatcher, using the
// current settings for credential, endpoint, and sizing.
type Service struct {
	log      *slog.Logger
	gen      generator
	settings settingsSource

	// gradeLevel is the configured fallback for grammar requests that
	// carry no grade level of their own.
	gradeLevel string
}

// NewService creates a practice Service. gradeLevel is the default
// student level for grammar bundles.
func NewService(logger *slog.Logger, gen generator, settings settingsSource, gradeLevel string) *Service {
	return &Service{
		log:        logger.With("service", "practice"),
		gen:        gen,
		settings:   settings,
		gradeLevel: gradeLevel,
	}
}

func (s *Service) callOptions(set domain.Settings) provider.CallOptions {
	return provider.CallOptions{
		Provider: set.Provider,
		APIKey:   set.APIKey,
		BaseURL:  set.BaseURL,
		Model:    set.Model,
	}
}

// SplitWords parses a comma/space-delimited word list into individual
// words, dropping empties.
func SplitWords(raw string) []string {
	return strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\n' || r == '\t' || r == ';' || r == '、'
	})
}
