// Package dispatch is the request dispatcher: it resolves the effective
// credential, picks the wire convention for the call, and delegates to the
// matching adapter.
package dispatch

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/lexidrill/lexidrill-backend/internal/adapter/provider/gemini"
	"github.com/lexidrill/lexidrill-backend/internal/adapter/provider/openai"
	"github.com/lexidrill/lexidrill-backend/internal/domain"
	"github.com/lexidrill/lexidrill-backend/internal/provider"
)

// Factory builds a TextGenerator bound to one call's endpoint settings.
// Replaced in tests to count and capture calls.
type Factory func(baseURL, apiKey, model string, logger *slog.Logger) provider.TextGenerator

// Dispatcher routes generation calls to the OpenAI-compatible or native
// adapter. defaultKey is the process-level fallback credential; a key in
// the call options always wins.
type Dispatcher struct {
	log        *slog.Logger
	base       *slog.Logger
	defaultKey string
	openai     Factory
	gemini     Factory
}

// New creates a Dispatcher wired to the real adapters.
func New(defaultKey string, logger *slog.Logger) *Dispatcher {
	return &Dispatcher{
		log:        logger.With("adapter", "dispatch"),
		base:       logger,
		defaultKey: defaultKey,
		openai: func(baseURL, apiKey, model string, l *slog.Logger) provider.TextGenerator {
			return openai.NewClient(baseURL, apiKey, model, l)
		},
		gemini: func(baseURL, apiKey, model string, l *slog.Logger) provider.TextGenerator {
			return gemini.NewClient(baseURL, apiKey, model, l)
		},
	}
}

// NewWithFactories creates a Dispatcher with custom adapter factories
// (for testing).
func NewWithFactories(defaultKey string, openaiF, geminiF Factory, logger *slog.Logger) *Dispatcher {
	return &Dispatcher{
		log:        logger.With("adapter", "dispatch"),
		base:       logger,
		defaultKey: defaultKey,
		openai:     openaiF,
		gemini:     geminiF,
	}
}

// Generate resolves the credential and provider kind from opts, then
// delegates. With no credential anywhere it fails immediately with
// domain.ErrAPIKeyMissing; no network call is attempted.
func (d *Dispatcher) Generate(ctx context.Context, opts provider.CallOptions, prompt string, schema *provider.Schema) (string, error) {
	key := opts.APIKey
	if key == "" {
		key = d.defaultKey
	}
	if key == "" {
		return "", fmt.Errorf("dispatch: %w", domain.ErrAPIKeyMissing)
	}

	kind := provider.ResolveKind(opts.Provider, key)

	d.log.DebugContext(ctx, "dispatching generation call",
		slog.String("provider", string(kind)),
		slog.Bool("structured", schema != nil),
	)

	// Adapters tag their own logs; give them the untagged logger so the
	// adapter attribute appears once.
	switch kind {
	case domain.ProviderOpenAI:
		return d.openai(opts.BaseURL, key, opts.Model, d.base).Generate(ctx, prompt, schema)
	default:
		return d.gemini(opts.BaseURL, key, opts.Model, d.base).Generate(ctx, prompt, schema)
	}
}
