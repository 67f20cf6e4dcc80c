// Package provider defines the capability interface text-generation
// adapters implement, plus the shared request types.
package provider

import (
	"context"
	"strings"

	"github.com/lexidrill/lexidrill-backend/internal/domain"
)

// TextGenerator is the single capability every model backend exposes:
// prompt in, raw text out. Schema is optional; when present the adapter
// asks the upstream for constrained JSON in whatever way its wire
// convention supports.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string, schema *Schema) (string, error)
}

// Schema describes the JSON shape a structured response must match.
// Definition uses the Gemini response-schema vocabulary (OBJECT / ARRAY /
// STRING type tags); the OpenAI-compatible path ignores the structure and
// only uses the schema's presence as a JSON-mode switch.
type Schema struct {
	Name       string
	Definition map[string]any
}

// CallOptions carries the per-call settings bundle: which wire convention
// to use and how to reach it. Empty fields fall back to adapter defaults.
type CallOptions struct {
	Provider domain.ProviderKind
	APIKey   string
	BaseURL  string
	Model    string
}

// openAIKeyPrefix is the conventional prefix of OpenAI-style secrets.
const openAIKeyPrefix = "sk-"

// ClassifyKey guesses the provider from the key's shape. It backs the
// "auto" provider kind only; an explicit kind always wins.
func ClassifyKey(key string) domain.ProviderKind {
	if strings.HasPrefix(key, openAIKeyPrefix) {
		return domain.ProviderOpenAI
	}
	return domain.ProviderGemini
}

// ResolveKind returns the effective provider for the given settings:
// the explicit kind when one is set, otherwise the key-shape guess.
func ResolveKind(kind domain.ProviderKind, key string) domain.ProviderKind {
	if kind == domain.ProviderOpenAI || kind == domain.ProviderGemini {
		return kind
	}
	return ClassifyKey(key)
}
