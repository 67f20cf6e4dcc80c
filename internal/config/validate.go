package config

import (
	"fmt"

	"github.com/lexidrill/lexidrill-backend/internal/domain"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if !domain.ProviderKind(c.LLM.Provider).Valid() {
		return fmt.Errorf("llm.provider must be auto, openai or gemini (got %q)", c.LLM.Provider)
	}
	if c.Practice.ContextCount <= 0 {
		return fmt.Errorf("practice.context_count must be > 0 (got %d)", c.Practice.ContextCount)
	}
	if c.Practice.GrammarCount <= 0 {
		return fmt.Errorf("practice.grammar_count must be > 0 (got %d)", c.Practice.GrammarCount)
	}
	if c.RateLimit.Enabled && c.RateLimit.PerMinute <= 0 {
		return fmt.Errorf("rate_limit.per_minute must be > 0 when enabled (got %d)", c.RateLimit.PerMinute)
	}
	if c.Settings.Path == "" {
		return fmt.Errorf("settings.path must not be empty")
	}
	return nil
}

// DefaultSettings derives the initial settings blob from the process
// configuration. Used when no settings file exists yet.
func (c *Config) DefaultSettings() domain.Settings {
	return domain.Settings{
		Provider:     domain.ProviderKind(c.LLM.Provider),
		BaseURL:      c.LLM.BaseURL,
		Model:        c.LLM.Model,
		Theme:        "light",
		Opacity:      1.0,
		ContextCount: c.Practice.ContextCount,
		GrammarCount: c.Practice.GrammarCount,
	}
}
