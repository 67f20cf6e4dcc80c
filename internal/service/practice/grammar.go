package practice

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/lexidrill/lexidrill-backend/internal/domain"
	"github.com/lexidrill/lexidrill-backend/internal/llmparse"
)

// GenerateGrammarBundle produces an explanation plus fill and choice
// questions for a grammar topic, pitched at the given grade level.
// count <= 0 falls back to the settings default; an empty gradeLevel
// falls back to the configured one.
func (s *Service) GenerateGrammarBundle(ctx context.Context, topic, gradeLevel string, count int) (*domain.GrammarBundle, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return nil, domain.NewValidationError("topic", "grammar topic is empty")
	}
	if gradeLevel = strings.TrimSpace(gradeLevel); gradeLevel == "" {
		gradeLevel = s.gradeLevel
	}

	set := s.settings.Current()
	if count <= 0 {
		count = set.GrammarCount
	}

	raw, err := s.gen.Generate(ctx, s.callOptions(set), grammarPrompt(topic, gradeLevel, count), grammarBundleSchema)
	if err != nil {
		return nil, fmt.Errorf("practice: grammar bundle: %w", err)
	}

	bundle, err := llmparse.GrammarBundle(raw)
	if err != nil {
		return nil, fmt.Errorf("practice: grammar bundle: %w", err)
	}

	s.log.InfoContext(ctx, "generated grammar bundle",
		slog.String("topic", topic),
		slog.Int("fill", len(bundle.FillQuestions)),
		slog.Int("choice", len(bundle.ChoiceQuestions)),
	)
	return bundle, nil
}
