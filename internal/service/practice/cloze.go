package practice

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/lexidrill/lexidrill-backend/internal/domain"
	"github.com/lexidrill/lexidrill-backend/internal/llmparse"
)

// GenerateContextQuestions builds fill-in-the-blank sentences around the
// user's words. count <= 0 falls back to the settings default. The
// settings inflection toggle controls whether inflected forms of list
// words may appear as answers.
func (s *Service) GenerateContextQuestions(ctx context.Context, rawList string, count int) ([]domain.ContextQuestion, error) {
	words := SplitWords(rawList)
	if len(words) == 0 {
		return nil, domain.NewValidationError("words", "word list is empty")
	}

	set := s.settings.Current()
	if count <= 0 {
		count = set.ContextCount
	}

	prompt := contextPrompt(words, count, set.AllowInflections)

	raw, err := s.gen.Generate(ctx, s.callOptions(set), prompt, contextQuestionSchema)
	if err != nil {
		return nil, fmt.Errorf("practice: context questions: %w", err)
	}

	questions, err := llmparse.ContextQuestions(raw)
	if err != nil {
		return nil, fmt.Errorf("practice: context questions: %w", err)
	}

	s.log.InfoContext(ctx, "generated context questions",
		slog.Int("count", len(questions)),
		slog.Bool("allow_inflections", set.AllowInflections),
	)
	return questions, nil
}
