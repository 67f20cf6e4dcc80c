package practice

import (
	"context"
	"fmt"
	"strings"

	"github.com/lexidrill/lexidrill-backend/internal/domain"
)

// ExplainMistake asks the model why the correct answer fits where the
// learner's did not. The reply is free prose; emphasized spans are wrapped
// in double asterisks for the client to render as bold.
func (s *Service) ExplainMistake(ctx context.Context, sentence, correct, given string) (string, error) {
	if strings.TrimSpace(sentence) == "" {
		return "", domain.NewValidationError("sentence", "sentence is empty")
	}
	if strings.TrimSpace(correct) == "" {
		return "", domain.NewValidationError("correctAnswer", "correct answer is empty")
	}

	set := s.settings.Current()

	text, err := s.gen.Generate(ctx, s.callOptions(set), explainPrompt(sentence, correct, given), nil)
	if err != nil {
		return "", fmt.Errorf("practice: explain mistake: %w", err)
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return "", fmt.Errorf("practice: explain mistake: %w: empty reply", domain.ErrModelOutput)
	}
	return text, nil
}
