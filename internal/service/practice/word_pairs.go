package practice

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/lexidrill/lexidrill-backend/internal/domain"
	"github.com/lexidrill/lexidrill-backend/internal/llmparse"
)

// GenerateWordPairs translates a comma/space-delimited word list, one pair
// per input word. IDs are synthesized from position and timestamp; they
// exist only to give list rendering a stable key.
func (s *Service) GenerateWordPairs(ctx context.Context, rawList string) ([]domain.WordPair, error) {
	words := SplitWords(rawList)
	if len(words) == 0 {
		return nil, domain.NewValidationError("words", "word list is empty")
	}

	set := s.settings.Current()

	raw, err := s.gen.Generate(ctx, s.callOptions(set), wordPairPrompt(words), wordPairSchema)
	if err != nil {
		return nil, fmt.Errorf("practice: word pairs: %w", err)
	}

	pairs, err := llmparse.WordPairs(raw, words)
	if err != nil {
		return nil, fmt.Errorf("practice: word pairs: %w", err)
	}

	now := time.Now().UnixMilli()
	for i := range pairs {
		pairs[i].ID = fmt.Sprintf("%d-%d", i, now)
	}

	s.log.InfoContext(ctx, "generated word pairs", slog.Int("count", len(pairs)))
	return pairs, nil
}
