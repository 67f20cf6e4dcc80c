// Package llmparse turns raw model replies into validated domain records.
// Replies may arrive wrapped in markdown code fences; on the native
// structured path the cleanup is a no-op. Every decode validates the shape
// invariants the prompt asked for and reports violations as
// domain.ErrModelOutput instead of letting bad shapes crash downstream.
package llmparse

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/lexidrill/lexidrill-backend/internal/domain"
)

// StripCodeFence removes all markdown fence markers (with or without a
// language tag) and trims surrounding whitespace. Input without fences
// passes through unchanged apart from the trim.
func StripCodeFence(raw string) string {
	raw = strings.ReplaceAll(raw, "```json", "")
	raw = strings.ReplaceAll(raw, "```", "")
	return strings.TrimSpace(raw)
}

func decodeErr(what string, err error) error {
	return fmt.Errorf("llmparse: decode %s: %w: %v", what, domain.ErrModelOutput, err)
}

func invalidErr(what string, i int, err error) error {
	return fmt.Errorf("llmparse: %s[%d]: %w: %v", what, i, domain.ErrModelOutput, err)
}

type wirePair struct {
	En string `json:"en"`
	Cn string `json:"cn"`
}

// WordPairs decodes a word-pair array. When words is non-empty the pair
// count must match it, since the prompt demands exactly one translation
// per input word. IDs are left empty; the caller synthesizes them.
func WordPairs(raw string, words []string) ([]domain.WordPair, error) {
	var pairs []wirePair
	if err := json.Unmarshal([]byte(StripCodeFence(raw)), &pairs); err != nil {
		return nil, decodeErr("word pairs", err)
	}
	if len(pairs) == 0 {
		return nil, fmt.Errorf("llmparse: word pairs: %w: empty list", domain.ErrModelOutput)
	}
	if len(words) > 0 && len(pairs) != len(words) {
		return nil, fmt.Errorf("llmparse: word pairs: %w: got %d pairs for %d words",
			domain.ErrModelOutput, len(pairs), len(words))
	}

	out := make([]domain.WordPair, len(pairs))
	for i, p := range pairs {
		if strings.TrimSpace(p.En) == "" || strings.TrimSpace(p.Cn) == "" {
			return nil, invalidErr("word pairs", i, fmt.Errorf("empty side"))
		}
		out[i] = domain.WordPair{En: p.En, Cn: p.Cn}
	}
	return out, nil
}

// ContextQuestions decodes a cloze-question array and checks the
// single-blank and single-token invariants on every question.
func ContextQuestions(raw string) ([]domain.ContextQuestion, error) {
	var questions []domain.ContextQuestion
	if err := json.Unmarshal([]byte(StripCodeFence(raw)), &questions); err != nil {
		return nil, decodeErr("context questions", err)
	}
	if len(questions) == 0 {
		return nil, fmt.Errorf("llmparse: context questions: %w: empty list", domain.ErrModelOutput)
	}
	for i, q := range questions {
		if err := q.Validate(); err != nil {
			return nil, invalidErr("context questions", i, err)
		}
	}
	return questions, nil
}

// GrammarBundle decodes the explanation-plus-questions document produced
// for a grammar topic and validates each part.
func GrammarBundle(raw string) (*domain.GrammarBundle, error) {
	var bundle domain.GrammarBundle
	if err := json.Unmarshal([]byte(StripCodeFence(raw)), &bundle); err != nil {
		return nil, decodeErr("grammar bundle", err)
	}
	if err := bundle.Explanation.Validate(); err != nil {
		return nil, fmt.Errorf("llmparse: grammar explanation: %w: %v", domain.ErrModelOutput, err)
	}
	if len(bundle.FillQuestions) == 0 && len(bundle.ChoiceQuestions) == 0 {
		return nil, fmt.Errorf("llmparse: grammar bundle: %w: no questions", domain.ErrModelOutput)
	}
	for i, q := range bundle.FillQuestions {
		if err := q.Validate(); err != nil {
			return nil, invalidErr("fill questions", i, err)
		}
	}
	for i, q := range bundle.ChoiceQuestions {
		if err := q.Validate(); err != nil {
			return nil, invalidErr("choice questions", i, err)
		}
	}
	return &bundle, nil
}
