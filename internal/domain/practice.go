package domain

import (
	"fmt"
	"strings"
)

// BlankMarker is the literal token generated sentences use to mark the
// omitted word. Every cloze sentence must contain it exactly once.
const BlankMarker = "____"

// WordPair is one source word with its translation. ID is synthesized on
// our side purely to give list rendering a stable key; it carries no
// semantic meaning and is not unique across regenerations.
type WordPair struct {
	ID string `json:"id"`
	En string `json:"en"`
	Cn string `json:"cn"`
}

// ContextQuestion is a fill-in-the-blank sentence built around one of the
// user's words.
type ContextQuestion struct {
	Sentence string `json:"sentence"`
	Answer   string `json:"answer"`
}

// GrammarFillQuestion is a cloze question where the learner must inflect
// the hinted base form to fit the sentence.
type GrammarFillQuestion struct {
	Sentence string `json:"sentence"`
	Hint     string `json:"hint"`
	Answer   string `json:"answer"`
}

// GrammarChoiceQuestion is a cloze question answered by picking one of the
// listed options. Answer is always a literal member of Options.
type GrammarChoiceQuestion struct {
	Sentence string   `json:"sentence"`
	Options  []string `json:"options"`
	Answer   string   `json:"answer"`
}

// GrammarExplanation is the prose part of a grammar bundle.
type GrammarExplanation struct {
	Title       string   `json:"title"`
	Usage       string   `json:"usage"`
	Examples    []string `json:"examples"`
	Comparisons string   `json:"comparisons"`
}

// GrammarBundle is everything one grammar-topic request produces.
type GrammarBundle struct {
	Explanation     GrammarExplanation      `json:"explanation"`
	FillQuestions   []GrammarFillQuestion   `json:"fillQuestions"`
	ChoiceQuestions []GrammarChoiceQuestion `json:"choiceQuestions"`
}

// IsSingleToken reports whether s is exactly one word (no internal
// whitespace after trimming). Fill answers must be single tokens.
func IsSingleToken(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	return !strings.ContainsAny(s, " \t\n")
}

func validateClozeSentence(sentence string) error {
	switch n := strings.Count(sentence, BlankMarker); {
	case n == 0:
		return fmt.Errorf("sentence has no blank marker")
	case n > 1:
		return fmt.Errorf("sentence has %d blank markers", n)
	}
	return nil
}

// Validate checks the single-blank and single-token invariants.
func (q ContextQuestion) Validate() error {
	if err := validateClozeSentence(q.Sentence); err != nil {
		return err
	}
	if !IsSingleToken(q.Answer) {
		return fmt.Errorf("answer %q is not a single token", q.Answer)
	}
	return nil
}

// Validate checks the single-blank and single-token invariants and that a
// hint (base form) is present.
func (q GrammarFillQuestion) Validate() error {
	if err := validateClozeSentence(q.Sentence); err != nil {
		return err
	}
	if strings.TrimSpace(q.Hint) == "" {
		return fmt.Errorf("missing hint")
	}
	if !IsSingleToken(q.Answer) {
		return fmt.Errorf("answer %q is not a single token", q.Answer)
	}
	return nil
}

// Validate checks the single-blank invariant, that at least two options
// exist, and that the answer is a literal member of the options.
func (q GrammarChoiceQuestion) Validate() error {
	if err := validateClozeSentence(q.Sentence); err != nil {
		return err
	}
	if len(q.Options) < 2 {
		return fmt.Errorf("need at least 2 options, got %d", len(q.Options))
	}
	for _, opt := range q.Options {
		if opt == q.Answer {
			return nil
		}
	}
	return fmt.Errorf("answer %q is not among the options", q.Answer)
}

// Validate checks that the explanation prose is present.
func (e GrammarExplanation) Validate() error {
	if strings.TrimSpace(e.Title) == "" {
		return fmt.Errorf("missing title")
	}
	if strings.TrimSpace(e.Usage) == "" {
		return fmt.Errorf("missing usage")
	}
	return nil
}
