package llmparse

import (
	"errors"
	"strings"
	"testing"

	"github.com/lexidrill/lexidrill-backend/internal/domain"
)

func TestStripCodeFence(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"fenced with tag", "```json\n[{\"en\":\"cat\"}]\n```", `[{"en":"cat"}]`},
		{"fenced without tag", "```\n{}\n```", "{}"},
		{"bare json untouched", `[{"en":"cat"}]`, `[{"en":"cat"}]`},
		{"surrounding whitespace", "  \n{}\n  ", "{}"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripCodeFence(tt.in); got != tt.want {
				t.Errorf("StripCodeFence(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestWordPairs_Fenced(t *testing.T) {
	raw := "```json\n[{\"en\":\"cat\",\"cn\":\"猫\"}]\n```"
	pairs, err := WordPairs(raw, []string{"cat"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pairs) != 1 {
		t.Fatalf("len(pairs) = %d, want 1", len(pairs))
	}
	if pairs[0].En != "cat" || pairs[0].Cn != "猫" {
		t.Errorf("pairs[0] = %+v, want en=cat cn=猫", pairs[0])
	}
	if pairs[0].ID != "" {
		t.Errorf("ID = %q, want empty (caller synthesizes ids)", pairs[0].ID)
	}
}

func TestWordPairs_BareJSONEqualsFenced(t *testing.T) {
	fenced, err := WordPairs("```json\n[{\"en\":\"cat\",\"cn\":\"猫\"}]\n```", nil)
	if err != nil {
		t.Fatalf("fenced: unexpected error: %v", err)
	}
	bare, err := WordPairs(`[{"en":"cat","cn":"猫"}]`, nil)
	if err != nil {
		t.Fatalf("bare: unexpected error: %v", err)
	}
	if len(fenced) != len(bare) || fenced[0] != bare[0] {
		t.Errorf("fenced %+v and bare %+v should decode identically", fenced, bare)
	}
}

func TestWordPairs_TruncatedJSON(t *testing.T) {
	_, err := WordPairs(`[{"en":"cat","cn":"猫"`, nil)
	if !errors.Is(err, domain.ErrModelOutput) {
		t.Fatalf("error = %v, want ErrModelOutput", err)
	}
}

func TestWordPairs_CountMismatch(t *testing.T) {
	raw := `[{"en":"cat","cn":"猫"}]`
	_, err := WordPairs(raw, []string{"cat", "dog"})
	if !errors.Is(err, domain.ErrModelOutput) {
		t.Fatalf("error = %v, want ErrModelOutput for pair/word count mismatch", err)
	}
	if !strings.Contains(err.Error(), "2 words") {
		t.Errorf("error = %q, want it to name the expected count", err)
	}
}

func TestWordPairs_EmptySide(t *testing.T) {
	_, err := WordPairs(`[{"en":"cat","cn":""}]`, nil)
	if !errors.Is(err, domain.ErrModelOutput) {
		t.Fatalf("error = %v, want ErrModelOutput for empty translation", err)
	}
}

func TestContextQuestions_Valid(t *testing.T) {
	raw := `[
		{"sentence":"The dog began to ____ loudly.","answer":"bark"},
		{"sentence":"She will ____ the letter tomorrow.","answer":"send"}
	]`
	questions, err := ContextQuestions(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(questions) != 2 {
		t.Fatalf("len(questions) = %d, want 2", len(questions))
	}
	if questions[0].Answer != "bark" {
		t.Errorf("questions[0].Answer = %q, want bark", questions[0].Answer)
	}
}

func TestContextQuestions_MissingBlank(t *testing.T) {
	raw := `[{"sentence":"The dog barked loudly.","answer":"bark"}]`
	_, err := ContextQuestions(raw)
	if !errors.Is(err, domain.ErrModelOutput) {
		t.Fatalf("error = %v, want ErrModelOutput for missing blank marker", err)
	}
}

func TestContextQuestions_MultiTokenAnswer(t *testing.T) {
	raw := `[{"sentence":"He ____ all night.","answer":"was dancing"}]`
	_, err := ContextQuestions(raw)
	if !errors.Is(err, domain.ErrModelOutput) {
		t.Fatalf("error = %v, want ErrModelOutput for multi-token answer", err)
	}
}

const validBundle = `{
	"explanation": {
		"title": "Present Perfect",
		"usage": "Connects a past event to the present.",
		"examples": ["I have seen that film.", "She has lived here for years."],
		"comparisons": "Unlike the past simple, the moment is unspecified."
	},
	"fillQuestions": [
		{"sentence":"She ____ here since 2019.","hint":"live","answer":"lived"}
	],
	"choiceQuestions": [
		{"sentence":"I ____ that film already.","options":["saw","have seen","see"],"answer":"have seen"}
	]
}`

func TestGrammarBundle_Valid(t *testing.T) {
	bundle, err := GrammarBundle("```json\n" + validBundle + "\n```")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if bundle.Explanation.Title != "Present Perfect" {
		t.Errorf("Title = %q", bundle.Explanation.Title)
	}
	if len(bundle.Explanation.Examples) != 2 {
		t.Errorf("len(Examples) = %d, want 2", len(bundle.Explanation.Examples))
	}
	if len(bundle.FillQuestions) != 1 || len(bundle.ChoiceQuestions) != 1 {
		t.Errorf("question counts = %d/%d, want 1/1", len(bundle.FillQuestions), len(bundle.ChoiceQuestions))
	}
}

func TestGrammarBundle_AnswerNotInOptions(t *testing.T) {
	raw := strings.Replace(validBundle, `"answer":"have seen"`, `"answer":"had seen"`, 1)
	_, err := GrammarBundle(raw)
	if !errors.Is(err, domain.ErrModelOutput) {
		t.Fatalf("error = %v, want ErrModelOutput for answer outside options", err)
	}
}

func TestGrammarBundle_NoQuestions(t *testing.T) {
	raw := `{"explanation":{"title":"x","usage":"y","examples":[],"comparisons":""}}`
	_, err := GrammarBundle(raw)
	if !errors.Is(err, domain.ErrModelOutput) {
		t.Fatalf("error = %v, want ErrModelOutput for missing questions", err)
	}
}
