package practice

import (
	"fmt"
	"strings"

	"github.com/lexidrill/lexidrill-backend/internal/domain"
)

const wordPairPromptFmt = `Translate each of the following English words into Chinese.

Words: %s

Rules:
- Output a JSON array with exactly one object per input word, in the same order.
- Each object has the shape {"en": "<the English word>", "cn": "<the Chinese translation>"}.
- Give the most common everyday translation, one per word.`

const contextPromptFmt = `Create %d fill-in-the-blank practice sentences for an English learner using these words: %s

Rules:
- Each sentence uses exactly one word from the list as its answer.
- Replace the answer word in the sentence with the literal marker %s. The marker must appear exactly once per sentence.
- The answer must be a single word. Auxiliary verbs belong in the sentence, not in the answer.
- Sentences should be natural, everyday English with enough context to guess the word.
%s
- Output a JSON array of objects with the shape {"sentence": "...", "answer": "..."}.`

const inflectionAllowedRule = `- Inflected forms of the list words (plurals, past tense, -ing forms) may be used as answers.`
const inflectionForbiddenRule = `- Use each word exactly as it appears in the list; do not inflect it.`

const grammarPromptFmt = `You are an English grammar tutor. The student's level is %s. Teach the topic: %s

Produce a JSON object with three parts:

1. "explanation": an object with
   - "title": the topic name,
   - "usage": a clear prose explanation of when and how the structure is used,
   - "examples": 3 to 5 example sentences showing the structure,
   - "comparisons": prose contrasting it with structures learners confuse it with.

2. "fillQuestions": an array of %d objects {"sentence": "...", "hint": "...", "answer": "..."} where
   - the sentence contains the literal marker %s exactly once,
   - the hint is the base form of the target word,
   - the answer is the correctly inflected form, exactly one word. Auxiliary verbs belong in the sentence, not in the answer.

3. "choiceQuestions": an array of %d objects {"sentence": "...", "options": [...], "answer": "..."} where
   - the sentence contains the literal marker %s exactly once,
   - "options" lists 3 or 4 candidate fills, exactly one of which is correct,
   - "answer" is copied verbatim from the options.

All sentences must exercise the topic being taught and suit the student's level.`

const explainPromptFmt = `An English learner answered a fill-in-the-blank question incorrectly.

Sentence: %s
Correct answer: %s
The learner wrote: %s

In 2-4 sentences, explain why the correct answer fits and what the learner's answer gets wrong. Write for the learner directly. Wrap the key words or forms you want emphasized in double asterisks, like **this**. Output plain text, not JSON.`

func wordPairPrompt(words []string) string {
	return fmt.Sprintf(wordPairPromptFmt, strings.Join(words, ", "))
}

func contextPrompt(words []string, count int, allowInflections bool) string {
	rule := inflectionForbiddenRule
	if allowInflections {
		rule = inflectionAllowedRule
	}
	return fmt.Sprintf(contextPromptFmt, count, strings.Join(words, ", "), domain.BlankMarker, rule)
}

func grammarPrompt(topic, gradeLevel string, count int) string {
	return fmt.Sprintf(grammarPromptFmt, gradeLevel, topic, count, domain.BlankMarker, count, domain.BlankMarker)
}

func explainPrompt(sentence, correct, given string) string {
	return fmt.Sprintf(explainPromptFmt, sentence, correct, given)
}
