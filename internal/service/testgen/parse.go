package testgen

import (
	"fmt"
	"strings"

	"github.com/bytedance/sonic"
)

// StripFences removes a leading ```json or ``` marker and a trailing ```
// marker from completion text, then trims surrounding whitespace. Models are
// instructed to emit bare JSON but routinely fence it anyway. Idempotent on
// already-clean input.
func StripFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```json") {
		s = s[len("```json"):]
	} else if strings.HasPrefix(s, "```") {
		s = s[len("```"):]
	}
	if strings.HasSuffix(s, "```") {
		s = s[:len(s)-len("```")]
	}
	return strings.TrimSpace(s)
}

// ParseQuestions decodes cleaned completion text into the generated question
// list. JSON syntax failures surface as *ErrMalformedOutput; valid JSON that
// does not match the questions structure surfaces as *ErrShapeMismatch.
func ParseQuestions(clean string) ([]MCQQuestion, error) {
	var doc any
	if err := sonic.Unmarshal([]byte(clean), &doc); err != nil {
		return nil, &ErrMalformedOutput{Content: clean, Err: err}
	}
	if err := validateShape(doc, clean); err != nil {
		return nil, err
	}

	var payload generatedPayload
	if err := sonic.Unmarshal([]byte(clean), &payload); err != nil {
		return nil, &ErrShapeMismatch{Content: clean, Err: err}
	}

	// The schema pins option letters to A-D; still require the four letters
	// to be distinct and the correct answer to name one of them.
	for i, q := range payload.Questions {
		seen := make(map[string]bool, 4)
		answerFound := false
		for _, opt := range q.Options {
			if seen[opt.Option] {
				return nil, &ErrShapeMismatch{
					Content: clean,
					Err:     fmt.Errorf("question %d: duplicate option letter %q", i+1, opt.Option),
				}
			}
			seen[opt.Option] = true
			if opt.Option == q.CorrectAnswer {
				answerFound = true
			}
		}
		if !answerFound {
			return nil, &ErrShapeMismatch{
				Content: clean,
				Err:     fmt.Errorf("question %d: correct_answer %q not among options", i+1, q.CorrectAnswer),
			}
		}
	}
	return payload.Questions, nil
}
