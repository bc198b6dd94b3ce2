// Package prompt builds the instruction strings sent to the completion API.
// Everything here is pure string construction; no state, no randomness.
package prompt

import (
	"fmt"
	"strings"
)

// System is the fixed system instruction for diagnostic test generation.
// The model must stay in the assessment-author persona and answer with JSON
// only; the response cleaner still tolerates fenced output because models do
// not always comply.
const System = "You are an expert educational assessment creator. Always respond with valid JSON only."

// TestSpec carries the course metadata the user prompt is built from.
type TestSpec struct {
	CourseName       string
	Subject          string
	TargetGradeLevel string
	NumberOfMCQ      int
}

// BuildTestPrompt maps a TestSpec to the user instruction requesting exactly
// NumberOfMCQ four-option multiple-choice questions on prerequisite knowledge
// for the course, with the mandated JSON output shape.
func BuildTestPrompt(spec TestSpec) string {
	var b strings.Builder

	b.WriteString("You are an expert educational assessment creator. Create a diagnostic test with the following specifications:\n\n")
	fmt.Fprintf(&b, "Course Name: %s\n", spec.CourseName)
	fmt.Fprintf(&b, "Subject: %s\n", spec.Subject)
	fmt.Fprintf(&b, "Target Grade/Level: %s\n", spec.TargetGradeLevel)
	fmt.Fprintf(&b, "Number of MCQ Questions: %d\n\n", spec.NumberOfMCQ)

	fmt.Fprintf(&b, "Generate %d multiple-choice questions that assess prerequisite knowledge for this course.\n", spec.NumberOfMCQ)
	b.WriteString(`Each question should:
1. Test fundamental concepts relevant to the course
2. Have 4 options (A, B, C, D)
3. Have only one correct answer
4. Include a brief explanation of the correct answer

Return the response in the following JSON format:
{
  "questions": [
    {
      "question_number": 1,
      "question": "Question text here",
      "options": [
        {"option": "A", "text": "Option A text"},
        {"option": "B", "text": "Option B text"},
        {"option": "C", "text": "Option C text"},
        {"option": "D", "text": "Option D text"}
      ],
      "correct_answer": "A",
      "explanation": "Explanation of why this is correct"
    }
  ]
}

Ensure the JSON is valid and properly formatted.
`)
	return b.String()
}
