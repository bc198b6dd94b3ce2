// Package testgen implements the diagnostic test generation pipeline:
// validate the request, build the prompt, call the completion API, clean and
// parse the model output, and assemble the typed response.
package testgen

// TestRequest is the inbound payload for POST /generate-test.
type TestRequest struct {
	CourseName       string `json:"course_name"`
	Subject          string `json:"subject"`
	TargetGradeLevel string `json:"target_grade_level"`
	NumberOfMCQ      int    `json:"number_of_mcq"`
}

// MCQOption is a single answer choice, keyed by letter A-D.
type MCQOption struct {
	Option string `json:"option"`
	Text   string `json:"text"`
}

// MCQQuestion is one generated multiple-choice question with exactly four
// options and one correct answer among them.
type MCQQuestion struct {
	QuestionNumber int         `json:"question_number"`
	Question       string      `json:"question"`
	Options        []MCQOption `json:"options"`
	CorrectAnswer  string      `json:"correct_answer"`
	Explanation    string      `json:"explanation"`
}

// TestResponse is the outbound payload for a successfully generated test.
//
// TotalQuestions echoes the requested number_of_mcq, not len(Questions); the
// model may under- or over-deliver and the count asked for is reported as-is.
type TestResponse struct {
	CourseName       string        `json:"course_name"`
	Subject          string        `json:"subject"`
	TargetGradeLevel string        `json:"target_grade_level"`
	TotalQuestions   int           `json:"total_questions"`
	Questions        []MCQQuestion `json:"questions"`
}

// generatedPayload is the JSON object the model is instructed to return.
type generatedPayload struct {
	Questions []MCQQuestion `json:"questions"`
}
