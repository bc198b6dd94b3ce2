package testgen

import "strings"

const (
	minQuestions = 1
	maxQuestions = 50
)

// Validate checks a TestRequest and returns an *ErrValidation naming every
// offending field, or nil. Text fields must be non-empty; number_of_mcq must
// be in [1, 50]. Runs before the completion API is ever touched.
func (r TestRequest) Validate() error {
	var fields []FieldError

	if strings.TrimSpace(r.CourseName) == "" {
		fields = append(fields, FieldError{Field: "course_name", Message: "must not be empty"})
	}
	if strings.TrimSpace(r.Subject) == "" {
		fields = append(fields, FieldError{Field: "subject", Message: "must not be empty"})
	}
	if strings.TrimSpace(r.TargetGradeLevel) == "" {
		fields = append(fields, FieldError{Field: "target_grade_level", Message: "must not be empty"})
	}
	if r.NumberOfMCQ < minQuestions || r.NumberOfMCQ > maxQuestions {
		fields = append(fields, FieldError{Field: "number_of_mcq", Message: "must be between 1 and 50"})
	}

	if len(fields) > 0 {
		return &ErrValidation{Fields: fields}
	}
	return nil
}
