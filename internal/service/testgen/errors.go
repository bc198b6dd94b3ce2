package testgen

import (
	"fmt"
	"strings"
)

// The pipeline fails in one of a closed set of ways. Each gets its own typed
// error so the HTTP boundary can map class to status and detail without
// string matching.

// FieldError describes a single invalid request field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ErrValidation indicates the request was rejected before any external call.
type ErrValidation struct {
	Fields []FieldError
}

func (e *ErrValidation) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, fmt.Sprintf("%s: %s", f.Field, f.Message))
	}
	return "invalid request: " + strings.Join(msgs, "; ")
}

// ErrConfiguration indicates the service is missing required configuration,
// typically the OpenAI API key.
type ErrConfiguration struct {
	Err error
}

func (e *ErrConfiguration) Error() string { return fmt.Sprintf("configuration error: %v", e.Err) }

func (e *ErrConfiguration) Unwrap() error { return e.Err }

// ErrUpstream indicates the completion API call itself failed (network,
// auth, quota, malformed transport response). Not classified further and
// never retried.
type ErrUpstream struct {
	Err error
}

func (e *ErrUpstream) Error() string { return fmt.Sprintf("error generating test: %v", e.Err) }

func (e *ErrUpstream) Unwrap() error { return e.Err }

// ErrMalformedOutput indicates the completion text was not valid JSON after
// fence stripping.
type ErrMalformedOutput struct {
	Content string
	Err     error
}

func (e *ErrMalformedOutput) Error() string {
	return fmt.Sprintf("failed to parse model response: %v", e.Err)
}

func (e *ErrMalformedOutput) Unwrap() error { return e.Err }

// ErrShapeMismatch indicates syntactically valid JSON that does not match
// the expected questions structure.
type ErrShapeMismatch struct {
	Content string
	Err     error
}

func (e *ErrShapeMismatch) Error() string {
	return fmt.Sprintf("model response shape mismatch: %v", e.Err)
}

func (e *ErrShapeMismatch) Unwrap() error { return e.Err }
