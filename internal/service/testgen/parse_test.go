package testgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripFences(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "json fence",
			in:   "```json\n{\"questions\":[]}\n```",
			want: `{"questions":[]}`,
		},
		{
			name: "bare fence",
			in:   "```\n{\"questions\":[]}\n```",
			want: `{"questions":[]}`,
		},
		{
			name: "no fence",
			in:   `{"questions":[]}`,
			want: `{"questions":[]}`,
		},
		{
			name: "surrounding whitespace",
			in:   "  \n{\"questions\":[]}\n  ",
			want: `{"questions":[]}`,
		},
		{
			name: "leading fence only",
			in:   "```json\n{\"questions\":[]}",
			want: `{"questions":[]}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripFences(tt.in))
		})
	}
}

func TestStripFences_Idempotent(t *testing.T) {
	in := "```json\n{\"questions\":[]}\n```"
	once := StripFences(in)
	assert.Equal(t, once, StripFences(once))
}

const validQuestionJSON = `{
  "questions": [
    {
      "question_number": 1,
      "question": "What is the mean of 2 and 4?",
      "options": [
        {"option": "A", "text": "2"},
        {"option": "B", "text": "3"},
        {"option": "C", "text": "4"},
        {"option": "D", "text": "6"}
      ],
      "correct_answer": "B",
      "explanation": "The mean is (2+4)/2 = 3."
    }
  ]
}`

func TestParseQuestions_HappyPath(t *testing.T) {
	questions, err := ParseQuestions(validQuestionJSON)
	require.NoError(t, err)
	require.Len(t, questions, 1)

	q := questions[0]
	assert.Equal(t, 1, q.QuestionNumber)
	assert.Equal(t, "B", q.CorrectAnswer)
	require.Len(t, q.Options, 4)
	assert.Equal(t, "A", q.Options[0].Option)
	assert.Equal(t, "D", q.Options[3].Option)
}

func TestParseQuestions_EmptyList(t *testing.T) {
	questions, err := ParseQuestions(`{"questions":[]}`)
	require.NoError(t, err)
	assert.Empty(t, questions)
}

func TestParseQuestions_NotJSON(t *testing.T) {
	_, err := ParseQuestions("Sorry, I can't help with that.")
	var malformed *ErrMalformedOutput
	require.ErrorAs(t, err, &malformed)
	assert.Contains(t, err.Error(), "failed to parse")
}

func TestParseQuestions_ShapeMismatch(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"missing questions key", `{"items":[]}`},
		{"questions not array", `{"questions":{}}`},
		{
			"missing explanation",
			`{"questions":[{"question_number":1,"question":"q","options":[
				{"option":"A","text":"a"},{"option":"B","text":"b"},
				{"option":"C","text":"c"},{"option":"D","text":"d"}],
				"correct_answer":"A"}]}`,
		},
		{
			"three options",
			`{"questions":[{"question_number":1,"question":"q","options":[
				{"option":"A","text":"a"},{"option":"B","text":"b"},
				{"option":"C","text":"c"}],
				"correct_answer":"A","explanation":"e"}]}`,
		},
		{
			"option letter out of range",
			`{"questions":[{"question_number":1,"question":"q","options":[
				{"option":"A","text":"a"},{"option":"B","text":"b"},
				{"option":"C","text":"c"},{"option":"E","text":"e"}],
				"correct_answer":"A","explanation":"e"}]}`,
		},
		{
			"question_number not integer",
			`{"questions":[{"question_number":"one","question":"q","options":[
				{"option":"A","text":"a"},{"option":"B","text":"b"},
				{"option":"C","text":"c"},{"option":"D","text":"d"}],
				"correct_answer":"A","explanation":"e"}]}`,
		},
		{
			"duplicate option letters",
			`{"questions":[{"question_number":1,"question":"q","options":[
				{"option":"A","text":"a"},{"option":"A","text":"b"},
				{"option":"C","text":"c"},{"option":"D","text":"d"}],
				"correct_answer":"A","explanation":"e"}]}`,
		},
		{
			"correct answer not among options",
			`{"questions":[{"question_number":1,"question":"q","options":[
				{"option":"A","text":"a"},{"option":"B","text":"b"},
				{"option":"C","text":"c"},{"option":"D","text":"d"}],
				"correct_answer":"E","explanation":"e"}]}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseQuestions(tt.in)
			var mismatch *ErrShapeMismatch
			require.ErrorAs(t, err, &mismatch, "want shape mismatch, got %v", err)
		})
	}
}
