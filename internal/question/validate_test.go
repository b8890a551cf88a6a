package question

import (
	"errors"
	"strings"
	"testing"
)

// TestQuestionValidate verifies structural rules name the offending id.
func TestQuestionValidate(t *testing.T) {
	valid := Question{
		ID:          "moet-1",
		Prompt:      "What does MOET stand for?",
		Options:     []string{"A", "B", "C", "D"},
		Correct:     2,
		Explanation: "Maintenance Operations Engineering Technician.",
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("expected valid question, got %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*Question)
	}{
		{name: "correct out of range", mutate: func(q *Question) { q.Correct = 4 }},
		{name: "negative correct", mutate: func(q *Question) { q.Correct = -1 }},
		{name: "single option", mutate: func(q *Question) { q.Options = []string{"only"}; q.Correct = 0 }},
		{name: "blank option", mutate: func(q *Question) { q.Options[1] = " " }},
		{name: "missing prompt", mutate: func(q *Question) { q.Prompt = "" }},
		{name: "missing explanation", mutate: func(q *Question) { q.Explanation = "" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			q := valid
			q.Options = append([]string(nil), valid.Options...)
			tc.mutate(&q)
			err := q.Validate()
			if !errors.Is(err, ErrInvalidQuestion) {
				t.Fatalf("expected ErrInvalidQuestion, got %v", err)
			}
			if !strings.Contains(err.Error(), `"moet-1"`) {
				t.Fatalf("expected error to name the question id, got %v", err)
			}
		})
	}
}
