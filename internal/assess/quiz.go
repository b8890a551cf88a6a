package assess

import (
	"fmt"
	"strings"

	"coursebook/internal/question"
)

// Quiz is an ordered, validated list of questions graded as one assessment.
// A Quiz is read-only after NewQuiz and safe to share between goroutines.
type Quiz struct {
	title     string
	questions []question.Question
	positions map[string]int
}

// NewQuiz validates every question and returns a quiz presenting them in the
// given order.
func NewQuiz(title string, questions []question.Question) (*Quiz, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrNoTitle
	}
	if len(questions) == 0 {
		return nil, fmt.Errorf("quiz %q: %w", title, ErrNoQuestions)
	}
	positions := make(map[string]int, len(questions))
	owned := make([]question.Question, len(questions))
	for i, q := range questions {
		if err := q.Validate(); err != nil {
			return nil, fmt.Errorf("quiz %q: %w", title, err)
		}
		if _, exists := positions[q.ID]; exists {
			return nil, fmt.Errorf("quiz %q: %w %q", title, ErrDuplicateID, q.ID)
		}
		positions[q.ID] = i
		q.Options = append([]string(nil), q.Options...)
		owned[i] = q
	}
	return &Quiz{title: title, questions: owned, positions: positions}, nil
}

// Title returns the quiz title.
func (q *Quiz) Title() string {
	return q.title
}

// Len returns the number of questions.
func (q *Quiz) Len() int {
	return len(q.questions)
}

// At returns the question at position i.
func (q *Quiz) At(i int) question.Question {
	return q.questions[i]
}

// Questions returns the questions in presentation order.
func (q *Quiz) Questions() []question.Question {
	return append([]question.Question(nil), q.questions...)
}

// Position returns the presentation index of the question with id.
func (q *Quiz) Position(id string) (int, bool) {
	i, ok := q.positions[id]
	return i, ok
}

// Start returns the state of a freshly mounted quiz.
func (q *Quiz) Start() State {
	return State{}
}
