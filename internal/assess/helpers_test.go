package assess

import (
	"fmt"
	"testing"

	"coursebook/internal/question"
)

// sample builds a valid question with four options and the given correct index.
func sample(id string, correct int) question.Question {
	return question.Question{
		ID:          id,
		Prompt:      "Question " + id,
		Options:     []string{"A", "B", "C", "D"},
		Correct:     correct,
		Explanation: "Because " + id,
	}
}

// quizWith builds a quiz whose questions have the given correct indexes.
func quizWith(t *testing.T, correct ...int) *Quiz {
	t.Helper()
	questions := make([]question.Question, 0, len(correct))
	for i, c := range correct {
		questions = append(questions, sample(fmt.Sprintf("q%d", i+1), c))
	}
	quiz, err := NewQuiz("Sample quiz", questions)
	if err != nil {
		t.Fatalf("new quiz: %v", err)
	}
	return quiz
}
