package assess

import (
	"errors"
	"math/rand"
	"testing"

	"coursebook/internal/question"
)

// TestQuizScoreWithWrongAnswer verifies a partially correct run completes with the right score.
func TestQuizScoreWithWrongAnswer(t *testing.T) {
	quiz := quizWith(t, 1, 0, 2)
	state := quiz.Start()
	state = quiz.Reduce(state, Select{QuestionID: "q1", Option: 1})
	if quiz.Complete(state) {
		t.Fatalf("expected quiz in progress")
	}
	state = quiz.Reduce(state, Select{QuestionID: "q2", Option: 3})
	state = quiz.Reduce(state, Select{QuestionID: "q3", Option: 2})

	result := quiz.Result(state)
	if result.Correct != 2 || result.Total != 3 {
		t.Fatalf("expected 2/3, got %s", result)
	}
	if !result.Complete {
		t.Fatalf("expected quiz complete")
	}
	if result.Percent() != 67 {
		t.Fatalf("expected 67%%, got %d", result.Percent())
	}
}

// TestQuizAllCorrect verifies a twelve question quiz answered correctly scores full marks.
func TestQuizAllCorrect(t *testing.T) {
	correct := []int{0, 1, 2, 3, 0, 1, 2, 3, 0, 1, 2, 3}
	quiz := quizWith(t, correct...)
	state := quiz.Start()
	for i, q := range quiz.Questions() {
		state = quiz.Reduce(state, Select{QuestionID: q.ID, Option: correct[i]})
	}
	result := quiz.Result(state)
	if result.String() != "12/12" || result.Percent() != 100 || !result.Complete {
		t.Fatalf("expected 12/12 complete, got %+v", result)
	}
}

// TestQuizFirstAnswerWins verifies re-selection leaves the prior answer unchanged.
func TestQuizFirstAnswerWins(t *testing.T) {
	quiz := quizWith(t, 1)
	state := quiz.Reduce(quiz.Start(), Select{QuestionID: "q1", Option: 0})
	again := quiz.Reduce(state, Select{QuestionID: "q1", Option: 1})
	option, ok := again.Selection("q1")
	if !ok || option != 0 {
		t.Fatalf("expected selection 0 to stick, got %d", option)
	}
	if quiz.Result(again).Correct != 0 {
		t.Fatalf("expected score to stay 0")
	}
}

// TestQuizReduceDoesNotMutateInput verifies states are values.
func TestQuizReduceDoesNotMutateInput(t *testing.T) {
	quiz := quizWith(t, 1, 1)
	first := quiz.Reduce(quiz.Start(), Select{QuestionID: "q1", Option: 1})
	_ = quiz.Reduce(first, Select{QuestionID: "q2", Option: 1})
	if first.Answered() != 1 {
		t.Fatalf("expected earlier state to keep one answer, got %d", first.Answered())
	}
	if quiz.Start().Answered() != 0 {
		t.Fatalf("expected fresh mount to be empty")
	}
}

// TestQuizOrderIndependence verifies answering order does not change the score.
func TestQuizOrderIndependence(t *testing.T) {
	quiz := quizWith(t, 0, 1, 2, 3, 0, 1, 2, 3)
	answers := []int{0, 2, 2, 3, 1, 1, 0, 3}
	actions := make([]Select, 0, len(answers))
	for i, q := range quiz.Questions() {
		actions = append(actions, Select{QuestionID: q.ID, Option: answers[i]})
	}
	want := quiz.Result(quiz.Replay(actions...))

	rng := rand.New(rand.NewSource(42))
	for round := 0; round < 50; round++ {
		shuffled := append([]Select(nil), actions...)
		rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })
		if got := quiz.Result(quiz.Replay(shuffled...)); got != want {
			t.Fatalf("round %d: expected %+v, got %+v", round, want, got)
		}
	}
}

// TestQuizUnknownQuestion verifies unknown ids are ignored by Reduce and reported by Apply.
func TestQuizUnknownQuestion(t *testing.T) {
	quiz := quizWith(t, 1)
	state := quiz.Reduce(quiz.Start(), Select{QuestionID: "nope", Option: 1})
	if state.Answered() != 0 {
		t.Fatalf("expected unknown id to be ignored")
	}
	if _, err := quiz.Apply(state, Select{QuestionID: "nope", Option: 1}); !errors.Is(err, ErrUnknownQuestion) {
		t.Fatalf("expected unknown question error, got %v", err)
	}
}

// TestQuizApplyOutOfRange verifies out-of-range options are recorded as wrong answers.
func TestQuizApplyOutOfRange(t *testing.T) {
	quiz := quizWith(t, 1)
	state, err := quiz.Apply(quiz.Start(), Select{QuestionID: "q1", Option: 7})
	if !errors.Is(err, ErrOptionOutOfRange) {
		t.Fatalf("expected out of range error, got %v", err)
	}
	result := quiz.Result(state)
	if !result.Complete || result.Correct != 0 {
		t.Fatalf("expected answered wrong, got %+v", result)
	}
}

// TestQuizOutcomeMarks verifies per-question views for renderers.
func TestQuizOutcomeMarks(t *testing.T) {
	quiz := quizWith(t, 2, 0)
	state := quiz.Reduce(quiz.Start(), Select{QuestionID: "q1", Option: 0})
	outcomes := quiz.Outcomes(state)
	if len(outcomes) != 2 {
		t.Fatalf("expected 2 outcomes, got %d", len(outcomes))
	}
	first := outcomes[0]
	if !first.Answered || first.Correct {
		t.Fatalf("expected q1 answered wrong")
	}
	if first.Mark(0) != MarkChosenWrong || first.Mark(2) != MarkRevealedCorrect {
		t.Fatalf("unexpected marks: %s %s", first.Mark(0), first.Mark(2))
	}
	if outcomes[1].Answered || outcomes[1].Mark(0) != MarkNone {
		t.Fatalf("expected q2 untouched")
	}
}

// TestNewQuizValidation verifies construction-time errors.
func TestNewQuizValidation(t *testing.T) {
	if _, err := NewQuiz("", []question.Question{sample("a", 0)}); !errors.Is(err, ErrNoTitle) {
		t.Fatalf("expected no title error, got %v", err)
	}
	if _, err := NewQuiz("Empty", nil); !errors.Is(err, ErrNoQuestions) {
		t.Fatalf("expected no questions error, got %v", err)
	}
	if _, err := NewQuiz("Dup", []question.Question{sample("a", 0), sample("a", 1)}); !errors.Is(err, ErrDuplicateID) {
		t.Fatalf("expected duplicate id error, got %v", err)
	}
	if _, err := NewQuiz("Bad", []question.Question{sample("a", 0), sample("b", 4)}); !errors.Is(err, question.ErrInvalidQuestion) {
		t.Fatalf("expected invalid question error, got %v", err)
	}
}

// TestNewQuizCopiesInput verifies later edits to the caller's slice do not leak in.
func TestNewQuizCopiesInput(t *testing.T) {
	questions := []question.Question{sample("a", 0)}
	quiz, err := NewQuiz("Copy", questions)
	if err != nil {
		t.Fatalf("new quiz: %v", err)
	}
	questions[0].Options[0] = "changed"
	questions[0].Correct = 3
	if quiz.At(0).Options[0] != "A" || quiz.At(0).Correct != 0 {
		t.Fatalf("expected quiz to own its questions")
	}
}
