package take

import (
	"coursebook/internal/assess"
	"coursebook/internal/question"
)

// Target is the assessment being taken: a whole quiz or one inline check.
// Select returns a new Target and never mutates the receiver.
type Target interface {
	Title() string
	Len() int
	Question(i int) question.Question
	Selection(i int) (int, bool)
	Mark(i, option int) assess.Mark
	Select(i, option int) Target
	Result() assess.Result
}

// QuizTarget takes a quiz through its reducer.
type QuizTarget struct {
	Quiz  *assess.Quiz
	State assess.State
}

// ForQuiz mounts a quiz with a fresh state.
func ForQuiz(quiz *assess.Quiz) QuizTarget {
	return QuizTarget{Quiz: quiz, State: quiz.Start()}
}

// Title returns the quiz title.
func (t QuizTarget) Title() string { return t.Quiz.Title() }

// Len returns the number of quiz questions.
func (t QuizTarget) Len() int { return t.Quiz.Len() }

// Question returns the i-th quiz question.
func (t QuizTarget) Question(i int) question.Question { return t.Quiz.At(i) }

// Selection returns the recorded option for question i.
func (t QuizTarget) Selection(i int) (int, bool) {
	return t.State.Selection(t.Quiz.At(i).ID)
}

// Mark reports how option of question i should be shown.
func (t QuizTarget) Mark(i, option int) assess.Mark {
	outcome, _ := t.Quiz.Outcome(t.State, t.Quiz.At(i).ID)
	return outcome.Mark(option)
}

// Select reduces a selection for question i into a new target.
func (t QuizTarget) Select(i, option int) Target {
	t.State = t.Quiz.Reduce(t.State, assess.Select{QuestionID: t.Quiz.At(i).ID, Option: option})
	return t
}

// Result scores the quiz state.
func (t QuizTarget) Result() assess.Result { return t.Quiz.Result(t.State) }

// CheckTarget takes a single inline check.
type CheckTarget struct {
	Check assess.Check
}

// ForCheck mounts an inline check.
func ForCheck(check assess.Check) CheckTarget {
	return CheckTarget{Check: check}
}

// Title labels the check.
func (t CheckTarget) Title() string { return "Quick check" }

// Len is always one.
func (t CheckTarget) Len() int { return 1 }

// Question returns the check question.
func (t CheckTarget) Question(int) question.Question { return t.Check.Question() }

// Selection returns the chosen option, if any.
func (t CheckTarget) Selection(int) (int, bool) { return t.Check.Selected() }

// Mark reports how option should be shown.
func (t CheckTarget) Mark(_, option int) assess.Mark { return t.Check.Mark(option) }

// Select ignores out-of-range options, leaving the check unanswered.
func (t CheckTarget) Select(_, option int) Target {
	next, err := t.Check.Select(option)
	if err != nil {
		return t
	}
	t.Check = next
	return t
}

// Result scores the check as a one-question quiz.
func (t CheckTarget) Result() assess.Result {
	result := assess.Result{Total: 1}
	if t.Check.IsAnswered() {
		result.Answered = 1
		result.Complete = true
	}
	if t.Check.IsCorrect() {
		result.Correct = 1
	}
	return result
}
