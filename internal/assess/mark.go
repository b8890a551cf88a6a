package assess

import "coursebook/internal/question"

// Mark describes how a renderer should present one option of a question.
type Mark int

const (
	// MarkNone is an option with no feedback: unanswered, or neither chosen nor correct.
	MarkNone Mark = iota
	// MarkChosenCorrect is the learner's choice and it was right.
	MarkChosenCorrect
	// MarkChosenWrong is the learner's choice and it was wrong.
	MarkChosenWrong
	// MarkRevealedCorrect is the right answer shown after a wrong choice.
	MarkRevealedCorrect
)

// String returns a short name for the mark, used as a CSS class suffix.
func (m Mark) String() string {
	switch m {
	case MarkChosenCorrect:
		return "chosen-correct"
	case MarkChosenWrong:
		return "chosen-wrong"
	case MarkRevealedCorrect:
		return "revealed-correct"
	default:
		return "none"
	}
}

// markFor computes the mark of option index for a question in a given state.
func markFor(q question.Question, selected int, answered bool, index int) Mark {
	if !answered {
		return MarkNone
	}
	switch {
	case index == selected && q.IsCorrect(index):
		return MarkChosenCorrect
	case index == selected:
		return MarkChosenWrong
	case q.IsCorrect(index):
		return MarkRevealedCorrect
	default:
		return MarkNone
	}
}
