package assess

import (
	"fmt"

	"coursebook/internal/question"
)

// Check is the state of one inline comprehension check. A Check returned by
// NewCheck is unanswered. Values are immutable; Select returns an updated copy.
type Check struct {
	question question.Question
	selected int
	answered bool
}

// NewCheck validates q and returns an unanswered check for it.
func NewCheck(q question.Question) (Check, error) {
	if err := q.Validate(); err != nil {
		return Check{}, fmt.Errorf("inline check: %w", err)
	}
	return Check{question: q}, nil
}

// Question returns the question behind the check.
func (c Check) Question() question.Question {
	return c.question
}

// Select records the learner's choice. The first valid selection wins: once
// answered, further calls return c unchanged. An index outside the options
// is rejected and leaves the check unanswered.
func (c Check) Select(index int) (Check, error) {
	if c.answered {
		return c, nil
	}
	if !c.question.HasOption(index) {
		return c, fmt.Errorf("%w: %d for question %q", ErrOptionOutOfRange, index, c.question.ID)
	}
	c.selected = index
	c.answered = true
	return c, nil
}

// IsAnswered reports whether a selection has been recorded.
func (c Check) IsAnswered() bool {
	return c.answered
}

// Selected returns the recorded option index, if any.
func (c Check) Selected() (int, bool) {
	return c.selected, c.answered
}

// IsCorrect reports whether the recorded selection is the correct option.
func (c Check) IsCorrect() bool {
	return c.answered && c.question.IsCorrect(c.selected)
}

// Mark returns the presentation of option index.
func (c Check) Mark(index int) Mark {
	return markFor(c.question, c.selected, c.answered, index)
}
