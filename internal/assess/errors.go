package assess

import "errors"

var (
	// ErrNoTitle is returned when a quiz is built without a title.
	ErrNoTitle = errors.New("quiz title is required")
	// ErrNoQuestions is returned when a quiz is built from an empty list.
	ErrNoQuestions = errors.New("quiz needs at least one question")
	// ErrDuplicateID is returned when two questions in one quiz share an id.
	ErrDuplicateID = errors.New("duplicate question id")
	// ErrUnknownQuestion is returned when a selection names no question of the quiz.
	ErrUnknownQuestion = errors.New("unknown question")
	// ErrOptionOutOfRange is returned when a selection addresses no option.
	ErrOptionOutOfRange = errors.New("option out of range")
)
