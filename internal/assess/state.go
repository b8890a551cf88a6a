package assess

import "fmt"

// State is the selection map of one quiz mount: question id -> option index.
// The zero value is a quiz with nothing answered.
type State struct {
	selections map[string]int
}

// Select is the single action a learner can take: choose an option for a
// question.
type Select struct {
	QuestionID string
	Option     int
}

// Selection returns the option recorded for id, if any.
func (s State) Selection(id string) (int, bool) {
	option, ok := s.selections[id]
	return option, ok
}

// Answered returns the number of questions with a recorded selection.
func (s State) Answered() int {
	return len(s.selections)
}

// Selections returns a copy of the selection map.
func (s State) Selections() map[string]int {
	out := make(map[string]int, len(s.selections))
	for id, option := range s.selections {
		out[id] = option
	}
	return out
}

// with returns a copy of s that also records id -> option.
func (s State) with(id string, option int) State {
	next := make(map[string]int, len(s.selections)+1)
	for k, v := range s.selections {
		next[k] = v
	}
	next[id] = option
	return State{selections: next}
}

// Reduce applies action to state and returns the next state. It never fails
// and never mutates its input:
//   - a selection for an unknown question is ignored;
//   - a selection for an answered question is ignored (first answer wins);
//   - an option outside the question's range is recorded and scores as wrong.
func (q *Quiz) Reduce(state State, action Select) State {
	if _, ok := q.positions[action.QuestionID]; !ok {
		return state
	}
	if _, answered := state.selections[action.QuestionID]; answered {
		return state
	}
	return state.with(action.QuestionID, action.Option)
}

// Apply is Reduce for callers that want to surface input problems. The
// returned state always equals Reduce(state, action); the error reports an
// unknown question or an out-of-range option.
func (q *Quiz) Apply(state State, action Select) (State, error) {
	pos, ok := q.positions[action.QuestionID]
	if !ok {
		return state, fmt.Errorf("%w %q in quiz %q", ErrUnknownQuestion, action.QuestionID, q.title)
	}
	next := q.Reduce(state, action)
	if !q.questions[pos].HasOption(action.Option) {
		if _, answered := state.selections[action.QuestionID]; answered {
			return next, nil
		}
		return next, fmt.Errorf("%w: %d for question %q", ErrOptionOutOfRange, action.Option, action.QuestionID)
	}
	return next, nil
}

// Replay folds actions over a fresh state.
func (q *Quiz) Replay(actions ...Select) State {
	state := q.Start()
	for _, action := range actions {
		state = q.Reduce(state, action)
	}
	return state
}
