package assess

import (
	"fmt"
	"math"

	"coursebook/internal/question"
)

// Result is the aggregate score of a quiz state.
type Result struct {
	Correct  int
	Answered int
	Total    int
	Complete bool
}

// Percent returns the score as a rounded percentage of the total.
func (r Result) Percent() int {
	if r.Total == 0 {
		return 0
	}
	return int(math.Round(float64(r.Correct) * 100 / float64(r.Total)))
}

// String renders the score as "correct/total".
func (r Result) String() string {
	return fmt.Sprintf("%d/%d", r.Correct, r.Total)
}

// Result scores state. The score depends only on the selection map, so the
// order in which questions were answered does not matter.
func (q *Quiz) Result(state State) Result {
	result := Result{Total: len(q.questions)}
	for _, item := range q.questions {
		option, ok := state.selections[item.ID]
		if !ok {
			continue
		}
		result.Answered++
		if item.IsCorrect(option) {
			result.Correct++
		}
	}
	result.Complete = result.Answered == result.Total
	return result
}

// Complete reports whether every question has a recorded selection.
func (q *Quiz) Complete(state State) bool {
	return q.Result(state).Complete
}

// Outcome is the per-question view of a quiz state used by renderers.
type Outcome struct {
	Position int
	Question question.Question
	Answered bool
	Selected int
	Correct  bool
}

// Mark returns the presentation of option index.
func (o Outcome) Mark(index int) Mark {
	return markFor(o.Question, o.Selected, o.Answered, index)
}

// Outcome returns the view of question id in state.
func (q *Quiz) Outcome(state State, id string) (Outcome, bool) {
	pos, ok := q.positions[id]
	if !ok {
		return Outcome{}, false
	}
	return q.outcomeAt(state, pos), true
}

// Outcomes returns the view of every question in presentation order.
func (q *Quiz) Outcomes(state State) []Outcome {
	out := make([]Outcome, 0, len(q.questions))
	for i := range q.questions {
		out = append(out, q.outcomeAt(state, i))
	}
	return out
}

func (q *Quiz) outcomeAt(state State, pos int) Outcome {
	item := q.questions[pos]
	option, answered := state.selections[item.ID]
	return Outcome{
		Position: pos,
		Question: item,
		Answered: answered,
		Selected: option,
		Correct:  answered && item.IsCorrect(option),
	}
}
