package take

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"coursebook/internal/assess"
	"coursebook/internal/question"
)

// sampleQuiz builds a quiz with four-option questions and the given answers.
func sampleQuiz(t *testing.T, correct ...int) *assess.Quiz {
	t.Helper()
	questions := make([]question.Question, 0, len(correct))
	for i, c := range correct {
		id := string(rune('a' + i))
		questions = append(questions, question.Question{
			ID:          id,
			Prompt:      "Question " + id,
			Options:     []string{"Alpha", "Bravo", "Charlie", "Delta"},
			Correct:     c,
			Explanation: "Explained " + id,
		})
	}
	quiz, err := assess.NewQuiz("Sample", questions)
	if err != nil {
		t.Fatalf("new quiz: %v", err)
	}
	return quiz
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// TestReduceCursorBounds verifies the cursor stays within the options.
func TestReduceCursorBounds(t *testing.T) {
	s := NewSession(ForQuiz(sampleQuiz(t, 1)))
	s = Reduce(s, Action{Kind: ActionCursorUp})
	if s.Cursor != 0 {
		t.Fatalf("expected cursor 0, got %d", s.Cursor)
	}
	for i := 0; i < 10; i++ {
		s = Reduce(s, Action{Kind: ActionCursorDown})
	}
	if s.Cursor != 3 {
		t.Fatalf("expected cursor 3, got %d", s.Cursor)
	}
}

// TestReduceFirstAnswerWins verifies later choices leave the answer unchanged.
func TestReduceFirstAnswerWins(t *testing.T) {
	s := NewSession(ForQuiz(sampleQuiz(t, 1, 0)))
	s = Reduce(s, Action{Kind: ActionChooseOption, Option: 2})
	s = Reduce(s, Action{Kind: ActionChooseOption, Option: 1})

	selected, ok := s.Target.Selection(0)
	if !ok || selected != 2 {
		t.Fatalf("expected first selection 2, got %d %v", selected, ok)
	}
	if s.Target.Mark(0, 2) != assess.MarkChosenWrong || s.Target.Mark(0, 1) != assess.MarkRevealedCorrect {
		t.Fatalf("unexpected marks")
	}
}

// TestReduceNavigationRestoresCursor verifies moving back shows the recorded answer.
func TestReduceNavigationRestoresCursor(t *testing.T) {
	s := NewSession(ForQuiz(sampleQuiz(t, 1, 0)))
	s = Reduce(s, Action{Kind: ActionChooseOption, Option: 3})
	s = Reduce(s, Action{Kind: ActionNext})
	if s.Current != 1 || s.Cursor != 0 {
		t.Fatalf("expected second question with cursor 0, got %d/%d", s.Current, s.Cursor)
	}
	s = Reduce(s, Action{Kind: ActionNext})
	if s.Current != 1 {
		t.Fatalf("next past the end should be ignored")
	}
	s = Reduce(s, Action{Kind: ActionPrev})
	if s.Current != 0 || s.Cursor != 3 {
		t.Fatalf("expected cursor on recorded answer, got %d/%d", s.Current, s.Cursor)
	}
}

// TestReduceScoresQuiz verifies the session result tracks the quiz reducer.
func TestReduceScoresQuiz(t *testing.T) {
	s := NewSession(ForQuiz(sampleQuiz(t, 1, 0, 2)))
	for i, option := range []int{1, 3, 2} {
		s = Reduce(s, Action{Kind: ActionChooseOption, Option: option})
		if i < 2 {
			s = Reduce(s, Action{Kind: ActionNext})
		}
	}
	result := s.Target.Result()
	if result.Correct != 2 || result.Total != 3 || !s.Done() {
		t.Fatalf("unexpected result %+v", result)
	}
	target, ok := s.Target.(QuizTarget)
	if !ok {
		t.Fatalf("expected QuizTarget, got %T", s.Target)
	}
	if target.State.Answered() != 3 {
		t.Fatalf("expected three recorded selections")
	}
}

// TestCheckTargetIgnoresOutOfRange verifies invalid options leave a check unanswered.
func TestCheckTargetIgnoresOutOfRange(t *testing.T) {
	check, err := assess.NewCheck(question.Question{
		ID: "c1", Prompt: "Pick", Options: []string{"A", "B"}, Correct: 1, Explanation: "B.",
	})
	if err != nil {
		t.Fatalf("new check: %v", err)
	}
	target := ForCheck(check).Select(0, 5)
	if target.Result().Answered != 0 {
		t.Fatalf("expected unanswered check")
	}
	target = target.Select(0, 1)
	if result := target.Result(); result.Correct != 1 || !result.Complete {
		t.Fatalf("unexpected result %+v", result)
	}
}

// TestActionForKey verifies key mapping including option labels.
func TestActionForKey(t *testing.T) {
	keys := defaultKeys()
	cases := []struct {
		name string
		msg  tea.KeyMsg
		want Action
	}{
		{name: "down arrow", msg: tea.KeyMsg{Type: tea.KeyDown}, want: Action{Kind: ActionCursorDown}},
		{name: "k", msg: runes("k"), want: Action{Kind: ActionCursorUp}},
		{name: "enter", msg: tea.KeyMsg{Type: tea.KeyEnter}, want: Action{Kind: ActionChooseCursor}},
		{name: "n", msg: runes("n"), want: Action{Kind: ActionNext}},
		{name: "q", msg: runes("q"), want: Action{Kind: ActionQuit}},
		{name: "letter", msg: runes("c"), want: Action{Kind: ActionChooseOption, Option: 2}},
		{name: "upper letter", msg: runes("B"), want: Action{Kind: ActionChooseOption, Option: 1}},
		{name: "digit", msg: runes("4"), want: Action{Kind: ActionChooseOption, Option: 3}},
		{name: "out of range", msg: runes("9"), want: Action{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := actionForKey(keys, tc.msg, 4); got != tc.want {
				t.Fatalf("expected %+v, got %+v", tc.want, got)
			}
		})
	}
}

// TestActionForKeyLongQuestion verifies option letters win over bindings
// once a question has that many options.
func TestActionForKeyLongQuestion(t *testing.T) {
	keys := defaultKeys()
	cases := []struct {
		name string
		msg  tea.KeyMsg
		want Action
	}{
		{name: "j", msg: runes("j"), want: Action{Kind: ActionChooseOption, Option: 9}},
		{name: "k", msg: runes("k"), want: Action{Kind: ActionChooseOption, Option: 10}},
		{name: "n", msg: runes("N"), want: Action{Kind: ActionChooseOption, Option: 13}},
		{name: "p", msg: runes("p"), want: Action{Kind: ActionChooseOption, Option: 15}},
		{name: "q", msg: runes("q"), want: Action{Kind: ActionChooseOption, Option: 16}},
		{name: "esc still quits", msg: tea.KeyMsg{Type: tea.KeyEsc}, want: Action{Kind: ActionQuit}},
		{name: "arrow still moves", msg: tea.KeyMsg{Type: tea.KeyUp}, want: Action{Kind: ActionCursorUp}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := actionForKey(keys, tc.msg, 17); got != tc.want {
				t.Fatalf("expected %+v, got %+v", tc.want, got)
			}
		})
	}
}
