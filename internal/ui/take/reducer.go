package take

// Action is a learner input after key mapping.
type Action struct {
	Kind   ActionKind
	Option int
}

// ActionKind enumerates learner inputs.
type ActionKind int

const (
	ActionNone ActionKind = iota
	ActionCursorUp
	ActionCursorDown
	ActionChooseCursor
	ActionChooseOption
	ActionNext
	ActionPrev
	ActionQuit
)

// Session is the terminal UI state for one take.
type Session struct {
	Target   Target
	Current  int
	Cursor   int
	Quitting bool
}

// NewSession starts a session on the first question.
func NewSession(target Target) Session {
	return Session{Target: target}
}

// Reduce applies an action to the session.
func Reduce(s Session, action Action) Session {
	if s.Quitting || s.Target == nil || s.Target.Len() == 0 {
		return s
	}
	options := len(s.Target.Question(s.Current).Options)
	switch action.Kind {
	case ActionCursorUp:
		if s.Cursor > 0 {
			s.Cursor--
		}
	case ActionCursorDown:
		if s.Cursor < options-1 {
			s.Cursor++
		}
	case ActionChooseCursor:
		s = choose(s, s.Cursor)
	case ActionChooseOption:
		if action.Option >= 0 && action.Option < options {
			s.Cursor = action.Option
			s = choose(s, action.Option)
		}
	case ActionNext:
		s = moveTo(s, s.Current+1)
	case ActionPrev:
		s = moveTo(s, s.Current-1)
	case ActionQuit:
		s.Quitting = true
	}
	return s
}

// choose records option for the current question. The target enforces first
// answer wins.
func choose(s Session, option int) Session {
	s.Target = s.Target.Select(s.Current, option)
	return s
}

// moveTo changes question and places the cursor on the recorded selection.
func moveTo(s Session, index int) Session {
	if index < 0 || index >= s.Target.Len() {
		return s
	}
	s.Current = index
	s.Cursor = 0
	if selected, ok := s.Target.Selection(index); ok && selected >= 0 && selected < len(s.Target.Question(index).Options) {
		s.Cursor = selected
	}
	return s
}

// Done reports whether every question has an answer.
func (s Session) Done() bool {
	return s.Target != nil && s.Target.Result().Complete
}
