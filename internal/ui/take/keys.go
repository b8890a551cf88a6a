package take

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"coursebook/internal/question"
)

// keyMap holds the bindings shown in the help footer.
type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Choose key.Binding
	Next   key.Binding
	Prev   key.Binding
	Quit   key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Choose: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "answer")),
		Next:   key.NewBinding(key.WithKeys("n", "right", "tab"), key.WithHelp("n", "next")),
		Prev:   key.NewBinding(key.WithKeys("p", "left", "shift+tab"), key.WithHelp("p", "previous")),
		Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Choose, k.Next, k.Prev, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// actionForKey maps a key press to an action. A single key that names an
// option, such as "b" or "2", chooses it ahead of any binding, so on long
// questions "q" picks option Q and quitting needs esc or ctrl+c.
func actionForKey(k keyMap, msg tea.KeyMsg, optionCount int) Action {
	if msg.Type == tea.KeyRunes && len(msg.Runes) == 1 {
		if option, err := question.ParseChoice(string(msg.Runes), optionCount); err == nil {
			return Action{Kind: ActionChooseOption, Option: option}
		}
	}
	switch {
	case key.Matches(msg, k.Quit):
		return Action{Kind: ActionQuit}
	case key.Matches(msg, k.Up):
		return Action{Kind: ActionCursorUp}
	case key.Matches(msg, k.Down):
		return Action{Kind: ActionCursorDown}
	case key.Matches(msg, k.Choose):
		return Action{Kind: ActionChooseCursor}
	case key.Matches(msg, k.Next):
		return Action{Kind: ActionNext}
	case key.Matches(msg, k.Prev):
		return Action{Kind: ActionPrev}
	}
	return Action{}
}
