package take

import (
	"context"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
)

// RunLive runs the Bubble Tea UI until the learner quits and returns the
// final target.
func RunLive(ctx context.Context, in io.Reader, out io.Writer, target Target, opts Options) (Target, error) {
	program := tea.NewProgram(
		NewModel(target, opts),
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
	)
	final, err := program.Run()
	if err != nil {
		return target, fmt.Errorf("run terminal ui: %w", err)
	}
	model, ok := final.(Model)
	if !ok {
		return target, fmt.Errorf("unexpected model type %T", final)
	}
	return model.Session().Target, nil
}
