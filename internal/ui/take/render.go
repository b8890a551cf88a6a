package take

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"coursebook/internal/assess"
	"coursebook/internal/question"
)

// Mark colors.
var (
	colorCorrect = lipgloss.Color("34")
	colorWrong   = lipgloss.Color("160")
	colorTitle   = lipgloss.Color("33")
	colorMuted   = lipgloss.Color("242")
)

// renderHeader renders the title line.
func renderHeader(s Session, noColor bool) string {
	if noColor {
		return s.Target.Title()
	}
	return lipgloss.NewStyle().Bold(true).Foreground(colorTitle).Render(s.Target.Title())
}

// renderProgress renders the position and running score.
func renderProgress(s Session, noColor bool) string {
	result := s.Target.Result()
	line := fmt.Sprintf("Question %d of %d | Answered %d | Score %s", s.Current+1, s.Target.Len(), result.Answered, result)
	return stylize(line, noColor, colorMuted)
}

// renderQuestion renders the prompt and options with cursor and marks.
func renderQuestion(s Session, noColor bool) string {
	q := s.Target.Question(s.Current)
	_, answered := s.Target.Selection(s.Current)
	lines := []string{q.Prompt}
	for i, option := range q.Options {
		cursor := "  "
		if !answered && i == s.Cursor {
			cursor = "> "
		}
		text := question.OptionLabel(i) + ". " + option
		mark := s.Target.Mark(s.Current, i)
		if suffix := markSuffix(mark); suffix != "" {
			text += " " + suffix
		}
		lines = append(lines, cursor+styleMark(text, mark, noColor))
	}
	return strings.Join(lines, "\n")
}

// renderFeedback renders the verdict and explanation once answered.
func renderFeedback(s Session, noColor bool) string {
	selected, answered := s.Target.Selection(s.Current)
	if !answered {
		return ""
	}
	q := s.Target.Question(s.Current)
	var verdict string
	if q.IsCorrect(selected) {
		verdict = stylize("Correct.", noColor, colorCorrect)
	} else {
		verdict = stylize("Not quite. The answer is "+question.OptionLabel(q.Correct)+".", noColor, colorWrong)
	}
	return verdict + "\n" + q.Explanation
}

// renderFinal renders the final score line.
func renderFinal(s Session, noColor bool) string {
	result := s.Target.Result()
	line := fmt.Sprintf("Final score: %s (%d%%)", result, result.Percent())
	if noColor {
		return line
	}
	return lipgloss.NewStyle().Bold(true).Render(line)
}

// renderReview renders a per-question summary table.
func renderReview(s Session, width int, noColor bool) string {
	rows := reviewRows(s.Target)
	columns := []table.Column{
		{Title: "#", Width: 3},
		{Title: "Question", Width: questionWidth(width)},
		{Title: "Answer", Width: 6},
		{Title: "Result", Width: 8},
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(false),
		table.WithHeight(len(rows)+1),
	)
	styles := table.DefaultStyles()
	styles.Selected = lipgloss.NewStyle()
	if !noColor {
		styles.Header = styles.Header.Foreground(lipgloss.Color("252"))
	}
	t.SetStyles(styles)
	return t.View()
}

// reviewRows converts a target into review table rows.
func reviewRows(target Target) []table.Row {
	rows := make([]table.Row, 0, target.Len())
	for i := 0; i < target.Len(); i++ {
		q := target.Question(i)
		answer, result := "-", "-"
		if selected, ok := target.Selection(i); ok {
			answer = question.OptionLabel(selected)
			result = "wrong"
			if q.IsCorrect(selected) {
				result = "correct"
			}
		}
		rows = append(rows, table.Row{strconv.Itoa(i + 1), truncate(q.Prompt, 60), answer, result})
	}
	return rows
}

// questionWidth sizes the question column for the terminal width.
func questionWidth(width int) int {
	if width <= 0 {
		return 48
	}
	return max(width-3-6-8-10, 16)
}

// truncate shortens text for table display.
func truncate(text string, limit int) string {
	normalized := strings.Join(strings.Fields(text), " ")
	if len(normalized) <= limit {
		return normalized
	}
	return normalized[:limit-3] + "..."
}

// markSuffix labels marked options for screens without color.
func markSuffix(mark assess.Mark) string {
	switch mark {
	case assess.MarkChosenCorrect:
		return "(your answer, correct)"
	case assess.MarkChosenWrong:
		return "(your answer)"
	case assess.MarkRevealedCorrect:
		return "(correct answer)"
	default:
		return ""
	}
}

// styleMark colors an option line by its mark.
func styleMark(text string, mark assess.Mark, noColor bool) string {
	switch mark {
	case assess.MarkChosenCorrect, assess.MarkRevealedCorrect:
		return stylize(text, noColor, colorCorrect)
	case assess.MarkChosenWrong:
		return stylize(text, noColor, colorWrong)
	default:
		return text
	}
}

// stylize applies optional color styling.
func stylize(text string, noColor bool, color lipgloss.Color) string {
	if noColor {
		return text
	}
	return lipgloss.NewStyle().Foreground(color).Render(text)
}
