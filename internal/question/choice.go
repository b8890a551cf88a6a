package question

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrEmptyChoice indicates that no choice was entered.
var ErrEmptyChoice = errors.New("empty choice")

// ErrInvalidChoice indicates that the input names no option.
var ErrInvalidChoice = errors.New("invalid choice")

// OptionLabel returns the letter shown next to option index ("A", "B", ...).
func OptionLabel(index int) string {
	if index < 0 {
		return "?"
	}
	if index < 26 {
		return string(rune('A' + index))
	}
	return strconv.Itoa(index + 1)
}

// ParseChoice maps typed input to an option index. It accepts a letter label
// ("b") or a 1-based number ("2").
func ParseChoice(input string, optionCount int) (int, error) {
	text := strings.TrimSpace(input)
	if text == "" {
		return 0, ErrEmptyChoice
	}
	if n, err := strconv.Atoi(text); err == nil {
		if n < 1 || n > optionCount {
			return 0, fmt.Errorf("%w: %d is not between 1 and %d", ErrInvalidChoice, n, optionCount)
		}
		return n - 1, nil
	}
	if len(text) == 1 {
		letter := strings.ToUpper(text)[0]
		if letter >= 'A' && letter <= 'Z' {
			index := int(letter - 'A')
			if index < optionCount {
				return index, nil
			}
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidChoice, text)
}
