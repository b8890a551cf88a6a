package question

import (
	"encoding/json"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Spec defines a standalone question set loaded from JSON or YAML.
type Spec struct {
	Version   int      `json:"version" yaml:"version"`
	Title     string   `json:"title" yaml:"title"`
	Questions []Record `json:"questions" yaml:"questions"`
}

// Set is a normalized question set ready for the assessment engine.
type Set struct {
	Title     string
	Questions []Question
}

// Record is the authored shape of a question. Inline checks conventionally
// write correct_index and quizzes correct_answer; both map onto Correct.
type Record struct {
	ID            Key      `json:"id" yaml:"id"`
	Prompt        string   `json:"question" yaml:"question"`
	Options       []string `json:"options" yaml:"options"`
	Correct       *int     `json:"correct,omitempty" yaml:"correct,omitempty"`
	CorrectIndex  *int     `json:"correct_index,omitempty" yaml:"correct_index,omitempty"`
	CorrectAnswer *int     `json:"correct_answer,omitempty" yaml:"correct_answer,omitempty"`
	Explanation   string   `json:"explanation" yaml:"explanation"`
}

// Question is an immutable, validated question record.
type Question struct {
	ID          string   `json:"id"`
	Prompt      string   `json:"question"`
	Options     []string `json:"options"`
	Correct     int      `json:"correct"`
	Explanation string   `json:"explanation"`
}

// Key is a question identifier. Authors may write it as a string or an integer.
type Key string

// UnmarshalJSON accepts both string and numeric ids.
func (k *Key) UnmarshalJSON(data []byte) error {
	var text string
	if err := json.Unmarshal(data, &text); err == nil {
		*k = Key(text)
		return nil
	}
	var number json.Number
	if err := json.Unmarshal(data, &number); err != nil {
		return fmt.Errorf("id must be a string or integer: %w", err)
	}
	if _, err := strconv.ParseInt(number.String(), 10, 64); err != nil {
		return fmt.Errorf("id must be a string or integer, got %s", number)
	}
	*k = Key(number.String())
	return nil
}

// UnmarshalYAML accepts any scalar id.
func (k *Key) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: id must be a scalar", node.Line)
	}
	*k = Key(node.Value)
	return nil
}

// IsCorrect reports whether index selects the correct option.
func (q Question) IsCorrect(index int) bool {
	return index == q.Correct
}

// HasOption reports whether index addresses one of the options.
func (q Question) HasOption(index int) bool {
	return index >= 0 && index < len(q.Options)
}
