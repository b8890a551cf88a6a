package question

import (
	"errors"
	"fmt"
	"strings"
)

// MinOptions is the smallest number of options a question may offer.
const MinOptions = 2

// ErrInvalidQuestion marks a question record that breaks a structural rule.
var ErrInvalidQuestion = errors.New("invalid question")

// Issue captures a validation problem in authored question data.
type Issue struct {
	Field   string
	Message string
}

// ValidationError reports one or more validation issues.
type ValidationError struct {
	Source string
	Issues []Issue
}

// Error returns a readable message for validation failures.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return ""
	}
	parts := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		parts = append(parts, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	if err.Source != "" {
		return fmt.Sprintf("%s: validation failed: %s", err.Source, strings.Join(parts, "; "))
	}
	return fmt.Sprintf("question validation failed: %s", strings.Join(parts, "; "))
}

// Collector accumulates issues across nested fields.
type Collector struct {
	issues []Issue
}

// Add records an issue for field.
func (c *Collector) Add(field, message string) {
	c.issues = append(c.issues, Issue{Field: field, Message: message})
}

// Issues returns the recorded issues.
func (c *Collector) Issues() []Issue {
	return c.issues
}

// Err returns a *ValidationError when any issue was recorded.
func (c *Collector) Err(source string) error {
	if len(c.issues) == 0 {
		return nil
	}
	return &ValidationError{Source: source, Issues: c.issues}
}

// NormalizeSpec trims whitespace and validates a question set.
func NormalizeSpec(spec Spec) (Set, error) {
	collector := &Collector{}
	if spec.Version == 0 {
		collector.Add("version", "is required")
	} else if spec.Version != 1 {
		collector.Add("version", fmt.Sprintf("unsupported version %d", spec.Version))
	}
	title := strings.TrimSpace(spec.Title)
	if title == "" {
		collector.Add("title", "is required")
	}
	questions := NormalizeRecords(collector, "questions", spec.Questions)
	if err := collector.Err(""); err != nil {
		return Set{}, err
	}
	return Set{Title: title, Questions: questions}, nil
}

// NormalizeRecords converts authored records into questions, reporting issues
// under field. Ids must be unique within the list and the list must not be empty.
func NormalizeRecords(collector *Collector, field string, records []Record) []Question {
	if len(records) == 0 {
		collector.Add(field, "must include at least one entry")
		return nil
	}
	seenIDs := map[string]struct{}{}
	questions := make([]Question, 0, len(records))
	for i, record := range records {
		prefix := fmt.Sprintf("%s[%d]", field, i)
		q := NormalizeRecord(collector, prefix, record)
		if q.ID != "" {
			if _, exists := seenIDs[q.ID]; exists {
				collector.Add(prefix+".id", fmt.Sprintf("duplicate id %q", q.ID))
			} else {
				seenIDs[q.ID] = struct{}{}
			}
		}
		questions = append(questions, q)
	}
	return questions
}

// NormalizeRecord trims one record and reports its issues under prefix.
func NormalizeRecord(collector *Collector, prefix string, record Record) Question {
	q := Question{
		ID:          strings.TrimSpace(string(record.ID)),
		Prompt:      strings.TrimSpace(record.Prompt),
		Options:     normalizeStringSlice(record.Options),
		Explanation: strings.TrimSpace(record.Explanation),
	}
	if q.ID == "" {
		collector.Add(prefix+".id", "is required")
	}
	if q.Prompt == "" {
		collector.Add(prefix+".question", "is required")
	}
	if len(q.Options) < MinOptions {
		collector.Add(prefix+".options", fmt.Sprintf("must include at least %d entries", MinOptions))
	}
	for optionIndex, option := range q.Options {
		if option == "" {
			collector.Add(fmt.Sprintf("%s.options[%d]", prefix, optionIndex), "is required")
		}
	}
	if q.Explanation == "" {
		collector.Add(prefix+".explanation", "is required")
	}

	correct, field, ok := resolveCorrect(collector, prefix, record)
	if ok {
		q.Correct = correct
		if len(q.Options) > 0 && !q.HasOption(correct) {
			collector.Add(prefix+"."+field, fmt.Sprintf("index %d out of range for %d options", correct, len(q.Options)))
		}
	}
	return q
}

// resolveCorrect picks the correct index from whichever alias was written.
func resolveCorrect(collector *Collector, prefix string, record Record) (int, string, bool) {
	type alias struct {
		field string
		value *int
	}
	var set []alias
	for _, candidate := range []alias{
		{field: "correct", value: record.Correct},
		{field: "correct_index", value: record.CorrectIndex},
		{field: "correct_answer", value: record.CorrectAnswer},
	} {
		if candidate.value != nil {
			set = append(set, candidate)
		}
	}
	if len(set) == 0 {
		collector.Add(prefix+".correct", "is required")
		return 0, "", false
	}
	for _, other := range set[1:] {
		if *other.value != *set[0].value {
			collector.Add(prefix+"."+other.field, fmt.Sprintf("conflicts with %s", set[0].field))
			return 0, "", false
		}
	}
	return *set[0].value, set[0].field, true
}

// Validate checks the structural rules for a single question and names the
// question id in the returned error.
func (q Question) Validate() error {
	collector := &Collector{}
	if strings.TrimSpace(q.ID) == "" {
		collector.Add("id", "is required")
	}
	if strings.TrimSpace(q.Prompt) == "" {
		collector.Add("question", "is required")
	}
	if len(q.Options) < MinOptions {
		collector.Add("options", fmt.Sprintf("must include at least %d entries", MinOptions))
	}
	for i, option := range q.Options {
		if strings.TrimSpace(option) == "" {
			collector.Add(fmt.Sprintf("options[%d]", i), "is required")
		}
	}
	if len(q.Options) > 0 && !q.HasOption(q.Correct) {
		collector.Add("correct", fmt.Sprintf("index %d out of range for %d options", q.Correct, len(q.Options)))
	}
	if strings.TrimSpace(q.Explanation) == "" {
		collector.Add("explanation", "is required")
	}
	if err := collector.Err(""); err != nil {
		return fmt.Errorf("%w %q: %w", ErrInvalidQuestion, q.ID, err)
	}
	return nil
}

func normalizeStringSlice(values []string) []string {
	normalized := make([]string, 0, len(values))
	for _, value := range values {
		normalized = append(normalized, strings.TrimSpace(value))
	}
	return normalized
}
