package catalog

import (
	"coursebook/internal/assess"
	"coursebook/internal/question"
)

// File is the authored shape of one course page.
type File struct {
	Version  int           `json:"version" yaml:"version"`
	Slug     string        `json:"slug" yaml:"slug"`
	Title    string        `json:"title" yaml:"title"`
	Category string        `json:"category" yaml:"category"`
	Summary  string        `json:"summary" yaml:"summary"`
	Sections []SectionFile `json:"sections" yaml:"sections"`
	FAQ      []FAQ         `json:"faq,omitempty" yaml:"faq,omitempty"`
	Quiz     *QuizFile     `json:"quiz,omitempty" yaml:"quiz,omitempty"`
}

// SectionFile is the authored shape of a page section.
type SectionFile struct {
	ID     string            `json:"id" yaml:"id"`
	Title  string            `json:"title" yaml:"title"`
	Body   []string          `json:"body" yaml:"body"`
	Checks []question.Record `json:"checks,omitempty" yaml:"checks,omitempty"`
}

// QuizFile is the authored shape of a page quiz. Questions are either
// written inline or read from a question set file relative to the page.
type QuizFile struct {
	Title         string            `json:"title" yaml:"title"`
	QuestionsFile string            `json:"questions_file,omitempty" yaml:"questions_file,omitempty"`
	Questions     []question.Record `json:"questions,omitempty" yaml:"questions,omitempty"`
}

// FAQ is one question/answer block.
type FAQ struct {
	Question string `json:"question" yaml:"question"`
	Answer   string `json:"answer" yaml:"answer"`
}

// Page is a validated course page. Its checks and quiz are immutable
// definitions; every call to Check or Quiz.Start yields fresh state.
type Page struct {
	Slug     string
	Title    string
	Category string
	Summary  string
	Sections []Section
	FAQ      []FAQ
	Quiz     *assess.Quiz
	Source   string
}

// Section is a block of article text with its inline checks.
type Section struct {
	ID     string
	Title  string
	Body   []string
	Checks []assess.Check
}

// Category groups pages for the catalogue index.
type Category struct {
	Slug  string
	Title string
	Pages []*Page
}

// Check returns a fresh, unanswered inline check by id.
func (p *Page) Check(id string) (assess.Check, bool) {
	for _, section := range p.Sections {
		for _, check := range section.Checks {
			if check.Question().ID == id {
				return check, true
			}
		}
	}
	return assess.Check{}, false
}

// CheckCount returns the number of inline checks on the page.
func (p *Page) CheckCount() int {
	count := 0
	for _, section := range p.Sections {
		count += len(section.Checks)
	}
	return count
}

// QuestionCount returns the number of quiz questions, or zero without a quiz.
func (p *Page) QuestionCount() int {
	if p.Quiz == nil {
		return 0
	}
	return p.Quiz.Len()
}
