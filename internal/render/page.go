package render

import (
	"github.com/a-h/templ"

	"coursebook/internal/assess"
	"coursebook/internal/catalog"
	"coursebook/internal/question"
)

// Form field names posted by answer buttons.
const (
	FieldState  = "state"
	FieldKind   = "kind"
	FieldID     = "id"
	FieldOption = "option"

	KindCheck = "check"
	KindQuiz  = "quiz"
)

// PageView is a course page together with the learner's current answers.
type PageView struct {
	Page *catalog.Page
	// Checks holds answered inline checks by id. Missing ids render unanswered.
	Checks map[string]assess.Check
	Quiz   assess.State
	// State is the encoded query string carried through answer forms.
	State string
}

// check returns the current state of an inline check.
func (v PageView) check(fresh assess.Check) assess.Check {
	if current, ok := v.Checks[fresh.Question().ID]; ok {
		return current
	}
	return fresh
}

// CheckAnchor returns the fragment id for an inline check.
func CheckAnchor(id string) string {
	return "check-" + id
}

// QuestionAnchor returns the fragment id for a quiz question.
func QuestionAnchor(id string) string {
	return "quiz-" + id
}

// Page renders a course page with its checks, FAQ, and quiz.
func Page(view PageView) templ.Component {
	page := view.Page
	return Layout(page.Title, component(func(h *htmlWriter) {
		h.rawf(`<article><h1>%s</h1>`, esc(page.Title))
		h.rawf(`<p class="meta"><a href="/#%s">%s</a></p>`, esc(page.Category), esc(catalog.CategoryTitle(page.Category)))
		if page.Summary != "" {
			h.rawf(`<p class="summary">%s</p>`, esc(page.Summary))
		}
		for _, section := range page.Sections {
			h.rawf(`<section id="%s"><h2>%s</h2>`, esc(section.ID), esc(section.Title))
			for _, paragraph := range section.Body {
				h.rawf(`<p>%s</p>`, esc(paragraph))
			}
			for _, fresh := range section.Checks {
				h.render(CheckBlock(view, view.check(fresh)))
			}
			h.raw(`</section>`)
		}
		if len(page.FAQ) > 0 {
			h.raw(`<section id="faq"><h2>Frequently asked questions</h2>`)
			for _, item := range page.FAQ {
				h.rawf(`<details><summary>%s</summary><p>%s</p></details>`, esc(item.Question), esc(item.Answer))
			}
			h.raw(`</section>`)
		}
		if page.Quiz != nil {
			h.render(QuizBlock(view))
		}
		h.raw(`</article>`)
	}))
}

// CheckBlock renders one inline check.
func CheckBlock(view PageView, check assess.Check) templ.Component {
	q := check.Question()
	return component(func(h *htmlWriter) {
		h.rawf(`<aside class="check" id="%s"><p class="label">Quick check</p><p class="prompt">%s</p>`, esc(CheckAnchor(q.ID)), esc(q.Prompt))
		if !check.IsAnswered() {
			writeAnswerForm(h, view, KindCheck, q)
		} else {
			selected, _ := check.Selected()
			writeOutcome(h, q, selected, check.Mark)
		}
		h.raw(`</aside>`)
	})
}

// QuizBlock renders the page quiz with its running or final score.
func QuizBlock(view PageView) templ.Component {
	quiz := view.Page.Quiz
	return component(func(h *htmlWriter) {
		result := quiz.Result(view.Quiz)
		h.rawf(`<section id="quiz" class="quiz"><h2>%s</h2>`, esc(quiz.Title()))
		if result.Complete {
			h.rawf(`<p class="score final">You scored %s (%d%%).</p>`, esc(result.String()), result.Percent())
		} else {
			h.rawf(`<p class="score">Score: %s. Answered %d of %d.</p>`, esc(result.String()), result.Answered, result.Total)
		}
		for _, outcome := range quiz.Outcomes(view.Quiz) {
			q := outcome.Question
			h.rawf(`<div class="quiz-question" id="%s"><p class="prompt">%d. %s</p>`, esc(QuestionAnchor(q.ID)), outcome.Position+1, esc(q.Prompt))
			if !outcome.Answered {
				writeAnswerForm(h, view, KindQuiz, q)
			} else {
				writeOutcome(h, q, outcome.Selected, outcome.Mark)
			}
			h.raw(`</div>`)
		}
		if result.Answered > 0 {
			h.rawf(`<p><a class="restart" href="%s">Start again</a></p>`, href(PagePath(view.Page.Slug)+"#quiz"))
		}
		h.raw(`</section>`)
	})
}

// writeAnswerForm writes one submit button per option.
func writeAnswerForm(h *htmlWriter, view PageView, kind string, q question.Question) {
	h.rawf(`<form method="post" action="%s">`, href(AnswerPath(view.Page.Slug)))
	h.rawf(`<input type="hidden" name="%s" value="%s">`, FieldState, esc(view.State))
	h.rawf(`<input type="hidden" name="%s" value="%s">`, FieldKind, kind)
	h.rawf(`<input type="hidden" name="%s" value="%s">`, FieldID, esc(q.ID))
	h.raw(`<ol class="options">`)
	for i, option := range q.Options {
		h.rawf(`<li><button type="submit" name="%s" value="%d">%s. %s</button></li>`, FieldOption, i, esc(question.OptionLabel(i)), esc(option))
	}
	h.raw(`</ol></form>`)
}

// writeOutcome writes marked options, feedback, and the explanation.
func writeOutcome(h *htmlWriter, q question.Question, selected int, mark func(int) assess.Mark) {
	h.raw(`<ol class="options answered">`)
	for i, option := range q.Options {
		m := mark(i)
		h.rawf(`<li class="option %s">%s. %s`, esc(m.String()), esc(question.OptionLabel(i)), esc(option))
		if caption := markCaption(m); caption != "" {
			h.rawf(` <span class="mark">(%s)</span>`, esc(caption))
		}
		h.raw(`</li>`)
	}
	h.raw(`</ol>`)
	if q.IsCorrect(selected) {
		h.raw(`<p class="feedback correct">Correct.</p>`)
	} else if !q.HasOption(selected) {
		h.rawf(`<p class="feedback wrong">Your answer was not one of the options. The answer is %s.</p>`, esc(question.OptionLabel(q.Correct)))
	} else {
		h.rawf(`<p class="feedback wrong">Not quite. The answer is %s.</p>`, esc(question.OptionLabel(q.Correct)))
	}
	h.rawf(`<p class="explanation">%s</p>`, esc(q.Explanation))
}

// markCaption returns the visible label for a mark.
func markCaption(m assess.Mark) string {
	switch m {
	case assess.MarkChosenCorrect:
		return "your answer, correct"
	case assess.MarkChosenWrong:
		return "your answer"
	case assess.MarkRevealedCorrect:
		return "correct answer"
	default:
		return ""
	}
}
