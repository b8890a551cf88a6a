package render

import (
	"strconv"

	"github.com/a-h/templ"

	"coursebook/internal/catalog"
)

// Index renders the catalogue grouped by category.
func Index(categories []catalog.Category) templ.Component {
	return Layout("All courses", component(func(h *htmlWriter) {
		h.raw(`<h1>All courses</h1>`)
		if len(categories) == 0 {
			h.raw(`<p>No courses yet.</p>`)
			return
		}
		for _, category := range categories {
			h.rawf(`<section class="category" id="%s"><h2>%s</h2><ul class="cards">`, esc(category.Slug), esc(category.Title))
			for _, page := range category.Pages {
				h.render(Card(page))
			}
			h.raw(`</ul></section>`)
		}
	}))
}

// Card renders a summary card for one page.
func Card(page *catalog.Page) templ.Component {
	return component(func(h *htmlWriter) {
		h.rawf(`<li class="card"><h3><a href="%s">%s</a></h3>`, href(PagePath(page.Slug)), esc(page.Title))
		if page.Summary != "" {
			h.rawf(`<p>%s</p>`, esc(page.Summary))
		}
		h.rawf(`<p class="meta">%s</p></li>`, esc(cardMeta(page)))
	})
}

// cardMeta describes the checks and quiz on a page.
func cardMeta(page *catalog.Page) string {
	meta := plural(len(page.Sections), "section")
	if n := page.CheckCount(); n > 0 {
		meta += ", " + plural(n, "quick check")
	}
	if n := page.QuestionCount(); n > 0 {
		meta += ", " + strconv.Itoa(n) + "-question quiz"
	}
	return meta
}

func plural(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return strconv.Itoa(n) + " " + noun + "s"
}

// PagePath returns the canonical path of a course page.
func PagePath(slug string) string {
	return "/courses/" + slug
}

// AnswerPath returns the form target for answering on a page.
func AnswerPath(slug string) string {
	return PagePath(slug) + "/answer"
}
