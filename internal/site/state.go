package site

import (
	"net/url"
	"strconv"
	"strings"

	"coursebook/internal/assess"
	"coursebook/internal/catalog"
	"coursebook/internal/render"
)

// Query key prefixes for answered checks and quiz questions.
const (
	checkPrefix = "c."
	quizPrefix  = "q."
)

// pageState is the learner's answers on one page, rebuilt from the URL on
// every request.
type pageState struct {
	checks map[string]assess.Check
	quiz   assess.State
}

// decodeState replays query values through the check and quiz reducers.
// Unknown ids and malformed values are ignored; a bare URL yields a fresh
// state.
func decodeState(page *catalog.Page, values url.Values) pageState {
	state := pageState{checks: map[string]assess.Check{}}
	if page.Quiz != nil {
		state.quiz = page.Quiz.Start()
	}
	for key, raw := range values {
		if len(raw) == 0 {
			continue
		}
		index, err := strconv.Atoi(strings.TrimSpace(raw[0]))
		if err != nil {
			continue
		}
		switch {
		case strings.HasPrefix(key, checkPrefix):
			id := strings.TrimPrefix(key, checkPrefix)
			fresh, ok := page.Check(id)
			if !ok {
				continue
			}
			answered, err := fresh.Select(index)
			if err != nil {
				continue
			}
			state.checks[id] = answered
		case strings.HasPrefix(key, quizPrefix) && page.Quiz != nil:
			state.quiz = page.Quiz.Reduce(state.quiz, assess.Select{
				QuestionID: strings.TrimPrefix(key, quizPrefix),
				Option:     index,
			})
		}
	}
	return state
}

// encode returns the canonical query for the state.
func (s pageState) encode() string {
	values := url.Values{}
	for id, check := range s.checks {
		if selected, ok := check.Selected(); ok {
			values.Set(checkPrefix+id, strconv.Itoa(selected))
		}
	}
	for id, option := range s.quiz.Selections() {
		values.Set(quizPrefix+id, strconv.Itoa(option))
	}
	return values.Encode()
}

// view builds the render model for the state.
func (s pageState) view(page *catalog.Page) render.PageView {
	return render.PageView{
		Page:   page,
		Checks: s.checks,
		Quiz:   s.quiz,
		State:  s.encode(),
	}
}

// pageURL returns the page path with the state query and an optional anchor.
// Catalog ids are restricted to fragment-safe characters, so the anchor is
// written exactly as the element id it targets.
func pageURL(slug, query, anchor string) string {
	target := render.PagePath(slug)
	if query != "" {
		target += "?" + query
	}
	if anchor != "" {
		target += "#" + anchor
	}
	return target
}
