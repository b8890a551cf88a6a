package site

import (
	"errors"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"coursebook/internal/assess"
	"coursebook/internal/catalog"
	"coursebook/internal/render"
)

// Options configures the site handler.
type Options struct {
	Catalog        *catalog.Catalog
	Logger         *logrus.Logger
	CORSOrigins    []string
	RequestTimeout time.Duration
}

// handler serves catalogue and course pages.
type handler struct {
	catalog  *catalog.Catalog
	validate *validator.Validate
}

// NewHandler builds the HTTP handler for the site.
func NewHandler(opts Options) (http.Handler, error) {
	if opts.Catalog == nil {
		return nil, errors.New("site: catalog is required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	h := &handler{catalog: opts.Catalog, validate: validator.New()}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(logger))
	r.Use(middleware.Recoverer)
	if opts.RequestTimeout > 0 {
		r.Use(middleware.Timeout(opts.RequestTimeout))
	}
	if len(opts.CORSOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: opts.CORSOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowedHeaders: []string{"Content-Type"},
			MaxAge:         300,
		}))
	}

	r.Get("/", h.index)
	r.Get("/healthz", h.healthz)
	r.Route("/courses/{slug}", func(r chi.Router) {
		r.Get("/", h.page)
		r.Post("/answer", h.answer)
	})
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeMessage(w, r, http.StatusNotFound, "Not found", "There is no page at this address.")
	})
	return r, nil
}

// index renders the catalogue grouped by category.
func (h *handler) index(w http.ResponseWriter, r *http.Request) {
	writeComponent(w, r, http.StatusOK, render.Index(h.catalog.Categories()))
}

// healthz reports liveness.
func (h *handler) healthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = io.WriteString(w, "ok\n")
}

// page renders a course page with the answers carried in the query.
func (h *handler) page(w http.ResponseWriter, r *http.Request) {
	page, ok := h.lookup(w, r)
	if !ok {
		return
	}
	state := decodeState(page, r.URL.Query())
	writeComponent(w, r, http.StatusOK, render.Page(state.view(page)))
}

// answer applies one selection and redirects to the page with the new state.
func (h *handler) answer(w http.ResponseWriter, r *http.Request) {
	page, ok := h.lookup(w, r)
	if !ok {
		return
	}
	log := LoggerFromContext(r.Context()).WithField("slug", page.Slug)

	form, err := parseAnswerForm(r, h.validate)
	if err != nil {
		log.WithError(err).Warn("rejected answer form")
		writeMessage(w, r, http.StatusBadRequest, "Bad request", err.Error())
		return
	}
	values, err := url.ParseQuery(form.State)
	if err != nil {
		log.WithError(err).Warn("rejected answer state")
		writeMessage(w, r, http.StatusBadRequest, "Bad request", "The answer state could not be read.")
		return
	}
	state := decodeState(page, values)

	var anchor string
	switch form.Kind {
	case render.KindCheck:
		anchor = render.CheckAnchor(form.ID)
		current, ok := state.checks[form.ID]
		if !ok {
			current, ok = page.Check(form.ID)
		}
		if !ok {
			writeMessage(w, r, http.StatusNotFound, "Not found", "That question is not on this page.")
			return
		}
		next, err := current.Select(form.Option)
		if err != nil {
			log.WithError(err).Warn("rejected check answer")
			writeMessage(w, r, http.StatusBadRequest, "Bad request", "That option does not exist.")
			return
		}
		state.checks[form.ID] = next
	case render.KindQuiz:
		anchor = render.QuestionAnchor(form.ID)
		if page.Quiz == nil {
			writeMessage(w, r, http.StatusNotFound, "Not found", "This page has no quiz.")
			return
		}
		next, err := page.Quiz.Apply(state.quiz, assess.Select{QuestionID: form.ID, Option: form.Option})
		switch {
		case errors.Is(err, assess.ErrUnknownQuestion):
			writeMessage(w, r, http.StatusNotFound, "Not found", "That question is not on this page.")
			return
		case errors.Is(err, assess.ErrOptionOutOfRange):
			log.WithError(err).Warn("rejected quiz answer")
			writeMessage(w, r, http.StatusBadRequest, "Bad request", "That option does not exist.")
			return
		case err != nil:
			log.WithError(err).Error("apply quiz answer")
			writeMessage(w, r, http.StatusInternalServerError, "Something went wrong", "The answer could not be recorded.")
			return
		}
		state.quiz = next
	}

	log.WithFields(logrus.Fields{"kind": form.Kind, "id": form.ID, "option": form.Option}).Debug("answer recorded")
	http.Redirect(w, r, pageURL(page.Slug, state.encode(), anchor), http.StatusSeeOther)
}

// lookup resolves the slug URL parameter or writes a 404.
func (h *handler) lookup(w http.ResponseWriter, r *http.Request) (*catalog.Page, bool) {
	slug := chi.URLParam(r, "slug")
	page, ok := h.catalog.Page(slug)
	if !ok {
		writeMessage(w, r, http.StatusNotFound, "Not found", "There is no course called "+slug+".")
		return nil, false
	}
	return page, true
}

// writeMessage renders a message page with status.
func writeMessage(w http.ResponseWriter, r *http.Request, status int, title, message string) {
	writeComponent(w, r, status, render.Message(title, message))
}

// writeComponent renders c as an HTML response.
func writeComponent(w http.ResponseWriter, r *http.Request, status int, c templ.Component) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := c.Render(r.Context(), w); err != nil {
		LoggerFromContext(r.Context()).WithError(err).Error("render response")
	}
}
