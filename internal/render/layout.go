package render

import "github.com/a-h/templ"

const stylesheet = `
body { font-family: system-ui, sans-serif; max-width: 48rem; margin: 0 auto; padding: 1rem 1.5rem 4rem; line-height: 1.5; color: #1f2933; }
header.site { border-bottom: 1px solid #d9e2ec; margin-bottom: 1.5rem; }
header.site a { color: inherit; text-decoration: none; font-weight: 600; }
.cards { list-style: none; padding: 0; display: grid; gap: 0.75rem; }
.card { border: 1px solid #d9e2ec; border-radius: 6px; padding: 0.75rem 1rem; }
.card .meta { color: #627d98; font-size: 0.875rem; }
.check, .quiz-question { border: 1px solid #d9e2ec; border-radius: 6px; padding: 0.75rem 1rem; margin: 1rem 0; }
.options { list-style: none; padding: 0; margin: 0.5rem 0; }
.options li { margin: 0.25rem 0; }
.options button { width: 100%; text-align: left; padding: 0.4rem 0.6rem; border: 1px solid #bcccdc; border-radius: 4px; background: #f0f4f8; cursor: pointer; }
.option { padding: 0.4rem 0.6rem; border-radius: 4px; border: 1px solid #d9e2ec; }
.option.chosen-correct, .option.revealed-correct { background: #e3f9e5; border-color: #31b237; }
.option.chosen-wrong { background: #ffe3e3; border-color: #e12d39; }
.feedback { font-weight: 600; }
.feedback.correct { color: #207227; }
.feedback.wrong { color: #a61b1b; }
.score { font-weight: 600; }
details { margin: 0.5rem 0; }
`

// Layout wraps body in the shared document shell.
func Layout(title string, body templ.Component) templ.Component {
	return component(func(h *htmlWriter) {
		h.raw(`<!doctype html><html lang="en"><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1"><title>`)
		h.text(title)
		h.raw(` | Coursebook</title><style>`)
		h.raw(stylesheet)
		h.raw(`</style></head><body><header class="site"><p><a href="/">Coursebook</a></p></header><main>`)
		h.render(body)
		h.raw(`</main></body></html>`)
	})
}

// Message renders a short standalone message, used for error pages.
func Message(title, message string) templ.Component {
	return Layout(title, component(func(h *htmlWriter) {
		h.rawf(`<h1>%s</h1><p>%s</p><p><a href="/">Back to all courses</a></p>`, esc(title), esc(message))
	}))
}
