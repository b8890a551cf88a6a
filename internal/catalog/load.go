package catalog

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"coursebook/internal/assess"
	"coursebook/internal/question"
)

// Catalog is the read-only set of course pages.
type Catalog struct {
	pages  []*Page
	bySlug map[string]*Page
}

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// idPattern limits check and quiz question ids to characters that appear
// unchanged in query keys, element ids and URL fragments.
var idPattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_-]*$`)

// contentExtensions lists the file types read from a content directory.
var contentExtensions = map[string]struct{}{
	".yml":  {},
	".yaml": {},
	".json": {},
}

// Load reads every page file in dir. Errors from all files are reported
// together.
func Load(dir string) (*Catalog, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read content dir: %w", err)
	}
	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if _, ok := contentExtensions[strings.ToLower(filepath.Ext(entry.Name()))]; ok {
			paths = append(paths, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(paths)
	if len(paths) == 0 {
		return nil, fmt.Errorf("no course pages found in %s", dir)
	}

	var errs []error
	pages := make([]*Page, 0, len(paths))
	for _, path := range paths {
		page, err := LoadPage(path)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		pages = append(pages, page)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return New(pages)
}

// New indexes already-built pages, rejecting duplicate slugs.
func New(pages []*Page) (*Catalog, error) {
	bySlug := make(map[string]*Page, len(pages))
	for _, page := range pages {
		if other, exists := bySlug[page.Slug]; exists {
			return nil, fmt.Errorf("duplicate slug %q in %s and %s", page.Slug, other.Source, page.Source)
		}
		bySlug[page.Slug] = page
	}
	sorted := append([]*Page(nil), pages...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Category != sorted[j].Category {
			return sorted[i].Category < sorted[j].Category
		}
		return sorted[i].Title < sorted[j].Title
	})
	return &Catalog{pages: sorted, bySlug: bySlug}, nil
}

// LoadPage reads and validates one page file.
func LoadPage(path string) (*Page, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read page: %w", err)
	}
	var file File
	if err := question.Decode(data, path, &file); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	var included *question.Set
	if file.Quiz != nil && strings.TrimSpace(file.Quiz.QuestionsFile) != "" {
		includePath := strings.TrimSpace(file.Quiz.QuestionsFile)
		if !filepath.IsAbs(includePath) {
			includePath = filepath.Join(filepath.Dir(path), includePath)
		}
		set, err := question.LoadSpec(includePath)
		if err != nil {
			return nil, fmt.Errorf("%s: quiz.questions_file: %w", path, err)
		}
		included = &set
	}
	page, err := buildPage(file, included)
	if err != nil {
		var validationErr *question.ValidationError
		if errors.As(err, &validationErr) {
			validationErr.Source = path
			return nil, validationErr
		}
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	page.Source = path
	return page, nil
}

// BuildPage normalizes and validates an authored page. Pages that include
// their quiz from a questions_file must be loaded with LoadPage.
func BuildPage(file File) (*Page, error) {
	return buildPage(file, nil)
}

func buildPage(file File, included *question.Set) (*Page, error) {
	collector := &question.Collector{}
	if file.Version == 0 {
		collector.Add("version", "is required")
	} else if file.Version != 1 {
		collector.Add("version", fmt.Sprintf("unsupported version %d", file.Version))
	}

	page := &Page{
		Slug:     strings.TrimSpace(file.Slug),
		Title:    strings.TrimSpace(file.Title),
		Category: strings.TrimSpace(file.Category),
		Summary:  strings.TrimSpace(file.Summary),
	}
	if page.Slug == "" {
		collector.Add("slug", "is required")
	} else if !slugPattern.MatchString(page.Slug) {
		collector.Add("slug", fmt.Sprintf("%q must be lowercase words joined by hyphens", page.Slug))
	}
	if page.Title == "" {
		collector.Add("title", "is required")
	}
	if page.Category == "" {
		collector.Add("category", "is required")
	} else if !slugPattern.MatchString(page.Category) {
		collector.Add("category", fmt.Sprintf("%q must be lowercase words joined by hyphens", page.Category))
	}
	if len(file.Sections) == 0 {
		collector.Add("sections", "must include at least one entry")
	}

	sectionIDs := map[string]struct{}{}
	checkIDs := map[string]string{}
	type pendingSection struct {
		section   Section
		questions []question.Question
	}
	pending := make([]pendingSection, 0, len(file.Sections))
	for i, sectionFile := range file.Sections {
		prefix := fmt.Sprintf("sections[%d]", i)
		section := Section{
			ID:    strings.TrimSpace(sectionFile.ID),
			Title: strings.TrimSpace(sectionFile.Title),
			Body:  trimParagraphs(sectionFile.Body),
		}
		if section.ID == "" {
			collector.Add(prefix+".id", "is required")
		} else if _, exists := sectionIDs[section.ID]; exists {
			collector.Add(prefix+".id", fmt.Sprintf("duplicate id %q", section.ID))
		} else {
			sectionIDs[section.ID] = struct{}{}
		}
		if section.Title == "" {
			collector.Add(prefix+".title", "is required")
		}
		if len(section.Body) == 0 {
			collector.Add(prefix+".body", "must include at least one paragraph")
		}
		var questions []question.Question
		for j, record := range sectionFile.Checks {
			field := fmt.Sprintf("%s.checks[%d]", prefix, j)
			q := question.NormalizeRecord(collector, field, record)
			checkIDFormat(collector, field+".id", q.ID)
			if q.ID != "" {
				if owner, exists := checkIDs[q.ID]; exists {
					collector.Add(field+".id", fmt.Sprintf("duplicate check id %q (first used in %s)", q.ID, owner))
				} else {
					checkIDs[q.ID] = field
				}
			}
			questions = append(questions, q)
		}
		pending = append(pending, pendingSection{section: section, questions: questions})
	}

	for i, faq := range file.FAQ {
		prefix := fmt.Sprintf("faq[%d]", i)
		entry := FAQ{Question: strings.TrimSpace(faq.Question), Answer: strings.TrimSpace(faq.Answer)}
		if entry.Question == "" {
			collector.Add(prefix+".question", "is required")
		}
		if entry.Answer == "" {
			collector.Add(prefix+".answer", "is required")
		}
		page.FAQ = append(page.FAQ, entry)
	}

	var quizTitle string
	var quizQuestions []question.Question
	if file.Quiz != nil {
		quizTitle = strings.TrimSpace(file.Quiz.Title)
		switch {
		case strings.TrimSpace(file.Quiz.QuestionsFile) == "":
			quizQuestions = question.NormalizeRecords(collector, "quiz.questions", file.Quiz.Questions)
		case len(file.Quiz.Questions) > 0:
			collector.Add("quiz.questions", "cannot be combined with questions_file")
		case included == nil:
			collector.Add("quiz.questions_file", "is only read when loading a page file")
		default:
			quizQuestions = included.Questions
			if quizTitle == "" {
				quizTitle = included.Title
			}
		}
		if quizTitle == "" {
			collector.Add("quiz.title", "is required")
		}
		for i, q := range quizQuestions {
			checkIDFormat(collector, fmt.Sprintf("quiz.questions[%d].id", i), q.ID)
		}
	}

	if err := collector.Err(""); err != nil {
		return nil, err
	}

	for _, p := range pending {
		for _, q := range p.questions {
			check, err := assess.NewCheck(q)
			if err != nil {
				return nil, err
			}
			p.section.Checks = append(p.section.Checks, check)
		}
		page.Sections = append(page.Sections, p.section)
	}
	if file.Quiz != nil {
		quiz, err := assess.NewQuiz(quizTitle, quizQuestions)
		if err != nil {
			return nil, err
		}
		page.Quiz = quiz
	}
	return page, nil
}

// checkIDFormat reports an id that could not be used as a URL fragment.
func checkIDFormat(collector *question.Collector, field, id string) {
	if id != "" && !idPattern.MatchString(id) {
		collector.Add(field, fmt.Sprintf("%q may only use letters, digits, hyphens and underscores", id))
	}
}

// Pages returns every page ordered by category, then title.
func (c *Catalog) Pages() []*Page {
	return append([]*Page(nil), c.pages...)
}

// Page looks up a page by slug.
func (c *Catalog) Page(slug string) (*Page, bool) {
	page, ok := c.bySlug[slug]
	return page, ok
}

// Len returns the number of pages.
func (c *Catalog) Len() int {
	return len(c.pages)
}

// Categories groups pages by category in catalogue order.
func (c *Catalog) Categories() []Category {
	var categories []Category
	for _, page := range c.pages {
		if n := len(categories); n > 0 && categories[n-1].Slug == page.Category {
			categories[n-1].Pages = append(categories[n-1].Pages, page)
			continue
		}
		categories = append(categories, Category{
			Slug:  page.Category,
			Title: CategoryTitle(page.Category),
			Pages: []*Page{page},
		})
	}
	return categories
}

// CategoryTitle turns a category slug into a heading: "health-and-safety"
// becomes "Health and Safety".
func CategoryTitle(slug string) string {
	words := strings.Split(slug, "-")
	for i, word := range words {
		if word == "" {
			continue
		}
		if i > 0 && minorWords[word] {
			continue
		}
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}

var minorWords = map[string]bool{"and": true, "of": true, "the": true, "for": true, "in": true}

func trimParagraphs(values []string) []string {
	out := make([]string, 0, len(values))
	for _, value := range values {
		if trimmed := strings.TrimSpace(value); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
