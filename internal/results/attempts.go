package results

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"

	"coursebook/internal/assess"
	"coursebook/internal/question"
)

// ErrIncomplete reports an attempt that still has unanswered questions.
var ErrIncomplete = errors.New("results: attempt is incomplete")

// Attempt is a recorded finished quiz.
type Attempt struct {
	ID      string
	QuizID  string
	QuizKey string
	Result  assess.Result
}

// Summary aggregates recorded attempts for one quiz version.
type Summary struct {
	Slug     string
	Title    string
	QuizKey  string
	Attempts int
	Total    int
	Best     int
	Latest   int
	Average  float64
}

// AveragePercent returns the mean score as a rounded percentage.
func (s Summary) AveragePercent() int {
	if s.Total == 0 {
		return 0
	}
	return int(s.Average/float64(s.Total)*100 + 0.5)
}

// quizSpec returns the question list in its authored shape.
func quizSpec(quiz *assess.Quiz) []question.Record {
	questions := quiz.Questions()
	out := make([]question.Record, 0, len(questions))
	for _, q := range questions {
		correct := q.Correct
		out = append(out, question.Record{
			ID:           question.Key(q.ID),
			Prompt:       q.Prompt,
			Options:      append([]string(nil), q.Options...),
			CorrectIndex: &correct,
			Explanation:  q.Explanation,
		})
	}
	return out
}

// QuizKey fingerprints a quiz's questions so edits produce a new key.
func QuizKey(quiz *assess.Quiz) (string, error) {
	if quiz == nil {
		return "", errors.New("results: quiz is nil")
	}
	return FingerprintJSON(quizSpec(quiz))
}

// UpsertQuiz inserts a quiz version for slug keyed by its fingerprint and
// returns its id. Pages sharing identical questions get separate rows.
func (s *Store) UpsertQuiz(ctx context.Context, slug string, quiz *assess.Quiz) (string, string, error) {
	if quiz == nil {
		return "", "", errors.New("results: quiz is nil")
	}
	canonical, err := CanonicalJSON(quizSpec(quiz))
	if err != nil {
		return "", "", err
	}
	key := fingerprintBytes(canonical)
	if _, err := s.db.ExecContext(
		ctx,
		`INSERT INTO quizzes (quiz_id, quiz_key, slug, title, spec, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 ON CONFLICT (slug, quiz_key) DO NOTHING`,
		uuid.NewString(),
		key,
		slug,
		quiz.Title(),
		string(canonical),
		s.clock.Now(),
	); err != nil {
		return "", "", fmt.Errorf("upsert quiz: %w", err)
	}
	var id string
	if err := s.db.QueryRowContext(ctx, `SELECT quiz_id FROM quizzes WHERE slug = $1 AND quiz_key = $2`, slug, key).Scan(&id); err != nil {
		return "", "", fmt.Errorf("lookup quiz id: %w", err)
	}
	return id, key, nil
}

// RecordAttempt stores a completed quiz state.
func (s *Store) RecordAttempt(ctx context.Context, slug string, quiz *assess.Quiz, state assess.State) (Attempt, error) {
	if quiz == nil {
		return Attempt{}, errors.New("results: quiz is nil")
	}
	result := quiz.Result(state)
	if !quiz.Complete(state) {
		return Attempt{}, fmt.Errorf("%w: %d of %d answered", ErrIncomplete, result.Answered, result.Total)
	}
	quizID, key, err := s.UpsertQuiz(ctx, slug, quiz)
	if err != nil {
		return Attempt{}, err
	}
	answers, err := CanonicalJSON(state.Selections())
	if err != nil {
		return Attempt{}, err
	}
	id := uuid.NewString()
	if _, err := s.db.ExecContext(
		ctx,
		`INSERT INTO attempts (attempt_id, quiz_id, correct, total, answers, completed_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		id,
		quizID,
		result.Correct,
		result.Total,
		string(answers),
		s.clock.Now(),
	); err != nil {
		return Attempt{}, fmt.Errorf("insert attempt: %w", err)
	}
	return Attempt{ID: id, QuizID: quizID, QuizKey: key, Result: result}, nil
}

// Summaries aggregates attempts per page and quiz version, optionally for
// one slug.
func (s *Store) Summaries(ctx context.Context, slug string) ([]Summary, error) {
	query := `SELECT q.quiz_id, q.quiz_key, q.slug, q.title, a.correct, a.total
		FROM attempts a
		JOIN quizzes q ON q.quiz_id = a.quiz_id`
	var args []any
	if strings.TrimSpace(slug) != "" {
		query += ` WHERE q.slug = $1`
		args = append(args, slug)
	}
	query += ` ORDER BY q.slug, a.completed_at, a.attempt_id`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query attempts: %w", err)
	}
	defer rows.Close()

	byQuiz := map[string]*Summary{}
	var order []string
	for rows.Next() {
		var (
			quizID, key, rowSlug, title string
			correct, total              int64
		)
		if err := rows.Scan(&quizID, &key, &rowSlug, &title, &correct, &total); err != nil {
			return nil, fmt.Errorf("scan attempt: %w", err)
		}
		summary, ok := byQuiz[quizID]
		if !ok {
			summary = &Summary{Slug: rowSlug, Title: title, QuizKey: key, Total: int(total)}
			byQuiz[quizID] = summary
			order = append(order, quizID)
		}
		summary.Attempts++
		summary.Latest = int(correct)
		if int(correct) > summary.Best {
			summary.Best = int(correct)
		}
		summary.Average += (float64(correct) - summary.Average) / float64(summary.Attempts)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read attempts: %w", err)
	}

	out := make([]Summary, 0, len(order))
	for _, quizID := range order {
		out = append(out, *byQuiz[quizID])
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Slug < out[j].Slug
	})
	return out, nil
}
