package results_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"coursebook/internal/assess"
	"coursebook/internal/question"
	"coursebook/internal/results"
	"coursebook/internal/testutil"
)

const testTimeout = 5 * time.Second

// openStore opens a store for driver backed by a temp directory.
func openStore(t *testing.T, driver results.Driver) (*results.Store, context.Context, *testutil.FakeClock) {
	t.Helper()
	ctx := testutil.Context(t, testTimeout)
	clock := testutil.NewFakeClock(time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC))
	var dsn string
	switch driver {
	case results.DriverDuckDB:
		dsn = filepath.Join(t.TempDir(), "results.duckdb")
	case results.DriverSQLite:
		dsn = "file:" + filepath.Join(t.TempDir(), "results.db")
	default:
		t.Fatalf("unsupported test driver %q", driver)
	}
	store, err := results.Open(ctx, driver, dsn, results.WithClock(clock))
	if err != nil {
		t.Fatalf("open %s: %v", driver, err)
	}
	t.Cleanup(func() {
		_ = store.Close()
	})
	return store, ctx, clock
}

// newQuiz builds a quiz whose questions are all answered correctly by option 0.
func newQuiz(t *testing.T, title string, ids ...string) *assess.Quiz {
	t.Helper()
	questions := make([]question.Question, 0, len(ids))
	for _, id := range ids {
		questions = append(questions, question.Question{
			ID:          id,
			Prompt:      "Prompt " + id,
			Options:     []string{"right", "wrong"},
			Correct:     0,
			Explanation: "Because.",
		})
	}
	quiz, err := assess.NewQuiz(title, questions)
	if err != nil {
		t.Fatalf("new quiz: %v", err)
	}
	return quiz
}

var drivers = []results.Driver{results.DriverDuckDB, results.DriverSQLite}

// TestSchemaTablesExist verifies both tables are created on open.
func TestSchemaTablesExist(t *testing.T) {
	for _, driver := range drivers {
		t.Run(string(driver), func(t *testing.T) {
			store, ctx, _ := openStore(t, driver)
			for _, table := range []string{"quizzes", "attempts"} {
				var count int64
				query := "SELECT COUNT(*) FROM " + table
				if err := store.DB().QueryRowContext(ctx, query).Scan(&count); err != nil {
					t.Fatalf("query %s: %v", table, err)
				}
				if count != 0 {
					t.Fatalf("expected empty %s, got %d", table, count)
				}
			}
			if err := results.EnsureSchema(ctx, store.DB()); err != nil {
				t.Fatalf("schema should be idempotent: %v", err)
			}
		})
	}
}

// TestRecordAttemptAndSummaries verifies attempts aggregate per quiz version.
func TestRecordAttemptAndSummaries(t *testing.T) {
	for _, driver := range drivers {
		t.Run(string(driver), func(t *testing.T) {
			store, ctx, clock := openStore(t, driver)
			quiz := newQuiz(t, "Sample Quiz", "q1", "q2", "q3")

			perfect := quiz.Replay(
				assess.Select{QuestionID: "q1", Option: 0},
				assess.Select{QuestionID: "q2", Option: 0},
				assess.Select{QuestionID: "q3", Option: 0},
			)
			first, err := store.RecordAttempt(ctx, "sample", quiz, perfect)
			if err != nil {
				t.Fatalf("record first: %v", err)
			}
			if first.Result.Correct != 3 || first.Result.Total != 3 {
				t.Fatalf("unexpected result %+v", first.Result)
			}

			clock.Advance(time.Minute)
			partial := quiz.Replay(
				assess.Select{QuestionID: "q1", Option: 1},
				assess.Select{QuestionID: "q2", Option: 0},
				assess.Select{QuestionID: "q3", Option: 1},
			)
			second, err := store.RecordAttempt(ctx, "sample", quiz, partial)
			if err != nil {
				t.Fatalf("record second: %v", err)
			}
			if second.QuizID != first.QuizID || second.QuizKey != first.QuizKey {
				t.Fatalf("expected same quiz row, got %q and %q", first.QuizID, second.QuizID)
			}
			if second.ID == first.ID {
				t.Fatalf("expected distinct attempt ids")
			}

			summaries, err := store.Summaries(ctx, "")
			if err != nil {
				t.Fatalf("summaries: %v", err)
			}
			if len(summaries) != 1 {
				t.Fatalf("expected one summary, got %d", len(summaries))
			}
			got := summaries[0]
			if got.Slug != "sample" || got.Title != "Sample Quiz" {
				t.Fatalf("unexpected summary identity %+v", got)
			}
			if got.Attempts != 2 || got.Best != 3 || got.Latest != 1 || got.Total != 3 {
				t.Fatalf("unexpected summary counts %+v", got)
			}
			if got.AveragePercent() != 67 {
				t.Fatalf("expected 67%% average, got %d", got.AveragePercent())
			}
		})
	}
}

// TestRecordAttemptRejectsIncomplete verifies unfinished attempts are not stored.
func TestRecordAttemptRejectsIncomplete(t *testing.T) {
	store, ctx, _ := openStore(t, results.DriverSQLite)
	quiz := newQuiz(t, "Sample Quiz", "q1", "q2")
	state := quiz.Replay(assess.Select{QuestionID: "q1", Option: 0})

	_, err := store.RecordAttempt(ctx, "sample", quiz, state)
	if !errors.Is(err, results.ErrIncomplete) {
		t.Fatalf("expected ErrIncomplete, got %v", err)
	}
	summaries, err := store.Summaries(ctx, "")
	if err != nil {
		t.Fatalf("summaries: %v", err)
	}
	if len(summaries) != 0 {
		t.Fatalf("expected no summaries, got %+v", summaries)
	}
}

// TestSummariesFilterBySlug verifies the slug filter.
func TestSummariesFilterBySlug(t *testing.T) {
	store, ctx, _ := openStore(t, results.DriverSQLite)
	alpha := newQuiz(t, "Alpha", "a1")
	beta := newQuiz(t, "Beta", "b1")

	if _, err := store.RecordAttempt(ctx, "alpha", alpha, alpha.Replay(assess.Select{QuestionID: "a1", Option: 0})); err != nil {
		t.Fatalf("record alpha: %v", err)
	}
	if _, err := store.RecordAttempt(ctx, "beta", beta, beta.Replay(assess.Select{QuestionID: "b1", Option: 1})); err != nil {
		t.Fatalf("record beta: %v", err)
	}

	summaries, err := store.Summaries(ctx, "beta")
	if err != nil {
		t.Fatalf("summaries: %v", err)
	}
	if len(summaries) != 1 || summaries[0].Slug != "beta" || summaries[0].Best != 0 {
		t.Fatalf("unexpected summaries %+v", summaries)
	}
}

// TestIdenticalQuizzesStaySeparateBySlug verifies two pages with the same
// questions keep their own quiz rows and summaries.
func TestIdenticalQuizzesStaySeparateBySlug(t *testing.T) {
	for _, driver := range drivers {
		t.Run(string(driver), func(t *testing.T) {
			store, ctx, _ := openStore(t, driver)
			quiz := newQuiz(t, "Shared", "q1", "q2")
			complete := quiz.Replay(
				assess.Select{QuestionID: "q1", Option: 0},
				assess.Select{QuestionID: "q2", Option: 0},
			)

			first, err := store.RecordAttempt(ctx, "page-a", quiz, complete)
			if err != nil {
				t.Fatalf("record page-a: %v", err)
			}
			second, err := store.RecordAttempt(ctx, "page-b", quiz, complete)
			if err != nil {
				t.Fatalf("record page-b: %v", err)
			}
			if first.QuizID == second.QuizID {
				t.Fatalf("expected separate quiz rows per slug")
			}
			if first.QuizKey != second.QuizKey {
				t.Fatalf("identical questions should share a fingerprint")
			}

			onlyB, err := store.Summaries(ctx, "page-b")
			if err != nil {
				t.Fatalf("summaries page-b: %v", err)
			}
			if len(onlyB) != 1 || onlyB[0].Slug != "page-b" || onlyB[0].Attempts != 1 {
				t.Fatalf("unexpected page-b summaries %+v", onlyB)
			}

			all, err := store.Summaries(ctx, "")
			if err != nil {
				t.Fatalf("summaries: %v", err)
			}
			if len(all) != 2 || all[0].Slug != "page-a" || all[1].Slug != "page-b" {
				t.Fatalf("unexpected summaries %+v", all)
			}
			for _, summary := range all {
				if summary.Attempts != 1 {
					t.Fatalf("expected one attempt per page, got %+v", summary)
				}
			}
		})
	}
}

// TestQuizKeyChangesWithContent verifies edited questions produce a new key.
func TestQuizKeyChangesWithContent(t *testing.T) {
	first, err := results.QuizKey(newQuiz(t, "Quiz", "q1", "q2"))
	if err != nil {
		t.Fatalf("key: %v", err)
	}
	same, err := results.QuizKey(newQuiz(t, "Renamed", "q1", "q2"))
	if err != nil {
		t.Fatalf("key: %v", err)
	}
	changed, err := results.QuizKey(newQuiz(t, "Quiz", "q1", "q3"))
	if err != nil {
		t.Fatalf("key: %v", err)
	}
	if first != same {
		t.Fatalf("title should not affect the key")
	}
	if first == changed {
		t.Fatalf("question ids should affect the key")
	}
	if len(first) != 64 {
		t.Fatalf("expected sha256 hex key, got %q", first)
	}
}

// TestOpenRejectsUnknownDriver verifies driver validation.
func TestOpenRejectsUnknownDriver(t *testing.T) {
	ctx := testutil.Context(t, testTimeout)
	if _, err := results.Open(ctx, results.Driver("mysql"), "dsn"); err == nil {
		t.Fatalf("expected error for unsupported driver")
	}
}
