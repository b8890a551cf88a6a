package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"coursebook/internal/config"
	"coursebook/internal/results"
	"coursebook/internal/testutil"
	"coursebook/internal/ui/take"
)

// withInput replaces the take input stream for a test.
func withInput(t *testing.T, input string) {
	t.Helper()
	prev := takeInput
	takeInput = strings.NewReader(input)
	t.Cleanup(func() { takeInput = prev })
}

// recordingConfig writes a config that logs attempts to sqlite under root.
func recordingConfig(t *testing.T, root string) string {
	t.Helper()
	return writeConfig(t, root, "version: 1\ncontent_dir: "+bundledContent(t)+"\nresults:\n  driver: sqlite\n  dsn: file:results.db\n")
}

// TestTakePlainQuiz verifies plain prompts score the quiz.
func TestTakePlainQuiz(t *testing.T) {
	withTerminal(t, false)
	withInput(t, "B\nA\nB\n")

	code, stdout, stderr := run("take", "health-and-safety-induction", "--content", bundledContent(t))
	if code != ExitOK {
		t.Fatalf("expected ok, got %d: %s", code, stderr)
	}
	if !strings.Contains(stdout, "Induction Check") {
		t.Fatalf("missing quiz title:\n%s", stdout)
	}
	if !strings.Contains(stdout, "Score: 3/3 (100%)") {
		t.Fatalf("missing final score:\n%s", stdout)
	}
}

// TestTakeInlineCheck verifies --check takes one question.
func TestTakeInlineCheck(t *testing.T) {
	withTerminal(t, false)
	withInput(t, "A\n")

	code, stdout, stderr := run("take", "health-and-safety-induction", "--check", "hazard-definition", "--content", bundledContent(t))
	if code != ExitOK {
		t.Fatalf("expected ok, got %d: %s", code, stderr)
	}
	if !strings.Contains(stdout, "Not quite. The answer is B.") {
		t.Fatalf("missing feedback:\n%s", stdout)
	}
	if !strings.Contains(stdout, "Score: 0/1 (0%)") {
		t.Fatalf("missing score:\n%s", stdout)
	}
}

// TestTakeUnknownTargets verifies unknown slugs and checks fail.
func TestTakeUnknownTargets(t *testing.T) {
	withTerminal(t, false)
	withInput(t, "")
	content := bundledContent(t)

	code, _, stderr := run("take", "no-such-page", "--content", content)
	if code != ExitError || !strings.Contains(stderr, `Unknown course "no-such-page"`) {
		t.Fatalf("unexpected result %d: %q", code, stderr)
	}
	code, _, stderr = run("take", "manual-handling", "--check", "nope", "--content", content)
	if code != ExitError || !strings.Contains(stderr, `has no check "nope"`) {
		t.Fatalf("unexpected result %d: %q", code, stderr)
	}
}

// TestTakeUsageErrors verifies argument validation.
func TestTakeUsageErrors(t *testing.T) {
	cases := [][]string{
		{"take"},
		{"take", "a", "b"},
		{"take", "manual-handling", "--check", "tile-l", "--record"},
		{"take", "manual-handling", "--ui", "fancy"},
	}
	for _, args := range cases {
		code, _, _ := run(args...)
		if code != ExitUsage {
			t.Fatalf("%v: expected usage exit, got %d", args, code)
		}
	}
}

// TestTakeLiveUsesTerminalUI verifies a TTY selects the live runner.
func TestTakeLiveUsesTerminalUI(t *testing.T) {
	withTerminal(t, true)
	withInput(t, "")
	var gotOpts take.Options
	prev := runLive
	runLive = func(_ context.Context, _ io.Reader, _ io.Writer, target take.Target, opts take.Options) (take.Target, error) {
		gotOpts = opts
		return target, nil
	}
	t.Cleanup(func() { runLive = prev })

	code, _, stderr := run("take", "manual-handling", "--no-color", "--content", bundledContent(t))
	if code != ExitOK {
		t.Fatalf("expected ok, got %d: %s", code, stderr)
	}
	if !gotOpts.NoColor {
		t.Fatalf("expected --no-color to reach the live UI")
	}
}

// TestTakeRecordRequiresResults verifies --record needs a configured driver.
func TestTakeRecordRequiresResults(t *testing.T) {
	withTerminal(t, false)
	withInput(t, "B\nA\nB\n")
	path := writeConfig(t, t.TempDir(), "version: 1\ncontent_dir: "+bundledContent(t)+"\n")

	code, _, stderr := run("take", "health-and-safety-induction", "--record", "--config", path)
	if code != ExitError || !strings.Contains(stderr, "Recording is disabled") {
		t.Fatalf("unexpected result %d: %q", code, stderr)
	}
}

// TestTakeRecordAndReport verifies finished quizzes reach the report.
func TestTakeRecordAndReport(t *testing.T) {
	withTerminal(t, false)
	root := t.TempDir()
	path := recordingConfig(t, root)
	clock := testutil.NewFakeClock(time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)).WithStep(time.Minute)
	prev := openResults
	openResults = func(ctx context.Context, driver results.Driver, dsn string, opts ...results.Option) (*results.Store, error) {
		return prev(ctx, driver, dsn, append(opts, results.WithClock(clock))...)
	}
	t.Cleanup(func() { openResults = prev })

	withInput(t, "B\nA\nB\n")
	code, stdout, stderr := run("take", "health-and-safety-induction", "--record", "--config", path)
	if code != ExitOK {
		t.Fatalf("expected ok, got %d: %s", code, stderr)
	}
	if !strings.Contains(stdout, "Recorded attempt") || !strings.Contains(stdout, "(3/3)") {
		t.Fatalf("unexpected stdout:\n%s", stdout)
	}

	withInput(t, "A\nA\nA\n")
	code, _, stderr = run("take", "health-and-safety-induction", "--record", "--config", path)
	if code != ExitOK {
		t.Fatalf("expected ok, got %d: %s", code, stderr)
	}

	withInput(t, "B\n")
	code, stdout, _ = run("take", "health-and-safety-induction", "--record", "--config", path)
	if code != ExitOK || !strings.Contains(stdout, "Attempt not recorded") {
		t.Fatalf("incomplete attempt should be skipped, got %d:\n%s", code, stdout)
	}

	code, stdout, stderr = run("report", "--config", path, "--quiz", "health-and-safety-induction")
	if code != ExitOK {
		t.Fatalf("report failed %d: %s", code, stderr)
	}
	for _, want := range []string{"health-and-safety-induction", "Induction Check", "3/3", "1/3", "67%"} {
		if !strings.Contains(stdout, want) {
			t.Fatalf("report missing %q:\n%s", want, stdout)
		}
	}
	if _, err := os.Stat(filepath.Join(root, "results.db")); err != nil {
		t.Fatalf("expected results under the config root: %v", err)
	}
}

// TestReportWithoutAttempts verifies an empty log is not an error.
func TestReportWithoutAttempts(t *testing.T) {
	path := recordingConfig(t, t.TempDir())
	code, stdout, stderr := run("report", "--config", path)
	if code != ExitOK {
		t.Fatalf("expected ok, got %d: %s", code, stderr)
	}
	if !strings.Contains(stdout, "No attempts recorded") {
		t.Fatalf("unexpected stdout: %q", stdout)
	}
}

// TestResultsDSNResolvesAgainstRoot verifies file DSNs are made absolute.
func TestResultsDSNResolvesAgainstRoot(t *testing.T) {
	if got := resultsDSN(configWith("/srv/app", "sqlite", "file:data/r.db")); got != "file:/srv/app/data/r.db" {
		t.Fatalf("unexpected sqlite dsn %q", got)
	}
	if got := resultsDSN(configWith("/srv/app", "duckdb", ".coursebook/results.duckdb")); got != "/srv/app/.coursebook/results.duckdb" {
		t.Fatalf("unexpected duckdb dsn %q", got)
	}
	pg := "postgres://localhost/coursebook"
	if got := resultsDSN(configWith("/srv/app", "postgres", pg)); got != pg {
		t.Fatalf("unexpected postgres dsn %q", got)
	}
}

// configWith builds a config with results settings rooted at root.
func configWith(root, driver, dsn string) config.Config {
	return config.Config{Root: root, Results: config.ResultsConfig{Driver: driver, DSN: dsn}}
}
