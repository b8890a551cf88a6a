package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"coursebook/internal/catalog"
	"coursebook/internal/config"
	"coursebook/internal/results"
	"coursebook/internal/ui/take"
)

// Test seams for the take command.
var (
	takeInput   io.Reader = os.Stdin
	runLive               = take.RunLive
	runPlain              = take.RunPlain
	openResults           = results.Open
)

// runTake builds the handler for the take command.
func runTake(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		var settings settingsFlags
		settings.register(fs)
		checkID := fs.String("check", "", "Take one inline check instead of the quiz")
		mode := fs.String("ui", "auto", "UI mode: auto|live|plain")
		noColor := fs.Bool("no-color", false, "Disable colors in the live UI")
		record := fs.Bool("record", false, "Record the finished quiz in the attempt log")
		rest, code, ok := parseFlags(cmd, fs, args, stdout, stderr)
		if !ok {
			return code
		}
		if len(rest) != 1 {
			fmt.Fprintln(stderr, "Expected exactly one <slug>")
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}
		if *record && *checkID != "" {
			fmt.Fprintln(stderr, "--record applies to quizzes, not inline checks")
			return ExitUsage
		}
		decision, err := resolveUIMode(*mode, *noColor, stdout)
		if err != nil {
			fmt.Fprintln(stderr, err.Error())
			return ExitUsage
		}
		if decision.warning != "" {
			fmt.Fprintln(stderr, decision.warning)
		}

		cfg, cat, err := settings.loadCatalog()
		if err != nil {
			fmt.Fprintf(stderr, "Load failed:\n%s\n", err.Error())
			return ExitError
		}
		if *record && !cfg.Results.Enabled() {
			fmt.Fprintln(stderr, "Recording is disabled; set results.driver in the config")
			return ExitError
		}
		page, found := cat.Page(rest[0])
		if !found {
			fmt.Fprintf(stderr, "Unknown course %q\n", rest[0])
			return ExitError
		}

		target, err := targetFor(page, strings.TrimSpace(*checkID))
		if err != nil {
			fmt.Fprintln(stderr, err.Error())
			return ExitError
		}

		ctx := context.Background()
		var final take.Target
		if decision.useLive {
			final, err = runLive(ctx, takeInput, stdout, target, take.Options{NoColor: decision.noColor})
		} else {
			final, err = runPlain(ctx, takeInput, stdout, target)
		}
		if err != nil {
			fmt.Fprintf(stderr, "Take failed: %v\n", err)
			return ExitError
		}

		if *record {
			return recordAttempt(ctx, cfg, page, final, stdout, stderr)
		}
		return ExitOK
	}
}

// targetFor selects the page quiz or one of its inline checks.
func targetFor(page *catalog.Page, checkID string) (take.Target, error) {
	if checkID != "" {
		check, ok := page.Check(checkID)
		if !ok {
			return nil, fmt.Errorf("page %q has no check %q", page.Slug, checkID)
		}
		return take.ForCheck(check), nil
	}
	if page.Quiz == nil {
		return nil, fmt.Errorf("page %q has no quiz", page.Slug)
	}
	return take.ForQuiz(page.Quiz), nil
}

// recordAttempt writes a finished quiz to the configured attempt log.
func recordAttempt(ctx context.Context, cfg config.Config, page *catalog.Page, final take.Target, stdout, stderr io.Writer) int {
	quiz, ok := final.(take.QuizTarget)
	if !ok {
		fmt.Fprintln(stderr, "Only quizzes can be recorded")
		return ExitError
	}
	store, err := openResults(ctx, results.Driver(cfg.Results.Driver), resultsDSN(cfg))
	if err != nil {
		fmt.Fprintf(stderr, "Open results: %v\n", err)
		return ExitError
	}
	defer store.Close()

	attempt, err := store.RecordAttempt(ctx, page.Slug, quiz.Quiz, quiz.State)
	if errors.Is(err, results.ErrIncomplete) {
		fmt.Fprintln(stdout, "Attempt not recorded: quiz incomplete")
		return ExitOK
	}
	if err != nil {
		fmt.Fprintf(stderr, "Record attempt: %v\n", err)
		return ExitError
	}
	fmt.Fprintf(stdout, "Recorded attempt %s (%s)\n", attempt.ID, attempt.Result)
	return ExitOK
}

// resultsDSN resolves file DSNs against the config root.
func resultsDSN(cfg config.Config) string {
	switch results.Driver(cfg.Results.Driver) {
	case results.DriverDuckDB:
		return cfg.ResolvePath(cfg.Results.DSN)
	case results.DriverSQLite:
		if rest, ok := strings.CutPrefix(cfg.Results.DSN, "file:"); ok {
			return "file:" + cfg.ResolvePath(rest)
		}
		return cfg.ResolvePath(cfg.Results.DSN)
	default:
		return cfg.Results.DSN
	}
}
