package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss/table"

	"coursebook/internal/results"
)

// runReport builds the handler for the report command.
func runReport(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		var settings settingsFlags
		settings.register(fs)
		slug := fs.String("quiz", "", "Only report attempts for this page slug")
		rest, code, ok := parseFlags(cmd, fs, args, stdout, stderr)
		if !ok {
			return code
		}
		if rejectArgs(cmd, rest, stderr) {
			return ExitUsage
		}

		cfg, err := settings.resolve()
		if err != nil {
			fmt.Fprintf(stderr, "Load failed:\n%s\n", err.Error())
			return ExitError
		}
		if !cfg.Results.Enabled() {
			fmt.Fprintln(stderr, "Recording is disabled; set results.driver in the config")
			return ExitError
		}

		ctx := context.Background()
		store, err := openResults(ctx, results.Driver(cfg.Results.Driver), resultsDSN(cfg))
		if err != nil {
			fmt.Fprintf(stderr, "Open results: %v\n", err)
			return ExitError
		}
		defer store.Close()

		summaries, err := store.Summaries(ctx, *slug)
		if err != nil {
			fmt.Fprintf(stderr, "Report failed: %v\n", err)
			return ExitError
		}
		if len(summaries) == 0 {
			fmt.Fprintln(stdout, "No attempts recorded")
			return ExitOK
		}
		fmt.Fprintln(stdout, renderSummaries(summaries))
		return ExitOK
	}
}

// renderSummaries formats summaries as a table.
func renderSummaries(summaries []results.Summary) string {
	t := table.New().Headers("Course", "Quiz", "Version", "Attempts", "Best", "Latest", "Average")
	for _, s := range summaries {
		t.Row(
			s.Slug,
			s.Title,
			shortKey(s.QuizKey),
			strconv.Itoa(s.Attempts),
			fmt.Sprintf("%d/%d", s.Best, s.Total),
			fmt.Sprintf("%d/%d", s.Latest, s.Total),
			fmt.Sprintf("%d%%", s.AveragePercent()),
		)
	}
	return t.String()
}

// shortKey abbreviates a quiz fingerprint.
func shortKey(key string) string {
	if len(key) <= 8 {
		return key
	}
	return key[:8]
}
