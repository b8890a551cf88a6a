package cli

import (
	"flag"
	"fmt"
	"io"
)

// runList builds the handler for the list command.
func runList(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		var settings settingsFlags
		settings.register(fs)
		rest, code, ok := parseFlags(cmd, fs, args, stdout, stderr)
		if !ok {
			return code
		}
		if rejectArgs(cmd, rest, stderr) {
			return ExitUsage
		}

		_, cat, err := settings.loadCatalog()
		if err != nil {
			fmt.Fprintf(stderr, "Load failed:\n%s\n", err.Error())
			return ExitError
		}
		for i, category := range cat.Categories() {
			if i > 0 {
				fmt.Fprintln(stdout)
			}
			fmt.Fprintln(stdout, category.Title)
			for _, page := range category.Pages {
				fmt.Fprintf(stdout, "  %-32s %s (%d checks, %d quiz questions)\n", page.Slug, page.Title, page.CheckCount(), page.QuestionCount())
			}
		}
		return ExitOK
	}
}
