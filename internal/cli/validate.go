package cli

import (
	"flag"
	"fmt"
	"io"
)

// runValidate builds the handler for the validate command.
func runValidate(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
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
			fmt.Fprintf(stderr, "Validation failed:\n%s\n", err.Error())
			return ExitError
		}

		checks, questions := 0, 0
		for _, page := range cat.Pages() {
			checks += page.CheckCount()
			questions += page.QuestionCount()
		}
		fmt.Fprintf(stdout, "Content OK (%d pages, %d checks, %d quiz questions)\n", cat.Len(), checks, questions)
		return ExitOK
	}
}
