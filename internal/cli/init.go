package cli

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"coursebook/internal/config"
)

// workingDir is a test seam for the init target directory.
var workingDir = os.Getwd

// runInit builds the handler for the init command.
func runInit(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		rest, code, ok := parseFlags(cmd, fs, args, stdout, stderr)
		if !ok {
			return code
		}
		if rejectArgs(cmd, rest, stderr) {
			return ExitUsage
		}

		root, err := workingDir()
		if err != nil {
			fmt.Fprintf(stderr, "Init failed: %v\n", err)
			return ExitError
		}
		path, err := config.Scaffold(root)
		if err != nil {
			fmt.Fprintf(stderr, "Init failed: %v\n", err)
			return ExitError
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			rel = path
		}
		fmt.Fprintf(stdout, "Created %s\n", rel)
		fmt.Fprintln(stdout, "Next: coursebook validate && coursebook serve")
		return ExitOK
	}
}
