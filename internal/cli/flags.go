package cli

import (
	"flag"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"coursebook/internal/catalog"
	"coursebook/internal/config"
)

// settingsFlags are the flags shared by commands that read config and content.
type settingsFlags struct {
	configPath string
	contentDir string
}

// register adds the shared flags to fs.
func (f *settingsFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&f.configPath, "config", "", "Path to config file (default: search for .coursebook/config.yml)")
	fs.StringVar(&f.contentDir, "content", "", "Content directory (overrides content_dir)")
}

// resolve loads the effective config with flag overrides applied.
func (f *settingsFlags) resolve(extra ...config.Override) (config.Config, error) {
	overrides := append([]config.Override(nil), extra...)
	if dir := strings.TrimSpace(f.contentDir); dir != "" {
		abs, err := filepath.Abs(dir)
		if err != nil {
			return config.Config{}, fmt.Errorf("resolve content dir: %w", err)
		}
		overrides = append(overrides, func(cfg *config.Config) { cfg.ContentDir = abs })
	}
	return config.Resolve(f.configPath, overrides...)
}

// loadCatalog resolves config and loads the content it points at.
func (f *settingsFlags) loadCatalog(extra ...config.Override) (config.Config, *catalog.Catalog, error) {
	cfg, err := f.resolve(extra...)
	if err != nil {
		return config.Config{}, nil, err
	}
	cat, err := catalog.Load(cfg.ContentPath())
	if err != nil {
		return cfg, nil, err
	}
	return cfg, cat, nil
}

// parseFlags parses args and reports usage problems. Leading positional
// arguments are collected before flag parsing so "take <slug> --check x" works.
func parseFlags(cmd *Command, fs *flag.FlagSet, args []string, stdout, stderr io.Writer) ([]string, int, bool) {
	var positional []string
	for len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		positional = append(positional, args[0])
		args = args[1:]
	}
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			printCommandUsage(cmd, stdout)
			return nil, ExitOK, false
		}
		fmt.Fprintf(stderr, "invalid arguments: %v\n", err)
		printCommandUsage(cmd, stderr)
		return nil, ExitUsage, false
	}
	return append(positional, fs.Args()...), ExitOK, true
}

// rejectArgs reports unexpected positional arguments.
func rejectArgs(cmd *Command, args []string, stderr io.Writer) bool {
	if len(args) == 0 {
		return false
	}
	fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(args, " "))
	printCommandUsage(cmd, stderr)
	return true
}
