package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"coursebook/internal/config"
	"coursebook/internal/site"
)

// serveSite is a test seam for running the site server.
var serveSite = site.Serve

// signalContext is a test seam for the serve lifetime.
var signalContext = func() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

// runServe builds the handler for the serve command.
func runServe(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		var settings settingsFlags
		settings.register(fs)
		addr := fs.String("addr", "", "Address to listen on (overrides site.addr)")
		rest, code, ok := parseFlags(cmd, fs, args, stdout, stderr)
		if !ok {
			return code
		}
		if rejectArgs(cmd, rest, stderr) {
			return ExitUsage
		}

		cfg, cat, err := settings.loadCatalog(func(cfg *config.Config) {
			if *addr != "" {
				cfg.Site.Addr = *addr
			}
		})
		if err != nil {
			fmt.Fprintf(stderr, "Load failed:\n%s\n", err.Error())
			return ExitError
		}

		logger := config.NewLogger(cfg.Log, stderr)
		ctx, cancel := signalContext()
		defer cancel()

		siteCfg := site.Config{
			Addr:           cfg.Site.Addr,
			Catalog:        cat,
			Logger:         logger,
			CORSOrigins:    cfg.Site.CORSOrigins,
			RequestTimeout: time.Duration(cfg.Site.RequestTimeoutSeconds) * time.Second,
			Listening: func(bound string) {
				fmt.Fprintf(stdout, "Serving %d pages at http://%s\n", cat.Len(), bound)
			},
		}
		logger.WithField("addr", siteCfg.Addr).WithField("pages", cat.Len()).Info("starting site")
		if err := serveSite(ctx, siteCfg); err != nil {
			fmt.Fprintf(stderr, "Server error: %v\n", err)
			return ExitError
		}
		return ExitOK
	}
}
