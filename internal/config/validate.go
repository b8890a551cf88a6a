package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Issue captures a validation problem with a config field.
type Issue struct {
	Field   string
	Message string
}

// ValidationError aggregates config validation issues.
type ValidationError struct {
	Issues []Issue
}

// Error renders validation errors as a multi-line string.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return "config validation failed"
	}
	lines := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		lines = append(lines, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return strings.Join(lines, "\n")
}

// Validate checks a normalized config.
func Validate(cfg *Config) error {
	var issues []Issue
	add := func(field, message string) {
		issues = append(issues, Issue{Field: field, Message: message})
	}

	if cfg.Version == 0 {
		add("version", "is required")
	} else if cfg.Version != 1 {
		add("version", fmt.Sprintf("unsupported version %d", cfg.Version))
	}

	if cfg.ContentDir == "" {
		add("content_dir", "is required")
	} else {
		info, err := os.Stat(cfg.ContentPath())
		if err != nil {
			add("content_dir", fmt.Sprintf("path not found at %q", cfg.ContentDir))
		} else if !info.IsDir() {
			add("content_dir", fmt.Sprintf("path %q is not a directory", cfg.ContentDir))
		}
	}

	if cfg.Site.Addr == "" {
		add("site.addr", "is required")
	}
	if cfg.Site.RequestTimeoutSeconds < 0 {
		add("site.request_timeout_seconds", "must be >= 0")
	}

	switch cfg.Results.Driver {
	case "":
	case "duckdb", "sqlite", "postgres":
		if cfg.Results.DSN == "" {
			add("results.dsn", fmt.Sprintf("is required for driver %q", cfg.Results.Driver))
		}
	default:
		add("results.driver", fmt.Sprintf("unsupported driver %q (expected duckdb|sqlite|postgres)", cfg.Results.Driver))
	}

	if _, err := logrus.ParseLevel(cfg.Log.Level); err != nil {
		add("log.level", fmt.Sprintf("unknown level %q", cfg.Log.Level))
	}
	switch cfg.Log.Format {
	case "text", "json":
	default:
		add("log.format", fmt.Sprintf("unsupported format %q (expected text|json)", cfg.Log.Format))
	}

	if len(issues) > 0 {
		return &ValidationError{Issues: issues}
	}
	return nil
}
