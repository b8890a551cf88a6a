package config

import "strings"

// Normalize trims string fields and fills defaults derived from other fields.
func Normalize(cfg *Config) {
	cfg.ContentDir = strings.TrimSpace(cfg.ContentDir)
	cfg.Site.Addr = strings.TrimSpace(cfg.Site.Addr)
	origins := make([]string, 0, len(cfg.Site.CORSOrigins))
	for _, origin := range cfg.Site.CORSOrigins {
		if trimmed := strings.TrimSpace(origin); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	cfg.Site.CORSOrigins = origins
	cfg.Results.Driver = strings.ToLower(strings.TrimSpace(cfg.Results.Driver))
	cfg.Results.DSN = strings.TrimSpace(cfg.Results.DSN)
	if cfg.Results.Driver == "duckdb" && cfg.Results.DSN == "" {
		cfg.Results.DSN = DefaultResultsDSN
	}
	cfg.Log.Level = strings.ToLower(strings.TrimSpace(cfg.Log.Level))
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	cfg.Log.Format = strings.ToLower(strings.TrimSpace(cfg.Log.Format))
	if cfg.Log.Format == "" {
		cfg.Log.Format = "text"
	}
}
