package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables that override file settings.
const (
	EnvAddr          = "COURSEBOOK_ADDR"
	EnvContentDir    = "COURSEBOOK_CONTENT_DIR"
	EnvResultsDriver = "COURSEBOOK_RESULTS_DRIVER"
	EnvResultsDSN    = "COURSEBOOK_RESULTS_DSN"
	EnvLogLevel      = "COURSEBOOK_LOG_LEVEL"
)

// Default returns the configuration used when no file exists.
func Default(root string) Config {
	return Config{
		Version:    1,
		ContentDir: DefaultContentDir,
		Site: SiteConfig{
			Addr:                  DefaultAddr,
			RequestTimeoutSeconds: 30,
		},
		Log:  LogConfig{Level: "info", Format: "text"},
		Root: root,
	}
}

// Load reads, parses, normalizes, and validates a config file.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Parse(data, RootFromConfigPath(path))
	if err != nil {
		return Config{}, err
	}
	Normalize(&cfg)
	if err := Validate(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Parse decodes YAML config data over the defaults.
func Parse(data []byte, root string) (Config, error) {
	cfg := Default(root)
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	cfg.Root = root
	return cfg, nil
}

// Override adjusts a config after file and environment values are applied.
type Override func(*Config)

// Resolve finds and loads the effective configuration. An explicit path must
// exist; otherwise the nearest .coursebook/config.yml above the working
// directory is used, falling back to defaults. A .env file in the root, then
// the process environment, then overrides replace file values.
func Resolve(explicitPath string, overrides ...Override) (Config, error) {
	path := strings.TrimSpace(explicitPath)
	if path == "" {
		found, err := FindConfigPath("")
		if err != nil {
			return Config{}, err
		}
		path = found
	}

	var cfg Config
	if path == "" {
		wd, err := os.Getwd()
		if err != nil {
			return Config{}, fmt.Errorf("get working directory: %w", err)
		}
		cfg = Default(wd)
	} else {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		abs, err := filepath.Abs(path)
		if err != nil {
			return Config{}, fmt.Errorf("resolve config path: %w", err)
		}
		parsed, err := Parse(data, RootFromConfigPath(abs))
		if err != nil {
			return Config{}, err
		}
		cfg = parsed
	}

	dotenv, err := readDotEnv(filepath.Join(cfg.Root, ".env"))
	if err != nil {
		return Config{}, err
	}
	ApplyEnv(&cfg, func(key string) (string, bool) {
		if value, ok := os.LookupEnv(key); ok {
			return value, true
		}
		value, ok := dotenv[key]
		return value, ok
	})
	for _, override := range overrides {
		if override != nil {
			override(&cfg)
		}
	}
	Normalize(&cfg)
	if err := Validate(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ApplyEnv overrides config fields from lookup.
func ApplyEnv(cfg *Config, lookup func(string) (string, bool)) {
	if value, ok := lookup(EnvAddr); ok {
		cfg.Site.Addr = value
	}
	if value, ok := lookup(EnvContentDir); ok {
		cfg.ContentDir = value
	}
	if value, ok := lookup(EnvResultsDriver); ok {
		cfg.Results.Driver = value
	}
	if value, ok := lookup(EnvResultsDSN); ok {
		cfg.Results.DSN = value
	}
	if value, ok := lookup(EnvLogLevel); ok {
		cfg.Log.Level = value
	}
}

// readDotEnv reads a .env file if present.
func readDotEnv(path string) (map[string]string, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	values, err := godotenv.Read(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return values, nil
}
