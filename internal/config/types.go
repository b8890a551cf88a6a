package config

// Config is the coursebook configuration file schema.
type Config struct {
	Version    int           `yaml:"version"`
	ContentDir string        `yaml:"content_dir"`
	Site       SiteConfig    `yaml:"site"`
	Results    ResultsConfig `yaml:"results"`
	Log        LogConfig     `yaml:"log"`

	// Root is the directory relative paths are resolved against. It is not
	// read from the file.
	Root string `yaml:"-"`
}

// SiteConfig configures the HTTP site.
type SiteConfig struct {
	Addr                  string   `yaml:"addr"`
	CORSOrigins           []string `yaml:"cors_origins"`
	RequestTimeoutSeconds int      `yaml:"request_timeout_seconds"`
}

// ResultsConfig configures the optional attempt log.
type ResultsConfig struct {
	Driver string `yaml:"driver"`
	DSN    string `yaml:"dsn"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Enabled reports whether attempts should be recorded.
func (r ResultsConfig) Enabled() bool {
	return r.Driver != ""
}
