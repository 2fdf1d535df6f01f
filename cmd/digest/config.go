package main

import (
	"time"

	"github.com/alecthomas/kong"
	"github.com/caarlos0/env/v11"
)

// EnvPrefix prefixes every environment variable read by Config.
const EnvPrefix = "DIGEST_"

// Config holds defaults read from the environment. Command-line flags
// override every value.
type Config struct {
	Provider     string        `env:"PROVIDER"      envDefault:"groq"`
	Model        string        `env:"MODEL"`
	Addr         string        `env:"ADDR"          envDefault:"127.0.0.1:8080"`
	FetchTimeout time.Duration `env:"FETCH_TIMEOUT" envDefault:"10s"`
	Extractor    string        `env:"EXTRACTOR"     envDefault:"goquery"`
	StripChrome  bool          `env:"STRIP_CHROME"  envDefault:"false"`
	KeepComments bool          `env:"KEEP_COMMENTS" envDefault:"false"`
	LogLevel     string        `env:"LOG_LEVEL"     envDefault:"info"`
	VerifyTLS    bool          `env:"VERIFY_TLS"    envDefault:"false"`

	// APIKey is a fallback for the summarize command. It is never shown in
	// help output and never logged.
	APIKey string `env:"API_KEY"`
}

// LoadConfig parses Config from environ, or from the process environment
// when environ is nil.
func LoadConfig(environ map[string]string) (Config, error) {
	var cfg Config
	err := env.ParseWithOptions(&cfg, env.Options{
		Prefix:      EnvPrefix,
		Environment: environ,
	})
	return cfg, err
}

// Vars exposes the non-secret defaults to kong struct tags.
func (c Config) Vars() kong.Vars {
	return kong.Vars{
		"provider":      c.Provider,
		"model":         c.Model,
		"addr":          c.Addr,
		"fetch_timeout": c.FetchTimeout.String(),
		"extractor":     c.Extractor,
		"strip_chrome":  boolString(c.StripChrome),
		"keep_comments": boolString(c.KeepComments),
		"log_level":     c.LogLevel,
		"verify_tls":    boolString(c.VerifyTLS),
	}
}

func boolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
