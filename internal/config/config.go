// Package config loads tokenizer settings from the environment and command line flags.
package config

import (
	"errors"
	"flag"
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/kerem-kaynak/url-tokenizer/pkg/tokenizer"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

var (
	ErrInvalidFormat    = errors.New("invalid output format")
	ErrInvalidWorkers   = errors.New("workers must be positive")
	ErrInvalidCacheSize = errors.New("cache size must be positive")
)

// Config holds settings shared by the command line tools.
type Config struct {
	Cache         bool   `env:"TOKENIZER_CACHE" envDefault:"true"`
	CacheSize     int    `env:"TOKENIZER_CACHE_SIZE" envDefault:"10000"`
	Keywords      bool   `env:"TOKENIZER_KEYWORDS" envDefault:"false"`
	Language      string `env:"TOKENIZER_LANGUAGE" envDefault:"english"`
	StopwordsPath string `env:"TOKENIZER_STOPWORDS"`
	Workers       int    `env:"TOKENIZER_WORKERS" envDefault:"4"`
	Format        string `env:"TOKENIZER_FORMAT" envDefault:"text"`
	LogLevel      string `env:"LOG_LEVEL" envDefault:"info"`
}

// Load reads an optional .env file, then parses the environment.
func Load() (*Config, error) {
	// The .env file is optional.
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ParseFlags lets command line flags override environment values.
// args excludes the program name.
func (c *Config) ParseFlags(fs *flag.FlagSet, args []string) error {
	fs.BoolVar(&c.Cache, "cache", c.Cache, "Cache results per input")
	fs.IntVar(&c.CacheSize, "cache-size", c.CacheSize, "Maximum number of cached results")
	fs.BoolVar(&c.Keywords, "keywords", c.Keywords, "Extract stemmed keywords")
	fs.StringVar(&c.Language, "lang", c.Language, "Snowball stemmer language")
	fs.StringVar(&c.StopwordsPath, "stopwords", c.StopwordsPath, "Stopword list (one word per line)")
	fs.IntVar(&c.Workers, "workers", c.Workers, "Concurrent workers in batch mode")
	fs.StringVar(&c.Format, "format", c.Format, "Output format: text or json")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "Log level")

	if err := fs.Parse(args); err != nil {
		return err
	}
	return c.Validate()
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	switch c.Format {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidFormat, c.Format)
	}
	if c.Workers <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidWorkers, c.Workers)
	}
	if c.Cache && c.CacheSize <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidCacheSize, c.CacheSize)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// Logger returns a logrus logger at the configured level.
func (c *Config) Logger() *logrus.Logger {
	log := logrus.New()
	if level, err := logrus.ParseLevel(c.LogLevel); err == nil {
		log.SetLevel(level)
	}
	return log
}

// TokenizerConfig maps the settings onto tokenizer.Config.
func (c *Config) TokenizerConfig(log logrus.FieldLogger) tokenizer.Config {
	return tokenizer.Config{
		Cache:         c.Cache,
		CacheSize:     c.CacheSize,
		Keywords:      c.Keywords,
		Language:      c.Language,
		StopwordsPath: c.StopwordsPath,
		Logger:        log,
	}
}
