package opengraph

import (
	"context"
	"log/slog"

	"github.com/dtnitsch/opengraph-parser/pkg/schema"
)

// BodyFetcher retrieves a document body. Any error means "no document".
type BodyFetcher interface {
	GetHtmlBytes(ctx context.Context, url string) ([]byte, error)
}

// Option configures Parse and Fetch.
type Option func(*config)

type config struct {
	mode      Mode
	extension Extension
	prefixes  []string
	table     *schema.Table
	logger    *slog.Logger
	fetcher   BodyFetcher
}

func newConfig(opts []Option) *config {
	cfg := &config{mode: ModeStrict}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.logger == nil {
		cfg.logger = slog.New(slog.DiscardHandler)
	}
	return cfg
}

func (c *config) interpreter() *Interpreter {
	return &Interpreter{Prefixes: c.prefixes, Table: c.table}
}

// WithStrict selects strict (the default) or lenient validity.
func WithStrict(strict bool) Option {
	return func(c *config) {
		if strict {
			c.mode = ModeStrict
		} else {
			c.mode = ModeLenient
		}
	}
}

// WithMode sets the validity mode directly.
func WithMode(m Mode) Option {
	return func(c *config) { c.mode = m }
}

// WithExtension installs a per-element callback.
func WithExtension(ext Extension) Option {
	return func(c *config) { c.extension = ext }
}

// WithPrefixes replaces the recognized property prefixes.
func WithPrefixes(prefixes ...string) Option {
	return func(c *config) { c.prefixes = prefixes }
}

// WithTable classifies objects against table instead of schema.Default().
func WithTable(table *schema.Table) Option {
	return func(c *config) { c.table = table }
}

// WithLogger sets the logger used for debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) { c.logger = logger }
}

// WithFetcher replaces the HTTP transport used by Fetch.
func WithFetcher(f BodyFetcher) Option {
	return func(c *config) { c.fetcher = f }
}
