package common

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/dtnitsch/opengraph-parser/pkg/opengraph"
	"github.com/dtnitsch/opengraph-parser/pkg/schema"
	"github.com/goccy/go-json"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"
)

// WriteOutput encodes v to w as "json" (indented) or "yaml".
func WriteOutput(w io.Writer, format string, v interface{}) error {
	switch strings.ToLower(format) {
	case "", "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to encode JSON: %w", err)
		}
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to encode YAML: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown output format: %s (use json or yaml)", format)
	}
	return nil
}

// NewLogger builds the stderr JSON logger from the global --quiet/--verbose flags.
func NewLogger(c *cli.Context) *slog.Logger {
	logLevel := slog.LevelInfo
	switch {
	case c.Bool("quiet"):
		logLevel = slog.LevelError
	case c.Bool("verbose"):
		logLevel = slog.LevelDebug
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
}

// LoadTable returns the table named by --schema-file, or schema.Default().
func LoadTable(c *cli.Context) (*schema.Table, error) {
	path := c.String("schema-file")
	if path == "" {
		return schema.Default(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open schema file: %w", err)
	}
	defer f.Close()
	return schema.Load(f)
}

// ParseOptions turns the shared parse flags into opengraph options.
func ParseOptions(c *cli.Context, logger *slog.Logger) ([]opengraph.Option, error) {
	table, err := LoadTable(c)
	if err != nil {
		return nil, err
	}

	opts := []opengraph.Option{
		opengraph.WithStrict(!c.Bool("lenient")),
		opengraph.WithTable(table),
		opengraph.WithLogger(logger),
	}
	if prefixes := c.StringSlice("prefix"); len(prefixes) > 0 {
		opts = append(opts, opengraph.WithPrefixes(prefixes...))
	}
	if c.Bool("facebook") {
		opts = append(opts, opengraph.WithExtension(opengraph.FacebookExtension))
	}
	return opts, nil
}
