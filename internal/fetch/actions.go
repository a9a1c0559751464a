package fetch

import (
	"fmt"
	"strings"
	"time"

	"github.com/dtnitsch/opengraph-parser/internal/common"
	"github.com/dtnitsch/opengraph-parser/models"
	"github.com/dtnitsch/opengraph-parser/pkg/db"
	"github.com/dtnitsch/opengraph-parser/pkg/opengraph"
	"github.com/urfave/cli/v2"
)

func FetchAction(c *cli.Context) error {
	logger := common.NewLogger(c)
	startTime := time.Now()

	rawURLs := c.Args().Slice()
	if c.IsSet("urls") {
		rawURLs = append(rawURLs, strings.Split(c.String("urls"), ",")...)
	}
	if len(rawURLs) == 0 {
		return cli.Exit(`Error: No URLs provided

Usage:
  ogp fetch --urls "https://example.com,https://example.org"
  ogp fetch https://example.com

Need help? Run: ogp fetch --help`, 1)
	}

	// Sanitize and validate all URLs before processing (fail fast)
	sanitizedURLs, invalidURLs := common.SanitizeAndValidateURLs(rawURLs)
	if len(invalidURLs) > 0 {
		var b strings.Builder
		fmt.Fprintf(&b, "Error: %d URL(s) are malformed (even after cleanup):\n", len(invalidURLs))
		for _, badURL := range invalidURLs {
			fmt.Fprintf(&b, "  - %s\n", badURL)
		}
		b.WriteString("\nNote: URLs are auto-cleaned (whitespace trimmed, trailing punctuation removed, markdown links extracted)")
		return cli.Exit(b.String(), 1)
	}

	config := &models.FetchConfig{
		URLs:        sanitizedURLs,
		WorkerCount: c.Int("workers"),
		UserAgent:   c.String("user-agent"),
		Timeout:     c.Duration("timeout"),
		Mode:        opengraph.ModeStrict,
		Enrich:      c.Bool("enrich"),
		Save:        c.Bool("save"),
	}

	if c.Bool("lenient") {
		config.Mode = opengraph.ModeLenient
	}

	opts, err := common.ParseOptions(c, logger)
	if err != nil {
		return cli.Exit(err.Error(), 2)
	}

	var database *db.DB
	if config.Save {
		database, err = db.Open(c.String("db"))
		if err != nil {
			logger.Error("failed to open database", "error", err)
			return cli.Exit(err.Error(), 2)
		}
		defer database.Close()
		logger.Info("Saving results", "db", database.Path())
	}

	results := run(c.Context, logger, config, opts, database)

	final := FinalOutput{
		Results: results,
		Stats:   summarize(results, time.Since(startTime)),
	}
	switch {
	case final.Stats.Successful == len(results):
		final.Status = models.StatusSuccess
	case final.Stats.Successful == 0:
		final.Status = models.StatusFailed
	default:
		final.Status = "partial"
	}

	if err := common.WriteOutput(c.App.Writer, c.String("format"), final); err != nil {
		return err
	}

	if final.Status != models.StatusSuccess {
		return cli.Exit("", 1)
	}
	return nil
}

func summarize(results []models.PageResult, elapsed time.Duration) Stats {
	stats := Stats{
		TotalURLs:        len(results),
		TotalTimeSeconds: elapsed.Seconds(),
	}
	for _, r := range results {
		switch r.Status {
		case models.StatusSuccess:
			stats.Successful++
			if r.Schema != "" {
				if stats.Schemas == nil {
					stats.Schemas = map[string]int{}
				}
				stats.Schemas[r.Schema]++
			}
		case models.StatusRejected:
			stats.Rejected++
		default:
			stats.Failed++
		}
	}
	return stats
}
