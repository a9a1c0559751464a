package parse

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/dtnitsch/opengraph-parser/internal/common"
	"github.com/dtnitsch/opengraph-parser/models"
	"github.com/dtnitsch/opengraph-parser/pkg/enrich"
	"github.com/dtnitsch/opengraph-parser/pkg/opengraph"
	"github.com/urfave/cli/v2"
)

// ParseAction reads a local document (or stdin for "-") and prints its
// Open Graph object.
func ParseAction(c *cli.Context) error {
	logger := common.NewLogger(c)

	if c.NArg() != 1 {
		return cli.Exit("Usage: ogp parse [flags] FILE (use - for stdin)", 1)
	}
	source := c.Args().First()

	html, err := readSource(c, source)
	if err != nil {
		return cli.Exit(err.Error(), 2)
	}

	opts, err := common.ParseOptions(c, logger)
	if err != nil {
		return cli.Exit(err.Error(), 2)
	}

	obj, ok := opengraph.Parse(bytes.NewReader(html), opts...)
	out := models.NewPageResult(obj, ok)
	out.Source = source
	if ok {
		out.URL = obj.URL()
	}
	logger.Debug("Parsed document", "source", source, "status", out.Status, "type", out.Type)

	if c.Bool("enrich") {
		summary, err := enrich.FromHTML(c.String("base-url"), html)
		if err != nil {
			logger.Warn("Error enriching page", "source", source, "error", err)
		} else {
			out.Enrichment = summary
		}
	}

	if err := common.WriteOutput(c.App.Writer, c.String("format"), out); err != nil {
		return err
	}
	if !ok {
		return cli.Exit("", 1)
	}
	return nil
}

func readSource(c *cli.Context, source string) ([]byte, error) {
	var r io.Reader
	if source == "-" {
		r = c.App.Reader
		if r == nil {
			r = os.Stdin
		}
	} else {
		f, err := os.Open(source)
		if err != nil {
			return nil, fmt.Errorf("failed to open %s: %w", source, err)
		}
		defer f.Close()
		r = f
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", source, err)
	}
	return data, nil
}
