package db

import (
	"fmt"
	"strings"

	"github.com/dtnitsch/opengraph-parser/internal/common"
	dbpkg "github.com/dtnitsch/opengraph-parser/pkg/db"
	"github.com/urfave/cli/v2"
)

// StoredPage is one saved URL as printed by `db show`.
type StoredPage struct {
	URLID      int64             `json:"url_id" yaml:"url_id"`
	URL        string            `json:"url" yaml:"url"`
	Type       string            `json:"type,omitempty" yaml:"type,omitempty"`
	Schema     string            `json:"schema,omitempty" yaml:"schema,omitempty"`
	Valid      string            `json:"valid,omitempty" yaml:"valid,omitempty"`
	Mode       string            `json:"mode,omitempty" yaml:"mode,omitempty"`
	LastAccess string            `json:"last_access,omitempty" yaml:"last_access,omitempty"`
	StatusCode int               `json:"status_code,omitempty" yaml:"status_code,omitempty"`
	Properties map[string]string `json:"properties,omitempty" yaml:"properties,omitempty"`
}

// QueryAction lists saved URLs by type or schema.
func QueryAction(c *cli.Context) error {
	key, value := "", ""
	switch {
	case c.IsSet("type") && c.IsSet("schema"):
		return cli.Exit("Error: use either --type or --schema, not both", 1)
	case c.IsSet("type"):
		key, value = "type", c.String("type")
	case c.IsSet("schema"):
		key, value = "schema", c.String("schema")
	default:
		return cli.Exit("Error: --type or --schema is required", 1)
	}

	database, err := openDatabase(c)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	urls, err := database.QueryURLs(dbpkg.NamespaceClass, key, value)
	if err != nil {
		return err
	}

	w := c.App.Writer
	if len(urls) == 0 {
		fmt.Fprintf(w, "No URLs with %s %q\n", key, value)
		return nil
	}

	fmt.Fprintf(w, "%-6s %-30s %s\n", "ID", "Domain", "URL")
	fmt.Fprintln(w, strings.Repeat("-", 80))
	for _, u := range urls {
		fmt.Fprintf(w, "%-6d %-30s %s\n", u.URLID, u.Domain, u.OriginalURL)
	}
	fmt.Fprintf(w, "\nTotal: %d URLs\n", len(urls))
	return nil
}

// ShowAction prints the stored properties of one URL.
func ShowAction(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.Exit("Usage: ogp db show URL|ID", 1)
	}

	database, err := openDatabase(c)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	urlID, rawURL, err := ResolveURLFromIDOrURL(c.Args().First(), database)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	page := StoredPage{URLID: urlID, URL: rawURL}

	class, err := database.GetURLMetadata(urlID, dbpkg.NamespaceClass)
	if err != nil {
		return err
	}
	for _, kv := range class {
		switch kv.Key {
		case "type":
			page.Type = kv.Value
		case "schema":
			page.Schema = kv.Value
		case "valid":
			page.Valid = kv.Value
		case "mode":
			page.Mode = kv.Value
		}
	}

	props, err := database.GetURLMetadata(urlID, dbpkg.NamespaceOpenGraph)
	if err != nil {
		return err
	}
	if len(props) > 0 {
		page.Properties = make(map[string]string, len(props))
		for _, kv := range props {
			page.Properties[kv.Key] = kv.Value
		}
	}

	last, err := database.GetLastAccess(urlID)
	if err != nil {
		return err
	}
	if last != nil {
		page.LastAccess = last.AccessedAt.Format("2006-01-02 15:04:05")
		page.StatusCode = last.StatusCode
	}

	return common.WriteOutput(c.App.Writer, c.String("format"), page)
}
