package types

import (
	"fmt"
	"strings"

	"github.com/dtnitsch/opengraph-parser/internal/common"
	"github.com/urfave/cli/v2"
)

// TypesAction prints the schema table, optionally narrowed to one schema.
func TypesAction(c *cli.Context) error {
	table, err := common.LoadTable(c)
	if err != nil {
		return cli.Exit(err.Error(), 2)
	}

	only := c.String("schema")
	if only != "" && len(table.Types(only)) == 0 {
		return cli.Exit(fmt.Sprintf("unknown schema: %s", only), 1)
	}

	grouped := map[string][]string{}
	for _, e := range table.Entries() {
		if only == "" || e.Schema == only {
			grouped[e.Schema] = append(grouped[e.Schema], e.Type)
		}
	}

	if format := c.String("format"); format != "" && format != "text" {
		return common.WriteOutput(c.App.Writer, format, grouped)
	}

	w := c.App.Writer
	for _, s := range table.Schemas() {
		if _, ok := grouped[s]; !ok {
			continue
		}
		fmt.Fprintf(w, "%-14s %s\n", s, strings.Join(grouped[s], ", "))
	}
	return nil
}
