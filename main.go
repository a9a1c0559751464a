package main

import (
	"fmt"
	"os"
	"time"

	dbcmd "github.com/dtnitsch/opengraph-parser/internal/db"
	"github.com/dtnitsch/opengraph-parser/internal/fetch"
	"github.com/dtnitsch/opengraph-parser/internal/parse"
	"github.com/dtnitsch/opengraph-parser/internal/types"
	"github.com/dtnitsch/opengraph-parser/pkg/fetcher"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// parseFlags are shared by every command that interprets documents.
func parseFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:  "lenient",
			Usage: "accept objects with only a title (default requires type, title and url)",
		},
		&cli.StringSliceFlag{
			Name:  "prefix",
			Usage: "property prefix to recognize, repeatable (default og:)",
		},
		&cli.BoolFlag{
			Name:  "facebook",
			Usage: "also capture fb: properties (fb:admins becomes a list of ids)",
		},
		&cli.BoolFlag{
			Name:  "enrich",
			Usage: "add a readability summary next to the Open Graph properties",
		},
		&cli.StringFlag{
			Name:    "format",
			Aliases: []string{"f"},
			Value:   "json",
			Usage:   "output format: json or yaml",
		},
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "ogp",
		Usage: "read Open Graph metadata from web pages",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "quiet", Aliases: []string{"q"}, Usage: "only log errors"},
			&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}, Usage: "log debug output"},
			&cli.StringFlag{Name: "schema-file", Usage: "YAML schema table replacing the built-in one"},
		},
		Commands: []*cli.Command{
			{
				Name:      "parse",
				Usage:     "parse a local HTML document",
				ArgsUsage: "FILE|-",
				Flags: append(parseFlags(),
					&cli.StringFlag{Name: "base-url", Usage: "document URL used by --enrich"},
				),
				Action: parse.ParseAction,
			},
			{
				Name:      "fetch",
				Usage:     "fetch URLs and parse their Open Graph metadata",
				ArgsUsage: "[URL...]",
				Flags: append(parseFlags(),
					&cli.StringFlag{Name: "urls", Usage: "comma separated URLs"},
					&cli.IntFlag{Name: "workers", Value: 4, Usage: "concurrent fetches"},
					&cli.StringFlag{Name: "user-agent", Value: fetcher.DefaultUserAgent, Usage: "User-Agent header"},
					&cli.DurationFlag{Name: "timeout", Value: 30 * time.Second, Usage: "per request timeout, 0 disables"},
					&cli.BoolFlag{Name: "save", Usage: "record accesses and properties in the database"},
					&cli.StringFlag{Name: "db", Usage: "database path (default next to the binary)"},
				),
				Action: fetch.FetchAction,
			},
			{
				Name:  "db",
				Usage: "inspect saved results",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "db", Usage: "database path (default next to the binary)"},
				},
				Subcommands: []*cli.Command{
					{
						Name:  "query",
						Usage: "list saved URLs by type or schema",
						Flags: []cli.Flag{
							&cli.StringFlag{Name: "type", Usage: "exact og:type, e.g. video.movie"},
							&cli.StringFlag{Name: "schema", Usage: "schema, e.g. product"},
						},
						Action: dbcmd.QueryAction,
					},
					{
						Name:      "show",
						Usage:     "print the saved properties of one URL",
						ArgsUsage: "URL|ID",
						Flags: []cli.Flag{
							&cli.StringFlag{Name: "format", Aliases: []string{"f"}, Value: "json", Usage: "output format: json or yaml"},
						},
						Action: dbcmd.ShowAction,
					},
				},
			},
			{
				Name:  "types",
				Usage: "print the schema table",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "schema", Usage: "only this schema"},
					&cli.StringFlag{Name: "format", Aliases: []string{"f"}, Value: "text", Usage: "text, json or yaml"},
				},
				Action: types.TypesAction,
			},
		},
	}
}
