package db

import (
	"strconv"

	dbpkg "github.com/dtnitsch/opengraph-parser/pkg/db"
	"github.com/urfave/cli/v2"
)

// ResolveURLFromIDOrURL accepts either a numeric url_id or a URL.
func ResolveURLFromIDOrURL(arg string, database *dbpkg.DB) (int64, string, error) {
	if urlID, err := strconv.ParseInt(arg, 10, 64); err == nil {
		u, err := database.GetURLByID(urlID)
		if err != nil {
			return 0, "", err
		}
		return urlID, u, nil
	}

	urlID, err := database.GetURLID(arg)
	if err != nil {
		return 0, "", err
	}
	return urlID, arg, nil
}

func openDatabase(c *cli.Context) (*dbpkg.DB, error) {
	return dbpkg.Open(c.String("db"))
}
