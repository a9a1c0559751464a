package opengraph

import (
	"bytes"
	"context"

	"github.com/dtnitsch/opengraph-parser/pkg/fetcher"
)

// FetchResult carries the outcome of FetchDetailed.
type FetchResult struct {
	Object *Object
	OK     bool
	// Body is the retrieved document, nil on transport failure.
	Body []byte
	// Err is the transport error, if the document could not be retrieved.
	Err error
}

// Fetch retrieves url and parses it. Transport failures of any kind are
// reported only as ok == false.
func Fetch(ctx context.Context, url string, opts ...Option) (*Object, bool) {
	res := FetchDetailed(ctx, url, opts...)
	return res.Object, res.OK
}

// FetchDetailed is Fetch that also returns the transport error, for callers
// that record fetch attempts.
func FetchDetailed(ctx context.Context, url string, opts ...Option) FetchResult {
	cfg := newConfig(opts)
	if cfg.fetcher == nil {
		cfg.fetcher = fetcher.NewFetcher()
	}

	body, err := cfg.fetcher.GetHtmlBytes(ctx, url)
	if err != nil {
		cfg.logger.Debug("fetch failed", "url", url, "error", err)
		return FetchResult{Err: err}
	}

	obj, ok := parse(bytes.NewReader(body), cfg)
	return FetchResult{Object: obj, OK: ok, Body: body}
}
