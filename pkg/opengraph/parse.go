package opengraph

import (
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Parse reads an HTML document and returns its Open Graph Object.
// ok is false when the Object fails the configured validity mode; a document
// that cannot be parsed is treated as having no elements.
func Parse(r io.Reader, opts ...Option) (*Object, bool) {
	cfg := newConfig(opts)
	return parse(r, cfg)
}

// ParseString is Parse over a string.
func ParseString(html string, opts ...Option) (*Object, bool) {
	return Parse(strings.NewReader(html), opts...)
}

func parse(r io.Reader, cfg *config) (*Object, bool) {
	var doc *goquery.Document
	if r != nil {
		d, err := goquery.NewDocumentFromReader(r)
		if err != nil {
			cfg.logger.Debug("document parse failed, continuing with no elements", "error", err)
		} else {
			doc = d
		}
	}

	obj := cfg.interpreter().Interpret(MetaElements(doc), cfg.extension)
	if !obj.ValidFor(cfg.mode) {
		cfg.logger.Debug("object rejected", "mode", cfg.mode.String(), "type", obj.Type(), "title", obj.Title(), "url", obj.URL())
		return nil, false
	}
	return obj, true
}
