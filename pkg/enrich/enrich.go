package enrich

import (
	"bytes"
	"fmt"
	"net/url"

	"github.com/go-shiori/go-readability"
)

// Summary is what readability can tell about a page without Open Graph tags.
// It is reported next to an Object, never merged into it.
type Summary struct {
	Title         string `json:"title,omitempty" yaml:"title,omitempty"`
	Excerpt       string `json:"excerpt,omitempty" yaml:"excerpt,omitempty"`
	Byline        string `json:"byline,omitempty" yaml:"byline,omitempty"`
	SiteName      string `json:"site_name,omitempty" yaml:"site_name,omitempty"`
	Image         string `json:"image,omitempty" yaml:"image,omitempty"`
	Favicon       string `json:"favicon,omitempty" yaml:"favicon,omitempty"`
	PublishedTime string `json:"published_time,omitempty" yaml:"published_time,omitempty"`
	Length        int    `json:"length,omitempty" yaml:"length,omitempty"`
}

// FromHTML runs readability over html. rawURL may be empty for local files.
func FromHTML(rawURL string, html []byte) (*Summary, error) {
	pageURL := &url.URL{}
	if rawURL != "" {
		u, err := url.Parse(rawURL)
		if err != nil {
			return nil, fmt.Errorf("failed to parse URL: %w", err)
		}
		pageURL = u
	}

	parser := readability.NewParser()
	article, err := parser.Parse(bytes.NewReader(html), pageURL)
	if err != nil {
		return nil, fmt.Errorf("failed to extract article: %w", err)
	}

	s := &Summary{
		Title:    normalizeText(article.Title),
		Excerpt:  normalizeText(article.Excerpt),
		Byline:   normalizeText(article.Byline),
		SiteName: normalizeText(article.SiteName),
		Image:    article.Image,
		Favicon:  article.Favicon,
		Length:   article.Length,
	}
	if article.PublishedTime != nil {
		s.PublishedTime = article.PublishedTime.Format("2006-01-02")
	}
	return s, nil
}
