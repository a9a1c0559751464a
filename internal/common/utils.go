package common

import (
	"net/url"
	"regexp"
	"strings"
)

var (
	markdownLinkPattern = regexp.MustCompile(`^\[.*?\]\((https?://[^\)]+)\)$`)
	urlPattern          = regexp.MustCompile(`^https?://[a-zA-Z0-9][-a-zA-Z0-9.]*[a-zA-Z0-9](:[0-9]+)?(/[^\s]*)?$`)
)

// SanitizeURL cleans common copy-paste damage from a URL: surrounding
// whitespace, markdown link syntax, and stray leading/trailing punctuation.
func SanitizeURL(rawURL string) string {
	cleaned := strings.TrimSpace(rawURL)

	// [text](url) -> url
	if matches := markdownLinkPattern.FindStringSubmatch(cleaned); len(matches) > 1 {
		cleaned = matches[1]
	}

	cleaned = strings.TrimRight(cleaned, ",.)}]\"'>;")
	cleaned = strings.TrimLeft(cleaned, "([<\"'")

	return strings.TrimSpace(cleaned)
}

// SanitizeAndValidateURLs returns the cleaned valid URLs and the raw inputs
// that were still invalid after cleaning.
func SanitizeAndValidateURLs(urls []string) ([]string, []string) {
	sanitized := make([]string, 0, len(urls))
	var invalidURLs []string

	for _, rawURL := range urls {
		cleaned := SanitizeURL(rawURL)
		if !validURL(cleaned) {
			invalidURLs = append(invalidURLs, rawURL)
			continue
		}
		sanitized = append(sanitized, cleaned)
	}

	return sanitized, invalidURLs
}

func validURL(s string) bool {
	// spaces must be pre-encoded as %20
	if s == "" || strings.Contains(s, " ") || !urlPattern.MatchString(s) {
		return false
	}
	parsed, err := url.Parse(s)
	if err != nil {
		return false
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return false
	}
	return parsed.Host != "" && !strings.ContainsAny(parsed.Host, "{}[]<>\"'")
}
