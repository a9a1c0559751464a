package models

import (
	"github.com/dtnitsch/opengraph-parser/pkg/enrich"
	"github.com/dtnitsch/opengraph-parser/pkg/opengraph"
)

// Result statuses.
const (
	StatusSuccess = "success"
	// StatusRejected means the document was read but failed the validity mode.
	StatusRejected = "rejected"
	StatusFailed   = "failed"
)

// PageResult is the printed outcome for one document.
type PageResult struct {
	URL        string            `json:"url,omitempty" yaml:"url,omitempty"`
	Source     string            `json:"source,omitempty" yaml:"source,omitempty"`
	Status     string            `json:"status" yaml:"status"`
	Type       string            `json:"type,omitempty" yaml:"type,omitempty"`
	Schema     string            `json:"schema,omitempty" yaml:"schema,omitempty"`
	Properties *opengraph.Object `json:"properties,omitempty" yaml:"properties,omitempty"`
	Enrichment *enrich.Summary   `json:"enrichment,omitempty" yaml:"enrichment,omitempty"`
	StatusCode int               `json:"status_code,omitempty" yaml:"status_code,omitempty"`
	Error      string            `json:"error,omitempty" yaml:"error,omitempty"`
	ErrorType  string            `json:"error_type,omitempty" yaml:"error_type,omitempty"`
}

// NewPageResult fills the status and classification from a parse outcome.
func NewPageResult(obj *opengraph.Object, ok bool) PageResult {
	if !ok || obj == nil {
		return PageResult{Status: StatusRejected, ErrorType: "no_opengraph", Error: "no valid Open Graph metadata"}
	}
	return PageResult{
		Status:     StatusSuccess,
		Type:       obj.Type(),
		Schema:     obj.Schema(),
		Properties: obj,
	}
}
