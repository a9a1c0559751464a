package fetch

import (
	"github.com/dtnitsch/opengraph-parser/models"
)

// Job is one URL to fetch. Index keeps output in input order.
type Job struct {
	Index int
	URL   string
}

// Result holds the outcome of a processed job.
type Result struct {
	Index  int
	Output models.PageResult
}

// FinalOutput is the structured output for the entire run.
type FinalOutput struct {
	Status  string              `json:"status" yaml:"status"`
	Results []models.PageResult `json:"results" yaml:"results"`
	Stats   Stats               `json:"stats" yaml:"stats"`
}

// Stats provides summary statistics for the run.
type Stats struct {
	TotalURLs        int            `json:"total_urls" yaml:"total_urls"`
	Successful       int            `json:"successful" yaml:"successful"`
	Rejected         int            `json:"rejected" yaml:"rejected"`
	Failed           int            `json:"failed" yaml:"failed"`
	Schemas          map[string]int `json:"schemas,omitempty" yaml:"schemas,omitempty"`
	TotalTimeSeconds float64        `json:"total_time_seconds" yaml:"total_time_seconds"`
}
