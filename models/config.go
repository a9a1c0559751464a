// Package models defines data structures for configuration and command output.
package models

import (
	"time"

	"github.com/dtnitsch/opengraph-parser/pkg/opengraph"
)

// FetchConfig holds runtime configuration for fetch operations.
// All values come from CLI flags, not external config files.
type FetchConfig struct {
	URLs        []string
	WorkerCount int
	UserAgent   string
	Timeout     time.Duration
	Mode        opengraph.Mode
	Enrich      bool
	Save        bool
}
