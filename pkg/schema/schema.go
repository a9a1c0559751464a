// Package schema holds the registry of Open Graph page types and the
// top-level schema each one belongs to.
package schema

import (
	_ "embed"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed types.yaml
var defaultTypes []byte

// Entry pairs a page type with its schema.
type Entry struct {
	Type   string `json:"type" yaml:"type"`
	Schema string `json:"schema" yaml:"schema"`
}

// Table is an immutable type -> schema registry. It is safe for concurrent use.
type Table struct {
	byType  map[string]string
	schemas []string
}

var (
	defaultOnce  sync.Once
	defaultTable *Table
)

// Default returns the built-in table. It is decoded once per process.
func Default() *Table {
	defaultOnce.Do(func() {
		t, err := Load(strings.NewReader(string(defaultTypes)))
		if err != nil {
			panic(fmt.Sprintf("schema: embedded types.yaml is invalid: %v", err))
		}
		defaultTable = t
	})
	return defaultTable
}

// Load builds a table from YAML shaped as `schema: [type, ...]`.
func Load(r io.Reader) (*Table, error) {
	raw := map[string][]string{}
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil && err != io.EOF {
		return nil, fmt.Errorf("failed to decode schema table: %w", err)
	}

	entries := make([]Entry, 0, len(raw))
	for s, types := range raw {
		for _, t := range types {
			entries = append(entries, Entry{Type: t, Schema: s})
		}
		// a schema with no listed types is still a schema
		if len(types) == 0 {
			entries = append(entries, Entry{Type: s, Schema: s})
		}
	}
	return New(entries)
}

// New builds a table from explicit entries. Every schema name becomes a
// type of itself unless an entry says otherwise.
func New(entries []Entry) (*Table, error) {
	t := &Table{byType: make(map[string]string, len(entries))}
	seen := map[string]bool{}

	for _, e := range entries {
		typ := strings.TrimSpace(e.Type)
		s := strings.TrimSpace(e.Schema)
		if typ == "" || s == "" {
			return nil, fmt.Errorf("invalid schema entry %q -> %q", e.Type, e.Schema)
		}
		if prev, ok := t.byType[typ]; ok && prev != s {
			return nil, fmt.Errorf("type %q listed under both %q and %q", typ, prev, s)
		}
		t.byType[typ] = s
		if !seen[s] {
			seen[s] = true
			t.schemas = append(t.schemas, s)
		}
	}

	for _, s := range t.schemas {
		if _, ok := t.byType[s]; !ok {
			t.byType[s] = s
		}
	}
	sort.Strings(t.schemas)
	return t, nil
}

// SchemaFor returns the schema the type belongs to.
func (t *Table) SchemaFor(typ string) (string, bool) {
	if t == nil || typ == "" {
		return "", false
	}
	s, ok := t.byType[typ]
	return s, ok
}

// IsKnownType reports whether the type is registered.
func (t *Table) IsKnownType(typ string) bool {
	_, ok := t.SchemaFor(typ)
	return ok
}

// Schemas returns the sorted schema names.
func (t *Table) Schemas() []string {
	out := make([]string, len(t.schemas))
	copy(out, t.schemas)
	return out
}

// Types returns the sorted types registered under a schema.
func (t *Table) Types(s string) []string {
	var out []string
	for typ, owner := range t.byType {
		if owner == s {
			out = append(out, typ)
		}
	}
	sort.Strings(out)
	return out
}

// Entries returns every registry entry sorted by schema, then type.
func (t *Table) Entries() []Entry {
	var out []Entry
	for _, s := range t.schemas {
		for _, typ := range t.Types(s) {
			out = append(out, Entry{Type: typ, Schema: s})
		}
	}
	return out
}
