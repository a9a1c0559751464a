package opengraph

import (
	"iter"
	"strings"

	"github.com/dtnitsch/opengraph-parser/pkg/schema"
)

// DefaultPrefix is the property prefix recognized when none is configured.
const DefaultPrefix = "og:"

// Extension is called once per element, after the default rule, with the
// Object under construction. Writes it makes end up in the parse result.
type Extension func(el Element, obj *Object)

// Interpreter folds document elements into an Object.
type Interpreter struct {
	// Prefixes are matched case-insensitively against the property
	// attribute. Empty means DefaultPrefix.
	Prefixes []string
	// Table classifies the resulting Object. Nil means schema.Default().
	Table *schema.Table
}

// Interpret applies the default property rule and then ext to every element,
// in order, and returns the populated Object.
func (in *Interpreter) Interpret(elements iter.Seq[Element], ext Extension) *Object {
	obj := NewObject(in.Table)
	if elements == nil {
		return obj
	}

	prefixes := in.Prefixes
	if len(prefixes) == 0 {
		prefixes = []string{DefaultPrefix}
	}

	for el := range elements {
		if key, ok := propertyKey(el, prefixes); ok {
			content, _ := el.Attr("content")
			obj.Set(key, Text(content))
		}
		if ext != nil {
			ext(el, obj)
		}
	}
	return obj
}

// propertyKey returns the flattened key of an element whose property
// attribute carries one of prefixes.
func propertyKey(el Element, prefixes []string) (string, bool) {
	prop, ok := el.Attr("property")
	if !ok {
		return "", false
	}
	prop = strings.TrimSpace(prop)

	for _, p := range prefixes {
		if len(prop) < len(p) || !strings.EqualFold(prop[:len(p)], p) {
			continue
		}
		key := NormalizeKey(prop[len(p):])
		if key == "" {
			return "", false
		}
		return key, true
	}
	return "", false
}
