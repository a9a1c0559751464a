package opengraph

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Value is a property value: either a single string or an ordered list
// whose items are strings or int64s.
type Value struct {
	text  string
	items []any
	list  bool
}

// Text returns a single-string value.
func Text(s string) Value {
	return Value{text: s}
}

// Strings returns a list value of strings.
func Strings(ss ...string) Value {
	items := make([]any, len(ss))
	for i, s := range ss {
		items[i] = s
	}
	return Value{items: items, list: true}
}

// Ints returns a list value of integers.
func Ints(ns ...int64) Value {
	items := make([]any, len(ns))
	for i, n := range ns {
		items[i] = n
	}
	return Value{items: items, list: true}
}

// IsList reports whether the value holds a sequence.
func (v Value) IsList() bool {
	return v.list
}

// IsZero reports whether the value is an empty string or an empty list.
func (v Value) IsZero() bool {
	if v.list {
		return len(v.items) == 0
	}
	return v.text == ""
}

// Items returns the list items, or the single string as a one-item list.
func (v Value) Items() []any {
	if !v.list {
		if v.text == "" {
			return nil
		}
		return []any{v.text}
	}
	out := make([]any, len(v.items))
	copy(out, v.items)
	return out
}

// Ints returns the items as integers. ok is false if any item is not an integer.
func (v Value) Ints() (out []int64, ok bool) {
	if !v.list {
		return nil, false
	}
	for _, it := range v.items {
		n, isInt := it.(int64)
		if !isInt {
			return nil, false
		}
		out = append(out, n)
	}
	return out, true
}

// String renders single values as-is and lists joined by ",".
func (v Value) String() string {
	if !v.list {
		return v.text
	}
	parts := make([]string, len(v.items))
	for i, it := range v.items {
		parts[i] = itemString(it)
	}
	return strings.Join(parts, ",")
}

// Equal compares kind and contents.
func (v Value) Equal(o Value) bool {
	if v.list != o.list {
		return false
	}
	if !v.list {
		return v.text == o.text
	}
	if len(v.items) != len(o.items) {
		return false
	}
	for i := range v.items {
		if v.items[i] != o.items[i] {
			return false
		}
	}
	return true
}

func (v Value) appendItem(it any) Value {
	if !v.list {
		var items []any
		if v.text != "" {
			items = append(items, v.text)
		}
		return Value{items: append(items, it), list: true}
	}
	items := make([]any, len(v.items), len(v.items)+1)
	copy(items, v.items)
	return Value{items: append(items, it), list: true}
}

func (v Value) MarshalJSON() ([]byte, error) {
	if v.list {
		if v.items == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(v.items)
	}
	return json.Marshal(v.text)
}

func (v Value) MarshalYAML() (interface{}, error) {
	if v.list {
		return v.items, nil
	}
	return v.text, nil
}

func itemString(it any) string {
	switch x := it.(type) {
	case string:
		return x
	case int64:
		return strconv.FormatInt(x, 10)
	default:
		return ""
	}
}
