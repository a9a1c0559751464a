package opengraph

import (
	"bytes"
	"encoding/json"
	"strings"
	"unicode"

	"github.com/dtnitsch/opengraph-parser/pkg/schema"
	"gopkg.in/yaml.v3"
)

// Well-known property keys.
const (
	KeyTitle       = "title"
	KeyType        = "type"
	KeyURL         = "url"
	KeyDescription = "description"
	KeyImage       = "image"
	KeySiteName    = "site_name"
)

// Mode selects the validity policy applied to a parsed Object.
type Mode int

const (
	// ModeStrict requires a known type, a title and a url.
	ModeStrict Mode = iota
	// ModeLenient requires only a title.
	ModeLenient
)

func (m Mode) String() string {
	if m == ModeLenient {
		return "lenient"
	}
	return "strict"
}

// Object is the Open Graph metadata of one document: an ordered property
// mapping plus the schema table used to classify it.
//
// Type, schema and validity are derived from the current properties on every
// call, so edits made after parsing are reflected immediately. The zero Object
// is empty and classified against schema.Default().
type Object struct {
	keys   []string
	values map[string]Value
	table  *schema.Table
}

// NewObject returns an empty Object classified against table.
// A nil table means schema.Default().
func NewObject(table *schema.Table) *Object {
	if table == nil {
		table = schema.Default()
	}
	return &Object{
		values: map[string]Value{},
		table:  table,
	}
}

// NormalizeKey flattens a property name: trimmed, lower-cased, with ':' and
// '-' replaced by '_'. "video:width" becomes "video_width".
func NormalizeKey(key string) string {
	key = strings.ToLower(strings.TrimSpace(key))
	return strings.NewReplacer(":", "_", "-", "_").Replace(key)
}

// Get returns the value stored under key.
func (o *Object) Get(key string) (Value, bool) {
	v, ok := o.values[NormalizeKey(key)]
	return v, ok
}

// Text returns the string form of key, or "" when absent.
func (o *Object) Text(key string) string {
	v, _ := o.Get(key)
	return v.String()
}

// Set stores v under key, replacing any earlier value.
func (o *Object) Set(key string, v Value) {
	k := NormalizeKey(key)
	if k == "" {
		return
	}
	if o.values == nil {
		o.values = map[string]Value{}
	}
	if _, ok := o.values[k]; !ok {
		o.keys = append(o.keys, k)
	}
	o.values[k] = v
}

// SetText stores a single string under key.
func (o *Object) SetText(key, s string) {
	o.Set(key, Text(s))
}

// Append adds s to the list stored under key, turning an existing single
// value into the first list item.
func (o *Object) Append(key, s string) {
	v, _ := o.Get(key)
	o.Set(key, v.appendItem(s))
}

// Delete removes key.
func (o *Object) Delete(key string) {
	k := NormalizeKey(key)
	if _, ok := o.values[k]; !ok {
		return
	}
	delete(o.values, k)
	for i, existing := range o.keys {
		if existing == k {
			o.keys = append(o.keys[:i], o.keys[i+1:]...)
			break
		}
	}
}

// Keys returns the property keys in first-write order.
func (o *Object) Keys() []string {
	out := make([]string, len(o.keys))
	copy(out, o.keys)
	return out
}

// Len returns the number of properties.
func (o *Object) Len() int {
	return len(o.keys)
}

func (o *Object) Title() string       { return o.Text(KeyTitle) }
func (o *Object) Type() string        { return o.Text(KeyType) }
func (o *Object) URL() string         { return o.Text(KeyURL) }
func (o *Object) Description() string { return o.Text(KeyDescription) }
func (o *Object) Image() string       { return o.Text(KeyImage) }
func (o *Object) SiteName() string    { return o.Text(KeySiteName) }

func (o *Object) SetTitle(s string)       { o.SetText(KeyTitle, s) }
func (o *Object) SetType(s string)        { o.SetText(KeyType, s) }
func (o *Object) SetURL(s string)         { o.SetText(KeyURL, s) }
func (o *Object) SetDescription(s string) { o.SetText(KeyDescription, s) }
func (o *Object) SetImage(s string)       { o.SetText(KeyImage, s) }
func (o *Object) SetSiteName(s string)    { o.SetText(KeySiteName, s) }

// Schema returns the top-level category of Type, or "" if the type is unknown.
func (o *Object) Schema() string {
	s, _ := o.schemaTable().SchemaFor(o.Type())
	return s
}

func (o *Object) schemaTable() *schema.Table {
	if o.table == nil {
		return schema.Default()
	}
	return o.table
}

// Is reports whether the object's type or schema equals name. Predicate
// spellings are accepted: "IsTvShow", "isTvShow" and "tv_show" are the same.
// Names the schema table does not know are always false.
func (o *Object) Is(name string) bool {
	n := PredicateName(name)
	if !o.schemaTable().IsKnownType(n) {
		return false
	}
	typ := o.Type()
	if typ == "" {
		return false
	}
	return typ == n || o.Schema() == n
}

// Valid reports strict validity.
func (o *Object) Valid() bool {
	return o.ValidFor(ModeStrict)
}

// ValidFor reports validity under mode.
func (o *Object) ValidFor(mode Mode) bool {
	if o.Title() == "" {
		return false
	}
	if mode == ModeLenient {
		return true
	}
	typ := o.Type()
	return typ != "" && o.schemaTable().IsKnownType(typ) && o.URL() != ""
}

// PredicateName turns a predicate spelling into the type or schema name it
// asks about.
func PredicateName(name string) string {
	name = strings.TrimSpace(name)
	switch {
	case strings.HasPrefix(name, "is_"):
		name = name[3:]
	case len(name) > 2 && (name[:2] == "is" || name[:2] == "Is") && unicode.IsUpper(rune(name[2])):
		name = name[2:]
	}

	runes := []rune(name)
	var b strings.Builder
	for i, r := range runes {
		if unicode.IsUpper(r) && i > 0 {
			prev := runes[i-1]
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
				b.WriteByte('_')
			}
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return strings.ReplaceAll(b.String(), "-", "_")
}

// MarshalJSON writes the properties as a JSON object in key order.
func (o *Object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range o.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		vb, err := json.Marshal(o.values[k])
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalYAML writes the properties as a YAML mapping in key order.
func (o *Object) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, k := range o.keys {
		var val yaml.Node
		if err := val.Encode(o.values[k]); err != nil {
			return nil, err
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k},
			&val,
		)
	}
	return node, nil
}
