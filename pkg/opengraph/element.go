package opengraph

import (
	"iter"

	"github.com/PuerkitoBio/goquery"
)

// Element is one document element as seen by the interpreter.
type Element interface {
	// Attr returns the attribute value and whether it is present.
	Attr(name string) (string, bool)
}

// MetaElement is an Element backed by a goquery selection of a single node.
type MetaElement struct {
	sel *goquery.Selection
}

// Attr implements Element.
func (m MetaElement) Attr(name string) (string, bool) {
	return m.sel.Attr(name)
}

// Selection exposes the underlying node for extensions that need more than
// attribute access.
func (m MetaElement) Selection() *goquery.Selection {
	return m.sel
}

// MetaElements yields every <meta> element of doc in document order.
func MetaElements(doc *goquery.Document) iter.Seq[Element] {
	return func(yield func(Element) bool) {
		if doc == nil {
			return
		}
		doc.Find("meta").EachWithBreak(func(_ int, s *goquery.Selection) bool {
			return yield(MetaElement{sel: s})
		})
	}
}

// Attrs is an Element built from a plain attribute map, handy for callers
// that already hold parsed attributes.
type Attrs map[string]string

// Attr implements Element.
func (a Attrs) Attr(name string) (string, bool) {
	v, ok := a[name]
	return v, ok
}

// Slice yields elements from a slice in order.
func Slice(elements []Element) iter.Seq[Element] {
	return func(yield func(Element) bool) {
		for _, el := range elements {
			if !yield(el) {
				return
			}
		}
	}
}
