package opengraph

import (
	"strconv"
	"strings"
)

// facebookExtension captures fb:* properties. Comma separated integer lists
// (fb:admins) become integer sequences; anything else is kept as text.
func facebookExtension(el Element, obj *Object) {
	prop, ok := el.Attr("property")
	if !ok || len(prop) < 3 || !strings.EqualFold(prop[:3], "fb:") {
		return
	}
	content, _ := el.Attr("content")
	obj.Set(prop[3:], splitInts(content))
}

// FacebookExtension is the Extension for Facebook's fb: namespace.
var FacebookExtension Extension = facebookExtension

// Chain runs extensions in order for each element.
func Chain(exts ...Extension) Extension {
	return func(el Element, obj *Object) {
		for _, ext := range exts {
			if ext != nil {
				ext(el, obj)
			}
		}
	}
}

func splitInts(s string) Value {
	parts := strings.Split(s, ",")
	ns := make([]int64, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.ParseInt(strings.TrimSpace(p), 10, 64)
		if err != nil {
			return Text(s)
		}
		ns = append(ns, n)
	}
	return Ints(ns...)
}
