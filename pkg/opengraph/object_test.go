package opengraph

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/dtnitsch/opengraph-parser/pkg/schema"
	"gopkg.in/yaml.v3"
)

func validMovie() *Object {
	obj := NewObject(nil)
	obj.SetTitle("Kick-Ass")
	obj.SetType("movie")
	obj.SetURL("http://www.rottentomatoes.com/m/1217700-kick_ass/")
	return obj
}

func TestObject_GetAbsent(t *testing.T) {
	obj := NewObject(nil)

	if v, ok := obj.Get("missing"); ok || !v.IsZero() {
		t.Errorf("Get(missing) = (%v, %v), want zero value and false", v, ok)
	}
	if obj.Text("missing") != "" {
		t.Errorf("Text(missing) = %q, want empty", obj.Text("missing"))
	}
	if obj.Type() != "" || obj.Schema() != "" {
		t.Errorf("empty object Type/Schema = %q/%q", obj.Type(), obj.Schema())
	}
}

func TestObject_KeyNormalization(t *testing.T) {
	obj := NewObject(nil)
	obj.SetText("video:width", "396")
	obj.SetText(" Site-Name ", "YouTube")

	tests := []struct {
		key  string
		want string
	}{
		{key: "video_width", want: "396"},
		{key: "video:width", want: "396"},
		{key: "VIDEO:WIDTH", want: "396"},
		{key: "site_name", want: "YouTube"},
		{key: "site-name", want: "YouTube"},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			if got := obj.Text(tt.key); got != tt.want {
				t.Errorf("Text(%q) = %q, want %q", tt.key, got, tt.want)
			}
		})
	}

	if got := strings.Join(obj.Keys(), ","); got != "video_width,site_name" {
		t.Errorf("Keys() = %q", got)
	}
}

func TestObject_SetOverwrites(t *testing.T) {
	obj := NewObject(nil)
	obj.SetTitle("first")
	obj.SetTitle("second")

	if obj.Title() != "second" {
		t.Errorf("Title() = %q, want %q", obj.Title(), "second")
	}
	if obj.Len() != 1 {
		t.Errorf("Len() = %d, want 1", obj.Len())
	}
}

func TestObject_SetEmptyKeyIgnored(t *testing.T) {
	obj := NewObject(nil)
	obj.SetText("  ", "x")
	if obj.Len() != 0 {
		t.Errorf("Len() = %d, want 0", obj.Len())
	}
}

func TestObject_Append(t *testing.T) {
	obj := NewObject(nil)
	obj.SetImage("a.jpg")
	obj.Append("image", "b.jpg")
	obj.Append("image", "c.jpg")
	obj.Append("tags", "go")

	img, _ := obj.Get("image")
	if !img.IsList() || img.String() != "a.jpg,b.jpg,c.jpg" {
		t.Errorf("image = %v", img.Items())
	}
	tags, _ := obj.Get("tags")
	if !tags.Equal(Strings("go")) {
		t.Errorf("tags = %v, want [go]", tags.Items())
	}
}

func TestObject_Delete(t *testing.T) {
	obj := validMovie()
	obj.Delete("type")
	obj.Delete("never-set")

	if _, ok := obj.Get("type"); ok {
		t.Error("type still present after Delete")
	}
	if got := strings.Join(obj.Keys(), ","); got != "title,url" {
		t.Errorf("Keys() = %q, want %q", got, "title,url")
	}
}

func TestObject_Is(t *testing.T) {
	tests := []struct {
		typ  string
		name string
		want bool
	}{
		{typ: "movie", name: "movie", want: true},
		{typ: "movie", name: "product", want: true},
		{typ: "movie", name: "person", want: false},
		{typ: "movie", name: "tv_show", want: false},
		{typ: "tv_show", name: "IsTvShow", want: true},
		{typ: "tv_show", name: "isTVShow", want: true},
		{typ: "tv_show", name: "is_tv_show", want: true},
		{typ: "isbn", name: "isbn", want: true},
		{typ: "isbn", name: "IsIsbn", want: true},
		{typ: "video.episode", name: "video", want: true},
		{typ: "video.episode", name: "video.episode", want: true},
		{typ: "video.episode", name: "episode", want: false},
		{typ: "spaceship", name: "spaceship", want: false},
		{typ: "spaceship", name: "vehicle", want: false},
		{typ: "", name: "", want: false},
		{typ: "movie", name: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.typ+"/"+tt.name, func(t *testing.T) {
			obj := NewObject(nil)
			obj.SetType(tt.typ)
			if got := obj.Is(tt.name); got != tt.want {
				t.Errorf("Is(%q) with type %q = %v, want %v", tt.name, tt.typ, got, tt.want)
			}
		})
	}
}

func TestPredicateName(t *testing.T) {
	tests := map[string]string{
		"IsMovie":      "movie",
		"isTvShow":     "tv_show",
		"IsTVShow":     "tv_show",
		"is_tv_show":   "tv_show",
		"TvShow":       "tv_show",
		"isbn":         "isbn",
		"Isbn":         "isbn",
		"video.movie":  "video.movie",
		"sports-team":  "sports_team",
		"PublicFigure": "public_figure",
	}
	for in, want := range tests {
		if got := PredicateName(in); got != want {
			t.Errorf("PredicateName(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestObject_Valid(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*Object)
		wantStrict  bool
		wantLenient bool
	}{
		{name: "complete", mutate: func(*Object) {}, wantStrict: true, wantLenient: true},
		{name: "no type", mutate: func(o *Object) { o.Delete("type") }, wantStrict: false, wantLenient: true},
		{name: "empty type", mutate: func(o *Object) { o.SetType("") }, wantStrict: false, wantLenient: true},
		{name: "unknown type", mutate: func(o *Object) { o.SetType("spaceship") }, wantStrict: false, wantLenient: true},
		{name: "no url", mutate: func(o *Object) { o.SetURL("") }, wantStrict: false, wantLenient: true},
		{name: "no title", mutate: func(o *Object) { o.SetTitle("") }, wantStrict: false, wantLenient: false},
		{name: "schema as type", mutate: func(o *Object) { o.SetType("website") }, wantStrict: true, wantLenient: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			obj := validMovie()
			tt.mutate(obj)
			if got := obj.Valid(); got != tt.wantStrict {
				t.Errorf("Valid() = %v, want %v", got, tt.wantStrict)
			}
			if got := obj.ValidFor(ModeLenient); got != tt.wantLenient {
				t.Errorf("ValidFor(lenient) = %v, want %v", got, tt.wantLenient)
			}
		})
	}
}

func TestObject_ValidityNotCached(t *testing.T) {
	obj := validMovie()
	if !obj.Valid() {
		t.Fatal("Valid() = false, want true")
	}
	obj.Set("type", Text(""))
	if obj.Valid() {
		t.Error("Valid() should flip to false after clearing type")
	}
	obj.SetType("book")
	if !obj.Valid() {
		t.Error("Valid() should flip back to true after restoring type")
	}
}

func TestObject_CustomTable(t *testing.T) {
	table, err := schema.Load(strings.NewReader("gadget: [phone]\n"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	obj := NewObject(table)
	obj.SetTitle("Pixel")
	obj.SetURL("http://example.com")
	obj.SetType("phone")

	if obj.Schema() != "gadget" || !obj.Is("gadget") {
		t.Errorf("Schema() = %q, want gadget", obj.Schema())
	}
	if !obj.Valid() {
		t.Error("Valid() = false with a type known to the custom table")
	}

	obj.SetType("movie")
	if obj.Valid() {
		t.Error("movie is unknown to the custom table")
	}
}

func TestObject_MarshalJSON(t *testing.T) {
	obj := validMovie()
	obj.Set("admins", Ints(1106591))

	data, err := json.Marshal(obj)
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}
	want := `{"title":"Kick-Ass","type":"movie","url":"http://www.rottentomatoes.com/m/1217700-kick_ass/","admins":[1106591]}`
	if string(data) != want {
		t.Errorf("json = %s\nwant  %s", data, want)
	}
}

func TestObject_MarshalYAML(t *testing.T) {
	obj := NewObject(nil)
	obj.SetTitle("Kick-Ass")
	obj.Set("admins", Ints(1, 2))

	data, err := yaml.Marshal(obj)
	if err != nil {
		t.Fatalf("yaml.Marshal() error = %v", err)
	}
	want := "title: Kick-Ass\nadmins:\n    - 1\n    - 2\n"
	if string(data) != want {
		t.Errorf("yaml = %q\nwant   %q", data, want)
	}
}

func TestObject_ZeroValue(t *testing.T) {
	var obj Object

	if obj.Valid() || obj.Is("movie") || obj.Schema() != "" || obj.Len() != 0 {
		t.Fatal("empty zero Object should be invalid and unclassified")
	}

	obj.SetTitle("Kick-Ass")
	obj.SetType("movie")
	obj.SetURL("http://www.rottentomatoes.com/m/1217700-kick_ass/")
	obj.Append("admins", "1106591")

	if !obj.Valid() {
		t.Error("Valid() = false, want true")
	}
	if obj.Schema() != "product" || !obj.Is("IsProduct") {
		t.Errorf("Schema() = %q, want product from the default table", obj.Schema())
	}
	if got := strings.Join(obj.Keys(), ","); got != "title,type,url,admins" {
		t.Errorf("Keys() = %s", got)
	}

	obj.Delete("admins")
	if obj.Len() != 3 {
		t.Errorf("Len() = %d, want 3", obj.Len())
	}
}
