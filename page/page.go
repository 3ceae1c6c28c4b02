// FILE: lixenwraith/sitecore/page/page.go

// Package page models site pages as immutable values and keeps them in
// ordered, identity-unique collections.
package page

import (
	"reflect"
)

// Kind classifies a page.
type Kind string

const (
	KindPage     Kind = "page"
	KindSection  Kind = "section"
	KindHomepage Kind = "homepage"
)

// Page is an immutable site page. Copies never share mutable state; use
// Derive to obtain a modified copy.
type Page struct {
	id       string
	title    string
	hasTitle bool
	kind     Kind
	section  string
	content  string
	virtual  bool
	params   map[string]any
}

// Option overrides one field of a page under construction.
type Option func(*Page)

// New creates a page with the given identity.
func New(id string, opts ...Option) Page {
	p := Page{id: id, kind: KindPage}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

// Derive returns a copy of p with opts applied. p itself is unchanged.
func (p Page) Derive(opts ...Option) Page {
	d := p
	d.params = copyParams(p.params)
	for _, opt := range opts {
		opt(&d)
	}
	return d
}

// WithTitle sets the title.
func WithTitle(title string) Option {
	return func(p *Page) {
		p.title = title
		p.hasTitle = true
	}
}

// WithoutTitle clears the title.
func WithoutTitle() Option {
	return func(p *Page) {
		p.title = ""
		p.hasTitle = false
	}
}

// WithKind sets the page kind.
func WithKind(kind Kind) Option {
	return func(p *Page) { p.kind = kind }
}

// WithSection sets the section the page belongs to.
func WithSection(section string) Option {
	return func(p *Page) { p.section = section }
}

// WithContent sets the page body.
func WithContent(content string) Option {
	return func(p *Page) { p.content = content }
}

// Virtual marks a page as produced by a generator rather than loaded from a file.
func Virtual() Option {
	return func(p *Page) { p.virtual = true }
}

// WithParam sets one metadata entry. The value is deep-copied.
func WithParam(key string, value any) Option {
	return func(p *Page) {
		if p.params == nil {
			p.params = make(map[string]any)
		}
		p.params[key] = copyValue(value)
	}
}

// WithParams merges metadata entries, deep-copying the values.
func WithParams(params map[string]any) Option {
	return func(p *Page) {
		if len(params) == 0 {
			return
		}
		if p.params == nil {
			p.params = make(map[string]any, len(params))
		}
		for k, v := range params {
			p.params[k] = copyValue(v)
		}
	}
}

// ID returns the page identity.
func (p Page) ID() string { return p.id }

// Title returns the title and whether the page has one.
func (p Page) Title() (string, bool) { return p.title, p.hasTitle }

// HasTitle reports whether a title is set.
func (p Page) HasTitle() bool { return p.hasTitle }

// Kind returns the page kind.
func (p Page) Kind() Kind { return p.kind }

// Section returns the section the page belongs to, or "".
func (p Page) Section() string { return p.section }

// Content returns the page body.
func (p Page) Content() string { return p.content }

// IsVirtual reports whether a generator produced the page.
func (p Page) IsVirtual() bool { return p.virtual }

// Param returns a copy of one metadata entry.
func (p Page) Param(key string) (any, bool) {
	v, ok := p.params[key]
	if !ok {
		return nil, false
	}
	return copyValue(v), true
}

// Params returns a deep copy of the metadata.
func (p Page) Params() map[string]any {
	return copyParams(p.params)
}

func copyParams(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = copyValue(v)
	}
	return out
}

// copyValue deep-copies maps, slices and arrays of any element type.
// Other values are returned as is.
func copyValue(v any) any {
	switch t := v.(type) {
	case nil:
		return nil
	case map[string]any:
		return copyParams(t)
	case []any:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = copyValue(item)
		}
		return out
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map, reflect.Slice, reflect.Array:
		return copyReflect(rv).Interface()
	default:
		return v
	}
}

func copyReflect(rv reflect.Value) reflect.Value {
	switch rv.Kind() {
	case reflect.Map:
		if rv.IsNil() {
			return rv
		}
		out := reflect.MakeMapWithSize(rv.Type(), rv.Len())
		it := rv.MapRange()
		for it.Next() {
			out.SetMapIndex(it.Key(), copyReflect(it.Value()))
		}
		return out
	case reflect.Slice:
		if rv.IsNil() {
			return rv
		}
		out := reflect.MakeSlice(rv.Type(), rv.Len(), rv.Len())
		for i := 0; i < rv.Len(); i++ {
			out.Index(i).Set(copyReflect(rv.Index(i)))
		}
		return out
	case reflect.Array:
		out := reflect.New(rv.Type()).Elem()
		for i := 0; i < rv.Len(); i++ {
			out.Index(i).Set(copyReflect(rv.Index(i)))
		}
		return out
	case reflect.Interface:
		if rv.IsNil() {
			return rv
		}
		out := reflect.New(rv.Type()).Elem()
		out.Set(copyReflect(rv.Elem()))
		return out
	default:
		return rv
	}
}
