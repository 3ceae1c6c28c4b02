// FILE: lixenwraith/sitecore/page/collection.go
package page

import (
	"errors"
	"fmt"
	"iter"
)

// ErrDuplicatePage is returned by Add when a page with the same ID exists.
var ErrDuplicatePage = errors.New("page already exists")

// Collection is an ordered set of pages, unique by ID.
// Filter, iteration and lookups never modify the receiver.
type Collection struct {
	pages []Page
	index map[string]int
}

// NewCollection creates a collection from pages. Later duplicates replace
// earlier ones in place.
func NewCollection(pages ...Page) *Collection {
	c := &Collection{index: make(map[string]int, len(pages))}
	for _, p := range pages {
		c.Set(p)
	}
	return c
}

// Len returns the number of pages. A nil collection is empty.
func (c *Collection) Len() int {
	if c == nil {
		return 0
	}
	return len(c.pages)
}

// Has reports whether a page with id exists.
func (c *Collection) Has(id string) bool {
	if c == nil {
		return false
	}
	_, ok := c.index[id]
	return ok
}

// Get returns the page with id.
func (c *Collection) Get(id string) (Page, bool) {
	if c == nil {
		return Page{}, false
	}
	i, ok := c.index[id]
	if !ok {
		return Page{}, false
	}
	return c.pages[i], true
}

// Add appends p, failing if its ID is already present.
func (c *Collection) Add(p Page) error {
	if c.Has(p.ID()) {
		return fmt.Errorf("%w: %q", ErrDuplicatePage, p.ID())
	}
	c.Set(p)
	return nil
}

// Set replaces the page with the same ID in place, or appends p.
// It reports whether an existing page was replaced.
func (c *Collection) Set(p Page) bool {
	if c.index == nil {
		c.index = make(map[string]int)
	}
	if i, ok := c.index[p.ID()]; ok {
		c.pages[i] = p
		return true
	}
	c.index[p.ID()] = len(c.pages)
	c.pages = append(c.pages, p)
	return false
}

// Filter returns a new collection with the pages for which keep returns true.
func (c *Collection) Filter(keep func(Page) bool) *Collection {
	out := NewCollection()
	for p := range c.All() {
		if keep(p) {
			out.Set(p)
		}
	}
	return out
}

// All iterates the pages in order.
func (c *Collection) All() iter.Seq[Page] {
	return func(yield func(Page) bool) {
		if c == nil {
			return
		}
		for _, p := range c.pages {
			if !yield(p) {
				return
			}
		}
	}
}

// Pages returns the pages as a new slice.
func (c *Collection) Pages() []Page {
	if c == nil {
		return nil
	}
	out := make([]Page, len(c.pages))
	copy(out, c.pages)
	return out
}

// IDs returns the page IDs in order.
func (c *Collection) IDs() []string {
	if c == nil {
		return nil
	}
	out := make([]string, len(c.pages))
	for i, p := range c.pages {
		out[i] = p.ID()
	}
	return out
}

// Clone returns an independent collection holding the same pages.
func (c *Collection) Clone() *Collection {
	return NewCollection(c.Pages()...)
}
