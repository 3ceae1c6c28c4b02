// FILE: lixenwraith/sitecore/generator/generator.go

// Package generator derives pages from a site's page collection.
//
// A Generator reads the current collection and returns a new collection
// holding only the pages it contributes. A Pipeline runs generators in a
// fixed order and folds each output into the running collection by page
// identity: an output page replaces the page with the same ID, otherwise it
// is appended. Every generator therefore sees the contributions of the
// generators before it.
package generator

import (
	"context"
	"fmt"

	"github.com/lixenwraith/sitecore/page"
)

// Step is one human-readable progress report.
type Step struct {
	Generator string
	Message   string
}

// ProgressFunc receives progress steps. It must not block or panic.
type ProgressFunc func(Step)

// Printf reports a formatted step. It is safe on a nil ProgressFunc.
func (f ProgressFunc) Printf(format string, args ...any) {
	if f == nil {
		return
	}
	f(Step{Message: fmt.Sprintf(format, args...)})
}

// Generator derives pages from a collection. Implementations must not
// modify the input collection; pages are values, so altered pages are
// produced with page.Derive.
type Generator interface {
	Generate(ctx context.Context, pages *page.Collection, progress ProgressFunc) (*page.Collection, error)
}

// Func adapts an ordinary function to the Generator interface.
type Func func(ctx context.Context, pages *page.Collection, progress ProgressFunc) (*page.Collection, error)

// Generate calls f.
func (f Func) Generate(ctx context.Context, pages *page.Collection, progress ProgressFunc) (*page.Collection, error) {
	return f(ctx, pages, progress)
}
