// FILE: lixenwraith/sitecore/generator/titleupper.go
package generator

import (
	"context"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/lixenwraith/sitecore/page"
)

// TitleUpper outputs a copy of every titled page with its title upper-cased.
// Untitled pages are not part of the output.
type TitleUpper struct {
	lang language.Tag
}

// NewTitleUpper creates a TitleUpper using the casing rules of lang.
func NewTitleUpper(lang language.Tag) *TitleUpper {
	return &TitleUpper{lang: lang}
}

// Generate returns upper-cased copies of the titled pages.
func (g *TitleUpper) Generate(ctx context.Context, pages *page.Collection, progress ProgressFunc) (*page.Collection, error) {
	// Casers are stateful, one per call.
	caser := cases.Upper(g.lang)

	titled := pages.Filter(func(p page.Page) bool { return p.HasTitle() })
	out := page.NewCollection()
	for p := range titled.All() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		title, _ := p.Title()
		out.Set(p.Derive(page.WithTitle(caser.String(title))))
	}

	progress.Printf("upper-cased %d of %d titles", out.Len(), pages.Len())
	return out, nil
}
