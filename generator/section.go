// FILE: lixenwraith/sitecore/generator/section.go
package generator

import (
	"context"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/lixenwraith/sitecore/page"
)

// Section emits a section page for every section that has member pages but
// no page of kind section. The generated page takes the section name as ID,
// the title-cased name as title, and carries the member count in its
// "pages" param.
type Section struct {
	lang language.Tag
}

// NewSection creates a Section generator titling with the rules of lang.
func NewSection(lang language.Tag) *Section {
	return &Section{lang: lang}
}

// Generate returns one section page per section lacking one.
func (g *Section) Generate(ctx context.Context, pages *page.Collection, progress ProgressFunc) (*page.Collection, error) {
	caser := cases.Title(g.lang)

	var order []string
	members := make(map[string]int)
	covered := make(map[string]bool)
	for p := range pages.All() {
		if p.Kind() == page.KindSection {
			covered[p.ID()] = true
			if p.Section() != "" {
				covered[p.Section()] = true
			}
			continue
		}
		name := p.Section()
		if name == "" || p.Kind() != page.KindPage {
			continue
		}
		if _, seen := members[name]; !seen {
			order = append(order, name)
		}
		members[name]++
	}

	out := page.NewCollection()
	for _, name := range order {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if covered[name] {
			continue
		}

		var sp page.Page
		if existing, ok := pages.Get(name); ok {
			// A plain page already owns the section's ID: promote it.
			sp = existing.Derive(page.WithKind(page.KindSection), page.WithSection(name))
			if !sp.HasTitle() {
				sp = sp.Derive(page.WithTitle(sectionTitle(caser, name)))
			}
		} else {
			sp = page.New(name,
				page.WithKind(page.KindSection),
				page.WithSection(name),
				page.WithTitle(sectionTitle(caser, name)),
				page.Virtual())
		}
		sp = sp.Derive(page.WithParam("pages", members[name]))
		out.Set(sp)
		progress.Printf("section %q: %d pages", name, members[name])
	}

	return out, nil
}

func sectionTitle(caser cases.Caser, name string) string {
	name = strings.NewReplacer("-", " ", "_", " ").Replace(name)
	return caser.String(name)
}
