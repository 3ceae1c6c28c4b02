// FILE: lixenwraith/sitecore/generator/homepage.go
package generator

import (
	"context"

	"github.com/lixenwraith/sitecore/page"
)

// HomepageID is the identity of the generated homepage.
const HomepageID = "index"

// Homepage makes sure the site has a homepage. When none exists it emits
// one titled with the site title. A plain page with ID "index" is promoted
// rather than replaced, keeping its content and title.
type Homepage struct {
	Title string
}

// Generate returns the homepage, or nothing when one already exists.
func (g *Homepage) Generate(_ context.Context, pages *page.Collection, progress ProgressFunc) (*page.Collection, error) {
	var members []string
	for p := range pages.All() {
		if p.Kind() == page.KindHomepage {
			progress.Printf("homepage %q already present", p.ID())
			return page.NewCollection(), nil
		}
		if p.Kind() == page.KindPage {
			members = append(members, p.ID())
		}
	}

	var home page.Page
	if existing, ok := pages.Get(HomepageID); ok {
		home = existing.Derive(page.WithKind(page.KindHomepage))
		if !home.HasTitle() {
			home = home.Derive(page.WithTitle(g.Title))
		}
	} else {
		home = page.New(HomepageID,
			page.WithKind(page.KindHomepage),
			page.WithTitle(g.Title),
			page.Virtual())
	}
	home = home.Derive(page.WithParam("pages", len(members)))

	progress.Printf("homepage %q lists %d pages", home.ID(), len(members))
	return page.NewCollection(home), nil
}
