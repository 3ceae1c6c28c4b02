// FILE: lixenwraith/sitecore/cmd/sitecore/manifest.go
package main

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/sitecore/page"
)

// manifest is the YAML document exchanged by the generate command.
type manifest struct {
	Pages []manifestPage `yaml:"pages"`
}

type manifestPage struct {
	ID      string         `yaml:"id"`
	Title   *string        `yaml:"title,omitempty"`
	Kind    string         `yaml:"kind,omitempty"`
	Section string         `yaml:"section,omitempty"`
	Content string         `yaml:"content,omitempty"`
	Virtual bool           `yaml:"virtual,omitempty"`
	Params  map[string]any `yaml:"params,omitempty"`
}

func decodeManifest(data []byte) (*page.Collection, error) {
	var m manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("decoding page manifest: %w", err)
	}

	pages := page.NewCollection()
	for i, mp := range m.Pages {
		if mp.ID == "" {
			return nil, fmt.Errorf("page %d: missing id", i)
		}

		opts := []page.Option{page.WithSection(mp.Section), page.WithContent(mp.Content), page.WithParams(mp.Params)}
		switch kind := page.Kind(mp.Kind); kind {
		case "":
		case page.KindPage, page.KindSection, page.KindHomepage:
			opts = append(opts, page.WithKind(kind))
		default:
			return nil, fmt.Errorf("page %q: unknown kind %q", mp.ID, mp.Kind)
		}
		if mp.Title != nil {
			opts = append(opts, page.WithTitle(*mp.Title))
		}
		if mp.Virtual {
			opts = append(opts, page.Virtual())
		}

		if err := pages.Add(page.New(mp.ID, opts...)); err != nil {
			return nil, fmt.Errorf("page %d: %w", i, err)
		}
	}
	return pages, nil
}

func encodeManifest(pages *page.Collection) ([]byte, error) {
	m := manifest{Pages: make([]manifestPage, 0, pages.Len())}
	for p := range pages.All() {
		mp := manifestPage{
			ID:      p.ID(),
			Kind:    string(p.Kind()),
			Section: p.Section(),
			Content: p.Content(),
			Virtual: p.IsVirtual(),
			Params:  p.Params(),
		}
		if title, ok := p.Title(); ok {
			mp.Title = &title
		}
		m.Pages = append(m.Pages, mp)
	}
	return yaml.Marshal(m)
}
