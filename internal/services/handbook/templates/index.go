package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// NavLink is one entry of a navigation section.
type NavLink struct {
	Label string
	Path  string
}

// NavSection is one category heading and its links.
type NavSection struct {
	Heading string
	Links   []NavLink
}

// Index renders the navigation page. Sections without links keep their
// heading and render an empty list.
func Index(sections []NavSection) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := &htmlWriter{w: w}
		hw.raw(`<section id="home"><h1>`)
		hw.text(T(ctx, "site.title"))
		hw.raw(`</h1><p class="tagline">`)
		hw.text(T(ctx, "site.tagline"))
		hw.raw(`</p><nav`)
		hw.attr("aria-label", T(ctx, "nav.home"))
		hw.raw(">")
		for _, section := range sections {
			hw.raw(`<div class="category"><h2>`)
			hw.text(section.Heading)
			hw.raw("</h2><ul>")
			for _, link := range section.Links {
				hw.raw(`<li><a class="link"`)
				hw.attr("href", string(templ.URL(link.Path)))
				hw.raw(">")
				hw.text(link.Label)
				hw.raw("</a></li>")
			}
			hw.raw("</ul>")
			if len(section.Links) == 0 {
				hw.raw(`<p class="empty">`)
				hw.text(T(ctx, "nav.empty_category"))
				hw.raw("</p>")
			}
			hw.raw("</div>")
		}
		hw.raw("</nav></section>")
		return hw.err
	})
}
