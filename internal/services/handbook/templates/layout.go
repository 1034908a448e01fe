// Package templates renders the handbook page shell and shared chrome as
// templ components.
package templates

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
	"github.com/louisbranch/hooks.handbook/internal/services/handbook/routepath"
)

// ComposePageTitle appends the site title unless the page title already is it.
func ComposePageTitle(title, site string) string {
	title = strings.TrimSpace(title)
	site = strings.TrimSpace(site)
	if title == "" || title == site {
		return site
	}
	return title + " | " + site
}

// Layout wraps the children of ctx in the full HTML document.
func Layout(title string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := &htmlWriter{w: w}
		hw.raw("<!DOCTYPE html><html")
		hw.attr("lang", Lang(ctx))
		hw.raw(`><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1"><title>`)
		hw.text(ComposePageTitle(title, T(ctx, "site.title")))
		hw.raw(`</title><link rel="stylesheet"`)
		hw.attr("href", routepath.Stylesheet)
		hw.raw(`></head><body><main>`)
		if hw.err != nil {
			return hw.err
		}
		if err := templ.GetChildren(ctx).Render(templ.ClearChildren(ctx), w); err != nil {
			return err
		}
		hw.raw("</main></body></html>")
		return hw.err
	})
}

// BackLink renders the link back to the handbook index.
func BackLink() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := &htmlWriter{w: w}
		hw.raw(`<a id="back-link"`)
		hw.attr("href", routepath.Root)
		hw.raw(`><span class="back-button">`)
		hw.text(T(ctx, "nav.back"))
		hw.raw("</span></a>")
		return hw.err
	})
}
