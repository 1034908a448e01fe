package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// HookView is the content of one hook page.
type HookView struct {
	Name       string
	Heading    string
	Snippet    string
	Paragraphs []string
	// Demo is optional live output rendered under the snippet.
	Demo templ.Component
}

// HookPage renders a hook page body: title, back link, example and notes.
func HookPage(view HookView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := &htmlWriter{w: w}
		hw.raw("<section")
		hw.attr("id", view.Name+"Page")
		hw.raw(` class="hook-page"><h1>`)
		hw.text(view.Name)
		hw.raw("</h1>")
		if hw.err != nil {
			return hw.err
		}
		if err := BackLink().Render(ctx, w); err != nil {
			return err
		}
		hw.raw(`<article id="code"><h3>`)
		hw.text(T(ctx, "page.code"))
		hw.raw("</h3><pre><code>")
		hw.text(view.Snippet)
		hw.raw("</code></pre>")
		if view.Demo != nil {
			hw.raw(`<div class="demo"><h4>`)
			hw.text(T(ctx, "demo.title"))
			hw.raw("</h4>")
			if hw.err != nil {
				return hw.err
			}
			if err := view.Demo.Render(ctx, w); err != nil {
				return err
			}
			hw.raw("</div>")
		}
		hw.raw(`</article><article id="text"><h3>`)
		heading := view.Heading
		if heading == "" {
			heading = T(ctx, "page.notes")
		}
		hw.text(heading)
		hw.raw("</h3>")
		for _, paragraph := range view.Paragraphs {
			hw.raw("<p>")
			hw.text(paragraph)
			hw.raw("</p>")
		}
		hw.raw("</article></section>")
		return hw.err
	})
}

// EmptyState renders the shared "no data" message.
func EmptyState() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := &htmlWriter{w: w}
		emptyState(ctx, hw)
		return hw.err
	})
}
