// Package pages holds the content of every handbook page and the live demos
// rendered beside the examples.
package pages

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/louisbranch/hooks.handbook/internal/services/handbook/templates"
)

// Page is one hook page. It renders as a templ component so the registry can
// hold it as an opaque renderer.
type Page struct {
	Name       string
	Heading    string
	Snippet    string
	Paragraphs []string
	Demo       templ.Component
}

// Render writes the page body.
func (p *Page) Render(ctx context.Context, w io.Writer) error {
	return templates.HookPage(templates.HookView{
		Name:       p.Name,
		Heading:    p.Heading,
		Snippet:    p.Snippet,
		Paragraphs: p.Paragraphs,
		Demo:       p.Demo,
	}).Render(ctx, w)
}

var _ templ.Component = (*Page)(nil)
