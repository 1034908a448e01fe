package templates

import (
	"context"
	"io"
	"net/http"

	"github.com/a-h/templ"
	"github.com/louisbranch/hooks.handbook/internal/services/handbook/routepath"
)

// ErrorTitleKey returns the catalog key for an error page title.
func ErrorTitleKey(statusCode int) string {
	if statusCode == http.StatusNotFound {
		return "error.not_found.title"
	}
	return "error.internal.title"
}

func errorBodyKey(statusCode int) string {
	if statusCode == http.StatusNotFound {
		return "error.not_found.body"
	}
	return "error.internal.body"
}

// ErrorState renders a user-safe error message with a link home.
func ErrorState(statusCode int) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := &htmlWriter{w: w}
		hw.raw(`<section id="error" class="error-state"><h1>`)
		hw.text(T(ctx, ErrorTitleKey(statusCode)))
		hw.raw("</h1><p>")
		hw.text(T(ctx, errorBodyKey(statusCode)))
		hw.raw("</p><a")
		hw.attr("href", routepath.Root)
		hw.raw(">")
		hw.text(T(ctx, "error.home_link"))
		hw.raw("</a></section>")
		return hw.err
	})
}
