package templates

import (
	"context"

	"github.com/louisbranch/hooks.handbook/internal/platform/i18n"
	_ "github.com/louisbranch/hooks.handbook/internal/platform/i18n/catalog"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Localizer formats catalog messages for one language.
type Localizer interface {
	Sprintf(key message.Reference, args ...any) string
}

type localeKey struct{}

type locale struct {
	loc  Localizer
	lang string
}

// WithLocalizer attaches the request localizer and language to ctx so
// components can translate chrome strings without extra parameters.
func WithLocalizer(ctx context.Context, loc Localizer, lang language.Tag) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, localeKey{}, locale{loc: loc, lang: lang.String()})
}

// T translates key using the localizer carried by ctx.
func T(ctx context.Context, key string, args ...any) string {
	return localeFrom(ctx).loc.Sprintf(key, args...)
}

// Lang returns the language tag string carried by ctx.
func Lang(ctx context.Context) string {
	return localeFrom(ctx).lang
}

func localeFrom(ctx context.Context) locale {
	if ctx != nil {
		if value, ok := ctx.Value(localeKey{}).(locale); ok && value.loc != nil {
			return value
		}
	}
	tag := i18n.DefaultTag()
	return locale{loc: message.NewPrinter(tag), lang: tag.String()}
}
