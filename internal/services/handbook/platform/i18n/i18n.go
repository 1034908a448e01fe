// Package i18n resolves the chrome language for handbook requests.
package i18n

import (
	"net/http"
	"strings"

	platformi18n "github.com/louisbranch/hooks.handbook/internal/platform/i18n"
	_ "github.com/louisbranch/hooks.handbook/internal/platform/i18n/catalog"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// LangCookieName stores an explicit language preference.
const LangCookieName = "hh_lang"

// ResolveTag picks the request language: cookie first, then Accept-Language,
// then the default.
func ResolveTag(r *http.Request) language.Tag {
	if r == nil {
		return platformi18n.DefaultTag()
	}
	if cookie, err := r.Cookie(LangCookieName); err == nil {
		if tag, ok := platformi18n.ParseTag(cookie.Value); ok {
			return tag
		}
	}
	if accept := strings.TrimSpace(r.Header.Get("Accept-Language")); accept != "" {
		if tags, _, err := language.ParseAcceptLanguage(accept); err == nil {
			return platformi18n.MatchTags(tags)
		}
	}
	return platformi18n.DefaultTag()
}

// ResolveLocalizer returns a message printer for the request language.
func ResolveLocalizer(r *http.Request) (*message.Printer, language.Tag) {
	tag := ResolveTag(r)
	return message.NewPrinter(tag), tag
}
