// Package i18n defines the languages the handbook chrome is translated into.
package i18n

import (
	"strings"

	"github.com/louisbranch/hooks.handbook/internal/platform/i18n/catalog"
	"golang.org/x/text/language"
)

var (
	supportedTags = []language.Tag{
		language.MustParse(catalog.BaseLocale),
		language.MustParse("pt-BR"),
	}
	matcher = language.NewMatcher(supportedTags)
)

// DefaultTag returns the fallback language.
func DefaultTag() language.Tag {
	return supportedTags[0]
}

// SupportedTags returns a copy of the supported language tags.
func SupportedTags() []language.Tag {
	out := make([]language.Tag, len(supportedTags))
	copy(out, supportedTags)
	return out
}

// ParseTag parses value and reports whether it names a supported language.
func ParseTag(value string) (language.Tag, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return language.Tag{}, false
	}
	tag, err := language.Parse(value)
	if err != nil {
		return language.Tag{}, false
	}
	for _, supported := range supportedTags {
		if tag == supported {
			return supported, true
		}
	}
	return language.Tag{}, false
}

// MatchTags picks the best supported language for the given preferences.
func MatchTags(preferred []language.Tag) language.Tag {
	if len(preferred) == 0 {
		return DefaultTag()
	}
	_, index, confidence := matcher.Match(preferred...)
	if confidence == language.No {
		return DefaultTag()
	}
	return supportedTags[index]
}
