package i18n

import (
	"testing"

	"golang.org/x/text/language"
)

func TestParseTag(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in     string
		want   string
		wantOK bool
	}{
		{in: "en-US", want: "en-US", wantOK: true},
		{in: " pt-BR ", want: "pt-BR", wantOK: true},
		{in: "fr-FR", wantOK: false},
		{in: "", wantOK: false},
		{in: "not a tag!", wantOK: false},
	}
	for _, tc := range tests {
		got, ok := ParseTag(tc.in)
		if ok != tc.wantOK {
			t.Fatalf("ParseTag(%q) ok = %t, want %t", tc.in, ok, tc.wantOK)
		}
		if ok && got.String() != tc.want {
			t.Fatalf("ParseTag(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestMatchTags(t *testing.T) {
	t.Parallel()

	if got := MatchTags(nil); got != DefaultTag() {
		t.Fatalf("MatchTags(nil) = %q, want %q", got, DefaultTag())
	}
	if got := MatchTags([]language.Tag{language.MustParse("pt")}); got.String() != "pt-BR" {
		t.Fatalf("MatchTags(pt) = %q, want %q", got, "pt-BR")
	}
	if got := MatchTags([]language.Tag{language.Japanese}); got != DefaultTag() {
		t.Fatalf("MatchTags(ja) = %q, want %q", got, DefaultTag())
	}
}

func TestSupportedTagsReturnsCopy(t *testing.T) {
	t.Parallel()

	tags := SupportedTags()
	tags[0] = language.Japanese
	if SupportedTags()[0] == language.Japanese {
		t.Fatal("SupportedTags exposed internal slice")
	}
}
