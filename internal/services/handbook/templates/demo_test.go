package templates

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/net/html"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func hasClass(class string) func(*html.Node) bool {
	return func(n *html.Node) bool {
		return n.Type == html.ElementNode && attr(n, "class") == class
	}
}

func TestEffectDemoRendersResources(t *testing.T) {
	t.Parallel()

	view := EffectDemoView{
		Users:    []DemoUser{{Name: "Leanne", Username: "bret", Email: "l@example.com", Phone: "555", Company: "Acme"}},
		Posts:    []DemoPost{{Title: "hello", Body: "first", UserID: 1}, {Title: "again", Body: "second", UserID: 2}},
		Comments: []DemoComment{{Name: "reply", Email: "c@example.com", Body: "nice", PostID: 7}},
	}
	doc := parse(t, render(t, context.Background(), EffectDemo(view)))

	users := findAll(doc, hasClass("data-item user-item"))
	if len(users) != 1 {
		t.Fatalf("user items = %d, want 1", len(users))
	}
	if got := textOf(users[0]); got != "Leanne (@bret)Email: l@example.comPhone: 555Company: Acme" {
		t.Fatalf("user text = %q", got)
	}

	var titles []string
	for _, post := range findAll(doc, hasClass("data-item post-item")) {
		titles = append(titles, textOf(findAll(post, isElement("h3"))[0]))
	}
	if diff := cmp.Diff([]string{"hello", "again"}, titles); diff != "" {
		t.Fatalf("post titles mismatch (-want +got):\n%s", diff)
	}

	comments := findAll(doc, hasClass("data-item comment-item"))
	if len(comments) != 1 {
		t.Fatalf("comment items = %d, want 1", len(comments))
	}
	if got := textOf(findAll(comments[0], isElement("small"))[0]); got != "On post #7" {
		t.Fatalf("comment footer = %q, want %q", got, "On post #7")
	}
	if empty := findAll(doc, hasClass("empty")); len(empty) != 0 {
		t.Fatalf("empty states = %d, want 0", len(empty))
	}
}

func TestEffectDemoEmptyStatePerResource(t *testing.T) {
	t.Parallel()

	view := EffectDemoView{Posts: []DemoPost{{Title: "only posts", UserID: 3}}}
	doc := parse(t, render(t, context.Background(), EffectDemo(view)))

	var emptyIn []string
	for _, resource := range findAll(doc, hasClass("resource")) {
		if len(findAll(resource, hasClass("empty"))) > 0 {
			emptyIn = append(emptyIn, attr(resource, "id"))
		}
	}
	if diff := cmp.Diff([]string{"demo-users", "demo-comments"}, emptyIn); diff != "" {
		t.Fatalf("empty resources mismatch (-want +got):\n%s", diff)
	}
}

func TestMemoDemoLocalizesResult(t *testing.T) {
	t.Parallel()

	tag := language.MustParse("pt-BR")
	ctx := WithLocalizer(context.Background(), message.NewPrinter(tag), tag)
	doc := parse(t, render(t, ctx, MemoDemo(42)))

	results := findAll(doc, hasClass("memo-result"))
	if len(results) != 1 {
		t.Fatalf("memo results = %d, want 1", len(results))
	}
	if got := attr(results[0], "data-result"); got != "42" {
		t.Fatalf("data-result = %q, want %q", got, "42")
	}
	if got := textOf(results[0]); got != "Resultado do cálculo custoso: 42" {
		t.Fatalf("memo text = %q, want pt-BR message", got)
	}
}

func TestIDDemoLinksLabelsToInputs(t *testing.T) {
	t.Parallel()

	doc := parse(t, render(t, context.Background(), IDDemo("email-1", "password-1")))

	labels := findAll(doc, isElement("label"))
	inputs := findAll(doc, isElement("input"))
	if len(labels) != 2 || len(inputs) != 2 {
		t.Fatalf("labels=%d inputs=%d, want 2 each", len(labels), len(inputs))
	}
	for i := range labels {
		if attr(labels[i], "for") != attr(inputs[i], "id") {
			t.Fatalf("label %d for=%q does not match input id=%q", i, attr(labels[i], "for"), attr(inputs[i], "id"))
		}
	}
}
