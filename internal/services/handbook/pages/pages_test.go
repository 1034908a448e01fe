package pages

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/louisbranch/hooks.handbook/internal/services/handbook/demoapi"
)

type fakeSource struct {
	usersErr error
	block    bool
}

func (f fakeSource) Users(ctx context.Context) ([]demoapi.User, error) {
	if f.usersErr != nil {
		return nil, f.usersErr
	}
	return []demoapi.User{{ID: 1, Name: "Leanne", Username: "bret", Company: demoapi.Company{Name: "Acme"}}}, nil
}

func (f fakeSource) Posts(ctx context.Context) ([]demoapi.Post, error) {
	if f.block {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	return []demoapi.Post{{ID: 2, UserID: 1, Title: "hello", Body: "world"}}, nil
}

func (f fakeSource) Comments(context.Context) ([]demoapi.Comment, error) {
	return []demoapi.Comment{{ID: 3, PostID: 2, Name: "reply", Body: "nice"}}, nil
}

type fetchRecorder struct {
	mu    sync.Mutex
	calls map[string]bool
}

func (r *fetchRecorder) DemoFetched(resource string, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.calls == nil {
		r.calls = map[string]bool{}
	}
	r.calls[resource] = err == nil
}

func renderString(t *testing.T, p *Page) string {
	t.Helper()
	var b strings.Builder
	if err := p.Render(context.Background(), &b); err != nil {
		t.Fatalf("Render(%s) error = %v", p.Name, err)
	}
	return b.String()
}

func TestEffectDemoIsolatesFailures(t *testing.T) {
	t.Parallel()

	rec := &fetchRecorder{}
	demo := effectDemo{deps: Deps{Demo: fakeSource{usersErr: errors.New("offline")}, Recorder: rec}}

	view := demo.load(context.Background())
	if len(view.Users) != 0 {
		t.Fatalf("users = %v, want empty after failure", view.Users)
	}
	if len(view.Posts) != 1 || view.Posts[0].Title != "hello" {
		t.Fatalf("posts = %v, want one post", view.Posts)
	}
	if len(view.Comments) != 1 || view.Comments[0].PostID != 2 {
		t.Fatalf("comments = %v, want one comment", view.Comments)
	}
	want := map[string]bool{"users": false, "posts": true, "comments": true}
	if diff := cmp.Diff(want, rec.calls); diff != "" {
		t.Fatalf("recorded fetches mismatch (-want +got):\n%s", diff)
	}
}

func TestEffectDemoBoundsSlowFetches(t *testing.T) {
	t.Parallel()

	demo := effectDemo{deps: Deps{Demo: fakeSource{block: true}, FetchTimeout: 20 * time.Millisecond}}

	started := time.Now()
	view := demo.load(context.Background())
	if elapsed := time.Since(started); elapsed > 2*time.Second {
		t.Fatalf("load took %s, want bounded by fetch timeout", elapsed)
	}
	if len(view.Posts) != 0 {
		t.Fatalf("posts = %v, want empty after timeout", view.Posts)
	}
	if len(view.Users) != 1 {
		t.Fatalf("users = %v, want one user", view.Users)
	}
}

func TestEffectDemoWithoutSourceRendersEmptyStates(t *testing.T) {
	t.Parallel()

	body := renderString(t, UseEffect(Deps{}))
	if got := strings.Count(body, `class="empty"`); got != 3 {
		t.Fatalf("empty states = %d, want 3", got)
	}
}

func TestMemoDemoComputesOnce(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	page := useMemoPage(newMemoDemo(func() int {
		calls.Add(1)
		return 1234
	}))

	for range 3 {
		body := renderString(t, page)
		if !strings.Contains(body, `data-result="1234"`) {
			t.Fatalf("body missing memo result:\n%s", body)
		}
	}
	if got := calls.Load(); got != 1 {
		t.Fatalf("compute calls = %d, want 1", got)
	}
}

func TestIDDemoGeneratesFreshIDsPerRender(t *testing.T) {
	t.Parallel()

	page := UseID()
	idPattern := regexp.MustCompile(`id="([^"]+)-email"`)

	first := idPattern.FindStringSubmatch(renderString(t, page))
	second := idPattern.FindStringSubmatch(renderString(t, page))
	if first == nil || second == nil {
		t.Fatal("expected generated email input ids")
	}
	if first[1] == second[1] {
		t.Fatalf("ids repeated across renders: %q", first[1])
	}
}

func TestIDDemoUsesInjectedGenerator(t *testing.T) {
	t.Parallel()

	body := renderString(t, useIDPage(idDemo{newID: func() string { return "fixed" }}))
	for _, want := range []string{`for="fixed-email"`, `id="fixed-email"`, `for="fixed-password"`, `id="fixed-password"`} {
		if !strings.Contains(body, want) {
			t.Fatalf("body missing %q:\n%s", want, body)
		}
	}
}

func TestEveryPageRenders(t *testing.T) {
	t.Parallel()

	all := []*Page{
		UseState(), UseEffect(Deps{}), UseRef(), UseLayoutEffect(),
		useMemoPage(newMemoDemo(func() int { return 1 })), UseCallback(), UseReducer(),
		UseTransition(), UseDeferredValue(),
		UseDebugValue(), UseImperativeHandle(), UseID(),
	}
	for _, page := range all {
		body := renderString(t, page)
		if !strings.Contains(body, `id="`+page.Name+`Page"`) {
			t.Fatalf("%s: body missing section id", page.Name)
		}
		if !strings.Contains(body, `id="back-link"`) {
			t.Fatalf("%s: body missing back link", page.Name)
		}
		if page.Snippet == "" || len(page.Paragraphs) == 0 {
			t.Fatalf("%s: page has no content", page.Name)
		}
	}
}
