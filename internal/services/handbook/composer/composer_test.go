package composer

import (
	"context"
	"io"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/louisbranch/hooks.handbook/internal/services/handbook/registry"
)

// stub is a comparable renderer so tests can check route identity.
type stub struct {
	Body string
}

func (s stub) Render(_ context.Context, w io.Writer) error {
	_, err := io.WriteString(w, s.Body)
	return err
}

var (
	r1  = stub{Body: "R1"}
	r2  = stub{Body: "R2"}
	nav = stub{Body: "Nav"}
)

func scenarioRegistry() *registry.Registry {
	return registry.New([]string{"Basic", "Optimization"}, []registry.Descriptor{
		{Name: "useState", Category: "Basic", Renderer: r1},
		{Name: "useMemo", Category: "Optimization", Renderer: r2},
	})
}

func TestNavigationScenario(t *testing.T) {
	t.Parallel()

	want := []Section{
		{Category: "Basic", Links: []Link{{Name: "useState", Path: "/useState"}}},
		{Category: "Optimization", Links: []Link{{Name: "useMemo", Path: "/useMemo"}}},
	}
	if diff := cmp.Diff(want, Navigation(scenarioRegistry())); diff != "" {
		t.Fatalf("Navigation() mismatch (-want +got):\n%s", diff)
	}
}

func TestRoutesScenario(t *testing.T) {
	t.Parallel()

	table := Routes(scenarioRegistry(), nav)
	want := []Route{
		{Path: "/", Renderer: nav},
		{Path: "/useState", Name: "useState", Renderer: r1},
		{Path: "/useMemo", Name: "useMemo", Renderer: r2},
	}
	if diff := cmp.Diff(want, table.Routes()); diff != "" {
		t.Fatalf("Routes() mismatch (-want +got):\n%s", diff)
	}
	if shadowed := table.Shadowed(); len(shadowed) != 0 {
		t.Fatalf("Shadowed() = %v, want none", shadowed)
	}
}

func TestNavigationKeepsDeclarationOrderWithinCategory(t *testing.T) {
	t.Parallel()

	reg := registry.New([]string{"Advanced", "Basic"}, []registry.Descriptor{
		{Name: "useState", Category: "Basic"},
		{Name: "useId", Category: "Advanced"},
		{Name: "useEffect", Category: "Basic"},
		{Name: "useDebugValue", Category: "Advanced"},
		{Name: "useRef", Category: "Basic"},
	})

	want := []Section{
		{Category: "Advanced", Links: []Link{{Name: "useId", Path: "/useId"}, {Name: "useDebugValue", Path: "/useDebugValue"}}},
		{Category: "Basic", Links: []Link{{Name: "useState", Path: "/useState"}, {Name: "useEffect", Path: "/useEffect"}, {Name: "useRef", Path: "/useRef"}}},
	}
	if diff := cmp.Diff(want, Navigation(reg)); diff != "" {
		t.Fatalf("Navigation() mismatch (-want +got):\n%s", diff)
	}
}

func TestNavigationKeepsEmptyCategoryHeading(t *testing.T) {
	t.Parallel()

	reg := registry.New([]string{"Basic", "Concurrent UI"}, []registry.Descriptor{
		{Name: "useState", Category: "Basic", Renderer: r1},
	})

	sections := Navigation(reg)
	if len(sections) != 2 {
		t.Fatalf("section count = %d, want 2", len(sections))
	}
	if sections[1].Category != "Concurrent UI" {
		t.Fatalf("section[1] = %q, want %q", sections[1].Category, "Concurrent UI")
	}
	if sections[1].Links == nil || len(sections[1].Links) != 0 {
		t.Fatalf("section[1] links = %#v, want empty non-nil list", sections[1].Links)
	}
}

func TestOrphanedCategoryIsRoutableButNotListed(t *testing.T) {
	t.Parallel()

	reg := registry.New([]string{"Basic"}, []registry.Descriptor{
		{Name: "useState", Category: "Basic", Renderer: r1},
		{Name: "useMemo", Category: "Optimization", Renderer: r2},
	})

	for _, section := range Navigation(reg) {
		for _, link := range section.Links {
			if link.Name == "useMemo" {
				t.Fatalf("orphaned page listed under %q", section.Category)
			}
		}
	}
	route, ok := Routes(reg, nav).Lookup("/useMemo")
	if !ok || route.Renderer != r2 {
		t.Fatalf("Lookup(/useMemo) = (%v, %t), want R2 route", route, ok)
	}
}

func TestDuplicateNameFirstDeclarationWins(t *testing.T) {
	t.Parallel()

	reg := registry.New([]string{"Basic"}, []registry.Descriptor{
		{Name: "useState", Category: "Basic", Renderer: r1},
		{Name: "useState", Category: "Basic", Renderer: r2},
	})

	table := Routes(reg, nav)
	count := 0
	for _, route := range table.Routes() {
		if route.Path == "/useState" {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("/useState route count = %d, want 1", count)
	}
	route, ok := table.Lookup("/useState")
	if !ok || route.Renderer != r1 {
		t.Fatalf("Lookup(/useState) renderer = %v, want first declaration R1", route.Renderer)
	}
	shadowed := table.Shadowed()
	if len(shadowed) != 1 || shadowed[0].Renderer != r2 {
		t.Fatalf("Shadowed() = %v, want the second declaration", shadowed)
	}
}

func TestDescriptorNamedLikeRootCannotReplaceIndex(t *testing.T) {
	t.Parallel()

	reg := registry.New([]string{"Basic"}, []registry.Descriptor{
		{Name: "", Category: "Basic", Renderer: r1},
	})

	route, ok := Routes(reg, nav).Lookup("/")
	if !ok || route.Renderer != nav {
		t.Fatalf("Lookup(/) renderer = %v, want index", route.Renderer)
	}
}

func TestProjectionsAreIdempotent(t *testing.T) {
	t.Parallel()

	reg := scenarioRegistry()
	if diff := cmp.Diff(Navigation(reg), Navigation(reg)); diff != "" {
		t.Fatalf("Navigation() not idempotent (-first +second):\n%s", diff)
	}
	if diff := cmp.Diff(Routes(reg, nav).Routes(), Routes(reg, nav).Routes()); diff != "" {
		t.Fatalf("Routes() not idempotent (-first +second):\n%s", diff)
	}
}

func TestUniqueNamesYieldUniquePaths(t *testing.T) {
	t.Parallel()

	reg := registry.New([]string{"Basic"}, []registry.Descriptor{
		{Name: "useState", Category: "Basic", Renderer: r1},
		{Name: "useEffect", Category: "Basic", Renderer: r2},
		{Name: "useRef", Category: "Basic", Renderer: r1},
	})

	table := Routes(reg, nav)
	seen := map[string]bool{}
	for _, route := range table.Routes() {
		if seen[route.Path] {
			t.Fatalf("duplicate path %q", route.Path)
		}
		seen[route.Path] = true
	}
	for _, descriptor := range reg.Descriptors() {
		route, ok := table.Lookup("/" + descriptor.Name)
		if !ok || route.Renderer != descriptor.Renderer {
			t.Fatalf("descriptor %q not routed to its renderer", descriptor.Name)
		}
	}
}

func TestLookupIsExactAndCaseSensitive(t *testing.T) {
	t.Parallel()

	table := Routes(scenarioRegistry(), nav)
	for _, path := range []string{"/usestate", "/useState/", "/useState/x", "useState", "//useState", ""} {
		if _, ok := table.Lookup(path); ok {
			t.Fatalf("Lookup(%q) matched, want no match", path)
		}
	}
}

func TestNilSources(t *testing.T) {
	t.Parallel()

	if got := Navigation(nil); got != nil {
		t.Fatalf("Navigation(nil) = %v, want nil", got)
	}
	table := Routes(nil, nav)
	if got := len(table.Routes()); got != 1 {
		t.Fatalf("Routes(nil) count = %d, want root only", got)
	}
	var nilTable *RouteTable
	if _, ok := nilTable.Lookup("/"); ok {
		t.Fatal("expected nil table lookup to miss")
	}
}
