package composer

import (
	"github.com/a-h/templ"
	"github.com/louisbranch/hooks.handbook/internal/services/handbook/registry"
	"github.com/louisbranch/hooks.handbook/internal/services/handbook/routepath"
)

// Route maps one exact path to the renderer invoked for it.
type Route struct {
	Path string
	// Name is the page name, or empty for the root route.
	Name     string
	Renderer templ.Component
}

// RouteTable is the flat, exact-match route set derived from a registry.
type RouteTable struct {
	routes   []Route
	byPath   map[string]int
	shadowed []registry.Descriptor
}

// Routes builds the route table: the root route rendering index, then one
// route per descriptor at "/" + name.
//
// When names collide the first declaration wins; later descriptors are kept
// out of the table and reported by Shadowed.
func Routes(src Source, index templ.Component) *RouteTable {
	table := &RouteTable{byPath: map[string]int{}}
	table.add(Route{Path: routepath.Root, Renderer: index})
	if src == nil {
		return table
	}
	for _, descriptor := range src.Descriptors() {
		route := Route{
			Path:     routepath.Page(descriptor.Name),
			Name:     descriptor.Name,
			Renderer: descriptor.Renderer,
		}
		if !table.add(route) {
			table.shadowed = append(table.shadowed, descriptor)
		}
	}
	return table
}

func (t *RouteTable) add(route Route) bool {
	if _, exists := t.byPath[route.Path]; exists {
		return false
	}
	t.byPath[route.Path] = len(t.routes)
	t.routes = append(t.routes, route)
	return true
}

// Routes returns every route in registration order, root first.
func (t *RouteTable) Routes() []Route {
	if t == nil {
		return nil
	}
	return append([]Route(nil), t.routes...)
}

// Lookup returns the route registered at exactly path. Matching is
// case-sensitive and never strips trailing slashes.
func (t *RouteTable) Lookup(path string) (Route, bool) {
	if t == nil {
		return Route{}, false
	}
	i, ok := t.byPath[path]
	if !ok {
		return Route{}, false
	}
	return t.routes[i], true
}

// Shadowed returns descriptors dropped because an earlier one owned the path.
func (t *RouteTable) Shadowed() []registry.Descriptor {
	if t == nil {
		return nil
	}
	return append([]registry.Descriptor(nil), t.shadowed...)
}
