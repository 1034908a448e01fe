// Package composer projects a page registry into the handbook navigation view
// and its exact-path route table.
//
// Both projections are pure: the same registry always yields the same
// sections and routes.
package composer

import (
	"github.com/a-h/templ"
	"github.com/louisbranch/hooks.handbook/internal/services/handbook/registry"
	"github.com/louisbranch/hooks.handbook/internal/services/handbook/routepath"
	"github.com/louisbranch/hooks.handbook/internal/services/handbook/templates"
)

// Source is the read-only view of a registry the composer needs.
type Source interface {
	Descriptors() []registry.Descriptor
	Categories() []string
}

// Link points at one page from the navigation view.
type Link struct {
	Name string
	Path string
}

// Section groups the links of one category.
type Section struct {
	Category string
	Links    []Link
}

// Navigation returns one section per declared category, in category order.
// Links keep descriptor declaration order. Categories without pages yield an
// empty section; descriptors with an undeclared category are left out.
func Navigation(src Source) []Section {
	if src == nil {
		return nil
	}
	categories := src.Categories()
	sections := make([]Section, 0, len(categories))
	index := make(map[string]int, len(categories))
	for _, category := range categories {
		if _, ok := index[category]; !ok {
			index[category] = len(sections)
		}
		sections = append(sections, Section{Category: category, Links: []Link{}})
	}
	for _, descriptor := range src.Descriptors() {
		i, ok := index[descriptor.Category]
		if !ok {
			continue
		}
		sections[i].Links = append(sections[i].Links, Link{
			Name: descriptor.Name,
			Path: routepath.Page(descriptor.Name),
		})
	}
	return sections
}

// Index renders the navigation view as the root page component.
func Index(sections []Section) templ.Component {
	view := make([]templates.NavSection, 0, len(sections))
	for _, section := range sections {
		links := make([]templates.NavLink, 0, len(section.Links))
		for _, link := range section.Links {
			links = append(links, templates.NavLink{Label: link.Name, Path: link.Path})
		}
		view = append(view, templates.NavSection{Heading: section.Category, Links: links})
	}
	return templates.Index(view)
}
