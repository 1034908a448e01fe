// Package registry holds the ordered, immutable set of handbook pages and the
// categories that group them.
//
// A Registry is built once at startup and only read afterwards, so it can be
// shared by concurrent request handlers without locking.
package registry

import "github.com/a-h/templ"

// Descriptor names one handbook page.
type Descriptor struct {
	// Name is the page identifier; it is also the URL path segment and the
	// menu label.
	Name string
	// Category groups the page under one declared category heading.
	Category string
	// Renderer produces the page body. It takes no page inputs.
	Renderer templ.Component
}

// Registry is the authoritative list of pages and categories.
type Registry struct {
	categories  []string
	descriptors []Descriptor
}

// New builds a registry from categories and descriptors in declaration order.
// Inputs are copied; later changes to the caller's slices are not observed.
func New(categories []string, descriptors []Descriptor) *Registry {
	return &Registry{
		categories:  append([]string(nil), categories...),
		descriptors: append([]Descriptor(nil), descriptors...),
	}
}

// Descriptors returns every page in declaration order.
func (r *Registry) Descriptors() []Descriptor {
	if r == nil {
		return nil
	}
	return append([]Descriptor(nil), r.descriptors...)
}

// Categories returns category labels in declaration order.
func (r *Registry) Categories() []string {
	if r == nil {
		return nil
	}
	return append([]string(nil), r.categories...)
}
