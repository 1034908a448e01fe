// Package hooks declares the handbook: its categories and the ordered list
// of hook pages.
package hooks

import (
	"github.com/louisbranch/hooks.handbook/internal/services/handbook/pages"
	"github.com/louisbranch/hooks.handbook/internal/services/handbook/registry"
)

// Category labels in menu order.
const (
	CategoryBasic        = "Basic State & Lifecycle"
	CategoryOptimization = "Data Optimization"
	CategoryConcurrent   = "Concurrent UI"
	CategoryAdvanced     = "Advanced Utility"
)

// Categories returns the category labels in menu order.
func Categories() []string {
	return []string{
		CategoryBasic,
		CategoryOptimization,
		CategoryConcurrent,
		CategoryAdvanced,
	}
}

// Descriptors returns every hook page in declaration order.
func Descriptors(deps pages.Deps) []registry.Descriptor {
	return []registry.Descriptor{
		describe(pages.UseState(), CategoryBasic),
		describe(pages.UseEffect(deps), CategoryBasic),
		describe(pages.UseRef(), CategoryBasic),
		describe(pages.UseLayoutEffect(), CategoryBasic),

		describe(pages.UseMemo(), CategoryOptimization),
		describe(pages.UseCallback(), CategoryOptimization),
		describe(pages.UseReducer(), CategoryOptimization),

		describe(pages.UseTransition(), CategoryConcurrent),
		describe(pages.UseDeferredValue(), CategoryConcurrent),

		describe(pages.UseDebugValue(), CategoryAdvanced),
		describe(pages.UseImperativeHandle(), CategoryAdvanced),
		describe(pages.UseID(), CategoryAdvanced),
	}
}

// Registry builds the handbook registry.
func Registry(deps pages.Deps) *registry.Registry {
	return registry.New(Categories(), Descriptors(deps))
}

func describe(page *pages.Page, category string) registry.Descriptor {
	return registry.Descriptor{Name: page.Name, Category: category, Renderer: page}
}
