package registry

import (
	"fmt"
	"strings"

	"github.com/louisbranch/hooks.handbook/internal/services/handbook/routepath"
)

// ProblemKind classifies a definition-time defect.
type ProblemKind string

const (
	ProblemEmptyName         ProblemKind = "empty_name"
	ProblemInvalidName       ProblemKind = "invalid_name"
	ProblemReservedName      ProblemKind = "reserved_name"
	ProblemDuplicateName     ProblemKind = "duplicate_name"
	ProblemOrphanCategory    ProblemKind = "orphan_category"
	ProblemDuplicateCategory ProblemKind = "duplicate_category"
	ProblemMissingRenderer   ProblemKind = "missing_renderer"
)

// Problem is one defect found by Lint.
type Problem struct {
	Kind ProblemKind
	// Index is the descriptor or category position the problem refers to.
	Index int
	// Name is the offending page name or category label.
	Name string
}

func (p Problem) String() string {
	return fmt.Sprintf("%s at %d: %q", p.Kind, p.Index, p.Name)
}

// Lint reports definition-time defects without changing how the registry is
// composed: duplicate names are still resolved first-wins and orphaned pages
// stay routable.
func (r *Registry) Lint() []Problem {
	if r == nil {
		return nil
	}
	var problems []Problem

	declared := make(map[string]struct{}, len(r.categories))
	for i, category := range r.categories {
		if _, ok := declared[category]; ok {
			problems = append(problems, Problem{Kind: ProblemDuplicateCategory, Index: i, Name: category})
			continue
		}
		declared[category] = struct{}{}
	}

	seen := make(map[string]struct{}, len(r.descriptors))
	for i, descriptor := range r.descriptors {
		name := descriptor.Name
		switch {
		case strings.TrimSpace(name) == "":
			problems = append(problems, Problem{Kind: ProblemEmptyName, Index: i, Name: name})
		case !routepath.IsSegment(name):
			problems = append(problems, Problem{Kind: ProblemInvalidName, Index: i, Name: name})
		case routepath.IsReserved(name):
			problems = append(problems, Problem{Kind: ProblemReservedName, Index: i, Name: name})
		}
		if _, ok := seen[name]; ok {
			problems = append(problems, Problem{Kind: ProblemDuplicateName, Index: i, Name: name})
		}
		seen[name] = struct{}{}
		if _, ok := declared[descriptor.Category]; !ok {
			problems = append(problems, Problem{Kind: ProblemOrphanCategory, Index: i, Name: descriptor.Category})
		}
		if descriptor.Renderer == nil {
			problems = append(problems, Problem{Kind: ProblemMissingRenderer, Index: i, Name: name})
		}
	}
	return problems
}
