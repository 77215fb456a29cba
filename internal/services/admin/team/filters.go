package team

import (
	"fmt"
	"strings"
	"time"
)

// Policy decides how the predicate slot and the search slot combine.
type Policy string

const (
	// PolicyReplace keeps at most one active slot: applying a facet, an
	// expression, or a search clears the other slot.
	PolicyReplace Policy = "replace"
	// PolicyIntersect keeps both slots and shows records matching both.
	PolicyIntersect Policy = "intersect"
)

// ParsePolicy parses a policy name. Blank selects PolicyReplace.
func ParsePolicy(raw string) (Policy, error) {
	switch Policy(strings.ToLower(strings.TrimSpace(raw))) {
	case "", PolicyReplace:
		return PolicyReplace, nil
	case PolicyIntersect:
		return PolicyIntersect, nil
	default:
		return "", fmt.Errorf("unknown filter policy %q", raw)
	}
}

// Filters is the active filter state of the team table. The predicate slot
// holds either a facet option or an expression, never both.
type Filters struct {
	policy     Policy
	facet      string
	expression *Expression
	search     string
}

// NewFilters returns an empty filter state under policy.
func NewFilters(policy Policy) Filters {
	if policy == "" {
		policy = PolicyReplace
	}
	return Filters{policy: policy}
}

// Policy returns the composition policy.
func (f Filters) Policy() Policy {
	return f.policy
}

// Facet returns the selected facet option id, if any.
func (f Filters) Facet() string {
	return f.facet
}

// Expression returns the active filter expression, if any.
func (f Filters) Expression() *Expression {
	return f.expression
}

// SearchTerm returns the active search term, if any.
func (f Filters) SearchTerm() string {
	return f.search
}

// IsEmpty reports whether no slot is active.
func (f Filters) IsEmpty() bool {
	return f.facet == "" && f.expression == nil && f.search == ""
}

// WithFacet fills the predicate slot with a facet option.
func (f Filters) WithFacet(id string) Filters {
	f.facet = id
	f.expression = nil
	if f.policy != PolicyIntersect {
		f.search = ""
	}
	return f
}

// WithExpression fills the predicate slot with a filter expression. A nil
// expression empties the predicate slot.
func (f Filters) WithExpression(e *Expression) Filters {
	f.facet = ""
	f.expression = e
	if e != nil && f.policy != PolicyIntersect {
		f.search = ""
	}
	return f
}

// WithSearch fills the search slot. An empty term empties it. Under
// PolicyReplace any search, empty or not, also empties the predicate slot, so
// an empty search shows the full list.
func (f Filters) WithSearch(term string) Filters {
	f.search = term
	if f.policy != PolicyIntersect {
		f.facet = ""
		f.expression = nil
	}
	return f
}

// Cleared empties both slots.
func (f Filters) Cleared() Filters {
	return NewFilters(f.policy)
}

// Predicate combines the active slots into one predicate.
func (f Filters) Predicate(clock func() time.Time) Predicate {
	var predicates []Predicate
	switch {
	case f.facet != "":
		if p, ok := facetPredicate(f.facet, clock); ok {
			predicates = append(predicates, p)
		}
	case f.expression != nil:
		predicates = append(predicates, f.expression.Predicate(clock))
	}
	if f.search != "" {
		predicates = append(predicates, SearchPredicate(f.search))
	}
	return func(r Record) bool {
		for _, p := range predicates {
			if !p(r) {
				return false
			}
		}
		return true
	}
}
