// Package view holds the browsing state of the catalog screen as an immutable
// value. Every user intent is a reducer that returns a new State.
package view

import (
	"slices"

	"github.com/marshallshelly/catalog/pkg/catalog"
)

// State is the complete filter state of one catalog view.
//
// The owner and query filters are recomputed from the full list on every call to
// Visible. The category stage is different: each applied category narrows the
// list it held before, and only Reset restores it.
type State struct {
	products []catalog.EnrichedProduct

	owner int
	query string

	// nil until the first category is applied
	categoryStage []catalog.EnrichedProduct
	categories    []string
}

// New creates the initial state over an enriched product list.
func New(products []catalog.EnrichedProduct) State {
	return State{products: products, owner: catalog.AllOwners}
}

// FromDataset enriches ds and creates the initial state over it.
func FromDataset(ds catalog.Dataset) State {
	return New(catalog.Enrich(ds))
}

// Owner returns the selected owner id, or catalog.AllOwners.
func (s State) Owner() int { return s.owner }

// Query returns the current search text.
func (s State) Query() string { return s.query }

// Categories returns the category titles applied so far, in click order.
func (s State) Categories() []string { return slices.Clone(s.categories) }

// CategoryEngaged reports whether any category has been applied since the last reset.
func (s State) CategoryEngaged() bool { return s.categoryStage != nil }

// Products returns the full enriched list the state was built from.
func (s State) Products() []catalog.EnrichedProduct { return s.products }

// SetOwner selects an owner. catalog.AllOwners clears the owner filter.
func (s State) SetOwner(id int) State {
	s.owner = id
	return s
}

// SetQuery replaces the search text.
func (s State) SetQuery(q string) State {
	s.query = q
	return s
}

// ClearQuery empties the search text.
func (s State) ClearQuery() State {
	return s.SetQuery("")
}

// ApplyCategory narrows the category stage to products of the given category
// title. Successive calls intersect.
func (s State) ApplyCategory(title string) State {
	base := s.categoryStage
	if base == nil {
		base = s.products
	}
	s.categoryStage = catalog.FilterByCategory(base, title)
	s.categories = append(slices.Clone(s.categories), title)
	return s
}

// Reset clears the owner, the query and the category stage.
func (s State) Reset() State {
	return New(s.products)
}

// Visible returns the rows to display: the owner and query filters applied to the
// category stage when it is engaged, otherwise to the full list.
func (s State) Visible() []catalog.EnrichedProduct {
	base := s.products
	if s.categoryStage != nil {
		base = s.categoryStage
	}
	return catalog.Filter(base, s.owner, s.query)
}

// Empty reports whether Visible has no rows.
func (s State) Empty() bool {
	return len(s.Visible()) == 0
}

// Filtered reports whether any filter is active.
func (s State) Filtered() bool {
	return s.owner != catalog.AllOwners || s.query != "" || s.categoryStage != nil
}
