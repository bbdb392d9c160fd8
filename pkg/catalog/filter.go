package catalog

import "strings"

// AllOwners disables the owner filter. User ids start at 1.
const AllOwners = 0

// MatchesQuery reports whether name contains query, ignoring case.
// An empty query matches every name.
func MatchesQuery(name, query string) bool {
	return strings.Contains(strings.ToLower(name), strings.ToLower(query))
}

// OwnedBy reports whether the resolved owner of p has the given id.
// Products with an unresolved owner are never owned.
func OwnedBy(p EnrichedProduct, ownerID int) bool {
	return p.User != nil && p.User.ID == ownerID
}

// Filter returns the products whose name contains query and, unless ownerID is
// AllOwners, whose resolved owner has ownerID. Order is preserved.
func Filter(products []EnrichedProduct, ownerID int, query string) []EnrichedProduct {
	out := make([]EnrichedProduct, 0, len(products))
	for _, p := range products {
		if ownerID != AllOwners && !OwnedBy(p, ownerID) {
			continue
		}
		if !MatchesQuery(p.Name, query) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// FilterByCategory keeps the products whose resolved category title equals title.
// Products with an unresolved category are dropped.
func FilterByCategory(products []EnrichedProduct, title string) []EnrichedProduct {
	out := make([]EnrichedProduct, 0, len(products))
	for _, p := range products {
		if p.Category != nil && p.Category.Title == title {
			out = append(out, p)
		}
	}
	return out
}
