package catalog

// NoMatchesMessage is shown when a view has no rows.
const NoMatchesMessage = "No products matching selected criteria"

// CategoryLabel renders the category column, e.g. "🍏 - Fruits".
// It is empty when the category does not resolve.
func CategoryLabel(p EnrichedProduct) string {
	if p.Category == nil {
		return ""
	}
	return p.Category.Icon + " - " + p.Category.Title
}

// OwnerName returns the resolved owner's name, or "".
func OwnerName(p EnrichedProduct) string {
	if p.User == nil {
		return ""
	}
	return p.User.Name
}

// OwnerSex returns the resolved owner's sex, or "" when unresolved.
func OwnerSex(p EnrichedProduct) Sex {
	if p.User == nil {
		return ""
	}
	return p.User.Sex
}
