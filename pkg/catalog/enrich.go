package catalog

// FindCategory returns the first category with the given id, or nil.
func FindCategory(categories []Category, id int) *Category {
	for i := range categories {
		if categories[i].ID == id {
			c := categories[i]
			return &c
		}
	}
	return nil
}

// FindUser returns the first user with the given id, or nil.
func FindUser(users []User, id int) *User {
	for i := range users {
		if users[i].ID == id {
			u := users[i]
			return &u
		}
	}
	return nil
}

// EnrichProduct resolves the category of p and the owner of that category.
// Unresolved references are left nil.
func EnrichProduct(ds Dataset, p Product) EnrichedProduct {
	ep := EnrichedProduct{Product: p}
	ep.Category = FindCategory(ds.Categories, p.CategoryID)
	if ep.Category != nil {
		ep.User = FindUser(ds.Users, ep.Category.OwnerID)
	}
	return ep
}

// Enrich joins every product of ds, preserving product order.
func Enrich(ds Dataset) []EnrichedProduct {
	out := make([]EnrichedProduct, 0, len(ds.Products))
	for _, p := range ds.Products {
		out = append(out, EnrichProduct(ds, p))
	}
	return out
}
