// Package catalog provides the catalog data model and the pure join and filter
// operations used by every view of it.
package catalog

// Sex is a user's sex as stored in the reference data.
type Sex string

const (
	SexMale   Sex = "m"
	SexFemale Sex = "f"
)

// Valid reports whether s is one of the known values.
func (s Sex) Valid() bool {
	return s == SexMale || s == SexFemale
}

// User owns zero or more categories.
type User struct {
	ID   int    `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
	Sex  Sex    `json:"sex" yaml:"sex"`
}

// Category groups products. OwnerID references User.ID.
type Category struct {
	ID      int    `json:"id" yaml:"id"`
	Title   string `json:"title" yaml:"title"`
	Icon    string `json:"icon" yaml:"icon"`
	OwnerID int    `json:"ownerId" yaml:"ownerId"`
}

// Product references its category by id. The reference is not guaranteed to resolve.
type Product struct {
	ID         int    `json:"id" yaml:"id"`
	Name       string `json:"name" yaml:"name"`
	CategoryID int    `json:"categoryId" yaml:"categoryId"`
}

// Dataset holds the three reference tables. It is read-only once loaded.
type Dataset struct {
	Users      []User     `json:"users" yaml:"users"`
	Categories []Category `json:"categories" yaml:"categories"`
	Products   []Product  `json:"products" yaml:"products"`
}

// EnrichedProduct is a product joined with its category and the category's owner.
// Category is nil when the product's category does not resolve; User is nil when
// Category is nil or its owner does not resolve.
type EnrichedProduct struct {
	Product
	Category *Category `json:"category"`
	User     *User     `json:"user"`
}
