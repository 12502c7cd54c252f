package inventory

import "time"

// Category is one of the independent inventory domains. Each category has
// its own record store; nothing links quantities across categories.
type Category string

const (
	CategoryOil      Category = "oil"
	CategoryChemical Category = "chemical"
	CategoryPart     Category = "part"
)

// Categories in display order.
var Categories = []Category{CategoryOil, CategoryChemical, CategoryPart}

func (c Category) Label() string {
	switch c {
	case CategoryOil:
		return "oil"
	case CategoryChemical:
		return "chemical"
	case CategoryPart:
		return "spare part"
	}
	return string(c)
}

type Item struct {
	ID             int64
	Category       Category
	Name           string
	Quantity       float64
	Unit           string
	Location       string // storage location, used by spare parts
	AlertThreshold float64
	UpdatedAt      time.Time
	UpdatedBy      string
}

// Input carries the caller-supplied fields of an item. Identity and
// modification metadata are assigned by the store.
type Input struct {
	Name           string
	Quantity       float64
	Unit           string
	Location       string
	AlertThreshold float64
}
