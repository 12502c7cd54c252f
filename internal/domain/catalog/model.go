package catalog

import "time"

// Well-known list names. Lists back the operator-facing dropdowns, so new
// values can be added at runtime without a schema change.
const (
	ListMachines     = "machines"
	ListDestinations = "destinations"
)

type RefItem struct {
	ID        int64
	ListName  string
	Value     string
	Active    bool
	CreatedAt time.Time
}
