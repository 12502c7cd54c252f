package alerts

import "github.com/vkuzn/depot-stock/internal/domain/inventory"

// IsLow reports whether an item sits at or below its alert threshold.
// The boundary is inclusive: quantity exactly equal to the threshold is
// low. This is the dashboard's trigger point for operator action.
func IsLow(it inventory.Item) bool {
	return it.Quantity <= it.AlertThreshold
}
