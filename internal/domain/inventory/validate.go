package inventory

import (
	"math"
	"strings"

	"github.com/vkuzn/depot-stock/internal/domain/errs"
)

func validateInput(in Input) error {
	if strings.TrimSpace(in.Name) == "" {
		return errs.Validationf("name must not be empty")
	}
	if math.IsNaN(in.Quantity) || math.IsInf(in.Quantity, 0) {
		return errs.Validationf("quantity must be a number")
	}
	if in.Quantity < 0 {
		return errs.Validationf("quantity must be >= 0, got %v", in.Quantity)
	}
	if math.IsNaN(in.AlertThreshold) || math.IsInf(in.AlertThreshold, 0) {
		return errs.Validationf("alert threshold must be a number")
	}
	if in.AlertThreshold < 0 {
		return errs.Validationf("alert threshold must be >= 0, got %v", in.AlertThreshold)
	}
	return nil
}
