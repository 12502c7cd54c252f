package inventory

import (
	"errors"
	"math"
	"testing"

	"github.com/vkuzn/depot-stock/internal/domain/errs"
)

func TestValidateInput(t *testing.T) {
	valid := Input{Name: "Hydraulic 46", Quantity: 20, Unit: "L", AlertThreshold: 5}

	cases := []struct {
		name   string
		mutate func(*Input)
		wantOK bool
	}{
		{"valid", func(in *Input) {}, true},
		{"zero quantity ok", func(in *Input) { in.Quantity = 0 }, true},
		{"zero threshold ok", func(in *Input) { in.AlertThreshold = 0 }, true},
		{"empty name", func(in *Input) { in.Name = "" }, false},
		{"blank name", func(in *Input) { in.Name = "   " }, false},
		{"negative quantity", func(in *Input) { in.Quantity = -1 }, false},
		{"negative threshold", func(in *Input) { in.AlertThreshold = -0.5 }, false},
		{"NaN quantity", func(in *Input) { in.Quantity = math.NaN() }, false},
		{"infinite threshold", func(in *Input) { in.AlertThreshold = math.Inf(1) }, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := valid
			tc.mutate(&in)
			err := validateInput(in)
			if tc.wantOK && err != nil {
				t.Errorf("expected valid, got: %v", err)
			}
			if !tc.wantOK && !errors.Is(err, errs.ErrValidation) {
				t.Errorf("expected ErrValidation, got: %v", err)
			}
		})
	}
}
