package fuel

import "time"

type EventKind string

const (
	KindConsumption      EventKind = "consumption"
	KindManualAdjustment EventKind = "manual_adjustment"
)

type Shift string

const (
	ShiftDay   Shift = "day"
	ShiftNight Shift = "night"
)

func (s Shift) Valid() bool { return s == ShiftDay || s == ShiftNight }

// Event is one append-only entry of the tank's history. For consumption
// Amount is the positive draw; for a manual adjustment it is the signed
// delta from the previous balance.
type Event struct {
	ID        int64
	CreatedAt time.Time
	Kind      EventKind
	Amount    float64
	Machine   string
	Shift     Shift
	Actor     string
}
