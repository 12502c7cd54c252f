package dispatch

import "time"

// Dispatch is one record of material leaving the depot. The log is
// append-only; dispatches are never edited or removed.
type Dispatch struct {
	ID          int64
	CreatedAt   time.Time
	Name        string
	Quantity    float64
	Destination string
	Recipient   string
	Actor       string
}

type Input struct {
	Name        string
	Quantity    float64
	Destination string
	Recipient   string
}
