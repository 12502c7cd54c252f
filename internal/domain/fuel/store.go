package fuel

import "context"

// Store is the transactional boundary around the tank balance. Every
// mutating call must apply the balance change, its fuel event and its
// audit entry atomically, or none of them.
type Store interface {
	// Balance returns the current tank balance in liters.
	Balance(ctx context.Context) (float64, error)

	// Consume atomically decrements the balance by amount, recording the
	// consumption event and audit entry. ok is false when the balance does
	// not cover the draw; nothing is written in that case.
	Consume(ctx context.Context, machine string, shift Shift, amount float64, actor string) (newBalance float64, ok bool, err error)

	// Override sets the balance to newTotal, recording a manual-adjustment
	// event with the signed delta and an audit entry.
	Override(ctx context.Context, newTotal float64, actor string) (delta float64, err error)

	// History returns all tank events; order is unspecified.
	History(ctx context.Context) ([]Event, error)
}
