package audit

import "time"

type Action string

const (
	ActionAdd             Action = "add"
	ActionModify          Action = "modify"
	ActionDelete          Action = "delete"
	ActionConsumption     Action = "consumption"
	ActionStockAdjustment Action = "stock_adjustment"
	ActionDispatch        Action = "dispatch"
)

// Entry is one immutable record of a state-changing action. Entries are
// written once inside the mutating transaction and never updated.
type Entry struct {
	ID          int64
	CreatedAt   time.Time
	Action      Action
	Description string
	Actor       string
}

// Filter narrows List. Zero values mean "no constraint".
type Filter struct {
	Action Action
	Actor  string
	Limit  int
}
