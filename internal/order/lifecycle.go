package order

import (
	"errors"
	"fmt"

	"github.com/wellywell/washboard/internal/types"
)

var (
	ErrIllegalTransition = errors.New("illegal status transition")
	ErrTerminal          = errors.New("order is already complete")
	ErrNotFound          = errors.New("order not found")
	ErrUnknownStatus     = errors.New("unknown status")
)

// Status only moves forward. Staying put is always allowed and is a no-op.
var transitions = map[types.Status][]types.Status{
	types.PendingStatus:    {types.PendingStatus, types.InProgressStatus},
	types.InProgressStatus: {types.InProgressStatus, types.CompleteStatus},
	types.CompleteStatus:   {types.CompleteStatus},
}

var next = map[types.Status]types.Status{
	types.PendingStatus:    types.InProgressStatus,
	types.InProgressStatus: types.CompleteStatus,
	types.CompleteStatus:   types.CompleteStatus,
}

// Targets lists the statuses an order in status s may be set to.
func Targets(s types.Status) []types.Status {
	targets, ok := transitions[s]
	if !ok {
		return nil
	}
	out := make([]types.Status, len(targets))
	copy(out, targets)
	return out
}

// Next is the one-click "advance" suggestion. For a complete order it is the
// same status, so the control should be disabled.
func Next(s types.Status) types.Status {
	if n, ok := next[s]; ok {
		return n
	}
	return s
}

func CanTransition(from, to types.Status) bool {
	for _, t := range transitions[from] {
		if t == to {
			return true
		}
	}
	return false
}

func Terminal(s types.Status) bool {
	return s == types.CompleteStatus
}

type TransitionError struct {
	OrderID int
	From    types.Status
	To      types.Status
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("order %d cannot go from %s to %s", e.OrderID, e.From, e.To)
}

func (e *TransitionError) Unwrap() error {
	return ErrIllegalTransition
}
