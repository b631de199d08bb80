package bbcore

import (
	"errors"
	"fmt"
)

// ErrTraceOpenFailed is returned when a configured trace file could not be
// opened for writing at Engine construction time.
var ErrTraceOpenFailed = errors.New("bbcore: failed to open trace file")

// ErrNilState is returned when ProcessState is handed a nil State.
var ErrNilState = errors.New("bbcore: nil state")

// ErrNilStrategy is returned by NewEngine when no frontier strategy was supplied.
var ErrNilStrategy = errors.New("bbcore: nil frontier strategy")

// BoundInconsistencyError reports a fatal violation of global_lower_bound <=
// global_upper_bound detected immediately after an incumbent update.
//
// The engine is not required to remain usable after this error is returned;
// callers should treat the search as terminated.
type BoundInconsistencyError struct {
	Direction  Direction
	LowerBound float64
	UpperBound float64
}

func (e *BoundInconsistencyError) Error() string {
	return fmt.Sprintf("bbcore: bound inconsistency after incumbent update (direction=%v): lower=%g upper=%g", e.Direction, e.LowerBound, e.UpperBound)
}
