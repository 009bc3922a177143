package game

import "fmt"

// IllegalMoveError reports a move inconsistent with the current legal
// moves. Callers recover by discarding the move and re-querying
// LegalMoves.
type IllegalMoveError struct {
	Move   Move
	Reason string
}

func (e *IllegalMoveError) Error() string {
	return fmt.Sprintf("illegal move %q: %s", e.Move, e.Reason)
}

// InvariantViolation marks a rules-engine bug: a state that correct
// operation can never reach. It is used as a panic value, never returned.
type InvariantViolation struct {
	Detail string
}

func (e InvariantViolation) Error() string {
	return fmt.Sprintf("invariant violation: %s", e.Detail)
}

func invariant(cond bool, format string, args ...any) {
	if !cond {
		panic(InvariantViolation{Detail: fmt.Sprintf(format, args...)})
	}
}
