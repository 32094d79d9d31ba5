package boolcore

import "errors"

var (
	// ErrInvalidInput names a structurally malformed input polygon (open
	// face, non-closed ring) (§7 InvalidInput). No function in this module
	// returns it: polystore does not validate input rings, and the engine
	// does not repair them.
	ErrInvalidInput = errors.New("boolcore: invalid input polygon")

	// ErrUnresolvedTouching indicates a crossing still has edge_after
	// undefined after Restitch: a topological inconsistency (a dead end).
	// Callers should not retry with the same inputs (§7 UnresolvedTouching).
	ErrUnresolvedTouching = errors.New("boolcore: unresolved touching point after restitch")
)
