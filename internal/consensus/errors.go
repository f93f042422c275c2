package consensus

import "errors"

var (
	// ErrDuplicateEvaluator rejects assignments naming the same evaluator twice.
	ErrDuplicateEvaluator = errors.New("duplicate evaluator")

	// ErrAlreadyAssigned rejects a second assignment for the same unit.
	ErrAlreadyAssigned = errors.New("unit already assigned")

	// ErrUnknownEvaluator rejects decisions from identities outside the two slots.
	ErrUnknownEvaluator = errors.New("unknown evaluator")

	// ErrAlreadyDecided rejects a second decision on the same slot. Decisions
	// are write-once.
	ErrAlreadyDecided = errors.New("evaluator already decided")
)
