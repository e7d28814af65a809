// SPDX-License-Identifier: MIT

// Sentinel error set.
// Every exported operation returns one of these sentinels, possibly wrapped
// with positional context via fmt.Errorf("...: %w", ErrX). Callers match
// with errors.Is. Nothing here panics on user input.

package partition

import "errors"

var (
	// ErrInvalidInput is returned when an element is negative.
	// The recurrence only holds for non-negative elements.
	ErrInvalidInput = errors.New("partition: invalid input (negative element)")

	// ErrOverflow is returned when the total does not fit into int, or when
	// the reachability table would exceed the configured cell budget.
	ErrOverflow = errors.New("partition: total or table size exceeds limit")

	// ErrOutOfRange indicates a (sum, prefix) pair outside the table.
	ErrOutOfRange = errors.New("partition: index out of range")

	// ErrTableNeedsFullMode indicates that an operation needs the whole
	// table but RollingRow mode was requested.
	ErrTableNeedsFullMode = errors.New("partition: operation requires MemoryMode=FullTable")

	// ErrNilTable indicates that a nil *Table was used.
	ErrNilTable = errors.New("partition: nil table")

	// ErrUnknownMode indicates a memory mode name that ParseMemoryMode
	// does not recognize.
	ErrUnknownMode = errors.New("partition: unknown memory mode")
)
