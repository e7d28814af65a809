// SPDX-License-Identifier: MIT

// Memory modes, functional options and result types of the solver.

package partition

// MemoryMode controls how the solver stores its reachability table.
//
//   - FullTable  — keep the entire (1+total/2)×(n+1) grid.
//     Allows subset recovery (Subset, Split) and Render.
//     Memory: O(total·n).
//
//   - RollingRow — keep a single row of 1+total/2 cells, updated in place
//     once per element with sums visited from high to low.
//     Memory: O(total). Only the answer is available.
type MemoryMode int

const (
	// FullTable mode: store all cells, support subset recovery.
	FullTable MemoryMode = iota

	// RollingRow mode: single reachability row, answer only.
	RollingRow
)

// String returns the mode name used in configs and flags.
func (m MemoryMode) String() string {
	switch m {
	case FullTable:
		return "full"
	case RollingRow:
		return "rolling"
	default:
		return "unknown"
	}
}

// ParseMemoryMode maps "full" / "rolling" back to a MemoryMode.
// Unknown names return ErrUnknownMode.
func ParseMemoryMode(name string) (MemoryMode, error) {
	switch name {
	case "", "full":
		return FullTable, nil
	case "rolling":
		return RollingRow, nil
	default:
		return FullTable, ErrUnknownMode
	}
}

// DEFAULTS - single source of truth for zero-value behavior.
const (
	// DefaultMemoryMode keeps the full table so every operation is available.
	DefaultMemoryMode = FullTable

	// DefaultMaxCells bounds the table at 2^28 cells (256 MiB of bool).
	DefaultMaxCells = 1 << 28
)

const (
	panicMemoryModeInvalid = "partition: WithMemoryMode: unknown mode"
	panicMaxCellsInvalid   = "partition: WithMaxCells: limit must be > 0"
)

// Option mutates internal options. Constructors panic only on nonsensical
// values (programmer error), never on user data.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	mode     MemoryMode // DefaultMemoryMode
	maxCells int        // DefaultMaxCells
}

// WithMemoryMode selects FullTable or RollingRow storage.
// Panics on values outside the declared constants.
func WithMemoryMode(mode MemoryMode) Option {
	if mode != FullTable && mode != RollingRow {
		panic(panicMemoryModeInvalid)
	}

	return func(o *Options) {
		o.mode = mode
	}
}

// WithMaxCells sets the table budget in cells. Inputs whose table would be
// larger fail with ErrOverflow before anything is allocated. Limits above
// math.MaxInt32 are clamped to it.
// Panics if limit <= 0.
func WithMaxCells(limit int) Option {
	if limit <= 0 {
		panic(panicMaxCellsInvalid)
	}

	return func(o *Options) {
		o.maxCells = limit
	}
}

// DefaultOptions returns the zero-config options.
func DefaultOptions() Options {
	return Options{
		mode:     DefaultMemoryMode,
		maxCells: DefaultMaxCells,
	}
}

// Mode reports the effective memory mode.
func (o Options) Mode() MemoryMode { return o.mode }

// MaxCells reports the effective cell budget.
func (o Options) MaxCells() int { return o.maxCells }

// gatherOptions applies setters on top of the defaults. Nil setters are skipped.
func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, set := range opts {
		if set != nil {
			set(&o)
		}
	}

	return o
}

// Partition is a two-way split of the input.
//
// Smaller and Larger hold element indices (ascending) into the original
// slice; every index appears in exactly one of them. SmallerSum is the
// answer of MaxHalfSum; Diff = LargerSum - SmallerSum ≥ 0 is minimal.
type Partition struct {
	Smaller    []int
	Larger     []int
	SmallerSum int
	LargerSum  int
	Diff       int
}
