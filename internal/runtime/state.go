package runtime

import (
	"github.com/google/uuid"

	"github.com/quernlab/quern/pkg/domain"
	"github.com/quernlab/quern/pkg/vessel"
)

// Shared holds the counters and the register file threaded through every
// execution context of one top-level run. Fork children borrow it by pointer,
// never by copy: the register index space is global and all counters are
// monotonically non-decreasing for the whole run.
//
// No locking: tranches run strictly sequentially, so exactly one execution
// path owns the block at any time.
type Shared struct {
	// RunID correlates log lines and events across nested contexts.
	RunID string

	// JumpCount is the number of jumps committed so far. Checked against each
	// jump's own budget before the jump is taken; never reset.
	JumpCount int

	// NumRegisters is the global count of captured registers. Registers
	// $R0..$R(NumRegisters-1) are considered already resolved.
	NumRegisters int

	// ForkOffset accumulates the base added to register positions so indices
	// stay globally unique across nested fork contexts.
	ForkOffset int

	// Registers is the append-only file of captured values.
	Registers []string
}

// State is the execution state of one interpreter context: the cursor into an
// operation list, the vessel being transformed, and the shared counter block.
// The top-level run owns one; every fork tranche gets a child with its own
// cursor, operation sub-list and vessel, but the same Shared block.
type State struct {
	Cursor int
	Ops    []*domain.Operation
	Vessel *vessel.Vessel
	Shared *Shared
}

// NewState creates the state for a top-level run starting at cursor 0.
func NewState(ops []*domain.Operation, v *vessel.Vessel) *State {
	return &State{
		Ops:    ops,
		Vessel: v,
		Shared: &Shared{RunID: uuid.NewString()},
	}
}

// child creates the state for one fork tranche: fresh cursor and vessel over
// the deep-copied sub-list, borrowing the parent's shared block.
func (s *State) child(ops []*domain.Operation, v *vessel.Vessel) *State {
	return &State{
		Ops:    ops,
		Vessel: v,
		Shared: s.Shared,
	}
}
