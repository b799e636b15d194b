package runtime

import (
	"context"
	"fmt"
	"regexp"

	"github.com/quernlab/quern/pkg/domain"
)

// defaultMaxJumps applies when a jump operation carries no budget ingredient.
const defaultMaxJumps = 10

// labelIndex scans the entire operation list, from position 0, for the first
// enabled Label operation whose name ingredient equals name. Returns -1 when
// no such label exists; callers treat that as a no-op condition, not a fault.
func labelIndex(ops []*domain.Operation, name string) int {
	for i, op := range ops {
		if op.Kind == domain.KindLabel && !op.Disabled && argString(op, 0) == name {
			return i
		}
	}
	return -1
}

// opJump implements the unconditional jump.
// Ingredients: [label string, maxJumps int].
func (e *Engine) opJump(ctx context.Context, st *State, op *domain.Operation) error {
	e.jumpTo(ctx, st, argString(op, 0), argInt(op, 1, defaultMaxJumps))
	return nil
}

// opCondJump implements the conditional jump.
// Ingredients: [pattern string, invert bool, label string, maxJumps int].
func (e *Engine) opCondJump(ctx context.Context, st *State, op *domain.Operation) error {
	pattern := argString(op, 0)
	if pattern == "" {
		// An empty condition never jumps.
		return nil
	}

	re, err := regexp.Compile(pattern)
	if err != nil {
		return fmt.Errorf("invalid jump condition: %w", err)
	}

	text, err := st.Vessel.Text()
	if err != nil {
		return err
	}

	if re.MatchString(text) != argBool(op, 1) {
		e.jumpTo(ctx, st, argString(op, 2), argInt(op, 3, defaultMaxJumps))
	}
	return nil
}

// jumpTo repositions the cursor onto the named label, if the label resolves
// and the run's jump budget has room. Both failure modes degrade silently:
// a recipe with dangling jumps must still terminate and produce output. The
// budget is checked before the jump commits; it is the sole termination
// guarantee against user-authored jump loops.
func (e *Engine) jumpTo(ctx context.Context, st *State, label string, maxJumps int) {
	idx := labelIndex(st.Ops, label)
	if idx < 0 {
		e.logger.Debug("jump label not found", "run_id", st.Shared.RunID, "label", label, "cursor", st.Cursor)
		if e.metrics != nil {
			e.metrics.JumpsSuppressed.Inc()
		}
		return
	}
	if st.Shared.JumpCount >= maxJumps {
		e.logger.Debug("jump budget exhausted", "run_id", st.Shared.RunID, "label", label, "max_jumps", maxJumps)
		if e.metrics != nil {
			e.metrics.JumpsSuppressed.Inc()
		}
		return
	}

	from := st.Cursor
	st.Cursor = idx
	st.Shared.JumpCount++
	if e.metrics != nil {
		e.metrics.JumpsTaken.Inc()
	}
	e.logger.Debug("jump taken", "run_id", st.Shared.RunID, "label", label, "from", from, "to", idx)

	if e.hooks.OnJump != nil {
		e.hooks.OnJump(ctx, &domain.JumpEvent{
			EventBase: eventBase(domain.EventJump, st),
			Label:     label,
			From:      from,
			To:        idx,
		})
	}
}
