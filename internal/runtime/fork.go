package runtime

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/quernlab/quern/pkg/domain"
	"github.com/quernlab/quern/pkg/vessel"
)

// opFork partitions the vessel text into tranches and re-runs the operations
// between the fork and the next enabled Merge once per tranche, recursively
// invoking the interpreter. Tranche outputs are recombined with the merge
// delimiter and folded back into the outer vessel.
// Ingredients: [splitDelimiter string, mergeDelimiter string, ignoreErrors bool].
func (e *Engine) opFork(ctx context.Context, st *State, op *domain.Operation) error {
	splitDelim := argString(op, 0)
	mergeDelim := argString(op, 1)
	ignoreErrors := argBool(op, 2)

	text, err := st.Vessel.Text()
	if err != nil {
		return err
	}
	var inputs []string
	if text != "" {
		inputs = strings.Split(text, splitDelim)
	}

	// The sub-pipeline is everything strictly after the fork, up to but
	// excluding the first enabled Merge, or the end of the list.
	end := len(st.Ops)
	for i := st.Cursor + 1; i < len(st.Ops); i++ {
		if st.Ops[i].Kind == domain.KindMerge && !st.Ops[i].Disabled {
			end = i
			break
		}
	}

	// Tranches execute against deep copies so tranche-local mutation cannot
	// leak back to sibling tranches or the outer list.
	subOps := make([]*domain.Operation, 0, end-st.Cursor-1)
	for _, o := range st.Ops[st.Cursor+1 : end] {
		subOps = append(subOps, o.Clone())
	}

	// Registers captured inside this fork must not collide with those
	// captured outside it or in earlier sibling forks.
	st.Shared.ForkOffset += st.Cursor + 1

	// Snapshot the ingredient baseline; restored before every tranche so a
	// prior tranche's register substitutions do not leak into the next.
	baseline := make([][]any, len(subOps))
	for i, o := range subOps {
		baseline[i] = domain.CloneValues(o.IngredientValues())
	}

	e.logger.Debug("fork started",
		"run_id", st.Shared.RunID, "cursor", st.Cursor, "tranches", len(inputs), "sub_ops", len(subOps))
	if e.metrics != nil {
		e.metrics.ForksStarted.Inc()
	}

	progress := 0
	var out strings.Builder
	for ti, input := range inputs {
		for i, o := range subOps {
			o.SetIngredientValues(domain.CloneValues(baseline[i]))
		}

		child := vessel.New(input, op.InputType)
		cst := st.child(subOps, child)

		e.logger.Debug("tranche entered", "run_id", st.Shared.RunID, "tranche", ti)
		if e.metrics != nil {
			e.metrics.TranchesProcessed.Inc()
		}
		if e.hooks.OnTranche != nil {
			e.hooks.OnTranche(ctx, &domain.TrancheEvent{
				EventBase: eventBase(domain.EventTranche, st),
				Index:     ti,
				Input:     input,
			})
		}

		failed := false
		if err := e.Execute(ctx, cst); err != nil {
			failed = true
			if !ignoreErrors {
				// Abort the whole fork; the outer Execute re-wraps with the
				// fork's own cursor so an enclosing fork can absorb it.
				return err
			}
			var opErr *domain.OpError
			if errors.As(err, &opErr) {
				progress = opErr.Cursor + 1
			} else {
				progress = cst.Cursor + 1
			}
			e.logger.Debug("tranche failed, continuing",
				"run_id", st.Shared.RunID, "tranche", ti, "err", err)
		} else {
			progress = cst.Cursor
		}

		// Partial tranches still contribute whatever the child holds.
		val, gerr := child.Get(op.OutputType)
		switch {
		case gerr == nil:
			out.WriteString(stringify(val))
		case failed:
			if t, terr := child.Text(); terr == nil {
				out.WriteString(t)
			}
		default:
			return gerr
		}
		out.WriteString(mergeDelim)
	}

	st.Vessel.Set(out.String(), op.OutputType)
	// Last-processed tranche wins; see DESIGN.md on the inherited ambiguity
	// when tranches exit at different positions.
	st.Cursor += progress
	return nil
}

func stringify(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case []byte:
		return string(val)
	default:
		return fmt.Sprintf("%v", val)
	}
}
