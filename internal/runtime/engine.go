// Package runtime implements the quern interpreter: the linear dispatch loop
// and the flow-control primitives that break its linearity (jumps, labels,
// fork/merge, register capture).
package runtime

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/quernlab/quern/internal/logging"
	"github.com/quernlab/quern/internal/metrics"
	"github.com/quernlab/quern/pkg/domain"
	"github.com/quernlab/quern/pkg/ports"
)

// Engine executes recipes. It is stateless between runs; all per-run state
// lives in *State, so one Engine can serve many sequential runs.
type Engine struct {
	catalog ports.Catalog
	logger  *slog.Logger
	hooks   domain.LifecycleHooks
	publish ports.RegisterPublisher
	metrics *metrics.Set
}

// EngineOption defines a functional option for configuring the Engine.
type EngineOption func(*Engine)

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) EngineOption {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithRegisterPublisher sets the callback that receives captured registers
// when execution runs in an offloaded context. Defaults to none.
func WithRegisterPublisher(pub ports.RegisterPublisher) EngineOption {
	return func(e *Engine) {
		e.publish = pub
	}
}

// WithMetrics enables prometheus instrumentation.
func WithMetrics(set *metrics.Set) EngineOption {
	return func(e *Engine) {
		e.metrics = set
	}
}

// NewEngine creates an engine resolving generic operations from catalog.
func NewEngine(catalog ports.Catalog, opts ...EngineOption) *Engine {
	e := &Engine{
		catalog: catalog,
		logger:  logging.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Execute walks the operation list from the state's cursor until the cursor
// reaches the end of the list or an operation fails. Fork re-enters Execute
// recursively with a child state per tranche.
//
// Failures are wrapped in *domain.OpError carrying this level's cursor; each
// nesting level re-wraps, so the outermost error always reports the position
// in the list its caller handed over.
func (e *Engine) Execute(ctx context.Context, st *State) error {
	for st.Cursor < len(st.Ops) {
		if err := ctx.Err(); err != nil {
			return err
		}

		op := st.Ops[st.Cursor]
		if op.Disabled {
			st.Cursor++
			continue
		}

		e.emitOpStart(ctx, st, op)
		if e.metrics != nil {
			e.metrics.OpsExecuted.Inc()
		}

		var err error
		switch op.Kind {
		case domain.KindReturn:
			// Unconditionally ends this context, successfully.
			e.emitOpEnd(ctx, st, op)
			st.Cursor = len(st.Ops)
			continue
		case domain.KindComment, domain.KindMerge, domain.KindLabel:
			// Inert markers: Merge terminates a fork's scan, Label anchors
			// jumps. Neither does anything when executed directly.
		case domain.KindJump:
			err = e.opJump(ctx, st, op)
		case domain.KindCondJump:
			err = e.opCondJump(ctx, st, op)
		case domain.KindRegister:
			err = e.opRegister(ctx, st, op)
		case domain.KindFork:
			err = e.opFork(ctx, st, op)
		default:
			err = e.opGeneric(ctx, st, op)
		}

		if err != nil {
			return &domain.OpError{Name: op.Name, Cursor: st.Cursor, Err: err}
		}

		e.emitOpEnd(ctx, st, op)
		st.Cursor++
	}
	return nil
}

// opGeneric dispatches an ordinary operation to its registered transform.
func (e *Engine) opGeneric(ctx context.Context, st *State, op *domain.Operation) error {
	fn, ok := e.catalog.Transform(op.Name)
	if !ok {
		return fmt.Errorf("%w: %q", domain.ErrOpNotFound, op.Name)
	}
	return fn(ctx, st.Vessel, op.IngredientValues())
}

func (e *Engine) emitOpStart(ctx context.Context, st *State, op *domain.Operation) {
	if e.hooks.OnOpStart == nil {
		return
	}
	e.hooks.OnOpStart(ctx, &domain.OpEvent{
		EventBase: eventBase(domain.EventOpStart, st),
		Cursor:    st.Cursor,
		Name:      op.Name,
	})
}

func (e *Engine) emitOpEnd(ctx context.Context, st *State, op *domain.Operation) {
	if e.hooks.OnOpEnd == nil {
		return
	}
	e.hooks.OnOpEnd(ctx, &domain.OpEvent{
		EventBase: eventBase(domain.EventOpEnd, st),
		Cursor:    st.Cursor,
		Name:      op.Name,
	})
}

func eventBase(t domain.EventType, st *State) domain.EventBase {
	return domain.EventBase{
		Timestamp: time.Now(),
		Type:      t,
		RunID:     st.Shared.RunID,
	}
}
