package quern

import (
	"context"
	"log/slog"

	"github.com/quernlab/quern/internal/compiler"
	"github.com/quernlab/quern/internal/logging"
	"github.com/quernlab/quern/internal/metrics"
	"github.com/quernlab/quern/internal/runtime"
	"github.com/quernlab/quern/pkg/domain"
	"github.com/quernlab/quern/pkg/ops"
	"github.com/quernlab/quern/pkg/ports"
	"github.com/quernlab/quern/pkg/registry"
	"github.com/quernlab/quern/pkg/vessel"
)

// Engine is the high-level entry point for the quern library.
// It wraps the internal runtime and provides a simplified API for consumers.
type Engine struct {
	runtime *runtime.Engine
	catalog *registry.Registry
	logger  *slog.Logger

	hooks   domain.LifecycleHooks
	publish ports.RegisterPublisher
	metrics *metrics.Set
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithRegisterPublisher sets the callback that receives registers captured
// during an offloaded run. Defaults to none.
func WithRegisterPublisher(pub ports.RegisterPublisher) Option {
	return func(e *Engine) {
		e.publish = pub
	}
}

// WithMetrics enables prometheus instrumentation on the engine.
func WithMetrics(set *metrics.Set) Option {
	return func(e *Engine) {
		e.metrics = set
	}
}

// WithOperation registers an additional generic operation, or overrides a
// built-in with the same name.
func WithOperation(name string, fn ports.TransformFunc) Option {
	return func(e *Engine) {
		e.catalog.Register(name, fn)
	}
}

// New initializes a quern Engine with the built-in operation set.
func New(opts ...Option) *Engine {
	eng := &Engine{
		catalog: ops.Builtin(),
		logger:  logging.NewNop(),
	}
	for _, opt := range opts {
		opt(eng)
	}

	eng.runtime = runtime.NewEngine(
		eng.catalog,
		runtime.WithLogger(eng.logger),
		runtime.WithLifecycleHooks(eng.hooks),
		runtime.WithRegisterPublisher(eng.publish),
		runtime.WithMetrics(eng.metrics),
	)
	return eng
}

// BakeResult is the outcome of one recipe run.
type BakeResult struct {
	Output    string   `json:"output"`
	RunID     string   `json:"run_id"`
	Jumps     int      `json:"jumps"`
	Registers []string `json:"registers,omitempty"`
}

// Bake executes a recipe against a textual input and returns the final
// output. The caller's recipe is cloned first: register substitution mutates
// ingredient values in place, and those writes must not survive the run from
// the caller's point of view.
func (e *Engine) Bake(ctx context.Context, r *domain.Recipe, input string) (*BakeResult, error) {
	run := r.Clone()
	v := vessel.New(input, vessel.TypeText)
	st := runtime.NewState(run.Ops, v)

	e.logger.Debug("bake started", "run_id", st.Shared.RunID, "recipe", r.Name, "ops", len(run.Ops))
	if err := e.runtime.Execute(ctx, st); err != nil {
		return nil, err
	}

	out, err := v.Text()
	if err != nil {
		return nil, err
	}
	return &BakeResult{
		Output:    out,
		RunID:     st.Shared.RunID,
		Jumps:     st.Shared.JumpCount,
		Registers: append([]string(nil), st.Shared.Registers...),
	}, nil
}

// Validate returns advisory diagnostics for a recipe against this engine's
// operation catalog. An empty slice means nothing suspicious was found.
func (e *Engine) Validate(r *domain.Recipe) []string {
	return compiler.Validate(r, e.catalog)
}

// Operations returns the names of all registered generic operations.
func (e *Engine) Operations() []string {
	return e.catalog.Names()
}

// ParseRecipeYAML decodes a YAML recipe document.
func ParseRecipeYAML(data []byte) (*domain.Recipe, error) {
	return compiler.ParseYAML(data)
}

// ParseRecipeJSON decodes a JSON recipe document.
func ParseRecipeJSON(data []byte) (*domain.Recipe, error) {
	return compiler.ParseJSON(data)
}
