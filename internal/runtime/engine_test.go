package runtime

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quernlab/quern/pkg/domain"
	"github.com/quernlab/quern/pkg/ops"
	"github.com/quernlab/quern/pkg/registry"
	"github.com/quernlab/quern/pkg/vessel"
)

// testCatalog returns the built-in operations plus an "Explode" operation
// that always fails, for exercising error propagation.
func testCatalog() *registry.Registry {
	r := ops.Builtin()
	r.Register("Explode", func(ctx context.Context, v *vessel.Vessel, args []any) error {
		return fmt.Errorf("boom")
	})
	return r
}

func flowOp(kind domain.OpKind, args ...any) *domain.Operation {
	return namedOp(kind.String(), kind, args...)
}

func genericOp(name string, args ...any) *domain.Operation {
	return namedOp(name, domain.KindGeneric, args...)
}

func namedOp(name string, kind domain.OpKind, args ...any) *domain.Operation {
	ings := make([]domain.Ingredient, len(args))
	for i, a := range args {
		ings[i] = domain.Ingredient{Value: a}
	}
	return &domain.Operation{Name: name, Kind: kind, Ingredients: ings}
}

func runRecipe(t *testing.T, input string, opts []EngineOption, operations ...*domain.Operation) (*State, error) {
	t.Helper()
	e := NewEngine(testCatalog(), opts...)
	st := NewState(operations, vessel.New(input, vessel.TypeText))
	err := e.Execute(context.Background(), st)
	return st, err
}

func vesselText(t *testing.T, st *State) string {
	t.Helper()
	text, err := st.Vessel.Text()
	require.NoError(t, err)
	return text
}

func TestExecuteLinear(t *testing.T) {
	st, err := runRecipe(t, "abc", nil,
		genericOp("To Upper Case"),
		genericOp("Append", "!"),
	)
	require.NoError(t, err)
	assert.Equal(t, "ABC!", vesselText(t, st))
	assert.Equal(t, 2, st.Cursor)
}

func TestExecuteSkipsDisabledOps(t *testing.T) {
	upper := genericOp("To Upper Case")
	upper.Disabled = true

	st, err := runRecipe(t, "abc", nil, upper, genericOp("Append", "!"))
	require.NoError(t, err)
	assert.Equal(t, "abc!", vesselText(t, st))
}

func TestReturnEndsExecution(t *testing.T) {
	st, err := runRecipe(t, "", nil,
		genericOp("Append", "a"),
		flowOp(domain.KindReturn),
		genericOp("Append", "b"),
	)
	require.NoError(t, err)
	assert.Equal(t, "a", vesselText(t, st))
	assert.Equal(t, 3, st.Cursor, "return moves the cursor to the end of the list")
}

func TestCommentAndLabelAreInert(t *testing.T) {
	st, err := runRecipe(t, "x", nil,
		flowOp(domain.KindComment, "just a note"),
		flowOp(domain.KindLabel, "here"),
		genericOp("Append", "!"),
	)
	require.NoError(t, err)
	assert.Equal(t, "x!", vesselText(t, st))
}

func TestUnknownOperationFails(t *testing.T) {
	_, err := runRecipe(t, "x", nil,
		genericOp("Append", "a"),
		genericOp("No Such Op"),
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrOpNotFound)

	var opErr *domain.OpError
	require.True(t, errors.As(err, &opErr))
	assert.Equal(t, 1, opErr.Cursor)
	assert.Equal(t, "No Such Op", opErr.Name)
}

func TestExecuteHonorsContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	e := NewEngine(testCatalog())
	st := NewState([]*domain.Operation{genericOp("Append", "a")}, vessel.New("", vessel.TypeText))
	err := e.Execute(ctx, st)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLifecycleHooks(t *testing.T) {
	var started, ended []string
	hooks := domain.LifecycleHooks{
		OnOpStart: func(_ context.Context, ev *domain.OpEvent) { started = append(started, ev.Name) },
		OnOpEnd:   func(_ context.Context, ev *domain.OpEvent) { ended = append(ended, ev.Name) },
	}

	_, err := runRecipe(t, "x", []EngineOption{WithLifecycleHooks(hooks)},
		genericOp("To Upper Case"),
		flowOp(domain.KindComment),
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"To Upper Case", "Comment"}, started)
	assert.Equal(t, started, ended)
}
