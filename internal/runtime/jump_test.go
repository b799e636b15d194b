package runtime

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quernlab/quern/pkg/domain"
)

func TestJumpBudgetIsExact(t *testing.T) {
	// A self-targeting loop must take exactly maxJumps jumps and then fall
	// through, for any budget including zero.
	for _, budget := range []int{0, 1, 3, 10} {
		t.Run(fmt.Sprintf("budget_%d", budget), func(t *testing.T) {
			st, err := runRecipe(t, "", nil,
				flowOp(domain.KindLabel, "loop"),
				genericOp("Append", "x"),
				flowOp(domain.KindJump, "loop", budget),
			)
			require.NoError(t, err)
			assert.Equal(t, strings.Repeat("x", budget+1), vesselText(t, st))
			assert.Equal(t, budget, st.Shared.JumpCount)
		})
	}
}

func TestJumpForwardTarget(t *testing.T) {
	// Labels resolve anywhere in the list, including after the cursor.
	st, err := runRecipe(t, "", nil,
		flowOp(domain.KindJump, "end", 5),
		genericOp("Append", "skipped"),
		flowOp(domain.KindLabel, "end"),
		genericOp("Append", "x"),
	)
	require.NoError(t, err)
	assert.Equal(t, "x", vesselText(t, st))
}

func TestJumpUnresolvedLabelIsNoOp(t *testing.T) {
	st, err := runRecipe(t, "", nil,
		flowOp(domain.KindJump, "nowhere", 5),
		genericOp("Append", "x"),
	)
	require.NoError(t, err)
	assert.Equal(t, "x", vesselText(t, st))
	assert.Equal(t, 0, st.Shared.JumpCount)
}

func TestJumpIgnoresDisabledLabel(t *testing.T) {
	label := flowOp(domain.KindLabel, "end")
	label.Disabled = true

	st, err := runRecipe(t, "", nil,
		flowOp(domain.KindJump, "end", 5),
		genericOp("Append", "x"),
		label,
	)
	require.NoError(t, err)
	assert.Equal(t, "x", vesselText(t, st), "a disabled label must not resolve")
}

func TestCondJump(t *testing.T) {
	t.Run("jumps on match", func(t *testing.T) {
		st, err := runRecipe(t, "hello", nil,
			flowOp(domain.KindCondJump, "l+", false, "end", 5),
			genericOp("Append", "skipped"),
			flowOp(domain.KindLabel, "end"),
		)
		require.NoError(t, err)
		assert.Equal(t, "hello", vesselText(t, st))
		assert.Equal(t, 1, st.Shared.JumpCount)
	})

	t.Run("stays on no match", func(t *testing.T) {
		st, err := runRecipe(t, "hello", nil,
			flowOp(domain.KindCondJump, "z+", false, "end", 5),
			genericOp("Append", "!"),
			flowOp(domain.KindLabel, "end"),
		)
		require.NoError(t, err)
		assert.Equal(t, "hello!", vesselText(t, st))
	})

	t.Run("invert flips the decision", func(t *testing.T) {
		st, err := runRecipe(t, "hello", nil,
			flowOp(domain.KindCondJump, "z+", true, "end", 5),
			genericOp("Append", "skipped"),
			flowOp(domain.KindLabel, "end"),
		)
		require.NoError(t, err)
		assert.Equal(t, "hello", vesselText(t, st))
	})

	t.Run("empty pattern never jumps", func(t *testing.T) {
		st, err := runRecipe(t, "hello", nil,
			flowOp(domain.KindCondJump, "", false, "end", 5),
			genericOp("Append", "!"),
			flowOp(domain.KindLabel, "end"),
		)
		require.NoError(t, err)
		assert.Equal(t, "hello!", vesselText(t, st))
		assert.Equal(t, 0, st.Shared.JumpCount)
	})

	t.Run("invalid pattern fails the operation", func(t *testing.T) {
		_, err := runRecipe(t, "hello", nil,
			flowOp(domain.KindCondJump, "(", false, "end", 5),
		)
		require.Error(t, err)
	})
}

func TestCondJumpSharesBudgetWithJump(t *testing.T) {
	// The jump counter is global per run, not per operation.
	st, err := runRecipe(t, "a", nil,
		flowOp(domain.KindLabel, "loop"),
		genericOp("Append", "a"),
		flowOp(domain.KindCondJump, "a", false, "loop", 2),
	)
	require.NoError(t, err)
	assert.Equal(t, "aaaa", vesselText(t, st), "initial pass plus one append per committed jump")
	assert.Equal(t, 2, st.Shared.JumpCount)
}

func TestLabelIndexScansFromZero(t *testing.T) {
	ops := []*domain.Operation{
		genericOp("Append", "x"),
		flowOp(domain.KindLabel, "a"),
		flowOp(domain.KindLabel, "b"),
	}
	assert.Equal(t, 1, labelIndex(ops, "a"))
	assert.Equal(t, 2, labelIndex(ops, "b"))
	assert.Equal(t, -1, labelIndex(ops, "c"))
}
