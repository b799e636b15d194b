package ops

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quernlab/quern/pkg/domain"
	"github.com/quernlab/quern/pkg/vessel"
)

func apply(t *testing.T, fn func(context.Context, *vessel.Vessel, []any) error, input string, args ...any) string {
	t.Helper()
	v := vessel.New(input, vessel.TypeText)
	require.NoError(t, fn(context.Background(), v, args))
	text, err := v.Text()
	require.NoError(t, err)
	return text
}

func TestTextOps(t *testing.T) {
	assert.Equal(t, "ABC", apply(t, ToUpperCase, "abc"))
	assert.Equal(t, "abc", apply(t, ToLowerCase, "ABC"))
	assert.Equal(t, "cba", apply(t, Reverse, "abc"))
	assert.Equal(t, "ab!", apply(t, Append, "ab", "!"))
}

func TestHead(t *testing.T) {
	assert.Equal(t, "a\nb", apply(t, Head, "a\nb\nc\nd", 2))
	assert.Equal(t, "a\nb", apply(t, Head, "a\nb", 5))
}

func TestFindReplace(t *testing.T) {
	t.Run("regex mode", func(t *testing.T) {
		got := apply(t, FindReplace, "a1b22c",
			&domain.ToggleText{Mode: "regex", Text: `\d+`}, "#", false)
		assert.Equal(t, "a#b#c", got)
	})

	t.Run("simple mode quotes metacharacters", func(t *testing.T) {
		got := apply(t, FindReplace, "1+1=2",
			&domain.ToggleText{Mode: "simple", Text: "1+1"}, "two", false)
		assert.Equal(t, "two=2", got)
	})

	t.Run("case insensitive", func(t *testing.T) {
		got := apply(t, FindReplace, "Foo foo",
			&domain.ToggleText{Mode: "simple", Text: "foo"}, "bar", true)
		assert.Equal(t, "bar bar", got)
	})

	t.Run("missing pattern is a no-op", func(t *testing.T) {
		assert.Equal(t, "abc", apply(t, FindReplace, "abc"))
	})
}

func TestBase64RoundTrip(t *testing.T) {
	encoded := apply(t, Base64Encode, "hello")
	assert.Equal(t, "aGVsbG8=", encoded)
	assert.Equal(t, "hello", apply(t, Base64Decode, encoded))

	v := vessel.New("not base64!!!", vessel.TypeText)
	assert.Error(t, Base64Decode(context.Background(), v, nil))
}

func TestBuiltinCatalog(t *testing.T) {
	r := Builtin()
	for _, name := range []string{"To Upper Case", "Find / Replace", "Base64 Encode"} {
		_, ok := r.Transform(name)
		assert.True(t, ok, "expected builtin %q", name)
	}
}
