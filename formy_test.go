package formy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// TestSignupScenario exercises the full pipeline: scalar, list, and array
// fields, case-insensitive matching, a failing field isolated from the
// rest, and raw-value repopulation.
func TestSignupScenario(t *testing.T) {
	reg := NewRegistry()
	_, err := reg.Define("signup",
		Field("whatever", MinLen, 1),
		Field("error-field", func(c *Checker, _ RawValue, _ ...any) any {
			c.Check(false, "always fails")
			return nil
		}),
		Field("int-field", Int),
		ListField("my-list", Ints),
		ArrayField("my-array", Compact),
	)
	require.NoError(t, err)

	form, err := reg.Bind("signup", Pairs(
		"whatever", "a",
		"error-field", "b",
		"int-field", "42",
		"my-array[5]", "5",
		"my-array[0]", "0",
		"my-list", "1",
		"my-list", "2",
	))
	require.NoError(t, err)

	assert.False(t, form.IsValid())
	assert.Equal(t, "a", form.Value("whatever"))
	assert.NotEmpty(t, form.Error("error-field"))
	assert.Equal(t, 42, form.Value("int-field"))
	assert.Equal(t, []int{1, 2}, form.Value("my-list"))
	assert.Equal(t, []string{"0", "5"}, form.Value("my-array"))

	// The failing field still exposes its raw input.
	raw, ok := form.RawValue("error-field").Scalar()
	require.True(t, ok)
	assert.Equal(t, "b", raw)

	// The array raw value has length maxIndex+1 with absent middle slots.
	arr := form.RawValue("my-array").Array()
	require.Len(t, arr, 6)
	require.NotNil(t, arr[0])
	assert.Equal(t, "0", *arr[0])
	for i := 1; i < 5; i++ {
		assert.Nil(t, arr[i])
	}
	require.NotNil(t, arr[5])
	assert.Equal(t, "5", *arr[5])
}

func TestPairs(t *testing.T) {
	got := Pairs("a", "1", "b", "2")
	assert.Equal(t, []Binding{{Key: "a", Value: "1"}, {Key: "b", Value: "2"}}, got)
	assert.Empty(t, Pairs())
	assert.Panics(t, func() { Pairs("odd") })
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "scalar", KindScalar.String())
	assert.Equal(t, "list", KindList.String())
	assert.Equal(t, "array", KindArray.String())
	assert.Equal(t, "Kind(7)", Kind(7).String())
}

func TestRawValueZero(t *testing.T) {
	var raw RawValue
	assert.Equal(t, KindScalar, raw.Kind())
	assert.False(t, raw.Present())
	_, ok := raw.Scalar()
	assert.False(t, ok)
	assert.Nil(t, raw.List())
	assert.Nil(t, raw.Array())
	assert.Empty(t, raw.Compact())
}
