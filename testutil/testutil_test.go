package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skosovsky/formy"
)

func TestStaticAndFailing(t *testing.T) {
	reg := formy.NewRegistry()
	def := MustDefine(reg, "f",
		formy.Field("ok", Static(42)),
		formy.Field("bad", Failing("broken: %s", "reason")),
	)

	form := def.Bind(nil)
	assert.False(t, form.IsValid())
	assert.Equal(t, 42, form.Value("ok"))
	assert.Equal(t, "broken: reason", form.Error("bad"))
}

func TestEcho(t *testing.T) {
	reg := formy.NewRegistry()
	def := MustDefine(reg, "f",
		formy.Field("s", Echo()),
		formy.Field("absent", Echo()),
		formy.ListField("l", Echo()),
		formy.ArrayField("a", Echo()),
	)

	form := def.Bind(formy.Pairs("s", "v", "l", "1", "l", "2", "a[1]", "x"))
	assert.Equal(t, "v", form.Value("s"))
	assert.Nil(t, form.Value("absent"))
	assert.Equal(t, []string{"1", "2"}, form.Value("l"))
	assert.Equal(t, []string{"x"}, form.Value("a"))
}

func TestMustDefine_Panics(t *testing.T) {
	reg := formy.NewRegistry()
	require.Panics(t, func() {
		MustDefine(reg, "f", formy.Field("x", nil))
	})
}
