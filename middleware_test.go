package formy

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/microcosm-cc/bluemonday"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithTrimmed(t *testing.T) {
	reg := NewRegistry()
	reg.Use(WithTrimmed())
	_, err := reg.Define("f",
		Field("name", Required),
		ListField("tags", Ints),
		ArrayField("answers", Compact),
	)
	require.NoError(t, err)

	form, err := reg.Bind("f", Pairs(
		"name", "  ada  ",
		"tags", " 1 ",
		"tags", "2",
		"answers[0]", "  a  ",
	))
	require.NoError(t, err)
	assert.True(t, form.IsValid())
	assert.Equal(t, "ada", form.Value("name"))
	assert.Equal(t, []int{1, 2}, form.Value("tags"))
	assert.Equal(t, []string{"a"}, form.Value("answers"))

	// Stored raw values keep the original input.
	raw, ok := form.RawValue("name").Scalar()
	require.True(t, ok)
	assert.Equal(t, "  ada  ", raw)
}

func TestWithSanitized(t *testing.T) {
	reg := NewRegistry()
	reg.Use(WithSanitized(bluemonday.StrictPolicy()))
	_, err := reg.Define("f", Field("bio", Required))
	require.NoError(t, err)

	form, err := reg.Bind("f", Pairs("bio", `hello <script>alert(1)</script>world`))
	require.NoError(t, err)
	assert.True(t, form.IsValid())
	assert.NotContains(t, form.Value("bio").(string), "<script>")
}

func TestWithSanitized_NilPolicyDefaultsToStrict(t *testing.T) {
	reg := NewRegistry()
	reg.Use(WithSanitized(nil))
	_, err := reg.Define("f", Field("bio", Required))
	require.NoError(t, err)

	form, err := reg.Bind("f", Pairs("bio", "<b>bold</b>"))
	require.NoError(t, err)
	assert.Equal(t, "bold", form.Value("bio"))
}

func TestWithLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	reg := NewRegistry()
	reg.Use(WithLogging(logger))
	_, err := reg.Define("f",
		Field("ok", Required),
		Field("bad", Int),
	)
	require.NoError(t, err)

	form, err := reg.Bind("f", Pairs("ok", "v", "bad", "nope"))
	require.NoError(t, err)

	// Logging must not alter outcomes.
	assert.Equal(t, "v", form.Value("ok"))
	assert.Equal(t, `"nope" is not an integer`, form.Error("bad"))

	out := buf.String()
	assert.Contains(t, out, "field validated")
	assert.Contains(t, out, "field check failed")
	assert.Contains(t, out, "bad")
}

func TestRegistry_Use_Rewraps(t *testing.T) {
	reg := NewRegistry()
	_, err := reg.Define("f", Field("name", Required))
	require.NoError(t, err)

	// Middlewares set after Define apply to definitions fetched afterwards.
	reg.Use(WithTrimmed())
	form, err := reg.Bind("f", Pairs("name", "  ada  "))
	require.NoError(t, err)
	assert.Equal(t, "ada", form.Value("name"))

	// Calling Use again replaces the chain instead of stacking it.
	calls := 0
	counting := func(next ValidatorFunc) ValidatorFunc {
		return func(c *Checker, raw RawValue, args ...any) any {
			calls++
			return next(c, raw, args...)
		}
	}
	reg.Use(counting)
	reg.Use(counting)
	form, err = reg.Bind("f", Pairs("name", "  ada  "))
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.Equal(t, "  ada  ", form.Value("name"), "trim chain was replaced")
}
