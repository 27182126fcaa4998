package formy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func nop(_ *Checker, _ RawValue, _ ...any) any { return nil }

func TestCompile(t *testing.T) {
	def, err := Compile("login",
		Field("username", nop),
		Field("password", nop),
		ListField("roles", nop),
		ArrayField("answers", nop),
	)
	require.NoError(t, err)
	assert.Equal(t, "login", def.Name())
	assert.Equal(t, []string{"username", "password", "roles", "answers"}, def.FieldNames())
}

func TestCompile_Errors(t *testing.T) {
	tests := []struct {
		name     string
		decls    []FieldDecl
		sentinel error
	}{
		{
			"unknown kind",
			[]FieldDecl{{Name: "x", Kind: Kind(42), Validate: nop}},
			ErrUnknownKind,
		},
		{
			"duplicate name",
			[]FieldDecl{Field("x", nop), Field("x", nop)},
			ErrDuplicateField,
		},
		{
			"duplicate name different case",
			[]FieldDecl{Field("Email", nop), Field("email", nop)},
			ErrDuplicateField,
		},
		{
			"duplicate name different kind",
			[]FieldDecl{Field("x", nop), ListField("x", nop)},
			ErrDuplicateField,
		},
		{
			"empty name",
			[]FieldDecl{Field("", nop)},
			ErrEmptyFieldName,
		},
		{
			"nil validator",
			[]FieldDecl{{Name: "x", Kind: KindScalar}},
			ErrNilValidator,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			def, err := Compile("bad", tt.decls...)
			require.Error(t, err)
			assert.Nil(t, def)
			assert.ErrorIs(t, err, tt.sentinel)
			assert.True(t, IsSchemaError(err))
		})
	}
}

func TestCompile_ArgsAreCopied(t *testing.T) {
	args := []any{1}
	def, err := Compile("f", Field("x", func(c *Checker, _ RawValue, a ...any) any {
		return a[0]
	}, args...))
	require.NoError(t, err)
	args[0] = 99
	form := def.Bind(Pairs("x", "v"))
	assert.Equal(t, 1, form.Value("x"))
}
