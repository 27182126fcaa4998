package formy

import (
	"slices"
	"strings"
)

// ValidatorFunc transforms a field's raw value (plus the declaration's extra
// arguments) into its final value. It signals bad input through c.Check;
// any other panic is treated as a broken validator and propagates.
type ValidatorFunc func(c *Checker, raw RawValue, args ...any) any

// FieldDecl is one field declaration inside a form definition. Most callers
// build declarations with Field, ListField, or ArrayField; the struct is
// exported so declarations can also be produced programmatically (e.g. by
// the loader), in which case Compile rejects malformed kinds.
type FieldDecl struct {
	Name     string
	Kind     Kind
	Validate ValidatorFunc
	Args     []any
}

// Field declares a scalar field: the raw value is the first binding whose
// key matches name case-insensitively.
func Field(name string, fn ValidatorFunc, args ...any) FieldDecl {
	return FieldDecl{Name: name, Kind: KindScalar, Validate: fn, Args: args}
}

// ListField declares a list field: the raw value is every matching binding's
// value in encounter order.
func ListField(name string, fn ValidatorFunc, args ...any) FieldDecl {
	return FieldDecl{Name: name, Kind: KindList, Validate: fn, Args: args}
}

// ArrayField declares an indexed-array field fed by name[index] bindings.
func ArrayField(name string, fn ValidatorFunc, args ...any) FieldDecl {
	return FieldDecl{Name: name, Kind: KindArray, Validate: fn, Args: args}
}

// fieldSchema is the compiled, immutable form of one FieldDecl.
type fieldSchema struct {
	name     string
	kind     Kind
	validate ValidatorFunc
	args     []any
}

// Definition is a compiled, immutable form definition: an ordered set of
// field schemas registered under a name. Build one with Compile or
// Registry.Define; never mutate it afterwards.
type Definition struct {
	name   string
	fields []fieldSchema
}

// Compile builds a Definition from an ordered list of field declarations.
// It fails with a *SchemaError on a malformed declaration: a kind outside
// the three known variants, an empty or duplicate field name (duplicates are
// detected case-insensitively, since binding keys match case-insensitively),
// or a nil validator. Nothing is partially compiled on error.
func Compile(name string, decls ...FieldDecl) (*Definition, error) {
	fields := make([]fieldSchema, 0, len(decls))
	seen := make(map[string]struct{}, len(decls))
	for _, d := range decls {
		switch d.Kind {
		case KindScalar, KindList, KindArray:
		default:
			return nil, &SchemaError{Form: name, Field: d.Name, Err: ErrUnknownKind}
		}
		if d.Name == "" {
			return nil, &SchemaError{Form: name, Err: ErrEmptyFieldName}
		}
		if d.Validate == nil {
			return nil, &SchemaError{Form: name, Field: d.Name, Err: ErrNilValidator}
		}
		key := strings.ToLower(d.Name)
		if _, dup := seen[key]; dup {
			return nil, &SchemaError{Form: name, Field: d.Name, Err: ErrDuplicateField}
		}
		seen[key] = struct{}{}
		fields = append(fields, fieldSchema{
			name:     d.Name,
			kind:     d.Kind,
			validate: d.Validate,
			args:     slices.Clone(d.Args),
		})
	}
	return &Definition{name: name, fields: fields}, nil
}

// Name returns the name the definition was compiled under.
func (d *Definition) Name() string { return d.name }

// FieldNames returns the field names in declaration order.
func (d *Definition) FieldNames() []string {
	out := make([]string, len(d.fields))
	for i, f := range d.fields {
		out[i] = f.name
	}
	return out
}

// wrap returns a copy of the definition with the middleware chain applied to
// every field's validator (first middleware outermost). With no middlewares
// the definition itself is returned.
func (d *Definition) wrap(middlewares []Middleware) *Definition {
	if len(middlewares) == 0 {
		return d
	}
	fields := slices.Clone(d.fields)
	for i := range fields {
		fn := fields[i].validate
		for j := len(middlewares) - 1; j >= 0; j-- {
			fn = middlewares[j](fn)
		}
		fields[i].validate = fn
	}
	return &Definition{name: d.name, fields: fields}
}
