package formy

import "fmt"

// Kind classifies how a field's raw value is shaped from the bindings.
type Kind int

const (
	// KindScalar takes the first binding whose key matches the field name.
	KindScalar Kind = iota
	// KindList collects every matching binding's value in encounter order.
	KindList
	// KindArray collects name[index] bindings into a fixed-length sequence.
	KindArray
)

func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindList:
		return "list"
	case KindArray:
		return "array"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Binding is one raw key/value pair, e.g. a single entry of submitted form
// data. Keys may repeat; encounter order is meaningful for list fields.
type Binding struct {
	Key   string
	Value string
}

// Pairs builds a binding slice from alternating key, value strings.
// It panics if given an odd number of arguments.
func Pairs(kv ...string) []Binding {
	if len(kv)%2 != 0 {
		panic("formy: Pairs requires an even number of strings")
	}
	out := make([]Binding, 0, len(kv)/2)
	for i := 0; i < len(kv); i += 2 {
		out = append(out, Binding{Key: kv[i], Value: kv[i+1]})
	}
	return out
}

// RawValue is the shape-classified, unvalidated input for one field.
// Its shape always matches the field's declared kind: an optional string
// for scalars, an encounter-ordered slice for lists, a fixed-length slice
// with optional slots for arrays. The zero RawValue is an absent scalar.
type RawValue struct {
	kind    Kind
	present bool
	scalar  string
	list    []string
	array   []*string
}

// Kind reports the declared kind of the field this value was extracted for.
func (r RawValue) Kind() Kind { return r.kind }

// Present reports whether at least one binding matched the field.
// A list field with no matching bindings still carries a valid empty slice.
func (r RawValue) Present() bool { return r.present }

// Scalar returns the first matching binding's value. ok is false if no
// binding matched or the field is not a scalar.
func (r RawValue) Scalar() (value string, ok bool) {
	return r.scalar, r.kind == KindScalar && r.present
}

// List returns all matching bindings' values in encounter order.
// It is empty (never nil on a bound form) when no binding matched.
func (r RawValue) List() []string { return r.list }

// Array returns the indexed sequence of length maxIndex+1, with nil at every
// index that had no binding. It is nil when no indexed key matched at all.
func (r RawValue) Array() []*string { return r.array }

// Compact returns the array values with absent slots dropped, preserving
// index order. It is empty for an absent array.
func (r RawValue) Compact() []string {
	out := make([]string, 0, len(r.array))
	for _, v := range r.array {
		if v != nil {
			out = append(out, *v)
		}
	}
	return out
}

// transform returns a copy with fn applied to every string the value holds.
// Used by middlewares (trimming, sanitizing); the form's stored raw values
// are never rewritten.
func (r RawValue) transform(fn func(string) string) RawValue {
	out := r
	if r.kind == KindScalar && r.present {
		out.scalar = fn(r.scalar)
	}
	if r.list != nil {
		out.list = make([]string, len(r.list))
		for i, v := range r.list {
			out.list[i] = fn(v)
		}
	}
	if r.array != nil {
		out.array = make([]*string, len(r.array))
		for i, v := range r.array {
			if v == nil {
				continue
			}
			s := fn(*v)
			out.array[i] = &s
		}
	}
	return out
}

// FieldError is one field's validation failure.
type FieldError struct {
	Field   string
	Message string
}

func (e FieldError) Error() string {
	return e.Field + ": " + e.Message
}
