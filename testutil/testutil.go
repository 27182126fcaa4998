// Package testutil provides test helpers for formy (canned validators and
// registry setup).
package testutil

import (
	"fmt"

	"github.com/skosovsky/formy"
)

// Static returns a validator that ignores its input and always succeeds
// with v.
func Static(v any) formy.ValidatorFunc {
	return func(_ *formy.Checker, _ formy.RawValue, _ ...any) any {
		return v
	}
}

// Failing returns a validator whose first check always fails with the
// formatted message.
func Failing(format string, args ...any) formy.ValidatorFunc {
	msg := fmt.Sprintf(format, args...)
	return func(c *formy.Checker, _ formy.RawValue, _ ...any) any {
		c.Check(false, "%s", msg)
		return nil
	}
}

// Echo returns a validator that passes the raw value through untouched:
// the scalar string (nil when absent), the list slice, or the compacted
// array, by kind.
func Echo() formy.ValidatorFunc {
	return func(_ *formy.Checker, raw formy.RawValue, _ ...any) any {
		switch raw.Kind() {
		case formy.KindList:
			return raw.List()
		case formy.KindArray:
			return raw.Compact()
		default:
			if s, ok := raw.Scalar(); ok {
				return s
			}
			return nil
		}
	}
}

// MustDefine registers a definition and panics on a schema error. For test
// and example setup where the declarations are statically known to be valid.
func MustDefine(r *formy.Registry, name string, decls ...formy.FieldDecl) *formy.Definition {
	def, err := r.Define(name, decls...)
	if err != nil {
		panic(err)
	}
	return def
}
