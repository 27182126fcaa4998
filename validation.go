package formy

import "fmt"

// Checker is the assertion context handed to a validator. It is bound to the
// form instance under construction and exposes read access to every field's
// already-extracted raw value, but never to other fields' validated values
// (those may not exist yet at call time).
type Checker struct {
	form  *Form
	field string
}

// Field returns the name of the field currently being validated.
func (c *Checker) Field() string { return c.field }

// Raw returns another field's raw value, or an absent value for an unknown
// field name.
func (c *Checker) Raw(name string) RawValue { return c.form.RawValue(name) }

// Check is the assertion primitive. When ok is true it is a no-op. When ok
// is false it aborts the current field's validator immediately; the
// formatted message becomes that field's error, and every other field
// proceeds independently.
func (c *Checker) Check(ok bool, format string, args ...any) {
	if ok {
		return
	}
	panic(checkFailed{message: fmt.Sprintf(format, args...)})
}

// checkFailed is the control-flow signal thrown by Check and recovered at
// the validator-invocation boundary. It never crosses a Bind call.
type checkFailed struct {
	message string
}

// outcome is one field's validation result: exactly one of a final value or
// an error message, once validation has run.
type outcome struct {
	value   any
	message string
	failed  bool
}

// invoke runs one field's validator against its raw value under the
// assertion protocol. A failed Check becomes an error outcome for this field
// only. Any other panic signals a broken validator, not bad input, and is
// re-panicked to the caller.
func invoke(f *fieldSchema, form *Form) (out outcome) {
	defer func() {
		if p := recover(); p != nil {
			fail, ok := p.(checkFailed)
			if !ok {
				panic(p)
			}
			out = outcome{message: fail.message, failed: true}
		}
	}()
	c := &Checker{form: form, field: f.name}
	return outcome{value: f.validate(c, form.RawValue(f.name), f.args...)}
}
