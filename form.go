package formy

// Form binds a Definition to one set of raw bindings (or none) and owns the
// resulting raw/validated/error state. It is mutated only during
// construction; afterwards it is read-only and safe to share between any
// number of concurrent readers. Accessors are pure reads; nothing is ever
// re-extracted or re-validated.
type Form struct {
	def      *Definition
	bound    bool
	raws     map[string]RawValue
	outcomes map[string]outcome
}

// Bind constructs a Form from the definition and a binding collection.
// It extracts every field's raw value first, then runs each field's
// validator in declaration order. Field validation failures never make Bind
// fail; they surface through IsValid, Errors, and Error.
func (d *Definition) Bind(bindings []Binding) *Form {
	f := &Form{
		def:      d,
		bound:    true,
		raws:     extract(d, bindings),
		outcomes: make(map[string]outcome, len(d.fields)),
	}
	for i := range d.fields {
		fs := &d.fields[i]
		f.outcomes[fs.name] = invoke(fs, f)
	}
	return f
}

// Unbound constructs a Form with no bindings: IsValid reports false and
// every accessor returns its absent/zero value.
func (d *Definition) Unbound() *Form {
	return &Form{def: d}
}

// Definition returns the definition the form was constructed from.
func (f *Form) Definition() *Definition { return f.def }

// Bound reports whether the form was constructed with a binding collection.
func (f *Form) Bound() bool { return f.bound }

// IsValid reports whether the form is bound and every field validated
// successfully.
func (f *Form) IsValid() bool {
	if !f.bound {
		return false
	}
	for _, o := range f.outcomes {
		if o.failed {
			return false
		}
	}
	return true
}

// Errors returns every failed field's error in declaration order. It is
// empty for an unbound form and for a fully valid one.
func (f *Form) Errors() []FieldError {
	if !f.bound {
		return nil
	}
	var errs []FieldError
	for _, fs := range f.def.fields {
		if o := f.outcomes[fs.name]; o.failed {
			errs = append(errs, FieldError{Field: fs.name, Message: o.message})
		}
	}
	return errs
}

// RawValue returns the field's extracted raw value, or an absent value if
// the form is unbound or the field name is unknown. Failed fields still
// expose their raw input, so a UI can repopulate every field.
func (f *Form) RawValue(name string) RawValue {
	return f.raws[name]
}

// Value returns the field's validated value, or nil if the field failed,
// the form is unbound, or the field name is unknown.
func (f *Form) Value(name string) any {
	o := f.outcomes[name]
	if o.failed {
		return nil
	}
	return o.value
}

// Error returns the field's validation error message, or "" if the field
// succeeded, the form is unbound, or the field name is unknown.
func (f *Form) Error(name string) string {
	return f.outcomes[name].message
}
