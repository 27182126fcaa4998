// Package formy is a declarative field-validation engine for flat key/value
// input such as submitted form data. It is presentation-agnostic: it neither
// parses HTTP requests nor renders HTML.
//
// # Overview
//
// A form definition is an ordered set of named fields, each with a kind
// (scalar, list, or indexed array), a validator, and optional extra
// arguments. Binding a definition to a collection of key/value pairs
// classifies the pairs by field, runs each field's validator, and yields a
// Form exposing per-field validated values or error messages plus an
// overall validity flag.
//
// Pipeline: field declarations → Compile / Registry.Define → Definition →
// Bind (extract raw values, then validate each field in order) → Form →
// IsValid / Errors / RawValue / Value / Error.
//
// # Key concepts
//
//   - Per-field isolation: one field's failed check never blocks another
//     field; every field keeps its raw input for UI repopulation.
//   - Assertion protocol: validators call Checker.Check; the first failing
//     check aborts that field's validator and records the formatted message
//     as the field's error.
//   - Definition-time errors: a malformed declaration is a *SchemaError at
//     registration, never a runtime surprise.
//
// # Example
//
//	def, err := formy.Compile("signup",
//	    formy.Field("username", formy.MinLen, 3),
//	    formy.Field("age", formy.Int),
//	    formy.ListField("tags", formy.Ints),
//	)
//	if err != nil { ... }
//	form := def.Bind(formy.Pairs("username", "ada", "age", "42", "tags", "1", "tags", "2"))
//	if !form.IsValid() {
//	    for _, fe := range form.Errors() { ... }
//	}
//	age := form.Value("age").(int)
package formy
