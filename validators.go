package formy

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Built-in validators covering the common field shapes. Each follows the
// assertion protocol: Check aborts the field on bad input, the return value
// is the field's final value. Extra declaration arguments (e.g. the minimum
// length for MinLen) arrive through args; a missing or mistyped argument is
// a programming defect and panics.

// Required passes a scalar that is present and non-empty; value is the string.
func Required(c *Checker, raw RawValue, _ ...any) any {
	s, present := raw.Scalar()
	c.Check(present && s != "", "value is required")
	return s
}

// MinLen passes a scalar of at least args[0] characters; value is the string.
func MinLen(c *Checker, raw RawValue, args ...any) any {
	n := mustIntArg("MinLen", args, 0)
	s, present := raw.Scalar()
	c.Check(present, "value is required")
	c.Check(len(s) >= n, "must be at least %d characters", n)
	return s
}

// MaxLen passes an absent scalar or one of at most args[0] characters;
// value is the string ("" when absent).
func MaxLen(c *Checker, raw RawValue, args ...any) any {
	n := mustIntArg("MaxLen", args, 0)
	s, _ := raw.Scalar()
	c.Check(len(s) <= n, "must be at most %d characters", n)
	return s
}

// Int parses a scalar as a base-10 integer; value is an int.
func Int(c *Checker, raw RawValue, _ ...any) any {
	s, present := raw.Scalar()
	c.Check(present, "value is required")
	n, err := strconv.Atoi(strings.TrimSpace(s))
	c.Check(err == nil, "%q is not an integer", s)
	return n
}

// Ints parses every list item as a base-10 integer; value is a []int
// (empty for an empty list).
func Ints(c *Checker, raw RawValue, _ ...any) any {
	items := raw.List()
	out := make([]int, len(items))
	for i, s := range items {
		n, err := strconv.Atoi(strings.TrimSpace(s))
		c.Check(err == nil, "item %d: %q is not an integer", i, s)
		out[i] = n
	}
	return out
}

// Compact drops absent slots from an array; value is a []string in index
// order (empty for an absent array).
func Compact(_ *Checker, raw RawValue, _ ...any) any {
	return raw.Compact()
}

// OneOf passes a scalar equal to one of the declaration arguments; value is
// the string. Non-string arguments are compared by their fmt representation.
func OneOf(c *Checker, raw RawValue, args ...any) any {
	s, present := raw.Scalar()
	c.Check(present, "value is required")
	allowed := make([]string, len(args))
	for i, a := range args {
		allowed[i] = fmt.Sprint(a)
		if s == allowed[i] {
			return s
		}
	}
	c.Check(false, "value %q must be one of: %s", s, strings.Join(allowed, ", "))
	return nil
}

// Builtins returns the built-in validators keyed by the names the loader
// resolves them under. The map is freshly allocated; callers may extend it
// with their own validators before passing it to Load.
func Builtins() map[string]ValidatorFunc {
	return map[string]ValidatorFunc{
		"required": Required,
		"min_len":  MinLen,
		"max_len":  MaxLen,
		"int":      Int,
		"ints":     Ints,
		"compact":  Compact,
		"one_of":   OneOf,
	}
}

// mustIntArg reads a required integer declaration argument. Loader-sourced
// arguments arrive as float64; truncation is rejected.
func mustIntArg(validator string, args []any, i int) int {
	if i >= len(args) {
		panic(fmt.Sprintf("formy: %s requires an integer argument at position %d", validator, i))
	}
	switch n := args[i].(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		if n == math.Trunc(n) {
			return int(n)
		}
	}
	panic(fmt.Sprintf("formy: %s argument %d must be an integer, got %T", validator, i, args[i]))
}
