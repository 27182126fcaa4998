package formy

import (
	"strconv"
	"strings"
)

// extract computes the raw value for every field of the definition from the
// binding collection. The full extraction pass runs before any validator,
// so validators can read any field's raw value through Checker.Raw.
func extract(d *Definition, bindings []Binding) map[string]RawValue {
	raws := make(map[string]RawValue, len(d.fields))
	for _, f := range d.fields {
		raws[f.name] = extractField(f, bindings)
	}
	return raws
}

// extractField selects the bindings matching one field, shaped by its kind.
// Key matching is case-insensitive on the field name.
func extractField(f fieldSchema, bindings []Binding) RawValue {
	switch f.kind {
	case KindList:
		vals := []string{}
		for _, b := range bindings {
			if strings.EqualFold(b.Key, f.name) {
				vals = append(vals, b.Value)
			}
		}
		return RawValue{kind: KindList, present: len(vals) > 0, list: vals}

	case KindArray:
		// First binding wins per index, same tie-break as scalars.
		seen := make(map[int]string)
		max := -1
		for _, b := range bindings {
			idx, ok := arrayIndex(b.Key, f.name)
			if !ok {
				continue
			}
			if _, dup := seen[idx]; dup {
				continue
			}
			seen[idx] = b.Value
			if idx > max {
				max = idx
			}
		}
		if max < 0 {
			return RawValue{kind: KindArray}
		}
		arr := make([]*string, max+1)
		for idx, v := range seen {
			v := v
			arr[idx] = &v
		}
		return RawValue{kind: KindArray, present: true, array: arr}

	default: // KindScalar
		for _, b := range bindings {
			if strings.EqualFold(b.Key, f.name) {
				return RawValue{kind: KindScalar, present: true, scalar: b.Value}
			}
		}
		return RawValue{kind: KindScalar}
	}
}

// arrayIndex parses keys of the form name[index], case-insensitive on name.
// index must be a non-negative integer literal; anything else (including
// overflow) is simply not a match, never an error.
func arrayIndex(key, name string) (int, bool) {
	if len(key) < len(name)+3 {
		return 0, false
	}
	if !strings.EqualFold(key[:len(name)], name) {
		return 0, false
	}
	rest := key[len(name):]
	if rest[0] != '[' || rest[len(rest)-1] != ']' {
		return 0, false
	}
	digits := rest[1 : len(rest)-1]
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0, false
	}
	return n, true
}
