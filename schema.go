package formy

import (
	"encoding/json"

	"github.com/invopop/jsonschema"
)

// Schema exports the form definition as a JSON Schema document describing
// the shape of its validated input: an object with one property per field.
// Scalars map to strings, lists to string arrays, indexed arrays to arrays
// of nullable strings (absent slots). Useful for documenting a form's wire
// contract or driving client-side checks.
func (d *Definition) Schema() (map[string]any, error) {
	props := jsonschema.NewProperties()
	for _, f := range d.fields {
		props.Set(f.name, kindSchema(f.kind))
	}
	s := &jsonschema.Schema{
		Version:              jsonschema.Version,
		Title:                d.name,
		Type:                 "object",
		Properties:           props,
		AdditionalProperties: jsonschema.FalseSchema,
	}
	data, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	var out map[string]any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func kindSchema(k Kind) *jsonschema.Schema {
	switch k {
	case KindList:
		return &jsonschema.Schema{
			Type:  "array",
			Items: &jsonschema.Schema{Type: "string"},
		}
	case KindArray:
		return &jsonschema.Schema{
			Type: "array",
			Items: &jsonschema.Schema{AnyOf: []*jsonschema.Schema{
				{Type: "string"},
				{Type: "null"},
			}},
		}
	default:
		return &jsonschema.Schema{Type: "string"}
	}
}
