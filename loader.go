package formy

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/pelletier/go-toml/v2"
	sjson "github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"
)

// definitionFileSchema is the JSON Schema every loaded definition document
// must satisfy before any form is compiled. Validating the document first
// keeps malformed files a single definition-time error instead of a partial
// registration.
const definitionFileSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["forms"],
  "additionalProperties": false,
  "properties": {
    "forms": {
      "type": "object",
      "minProperties": 1,
      "additionalProperties": {
        "type": "array",
        "minItems": 1,
        "items": {
          "type": "object",
          "required": ["name", "validator"],
          "additionalProperties": false,
          "properties": {
            "name": {"type": "string", "minLength": 1},
            "kind": {"enum": ["scalar", "list", "array"]},
            "validator": {"type": "string", "minLength": 1},
            "args": {"type": "array"}
          }
        }
      }
    }
  }
}`

var (
	fileSchemaOnce sync.Once
	fileSchema     *sjson.Schema
	fileSchemaErr  error
)

func compileFileSchema() (*sjson.Schema, error) {
	fileSchemaOnce.Do(func() {
		doc, err := sjson.UnmarshalJSON(strings.NewReader(definitionFileSchema))
		if err != nil {
			fileSchemaErr = err
			return
		}
		c := sjson.NewCompiler()
		if err := c.AddResource("formy.json", doc); err != nil {
			fileSchemaErr = err
			return
		}
		fileSchema, fileSchemaErr = c.Compile("formy.json")
	})
	return fileSchema, fileSchemaErr
}

// definitionFile is the decoded shape of a form-definition document.
type definitionFile struct {
	Forms map[string][]fieldDoc `json:"forms"`
}

type fieldDoc struct {
	Name      string `json:"name"`
	Kind      string `json:"kind"`
	Validator string `json:"validator"`
	Args      []any  `json:"args"`
}

// LoadFile reads a form-definition document (YAML, TOML, or JSON, inferred
// from the file extension) and registers every form it declares, resolving
// validators by name. See Load for the document contract.
func LoadFile(r *Registry, path string, validators map[string]ValidatorFunc) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read form definitions %s: %w", path, err)
	}
	format := inferFormat(path)
	if format == "" {
		return fmt.Errorf("form definitions %s: cannot infer format from extension", path)
	}
	return Load(r, data, format, validators)
}

// Load parses data in the given format ("yaml", "toml", or "json"),
// validates the document against the definition-file schema, and registers
// every declared form in r. Fields reference validators by name; an
// unresolved name fails with ErrUnknownValidator before anything under that
// form is registered. Document shape:
//
//	forms:
//	  signup:
//	    - name: username
//	      kind: scalar        # scalar (default) | list | array
//	      validator: min_len
//	      args: [3]
func Load(r *Registry, data []byte, format string, validators map[string]ValidatorFunc) error {
	var raw map[string]any
	switch format {
	case "yaml", "yml":
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return fmt.Errorf("parse YAML form definitions: %w", err)
		}
	case "toml":
		if err := toml.Unmarshal(data, &raw); err != nil {
			return fmt.Errorf("parse TOML form definitions: %w", err)
		}
	case "json":
		if err := json.Unmarshal(data, &raw); err != nil {
			return fmt.Errorf("parse JSON form definitions: %w", err)
		}
	default:
		return fmt.Errorf("unsupported form definition format: %s (supported: yaml, toml, json)", format)
	}

	// Normalize through JSON so schema validation and the typed decode see
	// identical value types regardless of the source format.
	jsonData, err := json.Marshal(raw)
	if err != nil {
		return fmt.Errorf("normalize form definitions: %w", err)
	}
	doc, err := sjson.UnmarshalJSON(bytes.NewReader(jsonData))
	if err != nil {
		return fmt.Errorf("normalize form definitions: %w", err)
	}
	schema, err := compileFileSchema()
	if err != nil {
		return err
	}
	if err := schema.Validate(doc); err != nil {
		return fmt.Errorf("invalid form definitions: %w", err)
	}

	var file definitionFile
	if err := json.Unmarshal(jsonData, &file); err != nil {
		return fmt.Errorf("decode form definitions: %w", err)
	}

	names := make([]string, 0, len(file.Forms))
	for name := range file.Forms {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		decls := make([]FieldDecl, 0, len(file.Forms[name]))
		for _, fd := range file.Forms[name] {
			fn, ok := validators[fd.Validator]
			if !ok {
				return &SchemaError{Form: name, Field: fd.Name, Err: fmt.Errorf("%w: %s", ErrUnknownValidator, fd.Validator)}
			}
			kind, err := parseKind(fd.Kind)
			if err != nil {
				return &SchemaError{Form: name, Field: fd.Name, Err: err}
			}
			decls = append(decls, FieldDecl{Name: fd.Name, Kind: kind, Validate: fn, Args: fd.Args})
		}
		if _, err := r.Define(name, decls...); err != nil {
			return err
		}
	}
	return nil
}

func parseKind(s string) (Kind, error) {
	switch s {
	case "", "scalar":
		return KindScalar, nil
	case "list":
		return KindList, nil
	case "array":
		return KindArray, nil
	}
	return 0, fmt.Errorf("%w: %s", ErrUnknownKind, s)
}

func inferFormat(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return "yaml"
	case ".toml":
		return "toml"
	case ".json":
		return "json"
	}
	return ""
}
