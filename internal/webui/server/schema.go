package server

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/invopop/jsonschema"
)

var schemaTypes = map[string]any{
	"message": &MessageRequest{},
	"tabify":  &TabifyRequest{},
}

// SchemaNames lists the request bodies Schema knows, sorted.
func SchemaNames() []string {
	out := make([]string, 0, len(schemaTypes))
	for k := range schemaTypes {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Schema returns the JSON Schema of the named request body.
func Schema(name string) (*jsonschema.Schema, error) {
	v, ok := schemaTypes[name]
	if !ok {
		return nil, fmt.Errorf("unknown schema %q (known: %v)", name, SchemaNames())
	}
	r := jsonschema.Reflector{ExpandedStruct: true}
	return r.Reflect(v), nil
}

// MarshalSchema indents the schema to JSON bytes.
func MarshalSchema(sch *jsonschema.Schema) ([]byte, error) {
	return json.MarshalIndent(sch, "", "  ")
}
