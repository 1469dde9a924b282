package script

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// ParseYAML reads the YAML format. Each sequence item must be a map with
// exactly one verb key; a null value is an empty argument.
func ParseYAML(r io.Reader) ([]Op, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("decode yaml script: %w", err)
	}
	if len(doc.Content) == 0 {
		return nil, nil
	}
	seq := doc.Content[0]
	if seq.Kind != yaml.SequenceNode {
		return nil, &SyntaxError{Line: seq.Line, Msg: "script must be a list"}
	}
	ops := make([]Op, 0, len(seq.Content))
	for _, item := range seq.Content {
		if item.Kind != yaml.MappingNode || len(item.Content) != 2 {
			return nil, &SyntaxError{Line: item.Line, Msg: "each entry must be a single verb: argument pair"}
		}
		key, val := item.Content[0], item.Content[1]
		v := Verb(strings.ToLower(key.Value))
		if !v.valid() {
			return nil, unknownVerb(key.Line, key.Value)
		}
		if val.Kind != yaml.ScalarNode {
			return nil, &SyntaxError{Line: val.Line, Msg: fmt.Sprintf("%s expects a scalar argument", v)}
		}
		arg := val.Value
		if val.Tag == "!!null" {
			arg = ""
		}
		ops = append(ops, Op{Verb: v, Arg: arg, Line: key.Line})
	}
	return ops, nil
}
