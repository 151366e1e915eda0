package cli

import (
	"fmt"
	"math/big"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/graphcost/costlang/internal/eval"
)

// LoadVars reads a YAML file mapping variable names to integer or
// boolean values.
//
// Integers are decoded through the scalar's string form, not a machine
// integer, so values of any magnitude round-trip into the environment.
// Strings, floats, nulls, and nested structures are rejected - the
// expression language has no such kinds.
func LoadVars(path string) (eval.Vars, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read vars file: %w", err)
	}

	var raw map[string]yaml.Node
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse vars file: %w", err)
	}

	vars := make(eval.Vars, len(raw))
	for name, node := range raw {
		if node.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("variable %q: expected a scalar value", name)
		}
		switch node.Tag {
		case "!!int":
			n, ok := new(big.Int).SetString(node.Value, 10)
			if !ok {
				return nil, fmt.Errorf("variable %q: invalid integer %q", name, node.Value)
			}
			vars[name] = eval.Int{N: n}
		case "!!bool":
			b, err := strconv.ParseBool(node.Value)
			if err != nil {
				return nil, fmt.Errorf("variable %q: invalid boolean %q", name, node.Value)
			}
			vars[name] = eval.NewBool(b)
		case "!!str":
			// yaml.v3 tags integers that overflow uint64 as plain !!str
			// scalars. A plain scalar in decimal integer syntax is still
			// an integer; quoted scalars stay strings and are rejected.
			n, ok := new(big.Int).SetString(node.Value, 10)
			if node.Style != 0 || !ok {
				return nil, fmt.Errorf("variable %q: unsupported value %q (only integers and booleans exist)", name, node.Value)
			}
			vars[name] = eval.Int{N: n}
		default:
			return nil, fmt.Errorf("variable %q: unsupported value %q (only integers and booleans exist)", name, node.Value)
		}
	}
	return vars, nil
}
