package definition

import (
	"fmt"
	"slices"

	"gopkg.in/yaml.v3"
)

// --- StringOrArray YAML methods ---

// UnmarshalYAML accepts either a single string or an array of strings.
func (s *StringOrArray) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var str string

		err := node.Decode(&str)
		if err != nil {
			return err
		}

		if str != "" {
			*s = StringOrArray{str}
		} else {
			*s = StringOrArray{}
		}

		return nil

	case yaml.SequenceNode:
		var arr []string

		err := node.Decode(&arr)
		if err != nil {
			return err
		}

		*s = arr

		return nil

	default:
		return fmt.Errorf("expected string or array, got %v", node.Kind)
	}
}

// MarshalYAML outputs a single string if length is 1, otherwise an array.
func (s StringOrArray) MarshalYAML() (any, error) {
	if len(s) == 1 {
		return s[0], nil
	}

	return []string(s), nil
}

// First returns the first name, or "" when there is none.
func (s StringOrArray) First() string {
	if len(s) == 0 {
		return ""
	}

	return s[0]
}

func (s StringOrArray) Contains(str string) bool {
	return slices.Contains(s, str)
}

// --- ValidatorDef YAML methods ---

type plainValidatorDef ValidatorDef

// UnmarshalYAML accepts either a validator name or a mapping with a name,
// a message and parameters.
func (v *ValidatorDef) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		*v = ValidatorDef{}

		return node.Decode(&v.Name)

	case yaml.MappingNode:
		var plain plainValidatorDef

		err := node.Decode(&plain)
		if err != nil {
			return err
		}

		*v = ValidatorDef(plain)

		return nil

	default:
		return fmt.Errorf("expected validator name or mapping, got %v", node.Kind)
	}
}

// MarshalYAML outputs the bare name when there is nothing else to say.
func (v ValidatorDef) MarshalYAML() (any, error) {
	if v.Message == "" && len(v.Params) == 0 {
		return v.Name, nil
	}

	return plainValidatorDef(v), nil
}
