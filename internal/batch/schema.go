package batch

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"regex-transpiler/internal/common"
)

// File is a batch file.
type File struct {
	Version  string    `yaml:"version"`
	Defaults Settings  `yaml:"defaults,omitempty"`
	Patterns []Pattern `yaml:"patterns"`
}

// Settings are the conversion options of a pattern. Empty fields inherit the defaults.
type Settings struct {
	Target          string `yaml:"target,omitempty"`
	Unicode         string `yaml:"unicode,omitempty"`
	CaseInsensitive *bool  `yaml:"case_insensitive,omitempty"`
}

// Pattern is one source pattern.
type Pattern struct {
	Name     string        `yaml:"name,omitempty"`
	Source   string        `yaml:"source"`
	Tags     StringOrArray `yaml:"tags,omitempty"`
	Settings `yaml:",inline"`
}

// StringOrArray is a list of strings that may be written as a single string.
type StringOrArray []string

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

// MarshalYAML writes a single string if there is exactly one element.
func (s StringOrArray) MarshalYAML() (any, error) {
	if len(s) == 1 {
		return s[0], nil
	}

	return []string(s), nil
}

// IsEmpty returns true if the array is empty.
func (s StringOrArray) IsEmpty() bool {
	return common.IsEmpty(s)
}

// merge fills the empty fields of s from defaults.
func (s Settings) merge(defaults Settings) Settings {
	if s.Target == "" {
		s.Target = defaults.Target
	}

	if s.Unicode == "" {
		s.Unicode = defaults.Unicode
	}

	if s.CaseInsensitive == nil {
		s.CaseInsensitive = defaults.CaseInsensitive
	}

	return s
}
