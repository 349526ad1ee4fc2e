package schema

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Schema describes what a field value must satisfy.
//
// The bare form is just a kind tag and uses default parameters. The
// structured form carries a kind plus an optional message override, an
// optional flag and kind-specific parameters.
type Schema struct {
	Kind         Kind     `json:"kind" yaml:"kind"`
	Message      string   `json:"message,omitempty" yaml:"message,omitempty"`
	Optional     bool     `json:"optional,omitempty" yaml:"optional,omitempty"`
	Min          *int     `json:"min,omitempty" yaml:"min,omitempty"`
	Max          *int     `json:"max,omitempty" yaml:"max,omitempty"`
	AllowedTypes []string `json:"allowedTypes,omitempty" yaml:"allowedTypes,omitempty"`
	MaxSize      int64    `json:"maxSize,omitempty" yaml:"maxSize,omitempty"`
	MinSize      int64    `json:"minSize,omitempty" yaml:"minSize,omitempty"`

	bare bool
}

// Bare returns the tag-only schema for kind.
func Bare(kind Kind) Schema {
	return Schema{Kind: kind, bare: true}
}

// IsBare reports whether s was written as a bare kind tag.
func (s Schema) IsBare() bool {
	return s.bare
}

// Int is a helper for filling Min and Max.
func Int(v int) *int {
	return &v
}

// structured mirrors Schema for decoding. Type is accepted as an alias of Kind.
type structured struct {
	Kind         Kind     `json:"kind" yaml:"kind"`
	Type         Kind     `json:"type" yaml:"type"`
	Message      string   `json:"message" yaml:"message"`
	Optional     bool     `json:"optional" yaml:"optional"`
	Min          *int     `json:"min" yaml:"min"`
	Max          *int     `json:"max" yaml:"max"`
	AllowedTypes []string `json:"allowedTypes" yaml:"allowedTypes"`
	MaxSize      int64    `json:"maxSize" yaml:"maxSize"`
	MinSize      int64    `json:"minSize" yaml:"minSize"`
}

func (st structured) schema() (Schema, error) {
	kind := st.Kind
	if kind == "" {
		kind = st.Type
	}
	if kind == "" {
		return Schema{}, fmt.Errorf("%w: kind is required", ErrInvalidSchema)
	}
	return Schema{
		Kind:         kind,
		Message:      st.Message,
		Optional:     st.Optional,
		Min:          st.Min,
		Max:          st.Max,
		AllowedTypes: st.AllowedTypes,
		MaxSize:      st.MaxSize,
		MinSize:      st.MinSize,
	}, nil
}

// UnmarshalYAML decodes a scalar into a bare schema and a mapping into the
// structured form.
func (s *Schema) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var tag string
		if err := node.Decode(&tag); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidSchema, err)
		}
		if tag == "" {
			return fmt.Errorf("%w: line %d: empty kind", ErrInvalidSchema, node.Line)
		}
		*s = Bare(Kind(tag))
		return nil
	case yaml.MappingNode:
		var st structured
		if err := node.Decode(&st); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidSchema, err)
		}
		decoded, err := st.schema()
		if err != nil {
			return err
		}
		*s = decoded
		return nil
	default:
		return fmt.Errorf("%w: line %d: expected a kind or a mapping", ErrInvalidSchema, node.Line)
	}
}

// UnmarshalJSON accepts either a JSON string or an object.
func (s *Schema) UnmarshalJSON(data []byte) error {
	var tag string
	if err := json.Unmarshal(data, &tag); err == nil {
		if tag == "" {
			return fmt.Errorf("%w: empty kind", ErrInvalidSchema)
		}
		*s = Bare(Kind(tag))
		return nil
	}

	var st structured
	if err := json.Unmarshal(data, &st); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSchema, err)
	}
	decoded, err := st.schema()
	if err != nil {
		return err
	}
	*s = decoded
	return nil
}

// MarshalJSON writes bare schemas back as a plain string.
func (s Schema) MarshalJSON() ([]byte, error) {
	if s.bare {
		return json.Marshal(string(s.Kind))
	}
	type plain Schema
	return json.Marshal(plain(s))
}
