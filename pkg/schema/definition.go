package schema

import (
	"errors"
	"fmt"
	"io"
	"os"

	playground "github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/formkit/pkg/validator"
)

var structValidator = playground.New()

// FieldDefinition declares one field of a form.
type FieldDefinition struct {
	Name     string   `yaml:"name" json:"name" validate:"required"`
	Label    string   `yaml:"label,omitempty" json:"label,omitempty"`
	Schema   *Schema  `yaml:"schema,omitempty" json:"schema,omitempty"`
	Rules    []Schema `yaml:"rules,omitempty" json:"rules,omitempty"`
	Optional bool     `yaml:"optional,omitempty" json:"optional,omitempty"`
	Multiple bool     `yaml:"multiple,omitempty" json:"multiple,omitempty"`
	Initial  string   `yaml:"initial,omitempty" json:"initial,omitempty"`
}

// Schemas returns the primary schema followed by any extra rules.
func (f FieldDefinition) Schemas() []Schema {
	out := make([]Schema, 0, len(f.Rules)+1)
	if f.Schema != nil {
		out = append(out, *f.Schema)
	}
	return append(out, f.Rules...)
}

// Options returns the resolution options for the field.
func (f FieldDefinition) Options() FieldOptions {
	return FieldOptions{Multiple: f.Multiple}
}

// Validator resolves the field's schemas. A field without schemas yields nil.
func (f FieldDefinition) Validator() (validator.Validator, error) {
	schemas := f.Schemas()
	if len(schemas) == 0 {
		return nil, nil
	}
	v, err := ResolveChain(f.Options(), schemas...)
	if err != nil {
		var ce *ConfigError
		if errors.As(err, &ce) && ce.Field == "" {
			ce.Field = f.Name
		}
		return nil, err
	}
	return v, nil
}

// Definition is a named form: its fields and their schemas.
type Definition struct {
	Name   string            `yaml:"name" json:"name" validate:"required"`
	Title  string            `yaml:"title,omitempty" json:"title,omitempty"`
	Fields []FieldDefinition `yaml:"fields" json:"fields" validate:"required,min=1,unique=Name,dive"`
}

// Field looks up a field definition by name.
func (d *Definition) Field(name string) (FieldDefinition, bool) {
	for _, f := range d.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return FieldDefinition{}, false
}

// Validate checks the definition structure and resolves every schema so a
// misconfigured field fails here instead of going unvalidated at runtime.
func (d *Definition) Validate() error {
	if err := structValidator.Struct(d); err != nil {
		return fmt.Errorf("%w %q: %w", ErrInvalidDefinition, d.Name, err)
	}
	for _, f := range d.Fields {
		if _, err := f.Validator(); err != nil {
			return fmt.Errorf("%w %q: %w", ErrInvalidDefinition, d.Name, err)
		}
	}
	return nil
}

// Catalog is a set of form definitions, usually loaded from one file.
type Catalog struct {
	Forms []Definition `yaml:"forms" json:"forms" validate:"required,min=1,unique=Name"`
}

// Get returns the definition called name.
func (c *Catalog) Get(name string) (*Definition, bool) {
	for i := range c.Forms {
		if c.Forms[i].Name == name {
			return &c.Forms[i], true
		}
	}
	return nil, false
}

// Names lists definition names in file order.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.Forms))
	for _, d := range c.Forms {
		names = append(names, d.Name)
	}
	return names
}

// Validate checks the catalog and every definition in it.
func (c *Catalog) Validate() error {
	if err := structValidator.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDefinition, err)
	}
	for i := range c.Forms {
		if err := c.Forms[i].Validate(); err != nil {
			return err
		}
	}
	return nil
}

// LoadDefinition decodes and validates a single YAML form definition.
func LoadDefinition(r io.Reader) (*Definition, error) {
	var def Definition
	if err := yaml.NewDecoder(r).Decode(&def); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDefinition, err)
	}
	if err := def.Validate(); err != nil {
		return nil, err
	}
	return &def, nil
}

// LoadDefinitionFile reads a definition from path.
func LoadDefinitionFile(path string) (*Definition, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open form definition: %w", err)
	}
	defer f.Close()
	return LoadDefinition(f)
}

// LoadCatalog decodes and validates a YAML document holding several
// definitions under a top-level "forms" key.
func LoadCatalog(r io.Reader) (*Catalog, error) {
	var c Catalog
	if err := yaml.NewDecoder(r).Decode(&c); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDefinition, err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// LoadCatalogFile reads a catalog from path.
func LoadCatalogFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open form catalog: %w", err)
	}
	defer f.Close()
	return LoadCatalog(f)
}
