package schema

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/dmitrymomot/formkit/pkg/validator"
)

// FieldOptions carries field configuration that influences resolution.
type FieldOptions struct {
	// Multiple selects the file-list variants of the file rules.
	Multiple bool
}

// Resolve turns a schema into a validator.
// Unknown kinds and missing or invalid parameters fail with a *ConfigError.
func Resolve(s Schema, opts FieldOptions) (validator.Validator, error) {
	ruleOpts := []validator.Option{
		validator.WithMessage(s.Message),
		validator.WithOptional(s.Optional),
	}

	switch s.Kind {
	case KindRequired:
		return validator.Required(ruleOpts...), nil
	case KindEmail:
		return validator.Email(ruleOpts...), nil
	case KindPhone:
		return validator.Phone(ruleOpts...), nil
	case KindStrongPassword:
		return validator.StrongPassword(ruleOpts...), nil
	case KindDateRequired:
		return validator.DateRequired(ruleOpts...), nil
	case KindMinLength:
		n, err := bound(s, "min", s.Min)
		if err != nil {
			return nil, err
		}
		return validator.MinLength(n, ruleOpts...), nil
	case KindMaxLength:
		n, err := bound(s, "max", s.Max)
		if err != nil {
			return nil, err
		}
		return validator.MaxLength(n, ruleOpts...), nil
	case KindFile, KindFileRequired, KindFileRequiredMultiple, KindFileType, KindFileTypeMultiple:
		return resolveFile(s, opts, ruleOpts)
	default:
		return nil, &ConfigError{Kind: s.Kind, Err: ErrUnknownKind}
	}
}

// MustResolve is like Resolve but panics on a configuration error.
// Use it for schemas that are compiled into the program.
func MustResolve(s Schema, opts FieldOptions) validator.Validator {
	v, err := Resolve(s, opts)
	if err != nil {
		panic(err)
	}
	return v
}

// ResolveChain resolves every schema and chains the results so the first
// failing rule wins.
func ResolveChain(opts FieldOptions, schemas ...Schema) (validator.Validator, error) {
	list := make([]validator.Validator, 0, len(schemas))
	for _, s := range schemas {
		v, err := Resolve(s, opts)
		if err != nil {
			return nil, err
		}
		list = append(list, v)
	}
	return validator.Chain(list...), nil
}

func bound(s Schema, param string, value *int) (int, error) {
	if value == nil {
		return 0, &ConfigError{Kind: s.Kind, Param: param, Err: ErrMissingParameter}
	}
	if *value < 0 {
		return 0, &ConfigError{Kind: s.Kind, Param: param, Err: fmt.Errorf("%w: %d is negative", ErrInvalidParameter, *value)}
	}
	return *value, nil
}

func resolveFile(s Schema, opts FieldOptions, ruleOpts []validator.Option) (validator.Validator, error) {
	multiple := opts.Multiple || s.Kind == KindFileRequiredMultiple || s.Kind == KindFileTypeMultiple
	typed := len(s.AllowedTypes) > 0

	if !typed && (s.Kind == KindFileType || s.Kind == KindFileTypeMultiple) {
		return nil, &ConfigError{Kind: s.Kind, Param: "allowedTypes", Err: ErrMissingParameter}
	}
	if s.MaxSize < 0 {
		return nil, &ConfigError{Kind: s.Kind, Param: "maxSize", Err: fmt.Errorf("%w: %d is negative", ErrInvalidParameter, s.MaxSize)}
	}
	if s.MinSize < 0 {
		return nil, &ConfigError{Kind: s.Kind, Param: "minSize", Err: fmt.Errorf("%w: %d is negative", ErrInvalidParameter, s.MinSize)}
	}

	var rule validator.Validator
	switch {
	case typed && multiple:
		rule = validator.FileTypeMultiple(s.AllowedTypes, ruleOpts...)
	case typed:
		rule = validator.FileType(s.AllowedTypes, ruleOpts...)
	case multiple:
		rule = validator.FileRequiredMultiple(ruleOpts...)
	default:
		rule = validator.FileRequired(ruleOpts...)
	}

	if s.MaxSize == 0 && s.MinSize == 0 {
		return rule, nil
	}

	chain := []validator.Validator{rule}
	sizeOpts := []validator.Option{validator.WithOptional(s.Optional)}
	if s.MinSize > 0 {
		chain = append(chain, validator.FileMinSize(s.MinSize, sizeOpts...))
	}
	if s.MaxSize > 0 {
		chain = append(chain, validator.FileMaxSize(s.MaxSize, sizeOpts...))
	}
	return validator.Chain(chain...), nil
}

// Resolver caches resolved validators per field name.
// An entry is rebuilt when the schemas registered for the field change.
// Each form owns its own Resolver, so two forms never share entries.
type Resolver struct {
	mu      sync.RWMutex
	entries map[string]resolved
}

type resolved struct {
	schemas []Schema
	opts    FieldOptions
	v       validator.Validator
}

// NewResolver returns an empty cache.
func NewResolver() *Resolver {
	return &Resolver{entries: make(map[string]resolved)}
}

// For returns the validator for field, resolving and caching it on first use.
func (r *Resolver) For(field string, s Schema, opts FieldOptions) (validator.Validator, error) {
	return r.ForChain(field, opts, s)
}

// ForChain is For for a sequence of schemas chained in order.
func (r *Resolver) ForChain(field string, opts FieldOptions, schemas ...Schema) (validator.Validator, error) {
	r.mu.RLock()
	entry, ok := r.entries[field]
	r.mu.RUnlock()
	if ok && entry.opts == opts && slices.EqualFunc(entry.schemas, schemas, sameSchema) {
		return entry.v, nil
	}

	v, err := ResolveChain(opts, schemas...)
	if err != nil {
		var ce *ConfigError
		if errors.As(err, &ce) && ce.Field == "" {
			ce.Field = field
		}
		return nil, err
	}

	r.mu.Lock()
	r.entries[field] = resolved{schemas: slices.Clone(schemas), opts: opts, v: v}
	r.mu.Unlock()
	return v, nil
}

// Forget drops the cached validator for field.
func (r *Resolver) Forget(field string) {
	r.mu.Lock()
	delete(r.entries, field)
	r.mu.Unlock()
}

// Len reports how many fields have a cached validator.
func (r *Resolver) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

func sameSchema(a, b Schema) bool {
	return a.Kind == b.Kind &&
		a.Message == b.Message &&
		a.Optional == b.Optional &&
		a.bare == b.bare &&
		sameInt(a.Min, b.Min) &&
		sameInt(a.Max, b.Max) &&
		slices.Equal(a.AllowedTypes, b.AllowedTypes) &&
		a.MaxSize == b.MaxSize &&
		a.MinSize == b.MinSize
}

func sameInt(a, b *int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
