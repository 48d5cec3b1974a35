package field

import (
	"fmt"
	"regexp"
)

// Field is a constructed, immutable field definition. See New.
type Field struct {
	cfg     Config
	preset  preset
	pattern *regexp.Regexp
}

// New validates cfg and builds a Field. Unknown types, patterns that do not
// compile and negative or inverted length bounds are rejected.
func New(cfg Config) (*Field, error) {
	cfg = cfg.clone()
	if cfg.Type == "" {
		cfg.Type = TypeText
	}

	p, ok := presets[cfg.Type]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, cfg.Type)
	}

	if err := validateBounds(cfg.MinLength, cfg.MaxLength); err != nil {
		return nil, fmt.Errorf("field %q: %w", cfg.ID, err)
	}

	var pattern *regexp.Regexp
	if cfg.Pattern != "" {
		compiled, err := regexp.Compile(cfg.Pattern)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w: %v", cfg.ID, ErrInvalidPattern, err)
		}
		pattern = compiled
	}

	if cfg.Value == nil {
		cfg.Value = p.defaultValue
	}
	if cfg.OptionalText != "" {
		cfg.Optional = true
	}

	return &Field{cfg: cfg, preset: p, pattern: pattern}, nil
}

// MustNew is like New but panics on error. Useful for package-level field
// definitions.
func MustNew(cfg Config) *Field {
	f, err := New(cfg)
	if err != nil {
		panic(err)
	}
	return f
}

func validateBounds(minLength, maxLength *int) error {
	if minLength != nil && *minLength < 0 {
		return fmt.Errorf("%w: minlength %d is negative", ErrInvalidBounds, *minLength)
	}
	if maxLength != nil && *maxLength < 0 {
		return fmt.Errorf("%w: maxlength %d is negative", ErrInvalidBounds, *maxLength)
	}
	if minLength != nil && maxLength != nil && *minLength > *maxLength {
		return fmt.Errorf("%w: minlength %d exceeds maxlength %d", ErrInvalidBounds, *minLength, *maxLength)
	}
	return nil
}

// ID returns the configured identifier.
func (f *Field) ID() string {
	return f.cfg.ID
}

// Name returns the submitted control name, falling back to the ID.
func (f *Field) Name() string {
	if f.cfg.Name != "" {
		return f.cfg.Name
	}
	return f.cfg.ID
}

// Type returns the field type.
func (f *Field) Type() Type {
	return f.cfg.Type
}

// Label returns the configured label text.
func (f *Field) Label() string {
	return f.cfg.Label
}

// Required reports whether the field must hold a value.
func (f *Field) Required() bool {
	return f.cfg.Required
}

// Default returns the configured default value.
func (f *Field) Default() any {
	return f.cfg.Value
}

// Choices returns a copy of the configured choices.
func (f *Field) Choices() []Choice {
	return append([]Choice(nil), f.cfg.Choices...)
}

// Config returns a copy of the normalised configuration.
func (f *Field) Config() Config {
	return f.cfg.clone()
}
