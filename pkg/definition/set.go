package definition

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-formfield/pkg/field"
)

// Form is a named, ordered list of field configurations.
type Form struct {
	ID     string         `json:"id"`
	Title  string         `json:"title,omitempty"`
	Fields []field.Config `json:"-"`
}

// Set is a form whose fields have been built. It is safe for concurrent use.
type Set struct {
	id     string
	title  string
	fields []*field.Field
	byID   map[string]*field.Field
}

// Result is the outcome of validating a submission.
type Result struct {
	// Values holds the extracted value of every field, keyed by id.
	Values map[string]any `json:"values"`
	// Violations holds the failed fields only.
	Violations map[string]*field.Violation `json:"violations,omitempty"`
}

// Valid reports whether no field failed.
func (r Result) Valid() bool {
	return len(r.Violations) == 0
}

// NewSet builds every field of form. Field ids must be unique.
func NewSet(form Form, opts ...Option) (*Set, error) {
	o := newOptions(opts)

	set := &Set{
		id:     form.ID,
		title:  form.Title,
		fields: make([]*field.Field, 0, len(form.Fields)),
		byID:   make(map[string]*field.Field, len(form.Fields)),
	}
	for _, cfg := range form.Fields {
		if _, exists := set.byID[cfg.ID]; exists {
			return nil, fmt.Errorf("%w: form %q: duplicate field %q", ErrInvalidDefinition, form.ID, cfg.ID)
		}
		if cfg.Message == nil && o.messages != nil {
			cfg.Message = o.messages(cfg)
		}
		f, err := field.New(cfg)
		if err != nil {
			return nil, fmt.Errorf("definition: form %q: %w", form.ID, err)
		}
		set.fields = append(set.fields, f)
		set.byID[cfg.ID] = f
	}
	return set, nil
}

// ID returns the form id.
func (s *Set) ID() string {
	return s.id
}

// Title returns the form title, if any.
func (s *Set) Title() string {
	return s.title
}

// Field returns the field with id.
func (s *Set) Field(id string) (*field.Field, bool) {
	f, ok := s.byID[id]
	return f, ok
}

// Fields returns the fields in declaration order.
func (s *Set) Fields() []*field.Field {
	return append([]*field.Field(nil), s.fields...)
}

// Extract pulls every field value out of body. The result holds an entry for
// each field, nil when the body carries none.
func (s *Set) Extract(body map[string]any) map[string]any {
	values := make(map[string]any, len(s.fields))
	for _, f := range s.fields {
		values[f.ID()] = f.ExtractValue(body)
	}
	return values
}

// Validate extracts body and validates each field, using the extracted
// values as the sibling snapshot. Radios are validated against the value of
// their group, so one checked option satisfies a required group.
func (s *Set) Validate(body map[string]any) Result {
	values := s.Extract(body)
	siblings := field.Siblings(values)

	result := Result{Values: values}
	for _, f := range s.fields {
		value := values[f.ID()]
		if f.Type() == field.TypeRadio {
			value = f.GroupValue(body)
		}
		if violation := f.Validate(value, siblings); violation != nil {
			if result.Violations == nil {
				result.Violations = make(map[string]*field.Violation)
			}
			result.Violations[f.ID()] = violation
		}
	}
	return result
}

// Render renders every field with its value from values. Unless opts
// suppresses them, errors are rendered for fields that fail against values.
func (s *Set) Render(values map[string]any, opts field.RenderOptions) string {
	if opts.Siblings == nil {
		opts.Siblings = field.Siblings(values)
	}

	var b strings.Builder
	for _, f := range s.fields {
		b.WriteString(f.Render(values[f.ID()], opts))
	}
	return b.String()
}
