package field

import (
	"math"
	"unicode/utf8"

	"github.com/goliatone/go-formfield/pkg/htmltag"
)

// Siblings is a snapshot of the other fields' current values keyed by field
// id. A key that is present means the sibling exists, even with a nil value.
type Siblings map[string]any

// Validate checks value against the field constraints and returns the first
// violation, or nil when the value is acceptable.
func (f *Field) Validate(value any, siblings Siblings) *Violation {
	kind, failed := f.Check(value, siblings)
	if !failed {
		return nil
	}
	return &Violation{Kind: kind, Message: f.Message(kind)}
}

// Check reports the first violated constraint for value. Checks run in a fixed
// order and only the first failure is reported: noMatch, valueMissing,
// tooShort, tooLong, patternMismatch, typeMismatch.
func (f *Field) Check(value any, siblings Siblings) (ViolationKind, bool) {
	if !f.validationReady(siblings) {
		return "", false
	}
	return f.firstViolation(f.coerce(value), siblings)
}

// validationReady reports false when the ValidateIf sibling exists and holds a
// falsy value. A missing sibling does not gate the field.
func (f *Field) validationReady(siblings Siblings) bool {
	if f.cfg.ValidateIf == "" {
		return true
	}
	gate, ok := siblings[f.cfg.ValidateIf]
	if !ok {
		return true
	}
	return truthy(gate)
}

// coerce returns the string form validated for value. A nil value falls back
// to the configured default. A checkbox validates its configured value when
// the value checks it and the empty string otherwise. Radios take the value
// of their group as given (see GroupValue).
func (f *Field) coerce(value any) string {
	if f.cfg.Type == TypeCheckbox {
		if f.selects(value) {
			return htmltag.Stringify(f.cfg.Value)
		}
		return ""
	}
	if value == nil {
		value = f.cfg.Value
	}
	return htmltag.Stringify(value)
}

func (f *Field) firstViolation(value string, siblings Siblings) (ViolationKind, bool) {
	if f.cfg.Match != "" {
		if other, ok := siblings[f.cfg.Match]; ok && htmltag.Stringify(other) != value {
			return NoMatch, true
		}
	}

	length := utf8.RuneCountInString(value)
	switch {
	case f.cfg.Required && length == 0:
		return ValueMissing, true
	case f.cfg.MinLength != nil && length < *f.cfg.MinLength:
		return TooShort, true
	case f.cfg.MaxLength != nil && length > *f.cfg.MaxLength:
		return TooLong, true
	case f.pattern != nil && length > 0 && !f.pattern.MatchString(value):
		return PatternMismatch, true
	case f.preset.typeCheck != nil && length > 0 && !f.preset.typeCheck(value):
		return TypeMismatch, true
	}
	return "", false
}

// constraintActive reports whether kind can be produced by this field, which
// decides if its data-message attribute is rendered.
func (f *Field) constraintActive(kind ViolationKind) bool {
	switch kind {
	case ValueMissing:
		return f.cfg.Required
	case TooShort:
		return f.cfg.MinLength != nil
	case TooLong:
		return f.cfg.MaxLength != nil
	case PatternMismatch:
		return f.pattern != nil
	case NoMatch:
		return f.cfg.Match != ""
	case TypeMismatch:
		return f.preset.typeCheck != nil
	default:
		return false
	}
}

func truthy(value any) bool {
	switch v := value.(type) {
	case nil:
		return false
	case string:
		return v != ""
	case bool:
		return v
	case int:
		return v != 0
	case int32:
		return v != 0
	case int64:
		return v != 0
	case uint:
		return v != 0
	case uint64:
		return v != 0
	case float32:
		return v != 0 && !math.IsNaN(float64(v))
	case float64:
		return v != 0 && !math.IsNaN(v)
	case []string:
		return len(v) > 0
	default:
		return true
	}
}
