package field

// Config declares a field. Zero values mean "not configured": a nil bound or
// an empty pattern is an inactive constraint. Once passed to New the config
// is copied and never changes.
type Config struct {
	// Type selects the preset; empty means TypeText.
	Type Type
	// ID identifies the field in request bodies and sibling snapshots. It is
	// rewritten into a valid DOM id when rendered (see CreateValidID).
	ID string
	// Name is the submitted control name; defaults to ID.
	Name string

	Label string
	// Optional appends an "(optional)" indicator to the label unless the
	// field is required. A non-empty OptionalText implies Optional.
	Optional     bool
	OptionalText string
	// WrapperTag is the element wrapping label, widget and error; "div" when empty.
	WrapperTag string
	Classes    []string
	// Data holds extra data-* attributes for the wrapper, keyed without the
	// "data-" prefix.
	Data map[string]string

	Required bool
	// MinLength and MaxLength count characters. Any non-nil bound, zero
	// included, is an active constraint.
	MinLength *int
	MaxLength *int
	// Pattern is a regular expression the value must contain a match for.
	Pattern string
	// Match names a sibling field whose value this field must equal.
	Match string
	// ValidateIf names a sibling field; when it holds a falsy value this
	// field is exempt from validation.
	ValidateIf string

	// Value is the default value used when no value is supplied.
	Value any

	Message Message

	// Attributes carries HTML attributes without a dedicated field
	// (placeholder, autofocus, step, accept...). Only names on the type's
	// allow-list are rendered; names owned by dedicated fields are ignored.
	Attributes map[string]any

	// Choices are the options of a TypeSelect field.
	Choices []Choice

	// HideErrors disables error markup for every render of the field.
	HideErrors bool
}

// Int returns a pointer to n, for MinLength and MaxLength.
func Int(n int) *int {
	return &n
}

func (c Config) clone() Config {
	out := c
	if c.Classes != nil {
		out.Classes = append([]string(nil), c.Classes...)
	}
	if c.Data != nil {
		out.Data = make(map[string]string, len(c.Data))
		for key, value := range c.Data {
			out.Data[key] = value
		}
	}
	if c.Attributes != nil {
		out.Attributes = make(map[string]any, len(c.Attributes))
		for key, value := range c.Attributes {
			out.Attributes[key] = value
		}
	}
	if c.Choices != nil {
		out.Choices = append([]Choice(nil), c.Choices...)
	}
	if perKind, ok := c.Message.(PerKind); ok && perKind != nil {
		copied := make(PerKind, len(perKind))
		for kind, text := range perKind {
			copied[kind] = text
		}
		out.Message = copied
	}
	if c.MinLength != nil {
		out.MinLength = Int(*c.MinLength)
	}
	if c.MaxLength != nil {
		out.MaxLength = Int(*c.MaxLength)
	}
	return out
}
