package field

import "strconv"

// Message overrides the built-in violation messages of a field. It is one of
// Blanket, PerKind or Computed.
type Message interface {
	isMessage()
}

// Blanket is a single message used for every violation kind. It is also
// exposed to the browser as a generic data-message attribute.
type Blanket string

// PerKind maps violation kinds to messages. Kinds without an entry fall back
// to the built-in defaults.
type PerKind map[ViolationKind]string

// Computed derives the message from the violation kind.
type Computed func(kind ViolationKind) string

func (Blanket) isMessage()  {}
func (PerKind) isMessage()  {}
func (Computed) isMessage() {}

// Message resolves the message shown for kind.
func (f *Field) Message(kind ViolationKind) string {
	return resolveMessage(kind, f.cfg)
}

func resolveMessage(kind ViolationKind, cfg Config) string {
	switch m := cfg.Message.(type) {
	case Blanket:
		return string(m)
	case Computed:
		if m != nil {
			return m(kind)
		}
	case PerKind:
		if msg := m[kind]; msg != "" {
			return msg
		}
	}
	return DefaultMessage(kind, cfg)
}

// DefaultMessage returns the built-in English message for kind, interpolating
// the constraint values from cfg. Overrides in cfg.Message are ignored.
func DefaultMessage(kind ViolationKind, cfg Config) string {
	switch kind {
	case ValueMissing:
		return "This field is required"
	case TooShort:
		return "Please use " + boundString(cfg.MinLength) + " characters or more"
	case TooLong:
		return "Please use " + boundString(cfg.MaxLength) + " characters or less"
	case PatternMismatch:
		return "Please use the required format"
	case TypeMismatch:
		return "Please enter a valid " + typeName(cfg.Type)
	case NoMatch:
		return cfg.ID + " must match " + cfg.Match
	default:
		return "Please enter a valid value"
	}
}

func boundString(bound *int) string {
	if bound == nil {
		return "0"
	}
	return strconv.Itoa(*bound)
}

// overrideFor reports a PerKind entry for kind, if any.
func overrideFor(msg Message, kind ViolationKind) (string, bool) {
	perKind, ok := msg.(PerKind)
	if !ok {
		return "", false
	}
	text := perKind[kind]
	return text, text != ""
}
