package field

// ViolationKind names the reason a value failed validation. The set mirrors
// the browser ValidityState flags plus noMatch for cross-field equality.
type ViolationKind string

const (
	BadInput        ViolationKind = "badInput"
	CustomError     ViolationKind = "customError"
	PatternMismatch ViolationKind = "patternMismatch"
	RangeOverflow   ViolationKind = "rangeOverflow"
	RangeUnderflow  ViolationKind = "rangeUnderflow"
	StepMismatch    ViolationKind = "stepMismatch"
	TooLong         ViolationKind = "tooLong"
	TypeMismatch    ViolationKind = "typeMismatch"
	ValueMissing    ViolationKind = "valueMissing"
	NoMatch         ViolationKind = "noMatch"
	TooShort        ViolationKind = "tooShort"
)

// messageOrder is the order data-message-* attributes are emitted in.
var messageOrder = [...]ViolationKind{
	BadInput,
	CustomError,
	PatternMismatch,
	RangeOverflow,
	RangeUnderflow,
	StepMismatch,
	TooLong,
	TypeMismatch,
	ValueMissing,
	NoMatch,
	TooShort,
}

// Kinds returns every violation kind in attribute emission order.
func Kinds() []ViolationKind {
	return append([]ViolationKind(nil), messageOrder[:]...)
}

// ParseViolationKind resolves a kind from its string form.
func ParseViolationKind(raw string) (ViolationKind, bool) {
	for _, kind := range messageOrder {
		if string(kind) == raw {
			return kind, true
		}
	}
	return "", false
}

// Reserved reports whether the kind is kept for parity with native input
// validity but never produced by the evaluator.
func (k ViolationKind) Reserved() bool {
	switch k {
	case BadInput, CustomError, RangeOverflow, RangeUnderflow, StepMismatch:
		return true
	default:
		return false
	}
}

func (k ViolationKind) String() string {
	return string(k)
}
