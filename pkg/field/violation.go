package field

import "errors"

// Violation is a failed validation: the kind that failed plus its resolved,
// human-readable message. A nil *Violation means the value is valid.
type Violation struct {
	Kind    ViolationKind `json:"kind"`
	Message string        `json:"message"`
}

func (v *Violation) Error() string {
	if v == nil {
		return ""
	}
	return v.Message
}

// AsViolation unwraps err into a *Violation.
func AsViolation(err error) (*Violation, bool) {
	var violation *Violation
	if errors.As(err, &violation) && violation != nil {
		return violation, true
	}
	return nil, false
}
