// Package field describes a single HTML form control declaratively and keeps
// its rendering and server-side validation on the same constraint set.
//
// A Field is built once from a Config (see New) and reused for every request:
//
//	email := field.MustNew(field.Config{
//		Type:      field.TypeEmail,
//		ID:        "email",
//		Label:     "Email",
//		Required:  true,
//		MaxLength: field.Int(64),
//	})
//
//	html := email.Render(submitted, field.RenderOptions{})
//	if v := email.Validate(submitted, nil); v != nil {
//		// v.Kind == field.ValueMissing, v.Message == "This field is required"
//	}
//
// Rendering resolves an allow-listed, insertion-ordered attribute set for the
// widget (including data-message-* attributes the browser runtime can use),
// wraps it with label and error markup, and reports at most one violation per
// value. Validation checks run in a fixed order: noMatch, valueMissing,
// tooShort, tooLong, patternMismatch, then the type-specific typeMismatch.
//
// Fields hold no per-request state; values and sibling snapshots are passed
// in, so a Field is safe for concurrent use.
package field
