package field

import "github.com/goliatone/go-formfield/pkg/htmltag"

// ExtractValue returns the field value held in a parsed request body, or nil
// when the body does not carry one.
//
// Boolean-valued fields (checkbox by default) yield true for true or "true"
// and nil otherwise. A checkable field with a non-boolean value yields the
// submitted value only when it equals the configured one. Repeated values
// ([]string, as produced from url.Values) collapse to the last value unless
// the field accepts multiple values.
func (f *Field) ExtractValue(body map[string]any) any {
	raw, ok := f.lookup(body)
	if !ok || raw == nil {
		return nil
	}
	if !f.multiple() {
		raw = lastValue(raw)
	}

	if _, boolean := f.cfg.Value.(bool); boolean {
		if isTrue(raw) {
			return true
		}
		return nil
	}
	if f.preset.checkable {
		if htmltag.Stringify(raw) == htmltag.Stringify(f.cfg.Value) {
			return raw
		}
		return nil
	}
	return raw
}

// GroupValue returns the value submitted for the control name of f, or "" when
// the body carries none. For a radio this is the checked option of the whole
// group, which is what a required radio is validated against.
func (f *Field) GroupValue(body map[string]any) any {
	raw, ok := body[f.Name()]
	if !ok || raw == nil {
		return ""
	}
	if raw = lastValue(raw); raw == nil {
		return ""
	}
	return raw
}

// lookup reads the body by id. Radio groups share a name across fields with
// distinct ids, so radios read by name first.
func (f *Field) lookup(body map[string]any) (any, bool) {
	keys := []string{f.cfg.ID, f.cfg.Name}
	if f.cfg.Type == TypeRadio {
		keys[0], keys[1] = keys[1], keys[0]
	}
	for _, key := range keys {
		if key == "" {
			continue
		}
		if raw, ok := body[key]; ok {
			return raw, true
		}
	}
	return nil, false
}

func (f *Field) multiple() bool {
	return truthy(f.cfg.Attributes["multiple"])
}

func lastValue(raw any) any {
	switch v := raw.(type) {
	case []string:
		if len(v) == 0 {
			return nil
		}
		return v[len(v)-1]
	case []any:
		if len(v) == 0 {
			return nil
		}
		return v[len(v)-1]
	default:
		return raw
	}
}
