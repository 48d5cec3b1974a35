package field

import (
	"strings"

	"github.com/goliatone/go-formfield/pkg/htmltag"
)

var idReplacer = strings.NewReplacer("][", "_", "[", "_", "]", "_")

// CreateValidID rewrites bracket notation (foo[bar], foo[]) into underscores
// so the result can be used as a DOM id. The empty string stays empty.
func CreateValidID(id string) string {
	if id == "" {
		return ""
	}
	return idReplacer.Replace(id)
}

// Attributes resolves the widget attributes for value, in emission order:
// type, allow-listed configuration, name/id/value, type again, then the
// data-message attributes. Checkable fields append checked when value selects
// them.
func (f *Field) Attributes(value any) htmltag.Attrs {
	var attrs htmltag.Attrs
	f.setTypeAttribute(&attrs)

	for _, name := range f.preset.attributes {
		if configured, ok := f.configuredAttribute(name); ok {
			attrs.Set(name, configured)
		}
	}

	setPresent(&attrs, "name", f.Name())
	setPresent(&attrs, "id", CreateValidID(f.cfg.ID))
	switch {
	case f.preset.composite:
		attrs.Delete("value")
	case f.preset.checkable:
		setPresent(&attrs, "value", f.cfg.Value)
	case value != nil:
		attrs.Set("value", value)
	default:
		setPresent(&attrs, "value", f.cfg.Value)
	}

	f.setTypeAttribute(&attrs)
	f.setMessageAttributes(&attrs)

	if f.preset.checkable && f.selects(value) {
		attrs.Set("checked", "checked")
	}
	return attrs
}

func (f *Field) setTypeAttribute(attrs *htmltag.Attrs) {
	if f.preset.composite {
		return
	}
	attrs.Set("type", f.preset.inputType)
}

// configuredAttribute looks up an allow-listed attribute. Constraint and
// identity attributes come only from their dedicated Config fields so the
// rendered constraints always equal the validated ones.
func (f *Field) configuredAttribute(name string) (any, bool) {
	switch name {
	case "type":
		return f.preset.inputType, true
	case "required":
		return true, f.cfg.Required
	case "minlength":
		if f.cfg.MinLength == nil {
			return nil, false
		}
		return *f.cfg.MinLength, true
	case "maxlength":
		if f.cfg.MaxLength == nil {
			return nil, false
		}
		return *f.cfg.MaxLength, true
	case "pattern":
		return f.cfg.Pattern, f.cfg.Pattern != ""
	case "match":
		return f.cfg.Match, f.cfg.Match != ""
	case "validateif":
		return f.cfg.ValidateIf, f.cfg.ValidateIf != ""
	case "name":
		return f.cfg.Name, f.cfg.Name != ""
	case "id":
		return nil, false
	case "value":
		return f.cfg.Value, f.cfg.Value != nil
	}
	value, ok := f.cfg.Attributes[name]
	if !ok || value == nil {
		return nil, false
	}
	return value, true
}

func (f *Field) setMessageAttributes(attrs *htmltag.Attrs) {
	if blanket, ok := f.cfg.Message.(Blanket); ok {
		attrs.Set("data-message", string(blanket))
	}
	for _, kind := range messageOrder {
		name := "data-message-" + string(kind)
		if f.constraintActive(kind) {
			attrs.Set(name, f.Message(kind))
			continue
		}
		if text, ok := overrideFor(f.cfg.Message, kind); ok {
			attrs.Set(name, text)
		}
	}
}

// selects reports whether value checks a checkable field. Boolean-valued
// fields accept true or "true"; others compare string forms with the
// configured value.
func (f *Field) selects(value any) bool {
	if value == nil {
		return false
	}
	if _, ok := f.cfg.Value.(bool); ok {
		return isTrue(value)
	}
	return htmltag.Stringify(value) == htmltag.Stringify(f.cfg.Value)
}

func isTrue(value any) bool {
	switch v := value.(type) {
	case bool:
		return v
	case string:
		return v == "true"
	default:
		return false
	}
}

func setPresent(attrs *htmltag.Attrs, name string, value any) {
	if value == nil {
		return
	}
	if s, ok := value.(string); ok && s == "" {
		return
	}
	attrs.Set(name, value)
}
