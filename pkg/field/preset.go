package field

import (
	"regexp"
	"sort"
	"strings"
)

// Type selects the preset a field is built from: its input type, the HTML
// attributes it may surface and any type-specific format check.
type Type string

const (
	TypeText          Type = "text"
	TypeString        Type = "string"
	TypeNumber        Type = "number"
	TypeColor         Type = "color"
	TypeDate          Type = "date"
	TypeDatetime      Type = "datetime"
	TypeDatetimeLocal Type = "datetime-local"
	TypeMonth         Type = "month"
	TypeWeek          Type = "week"
	TypeSearch        Type = "search"
	TypeTime          Type = "time"
	TypeTel           Type = "tel"
	TypeURL           Type = "url"
	TypeEmail         Type = "email"
	TypeHidden        Type = "hidden"
	TypePassword      Type = "password"
	TypeFile          Type = "file"
	TypeCheckbox      Type = "checkbox"
	TypeRadio         Type = "radio"
	TypeSelect        Type = "select"
)

var (
	// Character classes follow the WHATWG valid e-mail address definition.
	emailPattern = regexp.MustCompile("^[a-zA-Z0-9.!#$%&'*+/=?^_`{|}~-]+@[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(?:\\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)*$")
	urlPattern   = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9+.\-]*://[^\s/?#]+[^\s]*$`)
	telPattern   = regexp.MustCompile(`^\+?[0-9\s().\-]{3,}$`)
)

type preset struct {
	inputType  string
	tag        string
	attributes []string
	typeCheck  func(string) bool
	// composite widgets render child elements and never carry type or value.
	composite bool
	// checkable widgets submit their configured value only when checked.
	checkable bool
	// widgetFirst renders the control before its label.
	widgetFirst  bool
	defaultValue any
}

var (
	inputAttributes = []string{
		"autofocus", "disabled", "form", "formaction", "formenctype", "formmethod",
		"formnovalidate", "formtarget", "value", "required", "selectiondirection", "autocomplete",
		"inputmode", "list", "minlength", "maxlength", "spellcheck", "readonly",
		"placeholder", "pattern", "step", "match", "validateif", "name",
	}
	rangedAttributes = append(append([]string(nil), inputAttributes...), "min", "max")
	fileAttributes   = []string{
		"type", "autofocus", "disabled", "form", "formaction", "formenctype", "formmethod",
		"formnovalidate", "formtarget", "value", "required", "selectiondirection", "accept",
		"multiple", "placeholder",
	}
	checkableAttributes = []string{
		"autofocus", "disabled", "form", "formaction", "formenctype", "formmethod",
		"formnovalidate", "formtarget", "required", "selectiondirection", "value",
		"autocomplete", "inputmode", "list", "readonly", "validateif", "name", "checked",
	}
	selectAttributes = []string{
		"autofocus", "disabled", "form", "required", "multiple", "size",
		"autocomplete", "match", "validateif", "name",
	}
)

var presets = map[Type]preset{
	TypeText:          textPreset("text", inputAttributes),
	TypeString:        textPreset("text", inputAttributes),
	TypeNumber:        textPreset("number", rangedAttributes),
	TypeColor:         textPreset("color", inputAttributes),
	TypeDate:          textPreset("date", rangedAttributes),
	TypeDatetime:      textPreset("datetime", rangedAttributes),
	TypeDatetimeLocal: textPreset("datetime-local", rangedAttributes),
	TypeMonth:         textPreset("month", rangedAttributes),
	TypeWeek:          textPreset("week", rangedAttributes),
	TypeSearch:        textPreset("search", inputAttributes),
	TypeTime:          textPreset("time", rangedAttributes),
	TypeHidden:        textPreset("hidden", inputAttributes),
	TypePassword:      textPreset("password", inputAttributes),
	TypeTel: {
		inputType:  "tel",
		tag:        "input",
		attributes: inputAttributes,
		typeCheck:  isTel,
	},
	TypeURL: {
		inputType:  "url",
		tag:        "input",
		attributes: inputAttributes,
		typeCheck:  urlPattern.MatchString,
	},
	TypeEmail: {
		inputType:  "email",
		tag:        "input",
		attributes: inputAttributes,
		typeCheck:  emailPattern.MatchString,
	},
	TypeFile: textPreset("file", fileAttributes),
	TypeCheckbox: {
		inputType:    "checkbox",
		tag:          "input",
		attributes:   checkableAttributes,
		checkable:    true,
		widgetFirst:  true,
		defaultValue: true,
	},
	TypeRadio: {
		inputType:   "radio",
		tag:         "input",
		attributes:  checkableAttributes,
		checkable:   true,
		widgetFirst: true,
	},
	TypeSelect: {
		inputType:  "select",
		tag:        "select",
		attributes: selectAttributes,
		composite:  true,
	},
}

func textPreset(inputType string, attributes []string) preset {
	return preset{inputType: inputType, tag: "input", attributes: attributes}
}

func isTel(value string) bool {
	return telPattern.MatchString(value) && strings.ContainsAny(value, "0123456789")
}

// Types lists every registered field type, sorted.
func Types() []Type {
	out := make([]Type, 0, len(presets))
	for t := range presets {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Valid reports whether t has a preset.
func (t Type) Valid() bool {
	_, ok := presets[t]
	return ok
}

// InputType returns the type attribute rendered for t. TypeString renders as
// "text"; TypeSelect reports "select" although its widget has no type.
func (t Type) InputType() string {
	return typeName(t)
}

// AvailableAttributes returns a copy of the HTML attribute names a field of
// type t may surface from its configuration.
func (t Type) AvailableAttributes() []string {
	p, ok := presets[t]
	if !ok {
		return nil
	}
	return append([]string(nil), p.attributes...)
}

// Mismatchable reports whether t carries a format check (email, url, tel).
func (t Type) Mismatchable() bool {
	p, ok := presets[t]
	return ok && p.typeCheck != nil
}

func typeName(t Type) string {
	if t == "" {
		t = TypeText
	}
	if p, ok := presets[t]; ok {
		return p.inputType
	}
	return string(t)
}
