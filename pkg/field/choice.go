package field

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-formfield/pkg/htmltag"
)

// Choice is one option of a select field.
type Choice struct {
	Label string `json:"label" yaml:"label"`
	Value string `json:"value" yaml:"value"`
}

// Option returns a choice whose label is its value.
func Option(value string) Choice {
	return Choice{Label: value, Value: value}
}

// LabeledOption returns a choice shown as label and submitted as value.
func LabeledOption(label, value string) Choice {
	return Choice{Label: label, Value: value}
}

// ParseChoice converts a decoded definition entry into a Choice. A scalar is a
// bare value; a single-key map reads as {label: value}; a map with label and
// value keys is taken literally.
func ParseChoice(raw any) (Choice, error) {
	switch v := raw.(type) {
	case nil:
		return Choice{}, fmt.Errorf("field: empty choice")
	case Choice:
		return v, nil
	case string:
		return Option(v), nil
	case map[string]any:
		return choiceFromMap(v)
	case map[string]string:
		converted := make(map[string]any, len(v))
		for key, value := range v {
			converted[key] = value
		}
		return choiceFromMap(converted)
	case map[any]any:
		converted := make(map[string]any, len(v))
		for key, value := range v {
			converted[fmt.Sprint(key)] = value
		}
		return choiceFromMap(converted)
	case []any, []string:
		return Choice{}, fmt.Errorf("field: choice must be a value or a label/value pair, got %T", raw)
	default:
		return Option(htmltag.Stringify(v)), nil
	}
}

func choiceFromMap(m map[string]any) (Choice, error) {
	value, hasValue := m["value"]
	if hasValue && len(m) <= 2 {
		label, hasLabel := m["label"]
		if len(m) == 1 || hasLabel {
			choice := Option(htmltag.Stringify(value))
			if hasLabel {
				choice.Label = htmltag.Stringify(label)
			}
			return choice, nil
		}
	}
	if len(m) != 1 {
		return Choice{}, fmt.Errorf("field: choice map must hold exactly one label, got %d keys", len(m))
	}
	for label, value := range m {
		return LabeledOption(label, htmltag.Stringify(value)), nil
	}
	return Choice{}, nil
}

// optionsHTML renders the option elements of a select. value falls back to
// the configured default; a multi-valued selection marks every matching
// option.
func (f *Field) optionsHTML(value any) string {
	if value == nil {
		value = f.cfg.Value
	}
	selected := selectedValues(value)

	var b strings.Builder
	for _, choice := range f.cfg.Choices {
		attrs := htmltag.NewAttrs("value", choice.Value)
		if _, ok := selected[choice.Value]; ok {
			attrs.Set("selected", "selected")
		}
		b.WriteString(htmltag.Build("option", attrs, htmltag.Escape(choice.Label)))
	}
	return b.String()
}

func selectedValues(value any) map[string]struct{} {
	out := make(map[string]struct{})
	switch v := value.(type) {
	case nil:
	case []string:
		for _, item := range v {
			out[item] = struct{}{}
		}
	case []any:
		for _, item := range v {
			out[htmltag.Stringify(item)] = struct{}{}
		}
	default:
		out[htmltag.Stringify(v)] = struct{}{}
	}
	return out
}
