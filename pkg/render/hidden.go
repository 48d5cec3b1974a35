// Package render holds form-level rendering helpers shared by the HTTP
// server and library callers. Field markup itself lives in package field.
package render

import (
	"sort"
	"strings"

	"github.com/goliatone/go-formfield/pkg/htmltag"
)

// Hidden is a hidden input emitted next to the visible fields, such as a CSRF
// token or a record version.
type Hidden struct {
	Name  string
	Value string
}

// HiddenValue returns a Hidden for name with value in string form.
func HiddenValue(name string, value any) Hidden {
	return Hidden{Name: strings.TrimSpace(name), Value: htmltag.Stringify(value)}
}

// MergeHidden combines hidden inputs. Blank names are dropped and a later
// entry replaces an earlier one of the same name. The result is sorted by
// name.
func MergeHidden(groups ...[]Hidden) []Hidden {
	byName := make(map[string]string)
	for _, group := range groups {
		for _, h := range group {
			name := strings.TrimSpace(h.Name)
			if name == "" {
				continue
			}
			byName[name] = h.Value
		}
	}
	if len(byName) == 0 {
		return nil
	}

	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]Hidden, len(names))
	for i, name := range names {
		out[i] = Hidden{Name: name, Value: byName[name]}
	}
	return out
}

// HiddenHTML renders the inputs in order.
func HiddenHTML(fields []Hidden) string {
	var b strings.Builder
	for _, h := range fields {
		b.WriteString(htmltag.Build("input", htmltag.NewAttrs("type", "hidden", "name", h.Name, "value", h.Value), ""))
	}
	return b.String()
}
