// Package themes maps go-theme manifests onto field chrome classes. A theme
// sets the tokens formfield.field, formfield.label and formfield.error to
// class lists; the selected variant overrides the manifest values.
package themes

import (
	"encoding/json"
	"fmt"
	"io"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-formfield/pkg/field"
)

const (
	TokenField = "formfield.field"
	TokenLabel = "formfield.label"
	TokenError = "formfield.error"
)

// Tokens returns the manifest tokens merged with those of the selected
// variant. The result is a copy.
func Tokens(sel *theme.Selection) map[string]string {
	if sel == nil || sel.Manifest == nil {
		return nil
	}
	out := make(map[string]string, len(sel.Manifest.Tokens))
	for key, value := range sel.Manifest.Tokens {
		out[key] = value
	}
	if variant, ok := sel.Manifest.Variants[sel.Variant]; ok {
		for key, value := range variant.Tokens {
			out[key] = value
		}
	}
	return out
}

// ClassesFromTokens reads the chrome class tokens.
func ClassesFromTokens(tokens map[string]string) field.ChromeClasses {
	return field.ChromeClasses{
		Field: tokens[TokenField],
		Label: tokens[TokenLabel],
		Error: tokens[TokenError],
	}
}

// ClassesFromSelection reads the chrome classes of a resolved selection. A
// nil selection yields no classes.
func ClassesFromSelection(sel *theme.Selection) field.ChromeClasses {
	return ClassesFromTokens(Tokens(sel))
}

// Select resolves name and variant through selector and returns the chrome
// classes of the result.
func Select(selector theme.ThemeSelector, name, variant string) (field.ChromeClasses, error) {
	if selector == nil {
		return field.ChromeClasses{}, fmt.Errorf("themes: selector is nil")
	}
	sel, err := selector.Select(name, variant)
	if err != nil {
		return field.ChromeClasses{}, fmt.Errorf("themes: select %q/%q: %w", name, variant, err)
	}
	return ClassesFromSelection(sel), nil
}

// DecodeManifest reads a JSON theme manifest.
func DecodeManifest(r io.Reader) (*theme.Manifest, error) {
	var manifest theme.Manifest
	if err := json.NewDecoder(r).Decode(&manifest); err != nil {
		return nil, fmt.Errorf("themes: decode manifest: %w", err)
	}
	return &manifest, nil
}

// Selection wraps a manifest and variant into a selection without a registry.
func Selection(manifest *theme.Manifest, variant string) *theme.Selection {
	if manifest == nil {
		return nil
	}
	return &theme.Selection{Theme: manifest.Name, Variant: variant, Manifest: manifest}
}
