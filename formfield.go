// Package formfield is the top-level entry point of go-formfield. It aliases
// the core types and wires the common paths: loading definitions from disk
// and rendering forms imported from an OpenAPI document.
package formfield

import (
	"context"
	"fmt"
	"io/fs"
	"os"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-formfield/pkg/definition"
	"github.com/goliatone/go-formfield/pkg/field"
	"github.com/goliatone/go-formfield/pkg/openapi"
	"github.com/goliatone/go-formfield/pkg/render/template/gotemplate"
	"github.com/goliatone/go-formfield/pkg/themes"
)

// Field is a configured form field.
type Field = field.Field

// Config declares a field.
type Config = field.Config

// Violation is a failed validation.
type Violation = field.Violation

// RenderOptions carries per-render overrides.
type RenderOptions = field.RenderOptions

// Form is a named list of field declarations.
type Form = definition.Form

// Set is a built form.
type Set = definition.Set

// Store holds loaded forms.
type Store = definition.Store

// New builds a field from cfg.
func New(cfg Config) (*Field, error) {
	return field.New(cfg)
}

// LoadDir loads every definition file under dir.
func LoadDir(dir string, options ...definition.Option) (*Store, error) {
	return definition.LoadFS(os.DirFS(dir), options...)
}

// EmbeddedTemplates exposes the built-in chrome templates so callers can copy
// or extend them without importing the template engine package.
func EmbeddedTemplates() fs.FS {
	return gotemplate.DefaultTemplates()
}

// GenerateHTML imports operationID from an OpenAPI document and renders its
// fields with values. Errors are not rendered.
func GenerateHTML(ctx context.Context, document []byte, operationID string, values map[string]any, opts RenderOptions, options ...definition.Option) (string, error) {
	form, err := openapi.Fields(ctx, document, operationID)
	if err != nil {
		return "", err
	}
	set, err := definition.NewSet(form, options...)
	if err != nil {
		return "", fmt.Errorf("formfield: %w", err)
	}
	opts.SuppressErrors = true
	return set.Render(set.Extract(values), opts), nil
}

// WithThemeSelector resolves name and variant through selector and applies
// the resulting chrome classes to opts.
func WithThemeSelector(opts RenderOptions, selector theme.ThemeSelector, name, variant string) (RenderOptions, error) {
	classes, err := themes.Select(selector, name, variant)
	if err != nil {
		return opts, err
	}
	opts.Classes = classes
	return opts, nil
}
