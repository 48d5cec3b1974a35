package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/goliatone/go-formfield/pkg/prompt"
)

const contactYAML = `
forms:
  contact:
    title: Contact
    fields:
      - id: email
        type: email
        label: Email
        required: true
      - id: topic
        type: select
        label: Topic
        choices: [sales, support]
`

const themeJSON = `{
  "name": "plain",
  "tokens": {"formfield.field": "row", "formfield.error": "text-red"}
}`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func loadApp(t *testing.T, flags *Flags) *App {
	t.Helper()
	if flags.Definitions == "" {
		dir := t.TempDir()
		writeFile(t, dir, "contact.yaml", contactYAML)
		flags.Definitions = dir
	}
	app, err := Load(context.Background(), flags, zerolog.Nop())
	require.NoError(t, err)
	return app
}

func runApp(t *testing.T, register func(*cli.Command) *cli.Command, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	root := &cli.Command{Name: "formfield", Writer: &buf}
	root = register(root)
	err := root.Run(context.Background(), append([]string{"formfield"}, args...))
	return buf.String(), err
}

func TestRenderCommand(t *testing.T) {
	app := loadApp(t, &Flags{})

	out, err := runApp(t, NewRenderCmd(app).Register, "render", "--form", "contact", "email=nope", "topic=support")
	require.NoError(t, err)
	assert.Contains(t, out, `value="nope"`)
	assert.Contains(t, out, `<option value="support" selected="selected">support</option>`)
	assert.NotContains(t, out, "fieldError")

	out, err = runApp(t, NewRenderCmd(app).Register, "render", "--form", "contact", "--errors", "email=nope")
	require.NoError(t, err)
	assert.Contains(t, out, `class="fieldError"`)
}

func TestRenderCommandUnknownForm(t *testing.T) {
	app := loadApp(t, &Flags{})

	_, err := runApp(t, NewRenderCmd(app).Register, "render", "--form", "missing")
	assert.Error(t, err)
}

func TestValidateCommand(t *testing.T) {
	app := loadApp(t, &Flags{})

	out, err := runApp(t, NewValidateCmd(app).Register, "validate", "--form", "contact", "email=jane@example.com")
	require.NoError(t, err)
	assert.Empty(t, out)

	out, err = runApp(t, NewValidateCmd(app).Register, "validate", "--form", "contact", "email=")
	require.True(t, errors.Is(err, ErrInvalidSubmission), "got %v", err)
	assert.Equal(t, "email: valueMissing: This field is required\n", out)
}

func TestValidateCommandJSON(t *testing.T) {
	app := loadApp(t, &Flags{Lang: "es"})

	out, err := runApp(t, NewValidateCmd(app).Register, "validate", "--form", "contact", "--json", "email=")
	require.Error(t, err)

	var result struct {
		Violations map[string]struct {
			Kind    string `json:"kind"`
			Message string `json:"message"`
		} `json:"violations"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	require.Contains(t, result.Violations, "email")
	assert.Equal(t, "valueMissing", result.Violations["email"].Kind)
	assert.NotEqual(t, "This field is required", result.Violations["email"].Message)
}

type scriptedDriver struct {
	inputs  []string
	selects []int
}

func (d *scriptedDriver) Input(context.Context, prompt.InputConfig) (string, error) {
	if len(d.inputs) == 0 {
		return "", errors.New("no input scripted")
	}
	next := d.inputs[0]
	d.inputs = d.inputs[1:]
	return next, nil
}

func (d *scriptedDriver) Password(ctx context.Context, cfg prompt.InputConfig) (string, error) {
	return d.Input(ctx, cfg)
}

func (d *scriptedDriver) Confirm(context.Context, prompt.ConfirmConfig) (bool, error) {
	return false, errors.New("no confirm scripted")
}

func (d *scriptedDriver) Select(context.Context, prompt.SelectConfig) (int, error) {
	if len(d.selects) == 0 {
		return -1, errors.New("no select scripted")
	}
	next := d.selects[0]
	d.selects = d.selects[1:]
	return next, nil
}

func (d *scriptedDriver) MultiSelect(context.Context, prompt.SelectConfig) ([]int, error) {
	return nil, errors.New("no multiselect scripted")
}

func (d *scriptedDriver) Info(context.Context, string) error {
	return nil
}

func TestPromptCommand(t *testing.T) {
	app := loadApp(t, &Flags{})
	cmd := NewPromptCmd(app)
	cmd.driver = &scriptedDriver{inputs: []string{"bad", "jane@example.com"}, selects: []int{1}}

	out, err := runApp(t, cmd.Register, "prompt", "--form", "contact")
	require.NoError(t, err)

	var values map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &values))
	assert.Equal(t, map[string]any{"email": "jane@example.com", "topic": "support"}, values)
}

func TestLoadAppliesThemeAndOpenAPI(t *testing.T) {
	dir := t.TempDir()
	theme := writeFile(t, dir, "theme.json", themeJSON)
	document := writeFile(t, dir, "api.yaml", `
openapi: 3.0.3
info: {title: Notes, version: "1"}
paths:
  /notes:
    post:
      operationId: createNote
      requestBody:
        content:
          application/json:
            schema:
              type: object
              required: [body]
              properties:
                body: {type: string, maxLength: 140}
      responses:
        "201": {description: created}
`)

	app := loadApp(t, &Flags{ThemeFile: theme, OpenAPI: document})
	assert.Equal(t, "row", app.Render.Classes.Field)
	assert.Equal(t, "text-red", app.Render.Classes.Error)
	assert.Equal(t, []string{"contact", "createNote"}, app.Store.IDs())

	out, err := runApp(t, NewRenderCmd(app).Register, "render", "--form", "createNote")
	require.NoError(t, err)
	assert.True(t, strings.Contains(out, `maxlength="140"`), out)
}

func TestLoadWithoutDefinitionsDirectory(t *testing.T) {
	app := loadApp(t, &Flags{Definitions: filepath.Join(t.TempDir(), "missing")})
	assert.Empty(t, app.Store.IDs())
}

func TestParseAssignments(t *testing.T) {
	body, err := parseAssignments([]string{"a=1", "tags=x", "tags=y", "tags=z", "empty="})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"a":     "1",
		"tags":  []string{"x", "y", "z"},
		"empty": "",
	}, body)

	_, err = parseAssignments([]string{"novalue"})
	assert.Error(t, err)
}
