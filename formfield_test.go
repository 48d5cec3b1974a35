package formfield

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-formfield/pkg/themes"
)

const notesAPI = `
openapi: 3.0.3
info: {title: Notes, version: "1"}
paths:
  /notes:
    post:
      operationId: createNote
      requestBody:
        content:
          application/x-www-form-urlencoded:
            schema:
              type: object
              required: [body]
              properties:
                body: {type: string, title: Body, maxLength: 140}
      responses:
        "201": {description: created}
`

func TestGenerateHTML(t *testing.T) {
	html, err := GenerateHTML(context.Background(), []byte(notesAPI), "createNote", map[string]any{"body": "hi"}, RenderOptions{})
	if err != nil {
		t.Fatalf("GenerateHTML: %v", err)
	}
	for _, want := range []string{`<label for="body">Body</label>`, `maxlength="140"`, `value="hi"`} {
		if !strings.Contains(html, want) {
			t.Fatalf("expected %q in %s", want, html)
		}
	}

	if _, err := GenerateHTML(context.Background(), []byte(notesAPI), "missing", nil, RenderOptions{}); err == nil {
		t.Fatal("expected error for unknown operation")
	}
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	def := "forms:\n  ping:\n    fields:\n      - id: host\n        required: true\n"
	if err := os.WriteFile(filepath.Join(dir, "ping.yaml"), []byte(def), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	store, err := LoadDir(dir)
	if err != nil {
		t.Fatalf("LoadDir: %v", err)
	}
	set, err := store.Set("ping")
	if err != nil {
		t.Fatalf("Set: %v", err)
	}
	if result := set.Validate(map[string]any{}); result.Valid() {
		t.Fatal("expected missing host to fail")
	}
}

func TestEmbeddedTemplates(t *testing.T) {
	for _, name := range []string{"chrome/label.tmpl", "chrome/error.tmpl"} {
		if _, err := fs.Stat(EmbeddedTemplates(), name); err != nil {
			t.Fatalf("expected %s: %v", name, err)
		}
	}
}

type fixedSelector struct {
	selection *theme.Selection
}

func (s fixedSelector) Select(_, _ string, _ ...theme.QueryOption) (*theme.Selection, error) {
	return s.selection, nil
}

func TestWithThemeSelector(t *testing.T) {
	manifest := &theme.Manifest{Name: "plain", Tokens: map[string]string{themes.TokenLabel: "lbl"}}
	opts, err := WithThemeSelector(RenderOptions{}, fixedSelector{selection: themes.Selection(manifest, "")}, "plain", "")
	if err != nil {
		t.Fatalf("WithThemeSelector: %v", err)
	}
	if opts.Classes.Label != "lbl" {
		t.Fatalf("unexpected label classes %q", opts.Classes.Label)
	}
}
