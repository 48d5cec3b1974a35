package gotemplate_test

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/flosch/pongo2/v6"
	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formfield/pkg/field"
	"github.com/goliatone/go-formfield/pkg/render/template/gotemplate"
)

func TestDefaultTemplatesMatchBuiltInMarkup(t *testing.T) {
	engine, err := gotemplate.New(gotemplate.WithDefaultTemplates())
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	fields := []field.Config{
		{ID: "user[name]", Label: "Name", Required: true},
		{ID: "nick", Label: "Nick <em>name</em>", Optional: true},
		{ID: "code", Label: "Code", Pattern: "^[0-9]+$", Message: field.Blanket("Digits <please> & thanks")},
		{ID: "agree", Type: field.TypeCheckbox, Label: "Agree", Required: true},
	}
	classes := field.ChromeClasses{Label: "text-sm", Error: "text-red"}

	for _, cfg := range fields {
		t.Run(cfg.ID, func(t *testing.T) {
			f := field.MustNew(cfg)
			for _, value := range []any{nil, "abc"} {
				want := f.Render(value, field.RenderOptions{Classes: classes})
				got := f.Render(value, field.RenderOptions{Classes: classes, Templates: engine})
				if diff := cmp.Diff(want, got); diff != "" {
					t.Fatalf("template chrome mismatch for %v (-builtin +template):\n%s", value, diff)
				}
			}
		})
	}
}

func TestRenderTemplatePrefersUserFiles(t *testing.T) {
	overrides := fstest.MapFS{
		"chrome/error.tmpl": {Data: []byte(`<p class="{{ classes }}" role="alert">{{ message }}</p>`)},
	}
	engine, err := gotemplate.New(gotemplate.WithFS(overrides), gotemplate.WithDefaultTemplates())
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	var buf bytes.Buffer
	got, err := engine.RenderTemplate("chrome/error", map[string]any{
		"target":  "name",
		"message": "Required <now>",
		"classes": "fieldError",
	}, &buf)
	if err != nil {
		t.Fatalf("render template: %v", err)
	}
	want := `<p class="fieldError" role="alert">Required &lt;now&gt;</p>`
	if got != want {
		t.Fatalf("render template mismatch\nwant: %q\n got: %q", want, got)
	}
	if buf.String() != want {
		t.Fatalf("writer mismatch\nwant: %q\n got: %q", want, buf.String())
	}

	label, err := engine.RenderTemplate("chrome/label", map[string]any{"target": "name", "text": "Name"})
	if err != nil {
		t.Fatalf("render default label: %v", err)
	}
	if label != `<label for="name">Name</label>` {
		t.Fatalf("unexpected default label %q", label)
	}
}

func TestRenderStringWithGlobals(t *testing.T) {
	engine, err := gotemplate.New(
		gotemplate.WithDefaultTemplates(),
		gotemplate.WithGlobalData(map[string]any{"site": "Acme"}),
	)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	if err := engine.GlobalContext(map[string]any{"env": "staging"}); err != nil {
		t.Fatalf("global context: %v", err)
	}

	got, err := engine.Render("{{ site }}/{{ env }}/{{ name }}", struct {
		Name string `json:"name"`
	}{Name: "Ada"})
	if err != nil {
		t.Fatalf("render string: %v", err)
	}
	if got != "Acme/staging/Ada" {
		t.Fatalf("unexpected output %q", got)
	}
}

func exclaim(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	return pongo2.AsValue(in.String() + "!"), nil
}

func whisper(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	return pongo2.AsValue(strings.ToLower(in.String())), nil
}

func TestWithFilterRejectsConflictingNames(t *testing.T) {
	name := "formfield_exclaim"
	for i := 0; i < 2; i++ {
		engine, err := gotemplate.New(gotemplate.WithDefaultTemplates(), gotemplate.WithFilter(name, exclaim))
		if err != nil {
			t.Fatalf("new engine %d: %v", i, err)
		}
		got, err := engine.RenderString("{{ name|"+name+" }}", map[string]any{"name": "ada"})
		if err != nil {
			t.Fatalf("render string: %v", err)
		}
		if got != "ada!" {
			t.Fatalf("unexpected output %q", got)
		}
	}

	if _, err := gotemplate.New(gotemplate.WithDefaultTemplates(), gotemplate.WithFilter(name, whisper)); err == nil {
		t.Fatalf("expected a different function under %q to fail", name)
	}
	if _, err := gotemplate.New(gotemplate.WithDefaultTemplates(), gotemplate.WithFilter("upper", whisper)); err == nil {
		t.Fatalf("expected a built-in filter name to fail")
	}
}

func TestRegisterFilter(t *testing.T) {
	engine, err := gotemplate.New(gotemplate.WithDefaultTemplates())
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	name := "formfield_shout"
	err = engine.RegisterFilter(name, func(input any, _ any) (any, error) {
		return strings.ToUpper(fmt.Sprint(input)) + "!", nil
	})
	if err != nil {
		t.Fatalf("register filter: %v", err)
	}
	if err := engine.RegisterFilter(name, func(input any, _ any) (any, error) { return input, nil }); err == nil {
		t.Fatalf("expected duplicate filter registration to fail")
	}

	got, err := engine.RenderString("{{ name|"+name+" }}", map[string]any{"name": "ada"})
	if err != nil {
		t.Fatalf("render string: %v", err)
	}
	if got != "ADA!" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestNewRequiresTemplateSource(t *testing.T) {
	if _, err := gotemplate.New(); err == nil {
		t.Fatalf("expected error without template sources")
	}
}

func TestMissingTemplateFails(t *testing.T) {
	engine, err := gotemplate.New(gotemplate.WithFS(fstest.MapFS{}))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	if _, err := engine.RenderTemplate("chrome/label", nil); err == nil {
		t.Fatalf("expected missing template error")
	}
}
