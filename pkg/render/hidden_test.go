package render_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formfield/pkg/render"
)

func TestMergeHidden(t *testing.T) {
	got := render.MergeHidden(
		[]render.Hidden{{Name: " version ", Value: "3"}, {Name: "", Value: "ignored"}},
		[]render.Hidden{
			render.HiddenValue("_csrf", "token123"),
			render.HiddenValue("version", 4),
			render.HiddenValue("  ", "skip"),
		},
	)

	want := []render.Hidden{
		{Name: "_csrf", Value: "token123"},
		{Name: "version", Value: "4"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("merged hidden fields mismatch (-want +got):\n%s", diff)
	}
	if got := render.MergeHidden(nil); got != nil {
		t.Fatalf("expected nil for no fields, got %v", got)
	}
}

func TestHiddenHTML(t *testing.T) {
	got := render.HiddenHTML([]render.Hidden{{Name: "_csrf", Value: `a"b`}})
	want := `<input type="hidden" name="_csrf" value="a&#34;b"/>`
	if got != want {
		t.Fatalf("HiddenHTML = %s, want %s", got, want)
	}
}
