package field_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formfield/pkg/field"
)

func TestExtractValue(t *testing.T) {
	tests := []struct {
		name string
		cfg  field.Config
		body map[string]any
		want any
	}{
		{name: "checkbox string true", cfg: field.Config{ID: "agree", Type: field.TypeCheckbox}, body: map[string]any{"agree": "true"}, want: true},
		{name: "checkbox bool true", cfg: field.Config{ID: "agree", Type: field.TypeCheckbox}, body: map[string]any{"agree": true}, want: true},
		{name: "checkbox false", cfg: field.Config{ID: "agree", Type: field.TypeCheckbox}, body: map[string]any{"agree": "false"}, want: nil},
		{name: "checkbox absent", cfg: field.Config{ID: "agree", Type: field.TypeCheckbox}, body: map[string]any{}, want: nil},
		{name: "checkbox arbitrary string", cfg: field.Config{ID: "agree", Type: field.TypeCheckbox}, body: map[string]any{"agree": "aString"}, want: nil},
		{name: "checkbox null", cfg: field.Config{ID: "agree", Type: field.TypeCheckbox}, body: map[string]any{"agree": nil}, want: nil},
		{name: "checkbox with value", cfg: field.Config{ID: "plan", Type: field.TypeCheckbox, Value: "pro"}, body: map[string]any{"plan": "pro"}, want: "pro"},
		{name: "checkbox with other value", cfg: field.Config{ID: "plan", Type: field.TypeCheckbox, Value: "pro"}, body: map[string]any{"plan": "free"}, want: nil},
		{name: "text", cfg: field.Config{ID: "name"}, body: map[string]any{"name": "Ada"}, want: "Ada"},
		{name: "text absent", cfg: field.Config{ID: "name"}, body: map[string]any{"other": "x"}, want: nil},
		{name: "repeated values keep last", cfg: field.Config{ID: "name"}, body: map[string]any{"name": []string{"a", "b"}}, want: "b"},
		{
			name: "multiple select keeps all",
			cfg:  field.Config{ID: "tags", Type: field.TypeSelect, Attributes: map[string]any{"multiple": true}},
			body: map[string]any{"tags": []string{"a", "b"}},
			want: []string{"a", "b"},
		},
		{name: "radio by name", cfg: field.Config{ID: "size-m", Name: "size", Type: field.TypeRadio, Value: "m"}, body: map[string]any{"size": "m"}, want: "m"},
		{name: "radio other option", cfg: field.Config{ID: "size-m", Name: "size", Type: field.TypeRadio, Value: "m"}, body: map[string]any{"size": "l"}, want: nil},
		{name: "boolean hidden", cfg: field.Config{ID: "flag", Type: field.TypeHidden, Value: false}, body: map[string]any{"flag": "true"}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := field.MustNew(tt.cfg)
			if diff := cmp.Diff(tt.want, f.ExtractValue(tt.body)); diff != "" {
				t.Fatalf("extract mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestExtractThenValidateCheckbox(t *testing.T) {
	f := field.MustNew(field.Config{ID: "terms", Type: field.TypeCheckbox, Required: true})

	if violation := f.Validate(f.ExtractValue(map[string]any{"terms": "true"}), nil); violation != nil {
		t.Fatalf("expected checked box to be valid, got %v", violation)
	}
	violation := f.Validate(f.ExtractValue(map[string]any{}), nil)
	if violation == nil || violation.Kind != field.ValueMissing {
		t.Fatalf("expected valueMissing for unchecked box, got %v", violation)
	}
}

func TestGroupValue(t *testing.T) {
	f := field.MustNew(field.Config{ID: "size-l", Name: "size", Type: field.TypeRadio, Value: "l"})

	tests := []struct {
		name string
		body map[string]any
		want any
	}{
		{name: "other option checked", body: map[string]any{"size": "m"}, want: "m"},
		{name: "repeated", body: map[string]any{"size": []string{"s", "m"}}, want: "m"},
		{name: "absent", body: map[string]any{"size-l": "l"}, want: ""},
		{name: "null", body: map[string]any{"size": nil}, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, f.GroupValue(tt.body)); diff != "" {
				t.Fatalf("group value mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
