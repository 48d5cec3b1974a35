package field

import (
	"sort"
	"strings"

	"github.com/goliatone/go-formfield/pkg/htmltag"
	"github.com/goliatone/go-formfield/pkg/render/template"
)

const (
	labelPartial = "chrome/label"
	errorPartial = "chrome/error"
)

// ChromeClasses are extra class tokens for the wrapper, label and error
// elements, typically derived from a theme.
type ChromeClasses struct {
	Field string `json:"field,omitempty"`
	Label string `json:"label,omitempty"`
	Error string `json:"error,omitempty"`
}

// RenderOptions tune a single render. The zero value renders with the
// configured label, wrapper and built-in markup.
type RenderOptions struct {
	// Label replaces the configured label text.
	Label string
	// For replaces the label's for attribute.
	For string
	// WrapperTag replaces the configured wrapper element.
	WrapperTag string
	// SuppressErrors skips validation and error markup.
	SuppressErrors bool
	// Siblings is the snapshot used when validating for error markup.
	Siblings Siblings
	Classes  ChromeClasses
	// Templates, when set, renders the chrome/label and chrome/error
	// partials. Template failures fall back to the built-in markup.
	Templates template.TemplateRenderer
}

// Render returns the field block: the wrapper element holding label, widget
// and error markup. Checkable fields put the widget before the label.
func (f *Field) Render(value any, opts RenderOptions) string {
	label := f.LabelHTML(opts)
	widget := f.WidgetHTML(value)

	var b strings.Builder
	if f.preset.widgetFirst {
		b.WriteString(widget)
		b.WriteString(label)
	} else {
		b.WriteString(label)
		b.WriteString(widget)
	}
	b.WriteString(f.ErrorHTML(value, opts))

	return htmltag.Build(f.wrapperTag(opts), f.wrapperAttributes(opts), b.String())
}

func (f *Field) wrapperTag(opts RenderOptions) string {
	if opts.WrapperTag != "" {
		return opts.WrapperTag
	}
	if f.cfg.WrapperTag != "" {
		return f.cfg.WrapperTag
	}
	return "div"
}

func (f *Field) wrapperAttributes(opts RenderOptions) htmltag.Attrs {
	attrs := htmltag.NewAttrs(
		"class", htmltag.MergeClasses(f.cfg.Classes, "field", opts.Classes.Field),
		"data-type", string(f.cfg.Type),
	)

	keys := make([]string, 0, len(f.cfg.Data))
	for key := range f.cfg.Data {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		attrs.Set("data-"+key, f.cfg.Data[key])
	}
	return attrs
}

// LabelHTML renders the label element, or "" when the field has no label
// text. Label text may carry inline markup; anything else is stripped.
func (f *Field) LabelHTML(opts RenderOptions) string {
	text := opts.Label
	if text == "" {
		text = f.cfg.Label
	}
	if text == "" {
		return ""
	}

	forID := opts.For
	if forID == "" {
		forID = CreateValidID(f.cfg.ID)
	}
	text = htmltag.SanitizeInline(text)
	indicator := f.optionalIndicator()

	if opts.Templates != nil {
		rendered, err := opts.Templates.RenderTemplate(labelPartial, map[string]any{
			"target":    forID,
			"text":      text,
			"indicator": indicator,
			"classes":   opts.Classes.Label,
			"field":     f.chromeContext(),
		})
		if err == nil {
			return rendered
		}
	}

	inner := text
	if indicator != "" {
		inner += htmltag.Build("span", htmltag.NewAttrs("class", "optionalIndicator"), htmltag.Escape(indicator))
	}
	attrs := htmltag.NewAttrs("for", forID)
	if classes := htmltag.MergeClasses(nil, opts.Classes.Label); classes != "" {
		attrs.Set("class", classes)
	}
	return htmltag.Build("label", attrs, inner)
}

func (f *Field) optionalIndicator() string {
	if !f.cfg.Optional || f.cfg.Required {
		return ""
	}
	if f.cfg.OptionalText != "" {
		return f.cfg.OptionalText
	}
	return "(optional)"
}

// WidgetHTML renders the form control for value.
func (f *Field) WidgetHTML(value any) string {
	attrs := f.Attributes(value)
	if f.preset.composite {
		return htmltag.Build(f.preset.tag, attrs, f.optionsHTML(value))
	}
	return htmltag.Build(f.preset.tag, attrs, "")
}

// ErrorHTML validates value against opts.Siblings and renders the violation
// message, or "" when the value is valid or errors are suppressed.
func (f *Field) ErrorHTML(value any, opts RenderOptions) string {
	if opts.SuppressErrors || f.cfg.HideErrors {
		return ""
	}
	violation := f.Validate(value, opts.Siblings)
	if violation == nil {
		return ""
	}
	return f.errorMarkup(violation, opts)
}

func (f *Field) errorMarkup(violation *Violation, opts RenderOptions) string {
	forID := CreateValidID(f.cfg.ID)
	classes := htmltag.MergeClasses([]string{"fieldError"}, opts.Classes.Error)

	if opts.Templates != nil {
		rendered, err := opts.Templates.RenderTemplate(errorPartial, map[string]any{
			"target":  forID,
			"kind":    string(violation.Kind),
			"message": violation.Message,
			"classes": classes,
			"field":   f.chromeContext(),
		})
		if err == nil {
			return rendered
		}
	}

	attrs := htmltag.NewAttrs("for", forID, "class", classes)
	return htmltag.Build("label", attrs, htmltag.Escape(violation.Message))
}

func (f *Field) chromeContext() map[string]any {
	return map[string]any{
		"id":       f.cfg.ID,
		"name":     f.Name(),
		"type":     string(f.cfg.Type),
		"required": f.cfg.Required,
	}
}
