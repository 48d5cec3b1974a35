package htmltag

import (
	"fmt"
	"html"
	"strconv"
	"strings"
)

var voidElements = map[string]struct{}{
	"area": {}, "base": {}, "br": {}, "col": {}, "embed": {}, "hr": {},
	"img": {}, "input": {}, "link": {}, "meta": {}, "source": {}, "track": {},
	"wbr": {},
}

// Build renders an element. inner is written verbatim; callers escape text
// content themselves. Void elements with no inner content self-close.
func Build(tag string, attrs Attrs, inner string) string {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		tag = "div"
	}

	var b strings.Builder
	b.Grow(len(tag)*2 + len(inner) + attrs.Len()*16 + 5)
	b.WriteByte('<')
	b.WriteString(tag)
	for _, attr := range attrs.items {
		value, ok := attributeValue(attr.Value)
		if !ok {
			continue
		}
		b.WriteByte(' ')
		b.WriteString(attr.Name)
		b.WriteString(`="`)
		b.WriteString(html.EscapeString(value))
		b.WriteByte('"')
	}

	if inner == "" && IsVoid(tag) {
		b.WriteString("/>")
		return b.String()
	}

	b.WriteByte('>')
	b.WriteString(inner)
	b.WriteString("</")
	b.WriteString(tag)
	b.WriteByte('>')
	return b.String()
}

// IsVoid reports whether tag is an HTML void element.
func IsVoid(tag string) bool {
	_, ok := voidElements[strings.ToLower(strings.TrimSpace(tag))]
	return ok
}

// Escape HTML-escapes text content.
func Escape(text string) string {
	return html.EscapeString(text)
}

func attributeValue(value any) (string, bool) {
	switch v := value.(type) {
	case nil:
		return "", false
	case bool:
		if !v {
			return "", false
		}
		return "true", true
	case *int:
		if v == nil {
			return "", false
		}
		return strconv.Itoa(*v), true
	default:
		return Stringify(value), true
	}
}

// Stringify converts a value to its string form. nil becomes the empty
// string; string slices are comma-joined.
func Stringify(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int8:
		return strconv.FormatInt(int64(v), 10)
	case int16:
		return strconv.FormatInt(int64(v), 10)
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint:
		return strconv.FormatUint(uint64(v), 10)
	case uint8:
		return strconv.FormatUint(uint64(v), 10)
	case uint16:
		return strconv.FormatUint(uint64(v), 10)
	case uint32:
		return strconv.FormatUint(uint64(v), 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case []string:
		return strings.Join(v, ",")
	case []any:
		parts := make([]string, len(v))
		for i, item := range v {
			parts[i] = Stringify(item)
		}
		return strings.Join(parts, ",")
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}
