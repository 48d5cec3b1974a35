package definition

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/goliatone/go-formfield/pkg/htmltag"
)

// Decoders disagree on shapes: JSON yields json.Number, TOML int64 and
// []map[string]any for arrays of tables, YAML plain ints. The helpers below
// normalise them.

func asMap(value any) (map[string]any, bool) {
	switch v := value.(type) {
	case map[string]any:
		return v, true
	case map[any]any:
		out := make(map[string]any, len(v))
		for key, item := range v {
			out[fmt.Sprint(key)] = item
		}
		return out, true
	default:
		return nil, false
	}
}

func asList(value any) ([]any, bool) {
	switch v := value.(type) {
	case []any:
		return v, true
	case []map[string]any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = item
		}
		return out, true
	case []string:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = item
		}
		return out, true
	default:
		return nil, false
	}
}

func scalar(value any) any {
	switch v := value.(type) {
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return int(n)
		}
		if f, err := v.Float64(); err == nil {
			return f
		}
		return v.String()
	case int64:
		return int(v)
	case float64:
		if v == math.Trunc(v) && math.Abs(v) < math.MaxInt32 {
			return int(v)
		}
		return v
	default:
		return value
	}
}

func scalarOrMap(value any) any {
	if m, ok := asMap(value); ok {
		return m
	}
	return scalar(value)
}

func stringValue(value any) string {
	if value == nil {
		return ""
	}
	return htmltag.Stringify(scalar(value))
}

func stringList(value any) []string {
	if text, ok := value.(string); ok {
		return strings.Fields(text)
	}
	items, ok := asList(value)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s := stringValue(item); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func stringMap(value any) (map[string]string, error) {
	entries, ok := asMap(value)
	if !ok {
		return nil, fmt.Errorf("expected a map, got %T", value)
	}
	out := make(map[string]string, len(entries))
	for key, item := range entries {
		out[key] = stringValue(item)
	}
	return out, nil
}

func intValue(value any) (*int, error) {
	switch v := scalar(value).(type) {
	case nil:
		return nil, nil
	case int:
		return &v, nil
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return nil, fmt.Errorf("expected an integer, got %q", v)
		}
		return &n, nil
	default:
		return nil, fmt.Errorf("expected an integer, got %T", value)
	}
}

func truthy(value any) bool {
	switch v := scalar(value).(type) {
	case nil:
		return false
	case bool:
		return v
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "", "false", "0", "no", "off":
			return false
		}
		return true
	case int:
		return v != 0
	case float64:
		return v != 0
	default:
		return true
	}
}
