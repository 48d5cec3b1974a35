package definition

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formfield/pkg/field"
)

// Format names a definition file encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatFor returns the format implied by a file name extension.
func FormatFor(name string) (Format, bool) {
	switch strings.ToLower(path.Ext(name)) {
	case ".json":
		return FormatJSON, true
	case ".yaml", ".yml":
		return FormatYAML, true
	case ".toml":
		return FormatTOML, true
	default:
		return "", false
	}
}

// Parse decodes a definition document and returns its forms sorted by id.
func Parse(data []byte, format Format) ([]Form, error) {
	raw, err := decode(data, format)
	if err != nil {
		return nil, err
	}

	formsRaw, ok := raw["forms"]
	if !ok {
		return nil, fmt.Errorf("%w: missing forms key", ErrInvalidDefinition)
	}
	formsMap, ok := asMap(formsRaw)
	if !ok {
		return nil, fmt.Errorf("%w: forms must be a map, got %T", ErrInvalidDefinition, formsRaw)
	}

	ids := make([]string, 0, len(formsMap))
	for id := range formsMap {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	forms := make([]Form, 0, len(ids))
	for _, id := range ids {
		form, err := parseForm(id, formsMap[id])
		if err != nil {
			return nil, err
		}
		forms = append(forms, form)
	}
	return forms, nil
}

func decode(data []byte, format Format) (map[string]any, error) {
	out := map[string]any{}
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()
		if err := dec.Decode(&out); err != nil {
			return nil, fmt.Errorf("definition: decode json: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &out); err != nil {
			return nil, fmt.Errorf("definition: decode yaml: %w", err)
		}
	case FormatTOML:
		if _, err := toml.Decode(string(data), &out); err != nil {
			return nil, fmt.Errorf("definition: decode toml: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	return out, nil
}

func parseForm(id string, raw any) (Form, error) {
	body, ok := asMap(raw)
	if !ok {
		return Form{}, fmt.Errorf("%w: form %q must be a map", ErrInvalidDefinition, id)
	}
	entries, ok := asList(body["fields"])
	if !ok {
		return Form{}, fmt.Errorf("%w: form %q needs a fields list", ErrInvalidDefinition, id)
	}

	form := Form{ID: id, Title: stringValue(body["title"])}
	for i, entry := range entries {
		cfg, err := ParseField(entry)
		if err != nil {
			return Form{}, fmt.Errorf("form %q field %d: %w", id, i, err)
		}
		form.Fields = append(form.Fields, cfg)
	}
	return form, nil
}

// ParseField converts one decoded field entry into a field.Config. Unknown
// keys become HTML attributes.
func ParseField(raw any) (field.Config, error) {
	entry, ok := asMap(raw)
	if !ok {
		return field.Config{}, fmt.Errorf("%w: field must be a map, got %T", ErrInvalidDefinition, raw)
	}

	keys := make([]string, 0, len(entry))
	for key := range entry {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var cfg field.Config
	seen := make(map[string]string, len(keys))
	for _, key := range keys {
		name := strings.ToLower(key)
		setting := CanonicalKey(key)
		if first, dup := seen[setting]; dup {
			return field.Config{}, fmt.Errorf("%w: %s and %s set the same option", ErrInvalidDefinition, first, key)
		}
		seen[setting] = key
		if err := applyKey(&cfg, name, entry[key]); err != nil {
			return field.Config{}, fmt.Errorf("%w: %s: %v", ErrInvalidDefinition, key, err)
		}
	}
	if cfg.ID == "" {
		return field.Config{}, fmt.Errorf("%w: field id is required", ErrInvalidDefinition)
	}
	return cfg, nil
}

// keyAliases maps alternate spellings onto the option they set. An entry may
// use only one spelling per option.
var keyAliases = map[string]string{
	"wrappertag": "wrapper",
	"class":      "classes",
	"default":    "value",
	"messages":   "message",
	"options":    "choices",
}

// CanonicalKey returns the lowercased primary spelling of a field entry key,
// resolving aliases such as "default" to "value".
func CanonicalKey(key string) string {
	name := strings.ToLower(strings.TrimSpace(key))
	if canonical, ok := keyAliases[name]; ok {
		return canonical
	}
	return name
}

func applyKey(cfg *field.Config, key string, value any) error {
	var err error
	switch key {
	case "type":
		cfg.Type = field.Type(stringValue(value))
	case "id":
		cfg.ID = stringValue(value)
	case "name":
		cfg.Name = stringValue(value)
	case "label":
		cfg.Label = stringValue(value)
	case "optional":
		if text, ok := value.(string); ok {
			cfg.OptionalText = text
		}
		cfg.Optional = truthy(value)
	case "wrapper", "wrappertag":
		cfg.WrapperTag = stringValue(value)
	case "classes", "class":
		cfg.Classes = stringList(value)
	case "data":
		cfg.Data, err = stringMap(value)
	case "required":
		cfg.Required = truthy(value)
	case "minlength":
		cfg.MinLength, err = intValue(value)
	case "maxlength":
		cfg.MaxLength, err = intValue(value)
	case "pattern":
		cfg.Pattern = stringValue(value)
	case "match":
		cfg.Match = stringValue(value)
	case "validateif":
		cfg.ValidateIf = stringValue(value)
	case "value", "default":
		cfg.Value = scalar(value)
	case "message", "messages":
		cfg.Message, err = parseMessage(value)
	case "choices", "options":
		cfg.Choices, err = parseChoices(value)
	case "hideerrors":
		cfg.HideErrors = truthy(value)
	case "attributes":
		attrs, ok := asMap(value)
		if !ok {
			return fmt.Errorf("expected a map, got %T", value)
		}
		for name, attr := range attrs {
			setAttribute(cfg, strings.ToLower(name), attr)
		}
	default:
		setAttribute(cfg, key, value)
	}
	return err
}

func setAttribute(cfg *field.Config, name string, value any) {
	if cfg.Attributes == nil {
		cfg.Attributes = make(map[string]any)
	}
	cfg.Attributes[name] = scalar(value)
}

func parseMessage(value any) (field.Message, error) {
	if text, ok := value.(string); ok {
		return field.Blanket(text), nil
	}
	entries, ok := asMap(value)
	if !ok {
		return nil, fmt.Errorf("expected a string or a map, got %T", value)
	}
	out := make(field.PerKind, len(entries))
	for key, text := range entries {
		kind, ok := field.ParseViolationKind(key)
		if !ok {
			return nil, fmt.Errorf("unknown violation kind %q", key)
		}
		out[kind] = stringValue(text)
	}
	return out, nil
}

func parseChoices(value any) ([]field.Choice, error) {
	if text, ok := value.(string); ok {
		var out []field.Choice
		for _, item := range strings.Split(text, ",") {
			if item = strings.TrimSpace(item); item != "" {
				out = append(out, field.Option(item))
			}
		}
		return out, nil
	}
	items, ok := asList(value)
	if !ok {
		return nil, fmt.Errorf("expected a list, got %T", value)
	}
	out := make([]field.Choice, 0, len(items))
	for _, item := range items {
		choice, err := field.ParseChoice(scalarOrMap(item))
		if err != nil {
			return nil, err
		}
		out = append(out, choice)
	}
	return out, nil
}
