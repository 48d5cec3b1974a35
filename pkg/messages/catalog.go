// Package messages localizes field violation messages with go-i18n bundles.
// English and Spanish ship embedded; more languages load from TOML, YAML or
// JSON message files whose ids are "validation.<kind>".
package messages

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formfield/pkg/field"
)

//go:embed locales/*.toml
var locales embed.FS

// Option adds message files to a catalog.
type Option func(*i18n.Bundle) error

// WithFiles loads message files matching pattern from fsys. File names follow
// go-i18n conventions, for example active.fr.toml.
func WithFiles(fsys fs.FS, pattern string) Option {
	return func(bundle *i18n.Bundle) error {
		names, err := fs.Glob(fsys, pattern)
		if err != nil {
			return fmt.Errorf("messages: glob %q: %w", pattern, err)
		}
		for _, name := range names {
			data, err := fs.ReadFile(fsys, name)
			if err != nil {
				return fmt.Errorf("messages: read %s: %w", name, err)
			}
			if _, err := bundle.ParseMessageFileBytes(data, path.Base(name)); err != nil {
				return fmt.Errorf("messages: parse %s: %w", name, err)
			}
		}
		return nil
	}
}

// WithMessages adds messages for tag directly, keyed by violation kind.
func WithMessages(tag language.Tag, texts map[field.ViolationKind]string) Option {
	return func(bundle *i18n.Bundle) error {
		msgs := make([]*i18n.Message, 0, len(texts))
		for kind, text := range texts {
			msgs = append(msgs, &i18n.Message{ID: messageID(kind), Other: text})
		}
		return bundle.AddMessages(tag, msgs...)
	}
}

// Catalog resolves violation messages in one language. It is safe for
// concurrent use.
type Catalog struct {
	bundle    *i18n.Bundle
	localizer *i18n.Localizer
	lang      language.Tag
}

// NewCatalog builds a catalog for lang, a BCP 47 tag such as "es" or
// "pt-BR". Messages missing in lang fall back to English.
func NewCatalog(lang string, opts ...Option) (*Catalog, error) {
	tag := language.English
	if lang != "" {
		parsed, err := language.Parse(lang)
		if err != nil {
			return nil, fmt.Errorf("messages: language %q: %w", lang, err)
		}
		tag = parsed
	}

	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	bundle.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)
	bundle.RegisterUnmarshalFunc("yml", yaml.Unmarshal)

	if err := WithFiles(locales, "locales/*.toml")(bundle); err != nil {
		return nil, err
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(bundle); err != nil {
			return nil, err
		}
	}

	return &Catalog{
		bundle:    bundle,
		localizer: i18n.NewLocalizer(bundle, tag.String(), language.English.String()),
		lang:      tag,
	}, nil
}

// Language returns the catalog language.
func (c *Catalog) Language() language.Tag {
	return c.lang
}

// Languages lists the languages with at least one message.
func (c *Catalog) Languages() []language.Tag {
	return c.bundle.LanguageTags()
}

// Message localizes kind for a field declared by cfg. Without a translation
// the built-in English message is returned.
func (c *Catalog) Message(kind field.ViolationKind, cfg field.Config) string {
	text, err := c.localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    messageID(kind),
		TemplateData: templateData(cfg),
	})
	if err != nil || text == "" {
		return field.DefaultMessage(kind, cfg)
	}
	return text
}

// For returns a message override that localizes every kind for cfg. It fits
// definition.WithMessages.
func (c *Catalog) For(cfg field.Config) field.Message {
	return field.Computed(func(kind field.ViolationKind) string {
		return c.Message(kind, cfg)
	})
}

func messageID(kind field.ViolationKind) string {
	return "validation." + kind.String()
}

func templateData(cfg field.Config) map[string]any {
	return map[string]any{
		"ID":        cfg.ID,
		"Label":     cfg.Label,
		"Match":     cfg.Match,
		"MinLength": bound(cfg.MinLength),
		"MaxLength": bound(cfg.MaxLength),
		"Type":      cfg.Type.InputType(),
	}
}

func bound(n *int) string {
	if n == nil {
		return "0"
	}
	return strconv.Itoa(*n)
}
