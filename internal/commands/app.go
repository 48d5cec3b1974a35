package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/goliatone/go-formfield/pkg/definition"
	"github.com/goliatone/go-formfield/pkg/messages"
	"github.com/goliatone/go-formfield/pkg/openapi"
	"github.com/goliatone/go-formfield/pkg/render/template/gotemplate"
	"github.com/goliatone/go-formfield/pkg/themes"
)

// Load builds the App described by flags: definitions from disk, optional
// OpenAPI forms, localized messages, theme classes and template chrome.
func Load(ctx context.Context, flags *Flags, logger zerolog.Logger) (*App, error) {
	opts := []definition.Option{definition.WithLogger(logger)}
	if flags.Lang != "" {
		catalog, err := messages.NewCatalog(flags.Lang)
		if err != nil {
			return nil, fmt.Errorf("load messages: %w", err)
		}
		opts = append(opts, definition.WithMessages(catalog.For))
		logger.Debug().Str("lang", catalog.Language().String()).Msg("messages localized")
	}

	store := &definition.Store{}
	if flags.Definitions != "" && dirExists(flags.Definitions, logger) {
		loaded, err := definition.LoadFS(os.DirFS(flags.Definitions), opts...)
		if err != nil {
			return nil, fmt.Errorf("load definitions: %w", err)
		}
		store = loaded
	}

	if flags.OpenAPI != "" {
		raw, err := os.ReadFile(flags.OpenAPI)
		if err != nil {
			return nil, fmt.Errorf("read openapi: %w", err)
		}
		forms, err := openapi.Forms(ctx, raw)
		if err != nil {
			return nil, fmt.Errorf("import openapi: %w", err)
		}
		for _, form := range forms {
			if err := store.Add(form, opts...); err != nil {
				return nil, fmt.Errorf("import openapi: %w", err)
			}
		}
		logger.Debug().Int("forms", len(forms)).Str("file", flags.OpenAPI).Msg("imported openapi forms")
	}

	app := &App{Store: store, Logger: logger}

	if flags.ThemeFile != "" {
		f, err := os.Open(flags.ThemeFile)
		if err != nil {
			return nil, fmt.Errorf("open theme: %w", err)
		}
		defer f.Close()
		manifest, err := themes.DecodeManifest(f)
		if err != nil {
			return nil, fmt.Errorf("load theme: %w", err)
		}
		app.Render.Classes = themes.ClassesFromSelection(themes.Selection(manifest, flags.ThemeVariant))
	}

	if flags.Templates != "" {
		engine, err := gotemplate.New(
			gotemplate.WithFS(os.DirFS(flags.Templates)),
			gotemplate.WithDefaultTemplates(),
			gotemplate.WithLogger(logger),
		)
		if err != nil {
			return nil, fmt.Errorf("load templates: %w", err)
		}
		app.Render.Templates = engine
	}

	return app, nil
}

func dirExists(dir string, logger zerolog.Logger) bool {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		logger.Warn().Str("dir", dir).Msg("definitions directory not found, no forms loaded")
		return false
	}
	return true
}
