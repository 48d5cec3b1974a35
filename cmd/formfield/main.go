package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/goliatone/go-formfield/internal/commands"
	"github.com/goliatone/go-formfield/internal/logutils"
)

// Populated at build-time via -ldflags.
var version = "dev"

func main() {
	var (
		flags     = &commands.Flags{}
		app       = &commands.App{}
		logCloser func()
	)

	root := &cli.Command{
		Name:      "formfield",
		Usage:     "Render and validate declarative HTML forms",
		UsageText: "formfield [global options] command [command options]",
		Description: `formfield loads form definitions (JSON, YAML or TOML) from a directory and
renders, validates, prompts for or serves them.`,
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "definitions",
				Aliases:     []string{"d"},
				Usage:       "directory of form definition files",
				Sources:     cli.EnvVars("FORMFIELD_DEFINITIONS"),
				Value:       "forms",
				Destination: &flags.Definitions,
			},
			&cli.StringFlag{
				Name:        "openapi",
				Usage:       "OpenAPI document whose request bodies are added as forms",
				Sources:     cli.EnvVars("FORMFIELD_OPENAPI"),
				Destination: &flags.OpenAPI,
			},
			&cli.StringFlag{
				Name:        "lang",
				Usage:       "language of validation messages (e.g. en, es)",
				Sources:     cli.EnvVars("FORMFIELD_LANG"),
				Destination: &flags.Lang,
			},
			&cli.StringFlag{
				Name:        "theme",
				Usage:       "theme manifest (JSON) providing chrome classes",
				Sources:     cli.EnvVars("FORMFIELD_THEME"),
				Destination: &flags.ThemeFile,
			},
			&cli.StringFlag{
				Name:        "theme-variant",
				Usage:       "variant of the theme manifest",
				Sources:     cli.EnvVars("FORMFIELD_THEME_VARIANT"),
				Destination: &flags.ThemeVariant,
			},
			&cli.StringFlag{
				Name:        "templates",
				Usage:       "directory of chrome templates overriding the built-in markup",
				Sources:     cli.EnvVars("FORMFIELD_TEMPLATES"),
				Destination: &flags.Templates,
			},
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error, fatal, panic)",
				Sources:     cli.EnvVars("FORMFIELD_LOG_LEVEL"),
				Value:       "info",
				Destination: &flags.LogLevel,
			},
			&cli.StringFlag{
				Name:        "log-file",
				Usage:       "write JSON logs to a file instead of stderr",
				Sources:     cli.EnvVars("FORMFIELD_LOG_FILE"),
				Destination: &flags.LogFile,
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			logger, closer, err := logutils.New(flags.LogLevel, flags.LogFile)
			if err != nil {
				return ctx, fmt.Errorf("setup logger: %w", err)
			}
			log.Logger = logger
			logCloser = closer

			loaded, err := commands.Load(ctx, flags, logger)
			if err != nil {
				return ctx, err
			}
			*app = *loaded
			return ctx, nil
		},
		After: func(ctx context.Context, c *cli.Command) error {
			if logCloser != nil {
				logCloser()
			}
			return nil
		},
	}

	root = commands.NewRenderCmd(app).Register(root)
	root = commands.NewValidateCmd(app).Register(root)
	root = commands.NewPromptCmd(app).Register(root)
	root = commands.NewServeCmd(app).Register(root)

	if err := root.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}
