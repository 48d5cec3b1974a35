package commands

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/urfave/cli/v3"
)

// ErrInvalidSubmission is returned when validate finds violations, so the
// process exits non-zero.
var ErrInvalidSubmission = errors.New("submission is invalid")

type ValidateCmd struct {
	app *App

	// flags
	form       string
	jsonOutput bool
}

// NewValidateCmd creates a new validate command
func NewValidateCmd(app *App) *ValidateCmd {
	return &ValidateCmd{app: app}
}

// Register adds the validate command to the application
func (cmd *ValidateCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "validate",
		Usage:     "Validate values against a form",
		UsageText: "formfield validate --form ID key=value...",
		Description: `Validates key=value pairs as a submission of the form. Each failing field
is printed with its violation kind and message; any failure exits non-zero.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "form",
				Aliases:     []string{"f"},
				Usage:       "form id",
				Required:    true,
				Destination: &cmd.form,
			},
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "print the full result as JSON",
				Destination: &cmd.jsonOutput,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *ValidateCmd) run(_ context.Context, c *cli.Command) error {
	set, err := cmd.app.Store.Set(cmd.form)
	if err != nil {
		return err
	}
	body, err := parseAssignments(c.Args().Slice())
	if err != nil {
		return err
	}

	result := set.Validate(body)
	cmd.app.Logger.Debug().
		Str("form", set.ID()).
		Int("violations", len(result.Violations)).
		Msg("validated")

	out := stdout(c)
	if cmd.jsonOutput {
		if err := writeJSON(out, result); err != nil {
			return err
		}
	} else {
		ids := make([]string, 0, len(result.Violations))
		for id := range result.Violations {
			ids = append(ids, id)
		}
		sort.Strings(ids)
		for _, id := range ids {
			v := result.Violations[id]
			if _, err := fmt.Fprintf(out, "%s: %s: %s\n", id, v.Kind, v.Message); err != nil {
				return err
			}
		}
	}

	if !result.Valid() {
		return fmt.Errorf("%w: %d field(s) failed", ErrInvalidSubmission, len(result.Violations))
	}
	return nil
}
