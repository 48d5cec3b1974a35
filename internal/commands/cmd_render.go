package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
)

type RenderCmd struct {
	app *App

	// flags
	form       string
	showErrors bool
}

// NewRenderCmd creates a new render command
func NewRenderCmd(app *App) *RenderCmd {
	return &RenderCmd{app: app}
}

// Register adds the render command to the application
func (cmd *RenderCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "render",
		Usage:     "Render the fields of a form as HTML",
		UsageText: "formfield render --form ID [key=value...]",
		Description: `Prints the field markup of a form. Values given as key=value fill the
fields; use --errors to include error markup for values that fail.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "form",
				Aliases:     []string{"f"},
				Usage:       "form id",
				Required:    true,
				Destination: &cmd.form,
			},
			&cli.BoolFlag{
				Name:        "errors",
				Usage:       "render error markup for failing values",
				Destination: &cmd.showErrors,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *RenderCmd) run(_ context.Context, c *cli.Command) error {
	set, err := cmd.app.Store.Set(cmd.form)
	if err != nil {
		return err
	}
	body, err := parseAssignments(c.Args().Slice())
	if err != nil {
		return err
	}

	opts := cmd.app.Render
	opts.SuppressErrors = !cmd.showErrors
	_, err = fmt.Fprintln(stdout(c), set.Render(set.Extract(body), opts))
	return err
}
