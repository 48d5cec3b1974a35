package commands

import (
	"context"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/goliatone/go-formfield/pkg/prompt"
)

type PromptCmd struct {
	app *App

	// driver is swapped in tests
	driver prompt.Driver

	// flags
	form        string
	maxAttempts int
}

// NewPromptCmd creates a new prompt command
func NewPromptCmd(app *App) *PromptCmd {
	return &PromptCmd{app: app}
}

// Register adds the prompt command to the application
func (cmd *PromptCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "prompt",
		Usage:     "Fill a form interactively",
		UsageText: "formfield prompt --form ID",
		Description: `Asks for each field of the form in the terminal. Answers are validated as
they are given and re-asked when they fail. The accepted values are printed
as JSON.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "form",
				Aliases:     []string{"f"},
				Usage:       "form id",
				Required:    true,
				Destination: &cmd.form,
			},
			&cli.IntFlag{
				Name:        "attempts",
				Usage:       "invalid answers allowed per field",
				Value:       3,
				Destination: &cmd.maxAttempts,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *PromptCmd) run(ctx context.Context, c *cli.Command) error {
	set, err := cmd.app.Store.Set(cmd.form)
	if err != nil {
		return err
	}

	driver := cmd.driver
	if driver == nil {
		driver = prompt.NewSurveyDriver(os.Stderr)
	}
	result, err := prompt.Run(ctx, set, driver,
		prompt.WithMaxAttempts(cmd.maxAttempts),
		prompt.WithLogger(cmd.app.Logger),
	)
	if err != nil {
		return err
	}
	return writeJSON(stdout(c), result.Values)
}
