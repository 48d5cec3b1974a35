package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/goliatone/go-formfield/internal/server"
)

type ServeCmd struct {
	app *App

	// flags
	addr string
}

// NewServeCmd creates a new serve command
func NewServeCmd(app *App) *ServeCmd {
	return &ServeCmd{app: app}
}

// Register adds the serve command to the application
func (cmd *ServeCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "serve",
		Usage:     "Serve forms over HTTP",
		UsageText: "formfield serve [--addr :8080]",
		Description: `Starts an HTTP server. GET /forms/{id} renders a form and POST /forms/{id}
validates a submission, answering 200 with the values or 422 with the form
and its errors. Settings come from FORMFIELD_* variables and a .env file.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "addr",
				Usage:       "listen address, overrides FORMFIELD_ADDR",
				Destination: &cmd.addr,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *ServeCmd) run(ctx context.Context, _ *cli.Command) error {
	cfg, err := server.LoadConfig()
	if err != nil {
		return err
	}
	if cmd.addr != "" {
		cfg.Addr = cmd.addr
	}

	srv := server.New(cmd.app.Store,
		server.WithRenderOptions(cmd.app.Render),
		server.WithLogger(cmd.app.Logger.With().Str("component", "server").Logger()),
		server.WithBasePath(cfg.BasePath),
	)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	return server.Run(ctx, cfg, srv.Handler(), cmd.app.Logger)
}
