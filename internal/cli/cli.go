package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/urfave/cli/v3"

	"github.com/Dicklesworthstone/turtle_troubles/internal/config"
	"github.com/Dicklesworthstone/turtle_troubles/internal/logging"
	"github.com/Dicklesworthstone/turtle_troubles/internal/ui"
)

// Run executes the turtles command line and returns the process exit code.
// Errors go to stderr because logs are discarded unless --log-file is set.
func Run(ctx context.Context, args []string, version string, stdout, stderr io.Writer) int {
	app, closer := newApp(version, stdout, stderr)
	defer closer()

	if err := app.Run(ctx, args); err != nil {
		logging.Default().Error("failed to run app", "error", err)
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	return 0
}

func newApp(version string, w, errW io.Writer) (*cli.Command, func()) {
	var loggerCfg logging.Config
	closer := func() {}
	cfg := config.Default()

	flags := append(loggerCfg.Flags(), cfg.Flags()...)

	app := &cli.Command{
		Name:      "turtles",
		Usage:     "Turtle Troubles & How You Can Help: sea turtle threats and what you can do",
		Version:   version,
		Writer:    w,
		ErrWriter: errW,
		Flags:     flags,
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			f, err := loggerCfg.Configure()
			if err != nil {
				return ctx, err
			}
			closer = f

			if err := cfg.Load(c.IsSet); err != nil {
				return ctx, err
			}

			logging.Default().Info("Starting turtles", "config", cfg)
			return ctx, nil
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			return ui.RunTUI(ctx, cfg)
		},
		Commands: []*cli.Command{
			cmdSnapshot(&cfg),
			cmdExport(),
			cmdCatalog(),
		},
	}

	return app, func() { closer() }
}
