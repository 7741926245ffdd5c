package cli

import (
	"context"
	"io"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/Dicklesworthstone/turtle_troubles/internal/art"
)

func cmdExport() *cli.Command {
	var format string
	var size int
	var output string

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "format",
			Aliases:     []string{"f"},
			Usage:       "image format: svg|png",
			Value:       "svg",
			Destination: &format,
		},
		&cli.IntFlag{
			Name:        "size",
			Usage:       "image side in pixels",
			Value:       art.ViewBox,
			Destination: &size,
		},
		&cli.StringFlag{
			Name:        "output",
			Aliases:     []string{"o"},
			Usage:       "output file (stdout if empty)",
			Destination: &output,
		},
	}

	return &cli.Command{
		Name:  "export",
		Usage: "Write the turtle illustration as SVG or PNG",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			var write func(io.Writer, int) error
			switch format {
			case "svg":
				write = art.Turtle.WriteSVG
			case "png":
				write = art.Turtle.WritePNG
			default:
				return goerr.New("unsupported export format", goerr.V("format", format))
			}

			if output == "" {
				return write(c.Root().Writer, size)
			}

			// #nosec G304 - path is provided by CLI argument
			f, err := os.Create(output)
			if err != nil {
				return goerr.Wrap(err, "failed to create output file", goerr.V("path", output))
			}
			if err := write(f, size); err != nil {
				_ = f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return goerr.Wrap(err, "failed to close output file", goerr.V("path", output))
			}
			return nil
		},
	}
}
