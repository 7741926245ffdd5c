package cli

import (
	"context"
	"fmt"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/Dicklesworthstone/turtle_troubles/internal/export"
)

func cmdCatalog() *cli.Command {
	var format string
	var render bool
	var style string

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "format",
			Aliases:     []string{"f"},
			Usage:       "output format: json|yaml|markdown",
			Value:       "markdown",
			Destination: &format,
		},
		&cli.BoolFlag{
			Name:        "render",
			Usage:       "pretty-print markdown for the terminal",
			Destination: &render,
		},
		&cli.StringFlag{
			Name:        "style",
			Usage:       "markdown style when rendering: auto|dark|light|notty",
			Value:       "auto",
			Destination: &style,
		},
	}

	return &cli.Command{
		Name:  "catalog",
		Usage: "Dump every threat, tip and fun fact",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			w := c.Root().Writer
			cat := export.Build()

			switch format {
			case "json":
				return export.WriteJSON(w, cat)
			case "yaml":
				return export.WriteYAML(w, cat)
			case "markdown":
				md := export.Markdown(cat)
				if render {
					out, err := export.RenderMarkdown(md, terminalWidth(w), style)
					if err != nil {
						return err
					}
					md = out
				}
				if _, err := fmt.Fprint(w, md); err != nil {
					return goerr.Wrap(err, "failed to write catalog")
				}
				return nil
			default:
				return goerr.New("unsupported catalog format", goerr.V("format", format))
			}
		},
	}
}
