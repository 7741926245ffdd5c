package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/m-mizutani/goerr/v2"
	"github.com/muesli/termenv"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/Dicklesworthstone/turtle_troubles/internal/config"
	"github.com/Dicklesworthstone/turtle_troubles/internal/model"
	"github.com/Dicklesworthstone/turtle_troubles/internal/state"
	"github.com/Dicklesworthstone/turtle_troubles/internal/ui"
)

const fallbackWidth = 100

func cmdSnapshot(cfg *config.Config) *cli.Command {
	var category string
	var expand string
	var fact int
	var width int
	var plain bool

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "category",
			Usage:       "selected tab: ocean|beach|climate",
			Value:       model.AllCategories()[0].Key(),
			Destination: &category,
		},
		&cli.StringFlag{
			Name:        "expand",
			Usage:       "id of the card to expand (must belong to --category)",
			Destination: &expand,
		},
		&cli.IntFlag{
			Name:        "fact",
			Usage:       fmt.Sprintf("fun fact index 0-%d", model.FactCount-1),
			Destination: &fact,
		},
		&cli.IntFlag{
			Name:        "width",
			Usage:       "render width (defaults to the terminal width)",
			Sources:     cli.EnvVars("TURTLES_WIDTH"),
			Destination: &width,
		},
		&cli.BoolFlag{
			Name:        "plain",
			Usage:       "disable colors",
			Destination: &plain,
		},
	}

	return &cli.Command{
		Name:  "snapshot",
		Usage: "Print one rendering of the widget and exit",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			st, err := buildState(category, model.ItemID(expand), fact)
			if err != nil {
				return err
			}

			w := c.Root().Writer
			r := lipgloss.NewRenderer(w)
			if plain {
				r.SetColorProfile(termenv.Ascii)
			}
			if width <= 0 {
				width = terminalWidth(w)
			}

			if _, err := fmt.Fprintln(w, ui.Snapshot(r, st, width, cfg.Palette)); err != nil {
				return goerr.Wrap(err, "failed to write snapshot")
			}
			return nil
		},
	}
}

// buildState replays the inputs a user would make to reach the requested
// view, rejecting values outside the fixed content.
func buildState(category string, expand model.ItemID, fact int) (state.State, error) {
	st := state.New()

	c, ok := model.ParseCategory(category)
	if !ok {
		return st, goerr.Wrap(config.ErrUnknownCategory, "unknown category", goerr.V("category", category))
	}
	st.SelectCategory(c)

	if expand != model.NoItem {
		if _, ok := c.Item(expand); !ok {
			return st, goerr.New("card not in category", goerr.V("category", category), goerr.V("expand", expand))
		}
		st.ClickCard(expand)
	}

	if fact < 0 || fact >= model.FactCount {
		return st, goerr.New("fact index out of range", goerr.V("fact", fact), goerr.V("count", model.FactCount))
	}
	for range fact {
		st.AdvanceFact()
	}

	return st, nil
}

// terminalWidth is the width of w when it is a terminal.
func terminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok {
		return fallbackWidth
	}
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return fallbackWidth
	}
	cols, _, err := term.GetSize(fd)
	if err != nil || cols <= 0 {
		return fallbackWidth
	}
	return cols
}
