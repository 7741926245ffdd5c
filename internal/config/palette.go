package config

import (
	"regexp"
	"strconv"

	"github.com/m-mizutani/goerr/v2"

	"github.com/Dicklesworthstone/turtle_troubles/internal/model"
)

// Palette maps each category to its tab color (#RRGGBB or an ANSI index).
type Palette [model.NumCategories]string

var hexColor = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// DefaultPalette uses the built-in category colors.
func DefaultPalette() Palette {
	var p Palette
	for _, c := range model.AllCategories() {
		p[c] = c.Color()
	}
	return p
}

// Color returns the tab color of c.
func (p Palette) Color(c model.Category) string { return p[c] }

// With returns a copy of p with overrides keyed by category key applied.
func (p Palette) With(overrides map[string]string) (Palette, error) {
	out := p
	for key, color := range overrides {
		c, ok := model.ParseCategory(key)
		if !ok {
			return p, goerr.Wrap(ErrUnknownCategory, "unknown palette key", goerr.V("key", key))
		}
		if !ValidColor(color) {
			return p, goerr.Wrap(ErrInvalidColor, "palette color must be #RRGGBB or 0-255", goerr.V("key", key), goerr.V("color", color))
		}
		out[c] = color
	}
	return out, nil
}

// ValidColor accepts #RRGGBB or an ANSI 256 color index.
func ValidColor(s string) bool {
	if hexColor.MatchString(s) {
		return true
	}
	n, err := strconv.Atoi(s)
	return err == nil && n >= 0 && n <= 255
}
