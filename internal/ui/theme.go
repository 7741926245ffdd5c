package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Dicklesworthstone/turtle_troubles/internal/config"
	"github.com/Dicklesworthstone/turtle_troubles/internal/model"
)

// Theme holds every style the widget renders with. Styles come from one
// renderer so snapshots can force a color profile.
type Theme struct {
	Renderer *lipgloss.Renderer
	Palette  config.Palette

	// Colors
	Primary lipgloss.AdaptiveColor
	Subtext lipgloss.AdaptiveColor
	Muted   lipgloss.AdaptiveColor
	Tips    lipgloss.AdaptiveColor
	Facts   lipgloss.AdaptiveColor

	// Styles
	Title      lipgloss.Style
	Subtitle   lipgloss.Style
	Tab        lipgloss.Style
	Card       lipgloss.Style
	Affordance lipgloss.Style
	Divider    lipgloss.Style
	Panel      lipgloss.Style
	PanelTitle lipgloss.Style
	TipTitle   lipgloss.Style
	TipText    lipgloss.Style
	FactText   lipgloss.Style
	Art        lipgloss.Style
	Footer     lipgloss.Style
	Status     lipgloss.Style
}

// NewTheme builds the ocean-toned theme for palette p.
func NewTheme(r *lipgloss.Renderer, p config.Palette) Theme {
	t := Theme{
		Renderer: r,
		Palette:  p,

		Primary: lipgloss.AdaptiveColor{Light: "#1E40AF", Dark: "#93C5FD"}, // Blue-800 / Blue-300
		Subtext: lipgloss.AdaptiveColor{Light: "#2563EB", Dark: "#BFDBFE"},
		Muted:   lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#6B7280"}, // Gray
		Tips:    lipgloss.AdaptiveColor{Light: "#15803D", Dark: "#4ADE80"}, // Green
		Facts:   lipgloss.AdaptiveColor{Light: "#7E22CE", Dark: "#C084FC"}, // Purple
	}

	t.Title = r.NewStyle().Bold(true).Foreground(t.Primary)
	t.Subtitle = r.NewStyle().Foreground(t.Subtext)

	t.Tab = r.NewStyle().
		Bold(true).
		Padding(0, 2).
		MarginRight(1).
		Foreground(lipgloss.Color("#FFFFFF"))

	t.Card = r.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1).
		MarginRight(1)

	t.Affordance = r.NewStyle().Underline(true)
	t.Divider = r.NewStyle().Foreground(t.Muted)

	t.Panel = r.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)
	t.PanelTitle = r.NewStyle().Bold(true)

	t.TipTitle = r.NewStyle().Bold(true).Foreground(t.Tips)
	t.TipText = r.NewStyle()
	t.FactText = r.NewStyle().Italic(true)
	t.Art = r.NewStyle().Foreground(t.Muted)

	t.Footer = r.NewStyle().
		Foreground(t.Primary).
		Border(lipgloss.NormalBorder(), true, false, false, false).
		BorderForeground(t.Muted)
	t.Status = r.NewStyle().Foreground(t.Muted).Italic(true)

	return t
}

// CategoryColor is the tab color of c under the active palette.
func (t Theme) CategoryColor(c model.Category) lipgloss.Color {
	return lipgloss.Color(t.Palette.Color(c))
}

// ActiveTab renders the selected tab in its category color.
func (t Theme) ActiveTab(c model.Category) lipgloss.Style {
	return t.Tab.Background(t.CategoryColor(c)).Underline(true)
}

// InactiveTab renders unselected tabs in grey.
func (t Theme) InactiveTab() lipgloss.Style {
	return t.Tab.Background(t.Muted)
}

// ItemColor is the accent of a card in category c. Items keep their own
// shade until the palette overrides c, then the whole category follows the
// tab.
func (t Theme) ItemColor(c model.Category, item model.ThreatItem) lipgloss.Color {
	if color := t.Palette.Color(c); color != c.Color() {
		return lipgloss.Color(color)
	}
	return lipgloss.Color(item.Color)
}

// CardStyle frames an item card in its accent; the focused card gets a
// thick border.
func (t Theme) CardStyle(c model.Category, item model.ThreatItem, focused bool) lipgloss.Style {
	s := t.Card.BorderForeground(t.ItemColor(c, item))
	if focused {
		s = s.Border(lipgloss.ThickBorder())
	}
	return s
}
