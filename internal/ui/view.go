package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/Dicklesworthstone/turtle_troubles/internal/art"
	"github.com/Dicklesworthstone/turtle_troubles/internal/model"
	"github.com/Dicklesworthstone/turtle_troubles/internal/state"
)

const (
	minWidth = 40
	// Below this width cards and tips stack vertically.
	columnsWidth = 84
)

// render maps view-state onto the page. cursor < 0 draws no focus.
func render(t Theme, st state.State, cursor, width int) string {
	if width < minWidth {
		width = minWidth
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		header(t, width),
		"",
		tabs(t, st),
		"",
		cards(t, st, cursor, width),
		"",
		tipsPanel(t, width),
		"",
		factPanel(t, st, width),
		footer(t, width),
	)
}

func header(t Theme, width int) string {
	title := t.Title.Render("🐢 Turtle Troubles & How You Can Help")
	sub := t.Subtitle.Width(width).Render(
		"Explore the challenges turtles face and discover how you can make a difference!")
	return lipgloss.JoinVertical(lipgloss.Left, title, sub)
}

func tabs(t Theme, st state.State) string {
	cats := model.AllCategories()
	labels := make([]string, 0, len(cats))
	for i, c := range cats {
		label := fmt.Sprintf("%d %s", i+1, c.Name())
		if c == st.Category {
			labels = append(labels, t.ActiveTab(c).Render(label))
		} else {
			labels = append(labels, t.InactiveTab().Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, labels...)
}

func cards(t Theme, st state.State, cursor, width int) string {
	items := st.VisibleItems()
	if len(items) == 0 {
		return ""
	}

	cardW := width
	if width >= columnsWidth {
		cardW = width / len(items)
	}

	rendered := make([]string, 0, len(items))
	for i, it := range items {
		rendered = append(rendered, card(t, st.Category, it, st.IsExpanded(it.ID), i == cursor, cardW))
	}

	if width >= columnsWidth {
		return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
	}
	return lipgloss.JoinVertical(lipgloss.Left, rendered...)
}

// card draws one item. outer is the total width including border and
// margin.
func card(t Theme, c model.Category, it model.ThreatItem, expanded, focused bool, outer int) string {
	style := t.CardStyle(c, it, focused)
	inner := outer - style.GetHorizontalFrameSize()
	if inner < 10 {
		inner = 10
	}

	titleStyle := t.Renderer.NewStyle().Bold(true).Foreground(t.ItemColor(c, it))
	title := truncate(it.Title, inner-runewidth.StringWidth(it.Icon)-1)
	head := titleStyle.Render(title) + " " + it.Icon

	lines := []string{head, it.Problem}
	if expanded {
		lines = append(lines,
			t.Divider.Render(strings.Repeat("─", inner)),
			titleStyle.Render("♥ How You Can Help:"),
			it.Solution,
		)
	} else {
		lines = append(lines, t.Affordance.Render("Learn how to help →"))
	}

	return style.Width(inner + style.GetHorizontalPadding()).Render(strings.Join(lines, "\n"))
}

func tipsPanel(t Theme, width int) string {
	tips := model.ActionTips()
	inner := width - t.Panel.GetHorizontalFrameSize()

	boxW := inner - 1
	if width >= columnsWidth {
		boxW = inner/len(tips) - 1
	}

	boxes := make([]string, 0, len(tips))
	for _, tip := range tips {
		body := t.TipTitle.Render(truncate(tip.Title, boxW-runewidth.StringWidth(tip.Icon)-1)) + " " + tip.Icon +
			"\n" + t.TipText.Render(tip.Description)
		boxes = append(boxes, t.Renderer.NewStyle().Width(boxW).MarginRight(1).Render(body))
	}

	var grid string
	if width >= columnsWidth {
		grid = lipgloss.JoinHorizontal(lipgloss.Top, boxes...)
	} else {
		grid = strings.Join(boxes, "\n\n")
	}

	title := t.PanelTitle.Foreground(t.Tips).Render("Simple Ways You Can Help Turtles!")
	return t.Panel.BorderForeground(t.Tips).Width(width - 2).Render(title + "\n\n" + grid)
}

func factPanel(t Theme, st state.State, width int) string {
	glyph := art.Glyph()
	glyphW := runewidth.StringWidth(glyph[0])
	inner := width - t.Panel.GetHorizontalFrameSize()

	textW := inner - glyphW - 1
	showArt := textW >= 30
	if !showArt {
		textW = inner
	}

	text := t.Renderer.NewStyle().Width(textW).Render(
		t.PanelTitle.Foreground(t.Facts).Render("Turtle Fun Fact:") + "\n" +
			t.FactText.Render(`"`+string(st.CurrentFact())+`"`) + "\n" +
			t.Art.Render(fmt.Sprintf("(%d/%d) press f for another", st.FactIndex+1, model.FactCount)))

	body := text
	if showArt {
		body = lipgloss.JoinHorizontal(lipgloss.Top, text, " ", t.Art.Render(strings.Join(glyph, "\n")))
	}
	return t.Panel.BorderForeground(t.Facts).Width(width - 2).Render(body)
}

func footer(t Theme, width int) string {
	return t.Footer.Width(width).Align(lipgloss.Center).Render(
		"Remember: Small actions can make a big difference for turtle conservation! 🌊 🐢 🌎")
}

// truncate shortens s to at most n terminal cells.
func truncate(s string, n int) string {
	if n <= 1 {
		return "…"
	}
	return runewidth.Truncate(s, n, "…")
}
