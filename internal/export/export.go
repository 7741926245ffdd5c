// Package export dumps the static content tables as JSON, YAML or
// Markdown.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/m-mizutani/goerr/v2"
	"gopkg.in/yaml.v3"

	"github.com/Dicklesworthstone/turtle_troubles/internal/model"
)

// Catalog is the full content of the widget.
type Catalog struct {
	Categories []CategoryEntry   `json:"categories" yaml:"categories"`
	ActionTips []model.ActionTip `json:"action_tips" yaml:"action_tips"`
	FunFacts   []model.FunFact   `json:"fun_facts" yaml:"fun_facts"`
}

// CategoryEntry is one tab and its cards.
type CategoryEntry struct {
	Key   string             `json:"key" yaml:"key"`
	Name  string             `json:"name" yaml:"name"`
	Color string             `json:"color" yaml:"color"`
	Items []model.ThreatItem `json:"items" yaml:"items"`
}

// Build collects the catalog in display order.
func Build() Catalog {
	cats := model.AllCategories()
	entries := make([]CategoryEntry, 0, len(cats))
	for _, c := range cats {
		entries = append(entries, CategoryEntry{
			Key:   c.Key(),
			Name:  c.Name(),
			Color: c.Color(),
			Items: c.Items(),
		})
	}
	return Catalog{
		Categories: entries,
		ActionTips: model.ActionTips(),
		FunFacts:   model.FunFacts(),
	}
}

// WriteJSON writes c as indented JSON.
func WriteJSON(w io.Writer, c Catalog) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(c); err != nil {
		return goerr.Wrap(err, "failed to encode catalog as json")
	}
	return nil
}

// WriteYAML writes c as YAML.
func WriteYAML(w io.Writer, c Catalog) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return goerr.Wrap(err, "failed to encode catalog as yaml")
	}
	if err := enc.Close(); err != nil {
		return goerr.Wrap(err, "failed to flush yaml")
	}
	return nil
}

// Markdown renders c as a fact sheet.
func Markdown(c Catalog) string {
	var sb strings.Builder

	sb.WriteString("# Turtle Troubles & How You Can Help\n\n")

	for _, cat := range c.Categories {
		sb.WriteString(fmt.Sprintf("## %s\n\n", cat.Name))
		for _, it := range cat.Items {
			sb.WriteString(fmt.Sprintf("### %s %s\n\n", it.Icon, it.Title))
			sb.WriteString(fmt.Sprintf("%s\n\n", it.Problem))
			sb.WriteString(fmt.Sprintf("**How you can help:** %s\n\n", it.Solution))
		}
	}

	sb.WriteString("## Simple Ways You Can Help Turtles!\n\n")
	for _, tip := range c.ActionTips {
		sb.WriteString(fmt.Sprintf("- %s **%s**: %s\n", tip.Icon, tip.Title, tip.Description))
	}

	sb.WriteString("\n## Turtle Fun Facts\n\n")
	for i, f := range c.FunFacts {
		sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, f))
	}

	return sb.String()
}

// RenderMarkdown styles md for a terminal of the given width. style is a
// glamour standard style name, or "auto" to follow the terminal background.
func RenderMarkdown(md string, width int, style string) (string, error) {
	styleOpt := glamour.WithStandardStyle(style)
	if style == "auto" {
		styleOpt = glamour.WithAutoStyle()
	}

	r, err := glamour.NewTermRenderer(styleOpt, glamour.WithWordWrap(width))
	if err != nil {
		return "", goerr.Wrap(err, "failed to create markdown renderer", goerr.V("style", style))
	}
	out, err := r.Render(md)
	if err != nil {
		return "", goerr.Wrap(err, "failed to render markdown")
	}
	return out, nil
}
