package ui

import (
	"context"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/m-mizutani/goerr/v2"

	"github.com/Dicklesworthstone/turtle_troubles/internal/config"
	"github.com/Dicklesworthstone/turtle_troubles/internal/logging"
	"github.com/Dicklesworthstone/turtle_troubles/internal/model"
	"github.com/Dicklesworthstone/turtle_troubles/internal/state"
	"github.com/Dicklesworthstone/turtle_troubles/internal/watcher"
)

// Model is the turtle conservation widget.
type Model struct {
	cfg       config.Config
	st        state.State
	cursor    int // focused card within the visible list
	theme     Theme
	keys      keyMap
	help      help.Model
	stream    <-chan *config.File
	ctxCancel context.CancelFunc
	status    string
	width     int
	height    int
}

func New(cfg config.Config, r *lipgloss.Renderer) *Model {
	return &Model{
		cfg:    cfg,
		st:     state.New(),
		theme:  NewTheme(r, cfg.Palette),
		keys:   keys,
		help:   help.New(),
		width:  120,
		height: 40,
	}
}

// Messages. The exported ones are the widget's input events; each is
// applied as exactly one state transition.
type (
	// SelectCategoryMsg is a tab click.
	SelectCategoryMsg struct{ Category model.Category }
	// CardClickMsg is a click on a card body.
	CardClickMsg struct{ ID model.ItemID }
	// LearnMoreMsg is a click on a collapsed card's "learn how to help" link.
	LearnMoreMsg struct{ ID model.ItemID }
	// NextFactMsg is a click on the fun fact button.
	NextFactMsg struct{}

	pollMsg      struct{}
	rotateMsg    struct{}
	clipboardMsg struct{ err error }
)

func pollCmd() tea.Cmd { return tea.Tick(time.Second/5, func(time.Time) tea.Msg { return pollMsg{} }) }

func rotateCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return rotateMsg{} })
}

func copyCmd(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return clipboardMsg{err: goerr.Wrap(err, "failed to copy fun fact")}
		}
		return clipboardMsg{}
	}
}

func (m *Model) Init() tea.Cmd {
	var cmds []tea.Cmd
	if m.stream != nil {
		cmds = append(cmds, pollCmd())
	}
	if m.cfg.Rotate > 0 {
		cmds = append(cmds, rotateCmd(m.cfg.Rotate))
	}
	return tea.Batch(cmds...)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	case SelectCategoryMsg, CardClickMsg, LearnMoreMsg, NextFactMsg:
		m.apply(msg)
	case rotateMsg:
		m.apply(NextFactMsg{})
		return m, rotateCmd(m.cfg.Rotate)
	case pollMsg:
		select {
		case f, ok := <-m.stream:
			if ok {
				m.reload(f)
			}
		default:
		}
		return m, pollCmd()
	case clipboardMsg:
		if msg.err != nil {
			logging.Default().Warn("clipboard unavailable", "error", msg.err)
			m.status = "Could not copy fun fact"
		} else {
			m.status = "Fun fact copied to clipboard"
		}
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		if m.ctxCancel != nil {
			m.ctxCancel()
		}
		return tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Jump):
		idx := int(msg.String()[0] - '1')
		m.apply(SelectCategoryMsg{Category: model.AllCategories()[idx]})
	case key.Matches(msg, m.keys.NextTab):
		m.apply(SelectCategoryMsg{Category: m.st.Category.Next()})
	case key.Matches(msg, m.keys.PrevTab):
		m.apply(SelectCategoryMsg{Category: m.st.Category.Prev()})
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.st.VisibleItems())-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Toggle):
		if it, ok := m.focused(); ok {
			m.apply(CardClickMsg{ID: it.ID})
		}
	case key.Matches(msg, m.keys.LearnMore):
		// The link only exists on collapsed cards.
		if it, ok := m.focused(); ok && !m.st.IsExpanded(it.ID) {
			m.apply(LearnMoreMsg{ID: it.ID})
		}
	case key.Matches(msg, m.keys.NextFact):
		m.apply(NextFactMsg{})
	case key.Matches(msg, m.keys.Copy):
		return copyCmd(string(m.st.CurrentFact()))
	}
	return nil
}

// apply performs the single transition for an input event. LearnMoreMsg is
// consumed here and never also treated as a card click.
func (m *Model) apply(msg tea.Msg) {
	log := logging.Default()
	switch msg := msg.(type) {
	case SelectCategoryMsg:
		if !msg.Category.Valid() {
			return
		}
		if msg.Category != m.st.Category {
			m.cursor = 0
		}
		m.st.SelectCategory(msg.Category)
		log.Debug("tab selected", "category", msg.Category)
	case CardClickMsg:
		m.st.ClickCard(msg.ID)
		m.cursor = m.indexOf(msg.ID, m.cursor)
		log.Debug("card clicked", "id", msg.ID, "expanded", m.st.Expanded)
	case LearnMoreMsg:
		m.st.ClickLearnMore(msg.ID)
		m.cursor = m.indexOf(msg.ID, m.cursor)
		log.Debug("learn more clicked", "id", msg.ID)
	case NextFactMsg:
		m.st.AdvanceFact()
		log.Debug("fact advanced", "index", m.st.FactIndex)
	}
}

func (m *Model) reload(f *config.File) {
	pal, err := config.DefaultPalette().With(f.Palette)
	if err != nil {
		logging.Default().Warn("ignoring palette", "error", err)
		return
	}
	m.cfg.Palette = pal
	m.theme = NewTheme(m.theme.Renderer, pal)
	m.status = "Palette reloaded"
}

func (m *Model) focused() (model.ThreatItem, bool) {
	items := m.st.VisibleItems()
	if m.cursor < 0 || m.cursor >= len(items) {
		return model.ThreatItem{}, false
	}
	return items[m.cursor], true
}

func (m *Model) indexOf(id model.ItemID, fallback int) int {
	for i, it := range m.st.VisibleItems() {
		if it.ID == id {
			return i
		}
	}
	return fallback
}

// State returns a copy of the view-state.
func (m *Model) State() state.State { return m.st }

// Cursor is the index of the focused card.
func (m *Model) Cursor() int { return m.cursor }

// Status is the transient status line.
func (m *Model) Status() string { return m.status }

func (m *Model) View() string {
	page := render(m.theme, m.st, m.cursor, m.width)
	parts := []string{page}
	if m.status != "" {
		parts = append(parts, m.theme.Status.Render(m.status))
	}
	parts = append(parts, m.help.View(m.keys))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// Snapshot renders st at the given width without a running program and
// without card focus.
func Snapshot(r *lipgloss.Renderer, st state.State, width int, pal config.Palette) string {
	return render(NewTheme(r, pal), st, -1, width)
}

// RunTUI starts the Bubble Tea program.
func RunTUI(ctx context.Context, cfg config.Config) error {
	m := New(cfg, lipgloss.DefaultRenderer())

	if cfg.Watch {
		wctx, cancel := context.WithCancel(ctx)
		defer cancel()
		stream, err := watcher.New(cfg.Path).Stream(wctx)
		if err != nil {
			return err
		}
		m.stream = stream
		m.ctxCancel = cancel
	}

	var opts []tea.ProgramOption
	if !cfg.NoAltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	if _, err := tea.NewProgram(m, opts...).Run(); err != nil {
		return goerr.Wrap(err, "tui exited with error")
	}
	return nil
}
