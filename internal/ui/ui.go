package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/desertthunder/favsongs/internal/shared"
	"github.com/desertthunder/favsongs/internal/songs"
)

const helpHeight = 2

// Options configures the song list screen.
type Options struct {
	Title      string
	ShowHelp   bool
	RowNumbers bool
	Palette    *Palette
	// OnLoad runs once when the screen becomes active, before the first layout pass.
	OnLoad func()
	Logger *log.Logger
}

// OptionsFromConfig builds [Options] from the [shared.UIConfig] section.
func OptionsFromConfig(c shared.UIConfig) Options {
	return Options{
		Title:      c.Title,
		ShowHelp:   c.ShowHelp,
		RowNumbers: c.RowNumbers,
		Palette:    PaletteFromConfig(c.Colors),
	}
}

// Model represents the TUI application state.
type Model struct {
	source  songs.DataSource
	opts    Options
	palette *Palette
	logger  *log.Logger
	loaded  bool
	width   int
	height  int
	rows    list.Model
	err     error
	help    help.Model
	keys    keyMap
}

// NewModel creates a new TUI model that renders rows pulled from source.
func NewModel(source songs.DataSource, opts Options) *Model {
	if opts.Palette == nil {
		opts.Palette = defaultPalette
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(io.Discard)
	}

	rows := list.New(nil, newSongDelegate(opts.Palette), 0, 0)
	rows.Title = opts.Title
	rows.Styles.Title = opts.Palette.title.Padding(0, 1)
	rows.SetShowTitle(opts.Title != "")
	rows.SetFilteringEnabled(false)
	rows.SetShowFilter(false)
	rows.SetShowStatusBar(false)
	rows.SetShowPagination(false)
	rows.SetShowHelp(false)
	rows.DisableQuitKeybindings()

	h := help.New()
	h.Styles.ShortKey = opts.Palette.muted
	h.Styles.ShortDesc = opts.Palette.muted

	return &Model{
		source:  source,
		opts:    opts,
		palette: opts.Palette,
		logger:  opts.Logger,
		rows:    rows,
		help:    h,
		keys:    newKeyMap(),
	}
}

// Init activates the screen.
func (m *Model) Init() tea.Cmd {
	return func() tea.Msg { return screenLoadedMsg() }
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.resize()
		if m.loaded {
			return m, m.reload()
		}
		return m, nil

	case Msg:
		switch msg.kind {
		case MsgScreenLoaded:
			if !m.loaded {
				if m.opts.OnLoad != nil {
					m.opts.OnLoad()
				}
				m.loaded = true
				m.logger.Debug("screen loaded")
			}
			return m, m.reload()
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.help):
			m.help.ShowAll = !m.help.ShowAll
			m.resize()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.rows, cmd = m.rows.Update(msg)
	return m, cmd
}

// View renders the song list, or the error that interrupted the last layout pass.
func (m *Model) View() string {
	if m.err != nil {
		return m.palette.err.Render(fmt.Sprintf("Error: %v\n\nPress q to quit", m.err))
	}

	body := m.rows.View()
	if m.loaded && len(m.rows.Items()) == 0 {
		body = m.palette.muted.Render("No songs")
	}

	if !m.opts.ShowHelp {
		return body
	}
	return fmt.Sprintf("%s\n\n%s", body, m.help.View(m.keys))
}

// reload performs a layout pass: one SectionCount, one RowCount per section and one Title per row.
func (m *Model) reload() tea.Cmd {
	var items []list.Item
	for section := range m.source.SectionCount() {
		for row := range m.source.RowCount(section) {
			title, err := m.source.Title(row)
			if err != nil {
				m.err = fmt.Errorf("section %d row %d: %w", section, row, err)
				m.logger.Error("failed to render row", "section", section, "row", row, "error", err)
				return m.rows.SetItems(nil)
			}
			items = append(items, songItem{index: row, title: title, numbered: m.opts.RowNumbers})
		}
	}

	m.err = nil
	m.logger.Debug("layout pass", "rows", len(items))
	return m.rows.SetItems(items)
}

func (m *Model) resize() {
	height := m.height
	if m.opts.ShowHelp {
		height -= helpHeight
		if m.help.ShowAll {
			height -= len(m.keys.FullHelp()[0]) - 1
		}
	}
	m.rows.SetSize(m.width, max(height, 0))
}

// Rows returns the display text of every row currently laid out.
func (m *Model) Rows() []string {
	items := m.rows.Items()
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.(songItem).title
	}
	return out
}

// Err returns the error from the last layout pass, if any.
func (m *Model) Err() error {
	return m.err
}
