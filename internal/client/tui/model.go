// Package tui is the interactive browse grid of the terminal client. It
// renders decorated cards, rotates images of cards that have image rotation
// and reloads the grid periodically.
package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dmitrijs2005/unity/internal/api"
	"github.com/dmitrijs2005/unity/internal/client/client"
	"github.com/dmitrijs2005/unity/internal/presentation"
)

const repaintInterval = 500 * time.Millisecond

type Browser interface {
	Browse(ctx context.Context, req *api.BrowseRequest) (*client.BrowsePage, error)
}

type Options struct {
	Location        string
	Category        string
	AvailableOnly   bool
	Search          string
	RequestTimeout  time.Duration
	RefreshInterval time.Duration
	// NewTicker drives image rotation; nil means a real ticker.
	NewTicker presentation.NewTickerFunc
}

type pageMsg struct{ page *client.BrowsePage }

type errMsg struct{ err error }

type refreshMsg struct{}

type repaintMsg struct{}

type Model struct {
	browser   Browser
	opts      Options
	rotations *presentation.Rotations

	spinner spinner.Model
	search  textinput.Model

	cards      []presentation.Card
	locations  []string
	categories []string

	loading  bool
	err      error
	selected int
	width    int
	quitting bool
}

func New(b Browser, opts Options) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	ti := textinput.New()
	ti.Placeholder = "search title or description"
	ti.Prompt = "/ "
	ti.SetValue(opts.Search)

	return Model{
		browser:   b,
		opts:      opts,
		rotations: presentation.NewRotations(presentation.RotationInterval, opts.NewTicker),
		spinner:   sp,
		search:    ti,
		loading:   true,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.load(), repaint(), m.scheduleRefresh())
}

// Cards returns the cards currently on screen.
func (m Model) Cards() []presentation.Card { return m.cards }

// Err returns the last load error, nil after a successful load.
func (m Model) Err() error { return m.err }

// Close releases the rotation timers. It is called on quit and is safe to
// call again.
func (m Model) Close() {
	m.rotations.Close()
}

func (m Model) request() *api.BrowseRequest {
	return &api.BrowseRequest{
		Location:      m.opts.Location,
		Category:      m.opts.Category,
		AvailableOnly: m.opts.AvailableOnly,
		Search:        m.search.Value(),
	}
}

func (m Model) load() tea.Cmd {
	req := m.request()
	b, timeout := m.browser, m.opts.RequestTimeout
	return func() tea.Msg {
		ctx := context.Background()
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}
		page, err := b.Browse(ctx, req)
		if err != nil {
			return errMsg{err}
		}
		return pageMsg{page}
	}
}

func (m Model) scheduleRefresh() tea.Cmd {
	if m.opts.RefreshInterval <= 0 {
		return nil
	}
	return tea.Tick(m.opts.RefreshInterval, func(time.Time) tea.Msg { return refreshMsg{} })
}

func repaint() tea.Cmd {
	return tea.Tick(repaintInterval, func(time.Time) tea.Msg { return repaintMsg{} })
}

func (m Model) reload() (Model, tea.Cmd) {
	m.loading = true
	return m, tea.Batch(m.load(), m.spinner.Tick)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case pageMsg:
		m.loading = false
		m.err = nil
		m.cards = msg.page.Cards
		m.locations = msg.page.Locations
		m.categories = msg.page.Categories
		m.rotations.Sync(m.cards)
		if m.selected >= len(m.cards) {
			m.selected = 0
		}
		return m, nil

	case errMsg:
		// keep showing what we had
		m.loading = false
		m.err = msg.err
		return m, nil

	case refreshMsg:
		if m.loading {
			return m, m.scheduleRefresh()
		}
		var cmd tea.Cmd
		m, cmd = m.reload()
		return m, tea.Batch(cmd, m.scheduleRefresh())

	case repaintMsg:
		if m.quitting {
			return m, nil
		}
		return m, repaint()

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if m.search.Focused() {
			return m.updateSearch(msg)
		}
		return m.updateKeys(msg)
	}
	return m, nil
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.search.Blur()
		return m.reload()
	case "esc":
		m.search.Blur()
		return m, nil
	case "ctrl+c":
		return m.quit()
	}
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, cmd
}

func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m.quit()
	case "/":
		cmd := m.search.Focus()
		return m, cmd
	case "a":
		m.opts.AvailableOnly = !m.opts.AvailableOnly
		return m.reload()
	case "r":
		return m.reload()
	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}
	case "down", "j":
		if m.selected < len(m.cards)-1 {
			m.selected++
		}
	}
	return m, nil
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	m.rotations.Close()
	return m, tea.Quit
}

// Run starts the program on the terminal and blocks until the user quits.
func Run(ctx context.Context, b Browser, opts Options) error {
	m := New(b, opts)
	defer m.Close()

	_, err := tea.NewProgram(m, tea.WithContext(ctx), tea.WithAltScreen()).Run()
	return err
}
