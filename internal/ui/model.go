package ui

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"docpane/internal/config"
	"docpane/internal/domain"
	"docpane/internal/eventbus"
	"docpane/internal/numbering"
	"docpane/internal/theme"
	"docpane/internal/ui/services/navigation"
	"docpane/internal/ui/views"
)

// Model represents the UI state. Config values are copied in at
// construction; the model shares no mutable state with other
// goroutines and publishes snapshots when settings change.
type Model struct {
	bus eventbus.EventBus
	log zerolog.Logger

	docsDir      string
	themePref    string // "auto" until the user toggles explicitly
	rememberLast bool

	width  int
	height int

	entries   []domain.Entry
	labels    []string // index-aligned numbering labels
	lastIndex int      // restored on the first successful load

	nav      *navigation.Service
	viewport viewport.Model
	renderer *views.Renderer
	resolver *theme.Resolver
	mode     theme.Mode

	panicked      bool
	panicMessage  string
	loading       bool
	statusMessage string
	showNumbers   bool
	focusContent  bool

	helpRenderer *HelpRenderer
	pagerOps     *PagerOps
	program      *tea.Program
}

// NewModel creates a new UI model
func NewModel(cfg *config.Config, bus eventbus.EventBus, resolver *theme.Resolver, mode theme.Mode, log zerolog.Logger) *Model {
	m := &Model{
		bus:          bus,
		log:          log,
		docsDir:      cfg.DocsDir,
		themePref:    cfg.Theme,
		rememberLast: cfg.UISettings.RememberLast,
		lastIndex:    cfg.UISettings.LastIndex,
		nav:          navigation.NewService(bus),
		viewport:     viewport.New(0, 0),
		renderer:     views.NewRenderer(views.NewStyles(resolver, mode)),
		resolver:     resolver,
		mode:         mode,
		loading:      true,
		showNumbers:  cfg.UISettings.ShowNumbers,
		helpRenderer: NewHelpRenderer(),
	}
	m.nav.SetQueryFunction(m.maxIndex)
	return m
}

// ConfigSnapshot returns the savable settings as they stand. Bubble
// Tea hands the final model back from Run, so calling this after the
// program exits reads quiesced state.
func (m *Model) ConfigSnapshot() *config.Config {
	return &config.Config{
		Version: 1,
		DocsDir: m.docsDir,
		Theme:   m.themePref,
		UISettings: config.UISettings{
			ShowNumbers:  m.showNumbers,
			RememberLast: m.rememberLast,
			LastIndex:    m.nav.Cursor(),
		},
	}
}

// SetProgram stores the Bubble Tea program reference for pager handoff
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.pagerOps = NewPagerOps(p)
}

// Init initializes the model
func (m *Model) Init() tea.Cmd {
	return m.tick()
}

func (m *Model) tick() tea.Cmd {
	return tea.Tick(time.Millisecond*80, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.nav.SetViewportHeight(msg.Height)
		m.viewport.Width = views.ContentWidth(msg.Width)
		m.viewport.Height = m.nav.ViewportHeight()
		m.refreshContent()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tickMsg:
		if m.loading {
			return m, m.tick()
		}
		return m, nil

	case EventMsg:
		m.handleEvent(msg.Event)
		return m, nil

	case sourcePagerMsg:
		if msg.err != nil {
			m.log.Error().Err(msg.err).Str("path", msg.path).Msg("pager failed")
			m.statusMessage = fmt.Sprintf("Pager error: %v", msg.err)
		}
		return m, nil

	case helpPagerMsg:
		if msg.err != nil {
			m.log.Error().Err(msg.err).Msg("help pager failed")
			m.statusMessage = fmt.Sprintf("Help error: %v", msg.err)
		}
		return m, nil
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "tab":
		m.focusContent = !m.focusContent

	case "j", "down":
		if m.focusContent {
			m.viewport.LineDown(1)
		} else {
			m.nav.Navigate(navigation.DirectionDown)
			m.syncSelection()
		}

	case "k", "up":
		if m.focusContent {
			m.viewport.LineUp(1)
		} else {
			m.nav.Navigate(navigation.DirectionUp)
			m.syncSelection()
		}

	case "ctrl+d", "pgdown":
		if m.focusContent {
			m.viewport.HalfViewDown()
		} else {
			m.nav.Navigate(navigation.DirectionPageDown)
			m.syncSelection()
		}

	case "ctrl+u", "pgup":
		if m.focusContent {
			m.viewport.HalfViewUp()
		} else {
			m.nav.Navigate(navigation.DirectionPageUp)
			m.syncSelection()
		}

	case "g", "home":
		if m.focusContent {
			m.viewport.GotoTop()
		} else {
			m.nav.Navigate(navigation.DirectionHome)
			m.syncSelection()
		}

	case "G", "end":
		if m.focusContent {
			m.viewport.GotoBottom()
		} else {
			m.nav.Navigate(navigation.DirectionEnd)
			m.syncSelection()
		}

	case "n":
		m.showNumbers = !m.showNumbers
		m.refreshContent()
		m.publishConfigChanged()

	case "t":
		m.mode = m.mode.Toggle()
		m.renderer.SetStyles(views.NewStyles(m.resolver, m.mode))
		m.refreshContent()
		m.themePref = m.mode.String()
		m.bus.Publish(eventbus.ThemeChangedEvent{Mode: m.mode.String()})
		m.publishConfigChanged()

	case "r":
		m.loading = true
		m.statusMessage = "Reloading..."
		m.bus.Publish(eventbus.ReloadRequestedEvent{Dir: m.docsDir})
		return m, m.tick()

	case "enter":
		return m, m.pageSourceCmd()

	case "?":
		return m, m.helpPagerCmd()
	}

	return m, nil
}

func (m *Model) handleEvent(event eventbus.DomainEvent) {
	switch e := event.(type) {
	case eventbus.LoadStartedEvent:
		m.loading = true

	case eventbus.DocsLoadedEvent:
		m.entries = e.Entries
		m.labels = numbering.Labels(navEntries(e.Entries))
		m.loading = false
		index := 0
		if m.rememberLast {
			index = m.lastIndex
		}
		m.nav.MoveToIndex(index)
		m.syncSelection()
		m.statusMessage = fmt.Sprintf("Loaded %d entries", len(e.Entries))

	case eventbus.DocSelectedEvent:
		m.viewport.GotoTop()

	case eventbus.PanicRaisedEvent:
		m.panicked = true
		m.panicMessage = e.Message
		m.loading = false

	case eventbus.PanicClearedEvent:
		m.panicked = false
		m.panicMessage = ""

	case eventbus.ThemeChangedEvent:
		if mode := theme.ModeFromPreference(e.Mode); mode != m.mode {
			m.mode = mode
			m.renderer.SetStyles(views.NewStyles(m.resolver, m.mode))
			m.refreshContent()
		}

	case eventbus.ErrorEvent:
		m.statusMessage = e.Message
	}
}

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}
	return m.renderer.Render(views.ViewState{
		Width:          m.width,
		Height:         m.height,
		Entries:        m.entries,
		Labels:         m.labels,
		SelectedIndex:  m.nav.Cursor(),
		ViewportOffset: m.nav.ViewportOffset(),
		ViewportHeight: m.nav.ViewportHeight(),
		Loading:        m.loading,
		Panicked:       m.panicked,
		PanicMessage:   m.panicMessage,
		StatusMessage:  m.statusMessage,
		ShowNumbers:    m.showNumbers,
		ContentView:    m.viewport.View(),
	})
}

func (m *Model) maxIndex() int {
	if len(m.entries) == 0 {
		return 0
	}
	return len(m.entries) - 1
}

// syncSelection updates the current-entry markers and re-renders the
// content pane after the cursor moved
func (m *Model) syncSelection() {
	cursor := m.nav.Cursor()
	for i := range m.entries {
		m.entries[i].IsCurrent = i == cursor
	}
	m.refreshContent()
}

func (m *Model) refreshContent() {
	cursor := m.nav.Cursor()
	if cursor < 0 || cursor >= len(m.entries) {
		m.viewport.SetContent("")
		return
	}
	label := ""
	if m.showNumbers && cursor < len(m.labels) {
		label = m.labels[cursor]
	}
	m.viewport.SetContent(m.renderer.RenderEntryContent(m.entries[cursor], label, m.viewport.Width))
}

func (m *Model) publishConfigChanged() {
	m.bus.Publish(eventbus.ConfigChangedEvent{
		Theme:        m.themePref,
		DocsDir:      m.docsDir,
		ShowNumbers:  m.showNumbers,
		RememberLast: m.rememberLast,
		LastIndex:    m.nav.Cursor(),
	})
}

func (m *Model) pageSourceCmd() tea.Cmd {
	cursor := m.nav.Cursor()
	if cursor < 0 || cursor >= len(m.entries) || m.pagerOps == nil {
		return nil
	}
	path := m.entries[cursor].Path
	return func() tea.Msg {
		data, err := os.ReadFile(path)
		if err != nil {
			return sourcePagerMsg{path: path, err: err}
		}
		return sourcePagerMsg{path: path, err: m.pagerOps.ShowInPager(string(data))}
	}
}

func (m *Model) helpPagerCmd() tea.Cmd {
	if m.pagerOps == nil {
		return nil
	}
	content := m.helpRenderer.RenderHelpContent()
	return func() tea.Msg {
		return helpPagerMsg{err: m.pagerOps.ShowInPager(content)}
	}
}

func navEntries(entries []domain.Entry) []domain.NavEntry {
	nav := make([]domain.NavEntry, len(entries))
	for i, e := range entries {
		nav[i] = e.NavEntry
	}
	return nav
}
