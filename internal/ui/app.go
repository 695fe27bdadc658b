package ui

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/accordion/internal/accordion"
	"github.com/five82/accordion/internal/catalog"
	"github.com/five82/accordion/internal/prefs"
	"github.com/five82/accordion/internal/state"
)

const defaultPollTick = 250 * time.Millisecond

// Options configures the UI.
type Options struct {
	Context   context.Context
	Store     *state.Store
	Source    *catalog.Source // used for sampled reloads; nil disables them
	Animation time.Duration
	PollTick  time.Duration
	Prefs     prefs.Prefs
	PrefsPath string
}

// renderState serializes dataset updates: a new store version is only handed
// to the controller after the previous render completed.
type renderState struct {
	version uint64
	busy    bool
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	store     *state.Store
	source    *catalog.Source
	prefsPath string
	pollTick  time.Duration
	keys      keyMap

	// UI state
	theme    Theme
	prefs    prefs.Prefs
	width    int
	height   int
	ready    bool
	showHelp bool
	viewport viewport.Model

	// List state
	ctrl   *controller
	view   *listView
	render *renderState
	cursor int

	// Data state
	snapshot    state.Snapshot
	lastUpdated time.Time
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	pollTick := opts.PollTick
	if pollTick <= 0 {
		pollTick = defaultPollTick
	}

	p := opts.Prefs
	if p.Theme == "" {
		p.Theme = prefs.Defaults().Theme
	}

	view := newListView()
	ctrl := accordion.New[catalog.Department, catalog.Item](view, accordion.Options[catalog.Department]{
		AnimationDuration: opts.Animation,
		Headers:           view,
	})
	view.sink = ctrl
	view.animation = ctrl.AnimationDuration()

	return Model{
		ctx:       ctx,
		store:     opts.Store,
		source:    opts.Source,
		prefsPath: opts.PrefsPath,
		pollTick:  pollTick,
		keys:      DefaultKeyMap(),
		theme:     GetTheme(p.Theme),
		prefs:     p,
		ctrl:      ctrl,
		view:      view,
		render:    &renderState{},
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{tickCmd(m.pollTick)}
	if m.store != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.store))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.viewport = viewport.New(msg.Width, m.listHeight())
		}
		m.ready = true
		m.viewport.Width = msg.Width
		m.viewport.Height = m.listHeight()
		m.refreshViewport()
		return m, nil

	case tickMsg:
		return m.handleTick()

	case snapshotMsg:
		return m.applySnapshot(state.Snapshot(msg))

	case renderDoneMsg:
		if msg.done != nil {
			msg.done()
		}
		m.refreshViewport()
		return m, m.view.drain()

	case chevronSettledMsg:
		m.refreshViewport()
		return m, nil
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	return m.renderMain()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	var cmd tea.Cmd
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.prefs.Theme = m.theme.Name
		m.savePrefs()

	case key.Matches(msg, m.keys.ToggleInfo):
		m.prefs.ShowCounts = !m.prefs.ShowCounts
		m.savePrefs()

	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)
	case key.Matches(msg, m.keys.Top):
		m.cursor = 0
	case key.Matches(msg, m.keys.Bottom):
		m.cursor = len(m.view.lines) - 1
	case key.Matches(msg, m.keys.HalfPageUp):
		m.moveCursor(-max(1, m.viewport.Height/2))
	case key.Matches(msg, m.keys.HalfPageDown):
		m.moveCursor(max(1, m.viewport.Height/2))

	case key.Matches(msg, m.keys.Select):
		m.selectAtCursor()

	case key.Matches(msg, m.keys.ToggleSection):
		m.toggleSectionAtCursor()

	case key.Matches(msg, m.keys.Deselect):
		m.ctrl.DeselectSelectedRow()

	case key.Matches(msg, m.keys.JumpSelected):
		m.jumpToSelected()

	case key.Matches(msg, m.keys.Reload):
		if m.store != nil && m.source != nil {
			cmd = reloadCmd(m.store, m.source)
		}
	}

	m.clampCursor()
	m.refreshViewport()
	return m, tea.Batch(cmd, m.view.drain())
}

func (m *Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	_ = prefs.Save(m.prefsPath, m.prefs)
}

// handleTick processes the polling tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	if m.store != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.store))
	}
	if m.ctx.Err() != nil {
		return m, tea.Quit
	}
	cmds = append(cmds, tickCmd(m.pollTick))
	return m, tea.Batch(cmds...)
}

// applySnapshot records the latest store state and hands a new catalog
// version to the controller when no render is in flight.
func (m Model) applySnapshot(snap state.Snapshot) (tea.Model, tea.Cmd) {
	m.snapshot = snap
	if !snap.HasCatalog || snap.Version == m.render.version || m.render.busy {
		return m, nil
	}
	m.lastUpdated = time.Now()

	current, hasCurrent := m.currentLine()
	first := m.render.version == 0
	m.render.version = snap.Version
	m.render.busy = true

	rs := m.render
	m.ctrl.Update(snap.Catalog.Dataset(), !first, func() { rs.busy = false })
	m.syncHeaders()

	if hasCurrent {
		m.restoreCursor(current)
	}
	m.clampCursor()
	m.refreshViewport()
	return m, m.view.drain()
}

// syncHeaders asks the controller for every header the view has no
// indicator for yet.
func (m *Model) syncHeaders() {
	data := m.ctrl.Dataset()
	for i, dept := range data.Sections() {
		if _, known := m.view.chevrons[dept]; !known {
			m.ctrl.Header(i)
		}
	}
}

func (m *Model) currentLine() (line, bool) {
	if m.cursor < 0 || m.cursor >= len(m.view.lines) {
		return line{}, false
	}
	return m.view.lines[m.cursor], true
}

func (m *Model) restoreCursor(want line) {
	if i, ok := m.view.find(want); ok {
		m.cursor = i
	}
}

func (m *Model) moveCursor(delta int) {
	m.cursor += delta
}

func (m *Model) clampCursor() {
	if m.cursor >= len(m.view.lines) {
		m.cursor = len(m.view.lines) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// selectAtCursor picks the item under the cursor, or toggles the department
// when the cursor is on a header.
func (m *Model) selectAtCursor() {
	l, ok := m.currentLine()
	if !ok {
		return
	}
	if l.header {
		m.toggleSectionAtCursor()
		return
	}
	m.view.selectAt(l.pos)
}

func (m *Model) toggleSectionAtCursor() {
	l, ok := m.currentLine()
	if !ok {
		return
	}
	m.ctrl.HeaderTapped(l.dept)
	m.restoreCursor(line{header: true, dept: l.dept})
}

func (m *Model) jumpToSelected() {
	pos, ok := m.ctrl.SelectedPosition()
	if !ok {
		return
	}
	for i, l := range m.view.lines {
		if !l.header && l.pos == pos {
			m.cursor = i
			return
		}
	}
}

// Messages

type tickMsg time.Time

type snapshotMsg state.Snapshot

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func fetchSnapshotCmd(store *state.Store) tea.Cmd {
	return func() tea.Msg {
		return snapshotMsg(store.Snapshot())
	}
}

// reloadCmd fetches a random sample of the catalog into the store.
func reloadCmd(store *state.Store, source *catalog.Source) tea.Cmd {
	return func() tea.Msg {
		cat, err := source.Fetch(true)
		if err != nil {
			store.Update(nil, err)
		} else {
			store.Update(&cat, nil)
		}
		return snapshotMsg(store.Snapshot())
	}
}

// Run starts the Bubble Tea program and blocks until the user quits or the
// context is cancelled.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(m.ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && m.ctx.Err() != nil {
		return nil
	}
	return err
}
