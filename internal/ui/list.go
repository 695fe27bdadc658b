package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/accordion/internal/accordion"
	"github.com/five82/accordion/internal/catalog"
)

type (
	snapshot   = accordion.Snapshot[catalog.Department, catalog.Item]
	controller = accordion.Controller[catalog.Department, catalog.Item]
	eventSink  = accordion.EventSink[catalog.Department, catalog.Item]
)

// line is one rendered line of the list: a department header or an item.
type line struct {
	header bool
	dept   catalog.Department
	item   catalog.Item
	pos    accordion.Position // items only
}

// chevron is the expand/collapse indicator of one header.
type chevron struct {
	visibility accordion.Visibility
	until      time.Time // transition end; zero when not animating
}

// listView is the terminal list widget the accordion controller drives. It
// keeps the rendered snapshot, the visual selection and the header
// indicators, and queues tea commands for work that must finish later.
type listView struct {
	sink      eventSink
	animation time.Duration

	snap     snapshot
	lines    []line
	selected accordion.Position
	hasSel   bool

	chevrons map[catalog.Department]chevron
	pending  []tea.Cmd
	now      func() time.Time
}

func newListView() *listView {
	return &listView{
		animation: accordion.DefaultAnimationDuration,
		chevrons:  make(map[catalog.Department]chevron),
		now:       time.Now,
	}
}

// renderDoneMsg completes a render once its animation has elapsed.
type renderDoneMsg struct {
	done func()
}

// chevronSettledMsg repaints headers after their transition.
type chevronSettledMsg struct{}

// Render implements accordion.HostView. Positions change with every
// snapshot, so the visual selection is dropped and rebuilt from
// RowWillDisplay calls for every visible item.
func (v *listView) Render(snap snapshot, animated bool, done func()) {
	v.snap = snap
	v.hasSel = false
	v.rebuildLines()
	v.pruneChevrons()

	v.pending = append(v.pending, renderDoneCmd(animated, v.animation, done))

	if v.sink == nil {
		return
	}
	for _, l := range v.lines {
		if !l.header {
			v.sink.RowWillDisplay(l.item)
		}
	}
}

func renderDoneCmd(animated bool, d time.Duration, done func()) tea.Cmd {
	if !animated || d <= 0 {
		return func() tea.Msg { return renderDoneMsg{done: done} }
	}
	return tea.Tick(d, func(time.Time) tea.Msg { return renderDoneMsg{done: done} })
}

// ItemAt implements accordion.HostView.
func (v *listView) ItemAt(pos accordion.Position) (catalog.Item, bool) {
	return v.snap.ItemAt(pos)
}

// PositionOf implements accordion.HostView.
func (v *listView) PositionOf(item catalog.Item) (accordion.Position, bool) {
	return v.snap.PositionOf(item)
}

// SelectAt implements accordion.HostView.
func (v *listView) SelectAt(pos accordion.Position) {
	if _, ok := v.snap.ItemAt(pos); !ok {
		return
	}
	v.selected, v.hasSel = pos, true
}

// DeselectAt implements accordion.HostView.
func (v *listView) DeselectAt(pos accordion.Position) {
	if v.hasSel && v.selected == pos {
		v.hasSel = false
	}
}

// VisibilityChanged implements accordion.HeaderObserver.
func (v *listView) VisibilityChanged(dept catalog.Department, vis accordion.Visibility, d time.Duration) {
	c := chevron{visibility: vis}
	if d > 0 {
		c.until = v.now().Add(d)
		v.pending = append(v.pending, tea.Tick(d, func(time.Time) tea.Msg { return chevronSettledMsg{} }))
	}
	v.chevrons[dept] = c
}

// chevronFor returns the indicator state of dept and whether it is mid
// transition.
func (v *listView) chevronFor(dept catalog.Department) (accordion.Visibility, bool) {
	c, ok := v.chevrons[dept]
	if !ok {
		return accordion.Expanded, false
	}
	return c.visibility, !c.until.IsZero() && v.now().Before(c.until)
}

// selectAt is a user pick of the item at pos. In single-selection mode a
// different visible selection is dropped and reported first.
func (v *listView) selectAt(pos accordion.Position) {
	item, ok := v.snap.ItemAt(pos)
	if !ok || v.sink == nil {
		return
	}
	if v.hasSel && v.selected != pos {
		prev, ok := v.snap.ItemAt(v.selected)
		v.hasSel = false
		if ok {
			v.sink.RowDeselected(prev)
		}
	}
	v.selected, v.hasSel = pos, true
	if selected, ok := v.sink.RowSelected(item); !selected || !ok {
		v.DeselectAt(pos)
	}
}

func (v *listView) rebuildLines() {
	v.lines = v.lines[:0]
	for si, g := range v.snap.Groups() {
		v.lines = append(v.lines, line{header: true, dept: g.Section})
		for ri, item := range g.Rows {
			v.lines = append(v.lines, line{
				dept: g.Section,
				item: item,
				pos:  accordion.Position{Section: si, Row: ri},
			})
		}
	}
}

func (v *listView) pruneChevrons() {
	keep := make(map[catalog.Department]struct{}, v.snap.Len())
	for _, dept := range v.snap.Sections() {
		keep[dept] = struct{}{}
	}
	for dept := range v.chevrons {
		if _, ok := keep[dept]; !ok {
			delete(v.chevrons, dept)
		}
	}
}

// isSelected reports whether l is the visually selected item.
func (v *listView) isSelected(l line) bool {
	return !l.header && v.hasSel && v.selected == l.pos
}

// find returns the index of the line showing the same header or item as
// want, falling back to the header of its department.
func (v *listView) find(want line) (int, bool) {
	header := -1
	for i, l := range v.lines {
		if l.header != want.header || l.dept != want.dept {
			if l.header && l.dept == want.dept {
				header = i
			}
			continue
		}
		if l.header || l.item == want.item {
			return i, true
		}
	}
	if header >= 0 {
		return header, true
	}
	return 0, false
}

// drain returns and clears the queued commands.
func (v *listView) drain() tea.Cmd {
	if len(v.pending) == 0 {
		return nil
	}
	cmds := v.pending
	v.pending = nil
	return tea.Batch(cmds...)
}
