package ui

import (
	"fmt"
	"strings"

	"github.com/five82/accordion/internal/accordion"
)

const (
	chromeLines = 3 // title, status and footer

	glyphExpanded   = "▾"
	glyphCollapsed  = "▸"
	glyphTransition = "›"
	glyphSelected   = "●"
	glyphUnselected = "○"
)

func (m Model) listHeight() int {
	return max(1, m.height-chromeLines)
}

// refreshViewport re-renders the list into the viewport and scrolls the
// cursor into view.
func (m *Model) refreshViewport() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(m.renderList())

	switch {
	case m.cursor < m.viewport.YOffset:
		m.viewport.SetYOffset(m.cursor)
	case m.cursor >= m.viewport.YOffset+m.viewport.Height:
		m.viewport.SetYOffset(m.cursor - m.viewport.Height + 1)
	}
}

// renderMain renders the full UI.
func (m Model) renderMain() string {
	var b strings.Builder
	b.WriteString(m.renderTitle())
	b.WriteString("\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	b.WriteString(m.renderStatus())
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

func (m Model) renderTitle() string {
	styles := m.theme.Styles()
	bg := newBgStyle(m.theme.Surface)

	parts := []string{bg.Render("accordion", styles.Title)}
	if source := m.sourceLabel(); source != "" {
		parts = append(parts, bg.Render(truncate(source, max(10, m.width/2)), styles.MutedText))
	}
	if !m.lastUpdated.IsZero() {
		parts = append(parts, bg.Render("updated "+m.lastUpdated.Format("15:04:05"), styles.FaintText))
	}
	return bg.FillLine(bg.Join(parts, "  "), m.width)
}

func (m Model) sourceLabel() string {
	if m.source == nil {
		return ""
	}
	label := m.source.Path
	if label == "" {
		label = "builtin catalog"
	}
	if f := m.source.Filter.String(); f != "" {
		label += " where " + f
	}
	return label
}

// renderList renders every list line, highlighting the cursor.
func (m Model) renderList() string {
	if len(m.view.lines) == 0 {
		return m.theme.Styles().MutedText.Render("  No departments to show.")
	}

	styles := m.theme.Styles()
	lines := make([]string, 0, len(m.view.lines))
	for i, l := range m.view.lines {
		text := m.lineText(l)
		switch {
		case i == m.cursor:
			lines = append(lines, styles.Cursor.Width(m.width).Render(text))
		case l.header:
			lines = append(lines, styles.Header.Width(m.width).Render(text))
		case m.view.isSelected(l):
			lines = append(lines, styles.Marker.Render(text))
		default:
			lines = append(lines, styles.Text.Render(text))
		}
	}
	return strings.Join(lines, "\n")
}

func (m Model) lineText(l line) string {
	if l.header {
		vis, moving := m.view.chevronFor(l.dept)
		glyph := glyphExpanded
		switch {
		case moving:
			glyph = glyphTransition
		case vis == accordion.Collapsed:
			glyph = glyphCollapsed
		}
		text := glyph + " " + l.dept.Title
		if m.prefs.ShowCounts {
			text += fmt.Sprintf(" (%d)", len(m.ctrl.Dataset().Rows(l.dept)))
		}
		return text
	}
	mark := glyphUnselected
	if m.view.isSelected(l) {
		mark = glyphSelected
	}
	return "    " + mark + " " + l.item.Title
}

// renderStatus shows the selection, list counts and the last load error.
func (m Model) renderStatus() string {
	styles := m.theme.Styles()
	bg := newBgStyle(m.theme.Surface)

	var parts []string
	if item, ok := m.ctrl.SelectedRow(); ok {
		label := item.Title
		if dept, ok := m.ctrl.Dataset().SectionOf(item); ok {
			label += " (" + dept.Title + ")"
		}
		parts = append(parts, bg.Render("Selected "+label, styles.SuccessText))
	} else {
		parts = append(parts, bg.Render("Nothing selected", styles.MutedText))
	}

	data := m.ctrl.Dataset()
	items, collapsed := 0, 0
	for _, dept := range data.Sections() {
		items += len(data.Rows(dept))
		if m.ctrl.Visibility(dept) == accordion.Collapsed {
			collapsed++
		}
	}
	parts = append(parts, bg.Render(
		fmt.Sprintf("%s in %s, %d collapsed", plural(items, "item"), plural(data.Len(), "department"), collapsed),
		styles.MutedText))

	if err := m.snapshot.LastError; err != nil {
		style := styles.WarningText
		if m.snapshot.IsStale() {
			style = styles.DangerText
		}
		parts = append(parts, bg.Render(truncate("load failed: "+err.Error(), max(20, m.width/2)), style))
	}
	return bg.FillLine(bg.Join(parts, "  "), m.width)
}

func (m Model) renderFooter() string {
	return m.theme.Styles().Footer.Width(m.width).Render(m.shortHelp())
}
