package accordion

import (
	"maps"
	"slices"
)

// Group is one section and its rows, in display order.
type Group[S, R comparable] struct {
	Section S
	Rows    []R
}

// Dataset is an ordered mapping from section to rows. Section order is the
// order the groups were given in.
//
// Row keys must be unique across the whole dataset, not only within their
// section. This is not checked.
type Dataset[S, R comparable] struct {
	groups     []Group[S, R]
	index      map[S]int
	rowSection map[R]S
}

// NewDataset builds a Dataset from groups. A section given twice keeps its
// first position and its last rows.
func NewDataset[S, R comparable](groups ...Group[S, R]) Dataset[S, R] {
	d := Dataset[S, R]{
		index:      make(map[S]int, len(groups)),
		rowSection: make(map[R]S),
	}
	for _, g := range groups {
		rows := slices.Clone(g.Rows)
		if i, ok := d.index[g.Section]; ok {
			d.groups[i].Rows = rows
			continue
		}
		d.index[g.Section] = len(d.groups)
		d.groups = append(d.groups, Group[S, R]{Section: g.Section, Rows: rows})
	}
	for _, g := range d.groups {
		for _, row := range g.Rows {
			d.rowSection[row] = g.Section
		}
	}
	return d
}

// DatasetFromMap builds a Dataset from an unordered map, ordering sections
// with cmp.
func DatasetFromMap[S, R comparable](m map[S][]R, cmp func(a, b S) int) Dataset[S, R] {
	sections := slices.Collect(maps.Keys(m))
	if cmp != nil {
		slices.SortFunc(sections, cmp)
	}
	groups := make([]Group[S, R], 0, len(sections))
	for _, s := range sections {
		groups = append(groups, Group[S, R]{Section: s, Rows: m[s]})
	}
	return NewDataset(groups...)
}

// Len returns the number of sections.
func (d Dataset[S, R]) Len() int {
	return len(d.groups)
}

// Sections returns the sections in order.
func (d Dataset[S, R]) Sections() []S {
	out := make([]S, len(d.groups))
	for i, g := range d.groups {
		out[i] = g.Section
	}
	return out
}

// Rows returns the rows of section, or nil when the section is unknown.
func (d Dataset[S, R]) Rows(section S) []R {
	i, ok := d.index[section]
	if !ok {
		return nil
	}
	return slices.Clone(d.groups[i].Rows)
}

// Groups returns a copy of the groups in order.
func (d Dataset[S, R]) Groups() []Group[S, R] {
	out := make([]Group[S, R], len(d.groups))
	for i, g := range d.groups {
		out[i] = Group[S, R]{Section: g.Section, Rows: slices.Clone(g.Rows)}
	}
	return out
}

// HasSection reports whether section is part of the dataset.
func (d Dataset[S, R]) HasSection(section S) bool {
	_, ok := d.index[section]
	return ok
}

// HasRow reports whether row is part of any section.
func (d Dataset[S, R]) HasRow(row R) bool {
	_, ok := d.rowSection[row]
	return ok
}

// SectionOf returns the section containing row.
func (d Dataset[S, R]) SectionOf(row R) (S, bool) {
	s, ok := d.rowSection[row]
	return s, ok
}

// Position addresses a visible row: the section index and the row index
// within that section.
type Position struct {
	Section int
	Row     int
}

// Snapshot is what the host view renders: every section in dataset order,
// with the rows of collapsed sections left out.
type Snapshot[S, R comparable] struct {
	groups []Group[S, R]
}

func buildSnapshot[S, R comparable](d Dataset[S, R], visibility func(S) Visibility) Snapshot[S, R] {
	groups := make([]Group[S, R], 0, len(d.groups))
	for _, g := range d.groups {
		out := Group[S, R]{Section: g.Section}
		if visibility(g.Section) == Expanded {
			out.Rows = slices.Clone(g.Rows)
		}
		groups = append(groups, out)
	}
	return Snapshot[S, R]{groups: groups}
}

// NewSnapshot returns a snapshot of groups as given. Hosts and tests use it;
// controllers build theirs from the dataset and visibility state.
func NewSnapshot[S, R comparable](groups ...Group[S, R]) Snapshot[S, R] {
	out := make([]Group[S, R], len(groups))
	for i, g := range groups {
		out[i] = Group[S, R]{Section: g.Section, Rows: slices.Clone(g.Rows)}
	}
	return Snapshot[S, R]{groups: out}
}

// Len returns the number of sections.
func (s Snapshot[S, R]) Len() int {
	return len(s.groups)
}

// Sections returns every section header in order.
func (s Snapshot[S, R]) Sections() []S {
	out := make([]S, len(s.groups))
	for i, g := range s.groups {
		out[i] = g.Section
	}
	return out
}

// SectionAt returns the section at index.
func (s Snapshot[S, R]) SectionAt(index int) (S, bool) {
	if index < 0 || index >= len(s.groups) {
		var zero S
		return zero, false
	}
	return s.groups[index].Section, true
}

// Rows returns the visible rows of section.
func (s Snapshot[S, R]) Rows(section S) []R {
	for _, g := range s.groups {
		if g.Section == section {
			return slices.Clone(g.Rows)
		}
	}
	return nil
}

// Groups returns a copy of the visible groups.
func (s Snapshot[S, R]) Groups() []Group[S, R] {
	return NewSnapshot(s.groups...).groups
}

// ItemCount returns the number of visible rows across all sections.
func (s Snapshot[S, R]) ItemCount() int {
	n := 0
	for _, g := range s.groups {
		n += len(g.Rows)
	}
	return n
}

// ItemAt returns the row at pos.
func (s Snapshot[S, R]) ItemAt(pos Position) (R, bool) {
	var zero R
	if pos.Section < 0 || pos.Section >= len(s.groups) {
		return zero, false
	}
	rows := s.groups[pos.Section].Rows
	if pos.Row < 0 || pos.Row >= len(rows) {
		return zero, false
	}
	return rows[pos.Row], true
}

// PositionOf returns where row is visible.
func (s Snapshot[S, R]) PositionOf(row R) (Position, bool) {
	for si, g := range s.groups {
		for ri, r := range g.Rows {
			if r == row {
				return Position{Section: si, Row: ri}, true
			}
		}
	}
	return Position{}, false
}
