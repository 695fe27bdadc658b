package accordion

// SectionTracker records the visibility of sections that have been toggled.
// Untracked sections are expanded. The zero value is ready to use.
type SectionTracker[S comparable] struct {
	store visibilityStore[S]
}

// Visibility returns the visibility of section, Expanded when untracked.
func (t *SectionTracker[S]) Visibility(section S) Visibility {
	return t.store.get(section)
}

// SetVisibility records v for section.
func (t *SectionTracker[S]) SetVisibility(section S, v Visibility) {
	t.store.set(section, v)
}

// CollapsedSections returns every tracked section that is collapsed, in no
// particular order.
func (t *SectionTracker[S]) CollapsedSections() []S {
	return t.store.keysWithValue(Collapsed)
}

// Prune forgets every tracked section for which exists reports false.
func (t *SectionTracker[S]) Prune(exists func(S) bool) {
	for _, section := range t.store.keys() {
		if exists == nil || !exists(section) {
			t.store.remove(section)
		}
	}
}

// RowTracker records which rows are marked selected. It stores a set so the
// coordinator can detect and repair a second selection, but it does not
// enforce single selection itself. The zero value is ready to use.
type RowTracker[R comparable] struct {
	selected map[R]struct{}
}

// SelectedRow returns the selected row, if any.
func (t *RowTracker[R]) SelectedRow() (R, bool) {
	for row := range t.selected {
		return row, true
	}
	var zero R
	return zero, false
}

// IsSelected reports whether row is marked selected.
func (t *RowTracker[R]) IsSelected(row R) bool {
	_, ok := t.selected[row]
	return ok
}

// SetSelected marks row selected or clears its mark.
func (t *RowTracker[R]) SetSelected(row R, selected bool) {
	if !selected {
		delete(t.selected, row)
		return
	}
	if t.selected == nil {
		t.selected = make(map[R]struct{})
	}
	t.selected[row] = struct{}{}
}

// Len returns the number of rows marked selected.
func (t *RowTracker[R]) Len() int {
	return len(t.selected)
}

// Prune clears the mark of every row for which exists reports false.
func (t *RowTracker[R]) Prune(exists func(R) bool) {
	for row := range t.selected {
		if exists == nil || !exists(row) {
			delete(t.selected, row)
		}
	}
}
