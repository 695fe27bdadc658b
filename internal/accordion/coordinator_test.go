package accordion

import "testing"

func groceries() Dataset[string, string] {
	return NewDataset(
		Group[string, string]{Section: "Fruit", Rows: []string{"Banana", "Cherry"}},
		Group[string, string]{Section: "Meats", Rows: []string{"Lamb"}},
		Group[string, string]{Section: "Vegetables", Rows: []string{"Cabbage", "Asparagus"}},
	)
}

// newTestCoordinator returns a coordinator reading from *data, so tests can
// swap the dataset underneath it.
func newTestCoordinator(data *Dataset[string, string]) *Coordinator[string, string] {
	return NewCoordinator(Lookup[string, string]{
		RowsInSection: func(s string) []string { return data.Rows(s) },
		SectionExists: func(s string) bool { return data.HasSection(s) },
		RowExists:     func(r string) bool { return data.HasRow(r) },
	})
}

func TestCoordinator_ToggleVisibilityRestoresAfterPair(t *testing.T) {
	data := groceries()
	c := newTestCoordinator(&data)

	for _, start := range []Visibility{Expanded, Collapsed} {
		if c.Visibility("Fruit") != start {
			c.ToggleVisibility("Fruit")
		}
		c.ToggleVisibility("Fruit")
		c.ToggleVisibility("Fruit")
		if got := c.Visibility("Fruit"); got != start {
			t.Fatalf("after two toggles Visibility = %v, want %v", got, start)
		}
	}
}

func TestCoordinator_ToggleSelection(t *testing.T) {
	data := groceries()
	c := newTestCoordinator(&data)

	if !c.ToggleSelection("Banana") {
		t.Fatalf("ToggleSelection(Banana) = false, want true")
	}
	if row, ok := c.SelectedRow(); !ok || row != "Banana" {
		t.Fatalf("SelectedRow() = %q, %v, want Banana", row, ok)
	}
	if c.ToggleSelection("Banana") {
		t.Fatalf("second ToggleSelection(Banana) = true, want false")
	}
	if _, ok := c.SelectedRow(); ok {
		t.Fatalf("SelectedRow() after deselect reported a row")
	}
}

func TestCoordinator_HiddenSelectionIsCleared(t *testing.T) {
	data := groceries()
	c := newTestCoordinator(&data)

	c.ToggleSelection("Banana")
	c.ToggleVisibility("Fruit")

	if !c.ToggleSelection("Lamb") {
		t.Fatalf("ToggleSelection(Lamb) = false, want true")
	}
	if c.IsSelected("Banana") {
		t.Fatalf("Banana still selected after selecting Lamb with Fruit collapsed")
	}
	if row, _ := c.SelectedRow(); row != "Lamb" {
		t.Fatalf("SelectedRow() = %q, want Lamb", row)
	}
}

func TestCoordinator_VisiblePreviousSelectionLeftToHost(t *testing.T) {
	data := groceries()
	c := newTestCoordinator(&data)

	c.ToggleSelection("Banana")
	c.ToggleSelection("Lamb")

	// Fruit is expanded, so deselecting Banana is the host's job.
	if !c.IsSelected("Banana") {
		t.Fatalf("Banana cleared by coordinator, want it left for the host")
	}
	c.MarkDeselected("Banana")
	if row, _ := c.SelectedRow(); row != "Lamb" {
		t.Fatalf("SelectedRow() = %q, want Lamb", row)
	}
}

func TestCoordinator_SelectingInsideCollapsedSectionKeepsRow(t *testing.T) {
	data := groceries()
	c := newTestCoordinator(&data)

	c.ToggleVisibility("Fruit")
	if !c.ToggleSelection("Cherry") {
		t.Fatalf("ToggleSelection(Cherry) = false, want true")
	}
	if !c.IsSelected("Cherry") {
		t.Fatalf("the just-selected row was cleared by hidden reconciliation")
	}
}

func TestCoordinator_CleanPrunesRemovedKeys(t *testing.T) {
	data := groceries()
	c := newTestCoordinator(&data)

	c.ToggleVisibility("Meats")
	c.ToggleVisibility("Fruit")
	c.ToggleSelection("Lamb")

	data = NewDataset(
		Group[string, string]{Section: "Fruit", Rows: []string{"Banana", "Cherry"}},
	)
	c.Clean()

	if got := c.Visibility("Meats"); got != Expanded {
		t.Fatalf("Visibility(Meats) after clean = %v, want default", got)
	}
	if got := c.Visibility("Fruit"); got != Collapsed {
		t.Fatalf("Visibility(Fruit) after clean = %v, want %v", got, Collapsed)
	}
	if _, ok := c.SelectedRow(); ok {
		t.Fatalf("SelectedRow() after Lamb removed reported a row")
	}
}

func TestCoordinator_NilLookupTreatsDatasetAsEmpty(t *testing.T) {
	c := NewCoordinator(Lookup[string, string]{})
	c.ToggleVisibility("Fruit")
	c.ToggleSelection("Banana")
	c.ToggleVisibility("Fruit")
	c.ToggleSelection("Lamb")

	c.Clean()
	if len(c.CollapsedSections()) != 0 {
		t.Fatalf("CollapsedSections() = %v, want none", c.CollapsedSections())
	}
	if _, ok := c.SelectedRow(); ok {
		t.Fatalf("SelectedRow() reported a row with empty lookup")
	}
}
