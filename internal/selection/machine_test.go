package selection

import (
	"testing"

	"github.com/dropsel/dropsel/internal/choice"
	"github.com/dropsel/dropsel/internal/filter"
)

func testRegistry() *choice.Registry {
	return choice.NewRegistry([]choice.Choice{
		{ID: "A", Label: "Alpha", Enabled: true},
		{ID: "B", Label: "Beta", Enabled: true},
		{ID: "C", Label: "Gamma", Enabled: true},
		{ID: "D", Label: "Delta (locked)", Enabled: false},
	})
}

func strptr(s string) *string { return &s }

func TestSingleModeHoldsAtMostOneID(t *testing.T) {
	m := NewMachine(Single, testRegistry())
	m.Initialize(SingleValue(strptr("A")))

	m.SelectSingle("B")
	m.SelectSingle("C")

	v := m.Committed()
	if v.Single == nil || *v.Single != "C" {
		t.Fatalf("expected committed C, got %v", v.Payload())
	}
}

func TestSingleModeAbsentVsEmptyString(t *testing.T) {
	m := NewMachine(Single, testRegistry())

	m.Initialize(SingleValue(nil))
	if m.Committed().Payload() != nil {
		t.Error("absent selection should report nil")
	}

	m.ApplyControlledUpdate(SingleValue(strptr("")))
	if got := m.Committed().Payload(); got != "" {
		t.Errorf("empty-string selection should report \"\", got %v", got)
	}
}

func TestApplyControlledUpdateDiscardsProvisional(t *testing.T) {
	m := NewMachine(Multi, testRegistry())
	m.Initialize(MultiValue([]string{"A"}))

	m.BeginProvisional()
	m.ToggleProvisional("B")
	m.ToggleProvisional("C")

	// Host pushes a new value mid-dialog: it wins, edits are dropped.
	m.ApplyControlledUpdate(MultiValue([]string{"C"}))

	if m.HasProvisional() {
		t.Error("controlled update should discard provisional selection")
	}
	got := m.Committed().Multi
	if len(got) != 1 || got[0] != "C" {
		t.Errorf("expected committed [C], got %v", got)
	}
}

func TestUnknownIDsPassThroughInArrivalOrder(t *testing.T) {
	m := NewMachine(Multi, testRegistry())
	m.Initialize(MultiValue([]string{"zz", "B", "yy", "A"}))

	got := m.Committed().Multi
	want := []string{"A", "B", "zz", "yy"} // registry order, then unknowns verbatim
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestProvisionalLifecycle(t *testing.T) {
	m := NewMachine(Multi, testRegistry())
	m.Initialize(MultiValue([]string{"A"}))

	t.Run("cancel restores committed bit for bit", func(t *testing.T) {
		m.BeginProvisional()
		m.ToggleProvisional("B")
		m.ToggleProvisional("C")
		m.ToggleProvisional("A")
		m.DiscardProvisional()

		got := m.Committed().Multi
		if len(got) != 1 || got[0] != "A" {
			t.Errorf("cancel must leave committed untouched, got %v", got)
		}
		if m.HasProvisional() {
			t.Error("provisional should be gone after discard")
		}
	})

	t.Run("commit promotes the working copy", func(t *testing.T) {
		m.BeginProvisional()
		m.ToggleProvisional("B")
		m.CommitProvisional()

		got := m.Committed().Multi
		if len(got) != 2 || got[0] != "A" || got[1] != "B" {
			t.Errorf("expected [A B], got %v", got)
		}
		if m.HasProvisional() {
			t.Error("provisional should be gone after commit")
		}
	})

	t.Run("commit without begin is a no-op", func(t *testing.T) {
		before := m.Committed()
		m.CommitProvisional()
		if !m.Committed().Equal(before) {
			t.Error("stray commit changed committed selection")
		}
	})
}

func TestToggleDisabledUnselectedIsNoop(t *testing.T) {
	m := NewMachine(Multi, testRegistry())
	m.BeginProvisional()

	m.ToggleProvisional("D") // disabled, not selected
	if m.IsSelected("D") {
		t.Error("disabled unselected choice must not toggle on")
	}
}

func TestToggleDisabledSelectedTogglesOff(t *testing.T) {
	m := NewMachine(Multi, testRegistry())
	m.Initialize(MultiValue([]string{"D"}))
	m.BeginProvisional()

	m.ToggleProvisional("D")
	if m.IsSelected("D") {
		t.Error("already-selected disabled choice should toggle off")
	}
}

func TestSelectAllVisibleAdditiveOverVisibleSubset(t *testing.T) {
	reg := testRegistry()
	m := NewMachine(Multi, reg)
	m.Initialize(MultiValue([]string{"C"})) // outside the filtered set below

	// Filter down to labels containing "a" -> Alpha, Beta, Gamma, Delta
	// Use a narrower query instead: "et" -> Beta only.
	visible := filter.Visible(reg.Choices(), "et")
	if len(visible) != 1 || visible[0].ID != "B" {
		t.Fatalf("fixture: expected visible [B], got %v", visible)
	}

	m.SelectAllVisible(visible)
	got := m.Committed().Multi
	if len(got) != 2 || got[0] != "B" || got[1] != "C" {
		t.Errorf("expected [B C], got %v", got)
	}
}

func TestSelectAllVisibleSkipsDisabled(t *testing.T) {
	reg := testRegistry()
	m := NewMachine(Multi, reg)

	m.SelectAllVisible(reg.Choices())
	got := m.Committed().Multi
	for _, id := range got {
		if id == "D" {
			t.Error("select-all must not pick up disabled choices")
		}
	}
	if len(got) != 3 {
		t.Errorf("expected all enabled choices selected, got %v", got)
	}
}

func TestDeselectAllVisibleRemovesExactlyVisibleEnabled(t *testing.T) {
	reg := testRegistry()
	m := NewMachine(Multi, reg)
	m.Initialize(MultiValue([]string{"A", "B", "C", "D"}))

	visible := filter.Visible(reg.Choices(), "a") // Alpha, Beta(no), Gamma, Delta... label match
	m.DeselectAllVisible(visible)

	// Whatever matched "a" among enabled labels is gone; D (disabled) and
	// anything not visible survive.
	if !m.IsSelected("D") {
		t.Error("disabled selected choice must survive deselect-all")
	}
	for _, c := range visible {
		if c.Enabled && m.IsSelected(c.ID) {
			t.Errorf("visible enabled %s should have been deselected", c.ID)
		}
	}
}

func TestBulkOpsTargetProvisionalWhileDialogOpen(t *testing.T) {
	reg := testRegistry()
	m := NewMachine(Multi, reg)
	m.Initialize(MultiValue([]string{"A"}))

	m.BeginProvisional()
	m.SelectAllVisible(reg.Choices())

	// Committed unchanged until commit.
	committed := m.Committed().Multi
	if len(committed) != 1 || committed[0] != "A" {
		t.Errorf("bulk op leaked into committed: %v", committed)
	}

	prov := m.Provisional()
	if len(prov) != 3 {
		t.Errorf("expected 3 provisional ids, got %v", prov)
	}
}

func TestSingleModeDialogCommit(t *testing.T) {
	m := NewMachine(Single, testRegistry())
	m.Initialize(SingleValue(strptr("A")))

	m.BeginProvisional()
	m.SelectSingle("B")

	if m.HasProvisional() {
		t.Error("single select should close out the provisional snapshot")
	}
	if got := m.Committed().Payload(); got != "B" {
		t.Errorf("expected B, got %v", got)
	}
}

func TestDuplicateRegistryIDsDoNotDuplicateReport(t *testing.T) {
	reg := choice.NewRegistry([]choice.Choice{
		{ID: "x", Label: "First", Enabled: true},
		{ID: "x", Label: "Second", Enabled: true},
		{ID: "y", Label: "Other", Enabled: true},
	})
	m := NewMachine(Multi, reg)
	m.Initialize(MultiValue([]string{"x", "y"}))

	got := m.Committed().Multi
	if len(got) != 2 || got[0] != "x" || got[1] != "y" {
		t.Errorf("duplicate registry ids must report once: %v", got)
	}
}

func TestValueEqual(t *testing.T) {
	if !SingleValue(nil).Equal(SingleValue(nil)) {
		t.Error("absent == absent")
	}
	if SingleValue(nil).Equal(SingleValue(strptr(""))) {
		t.Error("absent != empty string")
	}
	if !MultiValue(nil).Equal(MultiValue([]string{})) {
		t.Error("nil and empty multi values compare equal")
	}
	if MultiValue([]string{"a", "b"}).Equal(MultiValue([]string{"b", "a"})) {
		t.Error("multi comparison is order-sensitive")
	}
}
