package filter

import (
	"testing"

	"github.com/dropsel/dropsel/internal/choice"
)

func testChoices() []choice.Choice {
	return []choice.Choice{
		{ID: "1", Label: "Red Apple", Enabled: true},
		{ID: "2", Label: "Green Apple", Enabled: true},
		{ID: "3", Label: "Banana", Enabled: true},
		{ID: "4", Label: "Blackberry", Enabled: false},
	}
}

func TestVisibleEmptyQueryReturnsAll(t *testing.T) {
	choices := testChoices()
	visible := Visible(choices, "")

	if len(visible) != len(choices) {
		t.Fatalf("expected %d choices, got %d", len(choices), len(visible))
	}
	for i, c := range visible {
		if c.ID != choices[i].ID {
			t.Errorf("position %d: got %s, want %s", i, c.ID, choices[i].ID)
		}
	}
}

func TestVisibleCaseInsensitiveSubstring(t *testing.T) {
	visible := Visible(testChoices(), "apple")
	if len(visible) != 2 {
		t.Fatalf("expected 2 matches for 'apple', got %d", len(visible))
	}
	if visible[0].ID != "1" || visible[1].ID != "2" {
		t.Errorf("matches out of registry order: %+v", visible)
	}

	visible = Visible(testChoices(), "BLACK")
	if len(visible) != 1 || visible[0].ID != "4" {
		t.Errorf("expected Blackberry for 'BLACK', got %+v", visible)
	}
}

func TestVisibleNoMatch(t *testing.T) {
	visible := Visible(testChoices(), "zzz")
	if len(visible) != 0 {
		t.Errorf("expected no matches, got %d", len(visible))
	}
}

func TestVisibleIdempotent(t *testing.T) {
	// Filtering the filtered output with the same query changes nothing.
	once := Visible(testChoices(), "apple")
	twice := Visible(once, "apple")

	if len(once) != len(twice) {
		t.Fatalf("filtering not idempotent: %d vs %d", len(once), len(twice))
	}
	for i := range once {
		if once[i].ID != twice[i].ID {
			t.Errorf("position %d differs: %s vs %s", i, once[i].ID, twice[i].ID)
		}
	}
}

func TestVisibleDoesNotAliasInput(t *testing.T) {
	choices := testChoices()
	visible := Visible(choices, "")
	visible[0].Label = "mutated"

	if choices[0].Label == "mutated" {
		t.Error("Visible should return a copy for the empty query")
	}
}
