package tui

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/dropsel/dropsel/internal/selection"
)

// Footer renders the bottom hint bar. The hints change with the active
// surface and selection mode.
type Footer struct {
	width    int
	mode     selection.Mode
	inDialog bool
}

// NewFooter creates the footer for the given selection mode.
func NewFooter(mode selection.Mode) *Footer {
	return &Footer{mode: mode, width: 80}
}

// SetSize updates the footer width.
func (f *Footer) SetSize(width int) {
	f.width = width
}

// SetDialogOpen switches between inline and dialog hint sets.
func (f *Footer) SetDialogOpen(open bool) {
	f.inDialog = open
}

type hint struct {
	key   string
	label string
}

func (f *Footer) hints() []hint {
	if f.inDialog {
		hints := []hint{
			{"space", "Toggle"},
			{"enter", "Select"},
			{"esc", "Cancel"},
		}
		if f.mode == selection.Multi {
			hints = append(hints,
				hint{"ctrl+a", "All"},
				hint{"ctrl+d", "None"},
			)
		}
		return hints
	}

	hints := []hint{
		{"↑/↓", "Move"},
		{"enter", "Pick"},
	}
	if f.mode == selection.Multi {
		hints = append(hints,
			hint{"ctrl+a", "All"},
			hint{"ctrl+d", "None"},
		)
	}
	// Printable keys belong to the search field, so the global chords are
	// all ctrl-modified.
	hints = append(hints,
		hint{"ctrl+e", "Edit"},
		hint{"ctrl+g", "Help"},
		hint{"esc", "Quit"},
	)
	return hints
}

// View renders the hint bar, condensing when the terminal is narrow.
func (f *Footer) View() string {
	parts := make([]string, 0, 8)
	for _, h := range f.hints() {
		parts = append(parts, styleFooterKey.Render("["+h.key+"]")+" "+styleFooterLabel.Render(h.label))
	}
	content := strings.Join(parts, "  ")

	if lipgloss.Width(content) > f.width {
		// Keys only for narrow terminals.
		keys := make([]string, 0, 8)
		for _, h := range f.hints() {
			keys = append(keys, styleFooterKey.Render("["+h.key+"]"))
		}
		content = strings.Join(keys, " ")
	}

	return styleFooter.Render(content)
}
