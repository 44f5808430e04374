package tui

import (
	"charm.land/glamour/v2"
	"charm.land/lipgloss/v2"
)

const helpMarkdown = `# dropsel

Filter, pick, and sync choices.

## Inline list

| Key | Action |
|-----|--------|
| type | Filter choices |
| up/down | Move cursor |
| enter | Pick under cursor |
| ctrl+e | Edit the choices file |
| ctrl+g | Toggle this help |
| esc | Quit |

In multi mode, picking toggles the choice in place and ` + "`ctrl+a`" + ` /
` + "`ctrl+d`" + ` select or deselect everything the filter shows. Disabled
choices only ever toggle off.

## Dialog

Large choice sets open in a dialog. Edits there are staged: **Select**
applies them all at once, **Cancel** (or closing the dialog) discards
them and restores the previous selection.
`

// Help renders the glamour-formatted help overlay.
type Help struct {
	width    int
	height   int
	rendered string
}

// NewHelp creates the help overlay.
func NewHelp() *Help {
	return &Help{width: 80, height: 24}
}

// SetSize re-renders the markdown for the new width.
func (h *Help) SetSize(width, height int) {
	h.width = width
	h.height = height
	h.rendered = ""
}

// View renders the help text centered on screen.
func (h *Help) View() string {
	if h.rendered == "" {
		wrap := h.width - 12
		if wrap > 72 {
			wrap = 72
		}
		if wrap < 30 {
			wrap = 30
		}

		r, err := glamour.NewTermRenderer(
			glamour.WithEnvironmentConfig(),
			glamour.WithWordWrap(wrap),
		)
		if err == nil {
			if out, rerr := r.Render(helpMarkdown); rerr == nil {
				h.rendered = out
			}
		}
		if h.rendered == "" {
			// Raw markdown still beats a blank screen.
			h.rendered = helpMarkdown
		}
	}

	boxed := styleDialogBorder.Render(h.rendered)
	return lipgloss.Place(h.width, h.height,
		lipgloss.Center, lipgloss.Center,
		boxed,
	)
}
