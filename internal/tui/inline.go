package tui

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/dropsel/dropsel/internal/choice"
	"github.com/dropsel/dropsel/internal/widget"
)

// maxRenderedItems caps how many visible choices are materialized on screen
// at once. Filtering and selection operate on the full visible list; this is
// a rendering window only.
const maxRenderedItems = 40

// InlineList is the inline combobox surface: a search field over a windowed
// option list. Single mode collapses on pick; multi mode toggles in place.
type InlineList struct {
	ctrl   *widget.Controller
	search textinput.Model

	cursor int // index into the visible list
	offset int // first materialized row
	width  int
	height int

	// Screen position of the search field, for mouse hit testing.
	originX int
	originY int
}

// NewInlineList creates the inline surface for a controller.
func NewInlineList(ctrl *widget.Controller) *InlineList {
	search := textinput.New()
	search.Placeholder = "Type to filter..."
	search.Prompt = "/ "
	search.SetWidth(40)
	search.SetStyles(searchStyles())

	return &InlineList{
		ctrl:   ctrl,
		search: search,
		width:  60,
		height: 20,
	}
}

func searchStyles() textinput.Styles {
	return textinput.Styles{
		Focused: textinput.StyleState{
			Text:        lipgloss.NewStyle().Foreground(colorText),
			Placeholder: lipgloss.NewStyle().Foreground(colorSubtle),
			Prompt:      lipgloss.NewStyle().Foreground(colorPrimary),
		},
		Blurred: textinput.StyleState{
			Text:        lipgloss.NewStyle().Foreground(colorSubtle),
			Placeholder: lipgloss.NewStyle().Foreground(colorSubtle),
			Prompt:      lipgloss.NewStyle().Foreground(colorMuted),
		},
		Cursor: textinput.CursorStyle{
			Color: colorAccent,
			Shape: tea.CursorBar,
			Blink: true,
		},
	}
}

// Focus focuses the search field.
func (l *InlineList) Focus() tea.Cmd {
	return l.search.Focus()
}

// Reset clears local cursor/search state, mirroring the controller's query
// reset when the surface closes.
func (l *InlineList) Reset() {
	l.cursor = 0
	l.offset = 0
	l.search.SetValue("")
	l.search.Blur()
}

// SetSize updates the dimensions of the inline list.
func (l *InlineList) SetSize(width, height int) {
	l.width = width
	l.height = height
	l.search.SetWidth(width - 4)
}

// SetOrigin records where the surface was placed on screen. Rows are hit
// tested relative to it.
func (l *InlineList) SetOrigin(x, y int) {
	l.originX = x
	l.originY = y
}

// RowAt resolves a screen click to the visible choice on that row. The
// cursor follows the click.
func (l *InlineList) RowAt(x, y int) (choice.Choice, bool) {
	if x < l.originX || x >= l.originX+l.width {
		return choice.Choice{}, false
	}
	// Rows start below the search field and its separator line.
	localRow := y - (l.originY + 2)
	if localRow < 0 {
		return choice.Choice{}, false
	}
	idx := l.offset + localRow
	visible := l.ctrl.Visible()
	end := l.offset + l.windowRows()
	if end > len(visible) {
		end = len(visible)
	}
	if idx >= end {
		return choice.Choice{}, false
	}
	l.cursor = idx
	return visible[idx], true
}

// CursorChoice returns the visible choice under the cursor and whether one
// exists.
func (l *InlineList) CursorChoice() (choice.Choice, bool) {
	visible := l.ctrl.Visible()
	if l.cursor < 0 || l.cursor >= len(visible) {
		return choice.Choice{}, false
	}
	return visible[l.cursor], true
}

// Update handles navigation and search input. Option clicks themselves are
// dispatched by the app so channel errors surface in one place.
func (l *InlineList) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return nil
	}

	switch keyMsg.String() {
	case "up", "ctrl+p":
		if l.cursor > 0 {
			l.cursor--
		}
		l.scrollToCursor()
		return nil
	case "down", "ctrl+n":
		if l.cursor < len(l.ctrl.Visible())-1 {
			l.cursor++
		}
		l.scrollToCursor()
		return nil
	}

	// Everything else edits the search field; the filter re-evaluates on
	// every keystroke.
	var cmd tea.Cmd
	l.search, cmd = l.search.Update(msg)
	if l.search.Value() != l.ctrl.Query() {
		l.ctrl.SetQuery(l.search.Value())
		l.cursor = 0
		l.offset = 0
	}
	return cmd
}

// scrollToCursor keeps the cursor inside the materialized window.
func (l *InlineList) scrollToCursor() {
	rows := l.windowRows()
	if l.cursor < l.offset {
		l.offset = l.cursor
	}
	if l.cursor >= l.offset+rows {
		l.offset = l.cursor - rows + 1
	}
}

// windowRows is how many option rows are materialized: bounded by the
// window cap and the space the layout gives us.
func (l *InlineList) windowRows() int {
	rows := l.height - 3 // search field + padding
	if rows > maxRenderedItems {
		rows = maxRenderedItems
	}
	if rows < 1 {
		rows = 1
	}
	return rows
}

// View renders the search field and the windowed option list.
func (l *InlineList) View() string {
	var b strings.Builder

	b.WriteString(l.search.View())
	b.WriteString("\n\n")

	visible := l.ctrl.Visible()
	if len(visible) == 0 {
		b.WriteString(styleEmptyState.Render("No matching choices"))
		return b.String()
	}

	rows := l.windowRows()
	end := l.offset + rows
	if end > len(visible) {
		end = len(visible)
	}

	lines := make([]string, 0, end-l.offset)
	for i := l.offset; i < end; i++ {
		lines = append(lines, l.renderRow(visible[i], i == l.cursor))
	}
	b.WriteString(strings.Join(lines, "\n"))

	if remaining := len(visible) - end; remaining > 0 {
		b.WriteString("\n")
		b.WriteString(styleEmptyState.Render("… and more"))
	}

	return b.String()
}

func (l *InlineList) renderRow(c choice.Choice, underCursor bool) string {
	mark := "  "
	if l.ctrl.IsSelected(c.ID) {
		mark = styleCheckOn.Render("✓ ")
	} else if !c.Enabled {
		mark = styleCheckOff.Render("- ")
	}

	label := c.Label
	style := styleOption
	if !c.Enabled {
		style = styleOptionDisabled
	}
	if underCursor {
		style = styleOptionCursor
		label = "› " + label
	} else {
		label = "  " + label
	}

	return mark + style.Render(label)
}
