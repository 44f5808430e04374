package tui

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/dropsel/dropsel/internal/choice"
	"github.com/dropsel/dropsel/internal/widget"
)

// hitArea is a clickable screen region in terminal cells.
type hitArea struct {
	x, y, w, h int
}

func (a hitArea) contains(x, y int) bool {
	return x >= a.x && x < a.x+a.w && y >= a.y && y < a.y+a.h
}

// Dialog is the modal checklist surface. Edits stage against the
// controller's provisional snapshot; nothing commits until Select.
type Dialog struct {
	ctrl   *widget.Controller
	search textinput.Model

	cursor int
	offset int
	width  int
	height int

	// focusButtons moves keyboard focus from the list to the button row.
	focusButtons bool
	selectFocus  bool // true = Select focused, false = Cancel

	// Hit areas recomputed on every View pass.
	rowAreas   []hitArea
	selectArea hitArea
	cancelArea hitArea
}

// NewDialog creates the dialog surface for a controller.
func NewDialog(ctrl *widget.Controller) *Dialog {
	search := textinput.New()
	search.Placeholder = "Type to filter..."
	search.Prompt = "/ "
	search.SetWidth(40)
	search.SetStyles(searchStyles())

	return &Dialog{
		ctrl:        ctrl,
		search:      search,
		selectFocus: true,
		width:       80,
		height:      24,
	}
}

// Focus focuses the search field when the dialog opens.
func (d *Dialog) Focus() tea.Cmd {
	d.focusButtons = false
	d.selectFocus = true
	return d.search.Focus()
}

// Reset clears local state after the dialog closes. The controller already
// cleared the query; the search field has to follow.
func (d *Dialog) Reset() {
	d.cursor = 0
	d.offset = 0
	d.focusButtons = false
	d.selectFocus = true
	d.search.SetValue("")
	d.search.Blur()
}

// SetSize updates the dialog dimensions.
func (d *Dialog) SetSize(width, height int) {
	d.width = width
	d.height = height

	sw := d.modalWidth() - 8
	if sw < 10 {
		sw = 10
	}
	d.search.SetWidth(sw)
}

// CursorChoice returns the visible choice under the cursor and whether one
// exists.
func (d *Dialog) CursorChoice() (choice.Choice, bool) {
	visible := d.ctrl.Visible()
	if d.cursor < 0 || d.cursor >= len(visible) {
		return choice.Choice{}, false
	}
	return visible[d.cursor], true
}

// dialogAction tells the app which controller operation a key or click asks
// for. The app owns dispatch so channel errors surface in one place.
type dialogAction int

const (
	dialogNone dialogAction = iota
	dialogToggle
	dialogSubmit
	dialogCancel
	dialogSelectAll
	dialogDeselectAll
)

// Update handles navigation, search, and focus movement. It returns the
// action the app should dispatch, if any.
func (d *Dialog) Update(msg tea.Msg) (dialogAction, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		return d.handleKey(msg)
	case tea.MouseClickMsg:
		if msg.Button == tea.MouseLeft {
			return d.handleClick(msg.X, msg.Y), nil
		}
	}
	return dialogNone, nil
}

func (d *Dialog) handleKey(msg tea.KeyPressMsg) (dialogAction, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return dialogCancel, nil
	case "ctrl+a":
		return dialogSelectAll, nil
	case "ctrl+d":
		return dialogDeselectAll, nil
	case "up", "ctrl+p":
		if d.focusButtons {
			d.focusButtons = false
			return dialogNone, d.search.Focus()
		}
		if d.cursor > 0 {
			d.cursor--
		}
		d.scrollToCursor()
		return dialogNone, nil
	case "down", "ctrl+n":
		if d.focusButtons {
			return dialogNone, nil
		}
		if d.cursor < len(d.ctrl.Visible())-1 {
			d.cursor++
			d.scrollToCursor()
		} else {
			d.focusButtons = true
			d.search.Blur()
		}
		return dialogNone, nil
	case "tab":
		d.focusButtons = !d.focusButtons
		if d.focusButtons {
			d.search.Blur()
			return dialogNone, nil
		}
		return dialogNone, d.search.Focus()
	case "left", "right":
		if d.focusButtons {
			d.selectFocus = !d.selectFocus
			return dialogNone, nil
		}
	case " ", "space":
		if !d.focusButtons {
			return dialogToggle, nil
		}
	case "enter":
		if d.focusButtons && !d.selectFocus {
			return dialogCancel, nil
		}
		return dialogSubmit, nil
	}

	if d.focusButtons {
		return dialogNone, nil
	}

	var cmd tea.Cmd
	d.search, cmd = d.search.Update(msg)
	if d.search.Value() != d.ctrl.Query() {
		d.ctrl.SetQuery(d.search.Value())
		d.cursor = 0
		d.offset = 0
	}
	return dialogNone, cmd
}

// handleClick hit-tests against the areas recorded by the last View pass.
func (d *Dialog) handleClick(x, y int) dialogAction {
	if d.selectArea.contains(x, y) {
		return dialogSubmit
	}
	if d.cancelArea.contains(x, y) {
		return dialogCancel
	}
	for i, area := range d.rowAreas {
		if area.contains(x, y) {
			d.cursor = d.offset + i
			return dialogToggle
		}
	}
	return dialogNone
}

func (d *Dialog) scrollToCursor() {
	rows := d.windowRows()
	if d.cursor < d.offset {
		d.offset = d.cursor
	}
	if d.cursor >= d.offset+rows {
		d.offset = d.cursor - rows + 1
	}
}

func (d *Dialog) windowRows() int {
	// Modal chrome: border (2) + padding (2) + title + search + blank
	// lines + button row.
	rows := d.height - 10
	if rows > maxRenderedItems {
		rows = maxRenderedItems
	}
	if rows < 1 {
		rows = 1
	}
	return rows
}

func (d *Dialog) modalWidth() int {
	w := d.width - 10
	if w > 70 {
		w = 70
	}
	if w < 30 {
		w = 30
	}
	return w
}

// View renders the centered modal and records hit areas for mouse clicks.
func (d *Dialog) View() string {
	modalWidth := d.modalWidth()
	innerWidth := modalWidth - 6 // border + padding

	var sections []string
	sections = append(sections, styleTitle.Render(d.ctrl.Name()))
	sections = append(sections, "")
	sections = append(sections, d.search.View())
	sections = append(sections, "")

	visible := d.ctrl.Visible()
	rows := d.windowRows()
	end := d.offset + rows
	if end > len(visible) {
		end = len(visible)
	}

	var listLines []string
	if len(visible) == 0 {
		listLines = append(listLines, styleEmptyState.Render("No matching choices"))
	} else {
		for i := d.offset; i < end; i++ {
			listLines = append(listLines, d.renderRow(visible[i], i == d.cursor))
		}
		if remaining := len(visible) - end; remaining > 0 {
			listLines = append(listLines, styleEmptyState.Render("… and more"))
		}
	}
	sections = append(sections, listLines...)
	sections = append(sections, "")

	selectStyle, cancelStyle := styleButton, styleButton
	if d.focusButtons {
		if d.selectFocus {
			selectStyle = styleButtonFocused
		} else {
			cancelStyle = styleButtonFocused
		}
	}
	selectBtn := selectStyle.Render("Select")
	cancelBtn := cancelStyle.Render("Cancel")
	buttons := lipgloss.JoinHorizontal(lipgloss.Center, selectBtn, "  ", cancelBtn)
	buttonLine := lipgloss.NewStyle().Width(innerWidth).Align(lipgloss.Center).Render(buttons)
	sections = append(sections, buttonLine)

	content := strings.Join(sections, "\n")
	modal := styleDialogBorder.Width(modalWidth).Render(content)

	// Hit areas are derived from the same geometry lipgloss.Place uses to
	// center the modal.
	modalHeight := lipgloss.Height(modal)
	left := (d.width - modalWidth) / 2
	if left < 0 {
		left = 0
	}
	top := (d.height - modalHeight) / 2
	if top < 0 {
		top = 0
	}

	// Rows start after border + padding + title + blank + search + blank.
	contentLeft := left + 3
	rowTop := top + 6
	d.rowAreas = d.rowAreas[:0]
	if len(visible) > 0 {
		for i := d.offset; i < end; i++ {
			d.rowAreas = append(d.rowAreas, hitArea{
				x: contentLeft,
				y: rowTop + (i - d.offset),
				w: innerWidth,
				h: 1,
			})
		}
	}

	buttonY := rowTop + len(listLines) + 1
	selectW := lipgloss.Width(selectBtn)
	cancelW := lipgloss.Width(cancelBtn)
	pairW := selectW + 2 + cancelW
	pairLeft := contentLeft + (innerWidth-pairW)/2
	d.selectArea = hitArea{x: pairLeft, y: buttonY, w: selectW, h: 1}
	d.cancelArea = hitArea{x: pairLeft + selectW + 2, y: buttonY, w: cancelW, h: 1}

	return lipgloss.Place(d.width, d.height,
		lipgloss.Center, lipgloss.Center,
		modal,
	)
}

func (d *Dialog) renderRow(c choice.Choice, underCursor bool) string {
	box := "[ ] "
	if d.ctrl.IsSelected(c.ID) {
		box = styleCheckOn.Render("[✓] ")
	} else if !c.Enabled {
		box = styleCheckOff.Render("[-] ")
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

	return box + style.Render(label)
}
