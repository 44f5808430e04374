package tui

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dropsel/dropsel/internal/choice"
	"github.com/dropsel/dropsel/internal/widget"
)

func newTestDialog(t *testing.T, choices []choice.Choice) *Dialog {
	t.Helper()
	ctrl, err := widget.New(context.Background(), widget.Options{
		Name:    "test",
		Choices: choices,
		Values:  []string{},
	}, nil)
	require.NoError(t, err)
	ctrl.Open()
	d := NewDialog(ctrl)
	d.SetSize(100, 40)
	return d
}

func TestDialog_KeyActions(t *testing.T) {
	tests := []struct {
		name string
		key  string
		want dialogAction
	}{
		{"space toggles", "space", dialogToggle},
		{"enter submits", "enter", dialogSubmit},
		{"esc cancels", "esc", dialogCancel},
		{"ctrl+a selects all", "ctrl+a", dialogSelectAll},
		{"ctrl+d deselects all", "ctrl+d", dialogDeselectAll},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newTestDialog(t, testChoices(5))
			action, _ := d.Update(tea.KeyPressMsg{Text: tt.key})
			assert.Equal(t, tt.want, action)
		})
	}
}

func TestDialog_ButtonFocus(t *testing.T) {
	d := newTestDialog(t, testChoices(2))

	// Down past the last row lands on the buttons.
	d.Update(tea.KeyPressMsg{Text: "down"})
	d.Update(tea.KeyPressMsg{Text: "down"})
	require.True(t, d.focusButtons)
	assert.True(t, d.selectFocus)

	// Left/right swap Select and Cancel; enter activates the focused one.
	d.Update(tea.KeyPressMsg{Text: "right"})
	assert.False(t, d.selectFocus)
	action, _ := d.Update(tea.KeyPressMsg{Text: "enter"})
	assert.Equal(t, dialogCancel, action)

	// Up returns focus to the list.
	d.Update(tea.KeyPressMsg{Text: "right"})
	d.Update(tea.KeyPressMsg{Text: "up"})
	assert.False(t, d.focusButtons)
}

func TestDialog_MouseHitAreas(t *testing.T) {
	d := newTestDialog(t, testChoices(5))

	// View records the hit areas it rendered.
	d.View()
	require.NotEmpty(t, d.rowAreas)
	require.Positive(t, d.selectArea.w)
	require.Positive(t, d.cancelArea.w)

	row := d.rowAreas[2]
	action, _ := d.Update(tea.MouseClickMsg{Button: tea.MouseLeft, X: row.x, Y: row.y})
	assert.Equal(t, dialogToggle, action)
	assert.Equal(t, 2, d.cursor, "row click moves the cursor")

	action, _ = d.Update(tea.MouseClickMsg{Button: tea.MouseLeft, X: d.selectArea.x, Y: d.selectArea.y})
	assert.Equal(t, dialogSubmit, action)

	action, _ = d.Update(tea.MouseClickMsg{Button: tea.MouseLeft, X: d.cancelArea.x, Y: d.cancelArea.y})
	assert.Equal(t, dialogCancel, action)

	action, _ = d.Update(tea.MouseClickMsg{Button: tea.MouseLeft, X: 0, Y: 0})
	assert.Equal(t, dialogNone, action, "click outside every area is inert")
}

func TestDialog_FilterResetsWindow(t *testing.T) {
	d := newTestDialog(t, testChoices(60))
	d.Focus()

	for i := 0; i < 45; i++ {
		d.Update(tea.KeyPressMsg{Text: "down"})
	}
	require.Positive(t, d.offset)

	d.Update(tea.KeyPressMsg{Code: '1', Text: "1"})
	assert.Equal(t, 0, d.cursor)
	assert.Equal(t, 0, d.offset)
}

func TestDialog_Reset(t *testing.T) {
	d := newTestDialog(t, testChoices(5))
	d.Focus()
	d.Update(tea.KeyPressMsg{Text: "down"})
	d.Update(tea.KeyPressMsg{Code: 'c', Text: "c"})

	d.Reset()
	assert.Equal(t, 0, d.cursor)
	assert.Equal(t, 0, d.offset)
	assert.Equal(t, "", d.search.Value())
	assert.False(t, d.focusButtons)
}
