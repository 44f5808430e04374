package tui

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/charmbracelet/x/editor"

	"github.com/dropsel/dropsel/internal/choice"
	"github.com/dropsel/dropsel/internal/selection"
	"github.com/dropsel/dropsel/internal/widget"
)

// ControlledUpdateMsg carries a host-side value push into the running UI.
// It goes through the controller's reconciliation, so a value equal to the
// previously pushed one is a no-op.
type ControlledUpdateMsg struct {
	Value  *string
	Values []string
}

// choicesEditedMsg arrives when the external editor process exits.
type choicesEditedMsg struct {
	err error
}

// App is the root model. It owns the controller and the two surfaces and is
// the single place channel errors are surfaced and logged.
type App struct {
	ctx    context.Context
	ctrl   *widget.Controller
	logger *slog.Logger

	inline *InlineList
	dialog *Dialog
	footer *Footer
	help   *Help

	// choicesPath is the YAML file behind the registry; empty when choices
	// were supplied directly and there is nothing to edit.
	choicesPath string

	width    int
	height   int
	showHelp bool
	errText  string
}

// NewApp creates the root model around an initialized controller.
func NewApp(ctx context.Context, ctrl *widget.Controller, choicesPath string, logger *slog.Logger) *App {
	if logger == nil {
		logger = slog.Default()
	}
	return &App{
		ctx:         ctx,
		ctrl:        ctrl,
		logger:      logger,
		inline:      NewInlineList(ctrl),
		dialog:      NewDialog(ctrl),
		footer:      NewFooter(ctrl.Mode()),
		help:        NewHelp(),
		choicesPath: choicesPath,
		width:       80,
		height:      24,
	}
}

// Init opens the inline surface immediately; dialog presentation starts
// collapsed and waits for enter.
func (a *App) Init() tea.Cmd {
	if a.ctrl.Presentation() == widget.Inline {
		a.ctrl.Open()
		return a.inline.Focus()
	}
	return nil
}

// Update routes messages to the active surface and dispatches the
// controller operations surfaces ask for.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.inline.SetSize(msg.Width-4, msg.Height-6)
		a.dialog.SetSize(msg.Width, msg.Height)
		a.footer.SetSize(msg.Width)
		a.help.SetSize(msg.Width, msg.Height)
		return a, nil

	case ControlledUpdateMsg:
		a.dispatch(a.ctrl.Reconcile(a.ctx, msg.Value, msg.Values))
		return a, nil

	case choicesEditedMsg:
		if msg.err != nil {
			a.fail(msg.err)
			return a, nil
		}
		choices, err := choice.LoadFile(a.choicesPath)
		if err != nil {
			a.fail(err)
			return a, nil
		}
		a.dispatch(a.ctrl.ReplaceChoices(a.ctx, choices))
		a.logger.Info("choices reloaded", "path", a.choicesPath, "count", len(choices))
		return a, nil

	case tea.KeyPressMsg:
		return a.handleKey(msg)

	case tea.MouseClickMsg:
		if msg.Button != tea.MouseLeft {
			return a, nil
		}
		return a.handleClick(msg)
	}

	return a, nil
}

func (a *App) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return a, tea.Quit
	}

	if a.showHelp {
		switch msg.String() {
		case "esc", "ctrl+g", "enter":
			a.showHelp = false
		}
		return a, nil
	}

	if a.dialogOpen() {
		action, cmd := a.dialog.Update(msg)
		return a, tea.Batch(cmd, a.runDialogAction(action))
	}

	switch msg.String() {
	case "ctrl+g":
		a.showHelp = true
		return a, nil
	case "ctrl+e":
		return a, a.openEditor()
	case "esc":
		return a, tea.Quit
	}

	if a.ctrl.Presentation() == widget.Dialog {
		switch msg.String() {
		case "enter", " ", "space":
			a.ctrl.Open()
			a.footer.SetDialogOpen(true)
			return a, a.dialog.Focus()
		}
		return a, nil
	}

	// Inline surface.
	switch msg.String() {
	case "enter":
		if c, ok := a.inline.CursorChoice(); ok {
			a.dispatch(a.ctrl.Click(a.ctx, c.ID))
			return a, a.afterInlinePick()
		}
		return a, nil
	case "ctrl+a":
		a.dispatch(a.ctrl.SelectAllVisible(a.ctx))
		return a, nil
	case "ctrl+d":
		a.dispatch(a.ctrl.DeselectAllVisible(a.ctx))
		return a, nil
	}

	return a, a.inline.Update(msg)
}

func (a *App) handleClick(msg tea.MouseClickMsg) (tea.Model, tea.Cmd) {
	if a.showHelp {
		a.showHelp = false
		return a, nil
	}
	if a.dialogOpen() {
		action, _ := a.dialog.Update(msg)
		return a, a.runDialogAction(action)
	}
	if a.ctrl.Presentation() == widget.Inline {
		if c, ok := a.inline.RowAt(msg.X, msg.Y); ok {
			a.dispatch(a.ctrl.Click(a.ctx, c.ID))
			return a, a.afterInlinePick()
		}
	}
	return a, nil
}

// runDialogAction executes a dialog-requested controller operation.
func (a *App) runDialogAction(action dialogAction) tea.Cmd {
	switch action {
	case dialogToggle:
		if c, ok := a.dialog.CursorChoice(); ok {
			a.dispatch(a.ctrl.Click(a.ctx, c.ID))
			// Single mode commits and closes on pick.
			if !a.ctrl.IsOpen() {
				a.closeDialog()
			}
		}
	case dialogSubmit:
		a.dispatch(a.ctrl.Submit(a.ctx))
		a.closeDialog()
	case dialogCancel:
		a.ctrl.Cancel()
		a.closeDialog()
	case dialogSelectAll:
		a.dispatch(a.ctrl.SelectAllVisible(a.ctx))
	case dialogDeselectAll:
		a.dispatch(a.ctrl.DeselectAllVisible(a.ctx))
	}
	return nil
}

func (a *App) closeDialog() {
	a.dialog.Reset()
	a.footer.SetDialogOpen(false)
}

// afterInlinePick reopens the inline surface when a single-mode pick
// collapsed it. The controller resets its query on close; the list must
// drop its stale filter text to match.
func (a *App) afterInlinePick() tea.Cmd {
	if a.ctrl.IsOpen() {
		return nil
	}
	a.inline.Reset()
	a.ctrl.Open()
	return a.inline.Focus()
}

func (a *App) dialogOpen() bool {
	return a.ctrl.IsOpen() && a.ctrl.Presentation() == widget.Dialog
}

// openEditor launches $EDITOR on the choices file and reloads it on exit.
func (a *App) openEditor() tea.Cmd {
	if a.choicesPath == "" {
		a.errText = "no choices file to edit"
		return nil
	}
	cmd, err := editor.Cmd("dropsel", a.choicesPath)
	if err != nil {
		a.fail(err)
		return nil
	}
	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return choicesEditedMsg{err: err}
	})
}

// dispatch records the outcome of a controller operation. Selection state
// is always consistent afterwards; only channel failures surface here.
func (a *App) dispatch(err error) {
	if err == nil {
		a.errText = ""
		return
	}
	a.fail(err)
}

func (a *App) fail(err error) {
	a.errText = err.Error()
	a.logger.Error("widget operation failed", "widget", a.ctrl.Name(), "error", err)
}

// committedSummary is the one-line rendering of the committed selection.
func (a *App) committedSummary() string {
	v := a.ctrl.Committed()
	if v.Mode == selection.Single {
		if v.Single == nil {
			return styleEmptyState.Render("(none)")
		}
		if *v.Single == "" {
			return styleCommitted.Render(`""`)
		}
		return styleCommitted.Render(*v.Single)
	}
	if len(v.Multi) == 0 {
		return styleEmptyState.Render("(none)")
	}
	return styleCommitted.Render(strings.Join(v.Multi, ", "))
}

// View composes the base surface and overlays the dialog and help on a
// shared canvas.
func (a *App) View() tea.View {
	var view tea.View
	view.AltScreen = true
	view.MouseMode = tea.MouseModeCellMotion

	var b strings.Builder
	b.WriteString(styleTitle.Render(a.ctrl.Name()))
	b.WriteString(styleFooterLabel.Render(fmt.Sprintf("  %s · %s · %d choices",
		a.ctrl.Mode(), a.ctrl.Presentation(), a.ctrl.Registry().Len())))
	b.WriteString("\n")
	b.WriteString(a.committedSummary())
	b.WriteString("\n\n")

	if a.ctrl.Presentation() == widget.Inline {
		a.inline.SetOrigin(2, 4)
		b.WriteString(lipgloss.NewStyle().PaddingLeft(2).Render(a.inline.View()))
	} else {
		b.WriteString(styleFooterLabel.Render("  Press enter to choose…"))
	}
	b.WriteString("\n")

	content := b.String()

	// Pin error line and footer to the bottom rows.
	bodyHeight := a.height - 2
	if lines := strings.Count(content, "\n") + 1; lines < bodyHeight {
		content += strings.Repeat("\n", bodyHeight-lines)
	}
	if a.errText != "" {
		content += styleError.Render("✗ "+a.errText) + "\n"
	} else {
		content += "\n"
	}
	content += a.footer.View()

	canvas := uv.NewScreenBuffer(a.width, a.height)
	uv.NewStyledString(content).Draw(canvas, uv.Rectangle{
		Min: uv.Position{X: 0, Y: 0},
		Max: uv.Position{X: a.width, Y: a.height},
	})

	if a.dialogOpen() {
		uv.NewStyledString(a.dialog.View()).Draw(canvas, uv.Rectangle{
			Min: uv.Position{X: 0, Y: 0},
			Max: uv.Position{X: a.width, Y: a.height},
		})
	}

	if a.showHelp {
		uv.NewStyledString(a.help.View()).Draw(canvas, uv.Rectangle{
			Min: uv.Position{X: 0, Y: 0},
			Max: uv.Position{X: a.width, Y: a.height},
		})
	}

	view.Content = lipgloss.NewLayer(canvas.Render())
	return view
}
