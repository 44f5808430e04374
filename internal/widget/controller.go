package widget

import (
	"context"

	"github.com/dropsel/dropsel/internal/bus"
	"github.com/dropsel/dropsel/internal/choice"
	"github.com/dropsel/dropsel/internal/filter"
	"github.com/dropsel/dropsel/internal/selection"
)

// Controller is the widget facade: it routes user and prop events into the
// selection machine, decides which interaction path applies for the current
// presentation, and emits every committed change on the sync channel.
//
// All methods run to completion synchronously; the only errors surfaced are
// sync channel failures. Malformed ids never error, matching the selection
// machine's passthrough stance.
type Controller struct {
	name    string
	popup   PopupMode
	mode    selection.Mode
	reg     *choice.Registry
	machine *selection.Machine
	emitter *bus.Emitter

	query string
	open  bool

	// Last controlled prop the host supplied, kept separate from the
	// committed selection so re-selecting an unchanged value after an
	// interactive edit is still honored.
	lastValue  *string
	lastValues []string
}

// New builds a controller from options, initializes the committed selection
// from the controlled prop, and performs the construction-time commit to the
// channel. A nil channel falls back to an in-memory one.
func New(ctx context.Context, opts Options, ch bus.Channel) (*Controller, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if ch == nil {
		ch = bus.NewMemory()
	}

	reg := choice.NewRegistry(opts.Choices)
	mode := opts.mode()
	machine := selection.NewMachine(mode, reg)
	machine.Initialize(opts.initialValue())

	c := &Controller{
		name:       opts.Name,
		popup:      opts.Popup,
		mode:       mode,
		reg:        reg,
		machine:    machine,
		emitter:    bus.NewEmitter(ch, opts.Name, opts.Trigger),
		lastValue:  copyPtr(opts.Value),
		lastValues: copySlice(opts.Values),
	}

	// Initialization counts as a commit: the channel must hold this
	// widget's value from the start.
	if err := c.emit(ctx, false); err != nil {
		return nil, err
	}
	return c, nil
}

// Name returns the sync channel key.
func (c *Controller) Name() string { return c.name }

// Mode returns the fixed selection mode.
func (c *Controller) Mode() selection.Mode { return c.mode }

// Presentation derives the current presentation mode.
func (c *Controller) Presentation() Presentation {
	return PresentationFor(c.reg.Len(), c.popup)
}

// IsOpen reports whether the widget surface is open.
func (c *Controller) IsOpen() bool { return c.open }

// Query returns the current filter query.
func (c *Controller) Query() string { return c.query }

// SetQuery updates the filter query. Re-evaluation is synchronous: the next
// Visible call reflects it.
func (c *Controller) SetQuery(q string) { c.query = q }

// Visible returns the post-filter choices in registry order. Rendering may
// materialize any prefix of this; selection correctness is independent of
// how much is shown.
func (c *Controller) Visible() []choice.Choice {
	return filter.Visible(c.reg.Choices(), c.query)
}

// Registry exposes the choice registry for presentation layers.
func (c *Controller) Registry() *choice.Registry { return c.reg }

// Committed returns the committed selection in its normalized shape.
func (c *Controller) Committed() selection.Value { return c.machine.Committed() }

// IsSelected reports membership in the active selection (provisional while
// the dialog is open, committed otherwise).
func (c *Controller) IsSelected(id string) bool { return c.machine.IsSelected(id) }

// Open opens the widget surface. In dialog presentation this snapshots the
// committed selection into a provisional working copy.
func (c *Controller) Open() {
	if c.open {
		return
	}
	c.open = true
	if c.Presentation() == Dialog {
		c.machine.BeginProvisional()
	}
}

// Dismiss closes the surface without an explicit submit: outside clicks,
// escape. Dialog edits are discarded, the filter query resets.
func (c *Controller) Dismiss() {
	if !c.open {
		return
	}
	c.machine.DiscardProvisional()
	c.close()
}

// Click handles an option click/check for the current presentation and mode:
//
//	inline+single: commit id, collapse
//	inline+multi:  toggle id in committed, emit per edit, stay open
//	dialog+single: commit id immediately, close (no explicit Select step)
//	dialog+multi:  toggle id in provisional, no emit until Submit
func (c *Controller) Click(ctx context.Context, id string) error {
	if ch, ok := c.reg.ByID(id); ok && !ch.Enabled && !c.machine.IsSelected(id) {
		return nil // disabled, unselected: inert
	}

	if c.mode == selection.Single {
		c.machine.SelectSingle(id)
		c.close()
		return c.emit(ctx, true)
	}

	if c.inDialog() {
		c.machine.ToggleProvisional(id)
		return nil
	}

	c.machine.ToggleCommitted(id)
	return c.emit(ctx, true)
}

// SelectAllVisible adds every visible enabled choice to the active
// selection. Inline edits commit immediately; dialog edits wait for Submit.
func (c *Controller) SelectAllVisible(ctx context.Context) error {
	if c.mode == selection.Single {
		return nil
	}
	c.machine.SelectAllVisible(c.Visible())
	if c.inDialog() {
		return nil
	}
	return c.emit(ctx, true)
}

// DeselectAllVisible removes every visible enabled choice from the active
// selection.
func (c *Controller) DeselectAllVisible(ctx context.Context) error {
	if c.mode == selection.Single {
		return nil
	}
	c.machine.DeselectAllVisible(c.Visible())
	if c.inDialog() {
		return nil
	}
	return c.emit(ctx, true)
}

// Submit promotes the dialog's provisional selection, closes the dialog and
// commits. No-op when no dialog interaction is in flight.
func (c *Controller) Submit(ctx context.Context) error {
	if !c.machine.HasProvisional() {
		return nil
	}
	c.machine.CommitProvisional()
	c.close()
	return c.emit(ctx, true)
}

// Cancel discards the dialog's provisional edits and closes. The committed
// selection is untouched and nothing is emitted.
func (c *Controller) Cancel() {
	c.machine.DiscardProvisional()
	c.close()
}

// Reconcile applies a re-render's controlled prop. The new value is compared
// against the previously supplied prop, never against the committed
// selection, so interactive edits are not clobbered by a host re-rendering
// with an unchanged prop. A changed prop goes through ApplyControlledUpdate.
func (c *Controller) Reconcile(ctx context.Context, value *string, values []string) error {
	changed := false
	if c.mode == selection.Single {
		changed = !ptrEqual(value, c.lastValue)
	} else {
		changed = !sliceEqual(values, c.lastValues)
	}
	if !changed {
		return nil
	}
	return c.ApplyControlledUpdate(ctx, value, values)
}

// ApplyControlledUpdate unconditionally overwrites the committed selection
// with a host-supplied value and re-commits, even when the value equals the
// previous one. In-flight dialog edits are discarded; if the dialog is still
// open, the provisional snapshot restarts from the new committed value. The
// commit is programmatic: the stored argument refreshes but no round-trip is
// requested.
func (c *Controller) ApplyControlledUpdate(ctx context.Context, value *string, values []string) error {
	wasProvisional := c.machine.HasProvisional()
	if c.mode == selection.Single {
		c.lastValue = copyPtr(value)
		c.machine.ApplyControlledUpdate(selection.SingleValue(value))
	} else {
		c.lastValues = copySlice(values)
		c.machine.ApplyControlledUpdate(selection.MultiValue(values))
	}
	if wasProvisional && c.open {
		c.machine.BeginProvisional()
	}

	return c.emit(ctx, false)
}

// ReplaceChoices swaps the choice list wholesale, e.g. after the backing
// file was edited. Selected ids survive the swap; ids the new list no longer
// knows are reported as unknown passthrough ids. The reported order can
// change, so the committed value is re-emitted programmatically.
func (c *Controller) ReplaceChoices(ctx context.Context, choices []choice.Choice) error {
	c.reg = choice.NewRegistry(choices)
	c.machine.SetRegistry(c.reg)
	return c.emit(ctx, false)
}

func (c *Controller) inDialog() bool {
	return c.open && c.machine.HasProvisional()
}

// close collapses the surface and resets the filter query so reopening
// shows the unfiltered registry.
func (c *Controller) close() {
	c.open = false
	c.query = ""
}

func (c *Controller) emit(ctx context.Context, userEdit bool) error {
	return c.emitter.Emit(ctx, c.machine.Committed(), userEdit)
}

func ptrEqual(a, b *string) bool {
	if (a == nil) != (b == nil) {
		return false
	}
	return a == nil || *a == *b
}

func sliceEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func copyPtr(p *string) *string {
	if p == nil {
		return nil
	}
	s := *p
	return &s
}

func copySlice(s []string) []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s))
	copy(out, s)
	return out
}
