package bus

import (
	"context"

	"github.com/dropsel/dropsel/internal/selection"
)

// Emitter converts commit events into channel calls for one widget. On
// every commit it refreshes the stored argument value; a round-trip is
// requested only when the trigger flag is set and the commit came from
// direct user interaction. Programmatic updates never round-trip, so a
// host pushing a value does not loop back on itself.
type Emitter struct {
	ch      Channel
	name    string
	trigger bool
}

// NewEmitter creates an emitter for the named widget.
func NewEmitter(ch Channel, name string, trigger bool) *Emitter {
	return &Emitter{ch: ch, name: name, trigger: trigger}
}

// Emit reports a committed selection. userEdit distinguishes interactive
// commits from controlled-prop updates.
func (e *Emitter) Emit(ctx context.Context, v selection.Value, userEdit bool) error {
	if err := e.ch.SetArgument(ctx, e.name, v.Payload()); err != nil {
		return err
	}
	if e.trigger && userEdit {
		return e.ch.RequestRoundTrip(ctx)
	}
	return nil
}
