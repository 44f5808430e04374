// Package bus is the outbound synchronization channel of a widget: the path
// through which committed selections reach the host application. The widget
// core only knows the Channel interface; the NATS-backed implementation and
// the in-memory recorder both satisfy it.
package bus

import (
	"context"
	"sync"
)

// Channel is the host-facing side of a widget. SetArgument stores the
// current value under the widget's name; RequestRoundTrip asks the host to
// react to a freshly committed selection. Round-trip requests carry no
// payload - the stored value is read separately.
type Channel interface {
	SetArgument(ctx context.Context, name string, value any) error
	RequestRoundTrip(ctx context.Context) error
}

// Memory is an in-process Channel that records everything it is told.
// It backs tests and serves as a fallback when no bus is configured.
type Memory struct {
	mu         sync.Mutex
	args       map[string]any
	roundTrips int
}

// NewMemory creates an empty in-memory channel.
func NewMemory() *Memory {
	return &Memory{args: make(map[string]any)}
}

// SetArgument stores value under name.
func (m *Memory) SetArgument(_ context.Context, name string, value any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.args[name] = value
	return nil
}

// RequestRoundTrip counts a round-trip request.
func (m *Memory) RequestRoundTrip(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.roundTrips++
	return nil
}

// Argument returns the stored value for name and whether one exists.
func (m *Memory) Argument(name string) (any, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.args[name]
	return v, ok
}

// RoundTrips returns how many round-trips have been requested.
func (m *Memory) RoundTrips() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.roundTrips
}
