package bus

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"

	"github.com/dropsel/dropsel/internal/errors"
)

// JetStreamChannel publishes widget state over an embedded NATS server:
// argument values go into the widget_args KV bucket as JSON, round-trip
// requests are published on the round-trip subject with an empty payload.
type JetStreamChannel struct {
	nc    *nats.Conn
	kv    jetstream.KeyValue
	retry errors.RetryConfig
}

// NewJetStreamChannel wires a channel to an existing connection and bucket.
func NewJetStreamChannel(nc *nats.Conn, kv jetstream.KeyValue) *JetStreamChannel {
	return &JetStreamChannel{
		nc:    nc,
		kv:    kv,
		retry: errors.DefaultRetryConfig(),
	}
}

// SetArgument encodes value as JSON and stores it under name. A null value
// (absent single selection) is stored as the literal JSON null. Transient
// publish failures are retried with backoff; a closed connection fails
// fast with ErrChannelClosed.
func (c *JetStreamChannel) SetArgument(ctx context.Context, name string, value any) error {
	if c.nc.IsClosed() {
		return errors.ErrChannelClosed
	}

	data, err := json.Marshal(value)
	if err != nil {
		return errors.NewPermanentError("set argument", err)
	}

	err = errors.Retry(ctx, c.retry, func() error {
		if _, err := c.kv.Put(ctx, name, data); err != nil {
			return errors.NewTransientError("kv put", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to store argument %q: %w", name, err)
	}
	return nil
}

// RequestRoundTrip publishes an empty notification on the round-trip
// subject.
func (c *JetStreamChannel) RequestRoundTrip(ctx context.Context) error {
	if c.nc.IsClosed() {
		return errors.ErrChannelClosed
	}

	err := errors.Retry(ctx, c.retry, func() error {
		if err := c.nc.Publish(RoundTripSubject, nil); err != nil {
			return errors.NewTransientError("publish", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to request round-trip: %w", err)
	}
	return nil
}

// Argument reads the stored JSON value for name back out of the bucket.
// Used by the watch command and tests; hosts normally watch the bucket
// directly.
func (c *JetStreamChannel) Argument(ctx context.Context, name string) (any, error) {
	entry, err := c.kv.Get(ctx, name)
	if err != nil {
		if stderrors.Is(err, jetstream.ErrKeyNotFound) {
			return nil, errors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to read argument %q: %w", name, err)
	}

	var value any
	if err := json.Unmarshal(entry.Value(), &value); err != nil {
		return nil, fmt.Errorf("stored argument %q is not valid JSON: %w", name, err)
	}
	return value, nil
}
