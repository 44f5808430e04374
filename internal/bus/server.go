package bus

import (
	"context"
	"fmt"
	"time"

	"github.com/nats-io/nats-server/v2/server"
	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"

	"github.com/dropsel/dropsel/internal/errors"
)

// ArgumentBucket is the JetStream KV bucket holding the stored argument
// value per widget name. Hosts read it separately from round-trip
// notifications.
const ArgumentBucket = "widget_args"

// RoundTripSubject carries round-trip requests. Messages have no payload;
// the stored argument value is read from the KV bucket.
const RoundTripSubject = "widget.roundtrip"

// StartEmbedded starts an embedded NATS server with JetStream enabled
// using the specified data directory for file-based storage.
// Returns the server instance or an error if startup fails.
func StartEmbedded(dataDir string) (*server.Server, error) {
	opts := &server.Options{
		JetStream:  true,
		StoreDir:   dataDir,
		DontListen: true, // No network ports - in-process only
	}

	ns, err := server.NewServer(opts)
	if err != nil {
		return nil, err
	}

	go ns.Start()

	if !ns.ReadyForConnections(4 * time.Second) {
		return nil, fmt.Errorf("nats server not ready: %w", errors.ErrTimeout)
	}

	return ns, nil
}

// ConnectInProcess creates an in-process connection to the embedded NATS
// server. No network ports are involved.
func ConnectInProcess(ns *server.Server) (*nats.Conn, error) {
	return nats.Connect("", nats.InProcessServer(ns))
}

// SetupBucket creates (or opens) the argument KV bucket.
func SetupBucket(ctx context.Context, js jetstream.JetStream) (jetstream.KeyValue, error) {
	return js.CreateOrUpdateKeyValue(ctx, jetstream.KeyValueConfig{
		Bucket:      ArgumentBucket,
		Description: "committed widget selections, keyed by widget name",
		History:     8,
	})
}

// Shutdown gracefully closes the connection and stops the server.
// The connection is drained first so buffered publishes are not lost.
// Returns ErrTimeout if the server does not stop within 5 seconds.
func Shutdown(nc *nats.Conn, ns *server.Server) error {
	if nc != nil {
		drainDone := make(chan error, 1)
		go func() {
			drainDone <- nc.Drain()
		}()

		select {
		case err := <-drainDone:
			if err != nil {
				nc.Close()
			}
		case <-time.After(2 * time.Second):
			nc.Close()
		}
	}

	if ns != nil {
		ns.Shutdown()

		shutdownDone := make(chan struct{})
		go func() {
			ns.WaitForShutdown()
			close(shutdownDone)
		}()

		select {
		case <-shutdownDone:
		case <-time.After(5 * time.Second):
			return fmt.Errorf("nats server shutdown: %w", errors.ErrTimeout)
		}
	}

	return nil
}
