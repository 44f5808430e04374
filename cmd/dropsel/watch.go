package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/spf13/cobra"

	"github.com/dropsel/dropsel/internal/bus"
	"github.com/dropsel/dropsel/internal/config"
)

var watchFlags struct {
	name    string
	dataDir string
	history bool
}

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the stored argument value for a widget",
	Long: `Watch the JetStream bucket entry for a widget name.

Prints the currently stored value, then every subsequent revision, plus any
round-trip notifications published while watching. With --history the
retained revisions are printed first.`,
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().StringVarP(&watchFlags.name, "name", "n", "", "Widget name (defaults to configured name)")
	watchCmd.Flags().StringVar(&watchFlags.dataDir, "data-dir", "", "Data directory for JetStream storage")
	watchCmd.Flags().BoolVar(&watchFlags.history, "history", false, "Print retained revisions first")
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	name := watchFlags.name
	if name == "" {
		name = cfg.Name
	}
	dataDir := watchFlags.dataDir
	if dataDir == "" {
		dataDir = cfg.DataDir
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ns, err := bus.StartEmbedded(dataDir)
	if err != nil {
		return err
	}
	nc, err := bus.ConnectInProcess(ns)
	if err != nil {
		ns.Shutdown()
		return err
	}
	defer bus.Shutdown(nc, ns)

	js, err := jetstream.New(nc)
	if err != nil {
		return fmt.Errorf("failed to create JetStream context: %w", err)
	}
	kv, err := bus.SetupBucket(ctx, js)
	if err != nil {
		return err
	}

	if watchFlags.history {
		entries, err := kv.History(ctx, name)
		if err == nil {
			for _, entry := range entries {
				printEntry(entry)
			}
		}
	}

	sub, err := nc.Subscribe(bus.RoundTripSubject, func(m *nats.Msg) {
		fmt.Printf("%s: round-trip requested\n", name)
	})
	if err != nil {
		return fmt.Errorf("failed to subscribe to round-trips: %w", err)
	}
	defer sub.Unsubscribe()

	watcher, err := kv.Watch(ctx, name)
	if err != nil {
		return fmt.Errorf("failed to watch %q: %w", name, err)
	}
	defer watcher.Stop()

	fmt.Printf("Watching %q (ctrl+c to stop)\n", name)
	for {
		select {
		case <-ctx.Done():
			return nil
		case entry := <-watcher.Updates():
			// A nil entry marks the end of the initial replay.
			if entry == nil {
				continue
			}
			printEntry(entry)
		}
	}
}

func printEntry(entry jetstream.KeyValueEntry) {
	fmt.Printf("rev %d  %s = %s\n", entry.Revision(), entry.Key(), string(entry.Value()))
}
