package main

import (
	"context"
	stderrors "errors"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/spf13/cobra"

	"github.com/dropsel/dropsel/internal/bus"
	"github.com/dropsel/dropsel/internal/choice"
	"github.com/dropsel/dropsel/internal/config"
	"github.com/dropsel/dropsel/internal/errors"
	"github.com/dropsel/dropsel/internal/logger"
	"github.com/dropsel/dropsel/internal/tui"
	"github.com/dropsel/dropsel/internal/widget"
)

var demoFlags struct {
	name    string
	choices string
	value   string
	values  []string
	multi   bool
	trigger bool
	popup   string
	dataDir string
	resume  bool
}

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the selection widget in the terminal",
	Long: `Run the dropdown widget against a YAML choices file.

Every committed selection is stored as JSON in the embedded JetStream
bucket under the widget name; with --trigger each user edit also publishes
a round-trip notification. Use 'dropsel watch' to inspect the stored
values afterwards.

With --resume the initial selection is read back from the bucket, so a
selection survives across runs.`,
	RunE: runDemo,
}

func init() {
	demoCmd.Flags().StringVarP(&demoFlags.name, "name", "n", "", "Widget name (sync channel key)")
	demoCmd.Flags().StringVarP(&demoFlags.choices, "choices", "c", "", "Choices YAML file")
	demoCmd.Flags().StringVar(&demoFlags.value, "value", "", "Initial value (single mode)")
	demoCmd.Flags().StringSliceVar(&demoFlags.values, "values", nil, "Initial values (multi mode)")
	demoCmd.Flags().BoolVarP(&demoFlags.multi, "multi", "m", false, "Multi-select mode")
	demoCmd.Flags().BoolVarP(&demoFlags.trigger, "trigger", "t", false, "Request a round-trip on each user edit")
	demoCmd.Flags().StringVar(&demoFlags.popup, "popup", "", "Presentation override: auto, always, never")
	demoCmd.Flags().StringVar(&demoFlags.dataDir, "data-dir", "", "Data directory for JetStream storage")
	demoCmd.Flags().BoolVar(&demoFlags.resume, "resume", false, "Resume the selection stored in the bucket")
}

func runDemo(cmd *cobra.Command, args []string) error {
	return errors.Recover(func() error { return demo(cmd) })
}

func demo(cmd *cobra.Command) error {
	ctx := cmd.Context()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyDemoFlags(cmd, cfg)

	log, err := logger.Setup(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		return err
	}

	choicesPath := cfg.ChoicesFile
	choices, err := choice.LoadFile(choicesPath)
	if err != nil {
		if stderrors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("choices file %s not found\n\nRun 'dropsel init' to create a starter file", choicesPath)
		}
		return fmt.Errorf("failed to load choices: %w", err)
	}

	ns, err := bus.StartEmbedded(cfg.DataDir)
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
	ch := bus.NewJetStreamChannel(nc, kv)

	opts := widget.Options{
		Name:    cfg.Name,
		Choices: choices,
		Trigger: cfg.Trigger,
		Popup:   widget.PopupMode(cfg.Popup),
	}
	if cfg.Multi || demoFlags.values != nil {
		opts.Values = demoFlags.values
		if opts.Values == nil {
			opts.Values = []string{}
		}
	} else if demoFlags.value != "" {
		v := demoFlags.value
		opts.Value = &v
	}
	if demoFlags.resume {
		if err := resumeStored(ctx, ch, &opts); err != nil {
			log.Warn("could not resume stored selection", "error", err)
		}
	}

	// Round-trip requests land in the log, since the TUI owns the screen.
	sub, err := nc.Subscribe(bus.RoundTripSubject, func(m *nats.Msg) {
		log.Info("round-trip requested", "widget", cfg.Name)
	})
	if err != nil {
		return fmt.Errorf("failed to subscribe to round-trips: %w", err)
	}
	defer sub.Unsubscribe()

	ctrl, err := widget.New(ctx, opts, ch)
	if err != nil {
		return fmt.Errorf("failed to create widget: %w", err)
	}

	app := tui.NewApp(ctx, ctrl, choicesPath, log)
	p := tea.NewProgram(app)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	printCommitted(ctrl)
	return nil
}

// applyDemoFlags overlays explicitly set flags onto the resolved config.
func applyDemoFlags(cmd *cobra.Command, cfg *config.Config) {
	if demoFlags.name != "" {
		cfg.Name = demoFlags.name
	}
	if demoFlags.choices != "" {
		cfg.ChoicesFile = demoFlags.choices
	}
	if demoFlags.popup != "" {
		cfg.Popup = demoFlags.popup
	}
	if demoFlags.dataDir != "" {
		cfg.DataDir = demoFlags.dataDir
	}
	if cmd.Flags().Changed("trigger") {
		cfg.Trigger = demoFlags.trigger
	}
	if cmd.Flags().Changed("multi") {
		cfg.Multi = demoFlags.multi
	}
	if demoFlags.values != nil {
		cfg.Multi = true
	}
}

// resumeStored seeds the initial selection from the value a previous run
// left in the bucket.
func resumeStored(ctx context.Context, ch *bus.JetStreamChannel, opts *widget.Options) error {
	stored, err := ch.Argument(ctx, opts.Name)
	if err != nil {
		return err
	}
	if opts.Values != nil {
		values := []string{}
		if list, ok := stored.([]any); ok {
			for _, v := range list {
				if s, ok := v.(string); ok {
					values = append(values, s)
				}
			}
		}
		opts.Values = values
		return nil
	}
	if s, ok := stored.(string); ok {
		opts.Value = &s
	} else {
		opts.Value = nil
	}
	return nil
}

func printCommitted(ctrl *widget.Controller) {
	v := ctrl.Committed()
	fmt.Printf("%s = %v\n", ctrl.Name(), v.Payload())
}
