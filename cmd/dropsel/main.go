package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

var (
	// Version information (set via ldflags during build)
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := fang.Execute(context.Background(), rootCmd, fang.WithVersion(version)); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dropsel",
	Short: "Filterable dropdown selection widget with synced state",
	Long: `dropsel is a terminal dropdown/multi-select widget. It filters a choice
list as you type, keeps a committed selection distinct from in-dialog edits,
and syncs every committed value into an embedded NATS JetStream bucket so a
host process can read it back.

Small choice lists render inline; large ones open a staged modal dialog.`,
}

func init() {
	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(doctorCmd)
	rootCmd.AddCommand(versionCmd)
}
