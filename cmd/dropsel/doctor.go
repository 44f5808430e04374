package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/spf13/cobra"

	"github.com/dropsel/dropsel/internal/choice"
	"github.com/dropsel/dropsel/internal/config"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check configuration and environment",
	Long: `Check that dropsel can run in the current environment.

This command verifies that:
- The configuration resolves and validates
- The choices file exists and parses
- The data directory is writable
- An editor is available for the edit keybinding`,
	RunE: runDoctor,
}

// Theme colors (catppuccin mocha)
var (
	colorPrimary = lipgloss.Color("#cba6f7") // Mauve
	colorMuted   = lipgloss.Color("#a6adc8") // Subtext0
	colorBase    = lipgloss.Color("#cdd6f4") // Text
	colorSuccess = lipgloss.Color("#a6e3a1") // Green
	colorWarning = lipgloss.Color("#f9e2af") // Yellow
	colorError   = lipgloss.Color("#f38ba8") // Red
	colorBorder  = lipgloss.Color("#585b70") // Surface2
)

type checkResult struct {
	name    string
	status  string
	details string
}

func runDoctor(cmd *cobra.Command, args []string) error {
	var results []checkResult
	allOk := true

	// Config resolves and validates
	cfg, err := config.Load()
	if err != nil {
		results = append(results, checkResult{
			name:    "config",
			status:  "FAIL",
			details: err.Error(),
		})
		allOk = false
	} else {
		results = append(results, checkResult{
			name:    "config",
			status:  "OK",
			details: fmt.Sprintf("name=%s popup=%s", cfg.Name, cfg.Popup),
		})
	}

	// Choices file parses
	if cfg != nil {
		if choices, err := choice.LoadFile(cfg.ChoicesFile); err != nil {
			results = append(results, checkResult{
				name:    "choices",
				status:  "FAIL",
				details: fmt.Sprintf("%s: %v (run 'dropsel init')", cfg.ChoicesFile, err),
			})
			allOk = false
		} else {
			disabled := 0
			for _, c := range choices {
				if !c.Enabled {
					disabled++
				}
			}
			results = append(results, checkResult{
				name:    "choices",
				status:  "OK",
				details: strconv.Itoa(len(choices)) + " choices, " + strconv.Itoa(disabled) + " disabled",
			})
		}

		// Data directory is writable
		if err := checkWritable(cfg.DataDir); err != nil {
			results = append(results, checkResult{
				name:    "data dir",
				status:  "FAIL",
				details: err.Error(),
			})
			allOk = false
		} else {
			results = append(results, checkResult{
				name:    "data dir",
				status:  "OK",
				details: cfg.DataDir,
			})
		}
	}

	// Editor available for the edit keybinding
	editorName := os.Getenv("EDITOR")
	if editorName == "" {
		editorName = "nano"
	}
	if _, err := exec.LookPath(editorName); err != nil {
		results = append(results, checkResult{
			name:    "editor",
			status:  "WARN",
			details: editorName + " not in PATH; the edit keybinding will fail",
		})
	} else {
		results = append(results, checkResult{
			name:    "editor",
			status:  "OK",
			details: editorName,
		})
	}

	// Build rows with status icons
	rows := make([][]string, len(results))
	for i, r := range results {
		var icon string
		switch r.status {
		case "OK":
			icon = "✓"
		case "FAIL":
			icon = "⊗"
		case "WARN":
			icon = "⊘"
		}
		rows[i] = []string{r.name, icon, r.details}
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorBorder)).
		Headers("Check", "Status", "Details").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return lipgloss.NewStyle().
					Foreground(colorPrimary).
					Bold(true).
					Padding(0, 1)
			}

			style := lipgloss.NewStyle().Padding(0, 1)

			if col == 1 {
				switch results[row].status {
				case "OK":
					return style.Foreground(colorSuccess)
				case "FAIL":
					return style.Foreground(colorError)
				case "WARN":
					return style.Foreground(colorWarning)
				}
			}

			if col == 0 {
				return style.Foreground(colorBase)
			}

			return style.Foreground(colorMuted)
		})

	fmt.Println(t)

	fmt.Println()
	successStyle := lipgloss.NewStyle().Foreground(colorSuccess)
	errorStyle := lipgloss.NewStyle().Foreground(colorError)

	if allOk {
		fmt.Println(successStyle.Render("✓ All checks passed!"))
		return nil
	}
	fmt.Println(errorStyle.Render("⊗ Some checks failed."))
	return fmt.Errorf("doctor check failed")
}

// checkWritable verifies the directory exists (creating it if needed) and
// accepts writes.
func checkWritable(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	probe := filepath.Join(dir, ".doctor-probe")
	if err := os.WriteFile(probe, []byte("ok"), 0644); err != nil {
		return err
	}
	return os.Remove(probe)
}
