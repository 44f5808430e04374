package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/spf13/cobra"

	"github.com/dropsel/dropsel/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Display current configuration",
	Long: `Display the current resolved configuration showing values from all sources.

Configuration precedence (highest to lowest):
  1. Environment variables (DROPSEL_*)
  2. Project config (./dropsel.yml)
  3. Global config (~/.config/dropsel/dropsel.yml)
  4. Defaults`,
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	globalPath := config.GlobalPath()
	projectPath := config.ProjectPath()
	absProjectPath, err := filepath.Abs(projectPath)
	if err != nil {
		absProjectPath = projectPath
	}

	globalExists := fileExists(globalPath)
	projectExists := fileExists(projectPath)

	configRows := [][]string{
		{"name", cfg.Name},
		{"choices_file", cfg.ChoicesFile},
		{"popup", cfg.Popup},
		{"trigger", strconv.FormatBool(cfg.Trigger)},
		{"multi", strconv.FormatBool(cfg.Multi)},
		{"data_dir", cfg.DataDir},
		{"log_level", cfg.LogLevel},
		{"log_file", cfg.LogFile},
	}

	configTable := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorBorder)).
		Headers("Key", "Value").
		Rows(configRows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return lipgloss.NewStyle().
					Foreground(colorPrimary).
					Bold(true).
					Padding(0, 1)
			}
			style := lipgloss.NewStyle().Padding(0, 1)
			if col == 0 {
				return style.Foreground(colorBase)
			}
			return style.Foreground(colorMuted)
		})

	titleStyle := lipgloss.NewStyle().Foreground(colorPrimary).Bold(true)
	fmt.Println(titleStyle.Render("Configuration"))
	fmt.Println(configTable)
	fmt.Println()

	fileRows := [][]string{}
	if globalExists {
		fileRows = append(fileRows, []string{"Global", globalPath, "✓"})
	} else {
		fileRows = append(fileRows, []string{"Global", globalPath, "not found"})
	}
	if projectExists {
		fileRows = append(fileRows, []string{"Project", absProjectPath, "✓"})
	} else {
		fileRows = append(fileRows, []string{"Project", absProjectPath, "not found"})
	}

	filesTable := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorBorder)).
		Headers("Type", "Path", "Status").
		Rows(fileRows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return lipgloss.NewStyle().
					Foreground(colorPrimary).
					Bold(true).
					Padding(0, 1)
			}
			style := lipgloss.NewStyle().Padding(0, 1)
			if col == 2 {
				if row < len(fileRows) && fileRows[row][2] == "✓" {
					return style.Foreground(colorSuccess)
				}
				return style.Foreground(colorWarning)
			}
			if col == 0 {
				return style.Foreground(colorBase)
			}
			return style.Foreground(colorMuted)
		})

	fmt.Println(titleStyle.Render("Config Files"))
	fmt.Println(filesTable)

	envVars := []string{
		"DROPSEL_NAME",
		"DROPSEL_CHOICES_FILE",
		"DROPSEL_POPUP",
		"DROPSEL_TRIGGER",
		"DROPSEL_MULTI",
		"DROPSEL_DATA_DIR",
		"DROPSEL_LOG_LEVEL",
		"DROPSEL_LOG_FILE",
	}

	var envRows [][]string
	for _, name := range envVars {
		if val := os.Getenv(name); val != "" {
			envRows = append(envRows, []string{name, val})
		}
	}

	if len(envRows) > 0 {
		fmt.Println()
		envTable := table.New().
			Border(lipgloss.RoundedBorder()).
			BorderStyle(lipgloss.NewStyle().Foreground(colorBorder)).
			Headers("Variable", "Value").
			Rows(envRows...).
			StyleFunc(func(row, col int) lipgloss.Style {
				if row == table.HeaderRow {
					return lipgloss.NewStyle().
						Foreground(colorPrimary).
						Bold(true).
						Padding(0, 1)
				}
				style := lipgloss.NewStyle().Padding(0, 1)
				if col == 0 {
					return style.Foreground(colorBase)
				}
				return style.Foreground(colorMuted)
			})

		fmt.Println(titleStyle.Render("Environment Overrides"))
		fmt.Println(envTable)
	}

	if !globalExists && !projectExists {
		fmt.Println()
		noteStyle := lipgloss.NewStyle().Foreground(colorWarning)
		fmt.Println(noteStyle.Render("No config files found. Run 'dropsel init' to create one."))
	}

	return nil
}
