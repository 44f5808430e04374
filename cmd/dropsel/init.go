package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dropsel/dropsel/internal/config"
	"github.com/dropsel/dropsel/internal/template"
)

var initFlags struct {
	name    string
	popup   string
	choices string
	global  bool
	force   bool
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create starter config and choices files",
	Long: `Create a dropsel configuration file and a starter choices file.

By default files are created in the current directory. Use --global to write
the config to ~/.config/dropsel/dropsel.yml instead; the choices file always
lands in the current directory.`,
	RunE: runInit,
}

func init() {
	initCmd.Flags().StringVarP(&initFlags.name, "name", "n", "dropdown", "Widget name (sync channel key)")
	initCmd.Flags().StringVar(&initFlags.popup, "popup", "auto", "Presentation override: auto, always, never")
	initCmd.Flags().StringVarP(&initFlags.choices, "choices", "c", "choices.yml", "Choices file to create")
	initCmd.Flags().BoolVarP(&initFlags.global, "global", "g", false, "Write config to the global location")
	initCmd.Flags().BoolVarP(&initFlags.force, "force", "f", false, "Overwrite existing files")
}

func runInit(cmd *cobra.Command, args []string) error {
	vars := template.Variables{
		Name:    initFlags.name,
		Popup:   initFlags.popup,
		Choices: initFlags.choices,
	}

	configPath := config.ProjectPath()
	if initFlags.global {
		configPath = config.GlobalPath()
	}
	if !initFlags.force && fileExists(configPath) {
		return fmt.Errorf("config file already exists at %s\n\nUse --force to overwrite", configPath)
	}
	if !initFlags.force && fileExists(initFlags.choices) {
		return fmt.Errorf("choices file already exists at %s\n\nUse --force to overwrite", initFlags.choices)
	}

	if err := os.WriteFile(initFlags.choices, []byte(template.Render(template.DefaultChoices, vars)), 0644); err != nil {
		return fmt.Errorf("failed to write choices file: %w", err)
	}

	content := template.Render(template.DefaultConfig, vars)
	if initFlags.global {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		cfg.Name = initFlags.name
		cfg.Popup = initFlags.popup
		cfg.ChoicesFile = initFlags.choices
		if err := config.WriteGlobal(cfg); err != nil {
			return err
		}
	} else {
		if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	fmt.Printf("Created %s and %s\n\n", configPath, initFlags.choices)
	fmt.Println("Run 'dropsel demo' to try the widget.")
	return nil
}

// fileExists checks if a file exists (helper for init and doctor).
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
