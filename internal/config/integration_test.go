package config

import (
	"os"
	"path/filepath"
	"testing"
)

// isolate points HOME and the working directory at temp dirs so tests never
// touch real config files.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	tmp := t.TempDir()
	if err := os.Chdir(tmp); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Name != "dropdown" {
		t.Errorf("expected default name dropdown, got %s", cfg.Name)
	}
	if cfg.Popup != "auto" {
		t.Errorf("expected default popup auto, got %s", cfg.Popup)
	}
	if cfg.Trigger {
		t.Error("trigger should default to false")
	}
	if cfg.DataDir != ".dropsel" {
		t.Errorf("expected default data_dir .dropsel, got %s", cfg.DataDir)
	}
}

func TestWriteGlobalThenLoad(t *testing.T) {
	isolate(t)

	cfg := &Config{
		Name:        "fruit",
		ChoicesFile: "fruit.yml",
		Popup:       "always",
		Trigger:     true,
		Multi:       true,
		DataDir:     ".dropsel",
		LogLevel:    "debug",
	}
	if err := WriteGlobal(cfg); err != nil {
		t.Fatalf("WriteGlobal failed: %v", err)
	}
	if !Exists() {
		t.Fatal("config file should exist after WriteGlobal")
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Name != "fruit" {
		t.Errorf("expected name fruit, got %s", loaded.Name)
	}
	if loaded.Popup != "always" {
		t.Errorf("expected popup always, got %s", loaded.Popup)
	}
	if !loaded.Trigger {
		t.Error("expected trigger true")
	}
}

func TestProjectConfigOverridesGlobal(t *testing.T) {
	isolate(t)

	if err := WriteGlobal(&Config{
		Name: "global-widget", Popup: "never", DataDir: ".dropsel", LogLevel: "info",
	}); err != nil {
		t.Fatalf("WriteGlobal failed: %v", err)
	}

	project := []byte("name: project-widget\n")
	if err := os.WriteFile(ProjectPath(), project, 0644); err != nil {
		t.Fatalf("failed to write project config: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Name != "project-widget" {
		t.Errorf("project config should win for name, got %s", cfg.Name)
	}
	if cfg.Popup != "never" {
		t.Errorf("global value should survive for unset project keys, got %s", cfg.Popup)
	}
}

func TestEnvOverridesFiles(t *testing.T) {
	isolate(t)

	if err := WriteGlobal(&Config{
		Name: "file-widget", Popup: "auto", DataDir: ".dropsel", LogLevel: "info",
	}); err != nil {
		t.Fatalf("WriteGlobal failed: %v", err)
	}
	t.Setenv("DROPSEL_NAME", "env-widget")
	t.Setenv("DROPSEL_POPUP", "always")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Name != "env-widget" {
		t.Errorf("env should win, got %s", cfg.Name)
	}
	if cfg.Popup != "always" {
		t.Errorf("env should win for popup, got %s", cfg.Popup)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	isolate(t)

	t.Setenv("DROPSEL_POPUP", "sometimes")
	if _, err := Load(); err == nil {
		t.Error("invalid popup mode should fail validation")
	}
}

func TestValidate(t *testing.T) {
	cfg := &Config{Name: "w", Popup: "auto", LogLevel: "info"}
	if err := cfg.Validate(); err != nil {
		t.Errorf("valid config rejected: %v", err)
	}

	cfg = &Config{Name: "", Popup: "bogus", LogLevel: "loud"}
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected validation errors")
	}
}

func TestGlobalPathUnderHome(t *testing.T) {
	isolate(t)
	home, _ := os.UserHomeDir()
	want := filepath.Join(home, ".config", "dropsel", "dropsel.yml")
	if GlobalPath() != want {
		t.Errorf("GlobalPath = %s, want %s", GlobalPath(), want)
	}
}
