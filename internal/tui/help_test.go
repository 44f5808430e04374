package tui

import (
	"strings"
	"testing"
)

func TestHelp_View(t *testing.T) {
	h := NewHelp()
	h.SetSize(100, 40)

	view := h.View()
	if view == "" {
		t.Fatal("expected rendered help output")
	}
	if !strings.Contains(view, "dropsel") {
		t.Error("help should mention the program name")
	}
	if !strings.Contains(view, "Dialog") {
		t.Error("help should cover the dialog surface")
	}
}

func TestHelp_RerendersOnResize(t *testing.T) {
	h := NewHelp()
	h.SetSize(100, 40)
	_ = h.View()

	h.SetSize(44, 20)
	if h.rendered != "" {
		t.Error("resize should invalidate the cached render")
	}
	if h.View() == "" {
		t.Error("expected rendered help output after resize")
	}
}
