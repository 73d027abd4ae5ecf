package bottombar

import (
	"strings"
	"testing"

	"tableflip.dev/dayplan/pkg/runner/tea/internal/theme"
)

func TestCommandSuggestionsFilterOnFirstWord(t *testing.T) {
	m := New(theme.Default().Footer)
	m.SetCommandDefinitions([]CommandOption{
		{Name: "save", Description: "write changes"},
		{Name: "preset", Description: "apply a preset"},
		{Name: "presetnew", Description: "save tasks as a preset"},
	})
	m.SetMode(ModeCommand)
	m.UpdateCommandInput("pre weekend", "pre weekend")

	got, ok := m.Suggestion()
	if !ok || got.Name != "preset" {
		t.Fatalf("expected preset suggestion, got %+v", got)
	}
	if h := m.Height(); h != 3 {
		t.Fatalf("expected two suggestions plus input line, got height %d", h)
	}
	view, lines := m.View()
	if lines != 3 || !strings.Contains(view, ":pre weekend") {
		t.Fatalf("unexpected command view %q", view)
	}
}

func TestStatusLineShowsMode(t *testing.T) {
	m := New(theme.Default().Footer)
	m.SetStatus("Saved")
	m.SetMode(ModeConfirm)
	view, lines := m.View()
	if lines != 1 {
		t.Fatalf("expected one line, got %d", lines)
	}
	if !strings.Contains(view, "[CONFIRM]") || !strings.Contains(view, "Saved") {
		t.Fatalf("unexpected status line %q", view)
	}
}
