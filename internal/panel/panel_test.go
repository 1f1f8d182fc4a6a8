package panel

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/karinto/litscan/internal/opts"
	"github.com/karinto/litscan/internal/scanner"
)

func newTestModel(t *testing.T) *Model {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "app.ts")
	content := "const a = \"hello there\";\nconst b = 'good morning';\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	o := opts.Defaults()
	m, err := New(path, "typescript", o, scanner.New(zerolog.Nop()), zerolog.Nop())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return m
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestPanelListsDetections(t *testing.T) {
	m := newTestModel(t)
	if len(m.detections) != 2 {
		t.Fatalf("expected 2 detections, got %d", len(m.detections))
	}
	view := m.View()
	if !strings.Contains(view, "hello there") {
		t.Fatalf("view missing first detection:\n%s", view)
	}
	if !strings.Contains(view, "good morning") {
		t.Fatalf("view missing second detection:\n%s", view)
	}
	if !strings.Contains(view, "2 strings") {
		t.Fatalf("view missing count header:\n%s", view)
	}
}

func TestPanelCursorNavigation(t *testing.T) {
	m := newTestModel(t)
	if m.cursor != 0 {
		t.Fatalf("initial cursor = %d", m.cursor)
	}
	m.Update(keyMsg("down"))
	if m.cursor != 1 {
		t.Fatalf("cursor after down = %d", m.cursor)
	}
	m.Update(keyMsg("down"))
	if m.cursor != 1 {
		t.Fatalf("cursor should clamp at last row, got %d", m.cursor)
	}
	m.Update(keyMsg("up"))
	if m.cursor != 0 {
		t.Fatalf("cursor after up = %d", m.cursor)
	}
	m.Update(keyMsg("up"))
	if m.cursor != 0 {
		t.Fatalf("cursor should clamp at first row, got %d", m.cursor)
	}
}

func TestPanelEnterShowsLocation(t *testing.T) {
	m := newTestModel(t)
	m.Update(keyMsg("enter"))
	if !strings.Contains(m.status, "at 1:11") {
		t.Fatalf("status should name the 1-based location, got %q", m.status)
	}
}

func TestPanelCyclesLanguageStyleAction(t *testing.T) {
	m := newTestModel(t)

	first := m.targetLanguage()
	m.Update(keyMsg("l"))
	if m.targetLanguage() == first {
		t.Fatal("l should cycle the target language")
	}

	firstStyle := m.style()
	m.Update(keyMsg("s"))
	if m.style() == firstStyle {
		t.Fatal("s should cycle the style")
	}

	firstAction := m.currentAction()
	m.Update(keyMsg("a"))
	if m.currentAction() == firstAction {
		t.Fatal("a should cycle the action")
	}
}

func TestPanelInlineActionsToggleDisablesCycling(t *testing.T) {
	m := newTestModel(t)
	m.options.InlineActions = false
	first := m.currentAction()
	m.Update(keyMsg("a"))
	if m.currentAction() != first {
		t.Fatal("a should be inert when inline actions are disabled")
	}
	if strings.Contains(m.View(), "translate(") {
		t.Fatal("help line should hide transform keys when inline actions are disabled")
	}
}

func TestPanelTransformResultUpdatesList(t *testing.T) {
	m := newTestModel(t)
	m.busy = true
	updated, _ := m.Update(transformDoneMsg{status: "replace: done", detections: m.detections[:1]})
	got := updated.(*Model)
	if got.busy {
		t.Fatal("busy should clear after transform")
	}
	if len(got.detections) != 1 {
		t.Fatalf("detections should be replaced, got %d", len(got.detections))
	}
	if got.status != "replace: done" {
		t.Fatalf("status mismatch: %q", got.status)
	}
}

func TestPanelTransformErrorIsGeneric(t *testing.T) {
	m := newTestModel(t)
	m.busy = true
	updated, _ := m.Update(transformDoneMsg{err: os.ErrNotExist})
	got := updated.(*Model)
	if got.lastErr == "" {
		t.Fatal("expected a failure message")
	}
	if strings.Contains(got.lastErr, "file does not exist") {
		t.Fatalf("failure message should stay generic, got %q", got.lastErr)
	}
}
