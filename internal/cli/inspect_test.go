package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/viewlayout/pkg/scene"
)

func demoResult(t *testing.T) *scene.Result {
	t.Helper()
	r, err := scene.Build(scene.Default(), scene.Options{})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	t.Cleanup(r.Close)
	return r
}

func update(t *testing.T, m ConstraintListModel, msg tea.Msg) (ConstraintListModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(ConstraintListModel)
	if !ok {
		t.Fatalf("Update() returned %T", next)
	}
	return model, cmd
}

func TestConstraintListNavigation(t *testing.T) {
	m := NewConstraintListModel(demoResult(t))
	n := len(m.Constraints)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	if m.Cursor != 0 {
		t.Errorf("Cursor = %d after up at top, want 0", m.Cursor)
	}

	for range n + 3 {
		m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	}
	if m.Cursor != n-1 {
		t.Errorf("Cursor = %d after scrolling past the end, want %d", m.Cursor, n-1)
	}
	if m.Offset != n-m.Height {
		t.Errorf("Offset = %d, want %d", m.Offset, n-m.Height)
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}})
	if m.Cursor != n-2 {
		t.Errorf("Cursor = %d after k, want %d", m.Cursor, n-2)
	}
}

func TestConstraintListToggle(t *testing.T) {
	r := demoResult(t)
	m := NewConstraintListModel(r)
	before := r.Engine.Len()

	first := m.Constraints[0]
	if !first.IsActive() {
		t.Fatal("first demo constraint should be active")
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	if first.IsActive() {
		t.Error("space should deactivate the selected constraint")
	}
	if r.Engine.Len() != before-1 {
		t.Errorf("engine Len() = %d, want %d", r.Engine.Len(), before-1)
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	if !first.IsActive() || r.Engine.Len() != before {
		t.Error("second space should reactivate the constraint")
	}
	if m.Toggled != 2 {
		t.Errorf("Toggled = %d, want 2", m.Toggled)
	}
}

func TestConstraintListQuit(t *testing.T) {
	m := NewConstraintListModel(demoResult(t))

	for _, key := range []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune{'q'}},
		{Type: tea.KeyEsc},
		{Type: tea.KeyCtrlC},
	} {
		_, cmd := update(t, m, key)
		if cmd == nil {
			t.Errorf("%q should quit", key.String())
			continue
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("%q should return tea.Quit", key.String())
		}
	}
}

func TestConstraintListWindowSize(t *testing.T) {
	m := NewConstraintListModel(demoResult(t))

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 30})
	if m.Height != 22 {
		t.Errorf("Height = %d, want 22", m.Height)
	}
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 4})
	if m.Height != 5 {
		t.Errorf("Height = %d, want minimum 5", m.Height)
	}
}

func TestConstraintListView(t *testing.T) {
	m := NewConstraintListModel(demoResult(t))
	view := m.View()

	for _, want := range []string{"Constraints · demo", "space toggle", "▸ ", "[1/15] 12 active", "center"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q:\n%s", want, view)
		}
	}
}
