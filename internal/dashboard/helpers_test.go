package dashboard

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/smileynet/agenda/internal/registry"
)

// stripANSI removes ANSI escape sequences from a string.
func stripANSI(s string) string {
	var out []byte
	i := 0
	for i < len(s) {
		if s[i] == '\x1b' && i+1 < len(s) && s[i+1] == '[' {
			j := i + 2
			for j < len(s) && (s[j] < 'A' || s[j] > 'Z') && (s[j] < 'a' || s[j] > 'z') {
				j++
			}
			if j < len(s) {
				j++
			}
			i = j
		} else {
			out = append(out, s[i])
			i++
		}
	}
	return string(out)
}

// containsPlainText checks if s contains sub after stripping ANSI escapes.
func containsPlainText(s, sub string) bool {
	return strings.Contains(stripANSI(s), sub)
}

// keyPress builds a KeyMsg from its string form ("enter", "esc", "q", ...).
// Anything that is not a named key is sent as runes.
func keyPress(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEscape}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// isInternal reports whether msg is one of the dashboard's own messages.
func isInternal(msg tea.Msg) bool {
	switch msg.(type) {
	case LoginMsg, FormSubmitMsg, PickMsg, ConfirmDeleteMsg, CancelMsg:
		return true
	}
	return false
}

// drive feeds msg to m and keeps feeding back any dashboard message its
// commands produce, the way the Bubble Tea runtime would. It reports
// whether a quit was requested.
func drive(t *testing.T, m Model, msg tea.Msg) (Model, bool) {
	t.Helper()
	for {
		updated, cmd := m.Update(msg)
		m = updated.(Model)
		if cmd == nil {
			return m, false
		}
		next := cmd()
		if _, ok := next.(tea.QuitMsg); ok {
			return m, true
		}
		if !isInternal(next) {
			return m, false
		}
		msg = next
	}
}

// press sends each key in order and returns the resulting model.
func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		m, _ = drive(t, m, keyPress(k))
	}
	return m
}

// seeded returns the default registry, closed when the test ends.
func seeded(t *testing.T) *registry.Registry {
	t.Helper()
	reg, err := registry.Default()
	if err != nil {
		t.Fatalf("registry.Default() error = %v", err)
	}
	t.Cleanup(reg.Close)
	return reg
}

// newSizedModel returns a model over the seeded registry with a window size.
func newSizedModel(t *testing.T, w, h int) Model {
	t.Helper()
	m := NewModel(seeded(t))
	updated, _ := m.Update(tea.WindowSizeMsg{Width: w, Height: h})
	return updated.(Model)
}

// loggedIn returns a sized model logged into the profile at index.
func loggedIn(t *testing.T, index int) Model {
	t.Helper()
	m := newSizedModel(t, 100, 30)
	m, _ = drive(t, m, LoginMsg{Index: index})
	if m.mode != ModeContacts {
		t.Fatalf("mode after login = %d, want ModeContacts", m.mode)
	}
	return m
}
