package dashboard

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/smileynet/agenda/internal/registry"
)

// pickerState lists the profiles other than the logged-in one.
type pickerState struct {
	purpose PickPurpose
	indexes []int // registry positions of the listed profiles
	names   []string
	cursor  int
}

// newPicker builds a picker over every profile except the one at exclude.
func newPicker(reg *registry.Registry, exclude int, purpose PickPurpose) pickerState {
	ps := pickerState{purpose: purpose}
	for i, p := range reg.All() {
		if i == exclude {
			continue
		}
		ps.indexes = append(ps.indexes, i)
		ps.names = append(ps.names, p.Username())
	}
	return ps
}

func (ps pickerState) handleKey(msg tea.KeyMsg) (pickerState, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		ps.cursor = moveCursor(ps.cursor, -1, len(ps.indexes))
	case "down", "j":
		ps.cursor = moveCursor(ps.cursor, 1, len(ps.indexes))
	case "enter":
		if ps.cursor < len(ps.indexes) {
			pick := PickMsg{Index: ps.indexes[ps.cursor], Purpose: ps.purpose}
			return ps, func() tea.Msg { return pick }
		}
	case "esc":
		return ps, func() tea.Msg { return CancelMsg{} }
	}
	return ps, nil
}

// View renders the picker prompt and the candidate profiles.
func (ps pickerState) View(current string) string {
	var b strings.Builder
	if ps.purpose == PickExport {
		fmt.Fprintf(&b, "Export contacts of %s to:\n", current)
	} else {
		fmt.Fprintf(&b, "Import contacts into %s from:\n", current)
	}
	if len(ps.names) == 0 {
		b.WriteString("\n  No other profiles")
		return b.String()
	}
	for i, name := range ps.names {
		b.WriteByte('\n')
		if i == ps.cursor {
			b.WriteString(CursorMarker)
		} else {
			b.WriteString("  ")
		}
		b.WriteString(name)
	}
	return b.String()
}
