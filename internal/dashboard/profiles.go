package dashboard

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/smileynet/agenda/internal/registry"
)

// CursorMarker is the prefix shown on the selected row.
const CursorMarker = "▸ "

// profilesState manages the cursor over the registry's profiles.
type profilesState struct {
	cursor int
}

// moveCursor steps cursor by delta over n rows, wrapping at both ends.
func moveCursor(cursor, delta, n int) int {
	if n == 0 {
		return 0
	}
	cursor = (cursor + delta) % n
	if cursor < 0 {
		cursor += n
	}
	return cursor
}

func (ps profilesState) handleKey(msg tea.KeyMsg, n int) (profilesState, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		ps.cursor = moveCursor(ps.cursor, -1, n)
	case "down", "j":
		ps.cursor = moveCursor(ps.cursor, 1, n)
	case "enter":
		if n > 0 && ps.cursor < n {
			index := ps.cursor
			return ps, func() tea.Msg { return LoginMsg{Index: index} }
		}
	}
	return ps, nil
}

// View renders the profile list.
func (ps profilesState) View(reg *registry.Registry) string {
	if reg.Len() == 0 {
		return "No profiles"
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Profiles"))
	for i, p := range reg.All() {
		b.WriteByte('\n')
		if i == ps.cursor {
			b.WriteString(CursorMarker)
		} else {
			b.WriteString("  ")
		}
		fmt.Fprintf(&b, "%d. %s ", i+1, p.Username())
		b.WriteString(mutedText.Render(fmt.Sprintf("(%d)", p.ContactCount())))
	}
	return b.String()
}
