package dashboard

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// confirmState holds the contact awaiting deletion.
type confirmState struct {
	pos   int
	name  string
	phone string
}

func (cs confirmState) handleKey(msg tea.KeyMsg) (confirmState, tea.Cmd) {
	switch msg.String() {
	case "y", "enter":
		pos := cs.pos
		return cs, func() tea.Msg { return ConfirmDeleteMsg{Pos: pos} }
	case "n", "esc":
		return cs, func() tea.Msg { return CancelMsg{} }
	}
	return cs, nil
}

// View renders the confirmation screen.
func (cs confirmState) View() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Delete contact %d?\n", cs.pos+1)
	fmt.Fprintf(&b, "\n  %s  %s", cs.name, cs.phone)
	b.WriteString("\n\n  [y] Delete   [n] Keep")
	return b.String()
}
