package dashboard

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/smileynet/agenda/internal/profile"
	"github.com/smileynet/agenda/internal/render"
)

// contactsState manages the cursor over the logged-in profile's contacts.
type contactsState struct {
	cursor int
}

func (cs contactsState) handleKey(msg tea.KeyMsg, n int) contactsState {
	switch msg.String() {
	case "up", "k":
		cs.cursor = moveCursor(cs.cursor, -1, n)
	case "down", "j":
		cs.cursor = moveCursor(cs.cursor, 1, n)
	}
	return cs
}

// clamp keeps the cursor on a valid row after the list shrinks.
func (cs contactsState) clamp(n int) contactsState {
	if cs.cursor >= n {
		cs.cursor = n - 1
	}
	if cs.cursor < 0 {
		cs.cursor = 0
	}
	return cs
}

// View renders the contact list of p.
func (cs contactsState) View(p *profile.Profile) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(p.Username()))
	if p.ContactCount() == 0 {
		b.WriteString("\n\n")
		b.WriteString(mutedText.Render("No contacts, press a to add one"))
		return b.String()
	}
	for i := 0; i < p.ContactCount(); i++ {
		c, err := p.ContactAt(i)
		if err != nil {
			break
		}
		b.WriteByte('\n')
		if i == cs.cursor {
			b.WriteString(CursorMarker)
		} else {
			b.WriteString("  ")
		}
		b.WriteString(render.ContactLine(i, c))
	}
	return b.String()
}
