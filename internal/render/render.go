// Package render formats profiles, contacts, and operation outcomes as text
// for both the plain CLI output and the dashboard panes.
package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/smileynet/agenda/internal/contact"
	"github.com/smileynet/agenda/internal/profile"
)

// ProfileLine renders a registry entry using its 1-based position.
func ProfileLine(pos int, p *profile.Profile) string {
	return fmt.Sprintf("%d. %s — %s (%s)", pos+1, p.Username(), p.Bio(), plural(p.ContactCount(), "contact"))
}

// ContactLine renders a one-line list entry using its 1-based position.
func ContactLine(pos int, c *contact.Contact) string {
	return fmt.Sprintf("%d. %s  %s", pos+1, c.Name(), c.Phone())
}

// ContactDetail renders every field of c, one per line.
func ContactDetail(c *contact.Contact) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Name:  %s\n", c.Name())
	fmt.Fprintf(&b, "Phone: %s\n", c.Phone())
	fmt.Fprintf(&b, "Age:   %d\n", c.Age())
	fmt.Fprintf(&b, "City:  %s\n", c.City())
	fmt.Fprintf(&b, "Note:  %s", c.Note())
	return b.String()
}

// ContactTable renders the contacts of p as a bordered table.
func ContactTable(p *profile.Profile) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("#", "Name", "Phone", "Age", "City", "Note")
	for i := 0; i < p.ContactCount(); i++ {
		c, err := p.ContactAt(i)
		if err != nil {
			continue
		}
		t.Row(strconv.Itoa(i+1), c.Name(), c.Phone(), strconv.Itoa(c.Age()), c.City(), c.Note())
	}
	return t.Render()
}

// ImportSummary describes the outcome of merging src into dst.
// The skipped line is only present when something was skipped.
func ImportSummary(src, dst string, r profile.ImportResult) []string {
	lines := []string{
		fmt.Sprintf("Imported %s from %q into %q.", plural(r.Imported, "contact"), src, dst),
	}
	if r.Skipped > 0 {
		lines = append(lines, fmt.Sprintf("Skipped %s with a phone already present in %q.", plural(r.Skipped, "contact"), dst))
	}
	return lines
}

// Duplicates describes the duplicate scan of a profile.
func Duplicates(username string, pairs []profile.DuplicatePair) []string {
	if len(pairs) == 0 {
		return []string{fmt.Sprintf("No duplicate contacts in profile %q.", username)}
	}
	lines := []string{fmt.Sprintf("Duplicate contacts in profile %q:", username)}
	for _, d := range pairs {
		lines = append(lines, fmt.Sprintf("- %s and %s share phone %s", d.First, d.Second, d.Phone))
	}
	return lines
}

func plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}
