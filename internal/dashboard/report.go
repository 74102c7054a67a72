package dashboard

import "strings"

// reportState holds the outcome of the last import, export, or
// duplicate scan until any key is pressed.
type reportState struct {
	title string
	lines []string
}

// View renders the report.
func (rs reportState) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(rs.title))
	b.WriteByte('\n')
	for _, line := range rs.lines {
		b.WriteString("\n  ")
		b.WriteString(line)
	}
	b.WriteString("\n\n  ")
	b.WriteString(mutedText.Render("Press any key to continue"))
	return b.String()
}
