package dashboard

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/smileynet/agenda/internal/contact"
)

const (
	fieldName = iota
	fieldPhone
	fieldAge
	fieldCity
	fieldNote
	fieldCount
)

var fieldLabels = [fieldCount]string{"Name", "Phone", "Age", "City", "Note"}

var (
	errNameRequired  = errors.New("name is required")
	errPhoneRequired = errors.New("phone is required")
	errAgeInvalid    = errors.New("age must be a whole number")
)

// formState is the add/edit contact form.
type formState struct {
	inputs  []textinput.Model
	focused int
	edit    int // position of the edited contact, -1 when adding
	err     string
}

// newForm returns a form for adding (c == nil) or editing the contact at edit.
func newForm(edit int, c *contact.Contact) formState {
	fs := formState{edit: edit, inputs: make([]textinput.Model, fieldCount)}
	for i := range fs.inputs {
		ti := textinput.New()
		ti.Prompt = ""
		ti.CharLimit = 64
		ti.Placeholder = strings.ToLower(fieldLabels[i])
		_ = ti.Cursor.SetMode(cursor.CursorStatic)
		fs.inputs[i] = ti
	}
	if c != nil {
		fs.inputs[fieldName].SetValue(c.Name())
		fs.inputs[fieldPhone].SetValue(c.Phone())
		fs.inputs[fieldAge].SetValue(strconv.Itoa(c.Age()))
		fs.inputs[fieldCity].SetValue(c.City())
		fs.inputs[fieldNote].SetValue(c.Note())
	}
	_ = fs.inputs[0].Focus()
	return fs
}

func (fs formState) adding() bool { return fs.edit < 0 }

func (fs formState) Update(msg tea.KeyMsg) (formState, tea.Cmd) {
	switch msg.String() {
	case "tab", "down":
		return fs.focus(fs.focused + 1), nil
	case "shift+tab", "up":
		return fs.focus(fs.focused - 1), nil
	case "enter":
		v, err := fs.values()
		if err != nil {
			fs.err = err.Error()
			return fs, nil
		}
		submit := FormSubmitMsg{Values: v, Edit: fs.edit}
		return fs, func() tea.Msg { return submit }
	case "esc":
		return fs, func() tea.Msg { return CancelMsg{} }
	}

	fs.err = ""
	var cmd tea.Cmd
	fs.inputs[fs.focused], cmd = fs.inputs[fs.focused].Update(msg)
	return fs, cmd
}

// focus moves input focus to field i, wrapping at both ends.
func (fs formState) focus(i int) formState {
	fs.inputs[fs.focused].Blur()
	fs.focused = moveCursor(i, 0, fieldCount)
	_ = fs.inputs[fs.focused].Focus()
	return fs
}

// values validates the inputs and returns them trimmed.
func (fs formState) values() (ContactValues, error) {
	v := ContactValues{
		Name:  strings.TrimSpace(fs.inputs[fieldName].Value()),
		Phone: strings.TrimSpace(fs.inputs[fieldPhone].Value()),
		City:  strings.TrimSpace(fs.inputs[fieldCity].Value()),
		Note:  strings.TrimSpace(fs.inputs[fieldNote].Value()),
	}
	if v.Name == "" {
		return v, errNameRequired
	}
	if v.Phone == "" {
		return v, errPhoneRequired
	}
	age, err := strconv.Atoi(strings.TrimSpace(fs.inputs[fieldAge].Value()))
	if err != nil || age < 0 {
		return v, errAgeInvalid
	}
	v.Age = age
	return v, nil
}

// View renders the form with one labelled input per line.
func (fs formState) View() string {
	var b strings.Builder
	if fs.adding() {
		b.WriteString(titleStyle.Render("New contact"))
	} else {
		b.WriteString(titleStyle.Render(fmt.Sprintf("Edit contact %d", fs.edit+1)))
	}
	b.WriteByte('\n')
	for i, ti := range fs.inputs {
		label := fmt.Sprintf("%-6s", fieldLabels[i]+":")
		if i == fs.focused {
			label = activeLabel.Render(label)
		}
		fmt.Fprintf(&b, "\n  %s %s", label, ti.View())
	}
	if fs.err != "" {
		b.WriteString("\n\n  ")
		b.WriteString(errorText.Render(fs.err))
	}
	return b.String()
}
