package dashboard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/smileynet/agenda/internal/contact"
	"github.com/smileynet/agenda/internal/profile"
	"github.com/smileynet/agenda/internal/registry"
	"github.com/smileynet/agenda/internal/render"
)

// helpBarHeight is the number of lines reserved for the help bar at the bottom.
const helpBarHeight = 1

// statusBarHeight is the number of lines reserved for the status line.
const statusBarHeight = 1

// borderChrome is the number of lines consumed by top + bottom borders.
const borderChrome = 2

// Model is the root Bubble Tea model for the dashboard TUI.
// It manages a two-pane layout with mode-based routing and focus management.
type Model struct {
	reg    *registry.Registry
	logger *zap.Logger

	mode     Mode
	focus    Focus
	width    int
	height   int
	viewport viewport.Model
	help     help.Model

	current  int // registry position of the logged-in profile, -1 when logged out
	profiles profilesState
	contacts contactsState
	form     formState
	picker   pickerState
	confirm  confirmState
	report   reportState

	status    string
	statusErr bool
}

// Option configures a Model.
type Option func(*Model)

// WithLogger sets the logger used for session events.
func WithLogger(l *zap.Logger) Option {
	return func(m *Model) {
		if l != nil {
			m.logger = l
		}
	}
}

// NewModel creates a dashboard Model on the profile list with left-pane focus.
func NewModel(reg *registry.Registry, opts ...Option) Model {
	m := Model{
		reg:      reg,
		logger:   zap.NewNop(),
		mode:     ModeProfiles,
		focus:    PaneLeft,
		viewport: viewport.New(0, 0),
		help:     help.New(),
		current:  -1,
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.syncDetail()
	return m
}

// Init returns the initial command.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles incoming messages with mode-based routing.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		_, rightWidth := PaneWidths(msg.Width)
		vpWidth := rightWidth - borderChrome
		if vpWidth < 0 {
			vpWidth = 0
		}
		m.viewport.Width = vpWidth
		m.viewport.Height = m.contentHeight()

	case LoginMsg:
		m.login(msg.Index)

	case FormSubmitMsg:
		m.applyForm(msg)

	case PickMsg:
		m.applyPick(msg)

	case ConfirmDeleteMsg:
		m.deleteContact(msg.Pos)

	case CancelMsg:
		m.mode = ModeContacts

	case tea.KeyMsg:
		m, cmd = m.handleKey(msg)
	}

	m.syncDetail()
	return m, cmd
}

// handleKey processes key messages with global and mode-specific routing.
func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	var cmd tea.Cmd
	switch m.mode {
	case ModeProfiles:
		if msg.String() == "q" {
			return m, tea.Quit
		}
		m.profiles, cmd = m.profiles.handleKey(msg, m.reg.Len())
	case ModeContacts:
		return m.handleContactsKey(msg)
	case ModeForm:
		m.form, cmd = m.form.Update(msg)
	case ModePicker:
		m.picker, cmd = m.picker.handleKey(msg)
	case ModeConfirm:
		m.confirm, cmd = m.confirm.handleKey(msg)
	case ModeReport:
		m.mode = ModeContacts
	}
	return m, cmd
}

func (m Model) handleContactsKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	p := m.profile()
	if p == nil {
		m.logout()
		return m, nil
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "tab":
		if m.focus == PaneLeft {
			m.focus = PaneRight
		} else {
			m.focus = PaneLeft
		}

	case "up", "k", "down", "j":
		if m.focus == PaneRight {
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
		m.contacts = m.contacts.handleKey(msg, p.ContactCount())

	case "a":
		m.form = newForm(-1, nil)
		m.mode = ModeForm

	case "e":
		if c := m.selectedContact(); c != nil {
			m.form = newForm(m.contacts.cursor, c)
			m.mode = ModeForm
		}

	case "d":
		if c := m.selectedContact(); c != nil {
			m.confirm = confirmState{pos: m.contacts.cursor, name: c.Name(), phone: c.Phone()}
			m.mode = ModeConfirm
		}

	case "i":
		m.picker = newPicker(m.reg, m.current, PickImport)
		m.mode = ModePicker

	case "x":
		m.picker = newPicker(m.reg, m.current, PickExport)
		m.mode = ModePicker

	case "u":
		m.report = reportState{
			title: "Duplicates",
			lines: render.Duplicates(p.Username(), p.DetectDuplicates()),
		}
		m.mode = ModeReport

	case "esc":
		m.logout()
	}
	return m, nil
}

// profile returns the logged-in profile, or nil when logged out.
func (m Model) profile() *profile.Profile {
	if m.current < 0 {
		return nil
	}
	p, err := m.reg.Get(m.current)
	if err != nil {
		return nil
	}
	return p
}

// selectedContact returns the contact under the cursor, or nil.
func (m Model) selectedContact() *contact.Contact {
	p := m.profile()
	if p == nil {
		return nil
	}
	c, err := p.ContactAt(m.contacts.cursor)
	if err != nil {
		return nil
	}
	return c
}

func (m *Model) login(index int) {
	p, err := m.reg.Get(index)
	if err != nil {
		m.setError(err.Error())
		return
	}
	m.current = index
	m.contacts = contactsState{}
	m.focus = PaneLeft
	m.mode = ModeContacts
	m.setStatus(fmt.Sprintf("Logged in as %s.", p.Username()))
	m.logger.Info("logged in", zap.String("profile", p.Username()))
}

func (m *Model) logout() {
	if p := m.profile(); p != nil {
		m.logger.Info("logged out", zap.String("profile", p.Username()))
	}
	m.current = -1
	m.focus = PaneLeft
	m.mode = ModeProfiles
	m.setStatus("")
}

func (m *Model) applyForm(msg FormSubmitMsg) {
	p := m.profile()
	if p == nil {
		m.logout()
		return
	}
	v := msg.Values

	if msg.Edit < 0 {
		if p.HasPhone(v.Phone) {
			m.form.err = fmt.Sprintf("phone %s is already in %s", v.Phone, p.Username())
			return
		}
		p.AppendContact(contact.New(v.Name, v.Phone, v.Age, v.City, v.Note))
		m.contacts.cursor = p.ContactCount() - 1
		m.setStatus(fmt.Sprintf("Added %s.", v.Name))
		m.mode = ModeContacts
		return
	}

	c, err := p.ContactAt(msg.Edit)
	if err != nil {
		m.setError(err.Error())
		m.mode = ModeContacts
		return
	}
	if v.Phone != c.Phone() && p.HasPhone(v.Phone) {
		m.form.err = fmt.Sprintf("phone %s is already in %s", v.Phone, p.Username())
		return
	}
	c.SetName(v.Name)
	c.SetPhone(v.Phone)
	c.SetAge(v.Age)
	c.SetCity(v.City)
	c.SetNote(v.Note)
	m.setStatus(fmt.Sprintf("Updated %s.", v.Name))
	m.mode = ModeContacts
}

func (m *Model) applyPick(msg PickMsg) {
	p := m.profile()
	other, err := m.reg.Get(msg.Index)
	if p == nil || err != nil {
		m.setError("profile is no longer available")
		m.mode = ModeContacts
		return
	}

	switch msg.Purpose {
	case PickExport:
		res := profile.Export(p, other)
		m.report = reportState{
			title: "Export",
			lines: render.ImportSummary(p.Username(), other.Username(), res),
		}
	default:
		res := p.ImportFrom(other)
		m.report = reportState{
			title: "Import",
			lines: render.ImportSummary(other.Username(), p.Username(), res),
		}
	}
	m.setStatus("")
	m.mode = ModeReport
}

func (m *Model) deleteContact(pos int) {
	p := m.profile()
	if p == nil {
		m.logout()
		return
	}
	name := m.confirm.name
	if p.DeleteContactAt(pos) {
		m.setStatus(fmt.Sprintf("Deleted %s.", name))
	} else {
		m.setError(fmt.Sprintf("no contact at position %d", pos+1))
	}
	m.contacts = m.contacts.clamp(p.ContactCount())
	m.mode = ModeContacts
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.statusErr = false
}

func (m *Model) setError(s string) {
	m.status = s
	m.statusErr = true
}

// syncDetail refreshes the right pane for the current selection.
func (m *Model) syncDetail() {
	var content string
	switch m.mode {
	case ModeProfiles:
		p, err := m.reg.Get(m.profiles.cursor)
		if err != nil {
			content = "No profile selected"
			break
		}
		content = fmt.Sprintf("%s\n\n%s\n\n%d contacts", titleStyle.Render(p.Username()), p.Bio(), p.ContactCount())
	default:
		if c := m.selectedContact(); c != nil {
			content = render.ContactDetail(c)
		} else {
			content = "No contact selected"
		}
	}
	m.viewport.SetContent(content)
}

// contentHeight returns the usable height for pane content,
// accounting for border chrome, the status line, and the help bar.
func (m Model) contentHeight() int {
	h := m.height - borderChrome - statusBarHeight - helpBarHeight
	if h < 1 {
		return 1
	}
	return h
}

// View renders the two-pane layout, or a single overlay pane for
// forms, pickers, confirmations, and reports.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	contentHeight := m.contentHeight()
	var body string
	switch m.mode {
	case ModeProfiles, ModeContacts:
		body = m.viewPanes(contentHeight)
	default:
		body = FocusedBorder().
			Width(m.width - borderChrome).
			Height(contentHeight).
			Render(m.viewOverlay())
	}

	status := statusText.Render(m.status)
	if m.statusErr {
		status = errorText.Render(m.status)
	}
	helpView := m.help.View(HelpBindings(m.mode))

	return lipgloss.JoinVertical(lipgloss.Left, body, status, helpView)
}

func (m Model) viewPanes(contentHeight int) string {
	leftWidth, rightWidth := PaneWidths(m.width)

	var leftStyle, rightStyle lipgloss.Style
	if m.focus == PaneLeft {
		leftStyle = FocusedBorder()
		rightStyle = UnfocusedBorder()
	} else {
		leftStyle = UnfocusedBorder()
		rightStyle = FocusedBorder()
	}

	leftStyle = leftStyle.
		Width(leftWidth - borderChrome).
		Height(contentHeight)
	rightStyle = rightStyle.
		Width(rightWidth - borderChrome).
		Height(contentHeight)

	leftPane := leftStyle.Render(m.viewLeft())
	rightPane := rightStyle.Render(m.viewport.View())
	return lipgloss.JoinHorizontal(lipgloss.Top, leftPane, rightPane)
}

// viewLeft renders the left pane content based on mode.
func (m Model) viewLeft() string {
	if p := m.profile(); p != nil && m.mode == ModeContacts {
		return m.contacts.View(p)
	}
	return m.profiles.View(m.reg)
}

// viewOverlay renders the single-pane content based on mode.
func (m Model) viewOverlay() string {
	switch m.mode {
	case ModeForm:
		return m.form.View()
	case ModePicker:
		username := ""
		if p := m.profile(); p != nil {
			username = p.Username()
		}
		return m.picker.View(username)
	case ModeConfirm:
		return m.confirm.View()
	case ModeReport:
		return m.report.View()
	}
	return strings.TrimSpace(m.status)
}
