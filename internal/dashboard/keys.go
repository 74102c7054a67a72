package dashboard

import "github.com/charmbracelet/bubbles/key"

// profilesKeys holds key bindings for the profile list.
type profilesKeys struct {
	Up    key.Binding
	Down  key.Binding
	Enter key.Binding
	Quit  key.Binding
}

// ShortHelp returns the profile list bindings for the help bar.
func (k profilesKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Enter, k.Quit}
}

// FullHelp returns the profile list bindings grouped for expanded help.
func (k profilesKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Enter},
		{k.Quit},
	}
}

// contactsKeys holds key bindings for the contact list.
type contactsKeys struct {
	Up         key.Binding
	Down       key.Binding
	Tab        key.Binding
	Add        key.Binding
	Edit       key.Binding
	Delete     key.Binding
	Import     key.Binding
	Export     key.Binding
	Duplicates key.Binding
	Logout     key.Binding
	Quit       key.Binding
}

// ShortHelp returns the contact list bindings for the help bar.
func (k contactsKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Add, k.Edit, k.Delete, k.Import, k.Export, k.Duplicates, k.Logout, k.Quit}
}

// FullHelp returns the contact list bindings grouped for expanded help.
func (k contactsKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Tab},
		{k.Add, k.Edit, k.Delete},
		{k.Import, k.Export, k.Duplicates},
		{k.Logout, k.Quit},
	}
}

// formKeys holds key bindings for the contact form.
type formKeys struct {
	Next   key.Binding
	Prev   key.Binding
	Save   key.Binding
	Cancel key.Binding
}

// ShortHelp returns the form bindings for the help bar.
func (k formKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Prev, k.Save, k.Cancel}
}

// FullHelp returns the form bindings grouped for expanded help.
func (k formKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Next, k.Prev}, {k.Save, k.Cancel}}
}

// pickerKeys holds key bindings for the profile picker.
type pickerKeys struct {
	Up     key.Binding
	Down   key.Binding
	Enter  key.Binding
	Cancel key.Binding
}

// ShortHelp returns the picker bindings for the help bar.
func (k pickerKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Enter, k.Cancel}
}

// FullHelp returns the picker bindings grouped for expanded help.
func (k pickerKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Enter, k.Cancel}}
}

// confirmKeys holds key bindings for the delete confirmation.
type confirmKeys struct {
	Yes key.Binding
	No  key.Binding
}

// ShortHelp returns the confirmation bindings for the help bar.
func (k confirmKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Yes, k.No}
}

// FullHelp returns the confirmation bindings grouped for expanded help.
func (k confirmKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Yes, k.No}}
}

// reportKeys holds key bindings for the report screen.
type reportKeys struct {
	AnyKey key.Binding
}

// ShortHelp returns the report bindings for the help bar.
func (k reportKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.AnyKey}
}

// FullHelp returns the report bindings grouped for expanded help.
func (k reportKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.AnyKey}}
}

func upBinding() key.Binding {
	return key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	)
}

func downBinding() key.Binding {
	return key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	)
}

func quitBinding() key.Binding {
	return key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	)
}

// ProfilesKeyMap returns the key bindings for the profile list.
func ProfilesKeyMap() profilesKeys {
	return profilesKeys{
		Up:   upBinding(),
		Down: downBinding(),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "log in"),
		),
		Quit: quitBinding(),
	}
}

// ContactsKeyMap returns the key bindings for the contact list.
func ContactsKeyMap() contactsKeys {
	return contactsKeys{
		Up:   upBinding(),
		Down: downBinding(),
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "switch pane"),
		),
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		Import: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "import"),
		),
		Export: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "export"),
		),
		Duplicates: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "duplicates"),
		),
		Logout: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "log out"),
		),
		Quit: quitBinding(),
	}
}

// FormKeyMap returns the key bindings for the contact form.
func FormKeyMap() formKeys {
	return formKeys{
		Next: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab", "next field"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("shift+tab", "previous field"),
		),
		Save: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "save"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
	}
}

// PickerKeyMap returns the key bindings for the profile picker.
func PickerKeyMap() pickerKeys {
	return pickerKeys{
		Up:   upBinding(),
		Down: downBinding(),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
	}
}

// ConfirmKeyMap returns the key bindings for the delete confirmation.
func ConfirmKeyMap() confirmKeys {
	return confirmKeys{
		Yes: key.NewBinding(
			key.WithKeys("y", "enter"),
			key.WithHelp("y", "delete"),
		),
		No: key.NewBinding(
			key.WithKeys("n", "esc"),
			key.WithHelp("n", "keep"),
		),
	}
}

// ReportKeyMap returns the key bindings for the report screen.
func ReportKeyMap() reportKeys {
	return reportKeys{
		// Display-only; any key is handled in the report state.
		AnyKey: key.NewBinding(
			key.WithKeys("any"),
			key.WithHelp("any key", "continue"),
		),
	}
}
