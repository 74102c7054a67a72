package dashboard

import "github.com/charmbracelet/bubbles/help"

// HelpBindings returns the help.KeyMap for the given mode,
// providing context-aware help bar content.
func HelpBindings(mode Mode) help.KeyMap {
	switch mode {
	case ModeContacts:
		return ContactsKeyMap()
	case ModeForm:
		return FormKeyMap()
	case ModePicker:
		return PickerKeyMap()
	case ModeConfirm:
		return ConfirmKeyMap()
	case ModeReport:
		return ReportKeyMap()
	default:
		return ProfilesKeyMap()
	}
}
