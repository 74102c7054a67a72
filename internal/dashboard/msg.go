// Package dashboard implements the interactive TUI for logging into a
// profile and managing its contacts. Operations run synchronously against
// the registry; sub-states report user intent back to the root model as
// messages.
package dashboard

// Mode represents the current dashboard view mode.
type Mode int

const (
	ModeProfiles Mode = iota // Choosing a profile to log into.
	ModeContacts             // Logged in, browsing contacts with detail pane.
	ModeForm                 // Adding or editing a contact.
	ModePicker               // Choosing the other profile for import or export.
	ModeConfirm              // Confirming a contact deletion.
	ModeReport               // Showing the outcome of an operation.
)

// Focus represents which pane has keyboard focus.
type Focus int

const (
	PaneLeft  Focus = iota // Left pane (profile or contact list) has focus.
	PaneRight              // Right pane (detail viewport) has focus.
)

// PickPurpose says what the picked profile will be used for.
type PickPurpose int

const (
	PickImport PickPurpose = iota // Picked profile is the import source.
	PickExport                    // Picked profile is the export destination.
)

// ContactValues holds validated form input.
type ContactValues struct {
	Name  string
	Phone string
	Age   int
	City  string
	Note  string
}

// LoginMsg is sent when a profile is chosen from the profile list.
type LoginMsg struct {
	Index int
}

// FormSubmitMsg is sent when the contact form passes validation.
// Edit is the position of the edited contact, or -1 when adding.
type FormSubmitMsg struct {
	Values ContactValues
	Edit   int
}

// PickMsg is sent when a profile is chosen in the picker.
type PickMsg struct {
	Index   int
	Purpose PickPurpose
}

// ConfirmDeleteMsg is sent when a deletion is confirmed.
type ConfirmDeleteMsg struct {
	Pos int
}

// CancelMsg returns from a form, picker, or confirmation to the contact list.
type CancelMsg struct{}
