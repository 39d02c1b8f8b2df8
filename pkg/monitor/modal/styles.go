package modal

import "github.com/charmbracelet/lipgloss"

// Palette shared with the gallery view
var (
	Primary     = lipgloss.Color("75") // accent blue
	Info        = lipgloss.Color("80")
	Muted       = lipgloss.Color("244")
	BgSecondary = lipgloss.Color("234") // modal surface
)

// Button styles
var (
	Button = lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Background(lipgloss.Color("238")).
		Padding(0, 1)

	ButtonFocused = Button.
			Foreground(lipgloss.Color("255")).
			Background(Primary).
			Bold(true)

	ButtonHover = Button.
			Background(lipgloss.Color("242"))
)

// Text styles
var (
	ModalTitle = lipgloss.NewStyle().Bold(true).Foreground(Primary)
	MutedText  = lipgloss.NewStyle().Foreground(Muted)
	Body       = lipgloss.NewStyle()
)

// List styles
var (
	ListItemNormal   = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	ListItemSelected = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("237"))
	ListItemFocused  = ListItemSelected.Bold(true)
	ListCursor       = lipgloss.NewStyle().Foreground(Primary).Bold(true)
)
