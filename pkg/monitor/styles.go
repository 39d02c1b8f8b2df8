package monitor

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/marcus/lightbox/pkg/monitor/modal"
)

var (
	primaryColor = modal.Primary
	mutedColor   = modal.Muted
	backdropBg   = lipgloss.Color("232")
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(primaryColor)

	mutedStyle = lipgloss.NewStyle().Foreground(mutedColor)

	tileLabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))

	tileSelectedLabelStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("255")).
				Background(primaryColor).
				Bold(true)

	controlStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255")).
			Background(lipgloss.Color("238")).
			Bold(true)

	controlHoverStyle = controlStyle.Background(primaryColor)

	captionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))

	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("114"))
)
