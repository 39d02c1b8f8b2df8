package monitor

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/marcus/lightbox/internal/gallery"
	"github.com/marcus/lightbox/pkg/monitor/modal"
)

const (
	actionClose = "close"
	actionJump  = "jump"

	jumpListID  = "images"
	jumpInputID = "filter"

	helpWidth = 64
	jumpWidth = 56
)

const helpMarkdown = `## Gallery

| Key | Action |
|-----|--------|
| ←↑↓→ / hjkl | move between tiles |
| enter / click | open the lightbox |
| g or / | jump to an image by name |
| y / Y | copy path / markdown |
| q | quit |

## Lightbox

| Key | Action |
|-----|--------|
| ← / → or ‹ › | previous / next, wrapping around |
| esc or ✕ | close |
| click outside the image | close |
`

// renderHelpMarkdown renders the help text for a content width, falling
// back to the raw markdown when glamour fails.
func renderHelpMarkdown(width int) string {
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return helpMarkdown
	}
	out, err := r.Render(helpMarkdown)
	if err != nil {
		return helpMarkdown
	}
	return strings.Trim(out, "\n")
}

// createHelpModal builds the keyboard help modal.
func createHelpModal() *modal.Modal {
	// The body already lists every key
	md := modal.New("Keyboard & mouse",
		modal.WithWidth(helpWidth),
		modal.WithVariant(modal.VariantInfo),
		modal.WithHints(false),
	)

	var rendered string
	md.AddSection(modal.Custom(func(contentWidth int, focusID, hoverID string) modal.RenderedSection {
		if rendered == "" {
			rendered = renderHelpMarkdown(contentWidth)
		}
		return modal.RenderedSection{Content: rendered}
	}, nil))
	md.AddSection(modal.Spacer())
	md.AddSection(modal.Buttons(modal.Btn(" Close ", actionClose)))
	return md
}

func (m *Model) openHelp() {
	m.modal = createHelpModal()
	m.modalKind = modalHelp
}

func (m *Model) openJump() {
	if len(m.tiles) == 0 {
		return
	}
	ti := textinput.New()
	ti.Placeholder = "type to filter"
	ti.Prompt = "› "
	ti.CharLimit = 64
	m.jumpInput = &ti
	m.jumpQuery = ""
	*m.jumpSel = m.cursor
	m.rebuildJump()
	m.modalKind = modalJump
}

// rebuildJump recomputes the matches for the current filter and rebuilds
// the jump modal around them.
func (m *Model) rebuildJump() {
	m.jumpQuery = m.jumpInput.Value()
	m.jumpMatches = gallery.FindAll(m.set, m.jumpQuery)
	if *m.jumpSel >= len(m.jumpMatches) || m.jumpQuery != "" {
		*m.jumpSel = 0
	}

	items := make([]modal.ListItem, len(m.jumpMatches))
	for i, idx := range m.jumpMatches {
		items[i] = modal.ListItem{
			ID:    strconv.Itoa(idx),
			Label: strconv.Itoa(idx+1) + "  " + m.set.ID(idx),
		}
	}

	query := m.jumpQuery
	hasMatches := func() bool { return len(items) > 0 }
	noMatches := func() bool { return len(items) == 0 }

	m.modal = modal.New("Jump to image", modal.WithWidth(jumpWidth), modal.WithPrimaryAction(actionJump)).
		AddSection(modal.Input(jumpInputID, m.jumpInput, modal.WithLabel("Image name"))).
		AddSection(modal.Spacer()).
		AddSection(modal.When(hasMatches, modal.List(jumpListID, items, m.jumpSel, modal.WithMaxVisible(8)))).
		AddSection(modal.When(noMatches, modal.Text(noMatchesHint(query)))).
		AddSection(modal.Spacer()).
		AddSection(modal.Buttons(
			modal.Btn(" Open ", actionJump),
			modal.Btn(" Cancel ", modal.ActionCancel),
		))
}

// noMatchesHint is shown in the jump modal when the filter matches nothing.
func noMatchesHint(query string) string {
	return fmt.Sprintf("No image matches %q. Esc to cancel.", query)
}

func (m Model) closeModal() Model {
	m.modal = nil
	m.modalKind = modalNone
	m.jumpInput = nil
	m.jumpMatches = nil
	return m
}

func (m Model) handleModalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.modalKind == modalJump && m.modal.FocusedID() == jumpInputID {
		// Arrows drive the list while typing
		switch msg.String() {
		case "up":
			*m.jumpSel = max(*m.jumpSel-1, 0)
			return m, nil
		case "down":
			*m.jumpSel = min(*m.jumpSel+1, max(len(m.jumpMatches)-1, 0))
			return m, nil
		}
	}

	action, cmd := m.modal.HandleKey(msg)
	if action != "" {
		return m.handleModalAction(action)
	}

	if m.modalKind == modalJump && m.jumpInput.Value() != m.jumpQuery {
		m.rebuildJump()
	}
	return m, cmd
}

func (m Model) handleModalAction(action string) (tea.Model, tea.Cmd) {
	switch m.modalKind {
	case modalJump:
		target := -1
		switch action {
		case actionJump:
			if *m.jumpSel < len(m.jumpMatches) {
				target = m.jumpMatches[*m.jumpSel]
			}
		case modal.ActionCancel:
		default:
			if idx, err := strconv.Atoi(action); err == nil {
				target = idx
			}
		}
		m = m.closeModal()
		if target >= 0 {
			m.cursor = target
			return m.openTile(target)
		}
		return m, nil

	default:
		return m.closeModal(), nil
	}
}
