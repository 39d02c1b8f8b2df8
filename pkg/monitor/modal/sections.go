package modal

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// textSection renders static, wrapped text.
type textSection struct {
	text string
}

// Text creates a static text section, wrapped to the content width.
func Text(s string) Section {
	return &textSection{text: s}
}

func (s *textSection) Render(contentWidth int, focusID, hoverID string) RenderedSection {
	return RenderedSection{Content: Body.Width(contentWidth).Render(s.text)}
}

func (s *textSection) Update(msg tea.Msg, focusID string) (string, tea.Cmd) {
	return "", nil
}

// Spacer creates a blank line.
func Spacer() Section {
	return &textSection{text: ""}
}

// ButtonDef describes one button in a Buttons row.
type ButtonDef struct {
	Label string
	ID    string
}

// Btn creates a button definition. id is returned as the action on press.
func Btn(label, id string) ButtonDef {
	return ButtonDef{Label: label, ID: id}
}

type buttonsSection struct {
	buttons []ButtonDef
}

// Buttons creates a row of buttons.
func Buttons(btns ...ButtonDef) Section {
	return &buttonsSection{buttons: btns}
}

func (s *buttonsSection) Render(contentWidth int, focusID, hoverID string) RenderedSection {
	var (
		parts      []string
		focusables []FocusableInfo
		x          int
	)

	for i, b := range s.buttons {
		style := Button
		switch b.ID {
		case focusID:
			style = ButtonFocused
		case hoverID:
			style = ButtonHover
		}

		if i > 0 {
			parts = append(parts, " ")
			x++
		}
		rendered := style.Render(b.Label)
		w := lipgloss.Width(rendered)
		parts = append(parts, rendered)
		focusables = append(focusables, FocusableInfo{ID: b.ID, OffsetX: x, Width: w, Height: 1})
		x += w
	}

	return RenderedSection{
		Content:    strings.Join(parts, ""),
		Focusables: focusables,
	}
}

func (s *buttonsSection) Update(msg tea.Msg, focusID string) (string, tea.Cmd) {
	return "", nil
}

// customSection delegates to caller-provided functions.
type customSection struct {
	render func(contentWidth int, focusID, hoverID string) RenderedSection
	update func(msg tea.Msg, focusID string) (string, tea.Cmd)
}

// Custom creates a section from render and update functions. update may be nil.
func Custom(
	render func(contentWidth int, focusID, hoverID string) RenderedSection,
	update func(msg tea.Msg, focusID string) (string, tea.Cmd),
) Section {
	return &customSection{render: render, update: update}
}

func (s *customSection) Render(contentWidth int, focusID, hoverID string) RenderedSection {
	return s.render(contentWidth, focusID, hoverID)
}

func (s *customSection) Update(msg tea.Msg, focusID string) (string, tea.Cmd) {
	if s.update == nil {
		return "", nil
	}
	return s.update(msg, focusID)
}

// whenSection renders its inner section only while the condition holds.
type whenSection struct {
	cond  func() bool
	inner Section
}

// When renders section only when condition returns true.
func When(condition func() bool, section Section) Section {
	return &whenSection{cond: condition, inner: section}
}

func (s *whenSection) Render(contentWidth int, focusID, hoverID string) RenderedSection {
	if !s.cond() {
		return RenderedSection{}
	}
	return s.inner.Render(contentWidth, focusID, hoverID)
}

func (s *whenSection) Update(msg tea.Msg, focusID string) (string, tea.Cmd) {
	if !s.cond() {
		return "", nil
	}
	return s.inner.Update(msg, focusID)
}

// inputSection wraps a caller-owned text input.
type inputSection struct {
	id    string
	model *textinput.Model
	label string
}

// InputOption configures an Input section.
type InputOption func(*inputSection)

// WithLabel shows a label above the input
func WithLabel(label string) InputOption {
	return func(s *inputSection) { s.label = label }
}

// Input creates a single-line text input section.
func Input(id string, model *textinput.Model, opts ...InputOption) Section {
	s := &inputSection{id: id, model: model}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *inputSection) Render(contentWidth int, focusID, hoverID string) RenderedSection {
	if focusID == s.id || focusID == "" {
		s.model.Focus()
	} else {
		s.model.Blur()
	}
	s.model.Width = max(contentWidth-lipgloss.Width(s.model.Prompt)-1, 1)

	var rows []string
	if s.label != "" {
		rows = append(rows, MutedText.Render(s.label))
	}
	offset := len(rows)
	rows = append(rows, s.model.View())

	return RenderedSection{
		Content: strings.Join(rows, "\n"),
		Focusables: []FocusableInfo{{
			ID:      s.id,
			OffsetY: offset,
			Width:   contentWidth,
			Height:  1,
		}},
	}
}

func (s *inputSection) Update(msg tea.Msg, focusID string) (string, tea.Cmd) {
	if focusID != s.id {
		return "", nil
	}
	if k, ok := msg.(tea.KeyMsg); ok && k.String() == "enter" {
		return "", nil
	}
	var cmd tea.Cmd
	*s.model, cmd = s.model.Update(msg)
	return "", cmd
}
