package modal

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/marcus/lightbox/pkg/monitor/mouse"
)

// Region IDs registered by the modal itself.
const (
	RegionBackdrop = "modal-backdrop"
	RegionBody     = "modal-body"
)

// ActionCancel is returned when the modal is dismissed with Esc or a
// backdrop click.
const ActionCancel = "cancel"

const (
	defaultWidth = 50
	borderSize   = 1
	paddingX     = 2
	paddingY     = 1
)

// Variant selects the modal's border colour.
type Variant int

const (
	VariantDefault Variant = iota
	VariantInfo
)

// FocusableInfo describes a focusable element inside a rendered section,
// relative to the section's top-left corner.
type FocusableInfo struct {
	ID      string
	OffsetX int
	OffsetY int
	Width   int
	Height  int
	// Passive elements get a hit region but no slot in the focus ring.
	Passive bool
}

// ClickMsg is delivered to sections when a passive region they registered
// is clicked.
type ClickMsg struct {
	RegionID string
}

// RenderedSection is the output of a section render.
type RenderedSection struct {
	Content    string
	Focusables []FocusableInfo
}

// Section is one block of modal content.
type Section interface {
	Render(contentWidth int, focusID, hoverID string) RenderedSection
	// Update handles a message while focusID is focused. A non-empty action
	// is reported back to the modal's caller.
	Update(msg tea.Msg, focusID string) (string, tea.Cmd)
}

// Option configures a Modal.
type Option func(*Modal)

// WithWidth sets the modal width
func WithWidth(w int) Option {
	return func(m *Modal) {
		if w > 0 {
			m.width = w
		}
	}
}

// WithVariant sets the visual style
func WithVariant(v Variant) Option {
	return func(m *Modal) { m.variant = v }
}

// WithHints shows or hides keyboard hints at the bottom
func WithHints(show bool) Option {
	return func(m *Modal) { m.showHints = show }
}

// WithPrimaryAction sets the action for an Enter press on a non-button
func WithPrimaryAction(actionID string) Option {
	return func(m *Modal) { m.primaryAction = actionID }
}

// Modal is a declarative dialog box.
type Modal struct {
	title         string
	width         int
	variant       Variant
	showHints     bool
	primaryAction string

	sections   []Section
	focusIDs   []string
	focusIdx   int
	hoverID    string
	buttonIDs  map[string]bool
	passiveIDs map[string]bool
}

// New creates a modal with a title.
func New(title string, opts ...Option) *Modal {
	m := &Modal{
		title:      title,
		width:      defaultWidth,
		showHints:  true,
		buttonIDs:  make(map[string]bool),
		passiveIDs: make(map[string]bool),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// AddSection appends a section and returns the modal for chaining.
func (m *Modal) AddSection(s Section) *Modal {
	m.sections = append(m.sections, s)
	if b, ok := s.(*buttonsSection); ok {
		for _, btn := range b.buttons {
			m.buttonIDs[btn.ID] = true
		}
	}
	return m
}

// FocusedID returns the ID of the focused element
func (m *Modal) FocusedID() string {
	if len(m.focusIDs) == 0 {
		return ""
	}
	return m.focusIDs[m.focusIdx%len(m.focusIDs)]
}

// SetFocus focuses the element with id, if it exists
func (m *Modal) SetFocus(id string) {
	for i, fid := range m.focusIDs {
		if fid == id {
			m.focusIdx = i
			return
		}
	}
}

func (m *Modal) contentWidth(screenW int) int {
	w := min(m.width, screenW-2)
	return max(w-2*borderSize-2*paddingX, 10)
}

func (m *Modal) borderColor() lipgloss.Color {
	if m.variant == VariantInfo {
		return Info
	}
	return Primary
}

// Render draws the modal box and registers its hit regions for a box
// centred on a screenW x screenH screen. Regions registered: the backdrop
// (whole screen), the body, then every focusable.
func (m *Modal) Render(screenW, screenH int, handler *mouse.Handler) string {
	cw := m.contentWidth(screenW)
	focusID := m.FocusedID()

	type placed struct {
		info FocusableInfo
		line int
	}
	var (
		lines     []string
		focusable []placed
	)

	lines = append(lines, ModalTitle.Render(ansi.Truncate(m.title, cw, "…")), "")

	for _, s := range m.sections {
		rs := s.Render(cw, focusID, m.hoverID)
		for _, f := range rs.Focusables {
			focusable = append(focusable, placed{info: f, line: len(lines)})
		}
		lines = append(lines, strings.Split(rs.Content, "\n")...)
	}

	if m.showHints {
		lines = append(lines, "", MutedText.Render(ansi.Truncate("Tab focus • Enter select • Esc close", cw, "…")))
	}

	// Refresh the focus ring from what was actually rendered
	m.focusIDs = m.focusIDs[:0]
	clear(m.passiveIDs)
	for _, f := range focusable {
		if f.info.Passive {
			m.passiveIDs[f.info.ID] = true
			continue
		}
		m.focusIDs = append(m.focusIDs, f.info.ID)
	}
	if len(m.focusIDs) > 0 {
		m.focusIdx %= len(m.focusIDs)
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.borderColor()).
		Background(BgSecondary).
		Padding(paddingY, paddingX).
		Width(cw + 2*paddingX).
		Render(strings.Join(lines, "\n"))

	boxW, boxH := lipgloss.Width(box), lipgloss.Height(box)

	if handler != nil {
		x0 := max((screenW-boxW)/2, 0)
		y0 := max((screenH-boxH)/2, 0)
		handler.HitMap.AddRect(RegionBackdrop, 0, 0, screenW, screenH, nil)
		handler.HitMap.AddRect(RegionBody, x0, y0, boxW, boxH, nil)
		for _, f := range focusable {
			handler.HitMap.AddRect(f.info.ID,
				x0+borderSize+paddingX+f.info.OffsetX,
				y0+borderSize+paddingY+f.line+f.info.OffsetY,
				f.info.Width, f.info.Height, nil)
		}
	}

	return box
}

// View renders the modal centred on the screen.
func (m *Modal) View(screenW, screenH int, handler *mouse.Handler) string {
	return lipgloss.Place(screenW, screenH, lipgloss.Center, lipgloss.Center, m.Render(screenW, screenH, handler))
}

// HandleKey processes a key press. It returns the triggered action, if any.
func (m *Modal) HandleKey(msg tea.KeyMsg) (string, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return ActionCancel, nil
	case "tab":
		m.cycleFocus(1)
		return "", nil
	case "shift+tab":
		m.cycleFocus(-1)
		return "", nil
	case "enter":
		if id := m.FocusedID(); m.buttonIDs[id] {
			return id, nil
		}
	}

	if action, cmd := m.dispatch(msg); action != "" || cmd != nil {
		return action, cmd
	}

	if msg.String() == "enter" && m.primaryAction != "" {
		return m.primaryAction, nil
	}
	return "", nil
}

// HandleMouse processes a mouse event against the regions registered by the
// last Render. Clicking a button returns its action; clicking the backdrop
// returns ActionCancel.
func (m *Modal) HandleMouse(msg tea.MouseMsg, handler *mouse.Handler) (string, tea.Cmd) {
	action := handler.HandleMouse(msg)

	switch action.Type {
	case mouse.ActionHover:
		m.hoverID = ""
		if action.Region != nil && action.Region.ID != RegionBackdrop && action.Region.ID != RegionBody {
			m.hoverID = action.Region.ID
		}
	case mouse.ActionClick, mouse.ActionDoubleClick:
		if action.Region == nil {
			return "", nil
		}
		switch action.Region.ID {
		case RegionBackdrop:
			return ActionCancel, nil
		case RegionBody:
		default:
			if m.passiveIDs[action.Region.ID] {
				return m.dispatch(ClickMsg{RegionID: action.Region.ID})
			}
			m.SetFocus(action.Region.ID)
			if m.buttonIDs[action.Region.ID] {
				return action.Region.ID, nil
			}
		}
	case mouse.ActionScrollUp, mouse.ActionScrollDown:
		key := tea.KeyMsg{Type: tea.KeyDown}
		if action.Type == mouse.ActionScrollUp {
			key = tea.KeyMsg{Type: tea.KeyUp}
		}
		return m.dispatch(key)
	}
	return "", nil
}

// dispatch offers msg to each section until one reports an action or command.
func (m *Modal) dispatch(msg tea.Msg) (string, tea.Cmd) {
	focusID := m.FocusedID()
	for _, s := range m.sections {
		if action, cmd := s.Update(msg, focusID); action != "" || cmd != nil {
			return action, cmd
		}
	}
	return "", nil
}

func (m *Modal) cycleFocus(delta int) {
	n := len(m.focusIDs)
	if n == 0 {
		return
	}
	m.focusIdx = ((m.focusIdx+delta)%n + n) % n
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
