package modal

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

// ListItem represents an item in a list section.
type ListItem struct {
	ID    string // Returned as the action when the item is chosen
	Label string
	Data  any
}

// ListOption is a functional option for List sections.
type ListOption func(*listSection)

// listSection renders a scrollable, selectable list.
type listSection struct {
	id           string
	items        []ListItem
	selectedIdx  *int // owned by the caller
	maxVisible   int
	scrollOffset int
}

// List creates a list section. selectedIdx points at the caller's selection
// and may be nil for a read-only list.
func List(id string, items []ListItem, selectedIdx *int, opts ...ListOption) Section {
	s := &listSection{
		id:          id,
		items:       items,
		selectedIdx: selectedIdx,
		maxVisible:  8,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// WithMaxVisible sets the maximum number of visible rows.
func WithMaxVisible(n int) ListOption {
	return func(s *listSection) {
		if n > 0 {
			s.maxVisible = n
		}
	}
}

func (s *listSection) itemRegion(i int) string {
	return s.id + ":" + s.items[i].ID
}

func (s *listSection) selected() int {
	if s.selectedIdx == nil {
		return -1
	}
	return *s.selectedIdx
}

func (s *listSection) Render(contentWidth int, focusID, hoverID string) RenderedSection {
	if len(s.items) == 0 {
		return RenderedSection{Content: MutedText.Render("(no matches)")}
	}

	visible := min(s.maxVisible, len(s.items))
	sel := s.selected()

	// Keep the selection in view
	if sel >= 0 {
		if sel < s.scrollOffset {
			s.scrollOffset = sel
		} else if sel >= s.scrollOffset+visible {
			s.scrollOffset = sel - visible + 1
		}
	}
	s.scrollOffset = clamp(s.scrollOffset, 0, max(0, len(s.items)-visible))

	focused := focusID == s.id
	var (
		rows       []string
		focusables []FocusableInfo
	)

	if s.scrollOffset > 0 {
		rows = append(rows, MutedText.Render("↑ more above"))
	}
	top := len(rows)

	for i := 0; i < visible; i++ {
		idx := s.scrollOffset + i
		item := s.items[idx]

		style := ListItemNormal
		cursor := "  "
		switch {
		case idx == sel && focused:
			style, cursor = ListItemFocused, ListCursor.Render("> ")
		case idx == sel:
			style, cursor = ListItemSelected, ListCursor.Render("> ")
		case s.itemRegion(idx) == hoverID:
			style = ListItemSelected
		}

		rows = append(rows, cursor+style.Render(ansi.Truncate(item.Label, contentWidth-2, "…")))
		focusables = append(focusables, FocusableInfo{
			ID:      s.itemRegion(idx),
			OffsetY: top + i,
			Width:   contentWidth,
			Height:  1,
			Passive: true,
		})
	}

	if s.scrollOffset+visible < len(s.items) {
		rows = append(rows, MutedText.Render("↓ more below"))
	}

	// The list takes one slot in the focus ring; rows are click targets only
	focusables = append([]FocusableInfo{{
		ID:      s.id,
		OffsetY: top,
		Width:   contentWidth,
		Height:  visible,
	}}, focusables...)

	return RenderedSection{
		Content:    strings.Join(rows, "\n"),
		Focusables: focusables,
	}
}

func (s *listSection) Update(msg tea.Msg, focusID string) (string, tea.Cmd) {
	if s.selectedIdx == nil || len(s.items) == 0 {
		return "", nil
	}

	if click, ok := msg.(ClickMsg); ok {
		for i := range s.items {
			if s.itemRegion(i) == click.RegionID {
				*s.selectedIdx = i
				return s.items[i].ID, nil
			}
		}
		return "", nil
	}

	if focusID != s.id {
		return "", nil
	}
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return "", nil
	}

	switch keyMsg.String() {
	case "up", "k":
		if *s.selectedIdx > 0 {
			*s.selectedIdx--
		}
	case "down", "j":
		if *s.selectedIdx < len(s.items)-1 {
			*s.selectedIdx++
		}
	case "home":
		*s.selectedIdx = 0
	case "end":
		*s.selectedIdx = len(s.items) - 1
	case "enter":
		if *s.selectedIdx >= 0 && *s.selectedIdx < len(s.items) {
			return s.items[*s.selectedIdx].ID, nil
		}
	}
	return "", nil
}
