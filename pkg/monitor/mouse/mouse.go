// Package mouse provides hit testing and click tracking for bubbletea
// mouse events.
package mouse

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// doubleClickWindow is the maximum gap between two clicks on the same region
// for them to count as a double-click.
const doubleClickWindow = 400 * time.Millisecond

// Rect is a screen rectangle in terminal cells.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the cell (x, y) lies in the rect. The far edges
// are exclusive: a rect of width W covers columns X..X+W-1.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Encloses reports whether the point (x, y) lies in the rect with every edge
// inclusive, the way a bounding box is tested against a pointer position.
func (r Rect) Encloses(x, y int) bool {
	return x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H
}

// Region is a named clickable area.
type Region struct {
	ID   string
	Rect Rect
	Data any
}

// HitMap holds regions in registration order. Later regions win on overlap.
type HitMap struct {
	regions []Region
}

// NewHitMap creates an empty hit map
func NewHitMap() *HitMap {
	return &HitMap{}
}

// AddRect registers a region
func (h *HitMap) AddRect(id string, x, y, w, h2 int, data any) {
	h.regions = append(h.regions, Region{ID: id, Rect: Rect{X: x, Y: y, W: w, H: h2}, Data: data})
}

// Add registers a region from an existing rect
func (h *HitMap) Add(id string, r Rect, data any) {
	h.regions = append(h.regions, Region{ID: id, Rect: r, Data: data})
}

// Test returns the topmost region under (x, y), or nil.
func (h *HitMap) Test(x, y int) *Region {
	for i := len(h.regions) - 1; i >= 0; i-- {
		if h.regions[i].Rect.Contains(x, y) {
			return &h.regions[i]
		}
	}
	return nil
}

// Find returns the region registered under id, or nil.
func (h *HitMap) Find(id string) *Region {
	for i := len(h.regions) - 1; i >= 0; i-- {
		if h.regions[i].ID == id {
			return &h.regions[i]
		}
	}
	return nil
}

// Clear removes all regions
func (h *HitMap) Clear() {
	h.regions = h.regions[:0]
}

// Regions returns the registered regions
func (h *HitMap) Regions() []Region {
	return h.regions
}

// ActionType classifies a mouse event after hit testing.
type ActionType int

const (
	ActionNone ActionType = iota
	ActionClick
	ActionDoubleClick
	ActionHover
	ActionScrollUp
	ActionScrollDown
	ActionScrollLeft
	ActionScrollRight
)

// ClickResult is the outcome of a single click.
type ClickResult struct {
	Region        *Region
	IsDoubleClick bool
}

// MouseAction is a hit-tested mouse event.
type MouseAction struct {
	Type   ActionType
	Region *Region
	X, Y   int
}

// Handler tracks click timing on top of a HitMap.
type Handler struct {
	HitMap *HitMap

	lastClickID   string
	lastClickTime time.Time
}

// NewHandler creates a handler with an empty hit map
func NewHandler() *Handler {
	return &Handler{HitMap: NewHitMap()}
}

// Clear resets the hit map. Call at the start of each render.
func (h *Handler) Clear() {
	h.HitMap.Clear()
}

// HandleClick hit-tests a click and detects double-clicks.
func (h *Handler) HandleClick(x, y int) ClickResult {
	region := h.HitMap.Test(x, y)
	now := time.Now()

	result := ClickResult{Region: region}
	if region != nil && region.ID == h.lastClickID && now.Sub(h.lastClickTime) <= doubleClickWindow {
		result.IsDoubleClick = true
		h.lastClickID = ""
		h.lastClickTime = time.Time{}
		return result
	}

	h.lastClickID = ""
	if region != nil {
		h.lastClickID = region.ID
	}
	h.lastClickTime = now
	return result
}

// HandleMouse classifies a bubbletea mouse message.
func (h *Handler) HandleMouse(msg tea.MouseMsg) MouseAction {
	action := MouseAction{X: msg.X, Y: msg.Y}

	switch msg.Action {
	case tea.MouseActionMotion:
		action.Type = ActionHover
		action.Region = h.HitMap.Test(msg.X, msg.Y)
		return action

	case tea.MouseActionRelease:
		return action

	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			action.Type = ActionScrollUp
			if msg.Shift {
				action.Type = ActionScrollLeft
			}
		case tea.MouseButtonWheelDown:
			action.Type = ActionScrollDown
			if msg.Shift {
				action.Type = ActionScrollRight
			}
		case tea.MouseButtonWheelLeft:
			action.Type = ActionScrollLeft
		case tea.MouseButtonWheelRight:
			action.Type = ActionScrollRight
		case tea.MouseButtonLeft:
			res := h.HandleClick(msg.X, msg.Y)
			action.Type = ActionClick
			if res.IsDoubleClick {
				action.Type = ActionDoubleClick
			}
			action.Region = res.Region
			return action
		}
		action.Region = h.HitMap.Test(msg.X, msg.Y)
	}

	return action
}
