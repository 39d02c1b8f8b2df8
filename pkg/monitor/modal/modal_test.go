package modal

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/marcus/lightbox/pkg/monitor/mouse"
)

func click(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func clickRegion(t *testing.T, m *Modal, h *mouse.Handler, id string) string {
	t.Helper()
	r := h.HitMap.Find(id)
	if r == nil {
		t.Fatalf("region %q not registered", id)
	}
	action, _ := m.HandleMouse(click(r.Rect.X, r.Rect.Y), h)
	return action
}

func newConfirm(opts ...Option) *Modal {
	return New("Close gallery?", opts...).
		AddSection(Text("Quit the viewer.")).
		AddSection(Spacer()).
		AddSection(Buttons(
			Btn(" Quit ", "quit"),
			Btn(" Cancel ", ActionCancel),
		))
}

func TestRenderRegistersRegions(t *testing.T) {
	m := newConfirm()
	h := mouse.NewHandler()
	m.Render(100, 40, h)

	for _, id := range []string{RegionBackdrop, RegionBody, "quit", ActionCancel} {
		if h.HitMap.Find(id) == nil {
			t.Errorf("region %q not registered", id)
		}
	}

	body := h.HitMap.Find(RegionBody).Rect
	quit := h.HitMap.Find("quit").Rect
	if !body.Contains(quit.X, quit.Y) {
		t.Errorf("button %+v lies outside body %+v", quit, body)
	}
}

func TestButtonClick(t *testing.T) {
	m := newConfirm()
	h := mouse.NewHandler()
	m.Render(100, 40, h)

	if action := clickRegion(t, m, h, "quit"); action != "quit" {
		t.Errorf("action = %q, want quit", action)
	}
}

func TestBackdropClick(t *testing.T) {
	t.Run("closes by default", func(t *testing.T) {
		m := newConfirm()
		h := mouse.NewHandler()
		m.Render(100, 40, h)

		action, _ := m.HandleMouse(click(0, 0), h)
		if action != ActionCancel {
			t.Errorf("action = %q, want %q", action, ActionCancel)
		}
	})

	t.Run("body click does nothing", func(t *testing.T) {
		m := newConfirm()
		h := mouse.NewHandler()
		m.Render(100, 40, h)

		body := h.HitMap.Find(RegionBody).Rect
		action, _ := m.HandleMouse(click(body.X, body.Y), h)
		if action != "" {
			t.Errorf("action = %q, want none", action)
		}
	})
}

func TestKeyboard(t *testing.T) {
	m := newConfirm()
	m.Render(100, 40, nil)

	if m.FocusedID() != "quit" {
		t.Fatalf("initial focus = %q, want quit", m.FocusedID())
	}

	m.HandleKey(tea.KeyMsg{Type: tea.KeyTab})
	if m.FocusedID() != ActionCancel {
		t.Errorf("after tab focus = %q", m.FocusedID())
	}
	m.HandleKey(tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.FocusedID() != "quit" {
		t.Errorf("after shift+tab focus = %q", m.FocusedID())
	}

	if action, _ := m.HandleKey(tea.KeyMsg{Type: tea.KeyEnter}); action != "quit" {
		t.Errorf("enter action = %q, want quit", action)
	}
	if action, _ := m.HandleKey(tea.KeyMsg{Type: tea.KeyEsc}); action != ActionCancel {
		t.Errorf("esc action = %q, want cancel", action)
	}
}

func TestListSection(t *testing.T) {
	items := []ListItem{
		{ID: "0", Label: "boat"},
		{ID: "1", Label: "coast"},
		{ID: "2", Label: "sea"},
	}
	selected := 0
	m := New("Jump", WithPrimaryAction("jump")).AddSection(List("images", items, &selected))
	h := mouse.NewHandler()
	m.Render(100, 40, h)

	if m.FocusedID() != "images" {
		t.Fatalf("focus = %q, want images", m.FocusedID())
	}

	m.HandleKey(tea.KeyMsg{Type: tea.KeyDown})
	m.HandleKey(tea.KeyMsg{Type: tea.KeyDown})
	m.HandleKey(tea.KeyMsg{Type: tea.KeyDown})
	if selected != 2 {
		t.Errorf("selected = %d, want 2 (clamped)", selected)
	}

	if action, _ := m.HandleKey(tea.KeyMsg{Type: tea.KeyEnter}); action != "2" {
		t.Errorf("enter action = %q, want 2", action)
	}

	if action := clickRegion(t, m, h, "images:1"); action != "1" {
		t.Errorf("row click action = %q, want 1", action)
	}
	if selected != 1 {
		t.Errorf("selected = %d after click, want 1", selected)
	}
}

func TestListEmpty(t *testing.T) {
	selected := 0
	m := New("Jump").AddSection(List("images", nil, &selected))
	m.Render(80, 24, nil)

	if action, _ := m.HandleKey(tea.KeyMsg{Type: tea.KeyEnter}); action != "" {
		t.Errorf("enter on empty list = %q, want none", action)
	}
}

func TestWhen(t *testing.T) {
	show := false
	m := New("Jump").
		AddSection(When(func() bool { return show }, Buttons(Btn(" Open ", "open")))).
		AddSection(Buttons(Btn(" Cancel ", ActionCancel)))

	h := mouse.NewHandler()
	m.Render(100, 40, h)
	if h.HitMap.Find("open") != nil {
		t.Error("hidden section must not register regions")
	}
	if m.FocusedID() != ActionCancel {
		t.Errorf("focus = %q, want cancel", m.FocusedID())
	}

	show = true
	h.Clear()
	m.Render(100, 40, h)
	if h.HitMap.Find("open") == nil {
		t.Error("shown section should register its button")
	}
}

func TestWithHints(t *testing.T) {
	const hint = "Tab focus"

	if out := newConfirm().Render(100, 40, nil); !strings.Contains(out, hint) {
		t.Error("hints shown by default")
	}
	if out := newConfirm(WithHints(false)).Render(100, 40, nil); strings.Contains(out, hint) {
		t.Error("WithHints(false) should hide the hint line")
	}
}
