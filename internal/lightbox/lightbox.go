// Package lightbox owns the state of the modal image viewer: which image is
// shown, whether the modal is open, and how keyboard and pointer input map
// onto navigation and dismissal.
//
// The modal surface itself belongs to the host. The controller drives it
// through the Display interface and never renders anything on its own.
package lightbox

import (
	"log/slog"

	"github.com/marcus/lightbox/internal/gallery"
	"github.com/marcus/lightbox/pkg/monitor/mouse"
)

// Display is the modal surface the controller drives.
type Display interface {
	// SetImage rewrites the displayed image source and its accessible label.
	SetImage(source, label string)
	ShowModal()
	Close()
	IsOpen() bool
}

// Point is a pointer position in the display's coordinate space.
type Point struct {
	X, Y int
}

// Normalize maps any integer onto [0, n) with wraparound. n <= 0 yields 0.
func Normalize(k, n int) int {
	if n <= 0 {
		return 0
	}
	return ((k % n) + n) % n
}

// Controller is the lightbox state machine. Create one per gallery.
type Controller struct {
	set     *gallery.ImageSet
	display Display
	current int
	logger  *slog.Logger
}

// New creates a controller for set, driving display.
func New(set *gallery.ImageSet, display Display) *Controller {
	return &Controller{
		set:     set,
		display: display,
		logger:  slog.Default().With("component", "lightbox"),
	}
}

// Len returns the number of images the controller navigates over
func (c *Controller) Len() int {
	return c.set.Len()
}

// Current returns the index of the displayed image
func (c *Controller) Current() int {
	return c.current
}

// IsOpen reports whether the modal is shown
func (c *Controller) IsOpen() bool {
	return c.display.IsOpen()
}

// Source returns the resource of the displayed image
func (c *Controller) Source() string {
	if c.set.Len() == 0 {
		return ""
	}
	return c.set.Source(c.current)
}

// Label returns the accessible label of the displayed image
func (c *Controller) Label() string {
	if c.set.Len() == 0 {
		return ""
	}
	return gallery.ModalLabel(c.current, c.set.Len())
}

// OpenAt shows the image at index (normalized) and opens the modal.
// It does nothing when the gallery is empty.
func (c *Controller) OpenAt(index int) {
	if c.set.Len() == 0 {
		return
	}
	c.show(index)
	c.display.ShowModal()
	c.logger.Debug("open", "index", c.current)
}

// ShowRelative moves by delta with wraparound without forcing the modal open.
func (c *Controller) ShowRelative(delta int) {
	if c.set.Len() == 0 {
		return
	}
	c.show(c.current + delta)
	c.logger.Debug("navigate", "delta", delta, "index", c.current)
}

// Next shows the following image, wrapping to the first
func (c *Controller) Next() { c.ShowRelative(1) }

// Previous shows the preceding image, wrapping to the last
func (c *Controller) Previous() { c.ShowRelative(-1) }

// Close hides the modal. Closing a closed modal is a no-op.
func (c *Controller) Close() {
	if !c.display.IsOpen() {
		return
	}
	c.display.Close()
	c.logger.Debug("close", "index", c.current)
}

// HandleBackdropClick closes the modal unless p lies on the displayed image
// (edges included) or on one of the controls. It reports whether it closed.
func (c *Controller) HandleBackdropClick(p Point, image mouse.Rect, controls []mouse.Rect) bool {
	if image.Encloses(p.X, p.Y) {
		return false
	}
	for _, r := range controls {
		if r.Encloses(p.X, p.Y) {
			return false
		}
	}
	c.Close()
	return true
}

// HandleKey maps a key to navigation while the modal is open. Both DOM key
// names and bubbletea key strings are accepted. It reports whether the key
// was consumed.
func (c *Controller) HandleKey(key string) bool {
	if !c.display.IsOpen() {
		return false
	}
	switch key {
	case "ArrowRight", "right":
		c.Next()
	case "ArrowLeft", "left":
		c.Previous()
	case "Escape", "esc":
		c.Close()
	default:
		return false
	}
	return true
}

func (c *Controller) show(index int) {
	n := c.set.Len()
	c.current = Normalize(index, n)
	c.display.SetImage(c.set.Source(c.current), gallery.ModalLabel(c.current, n))
}
