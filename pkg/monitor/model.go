package monitor

import (
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/marcus/lightbox/internal/gallery"
	"github.com/marcus/lightbox/internal/lightbox"
	"github.com/marcus/lightbox/pkg/monitor/modal"
	"github.com/marcus/lightbox/pkg/monitor/mouse"
)

// Grid geometry in terminal cells
const (
	tileW        = 24
	tileH        = 8 // preview rows plus one label row
	tileGap      = 2
	gridLeft     = 1
	gridTop      = 2 // header and a blank line
	footerHeight = 2 // status and help
)

// Hit region IDs
const (
	regionGallery       = "gallery"
	regionLightbox      = "lightbox"
	regionLightboxImage = "lightbox-image"
	regionPrev          = "lightbox-prev"
	regionNext          = "lightbox-next"
	regionClose         = "lightbox-close"
)

const statusTimeout = 2 * time.Second

type modalKind int

const (
	modalNone modalKind = iota
	modalHelp
	modalJump
)

// previewsLoadedMsg carries decoded tile images
type previewsLoadedMsg struct {
	Results []previewResult
	Err     error
}

// clearStatusMsg clears the status line after a timeout
type clearStatusMsg struct {
	seq int
}

// Model is the bubbletea model of the gallery viewer.
type Model struct {
	Width  int
	Height int

	set      *gallery.ImageSet
	tiles    []gallery.Tile
	baseDir  string
	lightbox *lightbox.Controller
	surface  *lightbox.Surface

	mouse    *mouse.Handler
	help     help.Model
	previews *previewStore

	// Gallery cursor and first visible row
	cursor int
	scroll int

	modal       *modal.Modal
	modalKind   modalKind
	jumpInput   *textinput.Model
	jumpSel     *int
	jumpMatches []int
	jumpQuery   string

	hoverID   string
	status    string
	statusSeq int

	logger *slog.Logger
}

// NewModel creates the viewer for set. Relative image sources are resolved
// against baseDir.
func NewModel(set *gallery.ImageSet, baseDir string) Model {
	surface := &lightbox.Surface{}
	return Model{
		set:      set,
		tiles:    gallery.Render(set),
		baseDir:  baseDir,
		lightbox: lightbox.New(set, surface),
		surface:  surface,
		mouse:    mouse.NewHandler(),
		help:     help.New(),
		previews: newPreviewStore(),
		jumpSel:  new(int),
		logger:   slog.Default().With("component", "monitor"),
	}
}

// Run starts the viewer in the alternate screen with mouse support.
func Run(set *gallery.ImageSet, baseDir string) error {
	p := tea.NewProgram(NewModel(set, baseDir), tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// Lightbox exposes the lightbox controller
func (m Model) Lightbox() *lightbox.Controller {
	return m.lightbox
}

// Cursor returns the selected tile
func (m Model) Cursor() int {
	return m.cursor
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.help.Width = msg.Width
		m.clampScroll()
		return m, m.requestVisiblePreviews()

	case previewsLoadedMsg:
		if msg.Err != nil {
			m.logger.Debug("preview batch cancelled", "err", msg.Err)
		}
		for _, r := range msg.Results {
			m.previews.store(r)
			if r.Err != nil {
				m.logger.Debug("preview failed", "index", r.Index, "err", r.Err)
			}
		}
		return m, nil

	case clearStatusMsg:
		if msg.seq == m.statusSeq {
			m.status = ""
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, forceQuit) {
		return m, tea.Quit
	}

	if m.modal != nil {
		return m.handleModalKey(msg)
	}

	if m.surface.IsOpen() {
		if key.Matches(msg, lightboxKeys.Copy) {
			return m.copyPath(m.lightbox.Current())
		}
		if m.lightbox.HandleKey(msg.String()) {
			return m.afterLightbox()
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, galleryKeys.Quit):
		return m, tea.Quit
	case key.Matches(msg, galleryKeys.Help):
		m.openHelp()
	case key.Matches(msg, galleryKeys.Jump):
		m.openJump()
	case key.Matches(msg, galleryKeys.Copy):
		if len(m.tiles) > 0 {
			return m.copyPath(m.cursor)
		}
	case key.Matches(msg, galleryKeys.CopyMarkdown):
		if len(m.tiles) > 0 {
			return m.copyText(formatTileAsMarkdown(m.tiles[m.cursor]))
		}
	case key.Matches(msg, galleryKeys.Open):
		return m.openTile(m.cursor)
	case key.Matches(msg, galleryKeys.Left):
		m.moveCursor(-1)
	case key.Matches(msg, galleryKeys.Right):
		m.moveCursor(1)
	case key.Matches(msg, galleryKeys.Up):
		m.moveCursor(-m.grid().Cols)
	case key.Matches(msg, galleryKeys.Down):
		m.moveCursor(m.grid().Cols)
	}
	return m, m.requestVisiblePreviews()
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.modal != nil {
		action, cmd := m.modal.HandleMouse(msg, m.mouse)
		if action != "" {
			return m.handleModalAction(action)
		}
		return m, cmd
	}

	action := m.mouse.HandleMouse(msg)

	if m.surface.IsOpen() {
		return m.handleLightboxMouse(msg, action)
	}

	switch action.Type {
	case mouse.ActionClick, mouse.ActionDoubleClick:
		if action.Region == nil || action.Region.ID != regionGallery {
			return m, nil
		}
		// One handler for the whole container; the tile is resolved by position
		idx, ok := m.tileAt(msg.X, msg.Y)
		if !ok {
			return m, nil
		}
		m.cursor = idx
		return m.openTile(idx)

	case mouse.ActionScrollUp:
		m.scroll--
		m.clampScroll()
		return m, m.requestVisiblePreviews()

	case mouse.ActionScrollDown:
		m.scroll++
		m.clampScroll()
		return m, m.requestVisiblePreviews()
	}
	return m, nil
}

func (m Model) handleLightboxMouse(msg tea.MouseMsg, action mouse.MouseAction) (tea.Model, tea.Cmd) {
	switch action.Type {
	case mouse.ActionHover:
		m.hoverID = ""
		if action.Region != nil {
			m.hoverID = action.Region.ID
		}
		return m, nil

	case mouse.ActionScrollUp, mouse.ActionScrollLeft:
		m.lightbox.Previous()
		return m.afterLightbox()

	case mouse.ActionScrollDown, mouse.ActionScrollRight:
		m.lightbox.Next()
		return m.afterLightbox()

	case mouse.ActionClick, mouse.ActionDoubleClick:
		if action.Region != nil {
			switch action.Region.ID {
			case regionPrev:
				m.lightbox.Previous()
				return m.afterLightbox()
			case regionNext:
				m.lightbox.Next()
				return m.afterLightbox()
			case regionClose:
				m.lightbox.Close()
				return m.afterLightbox()
			}
		}

		image, controls, ok := m.lightboxBounds()
		if !ok {
			// No image on screen: the whole view is backdrop
			m.lightbox.Close()
			return m.afterLightbox()
		}
		if m.lightbox.HandleBackdropClick(lightbox.Point{X: msg.X, Y: msg.Y}, image, controls) {
			return m.afterLightbox()
		}
	}
	return m, nil
}

// lightboxBounds returns the bounding boxes of the displayed image and the
// controls, measured from the last render. ok is false when no image was
// drawn.
func (m Model) lightboxBounds() (mouse.Rect, []mouse.Rect, bool) {
	r := m.mouse.HitMap.Find(regionLightboxImage)
	if r == nil {
		return mouse.Rect{}, nil, false
	}
	image := cellBounds(r.Rect)
	var controls []mouse.Rect
	for _, id := range []string{regionPrev, regionNext, regionClose} {
		if r := m.mouse.HitMap.Find(id); r != nil {
			controls = append(controls, cellBounds(r.Rect))
		}
	}
	return image, controls, true
}

// cellBounds converts a cell rect into the bounding box of its cells, edges
// inclusive.
func cellBounds(r mouse.Rect) mouse.Rect {
	return mouse.Rect{X: r.X, Y: r.Y, W: max(r.W-1, 0), H: max(r.H-1, 0)}
}

// openTile opens the lightbox on tile idx.
func (m Model) openTile(idx int) (tea.Model, tea.Cmd) {
	if len(m.tiles) == 0 {
		return m, nil
	}
	m.lightbox.OpenAt(m.tiles[idx].Index)
	return m.afterLightbox()
}

// afterLightbox syncs the grid with the controller and makes sure the shown
// image is being decoded.
func (m Model) afterLightbox() (tea.Model, tea.Cmd) {
	if len(m.tiles) == 0 {
		return m, nil
	}
	m.cursor = m.lightbox.Current()
	m.ensureCursorVisible()
	if !m.surface.IsOpen() {
		m.hoverID = ""
		return m, m.requestVisiblePreviews()
	}
	return m, m.requestPreviews([]int{m.lightbox.Current()})
}

func (m *Model) moveCursor(delta int) {
	if len(m.tiles) == 0 {
		return
	}
	next := m.cursor + delta
	if next < 0 || next >= len(m.tiles) {
		return
	}
	m.cursor = next
	m.ensureCursorVisible()
}

func (m Model) grid() gallery.Grid {
	return gallery.NewGrid(max(m.Width-2*gridLeft, tileW), tileW, tileH, tileGap)
}

// visibleRows returns how many tile rows fit between header and footer
func (m Model) visibleRows() int {
	avail := m.Height - gridTop - footerHeight
	return max((avail+1)/(tileH+1), 1)
}

func (m *Model) clampScroll() {
	maxScroll := max(m.grid().Rows(len(m.tiles))-m.visibleRows(), 0)
	m.scroll = max(min(m.scroll, maxScroll), 0)
}

func (m *Model) ensureCursorVisible() {
	row := m.cursor / m.grid().Cols
	if row < m.scroll {
		m.scroll = row
	} else if row >= m.scroll+m.visibleRows() {
		m.scroll = row - m.visibleRows() + 1
	}
	m.clampScroll()
}

// tileAt resolves the tile under a screen position
func (m Model) tileAt(x, y int) (int, bool) {
	oy := m.scroll * (tileH + 1)
	return m.grid().IndexAt(x-gridLeft, y-gridTop+oy, len(m.tiles))
}

// visibleIndices lists tiles in the visible rows
func (m Model) visibleIndices() []int {
	g := m.grid()
	first := m.scroll * g.Cols
	last := min((m.scroll+m.visibleRows())*g.Cols, len(m.tiles))
	var out []int
	for i := first; i < last; i++ {
		out = append(out, i)
	}
	return out
}

// resolve maps an image source onto the file system
func (m Model) resolve(i int) string {
	return m.set.Path(m.baseDir, i)
}

func (m Model) setStatus(s string) (Model, tea.Cmd) {
	m.statusSeq++
	m.status = s
	seq := m.statusSeq
	return m, tea.Tick(statusTimeout, func(time.Time) tea.Msg {
		return clearStatusMsg{seq: seq}
	})
}

func (m Model) copyPath(i int) (tea.Model, tea.Cmd) {
	return m.copyText(m.resolve(i))
}

func (m Model) copyText(text string) (tea.Model, tea.Cmd) {
	if err := copyToClipboard(text); err != nil {
		m.logger.Warn("copy to clipboard", "err", err)
		return m.setStatus("Copy failed: " + err.Error())
	}
	return m.setStatus("Copied " + text)
}
