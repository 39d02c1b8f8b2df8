package monitor

import (
	"context"
	"image"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/marcus/lightbox/internal/preview"
)

// loadConcurrency bounds the number of files decoded at once
const loadConcurrency = 4

type previewResult = preview.Result

type renderKey struct {
	index, w, h int
}

// previewStore holds decoded images. Images are decoded the first time their
// tile scrolls into view or the lightbox shows them, never ahead of that.
type previewStore struct {
	images    map[int]image.Image
	errs      map[int]error
	requested map[int]bool
	rendered  map[renderKey]string
}

func newPreviewStore() *previewStore {
	return &previewStore{
		images:    make(map[int]image.Image),
		errs:      make(map[int]error),
		requested: make(map[int]bool),
		rendered:  make(map[renderKey]string),
	}
}

func (s *previewStore) store(r previewResult) {
	if r.Err != nil {
		s.errs[r.Index] = r.Err
		return
	}
	s.images[r.Index] = r.Image
}

// requestPreviews returns a command decoding the given tiles that have not
// been requested yet, or nil when there is nothing to do.
func (m Model) requestPreviews(indices []int) tea.Cmd {
	var reqs []preview.Request
	for _, i := range indices {
		if m.previews.requested[i] {
			continue
		}
		m.previews.requested[i] = true
		reqs = append(reqs, preview.Request{Index: i, Path: m.resolve(i)})
	}
	if len(reqs) == 0 {
		return nil
	}

	return func() tea.Msg {
		results, err := preview.LoadBatch(context.Background(), reqs, loadConcurrency)
		return previewsLoadedMsg{Results: results, Err: err}
	}
}

func (m Model) requestVisiblePreviews() tea.Cmd {
	if m.Width == 0 || m.Height == 0 {
		return nil
	}
	return m.requestPreviews(m.visibleIndices())
}

// renderImage draws image i fitted into maxW x maxH cells. It returns the
// content and its size. Missing images render a placeholder.
func (m Model) renderImage(i, maxW, maxH int) (string, int, int) {
	if img, ok := m.previews.images[i]; ok {
		w, h := preview.Fit(img, maxW, maxH)
		k := renderKey{index: i, w: w, h: h}
		out, ok := m.previews.rendered[k]
		if !ok {
			out = preview.Render(img, w, h)
			m.previews.rendered[k] = out
		}
		return out, w, h
	}

	w, h := min(maxW, 40), min(maxH, 12)
	if _, failed := m.previews.errs[i]; failed {
		return preview.Placeholder(w, h, m.set.ID(i)), w, h
	}
	loading := lipgloss.NewStyle().
		Width(w).
		Height(h).
		Align(lipgloss.Center, lipgloss.Center).
		Foreground(mutedColor).
		Render("loading…")
	return loading, w, h
}
