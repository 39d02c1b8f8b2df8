package monitor

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// View implements tea.Model. Hit regions are rebuilt on every render.
func (m Model) View() string {
	if m.Width == 0 || m.Height == 0 {
		return "Loading..."
	}

	m.mouse.Clear()

	if m.modal != nil {
		return m.modal.View(m.Width, m.Height, m.mouse)
	}
	if m.surface.IsOpen() {
		return m.renderLightbox()
	}
	return m.renderGallery()
}

func (m Model) renderGallery() string {
	header := titleStyle.Render("Gallery") + mutedStyle.Render(fmt.Sprintf("  %d images", len(m.tiles)))

	var body string
	if len(m.tiles) == 0 {
		body = mutedStyle.Render(" No images configured. Add identifiers to .lightbox/config.json.")
	} else {
		body = m.renderGrid()
	}

	bodyHeight := max(m.Height-gridTop-footerHeight, 0)
	body = lipgloss.NewStyle().Height(bodyHeight).MaxHeight(bodyHeight).Render(body)

	return strings.Join([]string{
		header,
		"",
		body,
		statusStyle.Render(m.status),
		m.help.View(galleryKeys),
	}, "\n")
}

// renderGrid draws the visible tile rows and registers the container as a
// single click region.
func (m Model) renderGrid() string {
	g := m.grid()
	rows := m.visibleRows()
	pad := strings.Repeat(" ", gridLeft)
	gap := strings.Repeat(" ", tileGap)

	var lines []string
	for r := m.scroll; r < m.scroll+rows; r++ {
		first := r * g.Cols
		if first >= len(m.tiles) {
			break
		}
		if len(lines) > 0 {
			lines = append(lines, "")
		}

		var cells []string
		for c := 0; c < g.Cols && first+c < len(m.tiles); c++ {
			if c > 0 {
				cells = append(cells, gap)
			}
			cells = append(cells, m.renderTile(first+c))
		}
		row := lipgloss.JoinHorizontal(lipgloss.Top, cells...)
		for _, l := range strings.Split(row, "\n") {
			lines = append(lines, pad+l)
		}
	}

	m.mouse.HitMap.AddRect(regionGallery, gridLeft, gridTop, g.Cols*(tileW+tileGap)-tileGap, len(lines), nil)
	return strings.Join(lines, "\n")
}

func (m Model) renderTile(i int) string {
	t := m.tiles[i]
	img, _, _ := m.renderImage(i, tileW, tileH-1)
	img = lipgloss.Place(tileW, tileH-1, lipgloss.Center, lipgloss.Center, img)

	style := tileLabelStyle
	if i == m.cursor {
		style = tileSelectedLabelStyle
	}
	label := style.Width(tileW).Render(ansi.Truncate(fmt.Sprintf("%d %s", t.Index+1, t.ID), tileW, "…"))

	return img + "\n" + label
}

const (
	minLightboxWidth  = 20
	minLightboxHeight = 8
)

// renderLightbox draws the open lightbox and registers its regions: the
// whole screen, the image, then the controls on top.
func (m Model) renderLightbox() string {
	if m.Width < minLightboxWidth || m.Height < minLightboxHeight {
		m.mouse.HitMap.AddRect(regionLightbox, 0, 0, m.Width, m.Height, nil)
		return mutedStyle.Render("Terminal too small · esc to close")
	}

	cur := m.lightbox.Current()
	maxW := max(m.Width-12, 1)
	maxH := max(m.Height-5, 1)
	img, w, h := m.renderImage(cur, maxW, maxH)

	imgX := (m.Width - w) / 2
	imgY := 2 + (maxH-h)/2
	mid := imgY + h/2
	prevX, nextX, closeX := 1, m.Width-4, m.Width-4

	control := func(id, glyph string) string {
		if m.hoverID == id {
			return controlHoverStyle.Render(glyph)
		}
		return controlStyle.Render(glyph)
	}

	lines := make([]string, m.Height)
	lines[0] = strings.Repeat(" ", closeX) + control(regionClose, " ✕ ")

	imgLines := strings.Split(img, "\n")
	for j, l := range imgLines {
		y := imgY + j
		if y >= m.Height {
			break
		}
		var sb strings.Builder
		if y == mid {
			sb.WriteString(strings.Repeat(" ", prevX))
			sb.WriteString(control(regionPrev, " ‹ "))
			sb.WriteString(strings.Repeat(" ", imgX-prevX-3))
		} else {
			sb.WriteString(strings.Repeat(" ", imgX))
		}
		sb.WriteString(l)
		if y == mid {
			sb.WriteString(strings.Repeat(" ", nextX-imgX-w))
			sb.WriteString(control(regionNext, " › "))
		}
		lines[y] = sb.String()
	}

	if capY := imgY + h + 1; capY < m.Height-1 {
		caption := fmt.Sprintf("%s · %s", m.lightbox.Label(), m.set.ID(cur))
		lines[capY] = lipgloss.PlaceHorizontal(m.Width, lipgloss.Center,
			captionStyle.Render(ansi.Truncate(caption, m.Width, "…")))
	}
	footer := m.help.View(lightboxKeys)
	if m.status != "" {
		footer = statusStyle.Render(m.status)
	}
	lines[m.Height-1] = footer

	m.mouse.HitMap.AddRect(regionLightbox, 0, 0, m.Width, m.Height, nil)
	m.mouse.HitMap.AddRect(regionLightboxImage, imgX, imgY, w, h, nil)
	m.mouse.HitMap.AddRect(regionPrev, prevX, mid, 3, 1, nil)
	m.mouse.HitMap.AddRect(regionNext, nextX, mid, 3, 1, nil)
	m.mouse.HitMap.AddRect(regionClose, closeX, 0, 3, 1, nil)

	return strings.Join(lines, "\n")
}
