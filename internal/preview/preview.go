// Package preview turns image files into terminal text. It stands in for a
// browser's native image element: it decodes, scales, and shows a
// placeholder when a file is missing or broken.
package preview

import (
	"fmt"
	"image"
	"os"
	"strings"

	// Registered decoders
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// Load decodes the image file at path
func Load(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}

// Fit returns the largest cell size with the image's aspect ratio inside
// maxW x maxH cells. Each cell holds two vertical pixels.
func Fit(img image.Image, maxW, maxH int) (int, int) {
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 || maxW <= 0 || maxH <= 0 {
		return 0, 0
	}
	w := maxW
	h := w * b.Dy() / b.Dx() / 2
	if h > maxH {
		h = maxH
		w = h * 2 * b.Dx() / b.Dy()
	}
	return max(w, 1), max(h, 1)
}

// Render draws img into exactly w x h cells using upper half blocks, the
// top pixel as foreground and the bottom pixel as background.
func Render(img image.Image, w, h int) string {
	if w <= 0 || h <= 0 {
		return ""
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h*2))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Over, nil)

	var sb strings.Builder
	for y := 0; y < h; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < w; x++ {
			top := dst.RGBAAt(x, y*2)
			bottom := dst.RGBAAt(x, y*2+1)
			style := lipgloss.NewStyle().
				Foreground(lipgloss.Color(hex(top.R, top.G, top.B))).
				Background(lipgloss.Color(hex(bottom.R, bottom.G, bottom.B)))
			sb.WriteString(style.Render("▀"))
		}
	}
	return sb.String()
}

// Placeholder is shown in place of an image that could not be loaded.
func Placeholder(w, h int, label string) string {
	if w <= 0 || h <= 0 {
		return ""
	}
	return lipgloss.NewStyle().
		Width(w).
		Height(h).
		MaxHeight(h).
		Align(lipgloss.Center, lipgloss.Center).
		Foreground(lipgloss.Color("241")).
		Background(lipgloss.Color("236")).
		Render(ansi.Truncate("✕ "+label, w, "…"))
}

func hex(r, g, b uint8) string {
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}
