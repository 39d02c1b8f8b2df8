package gallery

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/sahilm/fuzzy"
)

// ImageSet is the ordered, immutable list of images shown by the gallery.
type ImageSet struct {
	basePath  string
	extension string
	ids       []string
}

// NewImageSet builds an image set. ids is copied.
func NewImageSet(basePath, extension string, ids []string) *ImageSet {
	cp := make([]string, len(ids))
	copy(cp, ids)
	return &ImageSet{
		basePath:  strings.TrimRight(basePath, "/"),
		extension: strings.TrimPrefix(extension, "."),
		ids:       cp,
	}
}

// Len returns the number of images
func (s *ImageSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.ids)
}

// ID returns the identifier at index i
func (s *ImageSet) ID(i int) string {
	return s.ids[i]
}

// IDs returns a copy of the identifiers in order
func (s *ImageSet) IDs() []string {
	cp := make([]string, len(s.ids))
	copy(cp, s.ids)
	return cp
}

// Source resolves the image resource for index i as {basePath}/{id}.{ext}
func (s *ImageSet) Source(i int) string {
	return fmt.Sprintf("%s/%s.%s", s.basePath, s.ids[i], s.extension)
}

// Path maps the source of image i onto the file system. Relative sources are
// resolved against baseDir; absolute ones are used as is.
func (s *ImageSet) Path(baseDir string, i int) string {
	src := filepath.FromSlash(s.Source(i))
	if filepath.IsAbs(src) {
		return src
	}
	return filepath.Join(baseDir, src)
}

// Tile is one activatable thumbnail in the gallery.
type Tile struct {
	Index  int
	ID     string
	Source string
	Label  string // accessible label, "Image 3 open"
	Alt    string
	Lazy   bool
}

// Render produces one tile per image, in order. An empty set yields no tiles.
func Render(set *ImageSet) []Tile {
	tiles := make([]Tile, 0, set.Len())
	for i := 0; i < set.Len(); i++ {
		tiles = append(tiles, Tile{
			Index:  i,
			ID:     set.ID(i),
			Source: set.Source(i),
			Label:  TileLabel(i),
			Alt:    fmt.Sprintf("Image %d", i+1),
			Lazy:   true,
		})
	}
	return tiles
}

// TileLabel is the accessible label of the tile at index i
func TileLabel(i int) string {
	return fmt.Sprintf("Image %d open", i+1)
}

// ModalLabel is the label of the image shown in the lightbox
func ModalLabel(i, n int) string {
	return fmt.Sprintf("Image %d of %d", i+1, n)
}

// Find returns the index of the identifier that best matches query.
func Find(set *ImageSet, query string) (int, bool) {
	matches := FindAll(set, query)
	if len(matches) == 0 {
		return 0, false
	}
	return matches[0], true
}

// FindAll returns indices of identifiers matching query, best match first.
// An empty query matches every image in order.
func FindAll(set *ImageSet, query string) []int {
	query = strings.TrimSpace(query)
	if query == "" {
		all := make([]int, set.Len())
		for i := range all {
			all[i] = i
		}
		return all
	}

	matches := fuzzy.Find(query, set.ids)
	out := make([]int, len(matches))
	for i, m := range matches {
		out[i] = m.Index
	}
	return out
}
