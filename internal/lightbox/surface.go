package lightbox

// Surface is an in-memory Display. The terminal viewer draws from it; tests
// inspect it directly.
type Surface struct {
	Source string
	Label  string
	Open   bool

	// Shows counts ShowModal calls on a closed surface.
	Shows int
}

// SetImage implements Display
func (s *Surface) SetImage(source, label string) {
	s.Source = source
	s.Label = label
}

// ShowModal implements Display
func (s *Surface) ShowModal() {
	if !s.Open {
		s.Shows++
	}
	s.Open = true
}

// Close implements Display
func (s *Surface) Close() {
	s.Open = false
}

// IsOpen implements Display
func (s *Surface) IsOpen() bool {
	return s.Open
}
