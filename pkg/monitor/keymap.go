package monitor

import "github.com/charmbracelet/bubbles/key"

// galleryKeyMap binds the gallery grid.
type galleryKeyMap struct {
	Up           key.Binding
	Down         key.Binding
	Left         key.Binding
	Right        key.Binding
	Open         key.Binding
	Jump         key.Binding
	Copy         key.Binding
	CopyMarkdown key.Binding
	Help         key.Binding
	Quit         key.Binding
}

func (k galleryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Open, k.Jump, k.Copy, k.Help, k.Quit}
}

func (k galleryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Open, k.Jump, k.Copy, k.CopyMarkdown},
		{k.Help, k.Quit},
	}
}

// lightboxKeyMap documents the lightbox keys. Dispatch goes through the
// controller; these bindings only feed the help line.
type lightboxKeyMap struct {
	Prev  key.Binding
	Next  key.Binding
	Close key.Binding
	Copy  key.Binding
}

func (k lightboxKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Close, k.Copy}
}

func (k lightboxKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

var galleryKeys = galleryKeyMap{
	Up:           key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:         key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Left:         key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
	Right:        key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
	Open:         key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "open")),
	Jump:         key.NewBinding(key.WithKeys("g", "/"), key.WithHelp("g", "jump to")),
	Copy:         key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy path")),
	CopyMarkdown: key.NewBinding(key.WithKeys("Y"), key.WithHelp("Y", "copy markdown")),
	Help:         key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	Quit:         key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

var lightboxKeys = lightboxKeyMap{
	Prev:  key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "previous")),
	Next:  key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "next")),
	Close: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
	Copy:  key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy path")),
}

// forceQuit works everywhere, including inside the lightbox and modals.
var forceQuit = key.NewBinding(key.WithKeys("ctrl+c"))
