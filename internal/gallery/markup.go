package gallery

import (
	"html/template"
	"io"
	"strings"
)

var tileTemplate = template.Must(template.New("gallery").Parse(
	`{{range .}}<button class="tile" type="button" data-index="{{.Index}}" aria-label="{{.Label}}">` +
		`<img src="{{.Source}}" alt="{{.Alt}}"{{if .Lazy}} loading="lazy"{{end}}>` +
		`</button>
{{end}}`))

// WriteMarkup writes the HTML rendition of every tile in a single pass.
func WriteMarkup(w io.Writer, set *ImageSet) error {
	return tileTemplate.Execute(w, Render(set))
}

// Markup returns the complete gallery container content. Callers replace the
// container's content with it wholesale.
func Markup(set *ImageSet) (string, error) {
	var sb strings.Builder
	if err := WriteMarkup(&sb, set); err != nil {
		return "", err
	}
	return sb.String(), nil
}
