package dashboard

import (
	"embed"
	"html/template"
	"io"
	"io/fs"
)

//go:embed templates/*.html
var templatesFS embed.FS

// MapSettings positions the map widget.
type MapSettings struct {
	CenterLat float64
	CenterLon float64
	Zoom      int
}

type Page struct {
	Title string
	Map   MapSettings
	State State
	View  View
}

type Renderer struct {
	tmpl *template.Template
}

// NewRenderer parses the embedded dashboard templates.
func NewRenderer() (*Renderer, error) {
	return newRendererFromFS(templatesFS, "templates")
}

func newRendererFromFS(fsys fs.FS, dir string) (*Renderer, error) {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		return nil, err
	}
	tmpl, err := template.ParseFS(sub, "*.html")
	if err != nil {
		return nil, err
	}
	return &Renderer{tmpl: tmpl}, nil
}

func (r *Renderer) Render(w io.Writer, page *Page) error {
	if page.Title == "" {
		page.Title = "Open-Meteo Interactive Weather Dashboard"
	}
	return r.tmpl.ExecuteTemplate(w, "dashboard.html", page)
}
