package certificate

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
)

//go:embed templates/*.html
var templateFS embed.FS

// DefaultTemplateID is used when an event has no template selected or the
// stored selector matches no bundled layout.
const DefaultTemplateID = "classic"

type Renderer struct {
	templates *template.Template
}

func NewRenderer() (*Renderer, error) {
	t, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse certificate templates: %w", err)
	}
	return &Renderer{templates: t}, nil
}

// Document carries everything a certificate layout can reference.
type Document struct {
	RecipientName  string
	RecipientEmail string
	EventTitle     string
	EventDate      string
	IssuedAt       string
	IssuerName     string
}

func (r *Renderer) Has(id string) bool {
	return r.templates.Lookup(id+".html") != nil
}

// Render produces the certificate HTML. Unknown template ids fall back to
// the default layout rather than failing the download.
func (r *Renderer) Render(id string, doc Document) ([]byte, error) {
	name := id + ".html"
	if r.templates.Lookup(name) == nil {
		name = DefaultTemplateID + ".html"
	}

	var buf bytes.Buffer
	if err := r.templates.ExecuteTemplate(&buf, name, doc); err != nil {
		return nil, fmt.Errorf("render certificate: %w", err)
	}

	return buf.Bytes(), nil
}
