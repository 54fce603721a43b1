// Package letter renders thank-you letters from an HTML template.
//
// Templates receive a domain.Letter. The Representatives field is a tagged
// value and templates branch on it explicitly:
//
//	{{if .Representatives.Available}}
//	  {{range .Representatives.Names}}{{.}} {{end}}
//	{{else}}
//	  {{.Representatives.Message}}
//	{{end}}
package letter

import (
	"bytes"
	"fmt"
	"html/template"
	"os"

	"github.com/couchcryptid/event-manager/internal/domain"
)

// Renderer fills a parsed letter template. It is safe to reuse across rows.
type Renderer struct {
	tmpl *template.Template
}

// Load reads and parses the template at path. A missing or malformed template
// is returned as an error.
func Load(path string) (*Renderer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read letter template: %w", err)
	}
	return Parse(string(data))
}

// Parse builds a Renderer from template text.
func Parse(text string) (*Renderer, error) {
	tmpl, err := template.New("letter").Option("missingkey=error").Parse(text)
	if err != nil {
		return nil, fmt.Errorf("parse letter template: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Render produces the letter body for one attendee.
func (r *Renderer) Render(l domain.Letter) (string, error) {
	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, l); err != nil {
		return "", fmt.Errorf("render letter %s: %w", l.ID, err)
	}
	return buf.String(), nil
}
