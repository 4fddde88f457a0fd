// Package view renders the HTML pages of the status service.
package view

import (
	"embed"
	"html/template"
	"time"
)

const (
	IndexTemplate   = "index.html"
	DetailsTemplate = "details.html"

	timeLayout = time.RFC1123
)

//go:embed templates/*.html
var templateFS embed.FS

// Templates parses the embedded pages. Values are escaped by html/template.
func Templates() *template.Template {
	funcs := template.FuncMap{
		"fmtTime": func(t time.Time) string { return t.Format(timeLayout) },
		"orNA": func(s *string) string {
			if s == nil || *s == "" {
				return "N/A"
			}
			return *s
		},
	}
	return template.Must(template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html"))
}
