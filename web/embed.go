// Package web embeds the server-rendered HTML templates.
package web

import (
	"embed"
	"html/template"
	"time"

	"go-jobboard/internal/domain"
)

//go:embed templates/*.html
var templateFS embed.FS

var funcs = template.FuncMap{
	"date": func(t time.Time) string {
		if t.IsZero() {
			return ""
		}
		return t.Format("Jan 2, 2006")
	},
	"statuses": func() []domain.ApplicationStatus {
		return domain.ApplicationStatuses
	},
}

// Templates parses every page. Pages are addressed by file name, e.g. "home.html".
func Templates() (*template.Template, error) {
	return template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
}
