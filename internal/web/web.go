// Package web embeds the calculator page template and its static assets.
package web

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"
	"strconv"

	"github.com/guttosm/ap-savings-service/internal/domain/model"
	"github.com/guttosm/ap-savings-service/internal/i18n"
)

// IndexTemplate is the name of the calculator page template.
const IndexTemplate = "index.html.tmpl"

// Page themes.
const (
	ThemeCard  = "card"
	ThemePlain = "plain"
)

//go:embed templates/*.tmpl
var templateFiles embed.FS

//go:embed static
var staticFiles embed.FS

// FuncMap returns the helpers available to page templates.
func FuncMap() template.FuncMap {
	return template.FuncMap{
		"percent": model.FormatPercent,
		"text":    i18n.T,
		"num": func(v float64) string {
			return strconv.FormatFloat(v, 'f', -1, 64)
		},
	}
}

// Templates parses the embedded page templates.
func Templates() *template.Template {
	return template.Must(template.New("").Funcs(FuncMap()).ParseFS(templateFiles, "templates/*.tmpl"))
}

// StaticFS returns the embedded static assets rooted at the static directory.
func StaticFS() http.FileSystem {
	sub, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(err)
	}
	return http.FS(sub)
}

// ValidTheme reports whether theme names a supported page theme.
func ValidTheme(theme string) bool {
	return theme == ThemeCard || theme == ThemePlain
}
