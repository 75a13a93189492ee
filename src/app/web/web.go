// Package web embeds the HTML templates and static assets served by the app.
package web

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"
)

//go:embed templates/*.tmpl
var templates embed.FS

//go:embed static/*
var static embed.FS

// Templates parses every embedded page template.
func Templates() (*template.Template, error) {
	return template.New("").ParseFS(templates, "templates/*.tmpl")
}

// MustTemplates is like Templates but panics on a parse error.
func MustTemplates() *template.Template {
	return template.Must(Templates())
}

// Static returns the embedded static assets, rooted at the static directory.
func Static() http.FileSystem {
	sub, err := fs.Sub(static, "static")
	if err != nil {
		panic(err)
	}
	return http.FS(sub)
}
