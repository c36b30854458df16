// Package web is the template-rendering boundary. Handlers hand it plain data
// structs; markup never leaves this package.
package web

import (
	"embed"
	"html/template"
	"log"
	"net/http"
)

//go:embed templates/*.html
var templateFS embed.FS

// NoteView is a note as shown on the dashboard.
type NoteView struct {
	ID      uint
	Content string
}

// DashboardData feeds the dashboard page.
type DashboardData struct {
	Username string
	Notes    []NoteView
}

type Renderer struct {
	landing   *template.Template
	login     *template.Template
	register  *template.Template
	dashboard *template.Template
}

func NewRenderer() *Renderer {
	parse := func(name string) *template.Template {
		return template.Must(template.ParseFS(templateFS, "templates/"+name))
	}
	return &Renderer{
		landing:   parse("landing.html"),
		login:     parse("login.html"),
		register:  parse("register.html"),
		dashboard: parse("dashboard.html"),
	}
}

func (rd *Renderer) Landing(w http.ResponseWriter) {
	rd.execute(w, rd.landing, nil)
}

func (rd *Renderer) Login(w http.ResponseWriter) {
	rd.execute(w, rd.login, nil)
}

func (rd *Renderer) Register(w http.ResponseWriter) {
	rd.execute(w, rd.register, nil)
}

func (rd *Renderer) Dashboard(w http.ResponseWriter, data DashboardData) {
	rd.execute(w, rd.dashboard, data)
}

func (rd *Renderer) execute(w http.ResponseWriter, tmpl *template.Template, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.Execute(w, data); err != nil {
		log.Printf("[web] render %s error: %v", tmpl.Name(), err)
	}
}
