// Package views renders the server-side HTML pages.
package views

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
)

//go:embed templates/*.html
var templateFS embed.FS

// Page is the view-model every template receives.
type Page struct {
	Title    string
	Active   string
	LoggedIn bool
	Username string
	Data     any
}

type Renderer interface {
	Render(w io.Writer, name string, p Page) error
}

// Page names.
const (
	Home    = "home"
	List    = "list"
	Detail  = "detail"
	Edit    = "edit"
	Add     = "add"
	About   = "about"
	Contact = "contact"
	Login   = "login"
)

var pageNames = []string{Home, List, Detail, Edit, Add, About, Contact, Login}

type Templates struct {
	pages map[string]*template.Template
}

// Load parses the layout once per page so each page can define its own "content".
func Load() (*Templates, error) {
	t := &Templates{pages: make(map[string]*template.Template, len(pageNames))}
	for _, name := range pageNames {
		tmpl, err := template.New("layout.html").Funcs(funcs()).
			ParseFS(templateFS, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
		t.pages[name] = tmpl
	}
	return t, nil
}

// Render executes into a buffer first so a failing template never leaves half a page.
func (t *Templates) Render(w io.Writer, name string, p Page) error {
	tmpl, ok := t.pages[name]
	if !ok {
		return fmt.Errorf("unknown view %q", name)
	}
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", p); err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}
	_, err := buf.WriteTo(w)
	return err
}
