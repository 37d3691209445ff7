package server

import (
	"embed"
	"html/template"
	"io"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

//go:embed templates
var templatesFS embed.FS

// A renderer renders full pages and HTMX fragments from the embedded template
// set. Pages are parsed against the base layout; fragments stand alone.
type renderer struct {
	templates map[string]*template.Template
}

// NewRenderer parses the embedded templates.
func NewRenderer() echo.Renderer {
	shared := []string{
		"templates/todo_item.html",
		"templates/empty_state.html",
	}

	pages := map[string][]string{
		"home":        {"templates/base.html", "templates/home.html"},
		"list_detail": append([]string{"templates/base.html", "templates/list_detail.html"}, shared...),
	}
	fragments := []string{
		"todo_item",
		"edit_item_form",
		"empty_state",
		"duplicate_notice",
	}

	templates := make(map[string]*template.Template)
	for name, files := range pages {
		templates[name] = template.Must(template.ParseFS(templatesFS, files...))
	}
	for _, name := range fragments {
		templates[name] = template.Must(template.ParseFS(templatesFS, "templates/"+name+".html"))
	}

	return &renderer{templates: templates}
}

// Render implements the echo.Renderer interface.
func (r *renderer) Render(w io.Writer, name string, data any, c echo.Context) error {
	t, ok := r.templates[name]
	if !ok {
		return errors.Errorf("unknown template %s", name)
	}
	return t.Execute(w, data)
}
