package view

import (
	"embed"
	"encoding/json"
	"html/template"
	"io"

	"placement-dashboard/app/models"
)

//go:embed templates/*.html
var files embed.FS

var templates = template.Must(template.New("").Funcs(template.FuncMap{
	"figure": figureJS,
}).ParseFS(files, "templates/*.html"))

type dashboardPage struct {
	models.Dashboard
	AuthEnabled bool
}

// Dashboard renders the full page for one selection.
func Dashboard(w io.Writer, d models.Dashboard, authEnabled bool) error {
	return templates.ExecuteTemplate(w, "dashboard.html", dashboardPage{Dashboard: d, AuthEnabled: authEnabled})
}

// Login renders the password form; message is shown above it when set.
func Login(w io.Writer, message string) error {
	return templates.ExecuteTemplate(w, "login.html", map[string]string{"Message": message})
}

// Error renders a stand-alone error page.
func Error(w io.Writer, status int, message string) error {
	return templates.ExecuteTemplate(w, "error.html", map[string]any{"Status": status, "Message": message})
}

func figureJS(f any) (template.JS, error) {
	b, err := json.Marshal(f)
	if err != nil {
		return "", err
	}
	return template.JS(b), nil
}
