package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"

	"github.com/m04kA/alejandrums/internal/domain"
)

//go:embed templates/*.html
var templateFiles embed.FS

//go:embed static
var staticFiles embed.FS

// pageNames страницы, каждая собирается вместе с layout.html
var pageNames = []string{"home", "rooms", "room", "booking", "contact", "error"}

var funcs = template.FuncMap{
	"price":    domain.FormatPrice,
	"hour":     domain.FormatHour,
	"longDate": longDateString,
}

func parseTemplates() (map[string]*template.Template, error) {
	base, err := template.New("layout.html").Funcs(funcs).ParseFS(templateFiles, "templates/layout.html")
	if err != nil {
		return nil, fmt.Errorf("web: parse layout: %w", err)
	}

	pages := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		clone, err := base.Clone()
		if err != nil {
			return nil, fmt.Errorf("web: clone layout for %s: %w", name, err)
		}
		if _, err := clone.ParseFS(templateFiles, "templates/"+name+".html"); err != nil {
			return nil, fmt.Errorf("web: parse %s: %w", name, err)
		}
		pages[name] = clone
	}
	return pages, nil
}

func staticFS() http.FileSystem {
	sub, err := fs.Sub(staticFiles, "static")
	if err != nil {
		// каталог static встроен при компиляции
		panic(err)
	}
	return http.FS(sub)
}

// render рендерит страницу в буфер, чтобы ошибка шаблона не оставила полуответ
func (p *Pages) render(w http.ResponseWriter, status int, name string, data interface{}) {
	tpl, ok := p.templates[name]
	if !ok {
		p.logger.Error("Web: unknown template %s", name)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := tpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		p.logger.Error("Web: render %s: %v", name, err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
