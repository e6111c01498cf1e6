package handlers

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
)

//go:embed templates/*.html
var templateFS embed.FS

// 输出编码只发生在这里（展示边界），数据模型里永远是原始文本
var templateFuncs = template.FuncMap{
	// nl2br 先做 HTML 转义再把换行转成 <br> ，正文里的换行在页面上保留
	"nl2br": func(s string) template.HTML {
		escaped := template.HTMLEscapeString(s)
		escaped = strings.ReplaceAll(escaped, "\r\n", "<br>")
		escaped = strings.ReplaceAll(escaped, "\n", "<br>")
		return template.HTML(escaped)
	},
	"formatDate": func(t time.Time) string {
		return t.Format("02 Jan 2006, 15:04")
	},
}

// Renderer 把每个页面和基础布局组合成独立的模板集
type Renderer struct {
	pages map[string]*template.Template
}

func NewRenderer() (*Renderer, error) {
	entries, err := templateFS.ReadDir("templates")
	if err != nil {
		return nil, fmt.Errorf("failed to read templates: %w", err)
	}

	pages := make(map[string]*template.Template)
	for _, entry := range entries {
		name := entry.Name()
		if name == "base.html" {
			continue
		}

		ts, err := template.New(name).Funcs(templateFuncs).ParseFS(templateFS,
			"templates/base.html",
			"templates/"+name,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
		}

		pages[name] = ts
	}

	return &Renderer{pages: pages}, nil
}

func (r *Renderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	ts, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("no such template: %s", name)
	}

	return ts.ExecuteTemplate(w, "base", data)
}
