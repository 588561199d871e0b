// Package render отрисовывает HTML-страницы из набора шаблонов.
package render

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"io/fs"
)

//go:generate mockgen -source=render.go -destination=../mocks/renderer_mock.go -package=mocks

// Renderer отрисовывает шаблон name с данными data в w.
type Renderer interface {
	Render(w io.Writer, name string, data any) error
}

// HTMLRenderer реализация Renderer на html/template.
type HTMLRenderer struct {
	templates *template.Template
}

// New разбирает все шаблоны *.html из fsys.
func New(fsys fs.FS) (*HTMLRenderer, error) {
	tmpl, err := template.New("").ParseFS(fsys, "*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &HTMLRenderer{templates: tmpl}, nil
}

// Render пишет страницу в w только после успешного выполнения шаблона,
// чтобы при ошибке клиент не получил половину документа.
func (r *HTMLRenderer) Render(w io.Writer, name string, data any) error {
	var buf bytes.Buffer
	if err := r.templates.ExecuteTemplate(&buf, name, data); err != nil {
		return fmt.Errorf("execute template %q: %w", name, err)
	}
	_, err := buf.WriteTo(w)
	return err
}
