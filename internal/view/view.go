package view

//view.go
import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"

	"codeFactory/internal/core"
)

const layoutFile = "layouts/base.gohtml"

// pages — имя для рендера -> файл страницы
var pages = map[string]string{
	"home": "pages/home.gohtml",
}

// Templates — готовые шаблоны: layout + page под именем страницы
type Templates struct {
	appName   string
	templates map[string]*template.Template
}

// PageData — общая модель для всех шаблонов
type PageData struct {
	Title   string
	AppName string
	Data    any
}

// New парсит layout один раз и клонирует его для каждой страницы.
func New(files fs.FS, appName string) (*Templates, error) {
	layoutTpl, err := template.New("layout").ParseFS(files, layoutFile)
	if err != nil {
		return nil, fmt.Errorf("ошибка парсинга layout: %w", err)
	}

	t := &Templates{appName: appName, templates: make(map[string]*template.Template, len(pages))}
	for name, pagePath := range pages {
		tpl := template.Must(layoutTpl.Clone())
		if _, err := tpl.ParseFS(files, pagePath); err != nil {
			return nil, fmt.Errorf("ошибка парсинга шаблона %q: %w", name, err)
		}
		if tpl.Lookup("base") == nil {
			return nil, fmt.Errorf("в шаблонах отсутствует define \"base\" для страницы %s", name)
		}
		t.templates[name] = tpl
	}
	return t, nil
}

// Render выполняет шаблон в буфер и только потом пишет ответ,
// поэтому при ошибке клиент не получает половину страницы.
func (t *Templates) Render(w http.ResponseWriter, name, title string, data any) error {
	tpl, ok := t.templates[name]
	if !ok {
		return core.Internal("шаблон не найден: "+name, nil)
	}

	var buf bytes.Buffer
	if err := tpl.ExecuteTemplate(&buf, "base", PageData{Title: title, AppName: t.appName, Data: data}); err != nil {
		return core.Internal("ошибка отображения "+name, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, err := buf.WriteTo(w)
	return err
}
