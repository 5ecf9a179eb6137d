package handler

//home.go
import (
	"net/http"

	"codeFactory/internal/core"
	"codeFactory/internal/data"
	"codeFactory/internal/view"
)

// Greeting — ответ "/" в режиме plain
const Greeting = "Hello from DevOps Project 🚀"

// Home возвращает обработчик главной страницы.
// В режиме plain отдаёт короткое приветствие, иначе рендерит шаблон "home".
func Home(tpl *view.Templates, mode string, doc data.Info) http.HandlerFunc {
	if mode == core.HomePlain {
		return func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(Greeting))
		}
	}

	return func(w http.ResponseWriter, r *http.Request) {
		if err := tpl.Render(w, "home", "Code Factory", doc); err != nil {
			core.Fail(w, r, err)
		}
	}
}
