// Package web встраивает шаблоны и статику в бинарник,
// чтобы сервер не зависел от рабочего каталога.
package web

import (
	"embed"
	"io/fs"
)

//go:embed templates static
var files embed.FS

// Templates — web/templates/{layouts,pages}/*.gohtml
func Templates() fs.FS {
	sub, err := fs.Sub(files, "templates")
	if err != nil {
		panic(err) // каталог встроен при компиляции
	}
	return sub
}

// Static — web/static/*
func Static() fs.FS {
	sub, err := fs.Sub(files, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
