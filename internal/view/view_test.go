package view

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"

	"codeFactory/internal/core"
	"codeFactory/internal/data"
	"codeFactory/web"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderHome(t *testing.T) {
	tpl, err := New(web.Templates(), "code-factory")
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	require.NoError(t, tpl.Render(rr, "home", "Code Factory", data.Pipeline()))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "text/html; charset=utf-8", rr.Header().Get("Content-Type"))
	body := rr.Body.String()
	assert.Contains(t, body, "<title>Code Factory · code-factory</title>")
	assert.Contains(t, body, `id="three-canvas"`)
	assert.Contains(t, body, `<script src="/static/main.js"></script>`)
	assert.Contains(t, body, "three@0.159.0/build/three.min.js")
	for _, step := range data.Pipeline().Steps {
		assert.Contains(t, body, step.Title)
	}
}

func TestRenderUnknownTemplate(t *testing.T) {
	tpl, err := New(web.Templates(), "code-factory")
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	err = tpl.Render(rr, "missing", "x", nil)
	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, core.From(err).Status)
	assert.Zero(t, rr.Body.Len())
}

func TestRenderExecError(t *testing.T) {
	files := fstest.MapFS{
		"layouts/base.gohtml": {Data: []byte(`{{define "base"}}{{template "content" .}}{{end}}`)},
		"pages/home.gohtml":   {Data: []byte(`{{define "content"}}{{.Data.Missing}}{{end}}`)},
	}
	tpl, err := New(files, "x")
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	assert.Error(t, tpl.Render(rr, "home", "x", data.Pipeline()))
	assert.Zero(t, rr.Body.Len(), "partial page must not be written")
}

func TestNewMissingBase(t *testing.T) {
	files := fstest.MapFS{
		"layouts/base.gohtml": {Data: []byte(`{{define "layout"}}{{end}}`)},
		"pages/home.gohtml":   {Data: []byte(`{{define "content"}}hi{{end}}`)},
	}
	_, err := New(files, "x")
	assert.Error(t, err)
}
