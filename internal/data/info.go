// internal/data/info.go

package data

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Step — одна станция конвейера CI/CD
type Step struct {
	ID    string `json:"id" validate:"required"`
	Title string `json:"title" validate:"required"`
	Desc  string `json:"desc" validate:"required"`
}

// Info — документ для GET /api/info. Порядок полей задаёт порядок ключей в JSON.
type Info struct {
	Steps  []Step   `json:"steps" validate:"len=4,unique=ID,dive"`
	Why    []string `json:"why" validate:"required,dive,required"`
	How    []string `json:"how" validate:"required,dive,required"`
	Future []string `json:"future" validate:"required,dive,required"`
}

// stepIDs — идентификаторы станций в порядке прохождения конвейера
var stepIDs = []string{"code", "build", "test", "deploy"}

// Pipeline возвращает документ о конвейере. Содержимое фиксировано;
// каждый вызов отдаёт новую копию, чтобы вызывающий не мог изменить оригинал.
func Pipeline() Info {
	return Info{
		Steps: []Step{
			{ID: "code", Title: "Code", Desc: "Your source code (this repo). Push triggers the pipeline."},
			{ID: "build", Title: "Build", Desc: "Dependencies installed, packaging, Docker image build."},
			{ID: "test", Title: "Test", Desc: "Unit/integration tests and static analysis."},
			{ID: "deploy", Title: "Deploy", Desc: "Automated deployment to the chosen target."},
		},
		Why: []string{
			"Every push is built and tested the same way, so broken changes are caught before release.",
			"Automated deploys remove manual steps and keep environments consistent.",
			"Fast feedback: a failing stage points straight at the change that broke it.",
		},
		How: []string{
			"GitHub Actions runs the workflow on every push and pull request.",
			"A Dockerfile packages the service into a small, reproducible image.",
			"The /health endpoint is used by the runtime to check that the container is alive.",
		},
		Future: []string{
			"Push images to a container registry with semantic version tags.",
			"Add staging and production environments with manual approval.",
			"Collect metrics and alerts for the running service.",
		},
	}
}

// Validate проверяет структуру документа и порядок станций
func (i Info) Validate() error {
	if err := validator.New().Struct(i); err != nil {
		return fmt.Errorf("некорректный документ info: %w", err)
	}
	for n, id := range stepIDs {
		if i.Steps[n].ID != id {
			return fmt.Errorf("некорректный документ info: steps[%d].id = %q, ожидается %q", n, i.Steps[n].ID, id)
		}
	}
	return nil
}

// Encode проверяет документ и кодирует его в JSON один раз.
// Результат отдаётся без изменений на каждый запрос.
func (i Info) Encode() ([]byte, error) {
	if err := i.Validate(); err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	if err := enc.Encode(i); err != nil {
		return nil, fmt.Errorf("ошибка кодирования info: %w", err)
	}
	return buf.Bytes(), nil
}
