package core

// response.go
import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
)

// ProblemDetail — RFC 7807
type ProblemDetail struct {
	Type     string `json:"type"`
	Title    string `json:"title"`
	Status   int    `json:"status"`
	Detail   string `json:"detail"`
	Instance string `json:"instance"`
	Code     string `json:"code"`
}

// Fail — ошибка с логированием, ответ application/problem+json
func Fail(w http.ResponseWriter, r *http.Request, err error) {
	ae := From(err)
	if ae == nil {
		ae = Internal("внутренняя ошибка", nil)
	}

	reqID := middleware.GetReqID(r.Context())
	if reqID == "" {
		reqID = "n/a"
	}

	LogError("Ошибка запроса", map[string]interface{}{
		"request_id": reqID,
		"path":       r.URL.Path,
		"code":       ae.Code,
		"status":     ae.Status,
		"message":    ae.Message,
		"error":      ae.Err,
	})

	problem := ProblemDetail{
		Type:     "/errors/" + ae.Code,
		Title:    http.StatusText(ae.Status),
		Status:   ae.Status,
		Detail:   ae.Message,
		Instance: r.URL.Path,
		Code:     ae.Code,
	}

	w.Header().Set("Content-Type", "application/problem+json; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(ae.Status)
	if err := json.NewEncoder(w).Encode(problem); err != nil {
		LogError("Ошибка кодирования problem+json", map[string]interface{}{"error": err})
	}
}
