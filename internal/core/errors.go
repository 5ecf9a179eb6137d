package core

//errors.go
import (
	"errors"
	"fmt"
	"net/http"
)

// AppError представляет ошибку приложения с кодом и HTTP-статусом
type AppError struct {
	Code    string // Машинный код ошибки (например, "internal", "not_found")
	Status  int    // HTTP-статус для ответа клиенту
	Message string // Сообщение для клиента
	Err     error  // Внутренняя ошибка (если есть)
}

// Error возвращает строковое представление ошибки
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s (%d): %s: %v", e.Code, e.Status, e.Message, e.Err)
	}
	return fmt.Sprintf("%s (%d): %s", e.Code, e.Status, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Internal — HTTP 500
func Internal(msg string, err error) *AppError {
	return &AppError{Code: "internal", Status: http.StatusInternalServerError, Message: msg, Err: err}
}

// MethodNotAllowed — HTTP 405
func MethodNotAllowed(method string) *AppError {
	return &AppError{Code: "method_not_allowed", Status: http.StatusMethodNotAllowed, Message: "метод " + method + " не поддерживается"}
}

// From преобразует ошибку в AppError, возвращая Internal при неизвестной ошибке
func From(err error) *AppError {
	if err == nil {
		return nil
	}
	var ae *AppError
	if errors.As(err, &ae) {
		return ae
	}
	return Internal("внутренняя ошибка", err)
}
