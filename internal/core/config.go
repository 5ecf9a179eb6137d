package core

//config.go

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Режимы главной страницы
const (
	HomeTemplate = "template" // страница из web/templates
	HomePlain    = "plain"    // простое текстовое приветствие
)

// Config определяет настройки приложения
type Config struct {
	AppName           string        `validate:"required"`                    // Имя приложения
	Addr              string        `validate:"required"`                    // Адрес HTTP-сервера (например, ":5000")
	Env               string        `validate:"oneof=dev staging prod"`      // Среда выполнения
	HomeMode          string        `validate:"oneof=template plain"`        // Что отдаёт "/"
	LogLevel          string        `validate:"oneof=debug info warn error"` // Минимальный уровень логов
	LogDir            string        // Каталог лог-файлов; пусто — только stdout
	ShutdownTimeout   time.Duration `validate:"gt=0"` // Таймаут для graceful shutdown
	ReadHeaderTimeout time.Duration `validate:"gt=0"` // Таймаут чтения заголовков HTTP-запроса
	ReadTimeout       time.Duration `validate:"gt=0"` // Таймаут чтения HTTP-запроса
	WriteTimeout      time.Duration `validate:"gt=0"` // Таймаут записи HTTP-ответа
	IdleTimeout       time.Duration `validate:"gt=0"` // Таймаут простоя соединения
	RequestTimeout    time.Duration `validate:"gt=0"` // Таймаут обработки запроса в middleware
}

// IsProd — продакшен-среда
func (c Config) IsProd() bool { return c.Env == "prod" }

// Load читает .env (если есть) и переменные окружения со значениями по умолчанию.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("ошибка чтения .env: %w", err)
	}

	cfg := Config{
		AppName:           getEnv("APP_NAME", "code-factory"),
		Addr:              getEnv("HTTP_ADDR", ":5000"),
		Env:               getEnv("APP_ENV", "dev"),
		HomeMode:          getEnv("HOME_MODE", HomeTemplate),
		LogLevel:          strings.ToLower(getEnv("LOG_LEVEL", "info")),
		LogDir:            os.Getenv("LOG_DIR"),
		ShutdownTimeout:   10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
		RequestTimeout:    15 * time.Second,
	}
	if _, ok := os.LookupEnv("LOG_DIR"); !ok {
		cfg.LogDir = "logs"
	}

	durations := []struct {
		key string
		dst *time.Duration
	}{
		{"SHUTDOWN_TIMEOUT", &cfg.ShutdownTimeout},
		{"READ_HEADER_TIMEOUT", &cfg.ReadHeaderTimeout},
		{"READ_TIMEOUT", &cfg.ReadTimeout},
		{"WRITE_TIMEOUT", &cfg.WriteTimeout},
		{"IDLE_TIMEOUT", &cfg.IdleTimeout},
		{"REQUEST_TIMEOUT", &cfg.RequestTimeout},
	}
	for _, d := range durations {
		v, err := getEnvDuration(d.key, *d.dst)
		if err != nil {
			return Config{}, err
		}
		*d.dst = v
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate проверяет теги validate
func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make([]string, 0, len(verrs))
			for _, e := range verrs {
				fields = append(fields, fmt.Sprintf("%s (%s=%s)", e.Field(), e.Tag(), e.Param()))
			}
			return fmt.Errorf("некорректная конфигурация: %s", strings.Join(fields, ", "))
		}
		return fmt.Errorf("некорректная конфигурация: %w", err)
	}
	return nil
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key, def string) string {
	val := strings.TrimSpace(os.Getenv(key))
	if val == "" {
		return def
	}
	return val
}

// getEnvDuration возвращает длительность из переменной окружения или значение по умолчанию
func getEnvDuration(key string, def time.Duration) (time.Duration, error) {
	val := strings.TrimSpace(os.Getenv(key))
	if val == "" {
		return def, nil
	}
	d, err := time.ParseDuration(val)
	if err != nil {
		return 0, fmt.Errorf("неверный формат длительности %s=%q: %w", key, val, err)
	}
	return d, nil
}
