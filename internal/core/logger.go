package core

import (
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

type Logger struct {
	mainLogger  *zerolog.Logger
	errorLogger *zerolog.Logger
	files       []io.Closer
	mu          sync.Mutex
}

var (
	globalLogger *Logger
	globalMu     sync.RWMutex
)

// InitLog настраивает основной журнал и журнал ошибок.
// В dev — цветной вывод в консоль, иначе JSON. Если задан LogDir,
// дублирует записи в app.log / errors.log с ротацией.
func InitLog(cfg Config) {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	var console io.Writer = os.Stdout
	if !cfg.IsProd() {
		console = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	}

	mainOut := []io.Writer{console}
	errorOut := []io.Writer{console}
	var files []io.Closer

	if cfg.LogDir != "" {
		if err := os.MkdirAll(cfg.LogDir, 0755); err != nil {
			zerolog.New(os.Stderr).Error().Err(err).Str("dir", cfg.LogDir).Msg("Ошибка создания директории логов")
		} else {
			mainFile := rotatingFile(filepath.Join(cfg.LogDir, "app.log"))
			errorFile := rotatingFile(filepath.Join(cfg.LogDir, "errors.log"))
			mainOut = append(mainOut, mainFile)
			errorOut = append(errorOut, errorFile)
			files = append(files, mainFile, errorFile)
		}
	}

	mainLogger := newLogger(io.MultiWriter(mainOut...), level, cfg.AppName)
	errorLogger := newLogger(io.MultiWriter(errorOut...), level, cfg.AppName)

	Close()
	globalMu.Lock()
	globalLogger = &Logger{
		mainLogger:  &mainLogger,
		errorLogger: &errorLogger,
		files:       files,
	}
	globalMu.Unlock()

	LogDebug("Логгер инициализирован", map[string]interface{}{
		"log_level": level.String(),
		"log_dir":   cfg.LogDir,
	})
}

// SetLogOutput направляет оба журнала в w (для тестов).
func SetLogOutput(w io.Writer, level zerolog.Level) {
	l := newLogger(w, level, "")
	globalMu.Lock()
	globalLogger = &Logger{mainLogger: &l, errorLogger: &l}
	globalMu.Unlock()
}

func newLogger(w io.Writer, level zerolog.Level, app string) zerolog.Logger {
	ctx := zerolog.New(w).Level(level).With().Timestamp()
	if app != "" {
		ctx = ctx.Str("app", app)
	}
	return ctx.Logger()
}

func rotatingFile(path string) *lumberjack.Logger {
	return &lumberjack.Logger{
		Filename:   path,
		MaxSize:    10, // MB
		MaxAge:     7,  // дней
		MaxBackups: 7,
		Compress:   true,
		LocalTime:  true,
	}
}

func LogDebug(msg string, fields map[string]interface{}) {
	write(func(l *Logger) *zerolog.Event { return l.mainLogger.Debug() }, msg, fields)
}

func LogInfo(msg string, fields map[string]interface{}) {
	write(func(l *Logger) *zerolog.Event { return l.mainLogger.Info() }, msg, fields)
}

func LogError(msg string, fields map[string]interface{}) {
	write(func(l *Logger) *zerolog.Event { return l.errorLogger.Error() }, msg, fields)
}

func write(level func(*Logger) *zerolog.Event, msg string, fields map[string]interface{}) {
	globalMu.RLock()
	l := globalLogger
	globalMu.RUnlock()
	if l == nil {
		return // логгер не инициализирован или закрыт
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	event := level(l)
	for k, v := range fields {
		if err, ok := v.(error); ok {
			event = event.AnErr(k, err)
			continue
		}
		event = event.Interface(k, v)
	}
	event.Msg(msg)
}

// Close закрывает лог-файлы; последующие вызовы LogInfo/LogError ничего не делают.
func Close() {
	globalMu.Lock()
	l := globalLogger
	globalLogger = nil
	globalMu.Unlock()
	if l == nil {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	consoleLogger := zerolog.New(os.Stderr).With().Timestamp().Logger()
	for _, f := range l.files {
		if err := f.Close(); err != nil {
			consoleLogger.Error().Msgf("Закрытие лог-файла: %v", err)
		}
	}
}
