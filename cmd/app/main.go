package main

//main.go
import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"codeFactory/internal/core"
	httpx "codeFactory/internal/http"
)

func main() {
	// 1) Конфиг и логи
	config, err := core.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}
	core.InitLog(config)
	defer core.Close()
	core.LogInfo("Конфигурация загружена", map[string]interface{}{
		"env":       config.Env,
		"addr":      config.Addr,
		"home_mode": config.HomeMode,
	})

	// 2) Контекст готовности: отменяется при начале завершения, /readyz → 503
	ready, notReady := context.WithCancel(context.Background())
	defer notReady()

	// 3) Роутер и HTTP-сервер с таймаутами
	handler, err := httpx.NewRouter(config, ready)
	if err != nil {
		core.LogError("Ошибка инициализации приложения", map[string]interface{}{"error": err})
		core.Close()
		os.Exit(1)
	}
	srv := core.Server(config, handler)

	// 4) Перехват сигналов
	sigs, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 5) Запуск и ожидание
	serveErr := runServer(srv, config)
	select {
	case err := <-serveErr:
		core.LogError("Ошибка работы сервера", map[string]interface{}{"error": err})
		core.Close()
		os.Exit(1)
	case <-sigs.Done():
	}

	// 6) Graceful shutdown
	notReady()
	core.LogInfo("http: начат процесс завершения", nil)
	if err := gracefulShutdown(srv, config.ShutdownTimeout); err != nil {
		core.LogError("Ошибка завершения сервера", map[string]interface{}{"error": err})
		core.Close()
		os.Exit(1)
	}
	core.LogInfo("http: завершение выполнено", nil)
}

// runServer — ListenAndServe в горутине; ошибка (кроме ErrServerClosed) уходит в канал
func runServer(srv *http.Server, cfg core.Config) <-chan error {
	errc := make(chan error, 1)
	go func() {
		core.LogInfo("http: сервер запущен", map[string]interface{}{
			"addr": cfg.Addr,
			"env":  cfg.Env,
			"app":  cfg.AppName,
		})
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
	}()
	return errc
}

// gracefulShutdown — корректное завершение
func gracefulShutdown(srv *http.Server, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return srv.Shutdown(ctx)
}
