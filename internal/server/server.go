package server

import (
	"errors"
	"net/http"

	"github.com/trsv-dev/simple-spa-dev-server/internal/logger"
)

// NewServer Создание нового сервера.
func NewServer(runAddress string, handler http.Handler) *http.Server {
	server := &http.Server{
		Addr:    runAddress,
		Handler: handler,
	}

	return server
}

// RunServer Запускает сервер в горутине и возвращает сам сервер и канал ошибок.
// Цикл обслуживания работает до завершения процесса; ошибка привязки порта
// приходит в канал ошибок.
func RunServer(runAddress string, handler http.Handler) (*http.Server, chan error) {
	server := NewServer(runAddress, handler)

	// канал ошибок сервера
	serverErrorCh := make(chan error, 1)

	go func() {
		defer close(serverErrorCh)

		logger.Log.Info("Сервер запущен", logger.String("address", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Error("Ошибка сервера", logger.String("err", err.Error()))
			// отправляем ошибку в канал ошибок сервера
			serverErrorCh <- err
		}
	}()

	return server, serverErrorCh
}
