package middleware

import (
	"net/http"
	"time"

	"github.com/trsv-dev/simple-spa-dev-server/internal/logger"
)

// Структура для хранения данных ответа.
type responseData struct {
	status int
	size   int
}

// LoggingResponseWriter Обёртка над оригинальным http.ResponseWriter
// для захвата статуса и размера ответа.
type LoggingResponseWriter struct {
	http.ResponseWriter
	responseData *responseData
}

func (l *LoggingResponseWriter) Write(b []byte) (int, error) {
	// записываем ответ, используя оригинальный http.ResponseWriter
	size, err := l.ResponseWriter.Write(b)
	// захватываем размер
	l.responseData.size += size

	return size, err
}

func (l *LoggingResponseWriter) WriteHeader(statusCode int) {
	l.ResponseWriter.WriteHeader(statusCode)
	// захватываем код статуса
	l.responseData.status = statusCode
}

// LogMiddleware Middleware для логирования всех запросов:
// строка в лог на каждый обработанный запрос.
func LogMiddleware(h http.Handler) http.Handler {
	f := func(w http.ResponseWriter, r *http.Request) {
		data := responseData{}

		lw := LoggingResponseWriter{
			ResponseWriter: w,
			responseData:   &data,
		}

		start := time.Now()
		h.ServeHTTP(&lw, r)
		duration := time.Since(start)

		logger.Log.Debug("Обработан HTTP-запрос",
			logger.String("uri", r.RequestURI),
			logger.String("method", r.Method),
			logger.Int("status", data.status),
			logger.String("duration", duration.String()),
			logger.Int("size", data.size),
		)
	}

	return http.HandlerFunc(f)
}
