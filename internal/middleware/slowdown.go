package middleware

import (
	"net/http"
	"time"
)

// SlowdownMiddleware Middleware искусственной задержки: приостанавливает
// обработку каждого GET-запроса на delay перед передачей следующему handler.
// Задержка касается только горутины текущего запроса, параллельные запросы
// продолжают обрабатываться независимо.
func SlowdownMiddleware(delay time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		f := func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodGet {
				time.Sleep(delay)
			}

			next.ServeHTTP(w, r)
		}

		return http.HandlerFunc(f)
	}
}
