package router

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trsv-dev/simple-spa-dev-server/internal/config"
	"github.com/trsv-dev/simple-spa-dev-server/internal/logger"
	"github.com/trsv-dev/simple-spa-dev-server/internal/static"
)

func init() {
	logger.InitLogger("error", "stdout")
}

// Создание временного каталога сайта и роутера над ним.
func makeTestRouter(t *testing.T, cfg *config.Config) http.Handler {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html>A</html>"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "style.css"), []byte("body{}"), 0o644))

	cfg.RootDir = dir

	return Router(cfg, static.NewHandler(dir))
}

// TestRouterServesStatic Проверяет полную цепочку: роутер, middleware,
// раздача статики и SPA-fallback.
func TestRouterServesStatic(t *testing.T) {
	cfg := config.NewConfig("", false)
	srv := httptest.NewServer(makeTestRouter(t, cfg))
	defer srv.Close()

	tests := []struct {
		name     string
		target   string
		wantCode int
		wantBody string
	}{
		{"существующий файл", "/style.css", http.StatusOK, "body{}"},
		{"корень", "/", http.StatusOK, "<html>A</html>"},
		{"SPA-fallback", "/missing", http.StatusOK, "<html>A</html>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := http.Get(srv.URL + tt.target)
			require.NoError(t, err)
			defer resp.Body.Close()

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)

			assert.Equal(t, tt.wantCode, resp.StatusCode)
			assert.Equal(t, tt.wantBody, string(body))
		})
	}
}

// TestRouterSlowMode Проверяет что включенный режим замедления
// задерживает GET-запросы.
func TestRouterSlowMode(t *testing.T) {
	cfg := config.NewConfig("", true)
	// укорачиваем задержку чтобы не растягивать тест
	cfg.SlowDelay = 50 * time.Millisecond

	srv := httptest.NewServer(makeTestRouter(t, cfg))
	defer srv.Close()

	start := time.Now()
	resp, err := http.Get(srv.URL + "/style.css")
	require.NoError(t, err)
	resp.Body.Close()
	elapsed := time.Since(start)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.GreaterOrEqual(t, elapsed, cfg.SlowDelay)
}

// TestRouterSlowModeDisabled Проверяет что без флага задержка не добавляется.
func TestRouterSlowModeDisabled(t *testing.T) {
	cfg := config.NewConfig("", false)
	cfg.SlowDelay = 300 * time.Millisecond

	srv := httptest.NewServer(makeTestRouter(t, cfg))
	defer srv.Close()

	start := time.Now()
	resp, err := http.Get(srv.URL + "/style.css")
	require.NoError(t, err)
	resp.Body.Close()
	elapsed := time.Since(start)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Less(t, elapsed, cfg.SlowDelay)
}
