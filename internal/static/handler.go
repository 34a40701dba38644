package static

import (
	"net/http"
	"os"
	"path"
	"strings"
)

// Документ, который отдаётся вместо 404. Маршрутизация несуществующих
// путей остаётся на стороне клиентского SPA-приложения.
const fallbackDocument = "/index.html"

// Handler Раздаёт статические файлы из каталога через http.FileServer
// и реализует SPA-fallback: если GET-запрос завершился бы 404, вместо
// ошибки один раз отдаётся /index.html.
type Handler struct {
	root http.FileSystem
	fs   http.Handler
}

// NewHandler Создание обработчика статики поверх каталога dir.
func NewHandler(dir string) *Handler {
	root := http.Dir(dir)

	return &Handler{
		root: root,
		fs:   http.FileServer(root),
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// перехватываем 404 только для GET, остальные методы обрабатывает
	// файловый сервер без изменений
	if r.Method != http.MethodGet {
		h.fs.ServeHTTP(w, r)
		return
	}

	// пути вида .../index.html отдаём напрямую: http.FileServer отвечает
	// на них каноникализирующим редиректом на "./" вместо содержимого
	if cleaned := path.Clean(r.URL.Path); strings.HasSuffix(cleaned, fallbackDocument) {
		h.serveFile(w, r, cleaned)
		return
	}

	interceptor := &notFoundInterceptor{
		ResponseWriter: w,
		header:         make(http.Header),
	}

	h.fs.ServeHTTP(interceptor, r)

	if !interceptor.notFound {
		return
	}

	// файл не найден — единственная повторная попытка с fallback-документом,
	// её результат (включая возможный 404) уходит клиенту как есть
	h.serveFile(w, r, fallbackDocument)
}

// Отдаёт файл напрямую, минуя http.FileServer.
func (h *Handler) serveFile(w http.ResponseWriter, r *http.Request, name string) {
	f, err := h.root.Open(name)
	if err != nil {
		writeFileError(w, r, err)
		return
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		writeFileError(w, r, err)
		return
	}

	http.ServeContent(w, r, path.Base(name), info.ModTime(), f)
}

// Преобразование ошибки файловой системы в HTTP-ответ по правилам net/http.
func writeFileError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case os.IsNotExist(err):
		http.NotFound(w, r)
	case os.IsPermission(err):
		http.Error(w, "403 Forbidden", http.StatusForbidden)
	default:
		http.Error(w, "500 Internal Server Error", http.StatusInternalServerError)
	}
}

// notFoundInterceptor Обёртка над оригинальным http.ResponseWriter,
// подавляющая ответ 404: статус и тело такого ответа отбрасываются,
// любой другой ответ вместе с заголовками передаётся без изменений.
type notFoundInterceptor struct {
	http.ResponseWriter
	header      http.Header
	notFound    bool
	wroteHeader bool
}

// Header Теневая карта заголовков: до вызова WriteHeader заголовки
// файлового сервера не попадают в оригинальный ответ.
func (w *notFoundInterceptor) Header() http.Header {
	return w.header
}

func (w *notFoundInterceptor) WriteHeader(statusCode int) {
	if w.wroteHeader {
		return
	}
	w.wroteHeader = true

	if statusCode == http.StatusNotFound {
		w.notFound = true
		return
	}

	// переносим накопленные заголовки в оригинальный ответ
	dst := w.ResponseWriter.Header()
	for key, values := range w.header {
		dst[key] = values
	}

	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *notFoundInterceptor) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}

	// тело подавленного 404 отбрасываем
	if w.notFound {
		return len(b), nil
	}

	return w.ResponseWriter.Write(b)
}
