package logger

import (
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"sync"

	"gopkg.in/natefinch/lumberjack.v2"
)

// SlogAdapter Адаптер для логгера slog.
type SlogAdapter struct {
	slog   *slog.Logger
	closer io.Closer
}

func (s *SlogAdapter) Debug(msg string, fields ...Field) {
	s.slog.Debug(msg, convertFields(fields)...)
}

func (s *SlogAdapter) Info(msg string, fields ...Field) {
	s.slog.Info(msg, convertFields(fields)...)
}

func (s *SlogAdapter) Error(msg string, fields ...Field) {
	s.slog.Error(msg, convertFields(fields)...)
}

func (s *SlogAdapter) Warn(msg string, fields ...Field) {
	s.slog.Warn(msg, convertFields(fields)...)
}

// Close Закрывает ресурс вывода (актуально при логировании в файл).
func (s *SlogAdapter) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}

func String(key string, val string) Field {
	return Field{
		Key:   key,
		Value: val,
	}
}

func Int(key string, val int) Field {
	return Field{
		Key:   key,
		Value: strconv.Itoa(val),
	}
}

// Конвертация Fields в any[].
func convertFields(fields []Field) []any {
	args := make([]any, 0, len(fields)*2)
	for _, f := range fields {
		args = append(args, f.Key, f.Value)
	}
	return args
}

// Преобразование строкового уровня логирования в slog.Level.
func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

var (
	Log  Logger
	once sync.Once
)

// InitLogger Инициализация логгера с уровнем логирования и местом вывода:
// "stderr", "stdout" или путь к файлу (файл пишется с ротацией).
func InitLogger(level, output string) {
	once.Do(func() {
		var (
			w      io.Writer
			closer io.Closer
		)

		switch output {
		case "", "stderr":
			w = os.Stderr
		case "stdout":
			w = os.Stdout
		default:
			rotating := &lumberjack.Logger{
				Filename:   output,
				MaxSize:    10, // мегабайт
				MaxBackups: 3,
			}
			w = rotating
			closer = rotating
		}

		handler := slog.NewTextHandler(w, &slog.HandlerOptions{
			Level: parseLevel(level),
		})

		Log = &SlogAdapter{slog: slog.New(handler), closer: closer}
	})
}
