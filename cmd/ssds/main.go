package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/trsv-dev/simple-spa-dev-server/internal/config"
	"github.com/trsv-dev/simple-spa-dev-server/internal/logger"
	"github.com/trsv-dev/simple-spa-dev-server/internal/router"
	"github.com/trsv-dev/simple-spa-dev-server/internal/server"
	"github.com/trsv-dev/simple-spa-dev-server/internal/static"
)

// newRootCmd Создание корневой команды dev-сервера. Единственная опция —
// флаг замедления GET-запросов; лишние аргументы и неизвестные флаги
// завершают процесс с подсказкой по использованию.
func newRootCmd() *cobra.Command {
	var slowMode bool

	cmd := &cobra.Command{
		Use:   "ssds",
		Short: "Development server: serves current directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// аргументы разобраны, дальше ошибки не про usage
			cmd.SilenceUsage = true

			return run(slowMode)
		},
	}

	cmd.Flags().BoolVarP(&slowMode, "slow", "s", false, "Delay all GETs by 1 second (for debugging loading concurrency)")

	return cmd
}

// "Сборка" и запуск dev-сервера.
func run(slowMode bool) error {
	// раздаём текущую директорию процесса
	rootDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("не удалось определить текущую директорию: %w", err)
	}

	if info, err := os.Stat(rootDir); err != nil || !info.IsDir() {
		return fmt.Errorf("каталог недоступен или не существует: %v", err)
	}

	// инициализация конфигурации сервера
	cfg := config.NewConfig(rootDir, slowMode)

	// инициализация логгера
	logger.InitLogger(cfg.LogLevel, cfg.LogOutput)
	defer logger.Log.(*logger.SlogAdapter).Close()

	if cfg.SlowMode {
		logger.Log.Info("Включен режим замедления GET-запросов",
			logger.String("delay", cfg.SlowDelay.String()))
	}

	files := static.NewHandler(cfg.RootDir)
	mux := router.Router(cfg, files)

	// единственная строка в stdout: адрес, по которому доступен сервер
	fmt.Printf("Dev-сервер запущен на http://localhost%s\n", cfg.RunAddress)

	// цикл обслуживания работает до завершения процесса
	_, serverErrorCh := server.RunServer(cfg.RunAddress, mux)

	// блокируемся до фатальной ошибки сервера (например, занятый порт)
	if err, ok := <-serverErrorCh; ok {
		return err
	}

	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
