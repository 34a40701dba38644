package config

import "time"

// Значения, не настраиваемые извне: dev-сервер всегда слушает порт 3000
// и раздаёт текущую директорию процесса.
const (
	DefaultRunAddress = ":3000"
	DefaultSlowDelay  = time.Second
	DefaultLogLevel   = "debug"
	DefaultLogOutput  = "stderr"
)

type Config struct {
	RunAddress string
	RootDir    string
	SlowMode   bool
	SlowDelay  time.Duration
	LogLevel   string
	LogOutput  string
}

// NewConfig Создание конфигурации сервера. Конфигурация собирается один раз
// при старте и дальше только читается. Единственная настройка, доступная
// пользователю — флаг замедления GET-запросов.
func NewConfig(rootDir string, slowMode bool) *Config {
	return &Config{
		RunAddress: DefaultRunAddress,
		RootDir:    rootDir,
		SlowMode:   slowMode,
		SlowDelay:  DefaultSlowDelay,
		LogLevel:   DefaultLogLevel,
		LogOutput:  DefaultLogOutput,
	}
}
