package logger

import (
	"fmt"
	"os"

	"go.uber.org/zap"
)

// ClientLog будет доступен всему коду как синглтон.
// Никакой код, кроме функции Initialize, не должен модифицировать эту переменную.
// По умолчанию установлен no-op-логер, который не выводит никаких сообщений.
var ClientLog *zap.Logger = zap.NewNop()

// Initialize - инициализирует синглтон логера с необходимым уровнем логирования.
// Терминал занят диалогом, поэтому логи пишутся только в файл logFile.
func Initialize(level, logFile string) error {
	if logFile == "" {
		return fmt.Errorf("log file must be set")
	}

	// преобразуем текстовый уровень логирования в zap.AtomicLevel
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return err
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = lvl

	// очищаю файл логов при старте
	err = os.Truncate(logFile, 0)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	cfg.OutputPaths = []string{logFile}
	cfg.ErrorOutputPaths = []string{logFile}

	zl, err := cfg.Build()
	if err != nil {
		return err
	}
	ClientLog = zl.With(zap.String("role", "login"))
	return nil
}
