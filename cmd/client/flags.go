package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/abezemskiy/novalogin/internal/client/config"
)

var (
	logLevel   string // уровень логирования
	logFile    string // файл логов, без него логирование отключено
	configFile string // путь к файлу конфигурации
)

// parseVariables - функция для установки конфигурационных параметров приложения.
// Конфигурирование приложения с приоритетом в порядке убывания: значения флагов, значения из файла, значения переменных окружения.
func parseVariables() error {
	parseFlags()
	if err := parseConfigFile(); err != nil {
		return err
	}
	parseEnvironment()

	if logLevel == "" {
		logLevel = "info"
	}
	return nil
}

// parseFlags - функция для определения параметров конфигурации из флагов.
func parseFlags() {
	flag.StringVar(&logLevel, "l", "", "log level")
	flag.StringVar(&logFile, "f", "", "log file, logging is disabled when empty")
	flag.StringVar(&configFile, "c", "", "name of configuration file")

	flag.Parse()
}

// parseConfigFile - функция для переопределения параметров конфигурации из файла конфигурации.
func parseConfigFile() error {
	// если не указан файл конфигурации, то оставляю параметры запуска без изменения
	if configFile == "" {
		return nil
	}
	configs, err := config.ParseConfigFile(configFile)
	if err != nil {
		return fmt.Errorf("parse config file error: %w", err)
	}

	// обновляю параметры запуска если они не определены флагами
	if logLevel == "" {
		logLevel = configs.LogLevel
	}
	if logFile == "" {
		logFile = configs.LogFile
	}
	return nil
}

// parseEnvironment - функция для переопределения конфигурации из переменных окружения.
// Переопределяет конфигурацию, если значения не установлены флагами или файлом конфигурации.
func parseEnvironment() {
	if logLevel == "" {
		logLevel = os.Getenv("NOVALOGIN_LOG_LEVEL")
	}
	if logFile == "" {
		logFile = os.Getenv("NOVALOGIN_LOG_FILE")
	}
}
