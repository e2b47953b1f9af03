package config

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
)

// Configs представляет структуру конфигурации клиента.
type Configs struct {
	LogLevel string `json:"log_level"` // аналог переменной окружения NOVALOGIN_LOG_LEVEL или флага -l
	LogFile  string `json:"log_file"`  // аналог переменной окружения NOVALOGIN_LOG_FILE или флага -f
}

// ParseConfigFile - функция для чтения параметров конфигурации из файла.
func ParseConfigFile(name string) (Configs, error) {
	f, err := os.Open(name)
	if err != nil {
		return Configs{}, fmt.Errorf("open configuration file error: %w", err)
	}
	defer f.Close()

	var configs Configs
	dec := json.NewDecoder(bufio.NewReader(f))
	if err := dec.Decode(&configs); err != nil {
		return Configs{}, fmt.Errorf("parse configuration file error: %w", err)
	}
	return configs, nil
}
