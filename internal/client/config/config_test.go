package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfigFile(t *testing.T) {
	dir := t.TempDir()

	{
		// корректный файл
		name := filepath.Join(dir, "config.json")
		data := `{"log_level": "debug", "log_file": "/tmp/login.log"}`
		require.NoError(t, os.WriteFile(name, []byte(data), 0o600))

		configs, err := ParseConfigFile(name)
		require.NoError(t, err)
		assert.Equal(t, "debug", configs.LogLevel)
		assert.Equal(t, "/tmp/login.log", configs.LogFile)
	}
	{
		// файл не существует
		_, err := ParseConfigFile(filepath.Join(dir, "missing.json"))
		require.Error(t, err)
	}
	{
		// некорректный json
		name := filepath.Join(dir, "broken.json")
		require.NoError(t, os.WriteFile(name, []byte("{log_level"), 0o600))

		_, err := ParseConfigFile(name)
		require.Error(t, err)
	}
}
