package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Output)
	assert.Equal(t, "data/data.csv", cfg.Paths.InputFile)
	assert.Equal(t, "data/summary.json", cfg.Paths.OutputFile)
}

func TestLoad_EnvOverride(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("DATAPULSE_LOGGING_LEVEL", "debug")
	t.Setenv("DATAPULSE_PATHS_INPUT_FILE", "input/other.csv")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "input/other.csv", cfg.Paths.InputFile)
	assert.Equal(t, "data/summary.json", cfg.Paths.OutputFile)
}

func TestLoad_FileOverride(t *testing.T) {
	dir := t.TempDir()
	content := `logging:
  level: warn
  output: both
  file_path: logs/custom.log
paths:
  input_file: incoming/data.csv
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0644))
	chdir(t, dir)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "both", cfg.Logging.Output)
	assert.Equal(t, "logs/custom.log", cfg.Logging.FilePath)
	assert.Equal(t, "incoming/data.csv", cfg.Paths.InputFile)
	// untouched by file, keeps default
	assert.Equal(t, "data/summary.json", cfg.Paths.OutputFile)
}

func TestLoad_InvalidFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("logging: ["), 0644))
	chdir(t, dir)

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_Validation(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "bad level", key: "DATAPULSE_LOGGING_LEVEL", value: "verbose"},
		{name: "bad output", key: "DATAPULSE_LOGGING_OUTPUT", value: "syslog"},
		{name: "empty input path", key: "DATAPULSE_PATHS_INPUT_FILE", value: " "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chdir(t, t.TempDir())
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.NoError(t, cfg.validate())
	assert.Equal(t, filepath.Join("data", "data.csv"), cfg.Paths.InputFile)
}
