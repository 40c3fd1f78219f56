package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// ConfigFileName is the optional YAML config file looked up next to the
// working directory.
const ConfigFileName = "config.yaml"

// Config represents the complete application configuration
type Config struct {
	Logging LoggingConfig `yaml:"logging" envconfig:"LOGGING"`
	Paths   PathsConfig   `yaml:"paths" envconfig:"PATHS"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" default:"info"`
	Output   string `yaml:"output" envconfig:"OUTPUT" default:"console"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH" default:"logs/aggregator.log"`
}

// PathsConfig contains file system paths configuration
type PathsConfig struct {
	DataDir    string `yaml:"data_dir" envconfig:"DATA_DIR" default:"data"`
	InputFile  string `yaml:"input_file" envconfig:"INPUT_FILE" default:"data/data.csv"`
	OutputFile string `yaml:"output_file" envconfig:"OUTPUT_FILE" default:"data/summary.json"`
}

// Load loads configuration from environment variables and config file
func Load() (*Config, error) {
	var cfg Config

	// Load from environment variables first (defaults applied by envconfig)
	if err := envconfig.Process("DATAPULSE", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	// Load from config file if exists; file values override tag defaults
	if _, err := os.Stat(ConfigFileName); err == nil {
		fileConfig, err := loadFromFile(ConfigFileName)
		if err != nil {
			return nil, fmt.Errorf("failed to load config from file: %w", err)
		}
		cfg = mergeConfigs(*fileConfig, cfg)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// Default returns the built-in configuration used when Load fails.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:    "info",
			Output:   "console",
			FilePath: filepath.Join("logs", "aggregator.log"),
		},
		Paths: PathsConfig{
			DataDir:    "data",
			InputFile:  filepath.Join("data", "data.csv"),
			OutputFile: filepath.Join("data", "summary.json"),
		},
	}
}

// loadFromFile loads configuration from YAML file
func loadFromFile(filePath string) (*Config, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// mergeConfigs lays file config over env config. envconfig cannot
// distinguish a tag default from an explicitly set variable, so any field
// present in the file wins; fields the file omits keep the env value.
func mergeConfigs(fileConfig, envConfig Config) Config {
	merged := envConfig

	if fileConfig.Logging.Level != "" {
		merged.Logging.Level = fileConfig.Logging.Level
	}
	if fileConfig.Logging.Output != "" {
		merged.Logging.Output = fileConfig.Logging.Output
	}
	if fileConfig.Logging.FilePath != "" {
		merged.Logging.FilePath = fileConfig.Logging.FilePath
	}
	if fileConfig.Paths.DataDir != "" {
		merged.Paths.DataDir = fileConfig.Paths.DataDir
	}
	if fileConfig.Paths.InputFile != "" {
		merged.Paths.InputFile = fileConfig.Paths.InputFile
	}
	if fileConfig.Paths.OutputFile != "" {
		merged.Paths.OutputFile = fileConfig.Paths.OutputFile
	}

	return merged
}

// validate checks the configuration for invalid values
func (c *Config) validate() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %s", c.Logging.Level)
	}

	switch c.Logging.Output {
	case "console", "file", "both":
	default:
		return fmt.Errorf("invalid log output: %s", c.Logging.Output)
	}

	if c.Logging.Output != "console" && c.Logging.FilePath == "" {
		return fmt.Errorf("log file path required for output mode %q", c.Logging.Output)
	}

	if strings.TrimSpace(c.Paths.InputFile) == "" {
		return fmt.Errorf("input file path must not be empty")
	}
	if strings.TrimSpace(c.Paths.OutputFile) == "" {
		return fmt.Errorf("output file path must not be empty")
	}

	return nil
}
