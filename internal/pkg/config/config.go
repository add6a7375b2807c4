package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the main application configuration
type Config struct {
	AppName string        `yaml:"app_name"`
	Devices DevicesConfig `yaml:"devices"`
	Logs    LogsConfig    `yaml:"logs"`
}

// DevicesConfig holds device discovery and statistics source settings
type DevicesConfig struct {
	// DeviceDir is the directory enumerated device names resolve under
	DeviceDir string `yaml:"device_dir"`
	// SysfsBase is the sysfs directory exposing per-volume statistics
	SysfsBase string `yaml:"sysfs_base"`
	// Enumerator is the external command listing active dedup targets
	Enumerator []string `yaml:"enumerator"`
}

// LogsConfig holds logging configuration
type LogsConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Level    string `yaml:"level"`
	FilePath string `yaml:"file_path"`
	Format   string `yaml:"format"`
	Stdout   bool   `yaml:"stdout"`
}

// LoadConfig loads the configuration from the specified file path
func LoadConfig(filePath string) (*Config, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	err = yaml.Unmarshal(data, &cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// LoadOrDefault loads the configuration from the given path, falling
// back to the defaults when the file does not exist. A file that exists
// but cannot be parsed is still an error.
func LoadOrDefault(filePath string) (*Config, error) {
	if _, err := os.Stat(filePath); err != nil {
		return GetDefaultConfig(), nil
	}
	return LoadConfig(filePath)
}

// GetDefaultConfig returns the default configuration
func GetDefaultConfig() *Config {
	cfg := &Config{AppName: "vdostats"}
	cfg.applyDefaults()
	return cfg
}

// applyDefaults fills in any setting the file left empty.
func (cfg *Config) applyDefaults() {
	if cfg.AppName == "" {
		cfg.AppName = "vdostats"
	}
	if cfg.Devices.DeviceDir == "" {
		cfg.Devices.DeviceDir = "/dev/mapper"
	}
	if cfg.Devices.SysfsBase == "" {
		cfg.Devices.SysfsBase = "/sys/kvdo"
	}
	if len(cfg.Devices.Enumerator) == 0 {
		cfg.Devices.Enumerator = []string{"dmsetup", "ls", "--target", "vdo"}
	}
	if cfg.Logs.Level == "" {
		cfg.Logs.Level = "info"
	}
	if cfg.Logs.Format == "" {
		cfg.Logs.Format = "console"
	}
}
