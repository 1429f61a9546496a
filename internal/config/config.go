package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config defines client configuration.
type Config struct {
	API     APIConfig     `yaml:"api"`
	Storage StorageConfig `yaml:"storage"`
	Log     LogConfig     `yaml:"log"`
}

type APIConfig struct {
	URL    string `yaml:"url"`
	Tenant string `yaml:"tenant"`
}

type StorageConfig struct {
	Path string `yaml:"path"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

// Load reads configuration from an optional YAML file and environment variables.
func Load() (Config, error) {
	cfg := Config{
		API: APIConfig{
			URL: "https://api.tractionhq.io",
		},
		Storage: StorageConfig{
			Path: "traction.db",
		},
		Log: LogConfig{
			Level: "info",
		},
	}

	if path := os.Getenv("TRACTION_CONFIG_PATH"); path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if apiURL := os.Getenv("TRACTION_API_URL"); apiURL != "" {
		cfg.API.URL = apiURL
	}
	if tenant := os.Getenv("TRACTION_TENANT"); tenant != "" {
		cfg.API.Tenant = tenant
	}
	if storagePath := os.Getenv("TRACTION_STORAGE_PATH"); storagePath != "" {
		cfg.Storage.Path = storagePath
	}
	if level := os.Getenv("TRACTION_LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}

	return cfg, nil
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}
