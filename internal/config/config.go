package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config defines process configuration. It is built once in main and passed
// by reference into component constructors; there is no global state.
type Config struct {
	// Database is the root directory holding one subdirectory per project.
	Database string `yaml:"database"`
	// User is the default owner offered when creating projects.
	User string `yaml:"user"`
	// Separator splits sample identifiers from the rest of raw filenames.
	Separator string `yaml:"separator"`
	Log       LogConfig `yaml:"log"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

// Load reads configuration from an optional YAML file and environment
// variables. SEQDAT_CONFIG_PATH names the file explicitly; otherwise
// ~/.config/seqdat/config.yml is used when present. Environment variables
// override file values.
func Load() (Config, error) {
	cfg := Config{
		Separator: "_",
		Log:       LogConfig{Level: "info"},
	}
	if home, err := os.UserHomeDir(); err == nil {
		cfg.Database = filepath.Join(home, "sequencing_data")
	}

	path := os.Getenv("SEQDAT_CONFIG_PATH")
	if path == "" {
		if home, err := os.UserHomeDir(); err == nil {
			candidate := filepath.Join(home, ".config", "seqdat", "config.yml")
			if _, err := os.Stat(candidate); err == nil {
				path = candidate
			}
		}
	}
	if path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if db := os.Getenv("SEQDAT_DATABASE"); db != "" {
		cfg.Database = db
	}
	if user := os.Getenv("SEQDAT_USER"); user != "" {
		cfg.User = user
	}
	if sep := os.Getenv("SEQDAT_SEPARATOR"); sep != "" {
		cfg.Separator = sep
	}
	if level := os.Getenv("SEQDAT_LOG_LEVEL"); level != "" {
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
