// Package config хранит параметры запуска инструментов коллизий.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config хранит параметры движка коллизий и поиска пути.
type Config struct {
	// PathLimit - бюджет раскрытых узлов A*. 0 - 10% клеток карты.
	PathLimit int `yaml:"path_limit"`
	// ForceSlide включает обход угла при упоре в стену.
	ForceSlide bool `yaml:"force_slide"`
	// Seed - зерно для RandomNeighbor. 0 - случайное.
	Seed      int64  `yaml:"seed"`
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
}

// Default создает конфиг по умолчанию (случайный сид).
func Default() Config {
	return Config{
		ForceSlide: true,
		Seed:       time.Now().UnixNano(),
		LogLevel:   "info",
		LogFormat:  "text",
	}
}

// Load читает YAML поверх значений по умолчанию, затем применяет
// переменные окружения LOG_LEVEL, LOG_FORMAT, GRID_PATH_LIMIT.
// Пустой путь - только значения по умолчанию и окружение.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, err
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
		if cfg.Seed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}
	}

	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
	}
	if v := os.Getenv("GRID_PATH_LIMIT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("GRID_PATH_LIMIT: %w", err)
		}
		cfg.PathLimit = n
	}

	if cfg.PathLimit < 0 {
		return cfg, fmt.Errorf("path_limit must not be negative, got %d", cfg.PathLimit)
	}
	return cfg, nil
}
