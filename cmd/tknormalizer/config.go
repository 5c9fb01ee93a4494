package main

import (
	"log/slog"
	"os"

	"github.com/pelletier/go-toml/v2"
)

type Config struct {
	Logging    LoggingConfig    `toml:"logging"`
	Normalizer NormalizerConfig `toml:"normalizer"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

type NormalizerConfig struct {
	SuffixListPath         string   `toml:"suffix_list_path"`
	IncludePrivateSuffixes bool     `toml:"include_private_suffixes"`
	ExtraTrackingParams    []string `toml:"extra_tracking_params"`
	ConvertToPunycode      bool     `toml:"convert_to_punycode"`
}

func defaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

func loadConfig(path string) (*Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func initLogger(cfg *Config) *slog.Logger {
	level := slog.LevelInfo
	switch cfg.Logging.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if cfg.Logging.Format == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	logger := slog.New(handler).With("name", "tknormalizer", "pid", os.Getpid())
	slog.SetDefault(logger)
	return logger
}
