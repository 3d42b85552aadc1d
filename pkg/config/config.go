package config

import (
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

// Config holds all process configuration. Values come from per-environment
// defaults, then an optional yaml config file, then ESTANTE_-prefixed
// environment variables, each layer overriding the previous one.
type Config struct {
	Environment string   `koanf:"environment"`
	Server      Server   `koanf:"server"`
	Database    Database `koanf:"database"`
	JWT         JWT      `koanf:"jwt"`
}

type Server struct {
	Host string `koanf:"host"`
	Port int    `koanf:"port"`
}

type Database struct {
	Path  string `koanf:"path"`
	Debug bool   `koanf:"debug"`
}

type JWT struct {
	Secret string        `koanf:"secret"`
	Expiry time.Duration `koanf:"expiry"`
}

const (
	environmentENV = "ENVIRONMENT"
	configFileENV  = "CONFIG_FILE"

	envPrefix = "ESTANTE_"
)

func New() (*Config, error) {
	cfg := &Config{
		Server: Server{Port: 3000},
		JWT:    JWT{Expiry: 7 * 24 * time.Hour},
	}

	environment := os.Getenv(environmentENV)
	switch environment {
	case "development", "":
		environment = "development"
		loadDevelopmentConfig(cfg)
	case "test":
		loadTestConfig(cfg)
	case "production":
		loadProductionConfig(cfg)
	}
	cfg.Environment = environment

	k := koanf.New(".")

	configFile := os.Getenv(configFileENV)
	if configFile == "" {
		configFile = "config.yaml"
	}
	if _, err := os.Stat(configFile); err == nil {
		if err := k.Load(file.Provider(configFile), yaml.Parser()); err != nil {
			return nil, errors.WithStack(err)
		}
	}

	// e.g. ESTANTE_SERVER_PORT -> server.port
	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, envPrefix)), "_", ".")
	}), nil)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, errors.WithStack(err)
	}

	if cfg.Environment == "production" && cfg.JWT.Secret == "" {
		return nil, errors.New("jwt secret is required in production")
	}

	return cfg, nil
}
