package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
	"github.com/terraincognita07/cyclezen/internal/db"
	"github.com/terraincognita07/cyclezen/internal/logging"
)

const EnvPrefix = "CYCLEZEN_"

const maxConfigFileSize = 1024 * 1024

//go:embed defaults.yaml
var defaultsYAML []byte

type Config struct {
	Server  ServerConfig  `koanf:"server"`
	Storage StorageConfig `koanf:"storage"`
	App     AppConfig     `koanf:"app"`
	Log     LogConfig     `koanf:"log"`
}

type ServerConfig struct {
	Port            int           `koanf:"port"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

type StorageConfig struct {
	Backend string `koanf:"backend"`
	Path    string `koanf:"path"`
}

type AppConfig struct {
	Timezone string `koanf:"timezone"`
}

type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// Load layers configuration from lowest to highest precedence:
//  1. built-in defaults
//  2. the YAML file at configPath, when configPath is not empty
//  3. CYCLEZEN_* environment variables, including any from a local .env file
//
// Environment keys split on the first underscore after the prefix:
//
//	CYCLEZEN_SERVER_PORT           -> server.port
//	CYCLEZEN_SERVER_SHUTDOWN_TIMEOUT -> server.shutdown_timeout
func Load(configPath string) (*Config, error) {
	// A missing .env is normal outside development.
	_ = godotenv.Load()

	k := koanf.New(".")
	if err := k.Load(rawbytes.Provider(defaultsYAML), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("load default config: %w", err)
	}

	if strings.TrimSpace(configPath) != "" {
		content, err := readConfigFile(configPath)
		if err != nil {
			return nil, err
		}
		if err := k.Load(rawbytes.Provider(content), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config file %s: %w", configPath, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

func envKey(raw string) string {
	lower := strings.ToLower(strings.TrimPrefix(raw, EnvPrefix))
	parts := strings.SplitN(lower, "_", 2)
	if len(parts) == 1 {
		return lower
	}
	return parts[0] + "." + parts[1]
}

func readConfigFile(path string) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat config file: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("config path %s is a directory", path)
	}
	if info.Size() > maxConfigFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", info.Size(), maxConfigFileSize)
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}
	return content, nil
}

func (cfg *Config) Validate() error {
	var errs []error
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be between 1 and 65535, got %d", cfg.Server.Port))
	}
	if cfg.Server.ShutdownTimeout < 0 {
		errs = append(errs, fmt.Errorf("server.shutdown_timeout must not be negative"))
	}
	switch cfg.Storage.Backend {
	case db.BackendSQLite, db.BackendFile:
		if strings.TrimSpace(cfg.Storage.Path) == "" {
			errs = append(errs, fmt.Errorf("storage.path is required for backend %q", cfg.Storage.Backend))
		}
	case db.BackendMemory:
	default:
		errs = append(errs, fmt.Errorf("storage.backend must be one of sqlite, file, memory, got %q", cfg.Storage.Backend))
	}
	if _, err := time.LoadLocation(cfg.App.Timezone); err != nil {
		errs = append(errs, fmt.Errorf("app.timezone %q: %w", cfg.App.Timezone, err))
	}
	if _, err := logging.ParseLevel(cfg.Log.Level); err != nil {
		errs = append(errs, err)
	}
	switch cfg.Log.Format {
	case logging.FormatJSON, logging.FormatConsole:
	default:
		errs = append(errs, fmt.Errorf("log.format must be json or console, got %q", cfg.Log.Format))
	}
	return errors.Join(errs...)
}

// Location resolves app.timezone. Validate has already rejected unknown zones.
func (cfg *Config) Location() *time.Location {
	location, err := time.LoadLocation(cfg.App.Timezone)
	if err != nil {
		return time.UTC
	}
	return location
}

func (cfg *Config) ListenAddress() string {
	return fmt.Sprintf(":%d", cfg.Server.Port)
}
