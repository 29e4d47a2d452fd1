package config

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	_envPrefix  = "crm_server"
	_configName = "server"
)

var (
	loadConfigOnce sync.Once
	configInstance AppConfig
)

// LoadConfig reads config/server.yaml once per process. Environment
// variables prefixed with CRM_SERVER_ override file values.
func LoadConfig() AppConfig {
	loadConfigOnce.Do(func() {
		_ = godotenv.Load()

		cfg, err := Load(_configName, "config", "/config")
		if err != nil {
			panic(fmt.Errorf("fatal error config file: %w", err))
		}
		configInstance = cfg
	})

	return configInstance
}

// Load builds an AppConfig from the named file found in the first matching
// path.
func Load(name string, paths ...string) (AppConfig, error) {
	v := viper.New()
	v.SetEnvPrefix(_envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.SetConfigName(name)
	for _, path := range paths {
		v.AddConfigPath(path)
	}

	v.SetDefault("general.log_level", "info")
	v.SetDefault("general.environment", "production")
	v.SetDefault("http.address", ":3000")
	v.SetDefault("database.query_timeout", "5s")
	v.SetDefault("telemetry.enabled", true)
	v.SetDefault("telemetry.otelcol_endpoint", "localhost:4317")

	if err := v.ReadInConfig(); err != nil {
		return AppConfig{}, err
	}

	return AppConfig{
		General: GeneralConfig{
			LogLevel:    v.GetString("general.log_level"),
			Environment: v.GetString("general.environment"),
		},
		HTTP: HTTPConfig{
			Address:        v.GetString("http.address"),
			AllowedOrigins: v.GetStringSlice("http.allowed_origins"),
		},
		Database: DatabaseConfig{
			URL:          v.GetString("database.url"),
			DSN:          v.GetString("database.dsn"),
			QueryTimeout: v.GetDuration("database.query_timeout"),
		},
		Telemetry: TelemetryConfig{
			Enabled:         v.GetBool("telemetry.enabled"),
			OtelcolEndpoint: v.GetString("telemetry.otelcol_endpoint"),
		},
	}, nil
}

type AppConfig struct {
	General   GeneralConfig
	HTTP      HTTPConfig
	Database  DatabaseConfig
	Telemetry TelemetryConfig
}

type GeneralConfig struct {
	LogLevel string
	// Environment "local" runs against an in-memory database.
	Environment string
}

func (c GeneralConfig) IsLocal() bool {
	return strings.EqualFold(c.Environment, "local")
}

type HTTPConfig struct {
	Address        string
	AllowedOrigins []string
}

type DatabaseConfig struct {
	URL          string
	DSN          string
	QueryTimeout time.Duration
}

type TelemetryConfig struct {
	Enabled         bool
	OtelcolEndpoint string
}
