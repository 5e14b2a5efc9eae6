package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g. NATIONS_SERVER_ADDRESS
const EnvPrefix = "NATIONS"

// Config is the main configuration struct combining all sub-configs
type Config struct {
	Database DatabaseConfig `mapstructure:"database"`
	Server   ServerConfig   `mapstructure:"server"`
	Daemon   DaemonConfig   `mapstructure:"daemon"`
	Logging  LoggingConfig  `mapstructure:"logging"`
	Metrics  MetricsConfig  `mapstructure:"metrics"`
	Game     GameConfig     `mapstructure:"game"`
}

// LoadConfig loads configuration with priority env > config file > defaults.
// A missing config file is not an error.
func LoadConfig(configPath string) (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
		v.AddConfigPath("/etc/nations")
	}

	// bools cannot be defaulted after unmarshal
	v.SetDefault("server.gzip", true)
	v.SetDefault("metrics.enabled", true)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	bindEnvKeys(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// DATABASE_URL is honoured without the prefix, as hosting platforms set it
	if dbURL := os.Getenv("DATABASE_URL"); dbURL != "" {
		v.Set("database.url", dbURL)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	SetDefaults(&cfg)

	if err := ValidateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// bindEnvKeys registers every key so AutomaticEnv also works for values
// that appear in no config file (viper only unmarshals keys it knows about).
func bindEnvKeys(v *viper.Viper) {
	keys := []string{
		"database.type", "database.url", "database.host", "database.port", "database.user",
		"database.password", "database.name", "database.sslmode", "database.path",
		"database.pool.max_open", "database.pool.max_idle", "database.pool.max_lifetime",
		"server.address", "server.read_timeout", "server.write_timeout", "server.shutdown_timeout",
		"server.user_header", "server.gzip", "server.rate_limit.requests", "server.rate_limit.burst",
		"daemon.socket_path", "daemon.pid_file", "daemon.shutdown_timeout",
		"logging.level", "logging.format", "logging.output",
		"metrics.enabled", "metrics.path",
		"game.catalog_path",
	}
	for _, key := range keys {
		_ = v.BindEnv(key)
	}
}
