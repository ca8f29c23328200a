package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// LoadConfig loads configuration from an optional yaml file plus environment
// variables prefixed with JOBBOARD_. A local .env file, when present, seeds
// the environment first.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	setDefaults()

	env := strings.ToLower(os.Getenv("APP_ENV"))
	if env == "" {
		env = "development"
	}

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		viper.SetConfigFile(path)
	} else {
		viper.SetConfigName(fmt.Sprintf("config.%s", env))
		viper.SetConfigType("yaml")
		viper.AddConfigPath("./configs")
		viper.AddConfigPath(".")
		viper.AddConfigPath("/etc/jobboard-service")
	}

	viper.SetEnvPrefix("JOBBOARD")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// Missing file is fine; env vars alone can carry the config.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", "10s")
	viper.SetDefault("server.write_timeout", "10s")
	viper.SetDefault("server.idle_timeout", "60s")
	viper.SetDefault("server.shutdown_timeout", "15s")

	viper.SetDefault("database.host", "localhost")
	viper.SetDefault("database.port", 5432)
	viper.SetDefault("database.sslmode", "disable")
	viper.SetDefault("database.migrations_path", "migrations")

	viper.SetDefault("redis.host", "localhost")
	viper.SetDefault("redis.port", 6379)
	viper.SetDefault("redis.job_ttl", "5m")

	viper.SetDefault("kafka.events_topic", "jobboard.events")
	viper.SetDefault("kafka.mail_topic", "jobboard.mail")
	viper.SetDefault("kafka.consumer_group", "jobboard-mail-worker")

	viper.SetDefault("jwt.access_token_ttl", "1h")
	viper.SetDefault("jwt.issuer", "jobboard-service")

	viper.SetDefault("security.password_hash.memory", 65536)
	viper.SetDefault("security.password_hash.iterations", 3)
	viper.SetDefault("security.password_hash.parallelism", 2)
	viper.SetDefault("security.password_hash.salt_length", 16)
	viper.SetDefault("security.password_hash.key_length", 32)

	viper.SetDefault("scheduler.job_expiry_spec", "@hourly")

	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.environment", "development")
}
