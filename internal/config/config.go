package config

import (
	"time"

	"github.com/spf13/viper"
)

type (
	Config struct {
		HTTP
		Database
		Auth
		Global
	}

	HTTP struct {
		Port int32
		Host string
	}
	Database struct {
		Host     string
		Name     string
		User     string
		Password string
		Port     int

		MaxRetries   int           // connection attempts before giving up
		RetryDelay   time.Duration // delay between attempts
		StartupDelay time.Duration // wait before first attempt (container start order)
	}
	Auth struct {
		BcryptCost int
	}
	Global struct {
		ShutdownTimeoutInSeconds int
	}
)

// NewConfig reads configuration from the environment with hardcoded
// fallbacks. The returned struct is constructed once at startup and passed
// by reference; nothing reads the environment after this point.
func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", 5000)
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("shutdown_timeout_in_seconds", 2)

	v.SetDefault("db_host", "localhost")
	v.SetDefault("db_name", "library_db")
	v.SetDefault("db_user", "postgres")
	v.SetDefault("db_password", "1234")
	v.SetDefault("db_port", 5432)
	v.SetDefault("db_max_retries", 5)
	v.SetDefault("db_retry_delay", "5s")
	v.SetDefault("db_startup_delay", "0s")

	v.SetDefault("auth_bcrypt_cost", 12)

	return &Config{
		HTTP: HTTP{
			Port: v.GetInt32("PORT"),
			Host: v.GetString("HOST"),
		},
		Database: Database{
			Host:         v.GetString("DB_HOST"),
			Name:         v.GetString("DB_NAME"),
			User:         v.GetString("DB_USER"),
			Password:     v.GetString("DB_PASSWORD"),
			Port:         v.GetInt("DB_PORT"),
			MaxRetries:   v.GetInt("DB_MAX_RETRIES"),
			RetryDelay:   v.GetDuration("DB_RETRY_DELAY"),
			StartupDelay: v.GetDuration("DB_STARTUP_DELAY"),
		},
		Auth: Auth{
			BcryptCost: v.GetInt("AUTH_BCRYPT_COST"),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
	}
}
