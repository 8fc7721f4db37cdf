package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	JWT       JWTConfig
	RateLimit RateLimitConfig
	Cache     CacheConfig
}

type ServerConfig struct {
	Host string
	Port int
	Mode string // debug, release, test
}

type DatabaseConfig struct {
	SQLitePath string
}

type JWTConfig struct {
	Secret     string
	ExpireHour time.Duration
}

type RateLimitConfig struct {
	PerSecond float64
	Burst     int
}

type CacheConfig struct {
	TTLSeconds int
}

func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	// Defaults
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.mode", "debug")

	viper.SetDefault("database.sqlite_path", "./maintenance.db")

	viper.SetDefault("jwt.secret", "change-this-secret-in-production")
	viper.SetDefault("jwt.expire_hour", 24)

	viper.SetDefault("ratelimit.per_second", 20)
	viper.SetDefault("ratelimit.burst", 40)

	viper.SetDefault("cache.ttl_seconds", 30)

	// Environment variables
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: viper.GetString("server.host"),
			Port: viper.GetInt("server.port"),
			Mode: viper.GetString("server.mode"),
		},
		Database: DatabaseConfig{
			SQLitePath: viper.GetString("database.sqlite_path"),
		},
		JWT: JWTConfig{
			Secret:     viper.GetString("jwt.secret"),
			ExpireHour: time.Duration(viper.GetInt("jwt.expire_hour")),
		},
		RateLimit: RateLimitConfig{
			PerSecond: viper.GetFloat64("ratelimit.per_second"),
			Burst:     viper.GetInt("ratelimit.burst"),
		},
		Cache: CacheConfig{
			TTLSeconds: viper.GetInt("cache.ttl_seconds"),
		},
	}

	return cfg, nil
}
