package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Log       LogConfig       `mapstructure:"log"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
	Redis     RedisConfig     `mapstructure:"redis"`
	SMTP      SMTPConfig      `mapstructure:"smtp"`
}

type ServerConfig struct {
	Port           int `mapstructure:"port" envconfig:"SERVER_PORT" default:"8080"`
	TimeoutSeconds int `mapstructure:"timeout_seconds" envconfig:"SERVER_TIMEOUT_SECONDS" default:"30"`
}

type LogConfig struct {
	Level string `mapstructure:"level" envconfig:"LOG_LEVEL" default:"info"`
}

type RateLimitConfig struct {
	RPS   float64 `mapstructure:"rps" envconfig:"RATE_LIMIT_RPS" default:"100"`
	Burst int     `mapstructure:"burst" envconfig:"RATE_LIMIT_BURST" default:"200"`
}

type RedisConfig struct {
	URL string `mapstructure:"url" envconfig:"REDIS_URL"`
}

type SMTPConfig struct {
	Host             string `mapstructure:"host" envconfig:"SMTP_HOST"`
	Port             int    `mapstructure:"port" envconfig:"SMTP_PORT" default:"587"`
	Username         string `mapstructure:"username" envconfig:"SMTP_USERNAME"`
	Password         string `mapstructure:"password" envconfig:"SMTP_PASSWORD"`
	From             string `mapstructure:"from" envconfig:"SMTP_FROM"`
	LogisticsContact string `mapstructure:"logistics_contact" envconfig:"SMTP_LOGISTICS_CONTACT"`
}

// LoadConfig reads configuration from a YAML file, falling back to
// environment variables when no file is present.
func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	viper.AutomaticEnv()

	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.timeout_seconds", 30)
	viper.SetDefault("log.level", "info")
	viper.SetDefault("rate_limit.rps", 100)
	viper.SetDefault("rate_limit.burst", 200)
	viper.SetDefault("smtp.port", 587)

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return LoadFromEnv()
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}

// LoadFromEnv builds the configuration from environment variables alone.
func LoadFromEnv() (*Config, error) {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return nil, fmt.Errorf("failed to process environment config: %w", err)
	}
	return &config, nil
}
