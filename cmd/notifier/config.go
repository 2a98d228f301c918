package main

import (
	"fmt"
	"strings"
	"time"

	"questnotifier/internal/push"
	"questnotifier/internal/repository"

	"github.com/spf13/viper"
)

const (
	configPath   = "./"
	configName   = "config"
	configFormat = "yaml"
)

type Config struct {
	Database repository.Config `yaml:"database"`
	Server   ServerConfig      `yaml:"server"`
	Push     push.Config       `yaml:"push"`

	Scheduler SchedulerConfig `yaml:"scheduler"`

	LogLevel string `yaml:"logLevel"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
}

type SchedulerConfig struct {
	// SweepInterval is the deadline-sweep cadence.
	SweepInterval time.Duration `yaml:"sweepInterval"`
	// DigestLocalHour is the local wall-clock hour digest pushes go out at.
	DigestLocalHour int `yaml:"digestLocalHour"`
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName(configName)
	viper.AddConfigPath(configPath)
	viper.SetConfigType(configFormat)

	viper.SetDefault("scheduler.sweepInterval", 10*time.Minute)
	viper.SetDefault("scheduler.digestLocalHour", 9)
	viper.SetDefault("logLevel", "info")

	viper.AutomaticEnv()
	viper.SetEnvPrefix("APP")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.Scheduler.DigestLocalHour < 0 || cfg.Scheduler.DigestLocalHour > 23 {
		return nil, fmt.Errorf("digest local hour %d out of range", cfg.Scheduler.DigestLocalHour)
	}

	return &cfg, nil
}
