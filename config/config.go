package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"schedsim/internal/generator"
)

type SchedulerConfig struct {
	Port                  int
	RoundRobinTimeQuantum int
	Seed                  int64
	Generator             generator.Config
}

// LoadSchedulerConfig reads the config file at path, or config.yaml from the
// working directory when path is empty. A missing file falls back to the
// defaults; SCHEDSIM_* environment variables override both.
func LoadSchedulerConfig(path string) (*SchedulerConfig, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix("schedsim")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := &SchedulerConfig{
		Port:                  v.GetInt("port"),
		RoundRobinTimeQuantum: v.GetInt("scheduler.round_robin.time_quantum"),
		Seed:                  v.GetInt64("generator.seed"),
		Generator: generator.Config{
			MinArrival:  v.GetInt("generator.min_arrival"),
			MaxArrival:  v.GetInt("generator.max_arrival"),
			MinBurst:    v.GetInt("generator.min_burst"),
			MaxBurst:    v.GetInt("generator.max_burst"),
			MinPriority: v.GetInt("generator.min_priority"),
			MaxPriority: v.GetInt("generator.max_priority"),
		},
	}
	if err := cfg.Generator.Validate(); err != nil {
		return nil, fmt.Errorf("invalid generator config: %w", err)
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	defaults := generator.DefaultConfig()
	v.SetDefault("port", 9095)
	v.SetDefault("scheduler.round_robin.time_quantum", 2)
	v.SetDefault("generator.seed", 0)
	v.SetDefault("generator.min_arrival", defaults.MinArrival)
	v.SetDefault("generator.max_arrival", defaults.MaxArrival)
	v.SetDefault("generator.min_burst", defaults.MinBurst)
	v.SetDefault("generator.max_burst", defaults.MaxBurst)
	v.SetDefault("generator.min_priority", defaults.MinPriority)
	v.SetDefault("generator.max_priority", defaults.MaxPriority)
}
