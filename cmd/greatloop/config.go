package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds the host-process configuration. The optimizer core receives
// everything in memory; this struct only describes how the harness feeds it.
type Config struct {
	Input    string        `mapstructure:"input"`     // prepared locations CSV
	OutDir   string        `mapstructure:"out_dir"`   // directory for the tour CSV
	Restarts int           `mapstructure:"restarts"`  // concurrent annealing runs
	Workers  int           `mapstructure:"workers"`   // matrix build goroutines (0 = NumCPU)
	Seed     int64         `mapstructure:"seed"`      // base RNG seed (0 = default stream)
	AnchorID string        `mapstructure:"anchor_id"` // rotate final tour to this id
	Verbose  bool          `mapstructure:"verbose"`   // development logger + step logs
	Schedule ScheduleConfig `mapstructure:"schedule"`
}

// ScheduleConfig mirrors the annealing schedule options.
type ScheduleConfig struct {
	InitialTemperature float64       `mapstructure:"initial_temperature"`
	CoolingRate        float64       `mapstructure:"cooling_rate"`
	MinTemperature     float64       `mapstructure:"min_temperature"`
	MaxSteps           int           `mapstructure:"max_steps"`
	TimeBudget         time.Duration `mapstructure:"time_budget"`
}

// loadConfig reads configuration from an optional greatloop.yaml (working
// directory or ./configs) and GREATLOOP_* environment variables, on top of
// the documented defaults.
func loadConfig() (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("input", "data/tour-data.csv")
	v.SetDefault("out_dir", "data")
	v.SetDefault("restarts", 1)
	v.SetDefault("workers", 0)
	v.SetDefault("seed", 0)
	v.SetDefault("anchor_id", "")
	v.SetDefault("verbose", false)
	v.SetDefault("schedule.initial_temperature", 25000.0)
	v.SetDefault("schedule.cooling_rate", 0.9995)
	v.SetDefault("schedule.min_temperature", 2.5)
	v.SetDefault("schedule.max_steps", 50000)
	v.SetDefault("schedule.time_budget", time.Duration(0))

	// Config file (optional)
	v.SetConfigName("greatloop")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./configs")
	_ = v.ReadInConfig() // OK if missing

	// Environment variables: GREATLOOP_SCHEDULE_MAX_STEPS → schedule.max_steps
	v.SetEnvPrefix("GREATLOOP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	return &cfg, nil
}
