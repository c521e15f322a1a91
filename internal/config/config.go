// Package config provides Viper-based configuration loading for the optimizer tools.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/cory-johannsen/gearopt/internal/game/attribute"
	"github.com/cory-johannsen/gearopt/internal/game/character"
)

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
	// Output is a zap sink path such as "stderr", "stdout" or a file path.
	Output string `mapstructure:"output"`
}

// EvaluationConfig holds candidate evaluation settings.
type EvaluationConfig struct {
	// Workers is the number of goroutines scoring candidates.
	Workers int `mapstructure:"workers"`
	// TopK is the number of winning candidates reported.
	TopK int `mapstructure:"top_k"`
	// RankBy names the objective attribute for candidates that do not set one.
	RankBy string `mapstructure:"rankby"`
}

// Objective returns the parsed RankBy attribute.
//
// Postcondition: Returns a valid Attribute or a non-nil error.
func (e EvaluationConfig) Objective() (attribute.Attribute, error) {
	return attribute.ParseAttribute(e.RankBy)
}

// Config is the top-level application configuration.
type Config struct {
	Logging    LoggingConfig      `mapstructure:"logging"`
	Evaluation EvaluationConfig   `mapstructure:"evaluation"`
	Settings   character.Settings `mapstructure:"settings"`
}

// Validate checks all configuration invariants.
//
// Postcondition: Returns nil if configuration is valid, or an error describing all violations.
func (c Config) Validate() error {
	var errs []string

	if err := validateLogging(c.Logging); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateEvaluation(c.Evaluation); err != nil {
		errs = append(errs, err.Error())
	}
	if err := c.Settings.Validate(); err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func validateLogging(l LoggingConfig) error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[l.Level] {
		return fmt.Errorf("logging.level must be one of [debug, info, warn, error], got %q", l.Level)
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[l.Format] {
		return fmt.Errorf("logging.format must be one of [json, console], got %q", l.Format)
	}
	return nil
}

func validateEvaluation(e EvaluationConfig) error {
	var errs []string
	if e.Workers < 1 {
		errs = append(errs, fmt.Sprintf("evaluation.workers must be >= 1, got %d", e.Workers))
	}
	if e.TopK < 1 {
		errs = append(errs, fmt.Sprintf("evaluation.top_k must be >= 1, got %d", e.TopK))
	}
	if _, err := e.Objective(); err != nil {
		errs = append(errs, fmt.Sprintf("evaluation.rankby: %v", err))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

// settingsKeys are bound explicitly so environment overrides work even when
// the file leaves a threshold out.
var settingsKeys = []string{
	"minBoonDuration",
	"minQuicknessDuration",
	"minHealingPower",
	"minToughness",
	"maxToughness",
	"minHealth",
	"minCritChance",
	"minOutgoingHealing",
}

// Load reads configuration from the given file path, applies environment variable
// overrides, and validates the result.
//
// Precondition: path must be a valid file path to a YAML configuration file.
// Postcondition: Returns a valid Config or a non-nil error.
func Load(path string) (Config, error) {
	v := newViper()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}
	return LoadFromViper(v)
}

// LoadFromViper builds a Config from an already-configured Viper instance.
//
// Precondition: v must be non-nil and have configuration values set.
// Postcondition: Returns a valid Config or a non-nil error.
func LoadFromViper(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Defaults returns the validated configuration built from defaults and
// environment overrides alone, for runs without a config file.
//
// Postcondition: Returns a valid Config or a non-nil error.
func Defaults() (Config, error) {
	return LoadFromViper(newViper())
}

func newViper() *viper.Viper {
	v := viper.New()

	// Environment variable overrides with GEAROPT_ prefix
	v.SetEnvPrefix("GEAROPT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for _, k := range settingsKeys {
		_ = v.BindEnv("settings." + k)
	}

	setDefaults(v)
	return v
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
	v.SetDefault("logging.output", "stderr")

	v.SetDefault("evaluation.workers", 4)
	v.SetDefault("evaluation.top_k", 50)
	v.SetDefault("evaluation.rankby", attribute.Damage.String())
}
