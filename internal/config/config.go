// Package config loads CLI settings from an optional YAML file and IMGC_*
// environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/AnyUserName/imgc-cli/internal/logging"
	"github.com/AnyUserName/imgc-cli/internal/profile"
	"github.com/AnyUserName/imgc-cli/internal/raster"
	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Config is the full CLI configuration.
type Config struct {
	Log           logging.Config `mapstructure:"log"`
	Resampler     string         `mapstructure:"resampler" default:"lanczos" validate:"resampler"`
	DefaultPreset string         `mapstructure:"default_preset" validate:"omitempty,preset"`
	HashLength    int            `mapstructure:"hash_length" default:"8" validate:"gte=1,lte=16"`
}

// keys lists every setting that may come from the environment.
var keys = []string{
	"log.level", "log.file", "log.max_size", "log.max_backups", "log.max_age",
	"resampler", "default_preset", "hash_length",
}

// Load reads path, or imgc.yaml from the working directory or
// $HOME/.config/imgc when path is empty. A missing default file is not an
// error; a missing explicit file is.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("IMGC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	for _, k := range keys {
		if err := v.BindEnv(k); err != nil {
			return nil, fmt.Errorf("bind env %s: %w", k, err)
		}
	}

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("imgc")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "imgc"))
		}
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &Config{}
	if err := defaults.Set(cfg); err != nil {
		return nil, fmt.Errorf("set defaults: %w", err)
	}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := defaults.Set(cfg); err != nil {
		return nil, fmt.Errorf("set defaults: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks field constraints, including that Resampler and
// DefaultPreset name registered entries.
func (c *Config) Validate() error {
	v := validator.New()
	_ = v.RegisterValidation("resampler", func(fl validator.FieldLevel) bool {
		_, err := raster.ScalerByName(fl.Field().String())
		return err == nil
	})
	_ = v.RegisterValidation("preset", func(fl validator.FieldLevel) bool {
		_, err := profile.Get(fl.Field().String())
		return err == nil
	})
	if err := v.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
