// Package config loads client configuration from a YAML file and VERCEL_*
// environment variables, producing a vercel.Config ready to hand to
// vercelclient.New. Environment variables win over file values.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/vercel-client/internal/constants"
	"github.com/fivetwenty-io/vercel-client/pkg/vercel"
)

const (
	configName = "vercel-client"
	configType = "yaml"
	envPrefix  = "VERCEL"
)

// fileConfig is the on-disk shape of a configuration file.
type fileConfig struct {
	Token       string        `yaml:"token,omitempty"        mapstructure:"token"`
	TeamID      string        `yaml:"team_id,omitempty"      mapstructure:"team_id"`
	Endpoint    string        `yaml:"endpoint,omitempty"     mapstructure:"endpoint"`
	UserAgent   string        `yaml:"user_agent,omitempty"   mapstructure:"user_agent"`
	HTTPTimeout time.Duration `yaml:"http_timeout,omitempty" mapstructure:"http_timeout"`
	RetryMax    int           `yaml:"retry_max,omitempty"    mapstructure:"retry_max"`
	Debug       bool          `yaml:"debug,omitempty"        mapstructure:"debug"`
}

// Load reads configuration from the given file path (or the default
// location when path is empty) and the VERCEL_* environment. A missing file
// is not an error: environment-only configuration is the common case.
func Load(path string) (*vercel.Config, error) {
	v := viper.New()
	v.SetConfigType(configType)
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	// Explicit bindings so AutomaticEnv sees keys that are never Set.
	for _, key := range []string{"token", "team_id", "endpoint", "user_agent", "http_timeout", "retry_max", "debug"} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("binding environment: %w", err)
		}
	}

	v.SetDefault("endpoint", constants.DefaultAPIEndpoint)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(configName)

		if dir, err := defaultConfigDir(); err == nil {
			v.AddConfigPath(dir)
		}

		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var file fileConfig
	if err := v.Unmarshal(&file); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return &vercel.Config{
		Token:       file.Token,
		TeamID:      file.TeamID,
		Endpoint:    file.Endpoint,
		UserAgent:   file.UserAgent,
		HTTPTimeout: file.HTTPTimeout,
		RetryMax:    file.RetryMax,
		Debug:       file.Debug,
	}, nil
}

// Save writes the persistable parts of a configuration to path as YAML,
// creating parent directories as needed. The file is written with owner-only
// permissions since it carries the access token.
func Save(path string, config *vercel.Config) error {
	if config == nil {
		return vercel.ErrConfigRequired
	}

	file := fileConfig{
		Token:       config.Token,
		TeamID:      config.TeamID,
		Endpoint:    config.Endpoint,
		UserAgent:   config.UserAgent,
		HTTPTimeout: config.HTTPTimeout,
		RetryMax:    config.RetryMax,
		Debug:       config.Debug,
	}

	data, err := yaml.Marshal(&file)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), constants.ConfigDirPerm); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(path, data, constants.ConfigFilePerm); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// defaultConfigDir returns the per-user configuration directory.
func defaultConfigDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolving user config dir: %w", err)
	}

	return filepath.Join(base, configName), nil
}
