/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package config loads SDK settings from an optional file and MYSAM_*
// environment variables.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cast"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"dirpx.dev/mysam/rest"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "MYSAM"

// ErrMissingCredentials is returned by Load when the subdomain or the API key
// is empty.
var ErrMissingCredentials = rest.ErrMissingCredentials

const (
	keySubdomain = "subdomain"
	keyAPIKey    = "api_key"
	keyHost      = "host"
	keyTimeout   = "timeout"
	keyLogLevel  = "log_level"
)

// Config holds what is needed to reach the MySAM API.
type Config struct {
	Subdomain string `mapstructure:"subdomain"`
	APIKey    string `mapstructure:"api_key"`
	// Host replaces https://{subdomain}.mysam.fr/api when set.
	Host     string `mapstructure:"host"`
	LogLevel string `mapstructure:"log_level"`

	// Timeout accepts a Go duration ("45s") or a number of seconds.
	Timeout time.Duration `mapstructure:"timeout"`
}

// fileConfig is what viper decodes; the timeout is parsed separately so that
// bare numbers mean seconds.
type fileConfig struct {
	Subdomain string `mapstructure:"subdomain"`
	APIKey    string `mapstructure:"api_key"`
	Host      string `mapstructure:"host"`
	LogLevel  string `mapstructure:"log_level"`
}

// Load reads path, if not empty, then overlays MYSAM_SUBDOMAIN, MYSAM_API_KEY,
// MYSAM_HOST, MYSAM_TIMEOUT and MYSAM_LOG_LEVEL.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	for _, k := range []string{keySubdomain, keyAPIKey, keyHost, keyTimeout, keyLogLevel} {
		if err := v.BindEnv(k); err != nil {
			return Config{}, fmt.Errorf("config: bind %s: %w", k, err)
		}
	}
	v.SetDefault(keyTimeout, rest.DefaultTimeout.String())
	v.SetDefault(keyLogLevel, "info")

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	var fc fileConfig
	if err := v.Unmarshal(&fc); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	d, err := parseTimeout(v.Get(keyTimeout))
	if err != nil {
		return Config{}, err
	}
	cfg := Config{
		Subdomain: fc.Subdomain,
		APIKey:    fc.APIKey,
		Host:      fc.Host,
		LogLevel:  fc.LogLevel,
		Timeout:   d,
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func parseTimeout(raw any) (time.Duration, error) {
	s := strings.TrimSpace(cast.ToString(raw))
	if s == "" {
		return rest.DefaultTimeout, nil
	}
	if secs, err := cast.ToFloat64E(s); err == nil {
		return time.Duration(secs * float64(time.Second)), validTimeout(s, secs)
	}
	d, err := cast.ToDurationE(s)
	if err != nil {
		return 0, fmt.Errorf("config: invalid %s %q: %w", keyTimeout, s, err)
	}
	return d, validTimeout(s, d.Seconds())
}

func validTimeout(s string, secs float64) error {
	if secs <= 0 {
		return fmt.Errorf("config: %s must be positive, got %q", keyTimeout, s)
	}
	return nil
}

// Validate reports missing credentials and an unknown log level.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Subdomain) == "" || strings.TrimSpace(c.APIKey) == "" {
		return ErrMissingCredentials
	}
	if _, err := c.level(); err != nil {
		return err
	}
	return nil
}

func (c Config) level() (zapcore.Level, error) {
	lvl := zapcore.InfoLevel
	if c.LogLevel == "" {
		return lvl, nil
	}
	if err := lvl.UnmarshalText([]byte(strings.ToLower(c.LogLevel))); err != nil {
		return lvl, fmt.Errorf("config: invalid %s %q: %w", keyLogLevel, c.LogLevel, err)
	}
	return lvl, nil
}

// Logger builds a production zap logger at the configured level.
func (c Config) Logger() (*zap.Logger, error) {
	lvl, err := c.level()
	if err != nil {
		return nil, err
	}
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(lvl)
	return zc.Build()
}

// RESTOptions translates c into rest.HTTPClient options.
func (c Config) RESTOptions() []rest.Option {
	var opts []rest.Option
	if c.Host != "" {
		opts = append(opts, rest.WithBaseURL(c.Host))
	}
	if c.Timeout > 0 {
		opts = append(opts, rest.WithTimeout(c.Timeout))
	}
	return opts
}
