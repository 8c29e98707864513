/*
 * Copyright (c) 2024-present unTill Pro, Ltd. and Contributors
 *
 * This source code is licensed under the MIT license found in the
 * LICENSE file in the root directory of this source tree.
 */

package foundation

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"go.uber.org/atomic"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	EnvDebug        = "SXF_DEBUG"
	EnvLogLevel     = "SXF_LOG_LEVEL"
	EnvPoolCapacity = "SXF_POOL_CAPACITY"

	DefaultPoolCapacity = 16
)

// initial capacity of registrations of a new pool
var poolCapacity = atomic.NewInt64(DefaultPoolCapacity)

// Config tunes the runtime, see Configure()
type Config struct {
	// Debug turns on tracking of creation points of non-released objects, see SetDebug()
	Debug bool `toml:"debug"`

	// LogLevel is a zap level name. Empty or "off" keeps the no-op logger
	LogLevel string `toml:"log_level"`

	PoolCapacity int `toml:"pool_capacity"`
}

func DefaultConfig() Config {
	return Config{
		LogLevel:     "off",
		PoolCapacity: DefaultPoolCapacity,
	}
}

// LoadConfig reads a TOML file over DefaultConfig() then applies SXF_* env overrides
// empty path means defaults and env only
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if len(path) > 0 {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to load config %s: %w", path, err)
		}
	}
	if err := applyEnvOverrides(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Configure applies cfg to the package: debug mode, logger and pools capacity
func Configure(cfg Config) error {
	if cfg.PoolCapacity < 0 {
		return fmt.Errorf("pool capacity must not be negative: %d", cfg.PoolCapacity)
	}
	l, err := buildLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	SetDebug(cfg.Debug)
	poolCapacity.Store(int64(cfg.PoolCapacity))
	SetLogger(l)
	Logger().Debug("configured", zap.Bool("debug", cfg.Debug), zap.Int("poolCapacity", cfg.PoolCapacity))
	return nil
}

func buildLogger(level string) (*zap.Logger, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "", "off", "none", "disabled":
		return nil, nil
	}
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	zcfg := zap.NewDevelopmentConfig()
	zcfg.Level = zap.NewAtomicLevelAt(lvl)
	return zcfg.Build()
}

func applyEnvOverrides(cfg *Config) error {
	if raw, ok := os.LookupEnv(EnvDebug); ok {
		v, err := strconv.ParseBool(strings.TrimSpace(raw))
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvDebug, err)
		}
		cfg.Debug = v
	}
	if raw, ok := os.LookupEnv(EnvLogLevel); ok {
		cfg.LogLevel = strings.TrimSpace(raw)
	}
	if raw, ok := os.LookupEnv(EnvPoolCapacity); ok {
		v, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvPoolCapacity, err)
		}
		cfg.PoolCapacity = v
	}
	return nil
}
