package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/abhisek/mathgame/internal/session"
)

// Environment variables read by FromEnv.
const (
	EnvLogPath           = "MATHGAME_LOG"
	EnvLogLevel          = "MATHGAME_LOG_LEVEL"
	EnvTimeAttackSeconds = "MATHGAME_TIME_ATTACK_SECONDS"
	EnvStartMax          = "MATHGAME_START_MAX"
	EnvMaxLevel          = "MATHGAME_MAX_LEVEL"
)

// Config holds the runtime configuration of the program.
type Config struct {
	Session session.Config

	// LogPath is the JSON log file. Empty disables logging.
	LogPath string

	// LogLevel is one of debug, info, warn, error. Default: info.
	LogLevel string
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Session:  session.DefaultConfig(),
		LogLevel: "info",
	}
}

// Load reads the given .env files (or ./.env when none are given) into
// the process environment and then builds the Config from it. A missing
// default .env file is not an error.
func Load(envFiles ...string) (Config, error) {
	if err := godotenv.Load(envFiles...); err != nil {
		if len(envFiles) > 0 || !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load env: %w", err)
		}
	}
	return FromEnv()
}

// FromEnv builds a Config from environment variables, falling back to
// defaults for unset values.
func FromEnv() (Config, error) {
	cfg := DefaultConfig()

	if p := os.Getenv(EnvLogPath); p != "" {
		cfg.LogPath = p
	}
	if l := os.Getenv(EnvLogLevel); l != "" {
		cfg.LogLevel = strings.ToLower(l)
	}

	var err error
	if cfg.Session.TimeAttackSeconds, err = intEnv(EnvTimeAttackSeconds, cfg.Session.TimeAttackSeconds); err != nil {
		return Config{}, err
	}
	if cfg.Session.Difficulty.StartMax, err = intEnv(EnvStartMax, cfg.Session.Difficulty.StartMax); err != nil {
		return Config{}, err
	}
	if cfg.Session.Difficulty.MaxLevel, err = intEnv(EnvMaxLevel, cfg.Session.Difficulty.MaxLevel); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks the session limits and the log level.
func (c Config) Validate() error {
	if err := c.Session.Validate(); err != nil {
		return err
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// Level returns the parsed log level, or info when it is unset or invalid.
func (c Config) Level() slog.Level {
	lvl, err := ParseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}
	return lvl
}

// ParseLevel parses a level name such as "debug" or "WARN".
func ParseLevel(s string) (slog.Level, error) {
	if s == "" {
		return slog.LevelInfo, nil
	}
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("invalid log level %q", s)
	}
	return lvl, nil
}

func intEnv(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, fmt.Errorf("%s=%q is not an integer", key, v)
	}
	return n, nil
}
