package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/plus3/blockfall/driver"
	"github.com/plus3/blockfall/engine"
)

var ErrInvalidLogLevel = errors.New("unknown log level")

type Config struct {
	LogLevel string `yaml:"log-level" env:"BLOCKFALL_LOG_LEVEL" env-default:"info" env-description:"debug, info, warn or error"`
	LogFile  string `yaml:"log-file" env:"BLOCKFALL_LOG_FILE" env-description:"log destination for interactive frontends"`
	Seed     uint64 `yaml:"seed" env:"BLOCKFALL_SEED" env-default:"0" env-description:"piece sequence seed, 0 for random"`
	Game     Game   `yaml:"game"`
}

type Game struct {
	Rows            int     `yaml:"rows" env:"BLOCKFALL_ROWS" env-default:"20"`
	Columns         int     `yaml:"columns" env:"BLOCKFALL_COLUMNS" env-default:"10"`
	DropSpeed       float64 `yaml:"drop-speed" env:"BLOCKFALL_DROP_SPEED" env-default:"2" env-description:"gravity ticks per second"`
	Preview         int     `yaml:"preview" env:"BLOCKFALL_PREVIEW" env-default:"5"`
	StrictSpawn     bool    `yaml:"strict-spawn" env:"BLOCKFALL_STRICT_SPAWN" env-default:"false"`
	HoldOncePerLock bool    `yaml:"hold-once-per-lock" env:"BLOCKFALL_HOLD_ONCE_PER_LOCK" env-default:"false"`
}

// Load reads the YAML file at path with environment overrides, or the
// environment alone when path is empty. The result is validated.
func Load(path string) (*Config, error) {
	config := &Config{}

	var err error
	if path == "" {
		err = cleanenv.ReadEnv(config)
	} else {
		err = cleanenv.ReadConfig(path, config)
	}
	if err != nil {
		return nil, fmt.Errorf("unable to load config: %w", err)
	}

	if _, err := ParseLevel(config.LogLevel); err != nil {
		return nil, err
	}
	if err := config.Engine().Validate(); err != nil {
		return nil, fmt.Errorf("invalid game config: %w", err)
	}

	return config, nil
}

// MustLoad - load configuration or panic.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}
	return config
}

// Usage describes every environment variable.
func Usage() string {
	text, err := cleanenv.GetDescription(&Config{}, nil)
	if err != nil {
		return err.Error()
	}
	return text
}

func (that *Config) Engine() engine.Config {
	cfg := engine.DefaultConfig()
	cfg.Rows = that.Game.Rows
	cfg.Columns = that.Game.Columns
	cfg.DropSpeed = that.Game.DropSpeed
	cfg.Preview = that.Game.Preview
	cfg.StrictSpawn = that.Game.StrictSpawn
	cfg.HoldOncePerLock = that.Game.HoldOncePerLock
	return cfg
}

func (that *Config) DriverOptions() []driver.Option {
	if that.Seed == 0 {
		return nil
	}
	return []driver.Option{driver.WithSeed(that.Seed)}
}

// ParseLevel maps a configured level name to a slog level.
func ParseLevel(name string) (slog.Level, error) {
	switch name {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidLogLevel, name)
}

// NewLogger builds the root logger writing to w, as JSON or as text.
func (that *Config) NewLogger(w io.Writer, json bool) *slog.Logger {
	level, err := ParseLevel(that.LogLevel)
	if err != nil {
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if json {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
