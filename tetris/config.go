package tetris

import (
	"bytes"
	_ "embed"
	"fmt"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog"
)

//go:embed default.toml
var defaultConfig []byte

// Config holds the geometry and pacing of a game.
type Config struct {
	// CellSize is the pixel edge of one grid cell.
	CellSize int `toml:"cell_size"`
	Columns  int `toml:"columns"`
	Rows     int `toml:"rows"`
	// TickRate is the number of gravity ticks per second.
	TickRate int    `toml:"tick_rate"`
	LogLevel string `toml:"log_level"`
}

// DefaultConfig returns the configuration compiled into the binary.
func DefaultConfig() Config {
	cfg, err := ParseConfig(defaultConfig)
	if err != nil {
		panic(fmt.Sprintf("embedded default.toml: %v", err))
	}
	return cfg
}

// ParseConfig decodes and validates a TOML document. Unknown keys are rejected.
func ParseConfig(data []byte) (Config, error) {
	var cfg Config
	dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("%w: decode: %w", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate returns a *ConfigError for the first malformed setting.
func (c Config) Validate() error {
	positive := []struct {
		field string
		value int
	}{
		{"cell_size", c.CellSize},
		{"columns", c.Columns},
		{"rows", c.Rows},
		{"tick_rate", c.TickRate},
	}
	for _, p := range positive {
		if p.value <= 0 {
			return configErr(p.field, fmt.Sprintf("must be positive, got %d", p.value))
		}
	}
	if _, err := c.Level(); err != nil {
		return configErr("log_level", err.Error())
	}
	return nil
}

// Level parses LogLevel. An empty level means info.
func (c Config) Level() (zerolog.Level, error) {
	if c.LogLevel == "" {
		return zerolog.InfoLevel, nil
	}
	return zerolog.ParseLevel(c.LogLevel)
}

// ScreenSize returns the pixel dimensions of the playing field.
func (c Config) ScreenSize() (width, height int) {
	return c.Columns * c.CellSize, c.Rows * c.CellSize
}

// TickInterval is the duration of one gravity tick.
func (c Config) TickInterval() time.Duration {
	return time.Second / time.Duration(c.TickRate)
}
