package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// ErrInvalidConfig is returned when the simulation cannot be constructed from
// the given settings. It is always fatal.
var ErrInvalidConfig = errors.New("invalid configuration")

// SettingsFile is the optional settings file looked up in the working directory.
const SettingsFile = "invaders.json"

// Settings holds the runtime knobs the hosts hand to the core.
type Settings struct {
	TickInterval time.Duration `mapstructure:"tickInterval"`
	Width        float64       `mapstructure:"width"`
	Height       float64       `mapstructure:"height"`
	Seed         int64         `mapstructure:"seed"`
	LogLevel     string        `mapstructure:"logLevel"`
	LogFile      string        `mapstructure:"logFile"`
	LevelsFile   string        `mapstructure:"levelsFile"`
	WindowScale  float64       `mapstructure:"windowScale"`
}

// Defaults returns the settings used when nothing else is configured.
func Defaults() Settings {
	return Settings{
		TickInterval: TickInterval,
		Width:        ScreenWidth,
		Height:       ScreenHeight,
		LogLevel:     "info",
		WindowScale:  1,
	}
}

// Validate enforces the construction rules: positive tick interval and
// positive playfield bounds.
func (s Settings) Validate() error {
	if s.TickInterval <= 0 {
		return fmt.Errorf("tick interval %v must be positive: %w", s.TickInterval, ErrInvalidConfig)
	}
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("playfield %vx%v must be positive: %w", s.Width, s.Height, ErrInvalidConfig)
	}
	return nil
}

// Load reads settings from SettingsFile in dir, falling back to Defaults for
// every key the file does not set. A missing file is not an error.
func Load(dir string) (Settings, error) {
	v := viper.New()

	d := Defaults()
	v.SetDefault("tickInterval", d.TickInterval)
	v.SetDefault("width", d.Width)
	v.SetDefault("height", d.Height)
	v.SetDefault("seed", d.Seed)
	v.SetDefault("logLevel", d.LogLevel)
	v.SetDefault("logFile", d.LogFile)
	v.SetDefault("levelsFile", d.LevelsFile)
	v.SetDefault("windowScale", d.WindowScale)

	v.SetConfigName(SettingsFile)
	v.SetConfigType("json")
	v.AddConfigPath(dir)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Settings{}, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("error decoding config: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}
