package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/marcus/sheetkit/pkg/sheet"
)

// EnvPrefix prefixes every environment override, e.g. SHEETKIT_STYLE_CORNER_RADIUS.
const EnvPrefix = "SHEETKIT"

// Config holds application configuration.
type Config struct {
	Style       StyleConfig       `mapstructure:"style"`
	Animation   AnimationConfig   `mapstructure:"animation"`
	Interaction InteractionConfig `mapstructure:"interaction"`
	Log         LogConfig         `mapstructure:"log"`
}

// StyleConfig mirrors sheet.Style.
type StyleConfig struct {
	HandleBar      string   `mapstructure:"handle_bar"` // "solid" or "none"
	HandleColor    string   `mapstructure:"handle_color"`
	CornerRadius   float64  `mapstructure:"corner_radius"`
	MinTopDistance *float64 `mapstructure:"min_top_distance"` // nil keeps the preset
	CoverColor     string   `mapstructure:"cover_color"`
	CoverOpacity   float64  `mapstructure:"cover_opacity"`
}

// AnimationConfig holds spring and timing settings.
type AnimationConfig struct {
	Stiffness       float64       `mapstructure:"stiffness"`
	Damping         float64       `mapstructure:"damping"`
	InitialVelocity float64       `mapstructure:"initial_velocity"`
	FPS             int           `mapstructure:"fps"`
	ClearDelay      time.Duration `mapstructure:"clear_delay"`
}

// InteractionConfig selects the metrics preset. Unset overrides keep the
// preset value; zero is a valid setting.
type InteractionConfig struct {
	Metrics           string   `mapstructure:"metrics"` // "terminal" or "points"
	CollapseThreshold *float64 `mapstructure:"collapse_threshold"`
	Damping           *float64 `mapstructure:"damping"`
	DismissVelocity   *float64 `mapstructure:"dismiss_velocity"`
}

// LogConfig controls structured logging.
type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

// Default returns the built-in configuration.
func Default() Config {
	sp := sheet.DefaultSpring()
	return Config{
		Style: StyleConfig{
			HandleBar:    "solid",
			HandleColor:  "245",
			CornerRadius: 10,
			CoverColor:   "#000000",
			CoverOpacity: 0.3,
		},
		Animation: AnimationConfig{
			Stiffness:       sp.Stiffness,
			Damping:         sp.Damping,
			InitialVelocity: sp.InitialVelocity,
			FPS:             sp.FPS,
			ClearDelay:      sheet.DefaultClearDelay,
		},
		Interaction: InteractionConfig{Metrics: "terminal"},
		Log:         LogConfig{Level: "info"},
	}
}

// overrideKeys have no default. They are bound to the environment so an
// unset key stays nil after Unmarshal.
var overrideKeys = []string{
	"style.min_top_distance",
	"interaction.collapse_threshold",
	"interaction.damping",
	"interaction.dismiss_velocity",
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("style.handle_bar", d.Style.HandleBar)
	v.SetDefault("style.handle_color", d.Style.HandleColor)
	v.SetDefault("style.corner_radius", d.Style.CornerRadius)
	v.SetDefault("style.cover_color", d.Style.CoverColor)
	v.SetDefault("style.cover_opacity", d.Style.CoverOpacity)
	v.SetDefault("animation.stiffness", d.Animation.Stiffness)
	v.SetDefault("animation.damping", d.Animation.Damping)
	v.SetDefault("animation.initial_velocity", d.Animation.InitialVelocity)
	v.SetDefault("animation.fps", d.Animation.FPS)
	v.SetDefault("animation.clear_delay", d.Animation.ClearDelay)
	v.SetDefault("interaction.metrics", d.Interaction.Metrics)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.file", "")
}

// flagKeys maps command-line flags to config keys.
var flagKeys = map[string]string{
	"log-level": "log.level",
	"log-file":  "log.file",
	"metrics":   "interaction.metrics",
}

// Load reads configuration from file, environment and flags, in increasing
// precedence. The file is $SHEETKIT_CONFIG, the --config flag, or
// sheetkit.toml in the working directory or ~/.config/sheetkit.
// A missing file is not an error.
func Load(flags *pflag.FlagSet) (Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetConfigType("toml")

	path := os.Getenv(EnvPrefix + "_CONFIG")
	if flags != nil {
		if f := flags.Lookup("config"); f != nil && f.Changed {
			path = f.Value.String()
		}
	}
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("sheetkit")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "sheetkit"))
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for _, key := range overrideKeys {
		if err := v.BindEnv(key); err != nil {
			return Config{}, fmt.Errorf("bind env %s: %w", key, err)
		}
	}

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return Config{}, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || path != "" {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if errs := c.Validate(); len(errs) > 0 {
		return Config{}, errs
	}
	return c, nil
}

// Metrics returns the selected preset with overrides applied.
func (c Config) Metrics() sheet.Metrics {
	m := sheet.TerminalMetrics()
	if c.Interaction.Metrics == "points" {
		m = sheet.PointMetrics()
	}
	if v := c.Interaction.CollapseThreshold; v != nil {
		m.CollapseThreshold = *v
	}
	if v := c.Interaction.Damping; v != nil {
		m.Damping = *v
	}
	if v := c.Interaction.DismissVelocity; v != nil {
		m.DismissVelocity = *v
	}
	if v := c.Style.MinTopDistance; v != nil {
		m.MinTopDistance = *v
	}
	return m
}

// SheetStyle builds the sheet style.
func (c Config) SheetStyle() sheet.Style {
	st := sheet.DefaultStyle(c.Metrics())
	st.HandleBar = sheet.HandleNone()
	if c.Style.HandleBar == "solid" {
		st.HandleBar = sheet.HandleSolid(lipgloss.Color(c.Style.HandleColor))
	}
	st.CornerRadius = c.Style.CornerRadius
	st.CoverColor = lipgloss.Color(c.Style.CoverColor)
	st.CoverOpacity = c.Style.CoverOpacity
	return st
}

// Spring builds the transition spring.
func (c Config) Spring() sheet.Spring {
	return sheet.Spring{
		Stiffness:       c.Animation.Stiffness,
		Damping:         c.Animation.Damping,
		InitialVelocity: c.Animation.InitialVelocity,
		FPS:             c.Animation.FPS,
	}
}

// SlogLevel parses the log level.
func (c Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.Log.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
