package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/katalvlaran/coalitions/coalition"
	"github.com/katalvlaran/coalitions/layout"
	"github.com/katalvlaran/coalitions/logging"
	"github.com/katalvlaran/coalitions/parliament"
	"github.com/katalvlaran/coalitions/render"
)

// EnvPrefix prefixes every environment override, e.g. COALITIONS_LOGGING_LEVEL.
const EnvPrefix = "COALITIONS"

// Config represents the complete coalitions configuration
type Config struct {
	Evaluate   EvaluateConfig   `mapstructure:"evaluate"`
	Parliament ParliamentConfig `mapstructure:"parliament"`
	Layout     LayoutConfig     `mapstructure:"layout"`
	Plot       PlotConfig       `mapstructure:"plot"`
	Logging    LoggingConfig    `mapstructure:"logging"`
}

// EvaluateConfig controls clique enumeration and filtering
type EvaluateConfig struct {
	// OnlyMaximal enumerates maximal cliques instead of all cliques
	OnlyMaximal bool `mapstructure:"only_maximal"`
	// OnlyValid drops coalitions below the majority
	OnlyValid bool `mapstructure:"only_valid"`
	// MembersOnly restricts the necessary-party scan to coalition members
	MembersOnly bool `mapstructure:"members_only"`
}

// ParliamentConfig overrides the house size and threshold.
// Zero values defer to the scenario, then to 120 seats / 61 majority.
type ParliamentConfig struct {
	Legislature int `mapstructure:"legislature"`
	Majority    int `mapstructure:"majority"`
}

// LayoutConfig controls the force-directed layout
type LayoutConfig struct {
	// Updates is the number of embedder iterations
	Updates int `mapstructure:"updates"`
	// Scale is the half-width of the square positions are fitted into
	Scale float64 `mapstructure:"scale"`
}

// PlotConfig controls figure size and encoding
type PlotConfig struct {
	WidthIn     float64 `mapstructure:"width_in"`
	RowHeightIn float64 `mapstructure:"row_height_in"`
	// Format is "png" or "svg"
	Format string `mapstructure:"format"`
}

// LoggingConfig controls structured logging
type LoggingConfig struct {
	// Level is one of debug, info, warn, error
	Level string `mapstructure:"level"`
	// Format is "text" or "json"
	Format string `mapstructure:"format"`
}

// Default returns a Config with default values
func Default() *Config {
	return &Config{
		Layout: LayoutConfig{
			Updates: 50,
			Scale:   1,
		},
		Plot: PlotConfig{
			WidthIn:     12,
			RowHeightIn: 8,
			Format:      string(render.PNG),
		},
		Logging: LoggingConfig{
			Level:  logging.LevelWarn,
			Format: logging.FormatText,
		},
	}
}

// SetDefaults registers every default value with v
func SetDefaults(v *viper.Viper) {
	defaults := Default()

	v.SetDefault("evaluate.only_maximal", defaults.Evaluate.OnlyMaximal)
	v.SetDefault("evaluate.only_valid", defaults.Evaluate.OnlyValid)
	v.SetDefault("evaluate.members_only", defaults.Evaluate.MembersOnly)

	v.SetDefault("parliament.legislature", defaults.Parliament.Legislature)
	v.SetDefault("parliament.majority", defaults.Parliament.Majority)

	v.SetDefault("layout.updates", defaults.Layout.Updates)
	v.SetDefault("layout.scale", defaults.Layout.Scale)

	v.SetDefault("plot.width_in", defaults.Plot.WidthIn)
	v.SetDefault("plot.row_height_in", defaults.Plot.RowHeightIn)
	v.SetDefault("plot.format", defaults.Plot.Format)

	v.SetDefault("logging.level", defaults.Logging.Level)
	v.SetDefault("logging.format", defaults.Logging.Format)
}

// New returns a viper instance with defaults and environment overrides wired
func New() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the optional config file at path into v, then decodes and
// validates the result
func Load(v *viper.Viper, path string) (*Config, error) {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	return &cfg, nil
}

// Threshold resolves the majority: the config override, then the
// scenario's own, then the default derived from the house size.
func (c *Config) Threshold(sc *parliament.Scenario) int {
	switch {
	case c.Parliament.Majority > 0:
		return c.Parliament.Majority
	case sc != nil && sc.Majority > 0:
		return sc.Majority
	case c.Parliament.Legislature > 0:
		return parliament.Majority(c.Parliament.Legislature)
	case sc != nil:
		return sc.Threshold()
	default:
		return parliament.DefaultMajority
	}
}

// EvaluateOptions translates the evaluate section into coalition options.
func (c *Config) EvaluateOptions(majority int, log *logging.Logger) []coalition.Option {
	opts := []coalition.Option{coalition.WithMajority(majority), coalition.WithLogger(log)}
	if c.Evaluate.OnlyMaximal {
		opts = append(opts, coalition.WithOnlyMaximal())
	}
	if c.Evaluate.OnlyValid {
		opts = append(opts, coalition.WithOnlyValid())
	}
	if c.Evaluate.MembersOnly {
		opts = append(opts, coalition.WithMembersOnly())
	}
	return opts
}

// LayoutOptions translates the layout section.
func (c *Config) LayoutOptions() []layout.Option {
	return []layout.Option{layout.WithUpdates(c.Layout.Updates), layout.WithScale(c.Layout.Scale)}
}

// RenderOptions translates the plot section.
func (c *Config) RenderOptions() []render.Option {
	return []render.Option{
		render.WithFormat(render.Format(c.Plot.Format)),
		render.WithSize(c.Plot.WidthIn, c.Plot.RowHeightIn),
	}
}

// IsValidationError reports whether err came from Validate.
func IsValidationError(err error) bool {
	var ve ValidationErrors
	return errors.As(err, &ve)
}
