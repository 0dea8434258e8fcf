package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/katalvlaran/coalitions/logging"
	"github.com/katalvlaran/coalitions/render"
)

// ValidationError represents a single validation failure
type ValidationError struct {
	Field   string // The config key (e.g., "layout.updates")
	Value   any    // The invalid value
	Message string // Human-readable error description
}

// Error implements the error interface for ValidationError
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface for ValidationErrors
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d validation errors:\n", len(e)))
	for i, err := range e {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}

// ValidFormats returns the list of valid figure formats
func ValidFormats() []string {
	return []string{string(render.PNG), string(render.SVG)}
}

// ValidLogFormats returns the list of valid log encodings
func ValidLogFormats() []string {
	return []string{logging.FormatText, logging.FormatJSON}
}

// Validate checks the Config for invalid values and returns all validation errors found
func (c *Config) Validate() []ValidationError {
	var errors []ValidationError

	errors = append(errors, c.validateParliament()...)
	errors = append(errors, c.validateLayout()...)
	errors = append(errors, c.validatePlot()...)
	errors = append(errors, c.validateLogging()...)

	return errors
}

func (c *Config) validateParliament() []ValidationError {
	var errors []ValidationError
	p := c.Parliament
	if p.Legislature < 0 {
		errors = append(errors, ValidationError{"parliament.legislature", p.Legislature, "must be zero (scenario default) or positive"})
	}
	if p.Majority < 0 {
		errors = append(errors, ValidationError{"parliament.majority", p.Majority, "must be zero (derived) or positive"})
	}
	if p.Legislature > 0 && p.Majority > p.Legislature {
		errors = append(errors, ValidationError{"parliament.majority", p.Majority, fmt.Sprintf("must not exceed legislature (%d)", p.Legislature)})
	}
	return errors
}

func (c *Config) validateLayout() []ValidationError {
	var errors []ValidationError
	if c.Layout.Updates < 1 {
		errors = append(errors, ValidationError{"layout.updates", c.Layout.Updates, "must be at least 1"})
	}
	if !(c.Layout.Scale > 0) {
		errors = append(errors, ValidationError{"layout.scale", c.Layout.Scale, "must be positive"})
	}
	return errors
}

func (c *Config) validatePlot() []ValidationError {
	var errors []ValidationError
	if !(c.Plot.WidthIn > 0) {
		errors = append(errors, ValidationError{"plot.width_in", c.Plot.WidthIn, "must be positive"})
	}
	if !(c.Plot.RowHeightIn > 0) {
		errors = append(errors, ValidationError{"plot.row_height_in", c.Plot.RowHeightIn, "must be positive"})
	}
	if !slices.Contains(ValidFormats(), strings.ToLower(c.Plot.Format)) {
		errors = append(errors, ValidationError{"plot.format", c.Plot.Format, fmt.Sprintf("must be one of %v", ValidFormats())})
	}
	return errors
}

func (c *Config) validateLogging() []ValidationError {
	var errors []ValidationError
	if !slices.Contains(logging.ValidLevels(), strings.ToUpper(c.Logging.Level)) {
		errors = append(errors, ValidationError{"logging.level", c.Logging.Level, fmt.Sprintf("must be one of %v", logging.ValidLevels())})
	}
	if !slices.Contains(ValidLogFormats(), strings.ToLower(c.Logging.Format)) {
		errors = append(errors, ValidationError{"logging.format", c.Logging.Format, fmt.Sprintf("must be one of %v", ValidLogFormats())})
	}
	return errors
}
