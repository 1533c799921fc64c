package config

import (
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"
)

// ValidationError represents a single validation failure
type ValidationError struct {
	Field   string // The config field path (e.g., "style.cover_opacity")
	Value   any    // The invalid value
	Message string // Human-readable error description
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

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

var hexColorRegex = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// ValidLogLevels returns the list of valid log levels
func ValidLogLevels() []string {
	return []string{"debug", "info", "warn", "error"}
}

// ValidMetrics returns the metrics presets
func ValidMetrics() []string {
	return []string{"terminal", "points"}
}

// Validate checks the Config and returns every problem found.
func (c Config) Validate() ValidationErrors {
	var errs ValidationErrors
	errs = append(errs, c.validateStyle()...)
	errs = append(errs, c.validateAnimation()...)
	errs = append(errs, c.validateInteraction()...)

	if !slices.Contains(ValidLogLevels(), strings.ToLower(c.Log.Level)) {
		errs = append(errs, ValidationError{
			Field:   "log.level",
			Value:   c.Log.Level,
			Message: fmt.Sprintf("must be one of %v", ValidLogLevels()),
		})
	}
	return errs
}

func (c Config) validateStyle() []ValidationError {
	var errs []ValidationError
	s := c.Style

	if s.HandleBar != "solid" && s.HandleBar != "none" {
		errs = append(errs, ValidationError{Field: "style.handle_bar", Value: s.HandleBar, Message: `must be "solid" or "none"`})
	}
	if s.HandleBar == "solid" && !validColor(s.HandleColor) {
		errs = append(errs, ValidationError{Field: "style.handle_color", Value: s.HandleColor, Message: "must be an ANSI color number or #rrggbb"})
	}
	if s.CornerRadius < 0 {
		errs = append(errs, ValidationError{Field: "style.corner_radius", Value: s.CornerRadius, Message: "must be non-negative"})
	}
	if s.MinTopDistance != nil && *s.MinTopDistance < 0 {
		errs = append(errs, ValidationError{Field: "style.min_top_distance", Value: *s.MinTopDistance, Message: "must be non-negative"})
	}
	if !hexColorRegex.MatchString(s.CoverColor) {
		errs = append(errs, ValidationError{Field: "style.cover_color", Value: s.CoverColor, Message: "must be #rrggbb"})
	}
	if s.CoverOpacity < 0 || s.CoverOpacity > 1 {
		errs = append(errs, ValidationError{Field: "style.cover_opacity", Value: s.CoverOpacity, Message: "must be between 0 and 1"})
	}
	return errs
}

func (c Config) validateAnimation() []ValidationError {
	var errs []ValidationError
	a := c.Animation

	if a.Stiffness <= 0 {
		errs = append(errs, ValidationError{Field: "animation.stiffness", Value: a.Stiffness, Message: "must be positive"})
	}
	if a.Damping < 0 {
		errs = append(errs, ValidationError{Field: "animation.damping", Value: a.Damping, Message: "must be non-negative"})
	}
	if a.FPS < 1 || a.FPS > 240 {
		errs = append(errs, ValidationError{Field: "animation.fps", Value: a.FPS, Message: "must be between 1 and 240"})
	}
	if a.ClearDelay < 0 {
		errs = append(errs, ValidationError{Field: "animation.clear_delay", Value: a.ClearDelay, Message: "must be non-negative"})
	}
	return errs
}

func (c Config) validateInteraction() []ValidationError {
	var errs []ValidationError
	in := c.Interaction

	if !slices.Contains(ValidMetrics(), in.Metrics) {
		errs = append(errs, ValidationError{Field: "interaction.metrics", Value: in.Metrics, Message: fmt.Sprintf("must be one of %v", ValidMetrics())})
	}
	if v := in.CollapseThreshold; v != nil && *v > 0 {
		errs = append(errs, ValidationError{Field: "interaction.collapse_threshold", Value: *v, Message: "must be zero or negative"})
	}
	if v := in.Damping; v != nil && (*v < 0 || *v > 1) {
		errs = append(errs, ValidationError{Field: "interaction.damping", Value: *v, Message: "must be between 0 and 1"})
	}
	if v := in.DismissVelocity; v != nil && *v < 0 {
		errs = append(errs, ValidationError{Field: "interaction.dismiss_velocity", Value: *v, Message: "must be non-negative"})
	}
	return errs
}

func validColor(s string) bool {
	if hexColorRegex.MatchString(s) {
		return true
	}
	n, err := strconv.Atoi(s)
	return err == nil && n >= 0 && n <= 255
}
