package config

import (
	"errors"
	"fmt"

	"file-mover/internal/logger"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Value   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Value != "" {
		return fmt.Sprintf("invalid %s '%s': %s", e.Field, e.Value, e.Message)
	}
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// Validate checks all fields and reports every problem found.
func (c *Config) Validate() error {
	var errs []error

	if c.RegistryPath == "" {
		errs = append(errs, &ValidationError{Field: "registry_path", Message: "must not be empty"})
	}

	switch c.DismissAction {
	case DismissReprompt, DismissSkip:
	default:
		errs = append(errs, &ValidationError{
			Field:   "dismiss_action",
			Value:   c.DismissAction,
			Message: "must be \"reprompt\" or \"skip\"",
		})
	}

	if c.Display.Keep < 1 {
		errs = append(errs, &ValidationError{
			Field:   "display.keep",
			Value:   fmt.Sprint(c.Display.Keep),
			Message: "must be at least 1",
		})
	}
	if c.Display.MaxLength < 2*c.Display.Keep {
		errs = append(errs, &ValidationError{
			Field:   "display.max_length",
			Value:   fmt.Sprint(c.Display.MaxLength),
			Message: "must be at least twice display.keep",
		})
	}

	if _, err := logger.ParseLevel(c.Logging.Level); err != nil {
		errs = append(errs, &ValidationError{Field: "logging.level", Value: c.Logging.Level, Message: err.Error()})
	}
	switch logger.Format(c.Logging.Format) {
	case "", logger.FormatConsole, logger.FormatJSON:
	default:
		errs = append(errs, &ValidationError{
			Field:   "logging.format",
			Value:   c.Logging.Format,
			Message: "must be \"console\" or \"json\"",
		})
	}

	return errors.Join(errs...)
}
