// conf/validate.go

package conf

import (
	"fmt"
	"strings"

	"github.com/feederwatch/dashboard/internal/errors"
	"github.com/feederwatch/dashboard/internal/taxonomy"
)

// ValidationError represents a collection of validation errors
type ValidationError struct {
	Errors []string
}

// Error returns a string representation of the validation errors
func (ve ValidationError) Error() string {
	return fmt.Sprintf("Validation errors: %v", ve.Errors)
}

// Validate checks every section and reports all problems at once.
func (s *Settings) Validate() error {
	ve := ValidationError{}

	if err := validateLoggingSettings(s); err != nil {
		ve.Errors = append(ve.Errors, err.Error())
	}
	if err := validateDirectorySettings(&s.Directory); err != nil {
		ve.Errors = append(ve.Errors, err.Error())
	}
	if err := validateOverlaySettings(&s.Overlay); err != nil {
		ve.Errors = append(ve.Errors, err.Error())
	}

	if len(ve.Errors) > 0 {
		return errors.New(ve).
			Category(errors.CategoryConfiguration).
			Context("error_count", len(ve.Errors)).
			Build()
	}
	return nil
}

func validateLoggingSettings(s *Settings) error {
	level := strings.ToLower(strings.TrimSpace(s.Logging.Level))
	switch level {
	case "", "trace", "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("logging.level %q must be one of trace, debug, info, warn, error", s.Logging.Level)
	}

	switch s.Logging.Format {
	case "", "text", "json":
	default:
		return fmt.Errorf("logging.format %q must be text or json", s.Logging.Format)
	}
	return nil
}

func validateDirectorySettings(d *DirectorySettings) error {
	if _, err := taxonomy.ParseStatusFilter(d.StatusFilter); err != nil {
		return fmt.Errorf("directory.statusfilter: %w", err)
	}
	if d.CacheTTL < 0 {
		return fmt.Errorf("directory.cachettl must not be negative, got %s", d.CacheTTL)
	}
	return nil
}

func validateOverlaySettings(o *OverlaySettings) error {
	if o.MaxFrameDelta < 0 {
		return fmt.Errorf("overlay.maxframedelta must not be negative, got %g", o.MaxFrameDelta)
	}
	return nil
}
