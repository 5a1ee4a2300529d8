package config

import (
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Validate checks struct tags plus the rules tags cannot express.
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return formatValidationError(err)
	}
	return validateCustomRules(cfg)
}

func validateCustomRules(cfg *Config) error {
	if cfg.Offset != 0 && (cfg.OffsetSec != 0 || cfg.OffsetNSec != 0) {
		return errors.New("offset: duration form and sec/nsec pair are mutually exclusive")
	}
	if cfg.Logging.FileEnabled && cfg.Logging.FileDir == "" {
		return errors.New("logging.file_dir: required when logging.file_enabled is true")
	}
	return nil
}

// formatValidationError converts validator errors into readable messages.
func formatValidationError(err error) error {
	if validationErrs, ok := err.(validator.ValidationErrors); ok {
		if len(validationErrs) > 0 {
			e := validationErrs[0]
			return errors.Errorf("%s: validation failed on '%s' tag (value: %v)",
				e.Namespace(), e.Tag(), e.Value())
		}
	}
	return err
}
