package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Validate checks the configuration against the struct-level validation
// tags. It returns a single error naming every failing field so operators
// can fix a config file in one pass.
func Validate(cfg *Config) error {
	validate := validator.New()

	if err := validate.Struct(cfg); err != nil {
		validationErrors, ok := err.(validator.ValidationErrors)
		if !ok {
			return fmt.Errorf("invalid configuration: %w", err)
		}

		var msg string
		for i, fieldErr := range validationErrors {
			if i > 0 {
				msg += "; "
			}
			msg += fmt.Sprintf("field %q failed validation %q", fieldErr.Namespace(), fieldErr.Tag())
		}
		return fmt.Errorf("invalid configuration: %s", msg)
	}

	return nil
}
