package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate is the package-level validator instance.
var validate = validator.New(validator.WithRequiredStructEnabled())

// insecureEnvironments may talk to a plain-HTTP gateway (local sandboxes, fakes).
var insecureEnvironments = map[string]bool{
	"local": true,
	"test":  true,
}

// Validate validates the configuration and returns an error if invalid.
// Validation fails fast - the client should not start with invalid config.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return formatValidationErrors(err)
	}

	if err := c.validateGatewayScheme(); err != nil {
		return fmt.Errorf("config validation failed:\n  %w", err)
	}

	return nil
}

// validateGatewayScheme requires HTTPS outside local and test environments,
// since the secret key travels in every request.
func (c *Config) validateGatewayScheme() error {
	u, err := url.Parse(c.Gateway.BaseURL)
	if err != nil {
		return fmt.Errorf("gateway.baseurl must be a valid URL: %w", err)
	}

	if u.Scheme != "https" && !insecureEnvironments[c.App.Environment] {
		return fmt.Errorf("gateway.baseurl must use https in %s", c.App.Environment)
	}

	return nil
}

// formatValidationErrors converts validator errors to a readable format.
func formatValidationErrors(err error) error {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	errs := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		errs = append(errs, formatFieldError(e))
	}

	return fmt.Errorf("config validation failed:\n  %s", strings.Join(errs, "\n  "))
}

// formatFieldError formats a single field validation error.
func formatFieldError(e validator.FieldError) string {
	field := formatFieldPath(e.Namespace())

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "required_if":
		return fmt.Sprintf("%s is required when %s", field, e.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, e.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", field, e.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, e.Param())
	case "url":
		return fmt.Sprintf("%s must be a valid URL", field)
	default:
		return fmt.Sprintf("%s failed validation: %s", field, e.Tag())
	}
}

// formatFieldPath converts "Config.Gateway.SecretKey" to "gateway.secretkey".
func formatFieldPath(namespace string) string {
	parts := strings.Split(namespace, ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}

	for i, part := range parts {
		parts[i] = strings.ToLower(part)
	}

	return strings.Join(parts, ".")
}
