package gateway

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/jsamuelsen/gateway-client/internal/domain"
)

// jsonTagParts splits "name,omitempty" into the name and its options.
const jsonTagParts = 2

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// requestValidator returns the shared validator, reporting fields by their
// JSON names.
func requestValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", jsonTagParts)[0]
			if name == "-" || name == "" {
				return fld.Name
			}

			return name
		})
	})

	return validate
}

// validateRequest checks struct tags on a request body and reports the first
// failure as a domain validation error.
func validateRequest(v any) error {
	err := requestValidator().Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return domain.NewValidationError("", err.Error())
	}

	// The value is left out: request fields include card data.
	fe := fieldErrs[0]
	return domain.NewValidationError(fieldPath(fe.Namespace()), validationMessage(fe))
}

// fieldPath drops the root type from "ChargeRequest.card.number".
func fieldPath(namespace string) string {
	if _, rest, ok := strings.Cut(namespace, "."); ok {
		return rest
	}

	return namespace
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "required_without":
		return "is required"
	case "gt":
		return "must be greater than " + fe.Param()
	case "len":
		return "must be exactly " + fe.Param() + " characters"
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	case "numeric":
		return "must contain only digits"
	case "excluded_with":
		return "cannot be combined with " + fe.Param()
	default:
		return "failed validation: " + fe.Tag()
	}
}

// encodeBody serializes v as compact JSON without HTML escaping, so the
// bytes sent match what a caller would produce by hand.
func encodeBody(v any) ([]byte, error) {
	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("encoding request body: %w", err)
	}

	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// decodeBody unmarshals a successful response payload.
func decodeBody(payload []byte, out any) error {
	if len(bytes.TrimSpace(payload)) == 0 {
		return errors.New("empty response body")
	}

	if err := json.Unmarshal(payload, out); err != nil {
		return fmt.Errorf("decoding response body: %w", err)
	}

	return nil
}
