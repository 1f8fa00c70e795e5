package tools

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// decodeInput unmarshals and validates a tool's raw arguments. The returned
// string is empty on success, otherwise a validation-error text for the model.
func decodeInput(raw json.RawMessage, out any) string {
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Sprintf("Error: invalid tool arguments: %s.", err)
	}
	return validateStruct(out)
}

// validateStruct runs the struct-tag constraints. Split out from decodeInput
// for adapters that normalize fields between unmarshal and validation.
func validateStruct(in any) string {
	if err := validate.Struct(in); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return constraintMessage(verrs[0])
		}
		return fmt.Sprintf("Error: invalid tool arguments: %s.", err)
	}
	return ""
}

func constraintMessage(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("Error: '%s' is required.", field)
	case "gt":
		return fmt.Sprintf("Error: '%s' must be greater than %s.", field, fe.Param())
	case "min":
		return fmt.Sprintf("Error: '%s' must have at least %s element(s).", field, fe.Param())
	case "max":
		return fmt.Sprintf("Error: '%s' must be at most %s.", field, fe.Param())
	case "len":
		return fmt.Sprintf("Error: '%s' must be exactly %s characters.", field, fe.Param())
	case "alpha":
		return fmt.Sprintf("Error: '%s' must contain only letters.", field)
	default:
		return fmt.Sprintf("Error: '%s' failed the '%s' constraint.", field, fe.Tag())
	}
}
