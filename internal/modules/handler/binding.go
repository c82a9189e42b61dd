package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// bindErrMsg turns a binding failure into a reason naming the field and the
// violated constraint, so the UI can surface it directly.
func bindErrMsg(err error) string {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) && len(ve) > 0 {
		fe := ve[0]
		field := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			return field + " is required"
		case "max":
			return fmt.Sprintf("%s exceeds maximum length of %s characters", field, fe.Param())
		case "oneof":
			return fmt.Sprintf("%s must be one of: %s", field, strings.ReplaceAll(fe.Param(), " ", ", "))
		}
		return field + " is invalid"
	}

	var ute *json.UnmarshalTypeError
	if errors.As(err, &ute) {
		if ute.Field != "" {
			return fmt.Sprintf("%s has the wrong type", ute.Field)
		}
		return "request body has the wrong shape"
	}

	return "malformed request body"
}
