package handlers

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// newValidator returns a validator that reports fields by their json or query name.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"json", "query"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name != "" && name != "-" {
				return name
			}
		}
		return fld.Name
	})
	return v
}

// validationMessages turns a validator error into field -> message pairs.
func validationMessages(err error) map[string]string {
	messages := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		messages["_"] = err.Error()
		return messages
	}

	for _, e := range validationErrors {
		field := e.Field()
		var msg string

		switch e.Tag() {
		case "required":
			msg = "is required"
		case "min":
			if e.Kind() == reflect.String {
				msg = fmt.Sprintf("must be at least %s characters", e.Param())
			} else {
				msg = fmt.Sprintf("must be at least %s", e.Param())
			}
		case "gte":
			msg = fmt.Sprintf("must be greater than or equal to %s", e.Param())
		case "mongodb":
			msg = "must be a 24 character hex object identifier"
		default:
			msg = fmt.Sprintf("failed on the '%s' tag", e.Tag())
		}

		messages[field] = fmt.Sprintf("%s %s", field, msg)
	}
	return messages
}
